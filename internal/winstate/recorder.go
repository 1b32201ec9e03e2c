package winstate

import (
	"sync"
	"time"

	"github.com/watchfire-io/deskshell/internal/logging"
	"github.com/watchfire-io/deskshell/internal/models"
	"github.com/watchfire-io/deskshell/internal/window"
)

// DefaultDelay is how long geometry must be stable before it is written.
const DefaultDelay = 250 * time.Millisecond

// Snapshot reads a window's current geometry from the host.
// ok is false when the window is gone.
type Snapshot func() (state models.WindowState, ok bool)

// GeometrySnapshot reads geometry from g. A window that can no longer
// report its geometry counts as gone.
func GeometrySnapshot(g window.Geometer) Snapshot {
	return func() (models.WindowState, bool) {
		state, err := g.Geometry()
		return state, err == nil
	}
}

// Recorder writes window geometry back to the store as windows move and resize.
// Writes for the same label are debounced.
type Recorder struct {
	store *Store
	delay time.Duration
	log   *logging.Logger

	mu      sync.Mutex
	pending map[string]*pendingWrite
	stopped bool
}

type pendingWrite struct {
	timer *time.Timer
	snap  Snapshot
}

// NewRecorder creates a recorder writing to store. delay <= 0 uses DefaultDelay.
func NewRecorder(store *Store, delay time.Duration, log *logging.Logger) *Recorder {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Recorder{
		store:   store,
		delay:   delay,
		log:     logging.OrNop(log).Component("recorder"),
		pending: make(map[string]*pendingWrite),
	}
}

// Schedule records label after the debounce delay, replacing any pending write.
func (r *Recorder) Schedule(label string, snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}

	if p, ok := r.pending[label]; ok {
		p.timer.Stop()
	}

	p := &pendingWrite{snap: snap}
	p.timer = time.AfterFunc(r.delay, func() {
		r.mu.Lock()
		if r.pending[label] != p {
			r.mu.Unlock()
			return
		}
		delete(r.pending, label)
		r.mu.Unlock()
		r.write(label, snap)
	})
	r.pending[label] = p
}

// Flush records label immediately, cancelling any pending write.
// Used when a window is closing.
func (r *Recorder) Flush(label string, snap Snapshot) {
	r.mu.Lock()
	if p, ok := r.pending[label]; ok {
		p.timer.Stop()
		delete(r.pending, label)
	}
	r.mu.Unlock()

	r.write(label, snap)
}

// Stop writes every pending snapshot and rejects later schedules.
func (r *Recorder) Stop() {
	r.mu.Lock()
	r.stopped = true
	pending := r.pending
	r.pending = make(map[string]*pendingWrite)
	r.mu.Unlock()

	// Entries still in the map have not been written; a timer that already
	// fired will find itself removed and skip its write.
	for label, p := range pending {
		p.timer.Stop()
		r.write(label, p.snap)
	}
}

func (r *Recorder) write(label string, snap Snapshot) {
	current, ok := snap()
	if !ok {
		return
	}

	state := merge(r.store.Load(label), current)
	if err := r.store.Save(label, state); err != nil {
		r.log.Warn().Err(err).Str("label", label).Msg("Failed to record window state")
		return
	}
	r.log.Debug().Str("label", label).Msg("Recorded window state")
}

// merge keeps the previous normal-state geometry while a window is maximized
// or fullscreen, so restoring it later returns to the remembered bounds.
func merge(prev, cur models.WindowState) models.WindowState {
	if !isTrue(cur.Maximized) && !isTrue(cur.Fullscreen) {
		return cur
	}
	out := prev
	out.Maximized = cur.Maximized
	out.Fullscreen = cur.Fullscreen
	return out
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
