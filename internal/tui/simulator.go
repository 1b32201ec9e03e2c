package tui

import (
	"fmt"
	"sync"

	"github.com/watchfire-io/deskshell/internal/host/memory"
	"github.com/watchfire-io/deskshell/internal/logging"
	"github.com/watchfire-io/deskshell/internal/models"
	"github.com/watchfire-io/deskshell/internal/shell"
	"github.com/watchfire-io/deskshell/internal/window"
	"github.com/watchfire-io/deskshell/internal/winstate"
)

const (
	moveStep   = 10
	resizeStep = 20
	minSize    = 100
)

// simulator owns the shell under test and the host it runs on.
type simulator struct {
	host     *memory.Host
	shell    *shell.Shell
	recorder *winstate.Recorder
	setupErr error

	mu    sync.Mutex
	fatal error
}

func newSimulator(cfg models.AppConfig, store *winstate.Store, log *logging.Logger) *simulator {
	s := &simulator{
		host:     memory.New(),
		recorder: winstate.NewRecorder(store, winstate.DefaultDelay, log),
	}
	s.shell = shell.New(cfg, s.host, store, log)
	// A failed menu action would end the process; the simulator shows it instead.
	s.shell.SetFatalHandler(s.recordFatal)
	s.setupErr = s.shell.Setup()
	return s
}

func (s *simulator) recordFatal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fatal = err
}

// takeFatal returns and clears the last fatal error.
func (s *simulator) takeFatal() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.fatal
	s.fatal = nil
	return err
}

func (s *simulator) window(label string) (*memory.Window, error) {
	w, ok := s.host.Get(label)
	if !ok {
		return nil, fmt.Errorf("no open window %q", label)
	}
	return w, nil
}

func (s *simulator) minimizePrimary() error {
	w, err := s.window(window.MainLabel)
	if err != nil {
		return err
	}
	return w.Minimize()
}

// closePrimary records the primary window's geometry and destroys it.
func (s *simulator) closePrimary() error {
	w, err := s.window(window.MainLabel)
	if err != nil {
		return err
	}
	s.recorder.Flush(window.MainLabel, winstate.GeometrySnapshot(w))
	s.host.Close(window.MainLabel)
	return nil
}

func (s *simulator) moveBy(label string, dx, dy int) error {
	w, err := s.window(label)
	if err != nil {
		return err
	}
	cur := w.Snapshot()
	if err := w.SetBounds(cur.X+dx, cur.Y+dy, cur.Width, cur.Height); err != nil {
		return err
	}
	s.recorder.Schedule(label, winstate.GeometrySnapshot(w))
	return nil
}

func (s *simulator) resizeBy(label string, d float64) error {
	w, err := s.window(label)
	if err != nil {
		return err
	}
	cur := w.Snapshot()
	width := max(cur.Width+d, minSize)
	height := max(cur.Height+d, minSize)
	if err := w.SetBounds(cur.X, cur.Y, width, height); err != nil {
		return err
	}
	s.recorder.Schedule(label, winstate.GeometrySnapshot(w))
	return nil
}

func (s *simulator) toggleMaximize(label string) error {
	w, err := s.window(label)
	if err != nil {
		return err
	}
	if err := w.SetMaximized(!w.Snapshot().Maximized); err != nil {
		return err
	}
	s.recorder.Schedule(label, winstate.GeometrySnapshot(w))
	return nil
}

