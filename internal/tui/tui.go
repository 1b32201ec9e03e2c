// Package tui implements the terminal simulator. It runs the real startup
// sequence against the in-memory host and turns key presses into tray
// clicks, menu selections and window events.
package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/deskshell/internal/logging"
	"github.com/watchfire-io/deskshell/internal/models"
	"github.com/watchfire-io/deskshell/internal/winstate"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Options configures the simulator.
type Options struct {
	Config models.AppConfig
	Store  *winstate.Store
}

// Result reports how the simulated shell ended.
type Result struct {
	Exited   bool
	ExitCode int
}

// Run starts the simulator and blocks until the user leaves or the shell exits.
func Run(opts Options) (Result, error) {
	activity := newActivityLog(activityLines)
	log := logging.NewPlain(activity)

	sim := newSimulator(opts.Config, opts.Store, log)
	defer sim.recorder.Stop()

	watcher, err := winstate.NewWatcher(opts.Store, log)
	if err != nil {
		return Result{}, err
	}
	if err := watcher.Start(); err != nil {
		return Result{}, err
	}
	defer watcher.Stop()

	ref := &programRef{}
	p := tea.NewProgram(NewModel(sim, activity), tea.WithAltScreen())
	ref.Set(p)
	defer ref.Clear()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go forwardSaves(ctx, watcher, ref)

	if _, err := p.Run(); err != nil {
		return Result{}, fmt.Errorf("simulator failed: %w", err)
	}

	code, exited := sim.host.Exited()
	return Result{Exited: exited, ExitCode: code}, nil
}

// forwardSaves relays state files written by the recorder into the program.
func forwardSaves(ctx context.Context, w *winstate.Watcher, ref *programRef) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-w.Events():
			ref.Send(StateSavedMsg{Label: ev.Label, State: ev.State})
		}
	}
}
