package wailshost

import (
	"fmt"
	"math"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/watchfire-io/deskshell/internal/models"
	"github.com/watchfire-io/deskshell/internal/window"
	"github.com/watchfire-io/deskshell/internal/winstate"
)

// CreateWindow implements window.Creator.
func (h *Host) CreateWindow(p window.CreationParams) (window.Handle, error) {
	if _, ok := h.app.Window.GetByName(p.Label); ok {
		return nil, fmt.Errorf("%w: %q", window.ErrWindowExists, p.Label)
	}

	opts := application.WebviewWindowOptions{
		Name:   p.Label,
		Title:  p.Title,
		URL:    p.Content,
		Width:  int(math.Round(p.Width)),
		Height: int(math.Round(p.Height)),
		Hidden: !p.Visible,
	}
	if p.HasPosition {
		opts.InitialPosition = application.WindowXY
		opts.X = p.X
		opts.Y = p.Y
	}
	switch {
	case p.Fullscreen:
		opts.StartState = application.WindowStateFullscreen
	case p.Maximized:
		opts.StartState = application.WindowStateMaximised
	}

	w := h.app.Window.NewWithOptions(opts)
	if w == nil {
		return nil, fmt.Errorf("wails returned no window for %q", p.Label)
	}

	hd := &handle{label: p.Label, w: w}
	h.track(p.Label, w, hd)
	return hd, nil
}

// Window implements window.Locator.
func (h *Host) Window(label string) (window.Handle, bool) {
	w, ok := h.app.Window.GetByName(label)
	if !ok || w == nil {
		return nil, false
	}
	return &handle{label: label, w: w}, true
}

// track persists geometry as the window moves and resizes. The primary
// window hides on close so the tray can bring it back.
func (h *Host) track(label string, w *application.WebviewWindow, hd window.Geometer) {
	snap := winstate.GeometrySnapshot(hd)

	if h.recorder != nil {
		schedule := func(*application.WindowEvent) { h.recorder.Schedule(label, snap) }
		w.OnWindowEvent(events.Common.WindowDidMove, schedule)
		w.OnWindowEvent(events.Common.WindowDidResize, schedule)
	}

	w.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		if h.recorder != nil {
			h.recorder.Flush(label, snap)
		}
		if label == window.MainLabel {
			e.Cancel()
			w.Hide()
		}
	})
}

// handle adapts a Wails window to window.Handle. Wails window calls do not
// report failures, so every method succeeds.
type handle struct {
	label string
	w     application.Window
}

func (h *handle) Label() string { return h.label }

func (h *handle) Show() error {
	h.w.Show()
	return nil
}

func (h *handle) Hide() error {
	h.w.Hide()
	return nil
}

func (h *handle) Focus() error {
	h.w.Focus()
	return nil
}

func (h *handle) Unminimize() error {
	h.w.UnMinimise()
	return nil
}

func (h *handle) IsVisible() (bool, error) {
	return h.w.IsVisible(), nil
}

// Geometry implements window.Geometer.
func (h *handle) Geometry() (models.WindowState, error) {
	x, y := h.w.Position()
	width, height := h.w.Size()
	return models.WindowState{
		X:          models.Ptr(x),
		Y:          models.Ptr(y),
		Width:      models.Ptr(float64(width)),
		Height:     models.Ptr(float64(height)),
		Maximized:  models.Ptr(h.w.IsMaximised()),
		Fullscreen: models.Ptr(h.w.IsFullscreen()),
	}, nil
}
