// Package memory is an in-process windowing and tray host. It backs the
// simulator and the tests; nothing is drawn.
package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/watchfire-io/deskshell/internal/models"
	"github.com/watchfire-io/deskshell/internal/tray"
	"github.com/watchfire-io/deskshell/internal/window"
)

// ErrClosed is returned by operations on a window that has been closed.
var ErrClosed = errors.New("window closed")

// Call is one visibility operation performed on a window.
type Call struct {
	Label string
	Op    string
}

// Snapshot is a copy of a window's state.
type Snapshot struct {
	Label       string
	Title       string
	Content     string
	Visible     bool
	Focused     bool
	Minimized   bool
	Maximized   bool
	Fullscreen  bool
	HasPosition bool
	X, Y        int
	Width       float64
	Height      float64
}

// Host implements window.Service, tray.Host and tray.Exiter in memory.
// It is safe for concurrent use.
type Host struct {
	mu       sync.Mutex
	windows  map[string]*Window
	order    []string
	failures map[string]error
	calls    []Call

	menu    *tray.Menu
	tooltip string
	onMenu  func(string)
	onTray  func(tray.Event)

	exited   bool
	exitCode int
	exitFn   func(code int)
}

// New creates an empty host.
func New() *Host {
	return &Host{
		windows:  make(map[string]*Window),
		failures: make(map[string]error),
	}
}

// OnExit registers fn to run when Exit is called.
func (h *Host) OnExit(fn func(code int)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exitFn = fn
}

// FailCreate makes CreateWindow fail with err for label.
func (h *Host) FailCreate(label string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures[label] = err
}

// CreateWindow implements window.Creator.
func (h *Host) CreateWindow(p window.CreationParams) (window.Handle, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err, ok := h.failures[p.Label]; ok {
		return nil, err
	}
	if _, ok := h.windows[p.Label]; ok {
		return nil, fmt.Errorf("%w: %q", window.ErrWindowExists, p.Label)
	}

	w := &Window{
		host: h,
		state: Snapshot{
			Label:       p.Label,
			Title:       p.Title,
			Content:     p.Content,
			Visible:     p.Visible,
			Maximized:   p.Maximized,
			Fullscreen:  p.Fullscreen,
			HasPosition: p.HasPosition,
			X:           p.X,
			Y:           p.Y,
			Width:       p.Width,
			Height:      p.Height,
		},
	}
	h.windows[p.Label] = w
	h.order = append(h.order, p.Label)
	return w, nil
}

// Window implements window.Locator.
func (h *Host) Window(label string) (window.Handle, bool) {
	w, ok := h.Get(label)
	if !ok {
		return nil, false
	}
	return w, true
}

// Get returns the concrete window for label.
func (h *Host) Get(label string) (*Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[label]
	return w, ok
}

// Close destroys the window for label. Its handle stops working.
func (h *Host) Close(label string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	w, ok := h.windows[label]
	if !ok {
		return
	}
	w.closed = true
	delete(h.windows, label)
	for i, l := range h.order {
		if l == label {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Snapshots returns every open window in creation order.
func (h *Host) Snapshots() []Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Snapshot, 0, len(h.order))
	for _, label := range h.order {
		out = append(out, h.windows[label].state)
	}
	return out
}

// Calls returns the visibility operations performed so far.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Call, len(h.calls))
	copy(out, h.calls)
	return out
}

// ResetCalls clears the call journal.
func (h *Host) ResetCalls() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = nil
}

// InstallTray implements tray.Host.
func (h *Host) InstallTray(menu tray.Menu, tooltip string, onMenu func(string), onTray func(tray.Event)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.menu != nil {
		return errors.New("tray already installed")
	}
	h.menu = &menu
	h.tooltip = tooltip
	h.onMenu = onMenu
	h.onTray = onTray
	return nil
}

// Menu returns the installed tray menu.
func (h *Host) Menu() (tray.Menu, string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.menu == nil {
		return tray.Menu{}, "", false
	}
	return *h.menu, h.tooltip, true
}

// ClickMenu delivers a menu click. It is a no-op before the tray is installed.
func (h *Host) ClickMenu(id string) {
	h.mu.Lock()
	fn := h.onMenu
	h.mu.Unlock()
	if fn != nil {
		fn(id)
	}
}

// TrayEvent delivers a tray icon interaction.
func (h *Host) TrayEvent(ev tray.Event) {
	h.mu.Lock()
	fn := h.onTray
	h.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

// Exit implements tray.Exiter. It records the code instead of terminating.
func (h *Host) Exit(code int) {
	h.mu.Lock()
	h.exited = true
	h.exitCode = code
	fn := h.exitFn
	h.mu.Unlock()

	if fn != nil {
		fn(code)
	}
}

// Exited reports whether Exit was called and with which code.
func (h *Host) Exited() (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exitCode, h.exited
}

func (h *Host) record(label, op string) {
	h.calls = append(h.calls, Call{Label: label, Op: op})
}

// Window is an in-memory window handle.
type Window struct {
	host   *Host
	state  Snapshot
	closed bool
}

// Label implements window.Handle.
func (w *Window) Label() string {
	return w.state.Label
}

// Show implements window.Handle.
func (w *Window) Show() error {
	return w.update("show", func(s *Snapshot) { s.Visible = true })
}

// Hide implements window.Handle.
func (w *Window) Hide() error {
	return w.update("hide", func(s *Snapshot) {
		s.Visible = false
		s.Focused = false
	})
}

// Focus implements window.Handle. Only one window holds focus.
func (w *Window) Focus() error {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	for _, other := range w.host.windows {
		other.state.Focused = false
	}
	w.state.Focused = true
	w.host.record(w.state.Label, "focus")
	return nil
}

// Unminimize implements window.Handle.
func (w *Window) Unminimize() error {
	return w.update("unminimize", func(s *Snapshot) { s.Minimized = false })
}

// IsVisible implements window.Handle.
func (w *Window) IsVisible() (bool, error) {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	if w.closed {
		return false, ErrClosed
	}
	return w.state.Visible, nil
}

// Minimize minimizes the window.
func (w *Window) Minimize() error {
	return w.update("minimize", func(s *Snapshot) {
		s.Minimized = true
		s.Focused = false
	})
}

// SetBounds moves and resizes the window.
func (w *Window) SetBounds(x, y int, width, height float64) error {
	return w.update("bounds", func(s *Snapshot) {
		s.HasPosition = true
		s.X, s.Y = x, y
		s.Width, s.Height = width, height
	})
}

// SetMaximized sets the maximized flag.
func (w *Window) SetMaximized(maximized bool) error {
	return w.update("maximize", func(s *Snapshot) { s.Maximized = maximized })
}

// Geometry implements window.Geometer.
func (w *Window) Geometry() (models.WindowState, error) {
	s := w.Snapshot()
	if w.isClosed() {
		return models.WindowState{}, ErrClosed
	}

	state := models.WindowState{
		Width:      models.Ptr(s.Width),
		Height:     models.Ptr(s.Height),
		Maximized:  models.Ptr(s.Maximized),
		Fullscreen: models.Ptr(s.Fullscreen),
	}
	if s.HasPosition {
		state.X = models.Ptr(s.X)
		state.Y = models.Ptr(s.Y)
	}
	return state, nil
}

// Snapshot returns a copy of the window's state.
func (w *Window) Snapshot() Snapshot {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.state
}

func (w *Window) isClosed() bool {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.closed
}

func (w *Window) update(op string, fn func(*Snapshot)) error {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	fn(&w.state)
	w.host.record(w.state.Label, op)
	return nil
}
