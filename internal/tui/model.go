package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/deskshell/internal/tray"
)

// Model is the root Bubbletea model for the simulator.
type Model struct {
	sim      *simulator
	activity *activityLog
	help     help.Model

	selected int // index into the host's open windows
	width    int
	height   int

	// Status display
	err   error
	fatal bool
	saved string
}

// NewModel creates the simulator model.
func NewModel(sim *simulator, activity *activityLog) Model {
	return Model{
		sim:      sim,
		activity: activity,
		help:     help.New(),
		err:      sim.setupErr,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case StateSavedMsg:
		m.saved = msg.Label
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Leave):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Next):
		if n := len(m.sim.host.Snapshots()); n > 0 {
			m.selected = (m.selected + 1) % n
		}
		return m, nil
	}

	err := m.dispatch(msg)
	return m.afterAction(err)
}

// dispatch performs the shell or window action bound to msg.
func (m Model) dispatch(msg tea.KeyMsg) error {
	h := m.sim.host
	switch {
	case key.Matches(msg, keys.TrayClick):
		h.TrayEvent(tray.LeftClick)
	case key.Matches(msg, keys.TrayRightClick):
		h.TrayEvent(tray.Event{Kind: tray.EventClick, Button: tray.ButtonRight})
	case key.Matches(msg, keys.TrayDoubleClick):
		h.TrayEvent(tray.Event{Kind: tray.EventDoubleClick, Button: tray.ButtonLeft})
	case key.Matches(msg, keys.MenuShow):
		h.ClickMenu(tray.ItemShow)
	case key.Matches(msg, keys.MenuHide):
		h.ClickMenu(tray.ItemHide)
	case key.Matches(msg, keys.MenuQuit):
		h.ClickMenu(tray.ItemQuit)
	case key.Matches(msg, keys.SecondInstance):
		cwd, _ := os.Getwd()
		m.sim.shell.SecondInstance([]string{"deskshell"}, cwd)
	case key.Matches(msg, keys.Minimize):
		return m.sim.minimizePrimary()
	case key.Matches(msg, keys.Close):
		return m.sim.closePrimary()
	case key.Matches(msg, keys.Up):
		return m.withSelected(func(l string) error { return m.sim.moveBy(l, 0, -moveStep) })
	case key.Matches(msg, keys.Down):
		return m.withSelected(func(l string) error { return m.sim.moveBy(l, 0, moveStep) })
	case key.Matches(msg, keys.Left):
		return m.withSelected(func(l string) error { return m.sim.moveBy(l, -moveStep, 0) })
	case key.Matches(msg, keys.Right):
		return m.withSelected(func(l string) error { return m.sim.moveBy(l, moveStep, 0) })
	case key.Matches(msg, keys.Grow):
		return m.withSelected(func(l string) error { return m.sim.resizeBy(l, resizeStep) })
	case key.Matches(msg, keys.Shrink):
		return m.withSelected(func(l string) error { return m.sim.resizeBy(l, -resizeStep) })
	case key.Matches(msg, keys.Maximize):
		return m.withSelected(m.sim.toggleMaximize)
	}
	return nil
}

// afterAction picks up failures reported through the shell and quits once
// the shell has exited.
func (m Model) afterAction(err error) (tea.Model, tea.Cmd) {
	m.err, m.fatal = err, false
	if fatal := m.sim.takeFatal(); fatal != nil {
		m.err, m.fatal = fatal, true
	}
	if _, exited := m.sim.host.Exited(); exited {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) withSelected(fn func(label string) error) error {
	label, ok := m.selectedLabel()
	if !ok {
		return fmt.Errorf("no window selected")
	}
	return fn(label)
}

func (m Model) selectedLabel() (string, bool) {
	snaps := m.sim.host.Snapshots()
	if len(snaps) == 0 {
		return "", false
	}
	if m.selected >= len(snaps) {
		// The selection fell off the end after a window closed.
		return snaps[len(snaps)-1].Label, true
	}
	return snaps[m.selected].Label, true
}
