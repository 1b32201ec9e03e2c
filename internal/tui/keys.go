package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every simulator binding. It satisfies help.KeyMap.
type keyMap struct {
	TrayClick       key.Binding
	TrayRightClick  key.Binding
	TrayDoubleClick key.Binding
	MenuShow        key.Binding
	MenuHide        key.Binding
	MenuQuit        key.Binding
	SecondInstance  key.Binding
	Minimize        key.Binding
	Close           key.Binding
	Next            key.Binding
	Up              key.Binding
	Down            key.Binding
	Left            key.Binding
	Right           key.Binding
	Grow            key.Binding
	Shrink          key.Binding
	Maximize        key.Binding
	Help            key.Binding
	Leave           key.Binding
}

var keys = keyMap{
	TrayClick: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "tray click"),
	),
	TrayRightClick: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "tray right click"),
	),
	TrayDoubleClick: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "tray double click"),
	),
	MenuShow: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "menu: show"),
	),
	MenuHide: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "menu: hide"),
	),
	MenuQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "menu: quit"),
	),
	SecondInstance: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "second instance"),
	),
	Minimize: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "minimize main"),
	),
	Close: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close main"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "select window"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓/←/→", "move"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
	),
	Grow: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+/-", "resize"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("-"),
	),
	Maximize: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "toggle maximize"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Leave: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+c", "leave"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TrayClick, k.MenuShow, k.MenuHide, k.MenuQuit, k.Help, k.Leave}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TrayClick, k.TrayRightClick, k.TrayDoubleClick},
		{k.MenuShow, k.MenuHide, k.MenuQuit},
		{k.SecondInstance, k.Minimize, k.Close},
		{k.Next, k.Up, k.Grow, k.Maximize},
		{k.Help, k.Leave},
	}
}
