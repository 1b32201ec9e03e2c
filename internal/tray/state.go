// Package tray implements the system tray menu and routes tray interactions
// to the primary window.
package tray

// Host installs the tray icon and its menu, then reports interactions through
// the two callbacks. Callbacks run on the host's event thread, one at a time.
type Host interface {
	InstallTray(menu Menu, tooltip string, onMenu func(id string), onTray func(Event)) error
}

// Exiter terminates the process.
type Exiter interface {
	Exit(code int)
}

// MouseButton identifies the button of a tray click.
type MouseButton int

// Mouse buttons.
const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// EventKind is the type of a tray icon interaction.
type EventKind int

// Tray icon interactions.
const (
	EventClick EventKind = iota
	EventDoubleClick
	EventEnter
	EventLeave
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventDoubleClick:
		return "double-click"
	case EventEnter:
		return "enter"
	case EventLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Event is a tray icon interaction.
type Event struct {
	Kind   EventKind
	Button MouseButton
}

// LeftClick is the only event that toggles the primary window.
var LeftClick = Event{Kind: EventClick, Button: ButtonLeft}
