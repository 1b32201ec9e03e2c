package tui

import "github.com/watchfire-io/deskshell/internal/models"

// StateSavedMsg reports a window state file written to disk.
type StateSavedMsg struct {
	Label string
	State models.WindowState
}
