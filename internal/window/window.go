// Package window turns window specs and saved geometry into creation
// parameters for the host windowing service.
package window

import (
	"errors"

	"github.com/watchfire-io/deskshell/internal/models"
)

// Well-known window labels.
const (
	MainLabel     = "main"
	TodoLabel     = "todo"
	MarkdownLabel = "markdown"
)

// ErrWindowExists is returned by hosts asked to create a duplicate label.
var ErrWindowExists = errors.New("window already exists")

// Spec describes a window the shell wants to open.
type Spec struct {
	Label         string
	Title         string
	Content       string // URL or route served to the window
	DefaultWidth  float64
	DefaultHeight float64
	Visible       bool
}

// CreationParams is the fully resolved input to the host's window creation.
type CreationParams struct {
	Label   string
	Title   string
	Content string
	Width   float64
	Height  float64

	// HasPosition is false when no complete saved position exists; the host
	// then places the window itself.
	HasPosition bool
	X           int
	Y           int

	Maximized  bool
	Fullscreen bool
	Visible    bool
}

// Handle is a live host window.
type Handle interface {
	Label() string
	Show() error
	Hide() error
	Focus() error
	Unminimize() error
	IsVisible() (bool, error)
}

// Geometer is implemented by handles that can report their current geometry.
type Geometer interface {
	Geometry() (models.WindowState, error)
}

// Locator resolves a window by label. ok is false when no such window exists.
type Locator interface {
	Window(label string) (Handle, bool)
}

// Creator creates host windows.
type Creator interface {
	CreateWindow(p CreationParams) (Handle, error)
}

// Service is the windowing collaborator the shell runs against.
type Service interface {
	Creator
	Locator
}

// StateLoader supplies saved geometry for a label.
type StateLoader interface {
	Load(label string) models.WindowState
}
