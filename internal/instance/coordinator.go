// Package instance brings the primary window forward when a second copy of
// the shell is launched.
package instance

import (
	"strings"

	"github.com/watchfire-io/deskshell/internal/logging"
	"github.com/watchfire-io/deskshell/internal/window"
)

// Coordinator handles second-instance notifications from the host's
// single-instance lock.
type Coordinator struct {
	windows window.Locator
	primary string
	log     *logging.Logger
}

// NewCoordinator creates a coordinator acting on window.MainLabel.
func NewCoordinator(windows window.Locator, log *logging.Logger) *Coordinator {
	return &Coordinator{
		windows: windows,
		primary: window.MainLabel,
		log:     logging.OrNop(log).Component("instance"),
	}
}

// HandleSecondInstance shows, focuses and restores the primary window.
// It may run before the window exists or after it is gone, so every step is
// best effort and failures are dropped.
func (c *Coordinator) HandleSecondInstance(args []string, cwd string) {
	c.log.Info().
		Str("args", strings.Join(args, " ")).
		Str("cwd", cwd).
		Msg("Second instance launched")

	w, ok := c.windows.Window(c.primary)
	if !ok {
		c.log.Debug().Str("label", c.primary).Msg("Primary window not available")
		return
	}

	_ = w.Show()
	_ = w.Focus()
	_ = w.Unminimize()
}
