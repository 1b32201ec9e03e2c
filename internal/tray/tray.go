package tray

import (
	"errors"
	"fmt"

	"github.com/watchfire-io/deskshell/internal/logging"
	"github.com/watchfire-io/deskshell/internal/window"
)

// Tooltip is shown on the tray icon.
const Tooltip = "deskshell"

// ErrPrimaryWindowMissing means a menu or tray action ran while the primary
// window did not exist. It indicates a setup bug.
var ErrPrimaryWindowMissing = errors.New("primary window not found")

// Controller routes tray menu clicks and tray icon clicks to the primary
// window. It holds no window state; the window is looked up on every event.
type Controller struct {
	windows window.Locator
	exit    Exiter
	primary string
	menu    Menu
	log     *logging.Logger
}

// NewController creates a controller acting on the window labelled
// window.MainLabel.
func NewController(windows window.Locator, exit Exiter, log *logging.Logger) *Controller {
	return &Controller{
		windows: windows,
		exit:    exit,
		primary: window.MainLabel,
		menu:    NewMenu(),
		log:     logging.OrNop(log).Component("tray"),
	}
}

// Menu returns the controller's menu.
func (c *Controller) Menu() Menu {
	return c.menu
}

// Install hands the menu and both event handlers to the host.
// onError receives failures from either handler; nil drops them.
func (c *Controller) Install(host Host, onError func(source string, err error)) error {
	if onError == nil {
		onError = func(string, error) {}
	}

	onMenu := func(id string) {
		if err := c.HandleMenuEvent(id); err != nil {
			onError("menu", err)
		}
	}
	onTray := func(ev Event) {
		if err := c.HandleTrayEvent(ev); err != nil {
			onError("tray", err)
		}
	}

	if err := host.InstallTray(c.menu, Tooltip, onMenu, onTray); err != nil {
		return fmt.Errorf("failed to install tray: %w", err)
	}
	c.log.Debug().Strs("items", c.menu.IDs()).Msg("Tray installed")
	return nil
}

// HandleMenuEvent performs the action for a menu item id.
// Unknown ids are ignored.
func (c *Controller) HandleMenuEvent(id string) error {
	switch id {
	case ItemShow:
		w, err := c.primaryWindow()
		if err != nil {
			return err
		}
		return showAndFocus(w)

	case ItemHide:
		w, err := c.primaryWindow()
		if err != nil {
			return err
		}
		if err := w.Hide(); err != nil {
			return fmt.Errorf("failed to hide %s: %w", w.Label(), err)
		}
		return nil

	case ItemQuit:
		c.log.Info().Msg("Quit requested from tray menu")
		c.exit.Exit(0)
		return nil

	default:
		c.log.Debug().Str("id", id).Msg("Ignoring unknown menu item")
		return nil
	}
}

// HandleTrayEvent toggles the primary window on a left click.
// Every other interaction is ignored.
func (c *Controller) HandleTrayEvent(ev Event) error {
	if ev != LeftClick {
		return nil
	}

	w, err := c.primaryWindow()
	if err != nil {
		return err
	}

	visible, err := w.IsVisible()
	if err != nil {
		return fmt.Errorf("failed to query visibility of %s: %w", w.Label(), err)
	}

	if visible {
		if err := w.Hide(); err != nil {
			return fmt.Errorf("failed to hide %s: %w", w.Label(), err)
		}
		return nil
	}
	return showAndFocus(w)
}

func (c *Controller) primaryWindow() (window.Handle, error) {
	w, ok := c.windows.Window(c.primary)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPrimaryWindowMissing, c.primary)
	}
	return w, nil
}

func showAndFocus(w window.Handle) error {
	if err := w.Show(); err != nil {
		return fmt.Errorf("failed to show %s: %w", w.Label(), err)
	}
	if err := w.Focus(); err != nil {
		return fmt.Errorf("failed to focus %s: %w", w.Label(), err)
	}
	return nil
}
