// Package wailshost runs the shell on Wails: native webview windows, the
// system tray and the single-instance lock.
package wailshost

import (
	"embed"
	"os"
	"runtime"
	"sync"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/icons"

	"github.com/watchfire-io/deskshell/internal/logging"
	"github.com/watchfire-io/deskshell/internal/tray"
	"github.com/watchfire-io/deskshell/internal/window"
	"github.com/watchfire-io/deskshell/internal/winstate"
)

//go:embed all:frontend/dist
var assets embed.FS

// UniqueID identifies the single-instance lock.
const UniqueID = "io.watchfire.deskshell"

// Options configures the host.
type Options struct {
	Name     string
	Recorder *winstate.Recorder // nil disables geometry persistence
	Log      *logging.Logger
}

// Host implements shell.Host on top of a Wails application.
type Host struct {
	app      *application.App
	recorder *winstate.Recorder
	log      *logging.Logger

	// dispatch serializes tray, menu and second-instance callbacks.
	dispatch sync.Mutex

	mu             sync.Mutex
	secondInstance func(args []string, cwd string)
	systemTray     *application.SystemTray
}

// New creates the Wails application. Nothing is shown until Run.
func New(opts Options) *Host {
	h := &Host{
		recorder: opts.Recorder,
		log:      logging.OrNop(opts.Log).Component("wails"),
	}

	h.app = application.New(application.Options{
		Name:        opts.Name,
		Description: "Desktop shell with tray and remembered window layout",
		Assets: application.AssetOptions{
			Handler: application.BundledAssetFileServer(assets),
		},
		Mac: application.MacOptions{
			// The tray keeps the shell alive with every window hidden.
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
		SingleInstance: &application.SingleInstanceOptions{
			UniqueID: UniqueID,
			OnSecondInstanceLaunch: func(data application.SecondInstanceData) {
				h.handleSecondInstance(data.Args, data.WorkingDir)
			},
		},
	})
	return h
}

// OnSecondInstance sets the second-instance callback. Launches detected
// before it is set are dropped.
func (h *Host) OnSecondInstance(fn func(args []string, cwd string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.secondInstance = fn
}

// Run blocks until the application quits.
func (h *Host) Run() error {
	return h.app.Run()
}

// Exit quits the application. A non-zero code terminates immediately.
func (h *Host) Exit(code int) {
	if code != 0 {
		os.Exit(code)
	}
	h.app.Quit()
}

// InstallTray implements tray.Host.
func (h *Host) InstallTray(model tray.Menu, tooltip string, onMenu func(id string), onTray func(tray.Event)) error {
	menu := h.app.NewMenu()
	for _, it := range model.Items() {
		if it.Separator {
			menu.AddSeparator()
			continue
		}
		id := it.ID
		menu.Add(it.Label).
			SetEnabled(it.Enabled).
			OnClick(func(*application.Context) {
				h.dispatchEvent(func() { onMenu(id) })
			})
	}

	st := h.app.SystemTray.New()
	st.SetTooltip(tooltip)
	if runtime.GOOS == "darwin" {
		st.SetTemplateIcon(icons.SystrayMacTemplate)
	}
	st.SetMenu(menu)

	trayEvent := func(ev tray.Event) func() {
		return func() { h.dispatchEvent(func() { onTray(ev) }) }
	}
	st.OnClick(trayEvent(tray.LeftClick))
	st.OnRightClick(trayEvent(tray.Event{Kind: tray.EventClick, Button: tray.ButtonRight}))
	st.OnDoubleClick(trayEvent(tray.Event{Kind: tray.EventDoubleClick, Button: tray.ButtonLeft}))
	st.OnMouseEnter(trayEvent(tray.Event{Kind: tray.EventEnter}))
	st.OnMouseLeave(trayEvent(tray.Event{Kind: tray.EventLeave}))

	h.mu.Lock()
	h.systemTray = st
	h.mu.Unlock()
	return nil
}

func (h *Host) handleSecondInstance(args []string, cwd string) {
	h.mu.Lock()
	fn := h.secondInstance
	h.mu.Unlock()

	if fn == nil {
		h.log.Debug().Msg("Second instance before setup, ignoring")
		return
	}
	h.dispatchEvent(func() { fn(args, cwd) })
}

func (h *Host) dispatchEvent(fn func()) {
	h.dispatch.Lock()
	defer h.dispatch.Unlock()
	fn()
}

var _ tray.Host = (*Host)(nil)
var _ tray.Exiter = (*Host)(nil)
var _ window.Service = (*Host)(nil)
