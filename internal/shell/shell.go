// Package shell wires configuration, window creation, the tray and the
// single-instance handler together at startup.
package shell

import (
	"errors"
	"fmt"

	"github.com/watchfire-io/deskshell/internal/instance"
	"github.com/watchfire-io/deskshell/internal/logging"
	"github.com/watchfire-io/deskshell/internal/models"
	"github.com/watchfire-io/deskshell/internal/tray"
	"github.com/watchfire-io/deskshell/internal/window"
)

// Host is everything the shell needs from the desktop runtime.
type Host interface {
	window.Service
	tray.Host
	tray.Exiter
}

// Shell owns the startup sequence and the event handlers installed on the host.
type Shell struct {
	cfg      models.AppConfig
	host     Host
	states   window.StateLoader
	tray     *tray.Controller
	instance *instance.Coordinator
	log      *logging.Logger
	fatal    func(err error)
}

// New creates a shell. cfg is used read-only.
func New(cfg models.AppConfig, host Host, states window.StateLoader, log *logging.Logger) *Shell {
	log = logging.OrNop(log)
	s := &Shell{
		cfg:      cfg,
		host:     host,
		states:   states,
		tray:     tray.NewController(host, host, log),
		instance: instance.NewCoordinator(host, log),
		log:      log.Component("shell"),
	}
	s.fatal = func(err error) {
		s.log.Panic().Err(err).Msg("Tray menu action failed")
	}
	return s
}

// SetFatalHandler replaces what happens when a tray menu action fails.
// The default panics so setup bugs surface immediately.
func (s *Shell) SetFatalHandler(fn func(err error)) {
	s.fatal = fn
}

// Config returns the configuration the shell was started with.
func (s *Shell) Config() models.AppConfig {
	return s.cfg
}

// Setup creates the primary window, installs the tray, then creates each
// configured window in order. A window that fails to open does not stop the
// others; all creation errors are joined into the result.
func (s *Shell) Setup() error {
	var errs []error

	if err := s.open(window.Primary()); err != nil {
		errs = append(errs, err)
	}

	if err := s.tray.Install(s.host, s.handleEventError); err != nil {
		return errors.Join(append(errs, err)...)
	}

	for _, spec := range window.Configured(s.cfg) {
		if err := s.open(spec); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// SecondInstance is the callback for the host's single-instance lock.
func (s *Shell) SecondInstance(args []string, cwd string) {
	s.instance.HandleSecondInstance(args, cwd)
}

func (s *Shell) open(spec window.Spec) error {
	if _, err := window.Create(s.host, s.states, spec); err != nil {
		s.log.Error().Err(err).Str("label", spec.Label).Msg("Failed to create window")
		return fmt.Errorf("failed to create window %q: %w", spec.Label, err)
	}
	s.log.Info().Str("label", spec.Label).Bool("visible", spec.Visible).Msg("Window created")
	return nil
}

// handleEventError applies the failure policy per event source: menu actions
// are fatal, tray icon clicks are logged.
func (s *Shell) handleEventError(source string, err error) {
	if source == "menu" {
		s.fatal(err)
		return
	}
	s.log.Error().Err(err).Str("source", source).Msg("Tray action failed")
}
