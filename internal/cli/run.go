package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/deskshell/internal/buildinfo"
	"github.com/watchfire-io/deskshell/internal/config"
	"github.com/watchfire-io/deskshell/internal/host/wailshost"
	"github.com/watchfire-io/deskshell/internal/logging"
	"github.com/watchfire-io/deskshell/internal/models"
	"github.com/watchfire-io/deskshell/internal/shell"
	"github.com/watchfire-io/deskshell/internal/winstate"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the shell (default)",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	log := logging.NewDefault()
	cfg := config.Resolve(configCandidates(), log.Component("config"))

	dir := dataDir()
	store := winstate.NewStore(dir, log)
	recorder := winstate.NewRecorder(store, winstate.DefaultDelay, log)
	defer recorder.Stop()

	// A second launch exits inside wailshost.New after notifying the first.
	host := wailshost.New(wailshost.Options{
		Name:     config.AppName,
		Recorder: recorder,
		Log:      log,
	})

	info := models.NewInstanceInfo(os.Getpid(), buildinfo.Version)
	if err := config.SaveInstanceInfo(dir, info); err != nil {
		log.Warn().Err(err).Msg("Failed to write instance info")
	}
	defer func() {
		if err := config.RemoveInstanceInfo(dir); err != nil {
			log.Warn().Err(err).Msg("Failed to remove instance info")
		}
	}()

	sh := shell.New(cfg, host, store, log)
	host.OnSecondInstance(sh.SecondInstance)

	if err := sh.Setup(); err != nil {
		log.Error().Err(err).Msg("Startup incomplete")
	}
	log.Info().Str("session", info.SessionID).Int("pid", info.PID).Msg("Shell started")

	if err := host.Run(); err != nil {
		return fmt.Errorf("shell stopped: %w", err)
	}
	return nil
}
