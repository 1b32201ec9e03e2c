package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/deskshell/internal/logging"
	"github.com/watchfire-io/deskshell/internal/window"
	"github.com/watchfire-io/deskshell/internal/winstate"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect saved window state",
}

var stateShowCmd = &cobra.Command{
	Use:   "show <label>",
	Short: "Show a window's saved state and the parameters it would open with",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateShow,
}

var stateWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print window state changes as they are saved",
	Args:  cobra.NoArgs,
	RunE:  runStateWatch,
}

func init() {
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateWatchCmd)
}

func runStateShow(cmd *cobra.Command, args []string) error {
	label := args[0]
	spec, ok := window.Lookup(label)
	if !ok {
		return fmt.Errorf("unknown window %q", label)
	}

	out := cmd.OutOrStdout()
	store := winstate.NewStore(dataDir(), nil)
	state := store.Load(label)

	fmt.Fprintln(out, styleBrand.Render("Saved state"))
	printField(out, "file", store.Path(label))
	if state.IsEmpty() {
		fmt.Fprintln(out, "  "+styleHint.Render("nothing saved, catalog defaults apply"))
	} else if err := writeJSON(out, state); err != nil {
		return err
	}

	p := window.Build(spec, state)
	fmt.Fprintln(out)
	fmt.Fprintln(out, styleBrand.Render("Opens with"))
	printField(out, "title", p.Title)
	printField(out, "content", p.Content)
	printField(out, "size", fmt.Sprintf("%gx%g", p.Width, p.Height))
	if p.HasPosition {
		printField(out, "position", fmt.Sprintf("%d,%d", p.X, p.Y))
	} else {
		printField(out, "position", "placed by host")
	}
	printField(out, "maximized", fmt.Sprint(p.Maximized))
	printField(out, "fullscreen", fmt.Sprint(p.Fullscreen))
	printField(out, "visible", fmt.Sprint(p.Visible))
	return nil
}

func runStateWatch(cmd *cobra.Command, args []string) error {
	log := logging.NewDefault()
	store := winstate.NewStore(dataDir(), log)

	w, err := winstate.NewWatcher(store, log)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", styleValue.Render(store.Dir()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-sigCh:
			return nil
		case ev := <-w.Events():
			fmt.Fprintln(out, styleCommand.Render(ev.Label))
			if err := writeJSON(out, ev.State); err != nil {
				return err
			}
		}
	}
}

func writeJSON(out io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "  ", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, "  "+string(data))
	return nil
}
