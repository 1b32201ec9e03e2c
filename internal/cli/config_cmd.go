package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/deskshell/internal/config"
	"github.com/watchfire-io/deskshell/internal/models"
	"github.com/watchfire-io/deskshell/internal/window"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show where the config is loaded from and the effective values",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	res := config.ResolveFrom(configCandidates(), nil)

	fmt.Fprintln(out, styleBrand.Render("Config candidates"))
	for _, a := range res.Attempts {
		fmt.Fprintf(out, "  %s  %s\n", styleValue.Render(a.Path), attemptStatus(a))
	}
	if !res.Found() {
		fmt.Fprintln(out, styleWarning.Render("No config file found, using defaults"))
	}

	fmt.Fprintln(out)
	printConfig(out, res.Config)
	return nil
}

func attemptStatus(a config.Attempt) string {
	switch {
	case a.Err == nil:
		return styleSuccess.Render("loaded")
	case errors.Is(a.Err, fs.ErrNotExist):
		return styleHint.Render("missing")
	default:
		return styleError.Render("invalid") + " " + styleHint.Render(a.Err.Error())
	}
}

func printConfig(out io.Writer, cfg models.AppConfig) {
	fmt.Fprintln(out, styleBrand.Render("Effective config"))
	printField(out, "todo_visible", fmt.Sprint(cfg.TodoVisible))
	printField(out, "markdown_visible", fmt.Sprint(cfg.MarkdownVisible))

	fmt.Fprintln(out)
	fmt.Fprintln(out, styleBrand.Render("Windows at startup"))
	for _, spec := range window.Catalog(cfg) {
		fmt.Fprintf(out, "  %s %s\n", styleCommand.Render(spec.Label), styleHint.Render(spec.Title))
	}
}

func printField(out io.Writer, label, value string) {
	fmt.Fprintf(out, "  %s %s\n", styleLabel.Render(fmt.Sprintf("%-18s", label+":")), styleValue.Render(value))
}
