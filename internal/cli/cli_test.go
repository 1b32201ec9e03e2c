package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/watchfire-io/deskshell/internal/buildinfo"
	"github.com/watchfire-io/deskshell/internal/config"
	"github.com/watchfire-io/deskshell/internal/models"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagConfig, flagDataDir, flagVerbose = "", "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigShowUsesExplicitFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"todo_visible": false}`)

	out, err := execute(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}

	for _, want := range []string{path, "loaded", "todo_visible:", "markdown_visible:", "Markdown"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Todo") {
		t.Errorf("disabled todo window listed:\n%s", out)
	}
}

func TestConfigShowReportsInvalidFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"todo_visible": "yes"}`)

	out, err := execute(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "invalid") {
		t.Errorf("invalid candidate not reported:\n%s", out)
	}
}

func TestStateShowMergesSavedState(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.WindowStateFileName("main"),
		`{"x": 10, "y": 20, "width": 1024, "height": null, "maximized": null, "fullscreen": null}`)

	out, err := execute(t, "state", "show", "main", "--data-dir", dir)
	if err != nil {
		t.Fatalf("state show: %v", err)
	}
	for _, want := range []string{"1024x600", "10,20", `"width": 1024`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStateShowWithoutSavedState(t *testing.T) {
	out, err := execute(t, "state", "show", "todo", "--data-dir", t.TempDir())
	if err != nil {
		t.Fatalf("state show: %v", err)
	}
	for _, want := range []string{"nothing saved", "600x400", "placed by host"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStateShowUnknownLabel(t *testing.T) {
	if _, err := execute(t, "state", "show", "sidebar", "--data-dir", t.TempDir()); err == nil {
		t.Fatal("expected error for unknown label")
	}
}

func TestStatus(t *testing.T) {
	t.Run("not running", func(t *testing.T) {
		out, err := execute(t, "status", "--data-dir", t.TempDir())
		if err != nil {
			t.Fatalf("status: %v", err)
		}
		if !strings.Contains(out, "not running") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("running", func(t *testing.T) {
		dir := t.TempDir()
		info := models.NewInstanceInfo(os.Getpid(), "1.2.3")
		if err := config.SaveInstanceInfo(dir, info); err != nil {
			t.Fatal(err)
		}

		out, err := execute(t, "status", "--data-dir", dir)
		if err != nil {
			t.Fatalf("status: %v", err)
		}
		for _, want := range []string{"is running", info.SessionID, "1.2.3"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, buildinfo.Version) {
		t.Errorf("output missing version %q:\n%s", buildinfo.Version, out)
	}
}
