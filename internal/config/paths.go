// Package config handles configuration resolution, file loading, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName names the per-user data directory.
	AppName = "deskshell"

	// ConfigFileName is the startup configuration searched across candidate paths.
	ConfigFileName = "config.json"

	// InstanceFileName records the running shell process.
	InstanceFileName = "instance.yaml"

	// WindowStateSuffix is appended to a window label to name its state file.
	WindowStateSuffix = "-window-state.json"
)

// DataDir returns the application data directory (<user config dir>/deskshell).
// Falls back to the working directory, then ".", when the user config dir is unknown.
func DataDir() string {
	if base, err := os.UserConfigDir(); err == nil && base != "" {
		return filepath.Join(base, AppName)
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// WindowStateFileName returns the state file name for a window label
// (e.g., "todo-window-state.json").
func WindowStateFileName(label string) string {
	return label + WindowStateSuffix
}

// InstanceFile returns the path to instance.yaml inside dataDir.
func InstanceFile(dataDir string) string {
	return filepath.Join(dataDir, InstanceFileName)
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
