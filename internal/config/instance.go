package config

import (
	"os"
	"syscall"

	"github.com/watchfire-io/deskshell/internal/models"
)

// LoadInstanceInfo loads the running shell's info from <dataDir>/instance.yaml.
// Returns nil if the file doesn't exist.
func LoadInstanceInfo(dataDir string) (*models.InstanceInfo, error) {
	path := InstanceFile(dataDir)
	if !FileExists(path) {
		return nil, nil
	}

	var info models.InstanceInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveInstanceInfo saves the running shell's info to <dataDir>/instance.yaml.
func SaveInstanceInfo(dataDir string, info *models.InstanceInfo) error {
	if err := EnsureDir(dataDir); err != nil {
		return err
	}
	return SaveYAML(InstanceFile(dataDir), info)
}

// RemoveInstanceInfo removes the instance.yaml file.
func RemoveInstanceInfo(dataDir string) error {
	path := InstanceFile(dataDir)
	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsInstanceRunning checks if the recorded shell process is still running.
// Returns true if instance.yaml exists and the PID is alive.
func IsInstanceRunning(dataDir string) (bool, *models.InstanceInfo, error) {
	info, err := LoadInstanceInfo(dataDir)
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}

	process, err := os.FindProcess(info.PID)
	if err != nil {
		return false, info, nil
	}

	// Signal 0 probes for existence without delivering anything.
	if err := process.Signal(syscall.Signal(0)); err != nil {
		_ = RemoveInstanceInfo(dataDir)
		return false, info, nil
	}

	return true, info, nil
}
