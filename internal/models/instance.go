package models

import (
	"time"

	"github.com/google/uuid"
)

// InstanceInfo describes the running shell process.
// This corresponds to <data dir>/instance.yaml.
type InstanceInfo struct {
	Version   int       `yaml:"version"`
	SessionID string    `yaml:"session_id"`
	PID       int       `yaml:"pid"`
	AppVer    string    `yaml:"app_version"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewInstanceInfo creates instance info for the current process.
func NewInstanceInfo(pid int, appVersion string) *InstanceInfo {
	return &InstanceInfo{
		Version:   1,
		SessionID: uuid.NewString(),
		PID:       pid,
		AppVer:    appVersion,
		StartedAt: time.Now().UTC(),
	}
}
