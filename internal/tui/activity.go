package tui

import (
	"strings"
	"sync"
)

const activityLines = 8

// activityLog keeps the last lines written by the simulator's logger.
type activityLog struct {
	mu    sync.Mutex
	max   int
	lines []string
}

func newActivityLog(max int) *activityLog {
	return &activityLog{max: max}
}

func (a *activityLog) Write(p []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		a.lines = append(a.lines, line)
	}
	if over := len(a.lines) - a.max; over > 0 {
		a.lines = append([]string(nil), a.lines[over:]...)
	}
	return len(p), nil
}

func (a *activityLog) Lines() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.lines...)
}
