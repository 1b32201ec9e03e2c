// Package winstate persists per-window geometry under the application data directory.
package winstate

import (
	"fmt"
	"path/filepath"

	"github.com/watchfire-io/deskshell/internal/config"
	"github.com/watchfire-io/deskshell/internal/logging"
	"github.com/watchfire-io/deskshell/internal/models"
)

// Store reads and writes one JSON document per window label.
type Store struct {
	dir string
	log *logging.Logger
}

// NewStore creates a store rooted at dir. An empty dir uses config.DataDir().
func NewStore(dir string, log *logging.Logger) *Store {
	if dir == "" {
		dir = config.DataDir()
	}
	return &Store{
		dir: dir,
		log: logging.OrNop(log).Component("winstate"),
	}
}

// Dir returns the directory holding the state files.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the state file path for a window label.
func (s *Store) Path(label string) string {
	return filepath.Join(s.dir, config.WindowStateFileName(label))
}

// Load returns the saved state for label. A missing or corrupt file yields an
// empty state; window creation must never be blocked by it.
func (s *Store) Load(label string) models.WindowState {
	var state models.WindowState
	path := s.Path(label)
	if err := config.LoadJSON(path, &state); err != nil {
		s.log.Debug().Err(err).Str("label", label).Msg("No usable window state, using defaults")
		return models.WindowState{}
	}
	return state
}

// Save replaces the state file for label.
func (s *Store) Save(label string, state models.WindowState) error {
	if err := config.SaveJSON(s.Path(label), state); err != nil {
		return fmt.Errorf("failed to save window state for %q: %w", label, err)
	}
	return nil
}

// LabelFromFile extracts the window label from a state file name.
// Returns false for files that are not window state files.
func LabelFromFile(name string) (string, bool) {
	base := filepath.Base(name)
	suffix := config.WindowStateSuffix
	if len(base) <= len(suffix) || base[len(base)-len(suffix):] != suffix {
		return "", false
	}
	return base[:len(base)-len(suffix)], true
}
