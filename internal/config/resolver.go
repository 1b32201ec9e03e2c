package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/watchfire-io/deskshell/internal/logging"
	"github.com/watchfire-io/deskshell/internal/models"
)

// buildOutputDirs are working-directory suffixes that mark a development
// build; the project root sits two levels above them.
var buildOutputDirs = []string{"build/bin"}

// Attempt records the outcome of trying one candidate path.
type Attempt struct {
	Path string
	Err  error
}

// Resolution is the result of a config search.
type Resolution struct {
	Config   models.AppConfig
	Source   string // empty when the defaults were used
	Attempts []Attempt
}

// Found reports whether a candidate file supplied the config.
func (r Resolution) Found() bool {
	return r.Source != ""
}

// CandidatePaths returns the config.json locations in priority order:
// next to the executable, in the working directory, at the project root when
// running from a build output directory, then the relative fallbacks.
// Empty exeDir or cwd skips the entries that depend on them.
func CandidatePaths(exeDir, cwd string) []string {
	var paths []string

	if exeDir != "" {
		paths = append(paths, filepath.Join(exeDir, ConfigFileName))
	}

	if cwd != "" {
		paths = append(paths, filepath.Join(cwd, ConfigFileName))

		if isBuildOutputDir(cwd) {
			root := filepath.Dir(filepath.Dir(filepath.Clean(cwd)))
			paths = append(paths, filepath.Join(root, ConfigFileName))
		}
	}

	paths = append(paths,
		ConfigFileName,
		filepath.Join("..", ConfigFileName),
		filepath.Join("..", "..", ConfigFileName),
	)
	return paths
}

// DefaultCandidates returns CandidatePaths for the running process.
func DefaultCandidates() []string {
	var exeDir, cwd string
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}
	if dir, err := os.Getwd(); err == nil {
		cwd = dir
	}
	return CandidatePaths(exeDir, cwd)
}

// Resolve searches paths and returns the effective config.
// It never fails: with no usable candidate it returns the defaults.
func Resolve(paths []string, log *logging.Logger) models.AppConfig {
	return ResolveFrom(paths, log).Config
}

// ResolveFrom tries each path in order and stops at the first one that both
// reads and parses. Unreadable and unparseable files are logged and skipped.
func ResolveFrom(paths []string, log *logging.Logger) Resolution {
	log = logging.OrNop(log)

	var res Resolution
	for _, path := range paths {
		file, err := loadConfigFile(path)
		res.Attempts = append(res.Attempts, Attempt{Path: path, Err: err})
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("Config candidate skipped")
			continue
		}

		res.Config = file.Effective()
		res.Source = path
		log.Info().Str("path", path).
			Bool("todo_visible", res.Config.TodoVisible).
			Bool("markdown_visible", res.Config.MarkdownVisible).
			Msg("Loaded config")
		return res
	}

	res.Config = models.NewAppConfig()
	log.Info().Int("candidates", len(paths)).Msg("No config file found, using defaults")
	return res
}

// loadConfigFile reads one candidate. A document that decodes to nothing
// (a bare null) is not a config object and fails like a parse error.
func loadConfigFile(path string) (*models.AppConfigFile, error) {
	var file *models.AppConfigFile
	if err := LoadJSON(path, &file); err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("failed to parse JSON from %s: not an object", path)
	}
	return file, nil
}

func isBuildOutputDir(dir string) bool {
	clean := filepath.ToSlash(filepath.Clean(dir))
	for _, suffix := range buildOutputDirs {
		if clean == suffix || strings.HasSuffix(clean, "/"+suffix) {
			return true
		}
	}
	return false
}
