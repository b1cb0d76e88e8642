package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pthm/scenariolint/internal/logger"
)

// ProjectConfigFile is looked up in the working directory and its parents.
const ProjectConfigFile = "scenariolint.yaml"

//go:embed defaults.yaml
var defaultsYAML []byte

// Loader resolves configuration with layered precedence:
//  1. embedded defaults
//  2. project config (scenariolint.yaml in the working directory or a parent)
//  3. an explicit file passed with --config
type Loader struct {
	log *logger.Logger
	dir string
}

// NewLoader creates a loader that searches for project config from dir.
// An empty dir means the working directory.
func NewLoader(log *logger.Logger, dir string) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{log: log, dir: dir}
}

// Load returns the resolved and validated configuration. Each layer only
// overrides the keys it sets.
func (l *Loader) Load(explicitPath string) (*Config, error) {
	cfg := Default()

	if path := l.findProjectConfig(); path != "" {
		if err := mergeFile(cfg, path); err != nil {
			return nil, err
		}
		l.log.Debug("loaded project config", "path", path)
	} else {
		l.log.Debug("no project config found")
	}

	if explicitPath != "" {
		if err := mergeFile(cfg, explicitPath); err != nil {
			return nil, err
		}
		l.log.Debug("loaded config", "path", explicitPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findProjectConfig walks up from the start directory looking for
// ProjectConfigFile.
func (l *Loader) findProjectConfig() string {
	dir := l.dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = cwd
	}

	for {
		path := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		} else if !errors.Is(err, os.ErrNotExist) {
			l.log.Warn("failed to stat project config", "path", path, "error", err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
