// Package config provides the configuration loader for solverify.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.osec.io/solverify/internal/core/domain"
	"go.osec.io/solverify/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file name.
const FileName = "solverify.yaml"

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger ports.Logger

	// Dir is where the per-project file is looked up; empty means cwd.
	Dir string
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the configuration. Search order: solverify.yaml in the
// working directory, then ~/.solverify/config.yaml. A missing file is not an
// error; defaults apply.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, ok := l.findFile()
	if !ok {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path resolved from fixed locations
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read configuration"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, err.Error()), "path", path)
	}

	if err := apply(cfg, file); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (l *Loader) findFile() (string, bool) {
	dir := l.Dir
	if dir == "" {
		dir = "."
	}

	local := filepath.Join(dir, FileName)
	if _, err := os.Stat(local); err == nil {
		return local, true
	} else if !errors.Is(err, fs.ErrNotExist) {
		l.Logger.Warn("cannot stat " + local)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	global := filepath.Join(home, ".solverify", "config.yaml")
	if _, err := os.Stat(global); err == nil {
		return global, true
	}
	return "", false
}

func apply(cfg *domain.Config, file File) error {
	if file.RemoteURL != "" {
		cfg.RemoteURL = file.RemoteURL
	}
	if file.RPCURL != "" {
		cfg.RPCURL = file.RPCURL
	}
	if file.BaseImage != "" {
		cfg.BaseImage = file.BaseImage
	}
	if file.ResultsPath != "" {
		cfg.ResultsPath = file.ResultsPath
	}
	if file.PollInterval != "" {
		d, err := time.ParseDuration(file.PollInterval)
		if err != nil {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigInvalid, ""), "field", "poll_interval"), "value", file.PollInterval)
		}
		cfg.PollInterval = d
	}
	if file.PollMaxWait != "" {
		d, err := time.ParseDuration(file.PollMaxWait)
		if err != nil {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigInvalid, ""), "field", "poll_max_wait"), "value", file.PollMaxWait)
		}
		cfg.PollMaxWait = d
	}
	return nil
}
