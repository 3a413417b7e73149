package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/venvkit/pkg/errors"
)

// Config holds user defaults. Flags override it; it overrides built-in
// defaults.
//
//	python_version = "3.12.8"
//	pyenv          = "/opt/pyenv/bin/pyenv"
//	baseline       = ["ruff", "pytest", "pre-commit"]
//	author         = "Jane Doe <jane@example.com>"
type Config struct {
	PythonVersion string   `toml:"python_version"`
	Pyenv         string   `toml:"pyenv"`
	Baseline      []string `toml:"baseline"`
	Author        string   `toml:"author"`

	// Path is the file the values came from; empty when none was found.
	Path string `toml:"-"`
}

// loadConfig reads the config file named by explicit, $VENVKIT_CONFIG, or
// the XDG location, in that order. An explicitly named file must exist; the
// XDG file is optional.
func loadConfig(explicit string) (*Config, error) {
	path, required := explicit, true
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return &Config{}, nil
		}
		path, required = filepath.Join(dir, "config.toml"), false
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
	}

	cfg := &Config{Path: path}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PythonVersion != "" {
		if err := errors.ValidatePythonVersion(c.PythonVersion); err != nil {
			return err
		}
	}
	for _, pkg := range c.Baseline {
		if err := errors.ValidatePythonPackageName(pkg); err != nil {
			return err
		}
	}
	return nil
}

// configDir returns the config directory using XDG standard (~/.config/venvkit/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
