// Package config loads the optional YAML run configuration. Flags
// always override file values; a missing file is not an error.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"metabatch/internal/diagnostic"
)

// Config holds run configuration loaded from the config file.
type Config struct {
	// Server is the registration API base URL.
	Server string `yaml:"server,omitempty"`

	// Credentials is "username:password", a bare username, or
	// "sessionid=...".
	Credentials string `yaml:"credentials,omitempty"`

	// Shoulder is the default mint shoulder.
	Shoulder string `yaml:"shoulder,omitempty"`

	// OutputColumns is the default output column spec.
	OutputColumns string `yaml:"output_columns,omitempty"`
}

// DefaultPath returns the default config file location under the
// user's XDG config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "metabatch", "config.yaml")
}

// Load reads the config file at path. A missing file (or empty path)
// yields a zero Config; malformed YAML is a config error.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, diagnostic.Wrap(diagnostic.KindConfig, err, "read config file")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, diagnostic.Wrap(diagnostic.KindConfig, err, "parse config file "+path)
	}

	return cfg, nil
}
