// Package yaml loads bookfetch configuration from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/bookfetch"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file looked up when no path is given.
const DefaultConfigFile = ".bookfetch.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfig reads a configuration file. Fields missing from the file are
// left at their zero value so the result can be merged over defaults with
// bookfetch.Config.Merge. Unknown keys are rejected.
func LoadConfig(path string) (bookfetch.Config, error) {
	var cfg bookfetch.Config

	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, bookfetch.Errorf(bookfetch.EINVALID, "invalid config file %s: %v", path, err)
	}

	return cfg, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .bookfetch.yaml in the current directory
// 3. Look for .bookfetch.yaml in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
