package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader locates and reads the rc file.
type Loader struct {
	Version      string // Build version, "dev" enables ./.mixpaintrc
	OverridePath string // Explicit path from -config
	// ConfigHome replaces $XDG_CONFIG_HOME (or ~/.config) when set.
	ConfigHome string
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load reads and validates the configuration. Defaults are returned when
// no file exists.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (l *Loader) configHome() string {
	if l.ConfigHome != "" {
		return l.ConfigHome
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// DefaultPath is where `config save` writes when no override is given.
func (l *Loader) DefaultPath() string {
	if l.OverridePath != "" {
		return l.OverridePath
	}
	return filepath.Join(l.configHome(), "mixpaint", "config.rc")
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	if l.Version == "dev" {
		wd, _ := os.Getwd()
		localPath := filepath.Join(wd, ".mixpaintrc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	for _, name := range []string{"config.rc", "mixpaint.rc"} {
		p := filepath.Join(l.configHome(), "mixpaint", name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
