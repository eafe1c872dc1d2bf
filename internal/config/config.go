// Package config loads and provides application configuration.
//
// On first run, a default YAML config is written to ~/.cursedterm.yaml.
// Subsequent runs read and merge that file with built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all user-configurable settings.
type Config struct {
	// Shell is the command spawned inside the PTY. Empty means $SHELL,
	// falling back to /bin/bash (spec §6).
	Shell string `yaml:"shell"`

	// Theme selects the chrome's color palette.
	Theme string `yaml:"theme"`

	// LogPath is where the application log is written. Empty means
	// ~/.cursedterm.log.
	LogPath string `yaml:"log_path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Shell:   "",
		Theme:   "dark",
		LogPath: "",
	}
}

// configPath returns the path to ~/.cursedterm.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cursedterm.yaml")
}

// Load reads the config file, falling back to defaults for missing fields.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		// No config file yet - write defaults for future editing.
		writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	validThemes := map[string]bool{"dark": true, "light": true}
	if !validThemes[cfg.Theme] {
		cfg.Theme = "dark"
	}

	return cfg
}

// writeDefaults persists the default configuration to disk.
func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# cursedterm configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}

// LogFilePath resolves the log destination: the configured LogPath, or
// ~/.cursedterm.log if unset.
func (c Config) LogFilePath() string {
	if c.LogPath != "" {
		return c.LogPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cursedterm.log"
	}
	return filepath.Join(home, ".cursedterm.log")
}
