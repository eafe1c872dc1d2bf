package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want 'dark'", cfg.Theme)
	}
	if cfg.Shell != "" {
		t.Errorf("Shell = %q, want empty (means $SHELL)", cfg.Shell)
	}
	if cfg.LogPath != "" {
		t.Errorf("LogPath = %q, want empty", cfg.LogPath)
	}
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test-config.yaml")

	original := DefaultConfig()
	original.Theme = "light"
	original.Shell = "/usr/bin/fish"
	original.LogPath = "/tmp/cursedterm.log"

	writeDefaults(path, original)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if loaded.Theme != "light" {
		t.Errorf("Loaded Theme = %q, want 'light'", loaded.Theme)
	}
	if loaded.Shell != "/usr/bin/fish" {
		t.Errorf("Loaded Shell = %q, want '/usr/bin/fish'", loaded.Shell)
	}
	if loaded.LogPath != "/tmp/cursedterm.log" {
		t.Errorf("Loaded LogPath = %q, want '/tmp/cursedterm.log'", loaded.LogPath)
	}
}

func TestLoad_WritesDefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Load()
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want 'dark'", cfg.Theme)
	}

	if _, err := os.Stat(filepath.Join(home, ".cursedterm.yaml")); err != nil {
		t.Errorf("Load should write a default config file: %v", err)
	}
}

func TestLoad_InvalidThemeFallsBackToDark(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".cursedterm.yaml")
	if err := os.WriteFile(path, []byte("theme: monokai\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := Load()
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want fallback 'dark' for an invalid theme", cfg.Theme)
	}
}

func TestLoad_MergesExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".cursedterm.yaml")
	if err := os.WriteFile(path, []byte("shell: /bin/zsh\ntheme: light\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := Load()
	if cfg.Shell != "/bin/zsh" {
		t.Errorf("Shell = %q, want '/bin/zsh'", cfg.Shell)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want 'light'", cfg.Theme)
	}
}

func TestLogFilePath_DefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Config{}
	want := filepath.Join(home, ".cursedterm.log")
	if got := cfg.LogFilePath(); got != want {
		t.Errorf("LogFilePath() = %q, want %q", got, want)
	}
}

func TestLogFilePath_UsesConfiguredValue(t *testing.T) {
	cfg := Config{LogPath: "/var/log/cursedterm.log"}
	if got := cfg.LogFilePath(); got != "/var/log/cursedterm.log" {
		t.Errorf("LogFilePath() = %q, want configured value", got)
	}
}
