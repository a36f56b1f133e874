package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkbrennan/ritual/internal/constants"
)

func TestLoadAbsentFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Backend != constants.BackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Storage.Backend, constants.BackendFile)
	}
	if cfg.Debounce() != constants.DefaultDebounce {
		t.Errorf("Debounce() = %v, want %v", cfg.Debounce(), constants.DefaultDebounce)
	}
	if cfg.Habits.DefaultGradient != "ocean" {
		t.Errorf("DefaultGradient = %q", cfg.Habits.DefaultGradient)
	}
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[storage]
backend = "sqlite"
path = "/tmp/ritual.db"
debounce_ms = 500

[habits]
default_gradient = "forest"
`
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Backend != constants.BackendSQLite {
		t.Errorf("Backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "/tmp/ritual.db" {
		t.Errorf("Path = %q", cfg.Storage.Path)
	}
	if cfg.Debounce() != 500*time.Millisecond {
		t.Errorf("Debounce() = %v, want 500ms", cfg.Debounce())
	}
	if cfg.Habits.DefaultGradient != "forest" {
		t.Errorf("DefaultGradient = %q, want forest", cfg.Habits.DefaultGradient)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[habits]\ndefault_gradient = \"rose\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Backend != constants.BackendFile {
		t.Errorf("Backend = %q, want the default", cfg.Storage.Backend)
	}
	if cfg.Habits.DefaultGradient != "rose" {
		t.Errorf("DefaultGradient = %q, want rose", cfg.Habits.DefaultGradient)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[storage]\nbackend = \"postgres\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted an unknown storage backend")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x.toml"); got != filepath.Join(home, "x.toml") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/abs/x.toml"); got != "/abs/x.toml" {
		t.Errorf("ExpandHome() left absolute paths alone, got %q", got)
	}
}
