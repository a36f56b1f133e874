// Package config loads the application's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mkbrennan/ritual/internal/constants"
)

// Config holds all application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Habits  HabitsConfig  `toml:"habits"`
}

// StorageConfig controls where and how state is persisted.
type StorageConfig struct {
	// Backend selects the key-value provider: "file" or "sqlite".
	Backend string `toml:"backend"`
	// Path is the backing file for the selected backend.
	Path string `toml:"path"`
	// DebounceMs is the progress write-coalescing window in milliseconds.
	DebounceMs int `toml:"debounce_ms"`
}

// HabitsConfig holds defaults applied to newly created habits.
type HabitsConfig struct {
	DefaultGradient string `toml:"default_gradient"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend:    constants.BackendFile,
			Path:       filepath.Join(configHome(), "ritual.json"),
			DebounceMs: int(constants.DefaultDebounce / time.Millisecond),
		},
		Habits: HabitsConfig{
			DefaultGradient: "ocean",
		},
	}
}

// Load reads the config file at path, falling back to defaults when the
// file is absent. Values missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	path = ExpandHome(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Storage.Path = ExpandHome(cfg.Storage.Path)
	if cfg.Storage.Backend != constants.BackendFile && cfg.Storage.Backend != constants.BackendSQLite {
		return cfg, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return cfg, nil
}

// Debounce returns the configured write-coalescing window.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.Storage.DebounceMs) * time.Millisecond
}

// ExpandHome resolves a leading "~/" against the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}

func configHome() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, constants.AppName)
	}
	return "." + constants.AppName
}
