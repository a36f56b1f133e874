package constants

import "time"

const (
	AppName           = "ritual"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/ritual/config.toml"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the format used for selecting a calendar month (YYYY-MM)
	MonthFormat = "2006-01"

	// Storage keys. The habit record map, the theme name and the accent
	// colour key are three independent entries in the key-value store.
	KeyHabits = "habits"
	KeyTheme  = "theme"
	KeyAccent = "accent"

	// Storage backends
	BackendFile   = "file"
	BackendSQLite = "sqlite"

	// DefaultDebounce is how long rapid progress updates for a habit are
	// coalesced before the persisted write fires.
	DefaultDebounce = 200 * time.Millisecond

	// DefaultTarget is the per-day target a new habit starts with.
	DefaultTarget = 1

	// YearWindowDays is the size of the rolling window used by the yearly view.
	YearWindowDays = 365
)
