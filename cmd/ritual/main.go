package main

import (
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mkbrennan/ritual/internal/cli"
	"github.com/mkbrennan/ritual/internal/cli/habits"
	"github.com/mkbrennan/ritual/internal/cli/settings"
	"github.com/mkbrennan/ritual/internal/cli/system"
	"github.com/mkbrennan/ritual/internal/config"
	"github.com/mkbrennan/ritual/internal/constants"
	errs "github.com/mkbrennan/ritual/internal/errors"
	"github.com/mkbrennan/ritual/internal/logger"
	"github.com/mkbrennan/ritual/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd     `cmd:"" help:"Initialize ritual storage."`
	Doctor system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Habit  habits.HabitCmd    `cmd:"" help:"Manage habits and daily progress."`
	Theme  settings.ThemeCmd  `cmd:"" help:"Show or set the theme."`
	Accent settings.AccentCmd `cmd:"" help:"Show or set the accent colour."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local habit tracker: schedules, streaks and completion history"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errs.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(config.ExpandHome(CLI.Config)),
	}); err != nil {
		errs.Fatal(err)
	}

	var kv storage.KV
	if cfg.Storage.Backend == constants.BackendSQLite {
		kv = storage.NewSQLiteStore(cfg.Storage.Path)
	} else {
		kv = storage.NewFileStore(cfg.Storage.Path)
	}

	store := storage.NewStore(kv, cfg.Debounce())
	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
		Now:    time.Now,
	}

	// Load the record map before running the command (init does its own).
	if selected := ctx.Selected(); selected == nil || selected.Name != "init" {
		if err := store.Load(); err != nil {
			errs.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)

	// Settle debounced progress writes before the process exits.
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close storage", "error", closeErr)
	}

	errs.Fatal(err)
}
