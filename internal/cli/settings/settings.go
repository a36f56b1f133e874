// Package settings implements the theme and accent commands. Both are
// single scalar values stored under their own keys, independent of the
// habit record blob.
package settings

import (
	"fmt"

	"github.com/mkbrennan/ritual/internal/cli"
)

type ThemeCmd struct {
	Name string `arg:"" optional:"" help:"Theme name to set. Omit to show the current theme."`
}

func (c *ThemeCmd) Run(ctx *cli.Context) error {
	if c.Name == "" {
		theme := ctx.Store.Theme()
		if theme == "" {
			theme = "default"
		}
		fmt.Printf("Theme: %s\n", theme)
		return nil
	}

	if err := ctx.Store.SetTheme(c.Name); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s\n", c.Name)
	return nil
}

type AccentCmd struct {
	Key string `arg:"" optional:"" help:"Accent colour key to set. Omit to show the current accent."`
}

func (c *AccentCmd) Run(ctx *cli.Context) error {
	if c.Key == "" {
		accent := ctx.Store.Accent()
		if accent == "" {
			accent = "default"
		}
		fmt.Printf("Accent: %s\n", accent)
		return nil
	}

	if err := ctx.Store.SetAccent(c.Key); err != nil {
		return err
	}
	fmt.Printf("Accent set to %s\n", c.Key)
	return nil
}
