// Package system implements setup and diagnostic commands.
package system

import (
	"fmt"

	"github.com/mkbrennan/ritual/internal/cli"
)

type InitCmd struct{}

// Run creates the storage backing file by writing the (empty) record map
// through once. Running it against existing storage is harmless.
func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	fmt.Printf("Initialized %s storage at %s\n", ctx.Config.Storage.Backend, ctx.Config.Storage.Path)
	return nil
}
