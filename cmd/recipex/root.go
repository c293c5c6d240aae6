package main

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/recipex/backend/config"
	"github.com/recipex/backend/internal/app"
	"github.com/recipex/backend/internal/logger"
)

// cli carries the application opened for the running command
type cli struct {
	app *app.App
	log zerolog.Logger
}

// newRootCmd builds the command tree. The store opened for a command stays
// open until c.close is called.
func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "recipex",
		Short: "Manage users and the recipes they own",
		Long: `recipex manages users and their recipes in the configured document store.

The store is selected with STORE_DRIVER (postgres, sqlite or file). Setting
REDIS_HOST or REDIS_URL enables the recipe cache.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.open,
	}

	root.AddCommand(
		newMigrateCmd(c),
		newSeedCmd(c),
		newUserCmd(c),
		newRecipeCmd(c),
	)
	return root
}

// open loads the configuration and opens the store, unless an app is
// already attached.
func (c *cli) open(_ *cobra.Command, _ []string) error {
	if c.app != nil {
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.log = logger.New(cfg.LogLevel)

	a, err := app.New(cfg, c.log)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	c.app = a
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

// printJSON writes v to the command output as indented JSON
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
