package main

import (
	"fmt"

	"github.com/aussiebroadwan/invyte/internal/invyte/app"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.LoadConfig()
		logger := app.NewLogger(cfg, cmd.ErrOrStderr())

		db, err := app.OpenStore(cfg, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		version, dirty, err := db.MigrationVersion()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", version, dirty)
		return nil
	},
}
