package main

import (
	"fmt"

	"github.com/aussiebroadwan/invyte/internal/invyte/app"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the notification dispatcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.LoadConfig()
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		application, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		return application.Run()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP port (overrides PORT)")
}
