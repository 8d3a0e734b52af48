package main

import (
	"github.com/spf13/cobra"

	"StockSight/internal/di"
)

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard",
		Long:  "Start the HTTP server hosting the dashboard, the JSON API and the Prometheus metrics endpoint.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}

			app, err := di.InitializeApp(cfg)
			if err != nil {
				return err
			}
			return app.Run()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "override the listen port")
	return cmd
}
