package main

import (
	"github.com/jonathan/icon-forge/internal/config"
	"github.com/jonathan/icon-forge/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort         int
	serveSettingsPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for prompt generation, input parsing, preset listing, feedback and SVG validation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveSettingsPath, "settings", "", "Path to a JSON settings file supplying flag defaults")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	settings := config.Config{Port: servePort}

	if serveSettingsPath != "" {
		fileCfg, err := config.LoadConfig(serveSettingsPath)
		if err != nil {
			return err
		}
		settings = settings.MergeWithDefaults(*fileCfg)
	}
	if settings.Port == 0 {
		settings.Port = 8080
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	srv := server.New(server.Config{Port: settings.Port})
	return srv.Start()
}
