package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prakash/ats-cv-generator/internal/config"
	"github.com/prakash/ats-cv-generator/internal/server"
)

var (
	servePort    int
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for profile management, CV generation, and document export.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Print detailed generation progress")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveVerbose {
		cfg.Verbose = true
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
