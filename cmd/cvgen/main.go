// Package main provides the entry point for the ATS CV generator HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvgen",
	Short: "ATS CV Generator HTTP API Server",
	Long:  "ATS CV Generator produces ATS-optimized LaTeX CVs tailored to job descriptions, scoring and retrying generation until the target ATS score is reached.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
