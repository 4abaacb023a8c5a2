// Package main provides the entry point for the Icon Forge CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "icon_agent",
	Short: "Icon Forge prompt pipeline",
	Long:  "Icon Forge turns validated icon configurations into deterministic prompts for a generative model and lints the SVG the model returns against a fixed style guide.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
