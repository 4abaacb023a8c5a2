package main

import (
	"fmt"
	"os"

	"github.com/jonathan/icon-forge/internal/parsing"
	"github.com/jonathan/icon-forge/internal/prompts"
	"github.com/jonathan/icon-forge/internal/schemas"
	"github.com/jonathan/icon-forge/internal/types"
	"github.com/spf13/cobra"
)

var (
	generateConfigPath string
	generateCreative   bool
	generateSkipSchema bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a prompt from an icon configuration file",
	Long:  `Validate an icon configuration JSON file and print the deterministic generation prompt for it.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to icon configuration JSON (required)")
	generateCmd.Flags().BoolVar(&generateCreative, "creative", false, "Append the creative personality block")
	generateCmd.Flags().BoolVar(&generateSkipSchema, "skip-schema", false, "Skip the JSON Schema pre-check")
	_ = generateCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(generateConfigPath, generateSkipSchema)
	if err != nil {
		return err
	}

	if generateCreative {
		fmt.Println(prompts.BuildCreativePrompt(cfg))
	} else {
		fmt.Println(prompts.BuildStandardPrompt(cfg))
	}
	return nil
}

// loadConfig reads, schema-checks and validates a configuration file.
func loadConfig(path string, skipSchema bool) (*types.IconConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if !skipSchema {
		if err := schemas.ValidateDocument(string(raw)); err != nil {
			return nil, err
		}
	}

	return parsing.ParseConfig(raw)
}
