package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/icon-forge/internal/prompts"
	"github.com/spf13/cobra"
)

var (
	variantsConfigPath string
	variantsJSON       bool
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Generate all four prompt variants from a configuration file",
	RunE:  runVariants,
}

func init() {
	variantsCmd.Flags().StringVar(&variantsConfigPath, "config", "", "Path to icon configuration JSON (required)")
	variantsCmd.Flags().BoolVar(&variantsJSON, "json", false, "Print the variants as JSON")
	_ = variantsCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(variantsCmd)
}

func runVariants(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(variantsConfigPath, false)
	if err != nil {
		return err
	}

	v := prompts.BuildVariants(cfg)

	if variantsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	for _, section := range []struct {
		label  string
		prompt string
	}{
		{"STANDARD", v.Standard},
		{"DETAILED", v.Detailed},
		{"CREATIVE", v.Creative},
		{"MINIMAL", v.Minimal},
	} {
		fmt.Printf("===== %s =====\n%s\n\n", section.label, section.prompt)
	}
	return nil
}
