package main

import (
	"encoding/json"
	"os"

	"github.com/jonathan/icon-forge/internal/inference"
	"github.com/jonathan/icon-forge/internal/parsing"
	"github.com/jonathan/icon-forge/internal/presets"
	"github.com/spf13/cobra"
)

var parsePreset string

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Infer an icon configuration from free text or a filename",
	Long:  `Map free text (for example "download-icon.svg") to a best-guess icon configuration using the semantic keyword table, pre-filled from a style preset.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parsePreset, "preset", presets.DefaultID, "Style preset to pre-fill the configuration")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	partial, err := inference.Infer(args[0], parsePreset)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(parsing.Complete(partial))
}
