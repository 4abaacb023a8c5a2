package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/icon-forge/internal/presets"
	"github.com/spf13/cobra"
)

var presetsJSON bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available style presets",
	RunE:  runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&presetsJSON, "json", false, "Print the presets as JSON")
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(_ *cobra.Command, _ []string) error {
	list := presets.List()

	if presetsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	for _, p := range list {
		marker := " "
		if p.ID == presets.DefaultID {
			marker = "*"
		}
		fmt.Printf("%s %-16s %s\n", marker, p.ID, p.Description)
	}
	fmt.Printf("\n%d presets (* = default)\n", len(list))
	return nil
}
