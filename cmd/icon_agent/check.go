package main

import (
	"fmt"
	"os"

	"github.com/jonathan/icon-forge/internal/types"
	"github.com/jonathan/icon-forge/internal/validation"
	"github.com/spf13/cobra"
)

var checkSVGPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the style-guide conformance checks against an SVG file",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkSVGPath, "svg", "", "Path to the SVG file to check (required)")
	_ = checkCmd.MarkFlagRequired("svg")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(checkSVGPath)
	if err != nil {
		return fmt.Errorf("failed to read SVG file: %w", err)
	}

	report := validation.CheckSVG(string(data))
	printReport(report)

	summary := types.Summarize(report)
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d checks failed", summary.Failed, len(report))
	}
	return nil
}

func printReport(report []types.ValidationRule) {
	for _, rule := range report {
		fmt.Printf("%-7s %-24s %s\n", rule.Status, rule.Rule, rule.Message)
	}
}
