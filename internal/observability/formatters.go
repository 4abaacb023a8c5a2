// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/icon-forge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintIconConfig outputs a human-readable summary of a validated icon
// configuration.
func (p *Printer) PrintIconConfig(cfg *types.IconConfig) {
	if cfg == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:        %s\n", cfg.Name))
	desc := cfg.Description
	if len(desc) > 44 {
		desc = desc[:41] + "..."
	}
	sb.WriteString(fmt.Sprintf("Description: %s\n", desc))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Stroke:      %s / %s fill\n", cfg.Style.StrokeWeight, cfg.Style.Fill))
	sb.WriteString(fmt.Sprintf("Corners:     %s\n", cfg.Style.CornerStyle))
	sb.WriteString(fmt.Sprintf("Perspective: %s\n", cfg.Style.Perspective))
	sb.WriteString(fmt.Sprintf("Canvas:      %gx%g, padding %g\n", cfg.Dimensions.CanvasSize, cfg.Dimensions.CanvasSize, cfg.Dimensions.Padding))
	sb.WriteString(fmt.Sprintf("Output:      %s, %s background, %s", cfg.Output.Format, cfg.Output.Background, cfg.Output.ColorMode))

	if len(cfg.Tags) > 0 {
		tags := strings.Join(cfg.Tags, ", ")
		if len(tags) > 44 {
			tags = tags[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("\n\nTags: %s", tags))
	}

	p.printBox("ICON CONFIGURATION", sb.String())
}

// PrintPrompt outputs a preview of a built prompt, truncated to the first few
// lines.
func (p *Printer) PrintPrompt(label, prompt string) {
	lines := strings.Split(prompt, "\n")
	count := min(len(lines), maxItemsToShow)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Length: %d characters\n\n", len(prompt)))
	for i := 0; i < count; i++ {
		sb.WriteString(lines[i])
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(lines) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more lines", len(lines)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("PROMPT (%s)", strings.ToUpper(label)), sb.String())
}

// PrintReport outputs the conformance check results with one line per rule.
func (p *Printer) PrintReport(report []types.ValidationRule) {
	if len(report) == 0 {
		return
	}

	var sb strings.Builder
	for i, rule := range report {
		marker := "✓"
		switch rule.Status {
		case types.StatusFail:
			marker = "✗"
		case types.StatusWarn:
			marker = "⚠"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, rule.Rule))

		message := rule.Message
		if len(message) > 50 {
			message = message[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s", message))
		if i < len(report)-1 {
			sb.WriteString("\n")
		}
	}

	summary := types.Summarize(report)
	sb.WriteString(fmt.Sprintf("\n\npassed=%d failed=%d warnings=%d", summary.Passed, summary.Failed, summary.Warnings))

	p.printBox("CONFORMANCE REPORT", sb.String())
}
