package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/icon-forge/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintIconConfig(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	cfg := &types.IconConfig{
		Name:        "download",
		Description: "Arrow pointing down into a horizontal base or tray",
		Style:       types.DefaultStyle(),
		Dimensions:  types.DefaultDimensions(),
		Output:      types.DefaultOutput(),
		Tags:        []string{"download", "arrow"},
	}
	p.PrintIconConfig(cfg)

	out := buf.String()
	assert.Contains(t, out, "ICON CONFIGURATION")
	assert.Contains(t, out, "download")
	assert.Contains(t, out, "2dp")
	assert.Contains(t, out, "download, arrow")
}

func TestPrintIconConfig_NilIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintIconConfig(nil)
	assert.Empty(t, buf.String())
}

func TestPrintPrompt_TruncatesLongPrompts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	prompt := strings.Repeat("line\n", 20)
	p.PrintPrompt("standard", prompt)

	out := buf.String()
	assert.Contains(t, out, "PROMPT (STANDARD)")
	assert.Contains(t, out, "more lines")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport([]types.ValidationRule{
		{Rule: "Stroke width is 2dp", Status: types.StatusPass, Message: "ok"},
		{Rule: "No gradients used", Status: types.StatusFail, Message: "gradient found"},
		{Rule: "Stroke color is black", Status: types.StatusWarn, Message: "red stroke"},
	})

	out := buf.String()
	assert.Contains(t, out, "CONFORMANCE REPORT")
	assert.Contains(t, out, "✓ Stroke width is 2dp")
	assert.Contains(t, out, "✗ No gradients used")
	assert.Contains(t, out, "⚠ Stroke color is black")
	assert.Contains(t, out, "passed=1 failed=1 warnings=1")
}

func TestPrintReport_EmptyIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(nil)
	assert.Empty(t, buf.String())
}
