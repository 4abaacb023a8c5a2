package validation

import (
	"testing"

	"github.com/jonathan/icon-forge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conformingSVG = `<svg viewBox="0 0 24 24"><path stroke-width="2" stroke="#000000" d="M12 3v12"/></svg>`

func TestCheckSVG_ConformingMarkupPassesEverything(t *testing.T) {
	report := CheckSVG(conformingSVG)
	require.Len(t, report, 6)

	for _, rule := range report {
		assert.Equal(t, types.StatusPass, rule.Status, "rule %q", rule.Rule)
	}
}

func TestCheckSVG_FixedRuleOrder(t *testing.T) {
	report := CheckSVG("")
	require.Len(t, report, 6)

	expected := []string{
		"Stroke width is 2dp",
		"Canvas size is 24x24",
		"No gradients used",
		"Stroke color is black",
		"Flat perspective",
		"Live area respected",
	}
	for i, rule := range report {
		assert.Equal(t, expected[i], rule.Rule)
	}
}

func TestCheckSVG_GradientFailureIsIndependent(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><path stroke-width="2" stroke="#000000" fill="url(#grad1)" d="M0 0"/></svg>`
	report := CheckSVG(svg)
	require.Len(t, report, 6)

	assert.Equal(t, types.StatusFail, report[2].Status)
	assert.Equal(t, "No gradients used", report[2].Rule)

	// Unrelated checks are still evaluated on their own merits.
	assert.Equal(t, types.StatusPass, report[0].Status)
	assert.Equal(t, types.StatusPass, report[1].Status)
	assert.Equal(t, types.StatusPass, report[3].Status)
}

func TestCheckSVG_GradientSubstring(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><linearGradient id="g"/><path stroke-width="2"/></svg>`
	report := CheckSVG(svg)
	assert.Equal(t, types.StatusFail, report[2].Status)
}

func TestCheckSVG_WrongStrokeWidthAndViewBoxFail(t *testing.T) {
	svg := `<svg viewBox="0 0 32 32"><path stroke-width="3" stroke="#000000"/></svg>`
	report := CheckSVG(svg)

	assert.Equal(t, types.StatusFail, report[0].Status)
	assert.Equal(t, types.StatusFail, report[1].Status)
	assert.Equal(t, types.StatusPass, report[2].Status)
}

func TestCheckSVG_StrokeColorIsWarningNotFailure(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><path stroke-width="2" stroke="#ff0000"/></svg>`
	report := CheckSVG(svg)
	assert.Equal(t, types.StatusWarn, report[3].Status)
}

func TestCheckSVG_BlackKeywordAccepted(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><path stroke-width="2" stroke="black"/></svg>`
	report := CheckSVG(svg)
	assert.Equal(t, types.StatusPass, report[3].Status)
}

func TestCheckSVG_FlatPerspectiveWarnings(t *testing.T) {
	testCases := []struct {
		name string
		svg  string
	}{
		{"filter", `<svg viewBox="0 0 24 24"><filter id="f"/></svg>`},
		{"shadow", `<svg viewBox="0 0 24 24"><g class="shadow"/></svg>`},
		{"matrix transform", `<svg viewBox="0 0 24 24"><g transform="matrix(1,0,0,1,5,5)"/></svg>`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report := CheckSVG(tc.svg)
			assert.Equal(t, types.StatusWarn, report[4].Status)
		})
	}
}

func TestCheckSVG_RotateTransformIsFlat(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><g transform="rotate(45)"/></svg>`
	report := CheckSVG(svg)
	assert.Equal(t, types.StatusPass, report[4].Status)
}

func TestCheckSVG_NegativeCoordinatesWarn(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><circle cx="-3" cy="12" r="2"/></svg>`
	report := CheckSVG(svg)
	assert.Equal(t, types.StatusWarn, report[5].Status)
}

func TestCheckSVG_PositiveCoordinatesPass(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><rect x="2" y="2" width="20" height="20"/></svg>`
	report := CheckSVG(svg)
	assert.Equal(t, types.StatusPass, report[5].Status)
}

func TestSummarize(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><path stroke-width="2" stroke="#ff0000" fill="url(#g)"/></svg>`
	summary := types.Summarize(CheckSVG(svg))

	assert.Equal(t, 4, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Warnings)
}
