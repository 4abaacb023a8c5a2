// Package validation applies the style-guide conformance checks to raw SVG
// markup returned by the generative model.
//
// Every check is a textual substring or regex heuristic over the raw string,
// not a structural SVG parse. That is a documented contract: unconventional
// attribute quoting or ordering can mis-classify well-formed markup, and
// callers are written against exactly this best-effort behavior. Do not
// upgrade these checks to an XML parse.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/icon-forge/internal/styleguide"
	"github.com/jonathan/icon-forge/internal/types"
)

var (
	fillURLPattern  = regexp.MustCompile(`fill\s*=\s*"url\(`)
	negativeCoord   = regexp.MustCompile(`\b(x|y|cx|cy)\s*=\s*"-`)
	matrixTransform = regexp.MustCompile(`transform\s*=\s*"[^"]*matrix\(`)
)

// CheckSVG runs the fixed check sequence against the markup and returns one
// ValidationRule per check, in order. Checks are independent: a failure in
// one never skips the rest. Pure function; the input is never mutated and no
// state is shared across calls.
func CheckSVG(svg string) []types.ValidationRule {
	return []types.ValidationRule{
		checkStrokeWidth(svg),
		checkCanvasSize(svg),
		checkNoGradients(svg),
		checkStrokeColor(svg),
		checkFlatPerspective(svg),
		checkLiveArea(svg),
	}
}

// checkStrokeWidth requires the exact stroke-width attribute from the style
// guide as a literal, not a value computed from geometry.
func checkStrokeWidth(svg string) types.ValidationRule {
	want := fmt.Sprintf(`stroke-width="%s"`, styleguide.StrokeWidth)
	if strings.Contains(svg, want) {
		return pass("Stroke width is 2dp", "found "+want)
	}
	return fail("Stroke width is 2dp", "expected literal "+want+" in markup")
}

// checkCanvasSize requires the exact viewBox built from the style guide's
// canvas size, origin 0 0.
func checkCanvasSize(svg string) types.ValidationRule {
	want := fmt.Sprintf(`viewBox="%s"`, styleguide.ViewBox())
	if strings.Contains(svg, want) {
		return pass("Canvas size is 24x24", "found "+want)
	}
	return fail("Canvas size is 24x24", "expected "+want+" in markup")
}

// checkNoGradients matches the substring case-insensitively so element
// names like linearGradient are caught too.
func checkNoGradients(svg string) types.ValidationRule {
	if strings.Contains(strings.ToLower(svg), "gradient") {
		return fail("No gradients used", "markup contains a gradient definition")
	}
	if fillURLPattern.MatchString(svg) {
		return fail("No gradients used", "markup fills via a url() reference")
	}
	return pass("No gradients used", "no gradient or fill url() reference found")
}

// checkStrokeColor is a softer requirement: a miss is a WARNING, not a FAIL.
func checkStrokeColor(svg string) types.ValidationRule {
	if strings.Contains(svg, styleguide.StrokeColor) || strings.Contains(svg, `stroke="black"`) {
		return pass("Stroke color is black", "found "+styleguide.StrokeColor+" or a black stroke")
	}
	return warn("Stroke color is black", "expected stroke color "+styleguide.StrokeColor+" or \"black\"")
}

func checkFlatPerspective(svg string) types.ValidationRule {
	switch {
	case strings.Contains(svg, "filter"):
		return warn("Flat perspective", "markup applies a filter")
	case strings.Contains(svg, "shadow"):
		return warn("Flat perspective", "markup references a shadow")
	case matrixTransform.MatchString(svg):
		return warn("Flat perspective", "markup uses a matrix transform")
	}
	return pass("Flat perspective", "no filters, shadows or matrix transforms")
}

// checkLiveArea flags negative literal coordinates, which would place
// geometry outside the canvas origin.
func checkLiveArea(svg string) types.ValidationRule {
	if negativeCoord.MatchString(svg) {
		return warn("Live area respected", "found a negative coordinate value")
	}
	return pass("Live area respected", "no negative coordinate values found")
}

func pass(rule, message string) types.ValidationRule {
	return types.ValidationRule{Rule: rule, Status: types.StatusPass, Message: message}
}

func fail(rule, message string) types.ValidationRule {
	return types.ValidationRule{Rule: rule, Status: types.StatusFail, Message: message}
}

func warn(rule, message string) types.ValidationRule {
	return types.ValidationRule{Rule: rule, Status: types.StatusWarn, Message: message}
}
