// Package types provides type definitions for structured data used throughout the icon-forge system.
package types

import "github.com/jonathan/icon-forge/internal/styleguide"

// StyleOptions describes the seven enumerated visual style fields of an icon.
type StyleOptions struct {
	StrokeWeight       string `json:"strokeWeight"`
	Fill               string `json:"fill"`
	CornerStyle        string `json:"cornerStyle"`
	Perspective        string `json:"perspective"`
	GridAlignment      string `json:"gridAlignment"`
	Shading            string `json:"shading"`
	DecorativeElements string `json:"decorativeElements"`
}

// Dimensions describes the canvas geometry of an icon.
//
// The intended relationship is liveArea <= canvasSize - 2*padding, but it is
// deliberately not cross-validated: each field is only checked on its own.
type Dimensions struct {
	CanvasSize float64 `json:"canvasSize"`
	Padding    float64 `json:"padding"`
	LiveArea   float64 `json:"liveArea"`
}

// OutputOptions describes the requested deliverable.
type OutputOptions struct {
	Format     string `json:"format"`
	Background string `json:"background"`
	ColorMode  string `json:"colorMode"`
}

// IconConfig is the central entity: a fully-defaulted, validated description
// of a desired icon. Constructed once per request and treated as immutable
// afterwards; there is no cross-request identity or persistence.
type IconConfig struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Style        StyleOptions  `json:"style"`
	Dimensions   Dimensions    `json:"dimensions"`
	DoNotInclude []string      `json:"doNotInclude"`
	Output       OutputOptions `json:"output"`
	TargetUse    string        `json:"targetUse"`
	Tags         []string      `json:"tags,omitempty"`
	RelatedIcons []string      `json:"relatedIcons,omitempty"`
}

// PartialIconConfig is the best-effort result of input inference. It is not
// yet a valid IconConfig: dimensions, exclusions, output and target use must
// be completed by the caller before validation.
type PartialIconConfig struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Style       StyleOptions `json:"style"`
	Tags        []string     `json:"tags,omitempty"`
}

// Allowed values for each enumerated style and output field. Order matters
// only for error messages; the slices are package-level constants in spirit
// and must never be mutated.
var (
	StrokeWeights       = []string{"thin", "2dp", "bold", "variable"}
	Fills               = []string{"outline", "filled", "duotone", "none"}
	CornerStyles        = []string{"rounded", "sharp", "mixed"}
	Perspectives        = []string{"flat", "isometric", "slight-tilt", "orthographic"}
	GridAlignments      = []string{"pixel-perfect", "optical", "loose"}
	Shadings            = []string{"none", "minimal", "soft", "realistic"}
	DecorativeChoices   = []string{"none", "sparkles", "dots", "organic-accents"}
	OutputFormats       = []string{"SVG", "PNG", "vector"}
	OutputBackgrounds   = []string{"transparent", "white", "none"}
	OutputColorModes    = []string{"monochrome", "colored", "duotone"}
	DefaultDoNotInclude = []string{"text", "labels", "background", "realistic shading", "bitmap elements"}
)

// DefaultTargetUse is applied when a config does not state its purpose.
const DefaultTargetUse = "stock icon for interface"

// DefaultStyle returns the default value for every style field.
func DefaultStyle() StyleOptions {
	return StyleOptions{
		StrokeWeight:       "2dp",
		Fill:               "outline",
		CornerStyle:        "rounded",
		Perspective:        "flat",
		GridAlignment:      "pixel-perfect",
		Shading:            "none",
		DecorativeElements: "none",
	}
}

// DefaultDimensions returns the style-guide canvas geometry.
func DefaultDimensions() Dimensions {
	return Dimensions{
		CanvasSize: styleguide.CanvasSize,
		Padding:    styleguide.Padding,
		LiveArea:   styleguide.LiveArea,
	}
}

// DefaultOutput returns the default deliverable options.
func DefaultOutput() OutputOptions {
	return OutputOptions{
		Format:     "SVG",
		Background: "transparent",
		ColorMode:  "monochrome",
	}
}
