// Package presets provides the fixed registry of named style presets used to
// pre-fill icon configurations. The registry is process-wide constant data;
// resolving a preset hands out a value copy, never a shared reference.
package presets

import (
	"fmt"
	"strings"

	"github.com/jonathan/icon-forge/internal/types"
)

// DefaultID is the preset applied when a caller does not choose one.
const DefaultID = "material-design"

// Info describes one preset for listing surfaces.
type Info struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Style       types.StyleOptions `json:"style"`
	Description string             `json:"description"`
}

// UnknownPresetError reports a preset id with no registry entry. Lookup is
// exact match; there is no silent fallback.
type UnknownPresetError struct {
	ID string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q (known: %s)", e.ID, strings.Join(ids, ", "))
}

type preset struct {
	style       types.StyleOptions
	description string
}

// ids fixes the listing order; registry holds the bundles.
var ids = []string{
	"material-design",
	"ios-glyph",
	"pixel-art",
	"hand-drawn",
	"isometric-mini",
}

var registry = map[string]preset{
	"material-design": {
		style: types.StyleOptions{
			StrokeWeight:       "2dp",
			Fill:               "outline",
			CornerStyle:        "rounded",
			Perspective:        "flat",
			GridAlignment:      "pixel-perfect",
			Shading:            "none",
			DecorativeElements: "none",
		},
		description: "Clean geometric outlines on a keyline grid, Google Material style",
	},
	"ios-glyph": {
		style: types.StyleOptions{
			StrokeWeight:       "thin",
			Fill:               "filled",
			CornerStyle:        "rounded",
			Perspective:        "flat",
			GridAlignment:      "optical",
			Shading:            "none",
			DecorativeElements: "none",
		},
		description: "Solid rounded glyphs with optical alignment, Apple system style",
	},
	"pixel-art": {
		style: types.StyleOptions{
			StrokeWeight:       "bold",
			Fill:               "filled",
			CornerStyle:        "sharp",
			Perspective:        "flat",
			GridAlignment:      "pixel-perfect",
			Shading:            "minimal",
			DecorativeElements: "none",
		},
		description: "Chunky hard-edged shapes snapped to the pixel grid, retro game style",
	},
	"hand-drawn": {
		style: types.StyleOptions{
			StrokeWeight:       "variable",
			Fill:               "outline",
			CornerStyle:        "mixed",
			Perspective:        "slight-tilt",
			GridAlignment:      "loose",
			Shading:            "soft",
			DecorativeElements: "organic-accents",
		},
		description: "Loose sketched strokes with organic accents, notebook doodle style",
	},
	"isometric-mini": {
		style: types.StyleOptions{
			StrokeWeight:       "2dp",
			Fill:               "duotone",
			CornerStyle:        "rounded",
			Perspective:        "isometric",
			GridAlignment:      "optical",
			Shading:            "soft",
			DecorativeElements: "sparkles",
		},
		description: "Tiny isometric objects with duotone depth and playful sparkle accents",
	},
}

// Resolve returns a value copy of the named preset's style bundle.
func Resolve(id string) (types.StyleOptions, error) {
	p, ok := registry[id]
	if !ok {
		return types.StyleOptions{}, &UnknownPresetError{ID: id}
	}
	return p.style, nil
}

// List returns descriptors for every preset in fixed registry order, with a
// title-cased display name derived from the id (dashes become spaces).
func List() []Info {
	infos := make([]Info, 0, len(ids))
	for _, id := range ids {
		p := registry[id]
		infos = append(infos, Info{
			ID:          id,
			Name:        displayName(id),
			Style:       p.style,
			Description: p.description,
		})
	}
	return infos
}

// displayName turns "material-design" into "Material Design".
func displayName(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
