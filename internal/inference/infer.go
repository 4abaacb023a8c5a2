// Package inference maps free-text keywords or filenames to a best-guess
// partial icon configuration using a fixed semantic lookup table.
package inference

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jonathan/icon-forge/internal/presets"
	"github.com/jonathan/icon-forge/internal/types"
)

// ErrMissingInput reports an empty or blank input text.
var ErrMissingInput = errors.New("input text is required")

// SemanticEntry pairs a normalized keyword with the canonical description of
// the icon it names.
type SemanticEntry struct {
	Keyword     string
	Description string
}

// semanticTable is scanned in order; the first entry whose keyword is
// contained in the normalized text (or contains it) wins. This is a linear
// best-effort heuristic, not a scored match, so table order decides ties.
var semanticTable = []SemanticEntry{
	{"download", "Arrow pointing down into a horizontal base or tray"},
	{"upload", "Arrow pointing up out of a horizontal base or tray"},
	{"search", "Magnifying glass with a round lens and angled handle"},
	{"settings", "Gear with evenly spaced teeth around a circular center"},
	{"home", "House silhouette with a pitched roof and centered door"},
	{"user", "Head-and-shoulders silhouette of a person"},
	{"delete", "Trash can with a lid and vertical ribs"},
	{"edit", "Pencil at a diagonal angle over a surface"},
	{"save", "Floppy disk with a label area and corner notch"},
	{"share", "Three nodes connected by two angled lines"},
	{"favorite", "Heart shape with symmetric rounded lobes"},
	{"star", "Five-pointed star with even points"},
	{"mail", "Envelope with a V-shaped closed flap"},
	{"calendar", "Page with binder rings and a grid of days"},
	{"camera", "Camera body with a centered circular lens"},
	{"lock", "Padlock with a closed shackle and keyhole"},
	{"unlock", "Padlock with an open, lifted shackle"},
	{"play", "Triangle pointing right, centered"},
	{"pause", "Two parallel vertical bars"},
	{"notification", "Bell with a small clapper at the bottom"},
	{"folder", "Folder with a tab on the upper left edge"},
	{"document", "Page with a folded top-right corner and text lines"},
	{"cart", "Shopping cart with a basket, handle and two wheels"},
	{"refresh", "Two curved arrows forming a circle"},
}

var imageExtPattern = regexp.MustCompile(`\.(svg|png|jpg|jpeg|gif|webp)$`)

// Normalize lowercases the input, collapses underscores and dashes to
// spaces, strips a trailing image-file extension and trims whitespace.
func Normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = imageExtPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.TrimSpace(s)
}

// Infer produces a partial icon configuration from free text and a preset
// id. The result is not a valid IconConfig yet: dimensions, exclusions,
// output and target use are completed by the orchestrating layer.
func Infer(text, presetID string) (*types.PartialIconConfig, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrMissingInput
	}

	style, err := presets.Resolve(presetID)
	if err != nil {
		return nil, err
	}

	normalized := Normalize(text)

	partial := &types.PartialIconConfig{
		Name:        normalized,
		Description: "Visual representation of " + normalized,
		Style:       style,
		Tags:        tagsFrom(normalized),
	}

	for _, entry := range semanticTable {
		if strings.Contains(normalized, entry.Keyword) || strings.Contains(entry.Keyword, normalized) {
			partial.Name = entry.Keyword
			partial.Description = entry.Description
			break
		}
	}

	return partial, nil
}

// tagsFrom splits the normalized text on whitespace and keeps tokens longer
// than two characters.
func tagsFrom(normalized string) []string {
	var tags []string
	for _, token := range strings.Fields(normalized) {
		if len(token) > 2 {
			tags = append(tags, token)
		}
	}
	return tags
}
