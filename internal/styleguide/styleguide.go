// Package styleguide holds the canonical visual constraints every generated
// icon is measured against. Pure constant data; the prompt builder and the
// SVG checker both read from here so the two never drift apart.
package styleguide

const (
	// CanvasSize is the square canvas edge in grid units.
	CanvasSize = 24
	// Padding is the default margin between canvas edge and live area.
	Padding = 2
	// LiveArea is the default drawable square inside the padding.
	LiveArea = 20

	// StrokeWidth is the required stroke-width attribute value, kept as a
	// string because the checker matches it literally in raw markup.
	StrokeWidth = "2"
	// StrokeColor is the required stroke color in hex.
	StrokeColor = "#000000"

	// MaxDecorativeElements caps accents like sparkles or dots per icon.
	MaxDecorativeElements = 3

	// MinRenderSize and MaxRenderSize bound the scalability requirement
	// stated in every prompt.
	MinRenderSize = 16
	MaxRenderSize = 512
)

// ViewBox returns the exact viewBox attribute value a conforming SVG must
// carry for the canonical canvas.
func ViewBox() string {
	return "0 0 24 24"
}
