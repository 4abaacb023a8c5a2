// Package llm - util.go provides shared utilities for model response processing.
package llm

import "strings"

// ExtractSVG pulls SVG markup out of a model response. Models often wrap
// markup in ``` fences or surround it with prose even when instructed not
// to, so this strips fences first and then cuts to the outermost <svg>
// element when one is present.
func ExtractSVG(text string) string {
	text = stripCodeFence(text)

	start := strings.Index(text, "<svg")
	if start < 0 {
		return text
	}
	end := strings.LastIndex(text, "</svg>")
	if end < 0 || end < start {
		return text[start:]
	}
	return text[start : end+len("</svg>")]
}

// stripCodeFence removes markdown code block wrappers from a response.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Skip a language identifier on the first line (```svg, ```xml, ...).
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := text[:idx]
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "<") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
