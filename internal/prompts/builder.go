package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/icon-forge/internal/styleguide"
	"github.com/jonathan/icon-forge/internal/types"
)

// Variants bundles the four deterministic renderings of one configuration.
type Variants struct {
	Standard string `json:"standard"`
	Detailed string `json:"detailed"`
	Creative string `json:"creative"`
	Minimal  string `json:"minimal"`
}

// Count is the number of prompt variants produced for any valid config.
const Count = 4

// BuildStandardPrompt renders the standard prompt: identity line, visual
// style requirements, canvas specification, output requirements, strict
// exclusions and the fixed validation checklist, in that exact order. The
// config is assumed validated; nothing is re-checked or mutated here.
func BuildStandardPrompt(cfg *types.IconConfig) string {
	var sb strings.Builder

	sb.WriteString(Format(MustGet("identity"), map[string]string{
		"TargetUse":   cfg.TargetUse,
		"Name":        cfg.Name,
		"Description": cfg.Description,
	}))

	sb.WriteString("\n\nVISUAL STYLE REQUIREMENTS:\n")
	sb.WriteString(fmt.Sprintf("- Stroke weight: %s\n", cfg.Style.StrokeWeight))
	sb.WriteString(fmt.Sprintf("- Fill: %s\n", cfg.Style.Fill))
	sb.WriteString(fmt.Sprintf("- Corner style: %s\n", cfg.Style.CornerStyle))
	sb.WriteString(fmt.Sprintf("- Perspective: %s\n", cfg.Style.Perspective))
	sb.WriteString(fmt.Sprintf("- Grid alignment: %s\n", cfg.Style.GridAlignment))
	sb.WriteString(fmt.Sprintf("- Shading: %s\n", cfg.Style.Shading))
	sb.WriteString(fmt.Sprintf("- Decorative elements: %s\n", cfg.Style.DecorativeElements))

	sb.WriteString("\nCANVAS SPECIFICATION:\n")
	sb.WriteString(fmt.Sprintf("- Canvas size: %sx%s\n", num(cfg.Dimensions.CanvasSize), num(cfg.Dimensions.CanvasSize)))
	sb.WriteString(fmt.Sprintf("- Padding: %s\n", num(cfg.Dimensions.Padding)))
	sb.WriteString(fmt.Sprintf("- Live area: %sx%s\n", num(cfg.Dimensions.LiveArea), num(cfg.Dimensions.LiveArea)))

	sb.WriteString("\nOUTPUT REQUIREMENTS:\n")
	sb.WriteString(fmt.Sprintf("- Format: %s\n", cfg.Output.Format))
	sb.WriteString(fmt.Sprintf("- Background: %s\n", cfg.Output.Background))
	sb.WriteString(fmt.Sprintf("- Color mode: %s\n", cfg.Output.ColorMode))
	sb.WriteString("- ")
	sb.WriteString(Format(MustGet("scalability-note"), map[string]string{
		"Min": strconv.Itoa(styleguide.MinRenderSize),
		"Max": strconv.Itoa(styleguide.MaxRenderSize),
	}))
	sb.WriteString("\n")

	sb.WriteString("\nSTRICT EXCLUSIONS (do not include):\n")
	sb.WriteString(strings.Join(cfg.DoNotInclude, ", "))
	sb.WriteString("\n\n")

	sb.WriteString(Format(MustGet("validation-checklist"), map[string]string{
		"Format": cfg.Output.Format,
	}))

	return sb.String()
}

// BuildCreativePrompt is the standard prompt with the fixed personality
// guidelines and the isometric creative treatment appended. Only the
// decorative-elements bullet interpolates a style value; nothing else is
// conditional on the config.
func BuildCreativePrompt(cfg *types.IconConfig) string {
	var sb strings.Builder
	sb.WriteString(BuildStandardPrompt(cfg))
	sb.WriteString("\n\n")
	sb.WriteString(Format(MustGet("personality-guidelines"), map[string]string{
		"Decorative": cfg.Style.DecorativeElements,
	}))
	sb.WriteString("\n\n")
	sb.WriteString(MustGet("isometric-treatment"))
	return sb.String()
}

// BuildMinimalPrompt compresses the config into one sentence: name,
// description, three style fields and canvas size. Exclusions and output
// detail are deliberately omitted.
func BuildMinimalPrompt(cfg *types.IconConfig) string {
	return Format(MustGet("minimal-prompt"), map[string]string{
		"Name":         cfg.Name,
		"Description":  cfg.Description,
		"StrokeWeight": cfg.Style.StrokeWeight,
		"Fill":         cfg.Style.Fill,
		"CornerStyle":  cfg.Style.CornerStyle,
		"CanvasSize":   num(cfg.Dimensions.CanvasSize),
	})
}

// BuildVariants renders all four variants from the same validated config.
// The detailed variant is the standard prompt recomputed with a fixed
// clarifying suffix appended to the description only.
func BuildVariants(cfg *types.IconConfig) Variants {
	detailed := *cfg
	detailed.Description = cfg.Description + MustGet("detailed-suffix")

	return Variants{
		Standard: BuildStandardPrompt(cfg),
		Detailed: BuildStandardPrompt(&detailed),
		Creative: BuildCreativePrompt(cfg),
		Minimal:  BuildMinimalPrompt(cfg),
	}
}

// num renders a dimension without a trailing ".0" for whole values.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
