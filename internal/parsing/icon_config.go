package parsing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/icon-forge/internal/types"
)

// Raw decode targets use pointers so an absent field (gets its default) can
// be told apart from a present-but-invalid one (gets an error). Absent
// defaults, present-but-wrong rejects; the two are never conflated.

type rawStyle struct {
	StrokeWeight       *string `json:"strokeWeight"`
	Fill               *string `json:"fill"`
	CornerStyle        *string `json:"cornerStyle"`
	Perspective        *string `json:"perspective"`
	GridAlignment      *string `json:"gridAlignment"`
	Shading            *string `json:"shading"`
	DecorativeElements *string `json:"decorativeElements"`
}

type rawDimensions struct {
	CanvasSize *float64 `json:"canvasSize"`
	Padding    *float64 `json:"padding"`
	LiveArea   *float64 `json:"liveArea"`
}

type rawOutput struct {
	Format     *string `json:"format"`
	Background *string `json:"background"`
	ColorMode  *string `json:"colorMode"`
}

type rawConfig struct {
	Name         *string        `json:"name"`
	Description  *string        `json:"description"`
	Style        *rawStyle      `json:"style"`
	Dimensions   *rawDimensions `json:"dimensions"`
	DoNotInclude *[]string      `json:"doNotInclude"`
	Output       *rawOutput     `json:"output"`
	TargetUse    *string        `json:"targetUse"`
	Tags         []string       `json:"tags"`
	RelatedIcons []string       `json:"relatedIcons"`
}

type collector struct {
	errs []FieldError
}

func (c *collector) add(field string, kind ErrorKind, format string, args ...any) {
	c.errs = append(c.errs, FieldError{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// ParseConfig decodes a raw JSON icon configuration, applies defaults for
// every absent field and validates every present one. All violations are
// accumulated into a single *ValidationError; validation never stops at the
// first problem. Pure function: identical input yields identical output, and
// re-parsing an already-valid config yields it unchanged.
func ParseConfig(raw []byte) (*types.IconConfig, error) {
	var rc rawConfig
	if err := json.Unmarshal(raw, &rc); err != nil {
		return nil, decodeError(err)
	}
	return buildConfig(&rc)
}

// decodeError maps a JSON decode failure to a single-entry ValidationError
// attributing the offending field where the decoder names one.
func decodeError(err error) error {
	if ute, ok := err.(*json.UnmarshalTypeError); ok {
		field := ute.Field
		if field == "" {
			field = "(root)"
		}
		return &ValidationError{Errors: []FieldError{{
			Field:   field,
			Kind:    KindInvalidType,
			Message: fmt.Sprintf("expected %s, got %s", ute.Type, ute.Value),
		}}}
	}
	return &ValidationError{Errors: []FieldError{{
		Field:   "(root)",
		Kind:    KindInvalidType,
		Message: fmt.Sprintf("malformed JSON document: %v", err),
	}}}
}

func buildConfig(rc *rawConfig) (*types.IconConfig, error) {
	var c collector

	cfg := &types.IconConfig{
		Style:        types.DefaultStyle(),
		Dimensions:   types.DefaultDimensions(),
		DoNotInclude: copyStrings(types.DefaultDoNotInclude),
		Output:       types.DefaultOutput(),
		TargetUse:    types.DefaultTargetUse,
	}

	if rc.Name == nil || strings.TrimSpace(*rc.Name) == "" {
		c.add("name", KindEmptyField, "must be a non-empty string")
	} else {
		cfg.Name = *rc.Name
	}

	if rc.Description == nil || strings.TrimSpace(*rc.Description) == "" {
		c.add("description", KindEmptyField, "must be a non-empty string")
	} else {
		cfg.Description = *rc.Description
	}

	if rc.Style != nil {
		enumField(&c, "style.strokeWeight", rc.Style.StrokeWeight, types.StrokeWeights, &cfg.Style.StrokeWeight)
		enumField(&c, "style.fill", rc.Style.Fill, types.Fills, &cfg.Style.Fill)
		enumField(&c, "style.cornerStyle", rc.Style.CornerStyle, types.CornerStyles, &cfg.Style.CornerStyle)
		enumField(&c, "style.perspective", rc.Style.Perspective, types.Perspectives, &cfg.Style.Perspective)
		enumField(&c, "style.gridAlignment", rc.Style.GridAlignment, types.GridAlignments, &cfg.Style.GridAlignment)
		enumField(&c, "style.shading", rc.Style.Shading, types.Shadings, &cfg.Style.Shading)
		enumField(&c, "style.decorativeElements", rc.Style.DecorativeElements, types.DecorativeChoices, &cfg.Style.DecorativeElements)
	}

	if rc.Dimensions != nil {
		if v := rc.Dimensions.CanvasSize; v != nil {
			if *v <= 0 {
				c.add("dimensions.canvasSize", KindInvalidDimension, "must be strictly positive, got %v", *v)
			} else {
				cfg.Dimensions.CanvasSize = *v
			}
		}
		if v := rc.Dimensions.Padding; v != nil {
			if *v < 0 {
				c.add("dimensions.padding", KindInvalidDimension, "must be non-negative, got %v", *v)
			} else {
				cfg.Dimensions.Padding = *v
			}
		}
		if v := rc.Dimensions.LiveArea; v != nil {
			if *v <= 0 {
				c.add("dimensions.liveArea", KindInvalidDimension, "must be strictly positive, got %v", *v)
			} else {
				cfg.Dimensions.LiveArea = *v
			}
		}
	}

	if rc.DoNotInclude != nil {
		cfg.DoNotInclude = copyStrings(*rc.DoNotInclude)
	}

	if rc.Output != nil {
		enumField(&c, "output.format", rc.Output.Format, types.OutputFormats, &cfg.Output.Format)
		enumField(&c, "output.background", rc.Output.Background, types.OutputBackgrounds, &cfg.Output.Background)
		enumField(&c, "output.colorMode", rc.Output.ColorMode, types.OutputColorModes, &cfg.Output.ColorMode)
	}

	if rc.TargetUse != nil && strings.TrimSpace(*rc.TargetUse) != "" {
		cfg.TargetUse = *rc.TargetUse
	}

	if rc.Tags != nil {
		cfg.Tags = copyStrings(rc.Tags)
	}
	if rc.RelatedIcons != nil {
		cfg.RelatedIcons = copyStrings(rc.RelatedIcons)
	}

	if len(c.errs) > 0 {
		return nil, &ValidationError{Errors: c.errs}
	}
	return cfg, nil
}

// enumField validates an optional enumerated string field. Absent keeps the
// default already in dst; present must match one of the allowed values.
func enumField(c *collector, field string, val *string, allowed []string, dst *string) {
	if val == nil {
		return
	}
	for _, a := range allowed {
		if *val == a {
			*dst = *val
			return
		}
	}
	c.add(field, KindInvalidEnum, "must be one of [%s], got %q", strings.Join(allowed, ", "), *val)
}

// Complete fills a partial inference result out to a full IconConfig using
// defaults for everything inference does not produce. The result still goes
// through ParseConfig at the boundary, so no validation happens here.
func Complete(partial *types.PartialIconConfig) *types.IconConfig {
	return &types.IconConfig{
		Name:         partial.Name,
		Description:  partial.Description,
		Style:        partial.Style,
		Dimensions:   types.DefaultDimensions(),
		DoNotInclude: copyStrings(types.DefaultDoNotInclude),
		Output:       types.DefaultOutput(),
		TargetUse:    types.DefaultTargetUse,
		Tags:         copyStrings(partial.Tags),
	}
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
