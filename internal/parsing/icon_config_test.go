package parsing

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/icon-forge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_AppliesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"name": "download", "description": "Arrow into tray"}`))
	require.NoError(t, err)

	assert.Equal(t, "download", cfg.Name)
	assert.Equal(t, "Arrow into tray", cfg.Description)
	assert.Equal(t, types.DefaultStyle(), cfg.Style)
	assert.Equal(t, float64(24), cfg.Dimensions.CanvasSize)
	assert.Equal(t, float64(2), cfg.Dimensions.Padding)
	assert.Equal(t, float64(20), cfg.Dimensions.LiveArea)
	assert.Equal(t, types.DefaultDoNotInclude, cfg.DoNotInclude)
	assert.Equal(t, "SVG", cfg.Output.Format)
	assert.Equal(t, "transparent", cfg.Output.Background)
	assert.Equal(t, "monochrome", cfg.Output.ColorMode)
	assert.Equal(t, "stock icon for interface", cfg.TargetUse)
}

func TestParseConfig_Idempotent(t *testing.T) {
	first, err := ParseConfig([]byte(`{"name": "search", "description": "Magnifying glass"}`))
	require.NoError(t, err)

	raw, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := ParseConfig(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseConfig_PresentFieldsOverrideDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{
		"name": "cart",
		"description": "Shopping cart",
		"style": {"strokeWeight": "bold", "perspective": "isometric"},
		"dimensions": {"canvasSize": 48},
		"output": {"colorMode": "duotone"},
		"doNotInclude": ["text"],
		"targetUse": "app tile icon",
		"tags": ["cart", "shop"]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "bold", cfg.Style.StrokeWeight)
	assert.Equal(t, "isometric", cfg.Style.Perspective)
	// Untouched style fields keep their defaults.
	assert.Equal(t, "outline", cfg.Style.Fill)
	assert.Equal(t, float64(48), cfg.Dimensions.CanvasSize)
	assert.Equal(t, float64(2), cfg.Dimensions.Padding)
	assert.Equal(t, "duotone", cfg.Output.ColorMode)
	assert.Equal(t, []string{"text"}, cfg.DoNotInclude)
	assert.Equal(t, "app tile icon", cfg.TargetUse)
	assert.Equal(t, []string{"cart", "shop"}, cfg.Tags)
}

func TestParseConfig_AccumulatesAllViolations(t *testing.T) {
	_, err := ParseConfig([]byte(`{
		"name": "",
		"description": "",
		"style": {"strokeWeight": "heavy"},
		"dimensions": {"canvasSize": -1, "padding": -2},
		"output": {"format": "JPEG"}
	}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	// Exactly one entry per independent violation, never truncated.
	require.Len(t, ve.Errors, 6)

	kinds := map[ErrorKind]int{}
	for _, fe := range ve.Errors {
		kinds[fe.Kind]++
	}
	assert.Equal(t, 2, kinds[KindEmptyField])
	assert.Equal(t, 2, kinds[KindInvalidEnum])
	assert.Equal(t, 2, kinds[KindInvalidDimension])

	details := ve.Details()
	require.Len(t, details, 6)
	assert.Contains(t, details[0], "name: ")
}

func TestParseConfig_DimensionBoundaries(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		wantErr bool
		field   string
	}{
		{"zero canvas", `{"name":"a","description":"b","dimensions":{"canvasSize":0}}`, true, "dimensions.canvasSize"},
		{"negative canvas", `{"name":"a","description":"b","dimensions":{"canvasSize":-24}}`, true, "dimensions.canvasSize"},
		{"zero padding allowed", `{"name":"a","description":"b","dimensions":{"padding":0}}`, false, ""},
		{"negative padding", `{"name":"a","description":"b","dimensions":{"padding":-1}}`, true, "dimensions.padding"},
		{"zero live area", `{"name":"a","description":"b","dimensions":{"liveArea":0}}`, true, "dimensions.liveArea"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tc.raw))
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, float64(0), cfg.Dimensions.Padding)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Len(t, ve.Errors, 1)
			assert.Equal(t, KindInvalidDimension, ve.Errors[0].Kind)
			assert.Equal(t, tc.field, ve.Errors[0].Field)
		})
	}
}

func TestParseConfig_NoCrossFieldDimensionCheck(t *testing.T) {
	// liveArea larger than canvasSize-2*padding is accepted on purpose;
	// the fields are only validated independently.
	_, err := ParseConfig([]byte(`{"name":"a","description":"b","dimensions":{"canvasSize":24,"padding":10,"liveArea":23}}`))
	assert.NoError(t, err)
}

func TestParseConfig_EnumErrorNamesAllowedSet(t *testing.T) {
	_, err := ParseConfig([]byte(`{"name":"a","description":"b","style":{"fill":"solid"}}`))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "style.fill", ve.Errors[0].Field)
	assert.Equal(t, KindInvalidEnum, ve.Errors[0].Kind)
	assert.Contains(t, ve.Errors[0].Message, "outline, filled, duotone, none")
}

func TestParseConfig_TypeMismatch(t *testing.T) {
	_, err := ParseConfig([]byte(`{"name": 42, "description": "b"}`))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, KindInvalidType, ve.Errors[0].Kind)
}

func TestParseConfig_MalformedJSON(t *testing.T) {
	_, err := ParseConfig([]byte(`{not json`))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "(root)", ve.Errors[0].Field)
}

func TestComplete_FillsDefaultsAroundPartial(t *testing.T) {
	partial := &types.PartialIconConfig{
		Name:        "download",
		Description: "Arrow pointing down into a horizontal base or tray",
		Style:       types.DefaultStyle(),
		Tags:        []string{"download"},
	}

	cfg := Complete(partial)
	assert.Equal(t, partial.Name, cfg.Name)
	assert.Equal(t, partial.Description, cfg.Description)
	assert.Equal(t, types.DefaultDimensions(), cfg.Dimensions)
	assert.Equal(t, types.DefaultDoNotInclude, cfg.DoNotInclude)
	assert.Equal(t, types.DefaultOutput(), cfg.Output)
	assert.Equal(t, types.DefaultTargetUse, cfg.TargetUse)

	// Completed configs must survive validation unchanged.
	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	validated, err := ParseConfig(raw)
	require.NoError(t, err)
	assert.Equal(t, cfg, validated)
}
