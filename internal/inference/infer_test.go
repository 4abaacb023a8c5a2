package inference

import (
	"testing"

	"github.com/jonathan/icon-forge/internal/presets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"filename with extension", "download-icon.svg", "download icon"},
		{"underscores", "shopping_cart", "shopping cart"},
		{"mixed case", "  Search-Bar.PNG ", "search bar"},
		{"png extension", "user.png", "user"},
		{"plain text", "settings", "settings"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestInfer_KnownKeywordFromFilename(t *testing.T) {
	partial, err := Infer("download-icon.svg", "material-design")
	require.NoError(t, err)

	assert.Equal(t, "download", partial.Name)
	assert.Equal(t, "Arrow pointing down into a horizontal base or tray", partial.Description)

	style, err := presets.Resolve("material-design")
	require.NoError(t, err)
	assert.Equal(t, style, partial.Style)
	assert.Equal(t, []string{"download", "icon"}, partial.Tags)
}

func TestInfer_FallbackDescription(t *testing.T) {
	partial, err := Infer("xyz123", "material-design")
	require.NoError(t, err)

	assert.Equal(t, "xyz123", partial.Name)
	assert.Equal(t, "Visual representation of xyz123", partial.Description)
}

func TestInfer_KeywordContainsInput(t *testing.T) {
	// "downl" is contained in the keyword "download", which counts as a
	// match under the bidirectional containment rule.
	partial, err := Infer("downl", "material-design")
	require.NoError(t, err)
	assert.Equal(t, "download", partial.Name)
}

func TestInfer_FirstTableEntryWinsOnTies(t *testing.T) {
	// Text matching several keywords resolves to the earliest table entry.
	partial, err := Infer("download upload", "material-design")
	require.NoError(t, err)
	assert.Equal(t, "download", partial.Name)
}

func TestInfer_TagsKeepTokensLongerThanTwoChars(t *testing.T) {
	partial, err := Infer("go_to_home_screen", "material-design")
	require.NoError(t, err)
	assert.Equal(t, "home", partial.Name)
	assert.Equal(t, []string{"home", "screen"}, partial.Tags)
}

func TestInfer_PresetStyleIsApplied(t *testing.T) {
	partial, err := Infer("star", "pixel-art")
	require.NoError(t, err)

	style, err := presets.Resolve("pixel-art")
	require.NoError(t, err)
	assert.Equal(t, style, partial.Style)
}

func TestInfer_EmptyInput(t *testing.T) {
	_, err := Infer("   ", "material-design")
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestInfer_UnknownPreset(t *testing.T) {
	_, err := Infer("download", "brutalist")
	var upe *presets.UnknownPresetError
	assert.ErrorAs(t, err, &upe)
}
