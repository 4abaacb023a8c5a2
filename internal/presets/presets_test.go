package presets

import (
	"testing"

	"github.com/jonathan/icon-forge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_AllPresetsHaveValidStyleValues(t *testing.T) {
	for _, id := range []string{"material-design", "ios-glyph", "pixel-art", "hand-drawn", "isometric-mini"} {
		t.Run(id, func(t *testing.T) {
			style, err := Resolve(id)
			require.NoError(t, err)

			assert.Contains(t, types.StrokeWeights, style.StrokeWeight)
			assert.Contains(t, types.Fills, style.Fill)
			assert.Contains(t, types.CornerStyles, style.CornerStyle)
			assert.Contains(t, types.Perspectives, style.Perspective)
			assert.Contains(t, types.GridAlignments, style.GridAlignment)
			assert.Contains(t, types.Shadings, style.Shading)
			assert.Contains(t, types.DecorativeChoices, style.DecorativeElements)
		})
	}
}

func TestResolve_UnknownPreset(t *testing.T) {
	_, err := Resolve("neon-vaporwave")
	require.Error(t, err)

	var upe *UnknownPresetError
	require.ErrorAs(t, err, &upe)
	assert.Equal(t, "neon-vaporwave", upe.ID)
	assert.Contains(t, err.Error(), "material-design")
}

func TestResolve_ExactMatchOnly(t *testing.T) {
	_, err := Resolve("Material-Design")
	assert.Error(t, err)
	_, err = Resolve("")
	assert.Error(t, err)
}

func TestResolve_ReturnsValueCopy(t *testing.T) {
	style, err := Resolve(DefaultID)
	require.NoError(t, err)
	style.StrokeWeight = "bold"

	again, err := Resolve(DefaultID)
	require.NoError(t, err)
	assert.Equal(t, "2dp", again.StrokeWeight)
}

func TestList_FixedOrderAndDisplayNames(t *testing.T) {
	list := List()
	require.Len(t, list, 5)

	assert.Equal(t, "material-design", list[0].ID)
	assert.Equal(t, "Material Design", list[0].Name)
	assert.Equal(t, "isometric-mini", list[4].ID)
	assert.Equal(t, "Isometric Mini", list[4].Name)

	for _, info := range list {
		assert.NotEmpty(t, info.Description)
	}
}

func TestDefaultID_IsRegistered(t *testing.T) {
	_, err := Resolve(DefaultID)
	assert.NoError(t, err)
}
