package theme

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendEndpoints(t *testing.T) {
	black, err := colorful.Hex("#000000")
	require.NoError(t, err)
	white, err := colorful.Hex("#ffffff")
	require.NoError(t, err)

	assert.Equal(t, "#000000", Blend(black, white, 0))
	assert.Equal(t, "#ffffff", Blend(black, white, 1))
	assert.NotEqual(t, "#000000", Blend(black, white, 0.5))
}

func TestDefaultRenders(t *testing.T) {
	th := Default()
	assert.Contains(t, th.List.Editing.Render("Milk"), "Milk")
	assert.Contains(t, th.Modal.Frame.Render("Remove?"), "Remove?")
}
