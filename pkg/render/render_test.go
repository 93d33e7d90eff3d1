package render_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/parametric-surfaces/mobius-go/pkg/render"
	"github.com/parametric-surfaces/mobius-go/pkg/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestRender_ImageDimensions verifies the figure matches the requested size
// and that the surface actually painted over the background.
func TestRender_ImageDimensions(t *testing.T) {
	s, err := surface.New(3, 1, 24)
	require.NoError(t, err)

	opts := render.DefaultOptions()
	opts.Width = 200
	opts.Height = 160

	img := render.Render(s.Mesh(), opts)
	bounds := img.Bounds()
	require.Equal(t, 200, bounds.Dx())
	require.Equal(t, 160, bounds.Dy())

	// At least part of the canvas should be painted over the white
	// background. The exact pixels depend on the camera, so just scan.
	painted := false
	for y := bounds.Min.Y; y < bounds.Max.Y && !painted; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R != 255 || c.G != 255 || c.B != 255 {
				painted = true
				break
			}
		}
	}
	assert.True(t, painted, "image is entirely background")
}

// TestRender_DoesNotMutateMesh verifies the read-only contract on the mesh.
func TestRender_DoesNotMutateMesh(t *testing.T) {
	s, err := surface.New(3, 1, 16)
	require.NoError(t, err)
	before, err := surface.New(3, 1, 16)
	require.NoError(t, err)

	render.Render(s.Mesh(), render.DefaultOptions())

	assert.True(t, mat.Equal(before.Mesh().X, s.Mesh().X))
	assert.True(t, mat.Equal(before.Mesh().Y, s.Mesh().Y))
	assert.True(t, mat.Equal(before.Mesh().Z, s.Mesh().Z))
}

// TestToFile verifies PNG output lands on disk.
func TestToFile(t *testing.T) {
	s, err := surface.New(3, 1, 16)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mobius.png")
	opts := render.DefaultOptions()
	opts.Width = 120
	opts.Height = 100
	require.NoError(t, render.ToFile(s.Mesh(), path, opts))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
