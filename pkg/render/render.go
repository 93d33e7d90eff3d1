package render

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/parametric-surfaces/mobius-go/pkg/surface"
)

// Options controls the rendered figure.
type Options struct {
	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int

	// Azimuth and Elevation orient the orbit camera, in degrees.
	Azimuth   float64
	Elevation float64

	// Margin is the fraction of the canvas left blank around the figure.
	Margin float64
}

// DefaultOptions returns the rendering defaults: a 1000x800 figure viewed
// from 35 degrees above the plane of the strip.
func DefaultOptions() Options {
	return Options{
		Width:     1000,
		Height:    800,
		Azimuth:   -60,
		Elevation: 35,
		Margin:    0.08,
	}
}

// quad is one projected grid cell, ready for painting.
type quad struct {
	x     [4]float64
	y     [4]float64
	depth float64
	shade float64
}

// Render draws the mesh as a shaded surface and returns the image.
// The mesh is read through its accessors only.
func Render(m *surface.Mesh, opts Options) image.Image {
	return renderContext(m, opts).Image()
}

// ToFile renders the mesh and writes it to path as a PNG.
func ToFile(m *surface.Mesh, path string, opts Options) error {
	if err := renderContext(m, opts).SavePNG(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func renderContext(m *surface.Mesh, opts Options) *gg.Context {
	cam := newCamera(opts.Azimuth, opts.Elevation)
	quads := projectQuads(m, cam)

	// Painter's algorithm: far cells first.
	sort.Slice(quads, func(a, b int) bool {
		return quads[a].depth < quads[b].depth
	})

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	sx, sy, scale := fitTransform(quads, opts)
	for _, q := range quads {
		dc.MoveTo(sx+q.x[0]*scale, sy-q.y[0]*scale)
		for k := 1; k < 4; k++ {
			dc.LineTo(sx+q.x[k]*scale, sy-q.y[k]*scale)
		}
		dc.ClosePath()

		// Teal ramp, darker where the surface tilts away from the light.
		dc.SetRGB(0.10+0.25*q.shade, 0.25+0.55*q.shade, 0.35+0.55*q.shade)
		dc.FillPreserve()
		dc.SetRGBA(0, 0, 0, 0.15)
		dc.SetLineWidth(0.5)
		dc.Stroke()
	}
	return dc
}

// projectQuads projects every grid cell through the camera and computes
// its flat shade from the cell normal.
func projectQuads(m *surface.Mesh, cam camera) []quad {
	light := r3.Unit(r3.Vec{X: -0.4, Y: 0.6, Z: 0.7})

	nu, nv := m.Dims()
	quads := make([]quad, 0, (nu-1)*(nv-1))
	for i := 0; i < nu-1; i++ {
		for j := 0; j < nv-1; j++ {
			corners := [4]r3.Vec{
				m.At(i, j),
				m.At(i+1, j),
				m.At(i+1, j+1),
				m.At(i, j+1),
			}

			// Normal from the cell diagonals; orientation is irrelevant
			// since shading takes the absolute cosine.
			n := r3.Cross(r3.Sub(corners[2], corners[0]), r3.Sub(corners[3], corners[1]))
			shade := 0.0
			if r3.Norm(n) > 0 {
				shade = math.Abs(r3.Dot(r3.Unit(n), light))
			}

			var q quad
			q.shade = 0.25 + 0.75*shade
			for k, c := range corners {
				x, y, depth := cam.project(c)
				q.x[k] = x
				q.y[k] = y
				q.depth += depth / 4
			}
			quads = append(quads, q)
		}
	}
	return quads
}

// fitTransform computes the canvas offset and uniform scale that fit all
// projected quads inside the margins.
func fitTransform(quads []quad, opts Options) (sx, sy, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, q := range quads {
		for k := 0; k < 4; k++ {
			minX = math.Min(minX, q.x[k])
			maxX = math.Max(maxX, q.x[k])
			minY = math.Min(minY, q.y[k])
			maxY = math.Max(maxY, q.y[k])
		}
	}

	w := float64(opts.Width) * (1 - 2*opts.Margin)
	h := float64(opts.Height) * (1 - 2*opts.Margin)
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 || spanY <= 0 {
		return float64(opts.Width) / 2, float64(opts.Height) / 2, 1
	}
	scale = math.Min(w/spanX, h/spanY)

	// Center the figure; canvas y grows downward, so y is flipped at
	// draw time and the offset compensates here.
	sx = float64(opts.Width)/2 - scale*(minX+maxX)/2
	sy = float64(opts.Height)/2 + scale*(minY+maxY)/2
	return sx, sy, scale
}
