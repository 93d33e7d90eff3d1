package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// camera is an orthographic orbit camera described by two angles.
type camera struct {
	right   r3.Vec
	up      r3.Vec
	forward r3.Vec
}

// newCamera builds the view basis for the given azimuth and elevation,
// both in degrees. Azimuth rotates around the vertical axis, elevation
// tilts toward the pole.
func newCamera(azimuthDeg, elevationDeg float64) camera {
	az := azimuthDeg * math.Pi / 180
	el := elevationDeg * math.Pi / 180

	forward := r3.Vec{
		X: math.Cos(el) * math.Cos(az),
		Y: math.Cos(el) * math.Sin(az),
		Z: math.Sin(el),
	}
	side := r3.Cross(r3.Vec{Z: 1}, forward)
	if r3.Norm(side) < 1e-9 {
		// Looking straight along the pole; any horizontal axis works.
		side = r3.Vec{X: 1}
	}
	right := r3.Unit(side)
	up := r3.Cross(forward, right)
	return camera{right: right, up: up, forward: forward}
}

// project maps a world point to view-plane coordinates plus a depth along
// the view direction. Larger depth is closer to the camera.
func (c camera) project(p r3.Vec) (x, y, depth float64) {
	return r3.Dot(p, c.right), r3.Dot(p, c.up), r3.Dot(p, c.forward)
}
