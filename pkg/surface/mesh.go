package surface

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a dense grid of sampled surface points. X, Y and Z hold one
// coordinate each; entry (i, j) of every matrix belongs to grid node
// (u_i, v_j). The matrices are shared with the generating Surface and
// must be treated as read-only.
type Mesh struct {
	X *mat.Dense
	Y *mat.Dense
	Z *mat.Dense
}

// Dims returns the grid dimensions (u samples, v samples).
func (m *Mesh) Dims() (nu, nv int) {
	return m.X.Dims()
}

// At returns the surface point at grid node (i, j).
func (m *Mesh) At(i, j int) r3.Vec {
	return r3.Vec{X: m.X.At(i, j), Y: m.Y.At(i, j), Z: m.Z.At(i, j)}
}

// point evaluates the parametric equations at (u, v).
func (p Params) point(u, v float64) r3.Vec {
	rho := p.R + v*math.Cos(u/2)
	return r3.Vec{
		X: rho * math.Cos(u),
		Y: rho * math.Sin(u),
		Z: v * math.Sin(u / 2),
	}
}

// grids returns the u samples over [0, 2π] and the v samples over
// [-w/2, w/2], both endpoint-inclusive with N samples each.
func (p Params) grids() (u, v []float64) {
	u = make([]float64, p.N)
	v = make([]float64, p.N)
	floats.Span(u, 0, 2*math.Pi)
	floats.Span(v, -p.W/2, p.W/2)
	return u, v
}

// generateMesh evaluates the parametric equations at every grid node.
// Pure function of the parameters: identical inputs yield an identical mesh.
func (p Params) generateMesh(u, v []float64) *Mesh {
	m := &Mesh{
		X: mat.NewDense(p.N, p.N, nil),
		Y: mat.NewDense(p.N, p.N, nil),
		Z: mat.NewDense(p.N, p.N, nil),
	}
	for i, ui := range u {
		for j, vj := range v {
			pt := p.point(ui, vj)
			m.X.Set(i, j, pt.X)
			m.Y.Set(i, j, pt.Y)
			m.Z.Set(i, j, pt.Z)
		}
	}
	return m
}
