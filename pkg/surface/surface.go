package surface

import (
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/spatial/r3"
)

// Surface is an immutable Möbius strip model. The mesh is generated at
// construction; Area and EdgeLength are pure queries over it.
type Surface struct {
	params Params
	u, v   []float64
	mesh   *Mesh
}

// New constructs a Surface with centerline radius r, width w and mesh
// resolution n. Returns ErrInvalidParameter when r <= 0, w <= 0 or n < 2.
func New(r, w float64, n int) (*Surface, error) {
	p := Params{R: r, W: w, N: n}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	u, v := p.grids()
	return &Surface{
		params: p,
		u:      u,
		v:      v,
		mesh:   p.generateMesh(u, v),
	}, nil
}

// Params returns the construction parameters.
func (s *Surface) Params() Params {
	return s.params
}

// Mesh returns the generated point mesh. The mesh is cached and shared;
// callers must not mutate it.
func (s *Surface) Mesh() *Mesh {
	return s.mesh
}

// Area computes the surface area by trapezoidal integration of the
// cross-product area element over the parameter domain, inner axis v and
// outer axis u. The integrand is smooth, so axis order only matters for
// consistency; accuracy is O(1/n²).
func (s *Surface) Area() float64 {
	inner := make([]float64, s.params.N)
	g := make([]float64, s.params.N)
	for i, ui := range s.u {
		for j, vj := range s.v {
			g[j] = s.params.areaElement(ui, vj)
		}
		inner[i] = integrate.Trapezoidal(s.v, g)
	}
	return integrate.Trapezoidal(s.u, inner)
}

// EdgeLength computes the total length of the strip's boundary. The two
// parametrized boundary curves at v = ±w/2 are scanned separately and
// summed; together they form the strip's single closed edge (see the
// package documentation). Each scan is a chordal sum of consecutive mesh
// points along u, a discrete arc-length approximation that sharpens as n
// grows.
func (s *Surface) EdgeLength() float64 {
	nu, nv := s.mesh.Dims()
	total := 0.0
	for _, j := range []int{0, nv - 1} {
		prev := s.mesh.At(0, j)
		for i := 1; i < nu; i++ {
			cur := s.mesh.At(i, j)
			total += r3.Norm(r3.Sub(cur, prev))
			prev = cur
		}
	}
	return total
}
