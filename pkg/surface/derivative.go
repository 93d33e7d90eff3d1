package surface

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// partialU is the closed-form partial derivative ∂P/∂u at (u, v).
func (p Params) partialU(u, v float64) r3.Vec {
	rho := p.R + v*math.Cos(u/2)
	return r3.Vec{
		X: -rho*math.Sin(u) - (v/2)*math.Sin(u/2)*math.Cos(u),
		Y: rho*math.Cos(u) - (v/2)*math.Sin(u/2)*math.Sin(u),
		Z: (v / 2) * math.Cos(u/2),
	}
}

// partialV is the closed-form partial derivative ∂P/∂v at (u, v).
func (p Params) partialV(u, v float64) r3.Vec {
	return r3.Vec{
		X: math.Cos(u/2) * math.Cos(u),
		Y: math.Cos(u/2) * math.Sin(u),
		Z: math.Sin(u / 2),
	}
}

// areaElement is |∂P/∂u × ∂P/∂v| at (u, v), the factor relating a unit
// patch in parameter space to its image's area on the surface.
func (p Params) areaElement(u, v float64) float64 {
	return r3.Norm(r3.Cross(p.partialU(u, v), p.partialV(u, v)))
}
