// Package surface models a Möbius strip and computes its geometric
// properties from the standard parametric equations
//
//	x(u,v) = (R + v·cos(u/2))·cos(u)
//	y(u,v) = (R + v·cos(u/2))·sin(u)
//	z(u,v) = v·sin(u/2)
//
// with u in [0, 2π] and v in [-w/2, w/2].
//
// # Sampling
//
// Both parameter axes share a single resolution n: u and v each get n
// samples, endpoints included, so the mesh is exactly n×n points and the
// grid spacings are 2π/(n-1) and w/(n-1). Mesh index [i][j] corresponds
// one-to-one to grid coordinate (u_i, v_j).
//
// # Surface area
//
// The area element is the magnitude of the cross product of the analytic
// partial derivatives ∂P/∂u and ∂P/∂v, evaluated at every grid node and
// integrated with the composite trapezoidal rule, v first and then u.
// The result converges to roughly 2πRw as n grows; the half-twist adds
// an O((w/R)²) excess over that idealized ribbon value.
//
// # Edge topology
//
// A Möbius strip has exactly one boundary edge. The two parametrized
// boundary curves at v = -w/2 and v = +w/2 are halves of that single
// closed curve, joined by the identification (u, v) → (u+2π, -v).
// EdgeLength still traces both halves separately over the u domain and
// sums them, which is the correct total traversal of the one edge.
//
// # Lifecycle
//
// A Surface is immutable after construction. The mesh and both derived
// scalars are pure functions of (R, w, n); to change a parameter,
// construct a new Surface.
package surface
