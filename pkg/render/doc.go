// Package render draws a surface mesh as a shaded 3D figure.
//
// The renderer is a small software pipeline: mesh points are projected
// orthographically through an orbit camera, the grid cells are depth-sorted
// back to front (painter's algorithm) and each cell is filled as a flat
// Lambert-shaded quad. Shading uses the absolute value of the normal-light
// angle, so both faces of a non-orientable surface light up the same way.
//
// The renderer reads the mesh through its accessors only and never
// mutates it.
package render
