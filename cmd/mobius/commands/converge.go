package commands

import (
	"fmt"
	"io"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/parametric-surfaces/mobius-go/pkg/surface"
)

// RunConverge sweeps the mesh resolution from minN up to maxN, doubling
// each step, and reports how the area estimate approaches the
// finest-resolution reference. The error column shrinks monotonically,
// which is the trapezoidal rule doing its O(1/n²) work.
func RunConverge(r, w float64, minN, maxN int, out io.Writer) error {
	if minN < surface.MinResolution {
		return fmt.Errorf("%w: minimum resolution must be at least %d, got %d",
			surface.ErrInvalidParameter, surface.MinResolution, minN)
	}
	if maxN <= minN {
		return fmt.Errorf("%w: maximum resolution %d must exceed minimum %d",
			surface.ErrInvalidParameter, maxN, minN)
	}

	var ns []int
	for n := minN; n < maxN; n *= 2 {
		ns = append(ns, n)
	}
	ns = append(ns, maxN)

	areas := make([]float64, len(ns))
	for i, n := range ns {
		s, err := surface.New(r, w, n)
		if err != nil {
			return err
		}
		areas[i] = s.Area()
	}
	ref := areas[len(areas)-1]

	fmt.Fprintf(out, "Area convergence  R=%g  w=%g  (reference n=%d: %.6f)\n\n", r, w, maxN, ref)
	fmt.Fprintf(out, "%8s  %12s  %12s\n", "n", "area", "error")

	errs := make([]float64, 0, len(ns)-1)
	for i, n := range ns[:len(ns)-1] {
		e := math.Abs(areas[i] - ref)
		errs = append(errs, e)
		fmt.Fprintf(out, "%8d  %12.6f  %12.2e\n", n, areas[i], e)
	}

	fmt.Fprintln(out)
	chart := asciigraph.Plot(errs,
		asciigraph.Height(8),
		asciigraph.Width(48),
		asciigraph.Caption("abs error vs. doubling resolution"))
	fmt.Fprintln(out, chart)
	return nil
}
