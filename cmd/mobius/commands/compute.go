// Package commands implements the mobius subcommands. Each RunX function
// takes its output writer as a parameter so tests can capture it.
package commands

import (
	"fmt"
	"io"

	"github.com/parametric-surfaces/mobius-go/pkg/surface"
)

// RunCompute builds the surface and prints its derived scalars.
func RunCompute(p surface.Params, w io.Writer) error {
	s, err := surface.New(p.R, p.W, p.N)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Möbius strip  R=%g  w=%g  n=%d\n", p.R, p.W, p.N)
	fmt.Fprintf(w, "Surface Area: %.4f square units\n", s.Area())
	fmt.Fprintf(w, "Edge Length:  %.4f units\n", s.EdgeLength())
	return nil
}
