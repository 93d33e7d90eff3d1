package commands

import (
	"fmt"
	"io"

	"github.com/parametric-surfaces/mobius-go/pkg/render"
	"github.com/parametric-surfaces/mobius-go/pkg/surface"
)

// RunRender builds the surface and writes the shaded figure to path.
func RunRender(p surface.Params, path string, opts render.Options, w io.Writer) error {
	s, err := surface.New(p.R, p.W, p.N)
	if err != nil {
		return err
	}
	if err := render.ToFile(s.Mesh(), path, opts); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s (%dx%d)\n", path, opts.Width, opts.Height)
	return nil
}
