// Command mobius computes geometric properties of a Möbius strip and
// renders it as a shaded 3D figure.
//
// Usage:
//
//	mobius <command> [flags]
//
// Commands:
//
//	compute   Print surface area and boundary edge length
//	render    Render the strip to a PNG image
//	export    Export the mesh points as JSON or CSV
//	converge  Show how the area estimate converges with resolution
//
// Examples:
//
//	# Default strip (R=3, w=1, n=100)
//	mobius compute
//
//	# A wider strip at finer resolution
//	mobius compute -R 2.5 -w 1.8 -n 400
//
//	# Parameters from a YAML file
//	mobius compute -config strip.yaml
//
//	# Render to an image
//	mobius render -o mobius.png -azimuth -45 -elevation 25
//
//	# Export the mesh for external plotting tools
//	mobius export -format csv -o mesh.csv
//
//	# Watch the trapezoidal estimate settle
//	mobius converge -min 10 -max 640
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/parametric-surfaces/mobius-go/cmd/mobius/commands"
	"github.com/parametric-surfaces/mobius-go/pkg/render"
	"github.com/parametric-surfaces/mobius-go/pkg/surface"
)

const usage = `mobius - Möbius strip geometry toolkit

Usage:
  mobius <command> [flags]

Commands:
  compute   Print surface area and boundary edge length
  render    Render the strip to a PNG image
  export    Export the mesh points as JSON or CSV
  converge  Show how the area estimate converges with resolution

Use "mobius <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "compute":
		runCompute(args)
	case "render":
		runRender(args)
	case "export":
		runExport(args)
	case "converge":
		runConverge(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// paramFlags registers the shared strip parameter flags on fs and returns
// a resolver that folds in an optional YAML config file.
func paramFlags(fs *flag.FlagSet) func() (surface.Params, error) {
	r := fs.Float64("R", 3.0, "distance from the axis to the strip centerline")
	w := fs.Float64("w", 1.0, "strip width")
	n := fs.Int("n", 100, "mesh resolution per axis")
	config := fs.String("config", "", "YAML file with strip parameters (overrides -R, -w, -n)")

	return func() (surface.Params, error) {
		if *config != "" {
			return commands.LoadParams(*config)
		}
		return surface.Params{R: *r, W: *w, N: *n}, nil
	}
}

func runCompute(args []string) {
	fs := flag.NewFlagSet("compute", flag.ExitOnError)
	params := paramFlags(fs)
	fs.Parse(args)

	p, err := params()
	exitOn(err)
	exitOn(commands.RunCompute(p, os.Stdout))
}

func runRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	params := paramFlags(fs)
	output := fs.String("o", "mobius.png", "output PNG path")
	width := fs.Int("width", 0, "image width in pixels (0 = default)")
	height := fs.Int("height", 0, "image height in pixels (0 = default)")
	azimuth := fs.Float64("azimuth", render.DefaultOptions().Azimuth, "camera azimuth in degrees")
	elevation := fs.Float64("elevation", render.DefaultOptions().Elevation, "camera elevation in degrees")
	fs.Parse(args)

	p, err := params()
	exitOn(err)

	opts := render.DefaultOptions()
	if *width > 0 {
		opts.Width = *width
	}
	if *height > 0 {
		opts.Height = *height
	}
	opts.Azimuth = *azimuth
	opts.Elevation = *elevation

	exitOn(commands.RunRender(p, *output, opts, os.Stdout))
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	params := paramFlags(fs)
	format := fs.String("format", "json", "output format: json or csv")
	output := fs.String("o", "", "output file (default: stdout)")
	fs.Parse(args)

	p, err := params()
	exitOn(err)
	exitOn(commands.RunExport(p, *format, *output))
}

func runConverge(args []string) {
	fs := flag.NewFlagSet("converge", flag.ExitOnError)
	r := fs.Float64("R", 3.0, "distance from the axis to the strip centerline")
	w := fs.Float64("w", 1.0, "strip width")
	minN := fs.Int("min", 10, "coarsest resolution")
	maxN := fs.Int("max", 320, "finest resolution (also the reference)")
	fs.Parse(args)

	exitOn(commands.RunConverge(*r, *w, *minN, *maxN, os.Stdout))
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
