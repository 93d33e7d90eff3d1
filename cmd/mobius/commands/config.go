package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/parametric-surfaces/mobius-go/pkg/surface"
)

// rawParams is the YAML shape of a strip parameter file:
//
//	radius: 3.0
//	width: 1.0
//	resolution: 100
type rawParams struct {
	Radius     float64 `yaml:"radius"`
	Width      float64 `yaml:"width"`
	Resolution int     `yaml:"resolution"`
}

// ParseParams parses strip parameters from YAML bytes and validates them.
func ParseParams(data []byte) (surface.Params, error) {
	var raw rawParams
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return surface.Params{}, fmt.Errorf("parsing parameters: %w", err)
	}
	p := surface.Params{R: raw.Radius, W: raw.Width, N: raw.Resolution}
	if err := p.Validate(); err != nil {
		return surface.Params{}, err
	}
	return p, nil
}

// LoadParams loads and parses strip parameters from a file.
func LoadParams(path string) (surface.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return surface.Params{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseParams(data)
}
