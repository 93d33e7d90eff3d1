package surface

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when construction parameters are out of
// range. It is the only error the package produces; all computations after
// construction assume validated parameters.
var ErrInvalidParameter = errors.New("invalid parameter")

// Parameter limits.
const (
	// MinResolution is the smallest usable mesh resolution. A grid needs
	// at least two samples per axis to form a patch.
	MinResolution = 2
)

// Params holds the three construction parameters of a Möbius strip.
type Params struct {
	// R is the distance from the axis to the strip centerline.
	R float64

	// W is the width of the strip.
	W float64

	// N is the number of samples per parameter axis.
	N int
}

// Validate checks the parameter constraints R > 0, W > 0, N >= 2.
func (p Params) Validate() error {
	if p.R <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidParameter, p.R)
	}
	if p.W <= 0 {
		return fmt.Errorf("%w: width must be positive, got %g", ErrInvalidParameter, p.W)
	}
	if p.N < MinResolution {
		return fmt.Errorf("%w: resolution must be at least %d, got %d", ErrInvalidParameter, MinResolution, p.N)
	}
	return nil
}
