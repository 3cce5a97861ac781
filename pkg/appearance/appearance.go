// Package appearance resolves how a parsed section list should be shaped for
// display: separator density, layout direction, and whether the editing
// surface keeps each section as its own element. Values come from explicit
// options or from go-theme design tokens.
package appearance

import "fmt"

// Density controls separator spacing. Spacious pads the single-character
// date delimiters with a space on either side.
type Density string

const (
	DensityDense    Density = "dense"
	DensitySpacious Density = "spacious"
)

// String returns the density token value.
func (d Density) String() string { return string(d) }

// Direction is the layout direction of the editing surface.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// String returns the direction token value.
func (d Direction) String() string { return string(d) }

// Appearance bundles the display concerns the format parser honors.
// Segmented states that the surface renders each section as its own element,
// which is what makes RTL group reversal safe.
type Appearance struct {
	Density   Density
	Direction Direction
	Segmented bool
}

// Default returns dense, left-to-right, non-segmented.
func Default() Appearance {
	return Appearance{Density: DensityDense, Direction: DirectionLTR}
}

// ParseDensity maps a token value onto a Density.
func ParseDensity(value string) (Density, error) {
	switch Density(value) {
	case DensityDense:
		return DensityDense, nil
	case DensitySpacious:
		return DensitySpacious, nil
	default:
		return "", fmt.Errorf("appearance: unknown density %q", value)
	}
}

// ParseDirection maps a token value onto a Direction.
func ParseDirection(value string) (Direction, error) {
	switch Direction(value) {
	case DirectionLTR:
		return DirectionLTR, nil
	case DirectionRTL:
		return DirectionRTL, nil
	default:
		return "", fmt.Errorf("appearance: unknown direction %q", value)
	}
}
