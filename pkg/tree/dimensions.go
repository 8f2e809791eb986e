package tree

import (
	"fmt"
	"math"
)

// Dimensions are the constants derived from the surface size.
type Dimensions struct {
	Width, Height float64

	RootLength float64
	RootWidth  float64

	WiggleVariance float64
	LengthVariance float64
	WidthVariance  float64

	MinLength float64
	MinWidth  float64
}

// Resolve derives the size-dependent constants of the reference generator
// for a width by height surface.
func Resolve(width, height float64) (Dimensions, error) {
	return DefaultConfig().Resolve(width, height)
}

// Resolve derives the size-dependent constants for a width by height
// surface, applying the wiggle scale and any absolute cutoffs in c.
func (c Config) Resolve(width, height float64) (Dimensions, error) {
	if !(width > 0 && height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Dimensions{}, fmt.Errorf("%w: %vx%v", ErrInvalidDimensions, width, height)
	}

	d := Dimensions{
		Width:  width,
		Height: height,

		RootLength: math.Min(height/5.5, width*0.15),
		RootWidth:  width * 0.03,

		WiggleVariance: width * c.WiggleScale,
		LengthVariance: height / 50,
		WidthVariance:  width * 0.015,

		MinLength: height / 80,
		MinWidth:  width / 1000,
	}

	if c.MinLength > 0 {
		d.MinLength = c.MinLength
	}
	if c.MinWidth > 0 {
		d.MinWidth = c.MinWidth
	}

	return d, nil
}

// Terminal reports whether a branch of this length and width is too small to
// draw and ends in a leaf instead. NaN sizes are terminal.
func (d Dimensions) Terminal(length, width float64) bool {
	return !(length > d.MinLength && width > d.MinWidth)
}
