package tree

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfig is returned for a Config that could recurse without end
	// or draw nonsensical shapes.
	ErrInvalidConfig = errors.New("invalid tree config")

	// ErrInvalidDimensions is returned for a surface with no area.
	ErrInvalidDimensions = errors.New("invalid surface dimensions")
)

// LeafShape selects how leaves are drawn.
type LeafShape string

const (
	// LeafEllipse draws a narrow ellipse stemming from the anchor.
	LeafEllipse LeafShape = "ellipse"
	// LeafRound draws a circle of radius RadiusX stemming from the anchor.
	LeafRound LeafShape = "round"
)

// Range is a closed interval that values are sampled uniformly from.
type Range struct {
	Min, Max float64
}

func (r Range) valid() bool {
	return r.Min <= r.Max && !math.IsNaN(r.Min) && !math.IsNaN(r.Max)
}

// Leaf configures the shapes drawn at leaf anchors.
type Leaf struct {
	Shape LeafShape

	// RadiusX is the radius along the leaf's length.
	RadiusX Range
	// RadiusY is the radius across the leaf. Ignored for LeafRound.
	RadiusY Range

	// Alpha is the opacity of the leaf color, in [0, 1].
	Alpha float64
}

// Config holds the constants of the generator that do not depend on the
// surface size.
type Config struct {
	// ShrinkFactor scales both length and width at every split.
	// Must be strictly between 0 and 1 so recursion terminates.
	ShrinkFactor float64

	// SplitAngle is the angle in degrees between a branch and each child's
	// base direction.
	SplitAngle float64

	// AngleVariance is the maximum jitter in degrees applied to each branch's
	// own direction.
	AngleVariance float64

	// Blur is the glow radius of branch strokes.
	Blur float64

	// WiggleScale is the wiggle variance as a fraction of the surface width.
	WiggleScale float64

	// Control bounds where Bezier control points sit along a branch, as
	// fractions of its length.
	Control Range

	Leaf Leaf

	// MinLength and MinWidth replace the size-derived cutoffs when positive.
	MinLength float64
	MinWidth  float64
}

// DefaultConfig returns the configuration of the reference generator.
func DefaultConfig() Config {
	return Config{
		ShrinkFactor:  0.8,
		SplitAngle:    25,
		AngleVariance: 20,
		Blur:          5,
		WiggleScale:   1.0 / 100.0,
		Control:       Range{Min: 0.25, Max: 0.75},
		Leaf: Leaf{
			Shape:   LeafEllipse,
			RadiusX: Range{Min: 3, Max: 6},
			RadiusY: Range{Min: 1, Max: 3},
			Alpha:   0.7,
		},
	}
}

// Validate reports the first problem with c, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !(c.ShrinkFactor > 0 && c.ShrinkFactor < 1):
		return fmt.Errorf("%w: shrink factor %v not in (0, 1)", ErrInvalidConfig, c.ShrinkFactor)
	case c.AngleVariance < 0 || math.IsNaN(c.AngleVariance):
		return fmt.Errorf("%w: negative angle variance %v", ErrInvalidConfig, c.AngleVariance)
	case math.IsNaN(c.SplitAngle) || math.IsInf(c.SplitAngle, 0):
		return fmt.Errorf("%w: split angle %v", ErrInvalidConfig, c.SplitAngle)
	case c.Blur < 0 || math.IsNaN(c.Blur):
		return fmt.Errorf("%w: negative blur %v", ErrInvalidConfig, c.Blur)
	case c.WiggleScale < 0 || math.IsNaN(c.WiggleScale):
		return fmt.Errorf("%w: negative wiggle scale %v", ErrInvalidConfig, c.WiggleScale)
	case !c.Control.valid() || c.Control.Min < 0 || c.Control.Max > 1:
		return fmt.Errorf("%w: control range %v not within [0, 1]", ErrInvalidConfig, c.Control)
	case c.MinLength < 0 || math.IsNaN(c.MinLength):
		return fmt.Errorf("%w: negative minimum length %v", ErrInvalidConfig, c.MinLength)
	case c.MinWidth < 0 || math.IsNaN(c.MinWidth):
		return fmt.Errorf("%w: negative minimum width %v", ErrInvalidConfig, c.MinWidth)
	}
	return c.Leaf.validate()
}

func (l Leaf) validate() error {
	switch {
	case l.Shape != LeafEllipse && l.Shape != LeafRound:
		return fmt.Errorf("%w: unknown leaf shape %q", ErrInvalidConfig, l.Shape)
	case !l.RadiusX.valid() || l.RadiusX.Min < 0:
		return fmt.Errorf("%w: leaf x radius %v", ErrInvalidConfig, l.RadiusX)
	case !l.RadiusY.valid() || l.RadiusY.Min < 0:
		return fmt.Errorf("%w: leaf y radius %v", ErrInvalidConfig, l.RadiusY)
	case l.Alpha < 0 || l.Alpha > 1 || math.IsNaN(l.Alpha):
		return fmt.Errorf("%w: leaf alpha %v not in [0, 1]", ErrInvalidConfig, l.Alpha)
	}
	return nil
}
