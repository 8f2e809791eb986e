// Package surface defines the drawing surface a tree is rendered onto.
//
// A Surface keeps an affine transform stack in the manner of an HTML canvas:
// Push saves the current transform, Pop restores it, and Translate and Rotate
// compose onto it. Paths are given in the current local frame.
package surface

import (
	"image/color"

	"github.com/willbeason/fractal-tree/pkg/geometry"
)

// Glow is a soft blurred halo drawn beneath a stroke.
type Glow struct {
	// Radius is the blur radius in surface units. Zero disables the glow.
	Radius float64
	Color  color.Color
}

// Stroke is how a path is outlined.
type Stroke struct {
	Width float64
	Color color.Color
	Glow  Glow
}

type Surface interface {
	// Size returns the surface dimensions in device pixels.
	Size() (width, height float64)

	// Clear erases everything drawn so far.
	Clear() error

	Push()
	Pop()

	// Translate moves the local origin to (x, y) in the current frame.
	Translate(x, y float64)
	// Rotate turns the local frame clockwise by radians.
	Rotate(radians float64)

	// StrokeCubic strokes a cubic Bezier from the local origin through
	// control points c1 and c2 to end.
	StrokeCubic(c1, c2, end geometry.XY, stroke Stroke) error

	// FillEllipse fills an axis-aligned ellipse in the local frame.
	FillEllipse(center geometry.XY, rx, ry float64, fill color.Color) error
}
