package tree

import (
	"fmt"
	"image/color"
	"math"

	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/random"
	"github.com/willbeason/fractal-tree/pkg/surface"
)

// DrawLeaves draws one leaf at every anchor, in order.
func DrawLeaves(s surface.Surface, anchors []geometry.XY, fill color.Color, leaf Leaf, r random.Sampler) error {
	for i, anchor := range anchors {
		if err := DrawLeaf(s, anchor, fill, leaf, r); err != nil {
			return fmt.Errorf("drawing leaf %d of %d: %w", i+1, len(anchors), err)
		}
	}
	return nil
}

// DrawLeaf draws a randomly sized leaf pointing in a random direction, its
// near edge touching anchor.
func DrawLeaf(s surface.Surface, anchor geometry.XY, fill color.Color, leaf Leaf, r random.Sampler) error {
	rx := r.Uniform(leaf.RadiusX.Min, leaf.RadiusX.Max)
	ry := rx
	if leaf.Shape != LeafRound {
		ry = r.Uniform(leaf.RadiusY.Min, leaf.RadiusY.Max)
	}
	rotation := r.Uniform(0, 2*math.Pi)

	s.Push()
	defer s.Pop()

	s.Translate(anchor.X, anchor.Y)
	s.Rotate(rotation)

	return s.FillEllipse(geometry.XY{X: rx}, rx, ry, fill)
}
