package tree

import (
	"fmt"
	"math"

	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/palette"
	"github.com/willbeason/fractal-tree/pkg/random"
	"github.com/willbeason/fractal-tree/pkg/surface"
)

// RenderParams are chosen once per generated tree and shared by every branch.
type RenderParams struct {
	Colors palette.Colors

	RootWidth  float64
	RootLength float64
}

// Stats summarizes one walk.
type Stats struct {
	// Branches is the number of branches drawn.
	Branches int

	// Leaves are the points where recursion stopped, in the order reached.
	Leaves []geometry.XY

	// Depth is the deepest level reached. The root is level 0.
	Depth int
}

// A Walker draws a tree branch by branch, splitting every branch in two
// until the branches get too small.
type Walker struct {
	Config     Config
	Dimensions Dimensions
	Colors     palette.Colors

	Random  random.Sampler
	Surface surface.Surface
}

// Walk draws the tree rooted at origin. baseAngle is in degrees, 0 is
// straight up and positive angles lean clockwise.
//
// Leaves are collected but not drawn.
func (w *Walker) Walk(origin geometry.XY, width, length, baseAngle float64) (Stats, error) {
	for _, v := range []float64{origin.X, origin.Y, width, length, baseAngle} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Stats{}, fmt.Errorf("%w: root branch at %v, width %v, length %v, angle %v",
				ErrInvalidDimensions, origin, width, length, baseAngle)
		}
	}

	var stats Stats
	err := w.walk(&stats, origin, width, length, baseAngle, 0)
	return stats, err
}

func (w *Walker) walk(stats *Stats, origin geometry.XY, width, length, baseAngle float64, depth int) error {
	if depth > stats.Depth {
		stats.Depth = depth
	}

	if w.Dimensions.Terminal(length, width) {
		stats.Leaves = append(stats.Leaves, origin)
		return nil
	}

	variance := w.Config.AngleVariance
	angle := baseAngle + w.Random.Uniform(-variance, variance)
	dest := geometry.Heading(origin, angle, length)

	err := w.drawBranch(origin, width, length, angle)
	if err != nil {
		return fmt.Errorf("drawing branch at depth %d: %w", depth, err)
	}
	stats.Branches++

	width *= w.Config.ShrinkFactor
	length *= w.Config.ShrinkFactor

	err = w.walk(stats, dest, width, length, angle+w.Config.SplitAngle, depth+1)
	if err != nil {
		return err
	}
	return w.walk(stats, dest, width, length, angle-w.Config.SplitAngle, depth+1)
}

// drawBranch strokes one branch in a frame where the branch grows straight up
// from the local origin to (0, -length).
func (w *Walker) drawBranch(origin geometry.XY, width, length, angle float64) error {
	s := w.Surface
	s.Push()
	defer s.Pop()

	s.Translate(origin.X, origin.Y)
	s.Rotate(geometry.Radians(angle))

	wiggle := w.Dimensions.WiggleVariance
	along := w.Config.Control

	c1 := geometry.XY{X: w.Random.Uniform(-wiggle, wiggle)}
	c2 := geometry.XY{X: w.Random.Uniform(-wiggle, wiggle)}
	c1.Y = w.Random.Uniform(along.Min, along.Max) * -length
	c2.Y = w.Random.Uniform(along.Min, along.Max) * -length

	return s.StrokeCubic(c1, c2, geometry.XY{X: 0, Y: -length}, surface.Stroke{
		Width: width,
		Color: w.Colors.Branch,
		Glow: surface.Glow{
			Radius: w.Config.Blur,
			Color:  w.Colors.Shadow,
		},
	})
}

// MaxDepth returns the level at which every branch of a tree rooted with
// this length and width has become terminal. A walk never goes deeper.
func (c Config) MaxDepth(d Dimensions, length, width float64) int {
	return min(levels(length, d.MinLength, c.ShrinkFactor), levels(width, d.MinWidth, c.ShrinkFactor))
}

// levels is the number of shrinks after which size is at most cutoff.
func levels(size, cutoff, shrink float64) int {
	if !(size > cutoff) {
		return 0
	}
	n := int(math.Ceil(math.Log(cutoff/size) / math.Log(shrink)))
	// Guard against rounding in the logarithms.
	for n > 0 && size*math.Pow(shrink, float64(n-1)) <= cutoff {
		n--
	}
	for size*math.Pow(shrink, float64(n)) > cutoff {
		n++
	}
	return n
}
