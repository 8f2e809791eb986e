package tree

import (
	"fmt"

	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/palette"
	"github.com/willbeason/fractal-tree/pkg/random"
	"github.com/willbeason/fractal-tree/pkg/surface"
)

// Result describes one generated tree.
type Result struct {
	Params RenderParams
	Root   geometry.XY
	Stats  Stats
}

// Generator draws a new random tree each time Generate is called.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	config  Config
	random  random.Sampler
	control Control

	dims     Dimensions
	offset   float64
	resolved bool
}

// NewGenerator validates config and returns a Generator drawing from r.
// A nil control is replaced by DefaultButton.
func NewGenerator(config Config, r random.Sampler, control Control) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = random.New(0)
	}
	if control == nil {
		control = DefaultButton()
	}

	return &Generator{
		config:  config,
		random:  r,
		control: control,
	}, nil
}

func (g *Generator) Config() Config {
	return g.config
}

// Dimensions returns the constants resolved by the last Resize.
func (g *Generator) Dimensions() Dimensions {
	return g.dims
}

// Resize re-derives the size-dependent constants and the root offset for a
// width by height surface. It does not draw.
func (g *Generator) Resize(width, height float64) error {
	dims, err := g.config.Resolve(width, height)
	if err != nil {
		return err
	}

	g.dims = dims
	g.offset = g.control.MidpointOffset()
	g.resolved = true

	Logger().Debug("resized",
		"width", width,
		"height", height,
		"rootLength", dims.RootLength,
		"minLength", dims.MinLength,
		"minWidth", dims.MinWidth)

	return nil
}

// Generate clears s and draws a new tree on it, then restyles the control to
// match the tree's colors.
func (g *Generator) Generate(s surface.Surface) (Result, error) {
	width, height := s.Size()
	if !g.resolved || width != g.dims.Width || height != g.dims.Height {
		if err := g.Resize(width, height); err != nil {
			return Result{}, err
		}
	}

	if err := s.Clear(); err != nil {
		return Result{}, fmt.Errorf("clearing surface: %w", err)
	}

	params := g.sample()
	root := geometry.XY{X: width / 2, Y: height - g.offset}

	walker := Walker{
		Config:     g.config,
		Dimensions: g.dims,
		Colors:     params.Colors,
		Random:     g.random,
		Surface:    s,
	}

	stats, err := walker.Walk(root, params.RootWidth, params.RootLength, 0)
	if err != nil {
		return Result{}, err
	}

	// Leaves go on last so no branch is drawn over them.
	err = DrawLeaves(s, stats.Leaves, params.Colors.Leaf, g.config.Leaf, g.random)
	if err != nil {
		return Result{}, err
	}

	g.control.SetBackground(params.Colors.Branch)
	g.control.SetGlow(g.config.Blur, params.Colors.Shadow)

	Logger().Debug("generated tree",
		"branches", stats.Branches,
		"leaves", len(stats.Leaves),
		"depth", stats.Depth,
		"rootWidth", params.RootWidth,
		"rootLength", params.RootLength,
		"branchColor", palette.CSS(params.Colors.Branch))

	return Result{Params: params, Root: root, Stats: stats}, nil
}

func (g *Generator) sample() RenderParams {
	colors := palette.Sample(g.random, g.config.Leaf.Alpha)
	d := g.dims

	return RenderParams{
		Colors:     colors,
		RootWidth:  d.RootWidth + g.random.Uniform(-d.WidthVariance, d.WidthVariance),
		RootLength: d.RootLength + g.random.Uniform(-d.LengthVariance, d.LengthVariance),
	}
}
