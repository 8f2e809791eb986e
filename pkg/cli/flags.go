// Package cli holds the flags and setup shared by the tree binaries.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/spf13/pflag"

	"github.com/willbeason/fractal-tree/pkg/random"
	"github.com/willbeason/fractal-tree/pkg/tree"
)

const (
	flagShrink        = "shrink"
	flagSplitAngle    = "split-angle"
	flagAngleVariance = "angle-variance"
	flagBlur          = "blur"
	flagWiggleScale   = "wiggle-scale"
	flagLeafShape     = "leaf-shape"
	flagLeafAlpha     = "leaf-alpha"
	flagMinLength     = "min-length"
	flagMinWidth      = "min-width"
	flagSeed          = "seed"
	flagVerbose       = "verbose"
)

// Options are the parsed shared flags.
type Options struct {
	Config  tree.Config
	Seed    int64
	Verbose bool
}

// AddFlags registers the generator flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	c := tree.DefaultConfig()

	fs.Float64(flagShrink, c.ShrinkFactor, "length and width kept at each split, in (0, 1)")
	fs.Float64(flagSplitAngle, c.SplitAngle, "degrees between a branch and each of its children")
	fs.Float64(flagAngleVariance, c.AngleVariance, "maximum random turn of each branch, in degrees")
	fs.Float64(flagBlur, c.Blur, "glow radius around branches")
	fs.Float64(flagWiggleScale, c.WiggleScale, "branch curviness as a fraction of the surface width")
	fs.String(flagLeafShape, string(c.Leaf.Shape), "leaf shape: ellipse or round")
	fs.Float64(flagLeafAlpha, c.Leaf.Alpha, "leaf opacity, in [0, 1]")
	fs.Float64(flagMinLength, 0, "branches this short end in a leaf; 0 derives it from the height")
	fs.Float64(flagMinWidth, 0, "branches this thin end in a leaf; 0 derives it from the width")
	fs.Int64P(flagSeed, "s", 0, "random seed; 0 seeds from the clock")
	fs.BoolP(flagVerbose, "v", false, "log every generation")
}

// ParseFlags reads the flags registered by AddFlags and validates the
// resulting configuration.
func ParseFlags(fs *pflag.FlagSet) (Options, error) {
	c := tree.DefaultConfig()
	var o Options
	var shape string

	floats := []struct {
		name string
		dst  *float64
	}{
		{flagShrink, &c.ShrinkFactor},
		{flagSplitAngle, &c.SplitAngle},
		{flagAngleVariance, &c.AngleVariance},
		{flagBlur, &c.Blur},
		{flagWiggleScale, &c.WiggleScale},
		{flagLeafAlpha, &c.Leaf.Alpha},
		{flagMinLength, &c.MinLength},
		{flagMinWidth, &c.MinWidth},
	}

	var err error
	for _, f := range floats {
		*f.dst, err = fs.GetFloat64(f.name)
		if err != nil {
			return Options{}, err
		}
	}
	if shape, err = fs.GetString(flagLeafShape); err != nil {
		return Options{}, err
	}
	if o.Seed, err = fs.GetInt64(flagSeed); err != nil {
		return Options{}, err
	}
	if o.Verbose, err = fs.GetBool(flagVerbose); err != nil {
		return Options{}, err
	}

	c.Leaf.Shape = tree.LeafShape(shape)
	if err := c.Validate(); err != nil {
		return Options{}, fmt.Errorf("parsing flags: %w", err)
	}
	o.Config = c

	return o, nil
}

// Sampler returns the random source selected by --seed.
func (o Options) Sampler() random.Sampler {
	return random.New(o.Seed)
}

// NewLogger returns a text logger writing to w, at debug level if verbose.
// It is installed as the tree and gg package logger.
func (o Options) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	tree.SetLogger(logger)
	gg.SetLogger(logger)

	return logger
}
