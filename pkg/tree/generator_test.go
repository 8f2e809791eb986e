package tree

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/random"
	"github.com/willbeason/fractal-tree/pkg/surface/trace"
)

func TestNewGeneratorRejectsConfig(t *testing.T) {
	c := DefaultConfig()
	c.ShrinkFactor = 1

	_, err := NewGenerator(c, random.Midpoint, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewGenerator() = %v, want ErrInvalidConfig", err)
	}
}

func TestGenerate(t *testing.T) {
	button := DefaultButton()
	g, err := NewGenerator(DefaultConfig(), random.Midpoint, button)
	if err != nil {
		t.Fatal(err)
	}

	rec := trace.New(800, 600)
	result, err := g.Generate(rec)
	if err != nil {
		t.Fatal(err)
	}

	// The tree grows from the middle of the button, 40 above the bottom edge.
	if want := (geometry.XY{X: 400, Y: 560}); result.Root != want {
		t.Errorf("Root = %v, want %v", result.Root, want)
	}

	grey := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	if result.Params.Colors.Branch != grey || result.Params.Colors.Shadow != grey {
		t.Errorf("colors = %+v", result.Params.Colors)
	}
	if math.Abs(result.Params.RootWidth-24) > tolerance {
		t.Errorf("RootWidth = %v, want 24", result.Params.RootWidth)
	}
	if math.Abs(result.Params.RootLength-600/5.5) > tolerance {
		t.Errorf("RootLength = %v, want %v", result.Params.RootLength, 600/5.5)
	}

	if rec.Commands[0].Kind != trace.KindClear {
		t.Errorf("first command = %q, want clear", rec.Commands[0].Kind)
	}
	if got := rec.Count(trace.KindStroke); got != result.Stats.Branches {
		t.Errorf("%d strokes for %d branches", got, result.Stats.Branches)
	}
	if got := rec.Count(trace.KindFill); got != len(result.Stats.Leaves) {
		t.Errorf("%d fills for %d leaves", got, len(result.Stats.Leaves))
	}

	// Leaves come after every branch.
	seenFill := false
	for i, c := range rec.Commands {
		switch c.Kind {
		case trace.KindFill:
			seenFill = true
		case trace.KindStroke:
			if seenFill {
				t.Fatalf("stroke %d drawn over a leaf", i)
			}
		}
	}

	if button.Background != result.Params.Colors.Branch {
		t.Errorf("button background = %v, want %v", button.Background, result.Params.Colors.Branch)
	}
	if button.GlowRadius != 5 || button.GlowColor != result.Params.Colors.Shadow {
		t.Errorf("button glow = %v %v", button.GlowRadius, button.GlowColor)
	}
}

func TestGenerateReplacesImage(t *testing.T) {
	g, err := NewGenerator(DefaultConfig(), random.New(3), nil)
	if err != nil {
		t.Fatal(err)
	}
	rec := trace.New(640, 480)

	first, err := g.Generate(rec)
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.Generate(rec)
	if err != nil {
		t.Fatal(err)
	}

	if first.Params == second.Params {
		t.Error("two generations drew identical parameters")
	}
	if got, want := len(rec.Commands), 1+second.Stats.Branches+len(second.Stats.Leaves); got != want {
		t.Errorf("surface holds %d commands after regenerating, want %d", got, want)
	}
}

func TestGenerateFollowsResize(t *testing.T) {
	button := DefaultButton()
	g, err := NewGenerator(DefaultConfig(), random.Midpoint, button)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.Resize(800, 600); err != nil {
		t.Fatal(err)
	}
	if got := g.Dimensions().MinLength; got != 7.5 {
		t.Errorf("MinLength = %v, want 7.5", got)
	}

	// A moved button only takes effect on the next resize.
	button.Bottom = 60
	rec := trace.New(800, 600)
	result, err := g.Generate(rec)
	if err != nil {
		t.Fatal(err)
	}
	if result.Root.Y != 560 {
		t.Errorf("Root.Y = %v before resize, want 560", result.Root.Y)
	}

	rec.Resize(1000, 800)
	result, err = g.Generate(rec)
	if err != nil {
		t.Fatal(err)
	}
	if want := (geometry.XY{X: 500, Y: 720}); result.Root != want {
		t.Errorf("Root = %v after resize, want %v", result.Root, want)
	}
	if got := g.Dimensions().Width; got != 1000 {
		t.Errorf("Dimensions().Width = %v, want 1000", got)
	}
}

func TestGenerateInvalidSurface(t *testing.T) {
	g, err := NewGenerator(DefaultConfig(), random.Midpoint, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = g.Generate(trace.New(0, 600))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Generate() = %v, want ErrInvalidDimensions", err)
	}
}
