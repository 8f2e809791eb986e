package surface_test

import (
	"image/color"
	"testing"

	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/surface"
	"github.com/willbeason/fractal-tree/pkg/surface/trace"
)

func TestMultiMirrorsCommands(t *testing.T) {
	a, b := trace.New(30, 20), trace.New(99, 99)
	m := surface.Multi{a, b}

	if w, h := m.Size(); w != 30 || h != 20 {
		t.Errorf("Size() = %v, %v, want the first surface's 30, 20", w, h)
	}

	_ = m.Clear()
	m.Push()
	m.Translate(5, 5)
	if err := m.FillEllipse(geometry.XY{X: 1}, 1, 1, color.White); err != nil {
		t.Fatal(err)
	}
	m.Pop()
	if err := m.StrokeCubic(geometry.XY{}, geometry.XY{}, geometry.XY{Y: -1}, surface.Stroke{Width: 1, Color: color.White}); err != nil {
		t.Fatal(err)
	}

	for name, r := range map[string]*trace.Recorder{"first": a, "second": b} {
		if len(r.Commands) != 3 {
			t.Fatalf("%s surface recorded %d commands, want 3", name, len(r.Commands))
		}
		if got := r.Commands[1].Points[0]; got != (geometry.XY{X: 6, Y: 5}) {
			t.Errorf("%s surface fill at %v, want (6,5)", name, got)
		}
		if r.Depth() != 0 {
			t.Errorf("%s surface left %d frames", name, r.Depth())
		}
	}
}

func TestMultiEmpty(t *testing.T) {
	var m surface.Multi
	if w, h := m.Size(); w != 0 || h != 0 {
		t.Errorf("empty Size() = %v, %v", w, h)
	}
	if err := m.Clear(); err != nil {
		t.Errorf("empty Clear() = %v", err)
	}
}
