package main

import (
	"image/color"
	"io"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/willbeason/fractal-tree/pkg/cli"
	"github.com/willbeason/fractal-tree/pkg/tree"
)

func newTestViewer(t *testing.T) (*viewer, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)

	opts := cli.Options{Config: tree.DefaultConfig(), Seed: 1}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	v, err := newViewer(screen, opts, 2, color.Black, logger)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(v.close)

	return v, screen
}

func generated(v *viewer) bool {
	return v.button.GlowRadius > 0
}

func TestViewer_Keys(t *testing.T) {
	tcs := []struct {
		name     string
		ev       *tcell.EventKey
		quit     bool
		generate bool
	}{
		{name: "space", ev: tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), generate: true},
		{name: "g", ev: tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), generate: true},
		{name: "enter", ev: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), generate: true},
		{name: "other rune", ev: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)},
		{name: "q", ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), quit: true},
		{name: "escape", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), quit: true},
		{name: "ctrl-c", ev: tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), quit: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			v, _ := newTestViewer(t)

			quit, err := v.handle(tc.ev)
			if err != nil {
				t.Fatal(err)
			}
			if quit != tc.quit {
				t.Errorf("quit = %t, want %t", quit, tc.quit)
			}
			if generated(v) != tc.generate {
				t.Errorf("generated = %t, want %t", generated(v), tc.generate)
			}
		})
	}
}

func TestViewer_Click(t *testing.T) {
	v, _ := newTestViewer(t)
	row, start, end := v.grid.ButtonSpan(v.button, buttonLabel)

	// Outside the button.
	mustHandle(t, v, tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	mustHandle(t, v, tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if generated(v) {
		t.Fatal("click outside the button generated a tree")
	}

	// Dragging onto the button is not a click.
	mustHandle(t, v, tcell.NewEventMouse(start, 0, tcell.Button1, tcell.ModNone))
	mustHandle(t, v, tcell.NewEventMouse(start, row, tcell.Button1, tcell.ModNone))
	mustHandle(t, v, tcell.NewEventMouse(start, row, tcell.ButtonNone, tcell.ModNone))
	if generated(v) {
		t.Fatal("drag onto the button generated a tree")
	}

	mustHandle(t, v, tcell.NewEventMouse(end-1, row, tcell.Button1, tcell.ModNone))
	if !generated(v) {
		t.Fatal("click on the button did not generate a tree")
	}
}

func TestViewer_Resize(t *testing.T) {
	v, screen := newTestViewer(t)

	screen.SetSize(60, 20)
	mustHandle(t, v, tcell.NewEventResize(60, 20))

	if w, h := v.surface.Size(); w != 120 || h != 80 {
		t.Errorf("surface size = %v, %v, want 120, 80", w, h)
	}
	if d := v.generator.Dimensions(); d.Width != 120 || d.Height != 80 {
		t.Errorf("generator dimensions = %v x %v, want 120 x 80", d.Width, d.Height)
	}
	if v.button.Bottom != 4 || v.button.Height != 4 {
		t.Errorf("button = %+v, want bottom and height of one row", v.button)
	}
	if generated(v) {
		t.Error("resize generated a tree")
	}

	mustHandle(t, v, tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone))
	if !generated(v) {
		t.Error("no tree after resize")
	}
}

func mustHandle(t *testing.T, v *viewer, ev tcell.Event) {
	t.Helper()

	quit, err := v.handle(ev)
	if err != nil {
		t.Fatal(err)
	}
	if quit {
		t.Fatalf("%T quit the viewer", ev)
	}
}
