package main

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/willbeason/fractal-tree/pkg/cli"
	"github.com/willbeason/fractal-tree/pkg/surface/raster"
	"github.com/willbeason/fractal-tree/pkg/termview"
	"github.com/willbeason/fractal-tree/pkg/tree"
)

const buttonLabel = "generate"

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Grow random fractal trees in the terminal",
		Long: `Grow random fractal trees in the terminal.

Press space, enter or g, or click the button, for a new tree. Press q or
escape to quit.`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	cli.AddFlags(cmd.Flags())
	cmd.Flags().Int("scale", 4, "surface pixels per half cell")
	cmd.Flags().String("background", "000000", "terminal background color as hex")
	cmd.Flags().String("log-file", "", "write logs to this file instead of discarding them")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	opts, err := cli.ParseFlags(cmd.Flags())
	if err != nil {
		return err
	}

	scale, _ := cmd.Flags().GetInt("scale")
	backgroundFlag, _ := cmd.Flags().GetString("background")
	logFile, _ := cmd.Flags().GetString("log-file")

	if scale < 1 {
		return fmt.Errorf("--scale must be at least 1, got %d", scale)
	}
	background, err := cli.ParseColor(backgroundFlag)
	if err != nil {
		return err
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := opts.NewLogger(logOut)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	v, err := newViewer(screen, opts, scale, background, logger)
	if err != nil {
		return err
	}
	defer v.close()

	if err := v.generate(); err != nil {
		return err
	}

	for {
		quit, err := v.handle(screen.PollEvent())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// viewer keeps one tree on screen and grows a new one on request.
type viewer struct {
	screen     tcell.Screen
	grid       termview.Grid
	surface    *raster.Surface
	button     *tree.Button
	generator  *tree.Generator
	background color.Color
	logger     *slog.Logger

	// pressed is set while the primary mouse button is held.
	pressed bool
}

func newViewer(screen tcell.Screen, opts cli.Options, scale int, background color.Color, logger *slog.Logger) (*viewer, error) {
	cols, rows := screen.Size()
	grid := termview.Grid{Cols: cols, Rows: rows, Scale: scale}
	button := grid.Button()

	generator, err := tree.NewGenerator(opts.Config, opts.Sampler(), button)
	if err != nil {
		return nil, err
	}

	w, h := grid.SurfaceSize()
	v := &viewer{
		screen:     screen,
		grid:       grid,
		surface:    raster.New(max(w, 1), max(h, 1)),
		button:     button,
		generator:  generator,
		background: background,
		logger:     logger,
	}

	return v, nil
}

func (v *viewer) close() {
	_ = v.surface.Close()
}

// handle reacts to one event and reports whether the viewer should quit.
func (v *viewer) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyEnter:
			return false, v.generate()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true, nil
			case ' ', 'g':
				return false, v.generate()
			}
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		click := down && !v.pressed
		v.pressed = down
		if click && v.onButton(ev.Position()) {
			return false, v.generate()
		}

	case *tcell.EventResize:
		return false, v.resize()

	case nil:
		// The screen was finalized.
		return true, nil
	}

	return false, nil
}

// resize follows the terminal size. The surface comes back empty, as a resized
// canvas does, and stays empty until the next generation.
func (v *viewer) resize() error {
	cols, rows := v.screen.Size()
	if cols == v.grid.Cols && rows == v.grid.Rows {
		return nil
	}
	v.grid.Cols, v.grid.Rows = cols, rows

	nb := v.grid.Button()
	v.button.Bottom, v.button.Height, v.button.Width = nb.Bottom, nb.Height, nb.Width

	w, h := v.grid.SurfaceSize()
	if w < 1 || h < 1 {
		return nil
	}
	if err := v.surface.Resize(w, h); err != nil {
		return err
	}
	if err := v.generator.Resize(float64(w), float64(h)); err != nil {
		return err
	}

	v.logger.Debug("terminal resized", slog.Int("cols", cols), slog.Int("rows", rows))
	v.screen.Sync()
	v.paint()

	return nil
}

func (v *viewer) generate() error {
	w, h := v.grid.SurfaceSize()
	if w < 1 || h < 1 {
		return nil
	}
	if sw, sh := v.surface.Size(); int(sw) != w || int(sh) != h {
		if err := v.surface.Resize(w, h); err != nil {
			return err
		}
	}

	result, err := v.generator.Generate(v.surface)
	if err != nil {
		return err
	}

	v.logger.Info("grew tree",
		slog.Int("branches", result.Stats.Branches),
		slog.Int("leaves", len(result.Stats.Leaves)),
		slog.Int("depth", result.Stats.Depth))

	v.paint()
	return nil
}

func (v *viewer) paint() {
	v.grid.Paint(v.screen, v.grid.Downsample(v.surface.Image()), v.background)
	v.grid.PaintButton(v.screen, v.button, buttonLabel, v.background)
	v.screen.Show()
}

// onButton reports whether the cell at x, y is part of the button label.
func (v *viewer) onButton(x, y int) bool {
	row, start, end := v.grid.ButtonSpan(v.button, buttonLabel)
	return y == row && x >= start && x < end
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
