package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/willbeason/fractal-tree/pkg/cli"
	"github.com/willbeason/fractal-tree/pkg/surface/raster"
	"github.com/willbeason/fractal-tree/pkg/tree"
)

const (
	buttonLabel = "generate"

	// Cell size of ebitenutil.DebugPrint text.
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Grow random fractal trees in a resizable window",
		Long: `Grow random fractal trees in a resizable window.

Click the button, or press space or enter, for a new tree. Press escape to
quit.`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	cli.AddFlags(cmd.Flags())
	cmd.Flags().Int("width", 1280, "initial window width")
	cmd.Flags().Int("height", 720, "initial window height")
	cmd.Flags().String("background", "000000", "window background color as hex")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	opts, err := cli.ParseFlags(cmd.Flags())
	if err != nil {
		return err
	}
	logger := opts.NewLogger(cmd.ErrOrStderr())

	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	backgroundFlag, _ := cmd.Flags().GetString("background")

	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", tree.ErrInvalidDimensions, width, height)
	}
	background, err := cli.ParseColor(backgroundFlag)
	if err != nil {
		return err
	}

	g, err := newGame(opts, background, logger)
	if err != nil {
		return err
	}
	defer g.close()

	ebiten.SetWindowTitle("Fractal Tree")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Game shows one tree and grows a new one when the button is clicked.
type Game struct {
	surface    *raster.Surface
	button     *tree.Button
	generator  *tree.Generator
	background color.Color
	logger     *slog.Logger

	width, height int

	// grown is set once the first tree is drawn.
	grown bool
	// frame holds the surface as an ebiten image; nil after each
	// generation until the next Draw uploads it.
	frame *ebiten.Image
	// err is a failure from Layout, reported by the next Update.
	err error
}

func newGame(opts cli.Options, background color.Color, logger *slog.Logger) (*Game, error) {
	button := tree.DefaultButton()

	generator, err := tree.NewGenerator(opts.Config, opts.Sampler(), button)
	if err != nil {
		return nil, err
	}

	return &Game{
		surface:    raster.New(1, 1),
		button:     button,
		generator:  generator,
		background: background,
		logger:     logger,
	}, nil
}

func (g *Game) close() {
	_ = g.surface.Close()
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.width == 0 || g.height == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	trigger := !g.grown ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		trigger = trigger || image.Pt(ebiten.CursorPosition()).In(g.buttonRect())
	}

	if trigger {
		return g.grow()
	}
	return nil
}

// grow draws a new tree on the surface.
func (g *Game) grow() error {
	result, err := g.generator.Generate(g.surface)
	if err != nil {
		return err
	}

	g.grown = true
	g.frame = nil

	g.logger.Info("grew tree",
		slog.Int("branches", result.Stats.Branches),
		slog.Int("leaves", len(result.Stats.Leaves)),
		slog.Int("depth", result.Stats.Depth))

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	if g.grown {
		if g.frame == nil {
			g.frame = ebiten.NewImageFromImage(g.surface.Image())
		}
		screen.DrawImage(g.frame, nil)
	}

	r := g.buttonRect()
	if g.button.GlowRadius > 0 && g.button.GlowColor != nil {
		glow := r.Inset(-int(g.button.GlowRadius))
		screen.SubImage(glow).(*ebiten.Image).Fill(g.button.GlowColor)
	}
	screen.SubImage(r).(*ebiten.Image).Fill(g.button.Background)

	label := image.Pt(
		r.Min.X+(r.Dx()-len(buttonLabel)*debugGlyphWidth)/2,
		r.Min.Y+(r.Dy()-debugGlyphHeight)/2)
	ebitenutil.DebugPrintAt(screen, buttonLabel, label.X, label.Y)
}

// Layout follows the window size. A new size empties the surface, and the
// tree is not redrawn until the next click.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth == g.width && outsideHeight == g.height {
		return outsideWidth, outsideHeight
	}
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}

	g.width, g.height = outsideWidth, outsideHeight
	g.frame = nil

	if err := g.surface.Resize(outsideWidth, outsideHeight); err != nil {
		g.err = err
		return outsideWidth, outsideHeight
	}
	if err := g.generator.Resize(float64(outsideWidth), float64(outsideHeight)); err != nil {
		g.err = err
		return outsideWidth, outsideHeight
	}

	g.logger.Debug("window resized", slog.Int("width", outsideWidth), slog.Int("height", outsideHeight))

	return outsideWidth, outsideHeight
}

// buttonRect is the button's area on screen, centered horizontally.
func (g *Game) buttonRect() image.Rectangle {
	b := g.button
	x0 := (float64(g.width) - b.Width) / 2
	y1 := float64(g.height) - b.Bottom
	return image.Rect(int(x0), int(y1-b.Height), int(x0+b.Width), int(y1))
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
