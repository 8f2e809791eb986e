package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/willbeason/fractal-tree/pkg/cli"
	"github.com/willbeason/fractal-tree/pkg/surface"
	"github.com/willbeason/fractal-tree/pkg/surface/raster"
	"github.com/willbeason/fractal-tree/pkg/surface/trace"
	"github.com/willbeason/fractal-tree/pkg/surface/vector"
	"github.com/willbeason/fractal-tree/pkg/tree"
)

const jpegQuality = 95

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Render random fractal trees to image files",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cli.AddFlags(cmd.Flags())
	cmd.Flags().Int("width", 2560, "image width in pixels")
	cmd.Flags().Int("height", 1440, "image height in pixels")
	cmd.Flags().StringP("out", "o", "out.png", "output file; numbered when --count > 1")
	cmd.Flags().Int("count", 1, "number of trees to render")
	cmd.Flags().String("format", string(cli.FormatAuto), "output format: auto, png, jpeg or svg")
	cmd.Flags().String("background", "none", "background color as hex, or none")
	cmd.Flags().Bool("trace", false, "also write every draw command to stdout as JSON lines")

	return cmd
}

// canvas is a surface that can be written out as a file.
type canvas interface {
	surface.Surface
	encode(w io.Writer) error
}

type pngCanvas struct{ *raster.Surface }

func (c pngCanvas) encode(w io.Writer) error { return c.EncodePNG(w) }

type jpegCanvas struct{ *raster.Surface }

func (c jpegCanvas) encode(w io.Writer) error { return c.EncodeJPEG(w, jpegQuality) }

type svgCanvas struct{ *vector.Surface }

func (c svgCanvas) encode(w io.Writer) error {
	_, err := c.WriteTo(w)
	return err
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
	out, _ := cmd.Flags().GetString("out")
	count, _ := cmd.Flags().GetInt("count")
	formatFlag, _ := cmd.Flags().GetString("format")
	backgroundFlag, _ := cmd.Flags().GetString("background")
	traceCommands, _ := cmd.Flags().GetBool("trace")

	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", tree.ErrInvalidDimensions, width, height)
	}
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	format, err := cli.ResolveFormat(cli.Format(formatFlag), out)
	if err != nil {
		return err
	}
	background, err := cli.ParseColor(backgroundFlag)
	if err != nil {
		return err
	}

	var c canvas
	switch format {
	case cli.FormatSVG:
		c = svgCanvas{vector.New(width, height, vector.WithBackground(background))}
	case cli.FormatJPEG:
		c = jpegCanvas{raster.New(width, height, raster.WithBackground(background))}
	default:
		c = pngCanvas{raster.New(width, height, raster.WithBackground(background))}
	}

	if closer, ok := c.(io.Closer); ok {
		defer closer.Close()
	}

	var target surface.Surface = c
	var recorder *trace.Recorder
	if traceCommands {
		recorder = trace.New(float64(width), float64(height))
		target = surface.Multi{c, recorder}
	}

	button := tree.DefaultButton()
	generator, err := tree.NewGenerator(opts.Config, opts.Sampler(), button)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		result, err := generator.Generate(target)
		if err != nil {
			return err
		}

		path := cli.OutputPath(out, i, count)
		if err := writeFile(path, c); err != nil {
			return err
		}

		if recorder != nil {
			if _, err := recorder.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
		}

		logger.Info("rendered tree",
			slog.String("path", path),
			slog.Int("branches", result.Stats.Branches),
			slog.Int("leaves", len(result.Stats.Leaves)),
			slog.Int("depth", result.Stats.Depth))
	}

	return nil
}

func writeFile(path string, c canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = c.encode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
