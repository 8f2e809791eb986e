// Package raster renders onto an in-memory image with github.com/gogpu/gg.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/surface"
)

// DefaultGlowSteps is how many halo rings approximate a glow.
const DefaultGlowSteps = 4

// Surface is a surface.Surface backed by a gg.Context.
type Surface struct {
	dc         *gg.Context
	background color.Color
	glowSteps  int
}

var _ surface.Surface = (*Surface)(nil)

type Option func(*Surface)

// WithBackground sets the color Clear fills with. The default is transparent.
func WithBackground(c color.Color) Option {
	return func(s *Surface) {
		s.background = c
	}
}

// WithGlowSteps sets how many rings are stroked beneath a glowing stroke.
// Zero disables glows entirely.
func WithGlowSteps(n int) Option {
	return func(s *Surface) {
		s.glowSteps = max(n, 0)
	}
}

func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		dc:         gg.NewContext(width, height),
		background: color.Transparent,
		glowSteps:  DefaultGlowSteps,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

// Resize reallocates the image. The contents are lost.
func (s *Surface) Resize(width, height int) error {
	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("resizing raster surface: %w", err)
	}
	return nil
}

func (s *Surface) Clear() error {
	s.dc.ClearWithColor(gg.FromColor(s.background))
	return nil
}

func (s *Surface) Push() {
	s.dc.Push()
}

func (s *Surface) Pop() {
	s.dc.Pop()
}

func (s *Surface) Translate(x, y float64) {
	s.dc.Translate(x, y)
}

func (s *Surface) Rotate(radians float64) {
	s.dc.Rotate(radians)
}

func (s *Surface) StrokeCubic(c1, c2, end geometry.XY, stroke surface.Stroke) error {
	s.dc.SetLineCap(gg.LineCapRound)

	if err := s.glow(c1, c2, end, stroke); err != nil {
		return err
	}

	s.cubic(c1, c2, end)
	s.dc.SetLineWidth(stroke.Width)
	s.dc.SetColor(stroke.Color)
	if err := s.dc.Stroke(); err != nil {
		return fmt.Errorf("stroking branch: %w", err)
	}
	return nil
}

// glow approximates a blurred halo with concentric translucent strokes, widest
// and faintest first.
func (s *Surface) glow(c1, c2, end geometry.XY, stroke surface.Stroke) error {
	g := stroke.Glow
	if g.Radius <= 0 || g.Color == nil || s.glowSteps == 0 {
		return nil
	}

	base := color.NRGBAModel.Convert(g.Color).(color.NRGBA)
	alpha := float64(base.A) / 255 / float64(s.glowSteps+1)

	for i := s.glowSteps; i > 0; i-- {
		spread := g.Radius * float64(i) / float64(s.glowSteps)

		s.cubic(c1, c2, end)
		s.dc.SetLineWidth(stroke.Width + 2*spread)
		s.dc.SetRGBA(float64(base.R)/255, float64(base.G)/255, float64(base.B)/255, alpha)
		if err := s.dc.Stroke(); err != nil {
			return fmt.Errorf("stroking glow: %w", err)
		}
	}
	return nil
}

func (s *Surface) cubic(c1, c2, end geometry.XY) {
	s.dc.MoveTo(0, 0)
	s.dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
}

func (s *Surface) FillEllipse(center geometry.XY, rx, ry float64, fill color.Color) error {
	s.dc.DrawEllipse(center.X, center.Y, rx, ry)
	s.dc.SetColor(fill)
	if err := s.dc.Fill(); err != nil {
		return fmt.Errorf("filling ellipse: %w", err)
	}
	return nil
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func (s *Surface) EncodeJPEG(w io.Writer, quality int) error {
	return s.dc.EncodeJPEG(w, quality)
}

func (s *Surface) Close() error {
	return s.dc.Close()
}
