// Package termview shows rendered images in a terminal using half-block
// cells, two pixels per cell.
package termview

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/willbeason/fractal-tree/pkg/tree"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel as
// background.
const upperHalf = '▀'

// Grid maps a terminal of Cols by Rows cells onto a surface with Scale surface
// pixels per half cell.
type Grid struct {
	Cols, Rows int
	Scale      int
}

// SurfaceSize is the size of the surface to render at for this grid.
func (g Grid) SurfaceSize() (width, height int) {
	return g.Cols * g.Scale, g.Rows * 2 * g.Scale
}

// CellHeight is the height of one terminal row in surface pixels.
func (g Grid) CellHeight() float64 {
	return float64(2 * g.Scale)
}

// Button places a generate button on the second to last row.
func (g Grid) Button() *tree.Button {
	b := tree.DefaultButton()
	b.Bottom = g.CellHeight()
	b.Height = g.CellHeight()
	b.Width = float64(14 * g.Scale)
	return b
}

// Downsample scales src to one pixel per half cell.
func (g Grid) Downsample(src image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, g.Cols, g.Rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Paint draws img, already downsampled to the grid, over background.
func (g Grid) Paint(screen tcell.Screen, img image.Image, background color.Color) {
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			top := over(img.At(x, 2*y), background)
			bottom := over(img.At(x, 2*y+1), background)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
}

// ButtonSpan returns the row of the button and the half-open range of columns
// its label covers.
func (g Grid) ButtonSpan(b *tree.Button, label string) (row, start, end int) {
	row = g.Rows - 1 - int(math.Round(b.Bottom/g.CellHeight()))
	width := len([]rune(label)) + 2
	start = (g.Cols - width) / 2
	return row, start, start + width
}

// PaintButton draws the button's label centered on its row, styled with the
// button's current colors.
func (g Grid) PaintButton(screen tcell.Screen, b *tree.Button, label string, background color.Color) {
	row, start, end := g.ButtonSpan(b, label)
	if row < 0 || row >= g.Rows {
		return
	}

	bg := over(b.Background, background)
	style := tcell.StyleDefault.Background(bg).Foreground(contrast(bg))
	if b.GlowColor != nil && b.GlowRadius > 0 {
		glow := tcell.StyleDefault.Foreground(over(b.GlowColor, background)).Background(over(nil, background))
		if start > 0 {
			screen.SetContent(start-1, row, '▐', nil, glow)
		}
		if end < g.Cols {
			screen.SetContent(end, row, '▌', nil, glow)
		}
	}

	for i, r := range []rune(" " + label + " ") {
		x := start + i
		if x < 0 || x >= g.Cols {
			continue
		}
		screen.SetContent(x, row, r, nil, style)
	}
}

// over composites c onto an opaque background.
func over(c, background color.Color) tcell.Color {
	bg := color.NRGBAModel.Convert(background).(color.NRGBA)
	if c == nil {
		return tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))
	}

	r, g, b, a := c.RGBA()
	inv := 0xffff - a
	blend := func(premul uint32, base uint8) int32 {
		return int32((premul + uint32(base)*0x101*inv/0xffff) >> 8)
	}

	return tcell.NewRGBColor(blend(r, bg.R), blend(g, bg.G), blend(b, bg.B))
}

// contrast picks black or white text for a background.
func contrast(c tcell.Color) tcell.Color {
	r, g, b := c.RGB()
	if 299*r+587*g+114*b > 128000 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
