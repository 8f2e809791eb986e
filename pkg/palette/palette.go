package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/willbeason/fractal-tree/pkg/random"
)

// Colors is the color set of one generated tree.
type Colors struct {
	Branch color.NRGBA
	Leaf   color.NRGBA
	Shadow color.NRGBA
}

// Sample draws a fresh color set. Every channel of every color is its own
// uniform draw over 0..255. The leaf color carries leafAlpha, in [0, 1].
func Sample(r random.Sampler, leafAlpha float64) Colors {
	return Colors{
		Branch: Opaque(r),
		Leaf:   Translucent(r, leafAlpha),
		Shadow: Opaque(r),
	}
}

// Opaque returns a random fully opaque color.
func Opaque(r random.Sampler) color.NRGBA {
	return color.NRGBA{
		R: channel(r),
		G: channel(r),
		B: channel(r),
		A: math.MaxUint8,
	}
}

// Translucent returns a random color with the given alpha.
func Translucent(r random.Sampler, alpha float64) color.NRGBA {
	c := Opaque(r)
	c.A = uint8(math.Round(clamp(alpha, 0, 1) * math.MaxUint8))
	return c
}

func channel(r random.Sampler) uint8 {
	// Uniform is half-open, so 256 keeps 255 as likely as every other value.
	return uint8(clamp(math.Floor(r.Uniform(0, 256)), 0, math.MaxUint8))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// CSS formats c the way a stylesheet would: rgb(r,g,b), or rgba(r,g,b,a)
// when c is not opaque.
func CSS(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == math.MaxUint8 {
		return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", n.R, n.G, n.B, float64(n.A)/math.MaxUint8)
}

// Opacity returns the alpha of c in [0, 1].
func Opacity(c color.Color) float64 {
	_, _, _, a := c.RGBA()
	return float64(a) / math.MaxUint16
}
