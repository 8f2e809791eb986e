package palette

import (
	"image/color"
	"testing"

	"github.com/willbeason/fractal-tree/pkg/random"
)

// counter records how many draws a sampler served.
type counter struct {
	random.Sampler
	n int
}

func (c *counter) Uniform(min, max float64) float64 {
	c.n++
	return c.Sampler.Uniform(min, max)
}

func TestSampleDrawsEveryChannel(t *testing.T) {
	r := &counter{Sampler: random.Midpoint}
	Sample(r, 0.7)

	// Three colors, three independent channel draws each.
	if r.n != 9 {
		t.Errorf("Sample drew %d values, want 9", r.n)
	}
}

func TestSampleIndependentChannels(t *testing.T) {
	r := &random.Sequence{Fractions: []float64{0, 0.5, 0.999, 0.25, 0.75, 0.1, 1.0 / 256, 0.6, 0.3}}
	got := Sample(r, 0.8)

	want := Colors{
		Branch: color.NRGBA{R: 0, G: 128, B: 255, A: 255},
		Leaf:   color.NRGBA{R: 64, G: 192, B: 25, A: 204},
		Shadow: color.NRGBA{R: 1, G: 153, B: 76, A: 255},
	}
	if got != want {
		t.Errorf("Sample() = %+v, want %+v", got, want)
	}
}

func TestChannelRange(t *testing.T) {
	seen := map[uint8]bool{}
	r := random.New(3)
	for i := 0; i < 100000; i++ {
		seen[channel(r)] = true
	}
	if !seen[0] || !seen[255] {
		t.Errorf("channel never produced an extreme: 0=%v 255=%v", seen[0], seen[255])
	}
}

func TestCSS(t *testing.T) {
	tcs := []struct {
		c    color.Color
		want string
	}{
		{c: color.NRGBA{R: 1, G: 2, B: 3, A: 255}, want: "rgb(1,2,3)"},
		{c: color.NRGBA{R: 10, G: 20, B: 30, A: 0}, want: "rgba(10,20,30,0.00)"},
		{c: color.NRGBA{R: 255, G: 0, B: 0, A: 51}, want: "rgba(255,0,0,0.20)"},
	}

	for _, tc := range tcs {
		if got := CSS(tc.c); got != tc.want {
			t.Errorf("CSS(%v) = %q, want %q", tc.c, got, tc.want)
		}
	}
}
