// Package vector renders to an SVG document with github.com/ajstarks/svgo.
//
// Drawing is buffered so Clear can discard it. The document is produced by
// WriteTo.
package vector

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/palette"
	"github.com/willbeason/fractal-tree/pkg/surface"
)

// Surface is a surface.Surface that writes SVG.
type Surface struct {
	width, height int
	title         string
	background    color.Color

	body   bytes.Buffer
	canvas *svg.SVG

	transforms []string
	saved      []int

	// blurs holds every glow radius in use, each backed by one filter.
	blurs map[float64]bool
}

var _ surface.Surface = (*Surface)(nil)

type Option func(*Surface)

func WithTitle(title string) Option {
	return func(s *Surface) {
		s.title = title
	}
}

// WithBackground fills the document with c. The default is transparent.
func WithBackground(c color.Color) Option {
	return func(s *Surface) {
		s.background = c
	}
}

func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		width:  width,
		height: height,
		title:  "Fractal tree",
		blurs:  make(map[float64]bool),
	}
	s.canvas = svg.New(&s.body)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

func (s *Surface) Clear() error {
	s.body.Reset()
	s.blurs = make(map[float64]bool)
	return nil
}

func (s *Surface) Push() {
	s.saved = append(s.saved, len(s.transforms))
}

func (s *Surface) Pop() {
	if len(s.saved) == 0 {
		return
	}
	s.transforms = s.transforms[:s.saved[len(s.saved)-1]]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *Surface) Translate(x, y float64) {
	s.transforms = append(s.transforms, fmt.Sprintf("translate(%s,%s)", num(x), num(y)))
}

func (s *Surface) Rotate(radians float64) {
	s.transforms = append(s.transforms, fmt.Sprintf("rotate(%s)", num(radians*180/math.Pi)))
}

func (s *Surface) StrokeCubic(c1, c2, end geometry.XY, stroke surface.Stroke) error {
	d := fmt.Sprintf("M0,0 C%s,%s %s,%s %s,%s",
		num(c1.X), num(c1.Y), num(c2.X), num(c2.Y), num(end.X), num(end.Y))

	s.begin()
	defer s.end()

	if g := stroke.Glow; g.Radius > 0 && g.Color != nil {
		s.blurs[g.Radius] = true
		s.canvas.Path(d, strokeStyle(g.Color, stroke.Width), fmt.Sprintf(`filter="url(#%s)"`, filterID(g.Radius)))
	}
	s.canvas.Path(d, strokeStyle(stroke.Color, stroke.Width))
	return nil
}

func (s *Surface) FillEllipse(center geometry.XY, rx, ry float64, fill color.Color) error {
	left, right := num(center.X-rx), num(center.X+rx)
	cy := num(center.Y)
	arc := fmt.Sprintf("A%s,%s 0 1,0", num(rx), num(ry))
	d := fmt.Sprintf("M%s,%s %s %s,%s %s %s,%s Z", left, cy, arc, right, cy, arc, left, cy)

	s.begin()
	defer s.end()

	r, g, b, a := channels(fill)
	s.canvas.Path(d, fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%s;stroke:none", r, g, b, num(a)))
	return nil
}

// begin opens a group carrying the current transform.
func (s *Surface) begin() {
	if len(s.transforms) > 0 {
		s.canvas.Gtransform(strings.Join(s.transforms, " "))
	}
}

func (s *Surface) end() {
	if len(s.transforms) > 0 {
		s.canvas.Gend()
	}
}

// WriteTo writes the complete SVG document.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	doc := svg.New(cw)

	doc.Start(s.width, s.height)
	doc.Title(s.title)
	s.writeFilters(doc)
	if s.background != nil {
		if _, _, _, a := channels(s.background); a > 0 {
			doc.Rect(0, 0, s.width, s.height, "fill:"+palette.CSS(s.background))
		}
	}
	if _, err := cw.Write(s.body.Bytes()); err != nil {
		return cw.n, fmt.Errorf("writing svg body: %w", err)
	}
	doc.End()

	return cw.n, cw.err
}

func (s *Surface) writeFilters(doc *svg.SVG) {
	if len(s.blurs) == 0 {
		return
	}

	radii := make([]float64, 0, len(s.blurs))
	for r := range s.blurs {
		radii = append(radii, r)
	}
	sort.Float64s(radii)

	// Branch bounding boxes are often zero-width, so filter regions are
	// given in user space, large enough for any branch on the surface.
	span := math.Hypot(float64(s.width), float64(s.height))

	doc.Def()
	for _, r := range radii {
		doc.Filter(filterID(r),
			`filterUnits="userSpaceOnUse"`,
			fmt.Sprintf(`x="%s" y="%s" width="%s" height="%s"`, num(-span), num(-span), num(2*span), num(2*span)))
		// A canvas shadow blur of r is a Gaussian with deviation r/2.
		doc.FeGaussianBlur(svg.Filterspec{In: "SourceGraphic"}, r/2, r/2)
		doc.Fend()
	}
	doc.DefEnd()
}

func filterID(radius float64) string {
	return "glow-" + strings.ReplaceAll(num(radius), ".", "_")
}

func strokeStyle(c color.Color, width float64) string {
	r, g, b, a := channels(c)
	return fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-opacity:%s;stroke-width:%s;stroke-linecap:round",
		r, g, b, num(a), num(width))
}

func channels(c color.Color) (r, g, b uint8, a float64) {
	if c == nil {
		return 0, 0, 0, 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B, palette.Opacity(c)
}

// num formats v compactly with enough precision for sub-pixel geometry.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
