// Package trace implements a surface.Surface that records draw commands
// instead of rasterizing them. Coordinates are recorded in surface space, with
// the transform stack already applied.
package trace

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"

	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/palette"
	"github.com/willbeason/fractal-tree/pkg/surface"
)

type Kind string

const (
	KindClear  Kind = "clear"
	KindStroke Kind = "stroke"
	KindFill   Kind = "fill"
)

// Command is one recorded draw call.
type Command struct {
	Kind Kind `json:"kind"`

	// Stroke: start, c1, c2, end. Fill: center.
	Points []geometry.XY `json:"points,omitempty"`

	// Angle is the frame rotation in radians when the command was issued.
	Angle float64 `json:"angle"`

	Width     float64 `json:"width,omitempty"`
	Color     string  `json:"color,omitempty"`
	GlowColor string  `json:"glowColor,omitempty"`
	Glow      float64 `json:"glow,omitempty"`

	RX float64 `json:"rx,omitempty"`
	RY float64 `json:"ry,omitempty"`
}

// frame is a rigid transform: rotate by angle, then move to origin.
type frame struct {
	origin geometry.XY
	angle  float64
}

func (f frame) apply(xy geometry.XY) geometry.XY {
	return geometry.Rescale(xy, 1.0, f.angle, f.origin)
}

// Recorder is a surface.Surface that keeps every command in memory.
type Recorder struct {
	width, height float64

	current frame
	stack   []frame

	Commands []Command
}

var _ surface.Surface = (*Recorder)(nil)

func New(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (float64, float64) {
	return r.width, r.height
}

// Resize changes the reported dimensions.
func (r *Recorder) Resize(width, height float64) {
	r.width, r.height = width, height
}

func (r *Recorder) Clear() error {
	r.Commands = r.Commands[:0]
	r.Commands = append(r.Commands, Command{Kind: KindClear})
	return nil
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, r.current)
}

func (r *Recorder) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.current = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) {
	r.current.origin = r.current.apply(geometry.XY{X: x, Y: y})
}

func (r *Recorder) Rotate(radians float64) {
	r.current.angle += radians
}

// Depth is the number of saved frames. It is zero between balanced draws.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

func (r *Recorder) StrokeCubic(c1, c2, end geometry.XY, stroke surface.Stroke) error {
	cmd := Command{
		Kind: KindStroke,
		Points: []geometry.XY{
			r.current.apply(geometry.XY{}),
			r.current.apply(c1),
			r.current.apply(c2),
			r.current.apply(end),
		},
		Angle: r.current.angle,
		Width: stroke.Width,
		Glow:  stroke.Glow.Radius,
	}
	if stroke.Color != nil {
		cmd.Color = palette.CSS(stroke.Color)
	}
	if stroke.Glow.Color != nil {
		cmd.GlowColor = palette.CSS(stroke.Glow.Color)
	}
	r.Commands = append(r.Commands, cmd)
	return nil
}

func (r *Recorder) FillEllipse(center geometry.XY, rx, ry float64, fill color.Color) error {
	cmd := Command{
		Kind:   KindFill,
		Points: []geometry.XY{r.current.apply(center)},
		Angle:  r.current.angle,
		RX:     rx,
		RY:     ry,
	}
	if fill != nil {
		cmd.Color = palette.CSS(fill)
	}
	r.Commands = append(r.Commands, cmd)
	return nil
}

// Count returns how many recorded commands have the given kind.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// WriteTo writes the recorded commands as JSON lines.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := json.NewEncoder(cw)
	for i, c := range r.Commands {
		if err := enc.Encode(c); err != nil {
			return cw.n, fmt.Errorf("encoding command %d: %w", i, err)
		}
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
