package surface

import (
	"errors"
	"image/color"

	"github.com/willbeason/fractal-tree/pkg/geometry"
)

// Multi draws every command on all of its surfaces. Its size is the size of
// the first surface.
type Multi []Surface

var _ Surface = Multi(nil)

func (m Multi) Size() (float64, float64) {
	if len(m) == 0 {
		return 0, 0
	}
	return m[0].Size()
}

func (m Multi) Clear() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Clear())
	}
	return errors.Join(errs...)
}

func (m Multi) Push() {
	for _, s := range m {
		s.Push()
	}
}

func (m Multi) Pop() {
	for _, s := range m {
		s.Pop()
	}
}

func (m Multi) Translate(x, y float64) {
	for _, s := range m {
		s.Translate(x, y)
	}
}

func (m Multi) Rotate(radians float64) {
	for _, s := range m {
		s.Rotate(radians)
	}
}

func (m Multi) StrokeCubic(c1, c2, end geometry.XY, stroke Stroke) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.StrokeCubic(c1, c2, end, stroke))
	}
	return errors.Join(errs...)
}

func (m Multi) FillEllipse(center geometry.XY, rx, ry float64, fill color.Color) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.FillEllipse(center, rx, ry, fill))
	}
	return errors.Join(errs...)
}
