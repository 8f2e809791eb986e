package tree

import "image/color"

// A Control is the on-screen element that triggers generation. The tree grows
// out of its vertical middle, and it is restyled to match each new tree.
type Control interface {
	// MidpointOffset is the distance from the bottom of the surface to the
	// control's vertical middle.
	MidpointOffset() float64

	SetBackground(c color.Color)
	SetGlow(radius float64, c color.Color)
}

// Button is a Control that only remembers its styling. Hosts read it back to
// paint the button however suits them.
type Button struct {
	// Bottom is the gap between the bottom of the surface and the button.
	Bottom float64
	Height float64
	Width  float64

	Background color.Color
	GlowRadius float64
	GlowColor  color.Color
}

var _ Control = (*Button)(nil)

// DefaultButton returns the generate button of the reference page layout.
func DefaultButton() *Button {
	return &Button{
		Bottom:     20,
		Height:     40,
		Width:      160,
		Background: color.Black,
		GlowColor:  color.Transparent,
	}
}

func (b *Button) MidpointOffset() float64 {
	return b.Bottom + b.Height/2
}

func (b *Button) SetBackground(c color.Color) {
	b.Background = c
}

func (b *Button) SetGlow(radius float64, c color.Color) {
	b.GlowRadius = radius
	b.GlowColor = c
}
