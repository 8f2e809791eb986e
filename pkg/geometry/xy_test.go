package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b XY) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestHeading(t *testing.T) {
	origin := XY{X: 100, Y: 100}

	tcs := []struct {
		name  string
		angle float64
		want  XY
	}{
		{name: "up", angle: 0, want: XY{X: 100, Y: 90}},
		{name: "right", angle: 90, want: XY{X: 110, Y: 100}},
		{name: "down", angle: 180, want: XY{X: 100, Y: 110}},
		{name: "left", angle: -90, want: XY{X: 90, Y: 100}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Heading(origin, tc.angle, 10)
			if !near(got, tc.want) {
				t.Errorf("Heading(%v, %v, 10) = %v, want %v", origin, tc.angle, got, tc.want)
			}
		})
	}
}

// Rotating the local "up" vector by the branch angle must agree with Heading,
// since branches are drawn in a rotated frame but their children start at Heading.
func TestRescaleMatchesHeading(t *testing.T) {
	origin := XY{X: 400, Y: 500}

	for _, angle := range []float64{-47.5, -25, 0, 13, 25, 90, 170} {
		local := XY{X: 0, Y: -180}
		got := Rescale(local, 1.0, Radians(angle), origin)
		want := Heading(origin, angle, 180)
		if !near(got, want) {
			t.Errorf("angle %v: Rescale = %v, Heading = %v", angle, got, want)
		}
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > epsilon {
		t.Errorf("Radians(180) = %v", got)
	}
}
