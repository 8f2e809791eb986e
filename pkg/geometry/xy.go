package geometry

import "math"

// XY is a point on the drawing surface, in surface units.
// Y grows downward, as on a canvas.
type XY struct {
	X, Y float64
}

func (xy XY) Add(o XY) XY {
	return XY{X: xy.X + o.X, Y: xy.Y + o.Y}
}

func (xy XY) Sub(o XY) XY {
	return XY{X: xy.X - o.X, Y: xy.Y - o.Y}
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Heading returns the point length away from origin in the direction of angle.
//
// Angle is in degrees, 0 points straight up and positive angles rotate clockwise.
func Heading(origin XY, angle float64, length float64) XY {
	theta := Radians(90.0 - angle)
	return XY{
		X: origin.X + math.Cos(theta)*length,
		Y: origin.Y - math.Sin(theta)*length,
	}
}

// Rescale scales xy, rotates it by angle radians and moves it by offset.
// This maps a point in a branch-local frame to surface coordinates.
func Rescale(xy XY, scale float64, angle float64, offset XY) XY {
	x := xy.X * scale
	y := xy.Y * scale

	x2 := x*math.Cos(angle) - y*math.Sin(angle) + offset.X
	y2 := x*math.Sin(angle) + y*math.Cos(angle) + offset.Y

	return XY{X: x2, Y: y2}
}
