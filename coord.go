package geonym

import "math"

// Coord is a position in logical space.
// Both components are nominally in [-1, 1]; the origin is the center of the
// surface and Y increases upward.
type Coord struct {
	X, Y float64
}

// Origin is the center of logical space.
var Origin = Coord{}

// C is a convenience function to create a Coord.
func C(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the sum of two coordinates (vector addition).
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Polar returns the offset of the given length in the direction of rotation.
// Rotation is measured clockwise from the positive Y axis, so a rotation of
// zero points straight up.
func Polar(rotation, length float64) Coord {
	return Coord{X: math.Sin(rotation) * length, Y: math.Cos(rotation) * length}
}

// Pixel is a position on a square surface, in device pixels.
// The origin is the top-left corner and Y increases downward.
type Pixel struct {
	X, Y float64
}

// Mapper converts between logical coordinates and pixels on a square surface
// of Size pixels per side. The zero Mapper maps everything to zero.
type Mapper struct {
	Size float64
}

// Scale converts a logical length into pixels.
// No bounds are enforced; values outside [-1, 1] land off the surface.
func (m Mapper) Scale(v float64) float64 {
	return v * m.Size / 2
}

// Place converts a single logical component into a pixel component.
func (m Mapper) Place(v float64) float64 {
	return m.Size/2 + m.Scale(v)
}

// Calibrate converts a logical coordinate into a pixel position.
// The Y axis is flipped so that larger logical Y values appear higher on the
// surface.
func (m Mapper) Calibrate(c Coord) Pixel {
	return Pixel{X: m.Place(c.X), Y: m.Place(-c.Y)}
}

// Uncalibrate converts a pixel position back into a logical coordinate.
// It is the inverse of Calibrate for any Mapper with a positive Size.
func (m Mapper) Uncalibrate(p Pixel) Coord {
	half := m.Size / 2
	return Coord{X: (p.X - half) / half, Y: -(p.Y - half) / half}
}
