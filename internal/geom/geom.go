// Package geom provides the 2D value types used by the input state.
//
// Coordinates are logical (DPI-independent) units with the origin in the
// top left corner and axes extending right and down.
package geom

import (
	"fmt"
	"math"
)

// Position is a point in logical units.
type Position struct {
	X, Y float64
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Add returns the point p+q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the straight-line distance between p and q.
func (p Position) Distance(q Position) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ToPhysical converts p to physical pixels using the given DPI factor.
func (p Position) ToPhysical(factor float64) Position {
	return Position{X: p.X * factor, Y: p.Y * factor}
}

// PositionFromPhysical converts a physical pixel position to logical units.
// A non-positive factor is treated as 1.
func PositionFromPhysical(p Position, factor float64) Position {
	if factor <= 0 {
		return p
	}
	return Position{X: p.X / factor, Y: p.Y / factor}
}

// String returns "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Size is a width and height in logical units.
type Size struct {
	Width, Height float64
}

// ToPhysical converts s to physical pixels using the given DPI factor.
func (s Size) ToPhysical(factor float64) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// SizeFromPhysical converts a physical pixel size to logical units.
// A non-positive factor is treated as 1.
func SizeFromPhysical(s Size, factor float64) Size {
	if factor <= 0 {
		return s
	}
	return Size{Width: s.Width / factor, Height: s.Height / factor}
}

// String returns "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}
