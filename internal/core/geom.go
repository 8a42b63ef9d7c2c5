// Package core provides fundamental types for the twinstep engine.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "fmt"

// Axis identifies one of the two grid axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// Coord is an integer grid coordinate. Y increases upward.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// On returns the coordinate's component on the given axis.
func (c Coord) On(a Axis) int {
	if a == AxisX {
		return c.X
	}
	return c.Y
}

// With returns a copy of the coordinate with the given axis component replaced.
func (c Coord) With(a Axis, v int) Coord {
	if a == AxisX {
		c.X = v
	} else {
		c.Y = v
	}
	return c
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Span is an inclusive integer range [Min, Max].
type Span struct {
	Min, Max int
}

// Len returns the number of values the span covers.
func (s Span) Len() int {
	return s.Max - s.Min + 1
}

// Contains reports whether v lies inside the span.
func (s Span) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Wrap folds v back into the span, treating the edges as cyclically adjacent.
// Only single-step overshoots are expected; larger ones fold repeatedly.
func (s Span) Wrap(v int) int {
	n := s.Len()
	for v > s.Max {
		v -= n
	}
	for v < s.Min {
		v += n
	}
	return v
}

// Bounds is an axis-aligned inclusive rectangle assigned to one character.
type Bounds struct {
	X, Y Span
}

// Contains reports whether the coordinate lies inside the bounds.
func (b Bounds) Contains(c Coord) bool {
	return b.X.Contains(c.X) && b.Y.Contains(c.Y)
}

// On returns the span on the given axis.
func (b Bounds) On(a Axis) Span {
	if a == AxisX {
		return b.X
	}
	return b.Y
}

// Anchored maps a grid coordinate to a world position centered at the origin:
// cell (0,0) of a w×h grid lands at (-(w-1)/2·spacing, -(h-1)/2·spacing).
func Anchored(pos Coord, w, h int, spacing float64) (float64, float64) {
	ax := (float64(pos.X) - float64(w-1)/2) * spacing
	ay := (float64(pos.Y) - float64(h-1)/2) * spacing
	return ax, ay
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
