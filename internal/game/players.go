package game

import "github.com/mkarpushin/twinstep/internal/core"

// Pair holds both characters' grid coordinates and their movement bounds.
// A move applies one wrap search per character with opposite directions on
// the commanded axis, then commits both results atomically.
type Pair struct {
	A, B             core.Coord
	BoundsA, BoundsB core.Bounds

	split core.Axis
	grid  *Grid
}

// Move is the result of applying one directional command.
type Move struct {
	A, B    core.Coord
	Wrapped bool
}

// NewPair derives the per-character bounds from the board and split axis:
// the split axis is partitioned into two equal inclusive halves, the other
// axis is shared in full. Each character owns the half containing its start.
func NewPair(board *Board, split core.Axis) *Pair {
	g := board.Grid

	full := core.Bounds{
		X: core.Span{Min: 0, Max: g.W - 1},
		Y: core.Span{Min: 0, Max: g.H - 1},
	}

	dim := g.W
	if split == core.AxisY {
		dim = g.H
	}
	low := core.Span{Min: 0, Max: dim/2 - 1}
	high := core.Span{Min: dim / 2, Max: dim - 1}

	boundsFor := func(start core.Coord) core.Bounds {
		b := full
		if low.Contains(start.On(split)) {
			if split == core.AxisX {
				b.X = low
			} else {
				b.Y = low
			}
		} else {
			if split == core.AxisX {
				b.X = high
			} else {
				b.Y = high
			}
		}
		return b
	}

	return &Pair{
		A:       board.StartA,
		B:       board.StartB,
		BoundsA: boundsFor(board.StartA),
		BoundsB: boundsFor(board.StartB),
		split:   split,
		grid:    g,
	}
}

// Apply runs one mirrored move: character A steps in the command's natural
// direction, character B in the opposite, each searching only inside its own
// bounds on the commanded axis. Positions only ever land on occupied cells;
// a character with no reachable cell stays put.
func (p *Pair) Apply(cmd core.Command) Move {
	axis := cmd.Axis()
	dir := cmd.Dir()

	nextA := NextOccupied(p.grid, p.A, axis, dir, p.BoundsA.On(axis))
	nextB := NextOccupied(p.grid, p.B, axis, -dir, p.BoundsB.On(axis))

	wrapped := stepWrapped(p.A.On(axis), nextA.On(axis), dir) ||
		stepWrapped(p.B.On(axis), nextB.On(axis), -dir)

	p.A = nextA
	p.B = nextB

	return Move{A: p.A, B: p.B, Wrapped: wrapped}
}

// stepWrapped reports whether a committed move ran against its direction,
// which only happens when the search wrapped around the half's edge.
func stepWrapped(from, to, dir int) bool {
	if to == from {
		return false
	}
	return (dir > 0 && to < from) || (dir < 0 && to > from)
}

// AdjacentAcrossSplit reports whether the two characters sit on neighboring
// cells across the split boundary: one apart on the split axis and equal on
// the other. The inward command issued in this position ends the level
// instead of moving.
func (p *Pair) AdjacentAcrossSplit() bool {
	low, high := p.A, p.B
	if low.On(p.split) > high.On(p.split) {
		low, high = high, low
	}

	other := core.AxisY
	if p.split == core.AxisY {
		other = core.AxisX
	}

	return low.On(p.split)+1 == high.On(p.split) && low.On(other) == high.On(other)
}
