package game

import (
	"fmt"

	"github.com/mkarpushin/twinstep/internal/core"
)

// LayoutError reports an invalid level layout at build time, before any
// session state is touched.
type LayoutError struct {
	Code    string
	Message string
}

func (e LayoutError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Layout error codes.
const (
	CodeEmptyLayout    = "EMPTY_LAYOUT"
	CodeOddSplit       = "ODD_SPLIT"
	CodeMissingStart   = "MISSING_START"
	CodeDuplicateStart = "DUPLICATE_START"
	CodeStartHalf      = "START_HALF"
)

// Grid is the boolean occupancy matrix for one level. Cells are stored in
// row-major order (index = y*W + x) with y increasing upward. Immutable
// after construction.
type Grid struct {
	W, H  int
	cells []bool
}

// InBounds returns true if the coordinate is within the grid rectangle.
func (g *Grid) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Occupied reports whether the cell is part of the level.
// Out-of-bounds coordinates are unoccupied.
func (g *Grid) Occupied(c core.Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells[c.Y*g.W+c.X]
}

// OccupiedCoords returns all occupied cells, ordered by row then column.
func (g *Grid) OccupiedCoords() []core.Coord {
	coords := make([]core.Coord, 0, len(g.cells))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.cells[y*g.W+x] {
				coords = append(coords, core.C(x, y))
			}
		}
	}
	return coords
}

// Board is the built, immutable form of a level: the occupancy grid plus
// the start coordinates and hazard markers extracted from the layout.
type Board struct {
	Grid    *Grid
	StartA  core.Coord
	StartB  core.Coord
	Hazards []core.Coord
}

// BuildBoard scans a definition into a Board. Source row 0 (top) maps to
// grid y = height-1, so y increases upward. Fails with a LayoutError when
// the layout is empty, the split dimension is odd, or the start markers are
// missing, duplicated, or land in the same half.
func BuildBoard(def Definition) (*Board, error) {
	w, h := def.Size()
	if w == 0 || h == 0 {
		return nil, LayoutError{Code: CodeEmptyLayout, Message: "level has zero width or height"}
	}

	splitDim := w
	if def.Split == core.AxisY {
		splitDim = h
	}
	if splitDim%2 != 0 {
		return nil, LayoutError{
			Code:    CodeOddSplit,
			Message: fmt.Sprintf("split dimension %s=%d must be even", def.Split, splitDim),
		}
	}

	grid := &Grid{W: w, H: h, cells: make([]bool, w*h)}
	board := &Board{Grid: grid}
	var haveA, haveB bool

	for r, row := range def.Rows {
		y := h - 1 - r
		for c := 0; c < len(row); c++ {
			ch := row[c]
			if ch == cellVoid {
				continue
			}
			pos := core.C(c, y)
			grid.cells[y*w+c] = true

			switch ch {
			case cellStartA:
				if haveA {
					return nil, LayoutError{Code: CodeDuplicateStart, Message: "more than one '1' start marker"}
				}
				board.StartA = pos
				haveA = true
			case cellStartB:
				if haveB {
					return nil, LayoutError{Code: CodeDuplicateStart, Message: "more than one '2' start marker"}
				}
				board.StartB = pos
				haveB = true
			case cellHazard:
				board.Hazards = append(board.Hazards, pos)
			}
		}
	}

	if !haveA || !haveB {
		return nil, LayoutError{Code: CodeMissingStart, Message: "layout needs both '1' and '2' start markers"}
	}

	// Both starts in the same half would leave one half empty of a player.
	mid := splitDim / 2
	if (board.StartA.On(def.Split) < mid) == (board.StartB.On(def.Split) < mid) {
		return nil, LayoutError{
			Code:    CodeStartHalf,
			Message: fmt.Sprintf("start markers share the same %s half", def.Split),
		}
	}

	return board, nil
}
