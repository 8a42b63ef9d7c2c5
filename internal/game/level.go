// Package game implements the twinstep logic core: level layouts, the
// occupancy board, the bounded wrap-search movement algorithm, and the
// level-session state machine. It has no dependencies outside internal/core.
package game

import "github.com/mkarpushin/twinstep/internal/core"

// Layout characters:
//
//	'.' = not part of the level
//	'0' = plain valid cell
//	'1' = valid cell, character A start
//	'2' = valid cell, character B start
//	'X' = valid cell with a hazard marker (cosmetic)
const (
	cellVoid   = '.'
	cellPlain  = '0'
	cellStartA = '1'
	cellStartB = '2'
	cellHazard = 'X'
)

// Definition describes one puzzle layout. Rows are ordered top to bottom;
// the board build flips them so that y increases upward. Split names the
// axis along which the grid is partitioned into the two characters' halves,
// and Win names the directional command that closes the final gap.
type Definition struct {
	ID    string
	Name  string
	Rows  []string
	Split core.Axis
	Win   core.Command
}

// Size returns the layout's width (max row length) and height (row count).
func (d Definition) Size() (w, h int) {
	h = len(d.Rows)
	for _, row := range d.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w, h
}
