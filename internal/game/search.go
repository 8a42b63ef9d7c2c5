package game

import "github.com/mkarpushin/twinstep/internal/core"

// NextOccupied finds the next occupied cell from start along the given axis
// and direction, wrapping at the span's edges. The search is bounded to the
// span's length, so a half with no occupied cell degrades to a no-op rather
// than looping: in that case start is returned unchanged. The span restricts
// the search to the moving character's own half; the search never crosses
// into the other half.
func NextOccupied(g *Grid, start core.Coord, axis core.Axis, dir int, span core.Span) core.Coord {
	pos := start
	for i := 0; i < span.Len(); i++ {
		pos = pos.With(axis, span.Wrap(pos.On(axis)+dir))
		if g.Occupied(pos) {
			return pos
		}
	}
	return start
}
