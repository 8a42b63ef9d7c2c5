package core

// Event is a notification produced by the session for the presentation
// layer. The engine only emits data; the outer loop owns rendering, sound,
// and persistence.
type Event interface {
	event()
}

// LevelLoaded is emitted after a level's board has been rebuilt.
type LevelLoaded struct {
	Index    int
	ID       string
	Width    int
	Height   int
	Occupied []Coord
	Hazards  []Coord
	StartA   Coord
	StartB   Coord
}

// PositionsChanged is emitted after a movement command has been applied.
type PositionsChanged struct {
	A, B    Coord
	Wrapped bool
}

// WinTriggered is emitted when the closing move ends the level.
// Moves is the counter value at the time of the trigger; the triggering
// command itself is not counted.
type WinTriggered struct {
	Moves int
}

// LevelAdvanced is emitted when the session moves on to the next level.
type LevelAdvanced struct {
	NewIndex int
}

func (LevelLoaded) event()      {}
func (PositionsChanged) event() {}
func (WinTriggered) event()     {}
func (LevelAdvanced) event()    {}
