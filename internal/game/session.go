package game

import (
	"fmt"

	"github.com/mkarpushin/twinstep/internal/core"
)

// State is the session's position in the level lifecycle.
type State int

const (
	// StateLoading is transient: Load builds the board and moves straight
	// to StatePlaying.
	StateLoading State = iota
	// StatePlaying accepts directional commands.
	StatePlaying
	// StateAnimating rejects movement until AnimationDone, covering a
	// presentation-side transition. Entered only when input lock is on.
	StateAnimating
	// StateWinning suppresses movement until the win is acknowledged.
	StateWinning
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateAnimating:
		return "animating"
	case StateWinning:
		return "winning"
	default:
		return "unknown"
	}
}

// Session orchestrates level load, move counting, win-condition evaluation,
// and the level-advance transition. It is synchronous and single-threaded:
// each command is processed to completion before the next is accepted.
type Session struct {
	catalog []Definition

	index int
	moves int
	state State

	def   Definition
	board *Board
	pair  *Pair

	lockInput bool
}

// NewSession creates a session over an ordered level catalog. The catalog
// index wraps modulo its size. Call Load to enter the first level.
func NewSession(catalog []Definition) (*Session, error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("game: empty level catalog")
	}
	return &Session{catalog: catalog}, nil
}

// SetInputLock enables the animating sub-state: after each applied move the
// session rejects further movement until AnimationDone is called.
func (s *Session) SetInputLock(lock bool) {
	s.lockInput = lock
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Index returns the current level index.
func (s *Session) Index() int { return s.index }

// Moves returns the move counter for the current level.
func (s *Session) Moves() int { return s.moves }

// Definition returns the current level definition.
func (s *Session) Definition() Definition { return s.def }

// Board returns the current level's built board.
func (s *Session) Board() *Board { return s.board }

// Pair returns the current dual player state.
func (s *Session) Pair() *Pair { return s.pair }

// Load (re)builds the level at the given catalog index, wrapping modulo
// catalog size, resets the move counter, and transitions to playing.
// On a layout error the session state is left untouched.
func (s *Session) Load(index int) ([]core.Event, error) {
	index = ((index % len(s.catalog)) + len(s.catalog)) % len(s.catalog)
	def := s.catalog[index]

	board, err := BuildBoard(def)
	if err != nil {
		return nil, fmt.Errorf("game: level %d (%s): %w", index, def.ID, err)
	}

	s.index = index
	s.def = def
	s.board = board
	s.pair = NewPair(board, def.Split)
	s.moves = 0
	s.state = StatePlaying

	return []core.Event{s.loadedEvent()}, nil
}

func (s *Session) loadedEvent() core.LevelLoaded {
	return core.LevelLoaded{
		Index:    s.index,
		ID:       s.def.ID,
		Width:    s.board.Grid.W,
		Height:   s.board.Grid.H,
		Occupied: s.board.Grid.OccupiedCoords(),
		Hazards:  s.board.Hazards,
		StartA:   s.board.StartA,
		StartB:   s.board.StartB,
	}
}

// Apply processes one command and returns the events it produced. Movement
// is accepted only while playing; the debug advance works while playing or
// winning; the win acknowledgment only while winning. Everything else is
// silently ignored. The returned error is only non-nil when advancing to a
// level whose layout fails to build.
func (s *Session) Apply(cmd core.Command) ([]core.Event, error) {
	switch {
	case cmd.IsMove():
		if s.state != StatePlaying {
			return nil, nil
		}
		return s.applyMove(cmd), nil

	case cmd == core.CmdAdvance:
		if s.state != StatePlaying && s.state != StateWinning {
			return nil, nil
		}
		return s.advance()

	case cmd == core.CmdAckWin:
		if s.state != StateWinning {
			return nil, nil
		}
		return s.advance()
	}
	return nil, nil
}

// applyMove evaluates the win condition before moving: the inward command
// issued while the characters are adjacent across the split ends the level
// and neither moves nor counts. Any other accepted movement command counts,
// even when both searches degrade to no-ops.
func (s *Session) applyMove(cmd core.Command) []core.Event {
	if cmd == s.def.Win && s.pair.AdjacentAcrossSplit() {
		s.state = StateWinning
		return []core.Event{core.WinTriggered{Moves: s.moves}}
	}

	move := s.pair.Apply(cmd)
	s.moves++
	if s.lockInput {
		s.state = StateAnimating
	}

	return []core.Event{core.PositionsChanged{A: move.A, B: move.B, Wrapped: move.Wrapped}}
}

// advance loads the next catalog entry.
func (s *Session) advance() ([]core.Event, error) {
	next := (s.index + 1) % len(s.catalog)
	events, err := s.Load(next)
	if err != nil {
		return nil, err
	}
	return append([]core.Event{core.LevelAdvanced{NewIndex: next}}, events...), nil
}

// AnimationDone is the external acknowledgment that a presentation-side
// transition finished; it reopens movement input.
func (s *Session) AnimationDone() {
	if s.state == StateAnimating {
		s.state = StatePlaying
	}
}
