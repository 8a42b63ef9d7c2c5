package game

import (
	"testing"

	"github.com/mkarpushin/twinstep/internal/core"
)

func testCatalog() []Definition {
	return []Definition{
		{
			ID:    "corridor",
			Name:  "Corridor",
			Rows:  []string{"100002"},
			Split: core.AxisX,
			Win:   core.CmdMoveRight,
		},
		{
			ID:    "long-corridor",
			Name:  "Long Corridor",
			Rows:  []string{"10000002"},
			Split: core.AxisX,
			Win:   core.CmdMoveRight,
		},
		{
			ID:    "shaft",
			Name:  "Shaft",
			Rows:  []string{"2", "0", "0", "1"},
			Split: core.AxisY,
			Win:   core.CmdMoveUp,
		},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(testCatalog())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if _, err := s.Load(0); err != nil {
		t.Fatalf("Load(0): %v", err)
	}
	return s
}

func mustApply(t *testing.T, s *Session, cmd core.Command) []core.Event {
	t.Helper()
	events, err := s.Apply(cmd)
	if err != nil {
		t.Fatalf("Apply(%v): %v", cmd, err)
	}
	return events
}

func TestSessionLoadEmitsLevelLoaded(t *testing.T) {
	s := newTestSession(t)

	events, err := s.Load(0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %v, want one LevelLoaded", events)
	}

	loaded, ok := events[0].(core.LevelLoaded)
	if !ok {
		t.Fatalf("event = %T, want LevelLoaded", events[0])
	}
	if loaded.Index != 0 || loaded.ID != "corridor" {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.Width != 6 || loaded.Height != 1 {
		t.Errorf("size = %dx%d, want 6x1", loaded.Width, loaded.Height)
	}
	if loaded.StartA != core.C(0, 0) || loaded.StartB != core.C(5, 0) {
		t.Errorf("starts = %v/%v", loaded.StartA, loaded.StartB)
	}
	if len(loaded.Occupied) != 6 {
		t.Errorf("occupied = %d cells, want 6", len(loaded.Occupied))
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing", s.State())
	}
}

func TestSessionLoadWrapsIndex(t *testing.T) {
	s := newTestSession(t)

	if _, err := s.Load(4); err != nil {
		t.Fatalf("Load(4): %v", err)
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1 (4 mod 3)", s.Index())
	}
}

func TestSessionCountsMoves(t *testing.T) {
	s := newTestSession(t)

	mustApply(t, s, core.CmdMoveRight)
	mustApply(t, s, core.CmdMoveLeft)
	if s.Moves() != 2 {
		t.Errorf("moves = %d, want 2", s.Moves())
	}
}

func TestSessionMoveEmitsPositions(t *testing.T) {
	s := newTestSession(t)

	events := mustApply(t, s, core.CmdMoveRight)
	if len(events) != 1 {
		t.Fatalf("events = %v", events)
	}
	pos, ok := events[0].(core.PositionsChanged)
	if !ok {
		t.Fatalf("event = %T, want PositionsChanged", events[0])
	}
	if pos.A != core.C(1, 0) || pos.B != core.C(4, 0) {
		t.Errorf("positions = %v/%v, want (1,0)/(4,0)", pos.A, pos.B)
	}
}

func TestSessionWinFiresExactlyAtAdjacency(t *testing.T) {
	// Width 6, starts x=0 and x=5: adjacency after two closing moves, the
	// third inward command triggers the win with the counter at 2.
	s := newTestSession(t)

	mustApply(t, s, core.CmdMoveRight)
	mustApply(t, s, core.CmdMoveRight)
	if s.State() != StatePlaying {
		t.Fatalf("state = %v before the closing command", s.State())
	}

	events := mustApply(t, s, core.CmdMoveRight)
	if len(events) != 1 {
		t.Fatalf("events = %v", events)
	}
	win, ok := events[0].(core.WinTriggered)
	if !ok {
		t.Fatalf("event = %T, want WinTriggered", events[0])
	}
	if win.Moves != 2 {
		t.Errorf("moves at win = %d, want 2", win.Moves)
	}
	if s.State() != StateWinning {
		t.Errorf("state = %v, want winning", s.State())
	}
	// The triggering command neither moved the pair nor counted.
	if s.Moves() != 2 {
		t.Errorf("counter after win = %d, want 2", s.Moves())
	}
	if s.Pair().A != core.C(2, 0) || s.Pair().B != core.C(3, 0) {
		t.Errorf("pair moved on the win trigger: %v/%v", s.Pair().A, s.Pair().B)
	}
}

func TestSessionWinOnWiderLevel(t *testing.T) {
	// Width 8: three closing moves reach adjacency, the fourth wins.
	s := newTestSession(t)
	if _, err := s.Load(1); err != nil {
		t.Fatalf("Load(1): %v", err)
	}

	for i := 0; i < 3; i++ {
		mustApply(t, s, core.CmdMoveRight)
	}
	events := mustApply(t, s, core.CmdMoveRight)
	win, ok := events[0].(core.WinTriggered)
	if !ok {
		t.Fatalf("event = %T, want WinTriggered", events[0])
	}
	if win.Moves != 3 {
		t.Errorf("moves at win = %d, want 3", win.Moves)
	}
}

func TestSessionOutwardCommandNeverWins(t *testing.T) {
	s := newTestSession(t)

	mustApply(t, s, core.CmdMoveRight)
	mustApply(t, s, core.CmdMoveRight)
	// Adjacent now; the outward command is a normal (wrapping) move.
	events := mustApply(t, s, core.CmdMoveLeft)
	if _, ok := events[0].(core.PositionsChanged); !ok {
		t.Fatalf("event = %T, want PositionsChanged", events[0])
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing", s.State())
	}
}

func TestSessionVerticalWin(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.Load(2); err != nil {
		t.Fatalf("Load(2): %v", err)
	}

	mustApply(t, s, core.CmdMoveUp)
	events := mustApply(t, s, core.CmdMoveUp)
	win, ok := events[0].(core.WinTriggered)
	if !ok {
		t.Fatalf("event = %T, want WinTriggered", events[0])
	}
	if win.Moves != 1 {
		t.Errorf("moves at win = %d, want 1", win.Moves)
	}
}

func TestSessionAckAdvances(t *testing.T) {
	s := newTestSession(t)

	mustApply(t, s, core.CmdMoveRight)
	mustApply(t, s, core.CmdMoveRight)
	mustApply(t, s, core.CmdMoveRight) // win

	events := mustApply(t, s, core.CmdAckWin)
	if len(events) != 2 {
		t.Fatalf("events = %v, want LevelAdvanced + LevelLoaded", events)
	}
	adv, ok := events[0].(core.LevelAdvanced)
	if !ok || adv.NewIndex != 1 {
		t.Fatalf("first event = %+v, want LevelAdvanced{1}", events[0])
	}
	if _, ok := events[1].(core.LevelLoaded); !ok {
		t.Fatalf("second event = %T, want LevelLoaded", events[1])
	}
	if s.Moves() != 0 {
		t.Errorf("moves after advance = %d, want 0", s.Moves())
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing", s.State())
	}
}

func TestSessionAckIgnoredWhilePlaying(t *testing.T) {
	s := newTestSession(t)

	events := mustApply(t, s, core.CmdAckWin)
	if events != nil {
		t.Errorf("AckWin while playing should be ignored, got %v", events)
	}
	if s.Index() != 0 {
		t.Errorf("index = %d, want 0", s.Index())
	}
}

func TestSessionMovesIgnoredWhileWinning(t *testing.T) {
	s := newTestSession(t)

	mustApply(t, s, core.CmdMoveRight)
	mustApply(t, s, core.CmdMoveRight)
	mustApply(t, s, core.CmdMoveRight) // win

	events := mustApply(t, s, core.CmdMoveLeft)
	if events != nil {
		t.Errorf("movement while winning should be ignored, got %v", events)
	}
	if s.State() != StateWinning {
		t.Errorf("state = %v, want winning", s.State())
	}
}

func TestSessionDebugAdvance(t *testing.T) {
	s := newTestSession(t)

	// Accepted while playing, bypassing the win condition.
	events := mustApply(t, s, core.CmdAdvance)
	if len(events) != 2 {
		t.Fatalf("events = %v", events)
	}
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}

	// Also accepted while winning.
	if _, err := s.Load(0); err != nil {
		t.Fatal(err)
	}
	mustApply(t, s, core.CmdMoveRight)
	mustApply(t, s, core.CmdMoveRight)
	mustApply(t, s, core.CmdMoveRight) // win
	mustApply(t, s, core.CmdAdvance)
	if s.Index() != 1 || s.State() != StatePlaying {
		t.Errorf("index=%d state=%v after debug advance", s.Index(), s.State())
	}
}

func TestSessionAdvanceWrapsCatalog(t *testing.T) {
	s := newTestSession(t)

	mustApply(t, s, core.CmdAdvance)
	mustApply(t, s, core.CmdAdvance)
	mustApply(t, s, core.CmdAdvance)
	if s.Index() != 0 {
		t.Errorf("index = %d, want 0 after wrapping the catalog", s.Index())
	}
}

func TestSessionReloadIsDeterministic(t *testing.T) {
	s := newTestSession(t)

	mustApply(t, s, core.CmdMoveRight)
	first, err := s.Load(0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Load(0)
	if err != nil {
		t.Fatal(err)
	}

	a := first[0].(core.LevelLoaded)
	b := second[0].(core.LevelLoaded)
	if a.StartA != b.StartA || a.StartB != b.StartB || len(a.Occupied) != len(b.Occupied) {
		t.Errorf("reload differs: %+v vs %+v", a, b)
	}
	if s.Moves() != 0 {
		t.Errorf("moves after reload = %d, want 0", s.Moves())
	}
}

func TestSessionInputLock(t *testing.T) {
	s := newTestSession(t)
	s.SetInputLock(true)

	mustApply(t, s, core.CmdMoveRight)
	if s.State() != StateAnimating {
		t.Fatalf("state = %v, want animating", s.State())
	}

	// Movement rejected until the external acknowledgment.
	events := mustApply(t, s, core.CmdMoveRight)
	if events != nil {
		t.Errorf("movement while animating should be ignored, got %v", events)
	}

	s.AnimationDone()
	if s.State() != StatePlaying {
		t.Fatalf("state = %v after AnimationDone, want playing", s.State())
	}
	if events := mustApply(t, s, core.CmdMoveRight); len(events) != 1 {
		t.Errorf("movement after unlock should apply, got %v", events)
	}
}

func TestNewSessionEmptyCatalog(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Error("empty catalog should fail")
	}
}
