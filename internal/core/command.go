package core

// Command represents a semantic session input, abstracted from physical key
// presses. This allows the engine to work with high-level intents rather than
// raw input.
type Command int

const (
	CmdNone      Command = iota
	CmdMoveLeft          // A, Left arrow
	CmdMoveRight         // D, Right arrow
	CmdMoveUp            // W, Up arrow
	CmdMoveDown          // S, Down arrow
	CmdAdvance           // N - debug skip to the next level
	CmdAckWin            // external acknowledgment of a triggered win
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdMoveUp:
		return "MoveUp"
	case CmdMoveDown:
		return "MoveDown"
	case CmdAdvance:
		return "Advance"
	case CmdAckWin:
		return "AckWin"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the command is one of the four directional inputs.
func (c Command) IsMove() bool {
	switch c {
	case CmdMoveLeft, CmdMoveRight, CmdMoveUp, CmdMoveDown:
		return true
	}
	return false
}

// Axis returns the grid axis a directional command acts on.
// Non-movement commands report AxisX; callers must check IsMove first.
func (c Command) Axis() Axis {
	if c == CmdMoveUp || c == CmdMoveDown {
		return AxisY
	}
	return AxisX
}

// Dir returns the signed step of a directional command for the primary
// character, with y increasing upward. The mirrored character negates it.
func (c Command) Dir() int {
	switch c {
	case CmdMoveRight, CmdMoveUp:
		return 1
	case CmdMoveLeft, CmdMoveDown:
		return -1
	}
	return 0
}
