package game

import "math"

// Side identifies the owner of a square. Red moves first on a new board.
type Side uint8

const (
	None Side = iota
	Red
	Blue
)

// WinningValue is the evaluation of a board won by Red (negated for Blue).
const WinningValue = math.MaxInt32

// Evaluates a board to a score where positive values favour Red and
// negative values favour Blue.
type Evaluate func(*Board) int

// Opponent returns the other player, or None for None.
func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return None
	}
}

// IsPlayer reports whether s is Red or Blue.
func (s Side) IsPlayer() bool {
	return s == Red || s == Blue
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// Glyph is the single character used for s in board dumps.
func (s Side) Glyph() byte {
	switch s {
	case Red:
		return 'r'
	case Blue:
		return 'b'
	default:
		return '-'
	}
}

// ParseSide accepts the names returned by String.
func ParseSide(name string) (Side, bool) {
	switch name {
	case "red", "r":
		return Red, true
	case "blue", "b":
		return Blue, true
	}
	return None, false
}
