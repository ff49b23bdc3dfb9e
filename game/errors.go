package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrOutOfRange  = errors.New("square out of range")
	ErrGame        = errors.New("game error")
	ErrBoardSize   = errors.New("board size must be at least 2")
	ErrInvalidCell = errors.New("invalid square contents")
)

// IllegalMoveError reports a move that violates ownership, turn order or a
// finished game. The board is unchanged when it is returned.
type IllegalMoveError struct {
	Side   Side
	Index  int
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move by %s at square %d: %s", e.Side, e.Index, e.Reason)
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

// IndexError reports coordinates outside the board. Index is -1 when the
// caller addressed the square by row and column.
type IndexError struct {
	Row   int
	Col   int
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("square %d out of range for %dx%d board", e.Index, e.Size, e.Size)
	}
	return fmt.Sprintf("square (%d, %d) out of range for %dx%d board", e.Row, e.Col, e.Size, e.Size)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfRange
}

// GameError reports a search requested on a position that has no move to find.
type GameError struct {
	Reason string
}

func (e *GameError) Error() string {
	return "game error: " + e.Reason
}

func (e *GameError) Is(target error) bool {
	return target == ErrGame
}
