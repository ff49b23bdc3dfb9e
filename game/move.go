package game

import "fmt"

// Cell is the immutable contents of one square.
type Cell struct {
	side  Side
	spots int
}

func newCell(side Side, spots int) Cell {
	if spots <= 0 {
		return Cell{}
	}
	return Cell{side: side, spots: spots}
}

func (c Cell) Side() Side {
	return c.side
}

func (c Cell) Spots() int {
	return c.spots
}

// IsEmpty reports whether nobody owns the square.
func (c Cell) IsEmpty() bool {
	return c.spots == 0
}

func (c Cell) String() string {
	return fmt.Sprintf("%d%c", c.spots, c.side.Glyph())
}

// Move is a square chosen by a player, in both addressing schemes.
type Move struct {
	Index int
	Row   int
	Col   int
}

// MoveAt builds the Move for square n of b.
func MoveAt(b *Board, n int) Move {
	return Move{Index: n, Row: b.Row(n), Col: b.Col(n)}
}

func (m Move) String() string {
	return fmt.Sprintf("%d %d", m.Row, m.Col)
}
