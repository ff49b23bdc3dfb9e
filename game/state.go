package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Notifier is called after every committed change to a board. It must not
// modify the board.
type Notifier func(*Board)

func nop(*Board) {}

type BoardOption func(b *Board)

func WithNotifier(notify Notifier) BoardOption {
	return func(b *Board) {
		if notify != nil {
			b.notifier = notify
		}
	}
}

// Board is a size x size jump61 position. Squares are numbered row-major
// from 0; rows and columns are numbered from 1.
type Board struct {
	size     int
	cells    []Cell
	counts   [3]int // squares per Side
	spots    int
	turn     Side
	history  *history // nil until the first move on boards made by Play
	notifier Notifier
	cascade  Cascade
}

// New returns an empty board with Red to move.
func New(size int, options ...BoardOption) (*Board, error) {
	if size < 2 {
		return nil, ErrBoardSize
	}
	b := &Board{notifier: nop}
	for _, option := range options {
		option(b)
	}
	b.init(size)
	return b, nil
}

// NewFrom returns a copy of board0 with a cleared undo history and no notifier.
func NewFrom(board0 *Board) *Board {
	return board0.Clone()
}

func (b *Board) init(size int) {
	b.size = size
	b.cells = make([]Cell, size*size)
	b.counts = [3]int{}
	b.counts[None] = size * size
	b.spots = 0
	b.turn = Red
	b.cascade = Cascade{}
	b.resetHistory()
}

// Clone returns an independent copy with the same squares and side to move,
// an empty history and no notifier.
func (b *Board) Clone() *Board {
	c := b.fork()
	c.history = newHistory(c.snapshot())
	return c
}

// fork copies the position only.
func (b *Board) fork() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:     b.size,
		cells:    cells,
		counts:   b.counts,
		spots:    b.spots,
		turn:     b.turn,
		notifier: nop,
	}
}

// Clear reinitializes b to an empty size x size board, clearing the history.
func (b *Board) Clear(size int) error {
	if size < 2 {
		return ErrBoardSize
	}
	b.init(size)
	b.announce()
	return nil
}

// CopyFrom replaces the contents of b with those of other and clears the history.
func (b *Board) CopyFrom(other *Board) {
	b.size = other.size
	b.cells = make([]Cell, len(other.cells))
	copy(b.cells, other.cells)
	b.counts = other.counts
	b.spots = other.spots
	b.turn = other.turn
	b.cascade = Cascade{}
	b.resetHistory()
	b.announce()
}

func (b *Board) resetHistory() {
	if b.history == nil {
		b.history = newHistory(b.snapshot())
		return
	}
	b.history.reset(b.snapshot())
}

func (b *Board) Size() int {
	return b.size
}

// NumMoves is the number of moves that Undo can take back.
func (b *Board) NumMoves() int {
	if b.history == nil {
		return 0
	}
	return b.history.moves()
}

func (b *Board) Row(n int) int {
	return n/b.size + 1
}

func (b *Board) Col(n int) int {
	return n%b.size + 1
}

// Index returns the square number of row r, column c.
func (b *Board) Index(r, c int) int {
	return (r-1)*b.size + (c - 1)
}

func (b *Board) Exists(r, c int) bool {
	return 1 <= r && r <= b.size && 1 <= c && c <= b.size
}

func (b *Board) ExistsIndex(n int) bool {
	return 0 <= n && n < b.size*b.size
}

// Get returns the square at row r, column c.
func (b *Board) Get(r, c int) (Cell, error) {
	if !b.Exists(r, c) {
		return Cell{}, &IndexError{Row: r, Col: c, Index: -1, Size: b.size}
	}
	return b.cells[b.Index(r, c)], nil
}

// GetIndex returns square n.
func (b *Board) GetIndex(n int) (Cell, error) {
	if !b.ExistsIndex(n) {
		return Cell{}, &IndexError{Row: -1, Col: -1, Index: n, Size: b.size}
	}
	return b.cells[n], nil
}

// TotalSpots is the number of spots on the board.
func (b *Board) TotalSpots() int {
	return b.spots
}

// CellCount is the number of squares owned by side.
func (b *Board) CellCount(side Side) int {
	if side > Blue {
		return 0
	}
	return b.counts[side]
}

// SideToMove is the player whose turn it is. On a won board it is the loser.
func (b *Board) SideToMove() Side {
	return b.turn
}

func (b *Board) IsSideToMove(side Side) bool {
	return side == b.turn
}

// IsLegalMove reports whether side may add a spot to square n, ignoring
// whose turn it is.
func (b *Board) IsLegalMove(side Side, n int) bool {
	if !side.IsPlayer() || !b.ExistsIndex(n) || b.Winner() != None {
		return false
	}
	owner := b.cells[n].side
	return owner == None || owner == side
}

// LegalMoves returns the squares side may add a spot to, in ascending order.
func (b *Board) LegalMoves(side Side) []int {
	if !side.IsPlayer() || b.Winner() != None {
		return nil
	}
	moves := make([]int, 0, len(b.cells))
	for n, cell := range b.cells {
		if cell.side == None || cell.side == side {
			moves = append(moves, n)
		}
	}
	return moves
}

// Winner returns the side that owns every square, or None.
func (b *Board) Winner() Side {
	total := len(b.cells)
	switch total {
	case b.counts[Red]:
		return Red
	case b.counts[Blue]:
		return Blue
	}
	return None
}

func (b *Board) NeighborCount(n int) int {
	return NeighborCount(n, b.size)
}

func (b *Board) NeighborIndices(n int) []int {
	return Neighbors(n, b.size)
}

// ApplyMove adds a spot for side to square n and resolves the resulting
// cascade. A rejected move returns an *IllegalMoveError or *IndexError and
// leaves the board and its history untouched.
func (b *Board) ApplyMove(side Side, n int) error {
	if err := b.checkMove(side, n); err != nil {
		return err
	}
	if b.history == nil {
		b.history = newHistory(b.snapshot())
	}
	b.addSpot(side, n)
	b.history.commit(b.snapshot())
	b.announce()
	return nil
}

// ApplyMoveAt is ApplyMove addressed by row and column.
func (b *Board) ApplyMoveAt(side Side, r, c int) error {
	if !b.Exists(r, c) {
		return &IndexError{Row: r, Col: c, Index: -1, Size: b.size}
	}
	return b.ApplyMove(side, b.Index(r, c))
}

// Play returns the position reached by side adding a spot to square n. The
// receiver is not modified and the result carries no history or notifier.
func (b *Board) Play(side Side, n int) (*Board, error) {
	if err := b.checkMove(side, n); err != nil {
		return nil, err
	}
	child := b.fork()
	child.addSpot(side, n)
	return child, nil
}

func (b *Board) checkMove(side Side, n int) error {
	if !b.ExistsIndex(n) {
		return &IndexError{Row: -1, Col: -1, Index: n, Size: b.size}
	}
	if !side.IsPlayer() {
		return &IllegalMoveError{Side: side, Index: n, Reason: "not a player"}
	}
	if w := b.Winner(); w != None {
		return &IllegalMoveError{Side: side, Index: n, Reason: fmt.Sprintf("game already won by %s", w)}
	}
	if !b.IsSideToMove(side) {
		return &IllegalMoveError{Side: side, Index: n, Reason: fmt.Sprintf("%s to move", b.turn)}
	}
	if owner := b.cells[n].side; owner != None && owner != side {
		return &IllegalMoveError{Side: side, Index: n, Reason: fmt.Sprintf("square owned by %s", owner)}
	}
	return nil
}

// addSpot assumes checkMove(side, n) passed.
func (b *Board) addSpot(side Side, n int) {
	spots := b.cells[n].spots + 1
	if b.cells[n].IsEmpty() {
		spots = 2
	}
	b.setCell(n, newCell(side, spots))
	b.cascade = b.jump(n)
	b.turn = side.Opponent()
}

// LastCascade describes the overflows caused by the latest move on b.
func (b *Board) LastCascade() Cascade {
	return b.cascade
}

// Undo takes back the latest move. It does nothing if there is no move to
// take back.
func (b *Board) Undo() {
	if b.history == nil {
		return
	}
	prev, ok := b.history.undo()
	if !ok {
		return
	}
	b.restore(prev)
	b.announce()
}

// Set puts spots spots of side on row r, column c without recording an undo
// step. Zero spots empties the square. The side to move is re-derived from
// the spot parity: (TotalSpots + Size) even means Red.
func (b *Board) Set(r, c, spots int, side Side) error {
	if !b.Exists(r, c) {
		return &IndexError{Row: r, Col: c, Index: -1, Size: b.size}
	}
	if spots < 0 || (spots > 0 && !side.IsPlayer()) {
		return fmt.Errorf("%w: %d spots for %s", ErrInvalidCell, spots, side)
	}
	b.setCell(b.Index(r, c), newCell(side, spots))
	b.turn = b.parityTurn()
	b.announce()
	return nil
}

func (b *Board) parityTurn() Side {
	if (b.spots+b.size)%2 == 0 {
		return Red
	}
	return Blue
}

func (b *Board) setCell(n int, cell Cell) {
	old := b.cells[n]
	b.counts[old.side]--
	b.counts[cell.side]++
	b.spots += cell.spots - old.spots
	b.cells[n] = cell
}

func (b *Board) snapshot() snapshot {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return snapshot{cells: cells, turn: b.turn}
}

func (b *Board) restore(s snapshot) {
	b.cells = make([]Cell, len(s.cells))
	b.counts = [3]int{}
	b.spots = 0
	for n, cell := range s.cells {
		b.cells[n] = cell
		b.counts[cell.side]++
		b.spots += cell.spots
	}
	b.turn = s.turn
	b.cascade = Cascade{}
}

func (b *Board) announce() {
	b.notifier(b)
}

// Equal reports whether b and other have the same size and squares.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for n, cell := range b.cells {
		if cell != other.cells[n] {
			return false
		}
	}
	return true
}

// Hash identifies the position, including the side to move.
func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.size))
	binary.Write(hasher, binary.LittleEndian, int64(b.turn))

	for _, cell := range b.cells {
		binary.Write(hasher, binary.LittleEndian, int64(cell.spots))
		binary.Write(hasher, binary.LittleEndian, int64(cell.side))
	}

	return hasher.Sum64()
}
