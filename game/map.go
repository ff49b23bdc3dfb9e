package game

// Position classifies a square by how many neighbours it has.
type Position int

const (
	Interior Position = iota // 4 neighbours
	Edge                     // 3 neighbours
	Corner                   // 2 neighbours
)

func (p Position) String() string {
	switch p {
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	default:
		return "interior"
	}
}

// Classify returns the position class of square n on a size x size board.
func Classify(n, size int) Position {
	r, c := n/size, n%size
	onRowBorder := r == 0 || r == size-1
	onColBorder := c == 0 || c == size-1
	switch {
	case onRowBorder && onColBorder:
		return Corner
	case onRowBorder || onColBorder:
		return Edge
	default:
		return Interior
	}
}

// Neighbors returns the orthogonal neighbours of square n in ascending order.
func Neighbors(n, size int) []int {
	r, c := n/size, n%size
	out := make([]int, 0, 4)
	if r > 0 {
		out = append(out, n-size)
	}
	if c > 0 {
		out = append(out, n-1)
	}
	if c < size-1 {
		out = append(out, n+1)
	}
	if r < size-1 {
		out = append(out, n+size)
	}
	return out
}

// NeighborCount returns len(Neighbors(n, size)) without allocating.
func NeighborCount(n, size int) int {
	r, c := n/size, n%size
	count := 0
	if r > 0 {
		count++
	}
	if c > 0 {
		count++
	}
	if c < size-1 {
		count++
	}
	if r < size-1 {
		count++
	}
	return count
}

// Capacity is the spot count at which square n overflows.
func Capacity(n, size int) int {
	return NeighborCount(n, size)
}
