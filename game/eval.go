package game

const (
	cellWeight    = 1.0
	edgeWeight    = 0.5
	spotWeight    = 0.05
	clusterWeight = 1.5
)

// EvaluatePosition scores b from Red's point of view: positive favours Red,
// negative favours Blue. A won board scores +/-WinningValue.
func EvaluatePosition(b *Board) int {
	switch b.Winner() {
	case Red:
		return WinningValue
	case Blue:
		return -WinningValue
	}
	red := b.sideScore(Red)
	blue := b.sideScore(Blue)
	return int(red - blue)
}

func (b *Board) sideScore(side Side) float64 {
	var cells, edge, spots, cluster float64
	for n, cell := range b.cells {
		if cell.side != side {
			continue
		}
		cells++
		spots += float64(cell.spots)

		// corners count double
		switch Classify(n, b.size) {
		case Corner:
			edge += 2
		case Edge:
			edge++
		}

		for _, m := range Neighbors(n, b.size) {
			if b.cells[m].side == side {
				cluster++
			}
		}
	}
	return cellWeight*cells + edgeWeight*edge + spotWeight*spots + clusterWeight*cluster
}
