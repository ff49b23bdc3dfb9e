package game

// Firing records one overflow: the square, the spots it held and how many
// neighbours received a spot.
type Firing struct {
	Index  int
	Spots  int
	Fanout int
}

// Cascade summarizes the overflows triggered by one move.
type Cascade struct {
	Fired     []Firing
	Won       bool
	Discarded int // queued squares dropped once the game was won
}

// Delta is the change in TotalSpots caused by the firings. Each firing
// leaves one spot behind and hands one to every neighbour.
func (c Cascade) Delta() int {
	delta := 0
	for _, f := range c.Fired {
		delta += f.Fanout - (f.Spots - 1)
	}
	return delta
}

// jump resolves overflows starting at square start in FIFO order. It stops
// as soon as one side owns the whole board.
func (b *Board) jump(start int) Cascade {
	var report Cascade
	queue := []int{start}
	for len(queue) > 0 {
		if b.Winner() != None {
			report.Discarded = len(queue)
			break
		}
		n := queue[0]
		queue = queue[1:]

		cell := b.cells[n]
		neighbors := Neighbors(n, b.size)
		if cell.spots < len(neighbors) {
			continue
		}

		b.setCell(n, newCell(cell.side, 1))
		for _, m := range neighbors {
			b.setCell(m, newCell(cell.side, b.cells[m].spots+1))
		}
		report.Fired = append(report.Fired, Firing{Index: n, Spots: cell.spots, Fanout: len(neighbors)})
		queue = append(queue, neighbors...)
	}
	report.Won = b.Winner() != None
	return report
}
