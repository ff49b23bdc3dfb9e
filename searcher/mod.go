package searcher

import (
	"jump61/experiments/metrics"
	"jump61/game"
	"math"
)

// Window bounds. Evaluations stay within +/-game.WinningValue.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

type Result struct {
	Index  int // square chosen for the side to move
	Score  int // minimax value of that square, from Red's point of view
	Metric metrics.SearchMetric
}

// better reports whether score improves on best for side. Red maximizes.
func better(side game.Side, score, best int) bool {
	if side == game.Red {
		return score > best
	}
	return score < best
}

// worst is the starting value of a search for side.
func worst(side game.Side) int {
	if side == game.Red {
		return NegInf
	}
	return PosInf
}
