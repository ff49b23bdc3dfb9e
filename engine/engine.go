package engine

import (
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/meta"
)

const MaxMoves = meta.MAX_MOVES

type Engine interface {
	// Run starts a game till there's a winner or a max number of moves is reached
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
