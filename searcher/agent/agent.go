package agent

import (
	"jump61/experiments/metrics"
	"jump61/game"
)

type Agent interface {
	// FindMove returns a move for side on board and performance metrics (if collected) from the search.
	// The board is not modified.
	FindMove(board *game.Board, side game.Side) (game.Move, metrics.SearchMetric, error)
}
