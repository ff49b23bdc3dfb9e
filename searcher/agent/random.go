package agent

import (
	"fmt"
	"jump61/experiments/metrics"
	"jump61/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board, side game.Side) (game.Move, metrics.SearchMetric, error) {
	return sample(board, side, a.rng)
}

func sample(board *game.Board, side game.Side, rng *rand.Rand) (game.Move, metrics.SearchMetric, error) {
	if !board.IsSideToMove(side) {
		return game.Move{}, metrics.SearchMetric{}, &game.GameError{Reason: fmt.Sprintf("%s is not to move", side)}
	}
	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, &game.GameError{Reason: fmt.Sprintf("no legal moves for %s", side)}
	}
	return game.MoveAt(board, moves[rng.Intn(len(moves))]), metrics.SearchMetric{}, nil
}
