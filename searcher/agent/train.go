package agent

import (
	"fmt"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	minimax     *searcher.Minimax
	exploration float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play that plays a uniformly random legal move with
// probability exploration and the searched move otherwise.
func NewTrainingAgent(minimax *searcher.Minimax, exploration float64, seed uint64) Agent {
	if exploration < 0 || exploration > 1 {
		panic(fmt.Sprintf("exploration must be in [0, 1], got %v", exploration))
	}
	return &trainingAgent{minimax: minimax, exploration: exploration, rng: rand.New(rand.NewSource(seed))}
}

func (a *trainingAgent) FindMove(board *game.Board, side game.Side) (game.Move, metrics.SearchMetric, error) {
	if a.rng.Float64() < a.exploration {
		return sample(board, side, a.rng)
	}
	result, err := a.minimax.Search(board, side, a.rng.Uint64())
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return game.MoveAt(board, result.Index), result.Metric, nil
}
