package agent

import (
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/searcher"

	"golang.org/x/exp/rand"
)

type evaluationAgent struct {
	minimax *searcher.Minimax
	rng     *rand.Rand
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation. seed makes its
// tie-breaks reproducible.
func NewEvaluationAgent(minimax *searcher.Minimax, seed uint64) Agent {
	return &evaluationAgent{minimax: minimax, rng: rand.New(rand.NewSource(seed))}
}

func (a *evaluationAgent) FindMove(board *game.Board, side game.Side) (game.Move, metrics.SearchMetric, error) {
	result, err := a.minimax.Search(board, side, a.rng.Uint64())
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return game.MoveAt(board, result.Index), result.Metric, nil
}
