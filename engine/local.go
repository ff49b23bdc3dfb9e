package engine

import (
	"fmt"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/searcher/agent"
	"jump61/utils"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// sides lists the players in agent order.
var sides = []game.Side{game.Red, game.Blue}

type Local struct {
	Board    *game.Board
	Agents   []agent.Agent // Red's agent first
	maxMoves int
}

// LocalEngine sets up a game on an empty size x size board between agents[0]
// playing Red and agents[1] playing Blue. maxMoves <= 0 means MaxMoves.
func LocalEngine(agents []agent.Agent, size, maxMoves int) (*Local, error) {
	if len(agents) != len(sides) {
		return nil, fmt.Errorf("need exactly %d agents, got %d", len(sides), len(agents))
	}
	if maxMoves <= 0 {
		maxMoves = MaxMoves
	}

	board, err := game.New(size, game.WithNotifier(logMove))
	if err != nil {
		return nil, err
	}

	return &Local{
		Board:    board,
		Agents:   agents,
		maxMoves: maxMoves,
	}, nil
}

func logMove(b *game.Board) {
	cascade := b.LastCascade()
	log.Debug().Msgf("move %d: %d overflows, %s to move\n%s", b.NumMoves(), len(cascade.Fired), b.SideToMove(), b)
}

// Run executes the entire game loop until a winner is found or the move limit is reached.
func (e *Local) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        uuid.NewString(),
		Size:      e.Board.Size(),
		StartTime: time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("game %s: %s is starting on a %dx%d board", gameMetric.ID, e.Board.SideToMove(), e.Board.Size(), e.Board.Size())

	for e.Board.Winner() == game.None && e.Board.NumMoves() < e.maxMoves {
		side := e.Board.SideToMove()
		step := e.Board.NumMoves() + 1

		move, searchMetric, err := e.Agents[utils.FindIndex(sides, side)].FindMove(e.Board, side)
		if err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("%s agent failed at move %d: %w", side, step, err)
		}
		if err := e.Board.ApplyMove(side, move.Index); err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("%s agent played %s at move %d: %w", side, move, step, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Side:         side.String(),
			Index:        move.Index,
			SearchMetric: searchMetric,
		})
	}

	winner := e.Board.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.Board.NumMoves()
	if winner != game.None {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("game %s: %s won after %d moves", gameMetric.ID, winner, gameMetric.TotalMoves)
	} else {
		log.Warn().Msgf("game %s: stopped after %d moves without a winner", gameMetric.ID, gameMetric.TotalMoves)
	}
	metrics.RecordGame(gameMetric.Winner)

	return winner, gameMetric, moveMetrics, nil
}
