package agent

import (
	"jump61/game"
	"jump61/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, size int) *game.Board {
	t.Helper()
	b, err := game.New(size)
	require.NoError(t, err)
	return b
}

func TestEvaluationAgent(t *testing.T) {
	t.Run("plays the searched move", func(t *testing.T) {
		b := newBoard(t, 3)
		a := NewEvaluationAgent(searcher.NewMinimax(searcher.WithDepth(1), searcher.WithMetrics()), 1)

		move, metric, err := a.FindMove(b, game.Red)

		require.NoError(t, err)
		require.Equal(t, game.Move{Index: 0, Row: 1, Col: 1}, move)
		require.Equal(t, 1, metric.Depth)
		require.Positive(t, metric.Nodes)
	})

	t.Run("reports search errors", func(t *testing.T) {
		b := newBoard(t, 3)
		a := NewEvaluationAgent(searcher.NewMinimax(), 1)

		_, _, err := a.FindMove(b, game.Blue)

		require.ErrorIs(t, err, game.ErrGame)
	})

	t.Run("same seed, same games", func(t *testing.T) {
		play := func() []game.Move {
			b := newBoard(t, 3)
			red := NewEvaluationAgent(searcher.NewMinimax(searcher.WithDepth(2), searcher.WithRandomTies()), 5)
			blue := NewEvaluationAgent(searcher.NewMinimax(searcher.WithDepth(2), searcher.WithRandomTies()), 6)
			moves := []game.Move{}
			for i := 0; i < 6 && b.Winner() == game.None; i++ {
				a := red
				if b.SideToMove() == game.Blue {
					a = blue
				}
				move, _, err := a.FindMove(b, b.SideToMove())
				require.NoError(t, err)
				require.NoError(t, b.ApplyMove(b.SideToMove(), move.Index))
				moves = append(moves, move)
			}
			return moves
		}
		require.Equal(t, play(), play())
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		b := newBoard(t, 4)
		a := NewRandomAgent(9)
		for i := 0; i < 30 && b.Winner() == game.None; i++ {
			side := b.SideToMove()
			move, _, err := a.FindMove(b, side)
			require.NoError(t, err)
			require.True(t, b.IsLegalMove(side, move.Index))
			require.Equal(t, b.Row(move.Index), move.Row)
			require.Equal(t, b.Col(move.Index), move.Col)
			require.NoError(t, b.ApplyMove(side, move.Index))
		}
	})

	t.Run("rejects the side not to move", func(t *testing.T) {
		_, _, err := NewRandomAgent(1).FindMove(newBoard(t, 2), game.Blue)
		require.ErrorIs(t, err, game.ErrGame)
	})
}

func TestTrainingAgent(t *testing.T) {
	t.Run("no exploration plays the searched move", func(t *testing.T) {
		b := newBoard(t, 3)
		a := NewTrainingAgent(searcher.NewMinimax(searcher.WithDepth(1)), 0, 1)
		move, _, err := a.FindMove(b, game.Red)
		require.NoError(t, err)
		require.Equal(t, 0, move.Index)
	})

	t.Run("full exploration plays legal random moves", func(t *testing.T) {
		b := newBoard(t, 3)
		a := NewTrainingAgent(searcher.NewMinimax(), 1, 1)
		move, metric, err := a.FindMove(b, game.Red)
		require.NoError(t, err)
		require.True(t, b.IsLegalMove(game.Red, move.Index))
		require.Zero(t, metric.Nodes)
	})

	t.Run("exploration out of range", func(t *testing.T) {
		require.Panics(t, func() { NewTrainingAgent(searcher.NewMinimax(), 1.5, 1) })
	})
}
