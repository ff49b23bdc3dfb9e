package searcher

import (
	"jump61/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/*
- search:
	- happy path: alpha-beta and parallel searches agree with the full tree
	- immediate win: lowest winning square, no further search
	- ties: lowest square by default, seeded choice among equals with random ties
	- edge case: finished game, side not to move -> GameError
	- the searched board is never modified
*/

func newBoard(t *testing.T, size int) *game.Board {
	t.Helper()
	b, err := game.New(size)
	require.NoError(t, err)
	return b
}

// randomPosition plays up to moves random legal moves on a fresh board and
// stops early rather than finish the game.
func randomPosition(t *testing.T, size, moves int, seed uint64) *game.Board {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := newBoard(t, size)
	for i := 0; i < moves; i++ {
		side := b.SideToMove()
		legal := b.LegalMoves(side)
		n := legal[rng.Intn(len(legal))]
		next, err := b.Play(side, n)
		require.NoError(t, err)
		if next.Winner() != game.None {
			break
		}
		b = next
	}
	return b
}

func TestSearchAgreesWithFullTree(t *testing.T) {
	for seed := uint64(1); seed <= 12; seed++ {
		size := 3 + int(seed%2)
		b := randomPosition(t, size, int(seed%7)+1, seed)
		side := b.SideToMove()

		full := NewMinimax(WithDepth(3), WithoutPruning())
		want, err := full.Search(b, side, seed)
		require.NoError(t, err)

		pruned := NewMinimax(WithDepth(3))
		got, err := pruned.Search(b, side, seed)
		require.NoError(t, err)
		require.Equal(t, want.Index, got.Index, "alpha-beta move for seed %d", seed)
		require.Equal(t, want.Score, got.Score, "alpha-beta score for seed %d", seed)

		parallel := NewMinimax(WithDepth(3), WithGoroutines(4))
		got, err = parallel.Search(b, side, seed)
		require.NoError(t, err)
		require.Equal(t, want.Index, got.Index, "parallel move for seed %d", seed)
		require.Equal(t, want.Score, got.Score, "parallel score for seed %d", seed)

		fullTies, err := NewMinimax(WithDepth(3), WithoutPruning(), WithRandomTies()).Search(b, side, seed)
		require.NoError(t, err)
		prunedTies, err := NewMinimax(WithDepth(3), WithRandomTies()).Search(b, side, seed)
		require.NoError(t, err)
		parallelTies, err := NewMinimax(WithDepth(3), WithRandomTies(), WithGoroutines(3)).Search(b, side, seed)
		require.NoError(t, err)
		require.Equal(t, fullTies.Index, prunedTies.Index, "random tie-break for seed %d", seed)
		require.Equal(t, fullTies.Index, parallelTies.Index, "random tie-break for seed %d", seed)
		require.Equal(t, want.Score, prunedTies.Score)
	}
}

func TestImmediateWin(t *testing.T) {
	// Red owns every square but the bottom-right corner; squares 2, 5 and 7
	// all win on the spot.
	b := newBoard(t, 3)
	for n := 0; n < 8; n++ {
		spots := 1
		if n == 5 || n == 7 {
			spots = 2
		}
		require.NoError(t, b.Set(b.Row(n), b.Col(n), spots, game.Red))
	}
	require.NoError(t, b.Set(3, 3, 1, game.Blue))
	require.Equal(t, game.Red, b.SideToMove())

	for _, goroutines := range []int{1, 4} {
		m := NewMinimax(WithGoroutines(goroutines), WithMetrics())
		result, err := m.Search(b, game.Red, 0)

		require.NoError(t, err)
		require.Equal(t, 2, result.Index, "lowest winning square")
		require.Equal(t, game.WinningValue, result.Score)
		require.Equal(t, 2, result.Metric.Nodes, "only the root and the winning child are visited")
	}
}

func TestTies(t *testing.T) {
	corners := []int{0, 2, 6, 8}

	t.Run("lowest square wins ties", func(t *testing.T) {
		b := newBoard(t, 3)
		n, err := NewMinimax(WithDepth(1)).ChooseMove(b, game.Red, 0)
		require.NoError(t, err)
		require.Equal(t, 0, n)
	})

	t.Run("random ties choose among equal squares", func(t *testing.T) {
		b := newBoard(t, 3)
		m := NewMinimax(WithDepth(1), WithRandomTies())
		chosen := map[int]bool{}
		for seed := uint64(0); seed < 32; seed++ {
			n, err := m.ChooseMove(b, game.Red, seed)
			require.NoError(t, err)
			require.Contains(t, corners, n)
			chosen[n] = true

			again, err := m.ChooseMove(b, game.Red, seed)
			require.NoError(t, err)
			require.Equal(t, n, again, "same seed, same move")
		}
		require.Greater(t, len(chosen), 1)
	})
}

func TestSearchErrors(t *testing.T) {
	t.Run("side not to move", func(t *testing.T) {
		b := newBoard(t, 3)
		_, err := NewMinimax().ChooseMove(b, game.Blue, 0)
		require.ErrorIs(t, err, game.ErrGame)
	})

	t.Run("game already won", func(t *testing.T) {
		b := newBoard(t, 2)
		require.NoError(t, b.ApplyMove(game.Red, 0))
		require.NoError(t, b.ApplyMove(game.Blue, 3))

		n, err := NewMinimax().ChooseMove(b, game.Red, 0)
		var gameErr *game.GameError
		require.ErrorAs(t, err, &gameErr)
		require.Equal(t, -1, n)
	})
}

func TestSearchLeavesBoardUntouched(t *testing.T) {
	b := randomPosition(t, 4, 5, 7)
	before, hash, moves := b.String(), b.Hash(), b.NumMoves()

	_, err := NewMinimax(WithDepth(3), WithGoroutines(4)).ChooseMove(b, b.SideToMove(), 1)

	require.NoError(t, err)
	require.Equal(t, before, b.String())
	require.Equal(t, hash, b.Hash())
	require.Equal(t, moves, b.NumMoves())
}

func TestPruningMetrics(t *testing.T) {
	b := randomPosition(t, 4, 4, 3)
	side := b.SideToMove()

	full, err := NewMinimax(WithDepth(3), WithoutPruning(), WithMetrics()).Search(b, side, 0)
	require.NoError(t, err)
	pruned, err := NewMinimax(WithDepth(3), WithMetrics()).Search(b, side, 0)
	require.NoError(t, err)

	require.Zero(t, full.Metric.Cutoffs)
	require.Equal(t, 3, pruned.Metric.Depth)
	require.LessOrEqual(t, pruned.Metric.Nodes, full.Metric.Nodes)
	require.Positive(t, pruned.Metric.Leaves)
}
