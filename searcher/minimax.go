package searcher

import (
	"fmt"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax searcher with alpha-beta pruning. A
// Minimax is not safe for concurrent searches; it runs its own goroutines.
type Minimax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	randomTies bool
	prune      bool
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines searches root moves on up to n goroutines.
func WithGoroutines(n int) Option {
	return func(m *Minimax) {
		if n > 0 {
			m.goroutines = n
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithRandomTies picks uniformly among root moves sharing the best score
// instead of the lowest square.
func WithRandomTies() Option {
	return func(m *Minimax) {
		m.randomTies = true
	}
}

// WithoutPruning searches the full tree.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.prune = false
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      meta.DEPTH,
		goroutines: 1,
		evaluate:   game.EvaluatePosition,
		prune:      true,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Goroutines() int {
	return m.goroutines
}

// ChooseMove returns the square side should play on board. seed drives the
// tie-break when random ties are enabled. The board is not modified.
func (m *Minimax) ChooseMove(board *game.Board, side game.Side, seed uint64) (int, error) {
	result, err := m.Search(board, side, seed)
	if err != nil {
		return -1, err
	}
	return result.Index, nil
}

// Search is ChooseMove with the score and search metrics of the chosen move.
// It returns a *game.GameError when the game is over, side is not to move or
// side has no legal move.
func (m *Minimax) Search(board *game.Board, side game.Side, seed uint64) (Result, error) {
	if w := board.Winner(); w != game.None {
		return Result{}, &game.GameError{Reason: fmt.Sprintf("game already won by %s", w)}
	}
	if !board.IsSideToMove(side) {
		return Result{}, &game.GameError{Reason: fmt.Sprintf("%s is not to move", side)}
	}
	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		return Result{}, &game.GameError{Reason: fmt.Sprintf("no legal moves for %s", side)}
	}

	m.metrics.Start(m.goroutines, m.depth)
	m.metrics.AddNode()

	children := make([]*game.Board, len(moves))
	for i, n := range moves {
		children[i] = play(board, side, n)
		if children[i].Winner() == side {
			m.metrics.AddNode()
			m.metrics.AddLeaf()
			score := m.evaluate(children[i])
			log.Debug().Msgf("%s wins immediately at square %d", side, n)
			return Result{Index: n, Score: score, Metric: m.metrics.Complete(score)}, nil
		}
	}

	var best int
	var ties []int
	if m.goroutines > 1 && len(children) > 1 {
		best, ties = m.searchParallel(side, children)
	} else {
		best, ties = m.searchSequential(side, children)
	}

	choice := ties[0]
	if m.randomTies && len(ties) > 1 {
		rng := rand.New(rand.NewSource(seed))
		choice = ties[rng.Intn(len(ties))]
	}

	metric := m.metrics.Complete(best)
	log.Debug().Msgf("%s chose square %d with score %d after %d nodes", side, moves[choice], best, metric.Nodes)
	return Result{Index: moves[choice], Score: best, Metric: metric}, nil
}

// searchSequential scores the root children in order and returns the best
// score with the positions of the children that reach it. Without random
// ties only the first such child is exact; with random ties the window is
// widened by one so that every child scoring the best is exact.
func (m *Minimax) searchSequential(side game.Side, children []*game.Board) (int, []int) {
	best, ties := worst(side), []int(nil)
	alpha, beta := NegInf, PosInf
	for i, child := range children {
		score := m.minimax(child, m.depth-1, alpha, beta)
		switch {
		case better(side, score, best):
			best, ties = score, []int{i}
		case score == best && m.randomTies:
			ties = append(ties, i)
		}
		if !m.prune {
			continue
		}
		if side == game.Red {
			alpha = best
			if m.randomTies && best > NegInf {
				alpha = best - 1
			}
		} else {
			beta = best
			if m.randomTies && best < PosInf {
				beta = best + 1
			}
		}
	}
	return best, ties
}

// searchParallel scores every root child exactly on its own goroutine and
// merges the scores in order, matching searchSequential.
func (m *Minimax) searchParallel(side game.Side, children []*game.Board) (int, []int) {
	scores := make([]int, len(children))

	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for i, child := range children {
		i, child := i, child
		g.Go(func() error {
			scores[i] = m.minimax(child, m.depth-1, NegInf, PosInf)
			return nil
		})
	}
	_ = g.Wait()

	best, ties := worst(side), []int(nil)
	for i, score := range scores {
		switch {
		case better(side, score, best):
			best, ties = score, []int{i}
		case score == best && m.randomTies:
			ties = append(ties, i)
		}
	}
	return best, ties
}

// minimax returns the value of board searched depth plies deep. Red
// maximizes and Blue minimizes. With pruning the result is exact when it
// lies strictly inside (alpha, beta) and a bound on the far side otherwise.
func (m *Minimax) minimax(board *game.Board, depth, alpha, beta int) int {
	m.metrics.AddNode()
	if depth <= 0 || board.Winner() != game.None {
		m.metrics.AddLeaf()
		return m.evaluate(board)
	}

	side := board.SideToMove()
	best := worst(side)
	for _, n := range board.LegalMoves(side) {
		score := m.minimax(play(board, side, n), depth-1, alpha, beta)
		if better(side, score, best) {
			best = score
		}
		if !m.prune {
			continue
		}
		if side == game.Red {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}
		if alpha >= beta {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}

// play applies a move taken from board.LegalMoves(side).
func play(board *game.Board, side game.Side, n int) *game.Board {
	child, err := board.Play(side, n)
	if err != nil {
		panic(fmt.Sprintf("legal move rejected: %v", err))
	}
	return child
}
