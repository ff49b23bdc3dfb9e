package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"jump61/experiments/metrics"
	"jump61/game"
	"strconv"
	"strings"
)

// ErrQuit is returned when the player asks to leave the game.
var ErrQuit = errors.New("player quit")

// Player is a human agent that reads moves as "<row> <col>" lines.
type Player struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPlayer creates a new Player reading moves from in and prompting on out.
func NewPlayer(in io.Reader, out io.Writer) *Player {
	return &Player{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// FindMove shows the board and prompts until a legal move is entered.
func (p *Player) FindMove(board *game.Board, side game.Side) (game.Move, metrics.SearchMetric, error) {
	fmt.Fprintln(p.out, board.DisplayString())
	for {
		fmt.Fprintf(p.out, "%s> ", side)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return game.Move{}, metrics.SearchMetric{}, err
			}
			return game.Move{}, metrics.SearchMetric{}, io.ErrUnexpectedEOF
		}

		line := strings.TrimSpace(p.in.Text())
		switch line {
		case "":
			continue
		case "quit", "q":
			return game.Move{}, metrics.SearchMetric{}, ErrQuit
		case "dump":
			fmt.Fprint(p.out, board)
			continue
		}

		n, err := parseMove(board, line)
		if err != nil {
			fmt.Fprintf(p.out, "error: %v\n", err)
			continue
		}
		if !board.IsLegalMove(side, n) {
			fmt.Fprintf(p.out, "error: square %d %d is not yours\n", board.Row(n), board.Col(n))
			continue
		}
		return game.MoveAt(board, n), metrics.SearchMetric{}, nil
	}
}

func parseMove(board *game.Board, line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return -1, fmt.Errorf("expected <row> <col>, got %q", line)
	}
	r, err := strconv.Atoi(fields[0])
	if err != nil {
		return -1, fmt.Errorf("bad row %q", fields[0])
	}
	c, err := strconv.Atoi(fields[1])
	if err != nil {
		return -1, fmt.Errorf("bad column %q", fields[1])
	}
	if !board.Exists(r, c) {
		return -1, &game.IndexError{Row: r, Col: c, Index: -1, Size: board.Size()}
	}
	return board.Index(r, c), nil
}
