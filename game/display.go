package game

import (
	"fmt"
	"strings"
)

// String dumps the board between "===" lines, one indented row per line and
// each square as <spots><glyph>, e.g. "2r 0- 1b".
func (b *Board) String() string {
	var out strings.Builder
	out.WriteString("===\n")
	for r := 1; r <= b.size; r++ {
		out.WriteString("    ")
		out.WriteString(b.rowString(r))
		out.WriteByte('\n')
	}
	out.WriteString("===\n")
	return out.String()
}

// DisplayString is the dump with row numbers on the left and column numbers
// underneath.
func (b *Board) DisplayString() string {
	var out strings.Builder
	for r := 1; r <= b.size; r++ {
		fmt.Fprintf(&out, "%2d %s\n", r, b.rowString(r))
	}
	out.WriteString("  ")
	for c := 1; c <= b.size; c++ {
		fmt.Fprintf(&out, "%3d", c)
	}
	return out.String()
}

func (b *Board) rowString(r int) string {
	squares := make([]string, b.size)
	for c := 1; c <= b.size; c++ {
		squares[c-1] = b.cells[b.Index(r, c)].String()
	}
	return strings.Join(squares, " ")
}
