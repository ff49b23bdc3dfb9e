// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines used to search root moves.
const GO_ROUTINES = 8

// DEPTH defines the default minimax search depth in plies.
const DEPTH = 4

// BOARD_SIZE defines the default board size.
const BOARD_SIZE = 6

// MAX_MOVES defines how many moves a game may last before it is abandoned.
const MAX_MOVES = 500

// GAMES defines the number of games per match-up.
const GAMES = 10
