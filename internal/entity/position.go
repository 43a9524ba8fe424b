package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Outcome of a position.
type Outcome int

const (
	Undecided Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "undecided"
	}
}

// WinLines lists every line of three, rows first, then columns, then both diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Player returns the mark to move. X moves first, so equal counts mean X.
func (that Board) Player() Cell {
	if that.Count(X) == that.Count(O) {
		return X
	}

	return O
}

// Actions returns every empty cell in row-major order, or nothing once the game is over.
func (that Board) Actions() []Move {
	if that.Winner() != Empty {
		return nil
	}

	moves := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Winner returns the mark of the first complete line, or Empty.
func (that Board) Winner() Cell {
	for _, line := range WinLines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

func (that Board) full() bool {
	return that.Count(Empty) == 0
}

// Terminal reports whether someone has won or the board is full.
func (that Board) Terminal() bool {
	return that.Winner() != Empty || that.full()
}

// Outcome classifies the position.
func (that Board) Outcome() Outcome {
	switch that.Winner() {
	case X:
		return XWins
	case O:
		return OWins
	}

	if that.full() {
		return Draw
	}

	return Undecided
}

// Utility scores a finished game from X's side: 1, -1 or 0.
func (that Board) Utility() (int, error) {
	switch that.Outcome() {
	case XWins:
		return 1, nil
	case OWins:
		return -1, nil
	case Draw:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %s", apperror.ErrNotTerminal, that)
	}
}
