package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Size is the length of a board side.
const Size = 3

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseMark accepts "X" or "O" in any case.
func ParseMark(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidBoard, s)
	}
}

// Move addresses a cell by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is a row-major 3x3 grid. It is a value type: assignment copies it.
type Board [Size][Size]Cell

// InitialState returns the empty starting board.
func InitialState() Board {
	return Board{}
}

// At returns the cell under the move.
func (that Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

// Count returns the number of cells holding the given value.
func (that Board) Count(cell Cell) int {
	n := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				n++
			}
		}
	}

	return n
}

// String renders the board as nine row-major characters, e.g. "XO..X...O".
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * Size)

	for _, row := range that {
		for _, c := range row {
			sb.WriteString(c.String())
		}
	}

	return sb.String()
}

// ParseBoard reads the notation produced by String. Row separators '/' are ignored,
// and '-', '_' and ' ' are accepted for empty cells.
func ParseBoard(s string) (Board, error) {
	var board Board

	cells := strings.ReplaceAll(s, "/", "")
	if len(cells) != Size*Size {
		return board, fmt.Errorf("%w: want %d cells, got %d", apperror.ErrInvalidBoard, Size*Size, len(cells))
	}

	for i, ch := range cells {
		var cell Cell
		switch ch {
		case 'X', 'x':
			cell = X
		case 'O', 'o':
			cell = O
		case '.', '-', '_', ' ':
			cell = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q at %d", apperror.ErrInvalidBoard, ch, i)
		}

		board[i/Size][i%Size] = cell
	}

	return board, nil
}
