// Package render draws boards for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	colorX = "1" // red
	colorO = "4" // blue
)

type Renderer struct {
	out *termenv.Output
}

// New colours output when w is a terminal. Pass termenv.WithProfile to force a profile.
func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{
		out: termenv.NewOutput(w, opts...),
	}
}

func (that *Renderer) cell(c entity.Cell) string {
	style := that.out.String(c.String())

	switch c {
	case entity.X:
		style = style.Foreground(that.out.Color(colorX)).Bold()
	case entity.O:
		style = style.Foreground(that.out.Color(colorO)).Bold()
	default:
		style = style.Faint()
	}

	return style.String()
}

// Board formats the grid with row and column indices.
func (that *Renderer) Board(board entity.Board) string {
	var sb strings.Builder

	sb.WriteString("   0 1 2\n")
	for row := range entity.Size {
		cells := make([]string, 0, entity.Size)
		for col := range entity.Size {
			cells = append(cells, that.cell(board[row][col]))
		}

		fmt.Fprintf(&sb, "%d  %s\n", row, strings.Join(cells, " "))
	}

	return sb.String()
}

// PrintBoard writes Board to the output.
func (that *Renderer) PrintBoard(board entity.Board) error {
	if _, err := io.WriteString(that.out, that.Board(board)); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// Outcome describes how a finished game ended.
func (that *Renderer) Outcome(board entity.Board) string {
	switch outcome := board.Outcome(); outcome {
	case entity.XWins:
		return that.cell(entity.X) + " wins"
	case entity.OWins:
		return that.cell(entity.O) + " wins"
	default:
		return outcome.String()
	}
}
