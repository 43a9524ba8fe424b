package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Result returns the board after the side to move plays move. The input board is not modified.
func Result(board entity.Board, move entity.Move) (entity.Board, error) {
	if err := validateMove(board, move); err != nil {
		return board, err
	}

	next := board
	next[move.Row][move.Col] = board.Player()

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, move entity.Move) error {
	if !move.Valid() {
		return fmt.Errorf("%w: %w %s", apperror.ErrInvalidMove, apperror.ErrCellOutOfRange, move)
	}

	if board.At(move) != entity.Empty {
		return fmt.Errorf("%w: cell %s is already occupied", apperror.ErrInvalidMove, move)
	}

	return nil
}

// MakeTurn plays move for mark in a running game and refreshes its status.
func MakeTurn(game *entity.Game, mark entity.Cell, move entity.Move) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if game.Board.Player() != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := Result(game.Board, move)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board = next
	game.UpdateGameState()

	return nil
}
