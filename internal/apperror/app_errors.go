package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrUnknownGameStatus = errors.New("unknown game status")

	ErrInvalidMove      = errors.New("invalid move")
	ErrCellOutOfRange   = errors.New("cell is out of range")
	ErrNoMovesAvailable = errors.New("no moves available")
	ErrNotTerminal      = errors.New("position is not terminal")
	ErrInvalidBoard     = errors.New("invalid board")
)
