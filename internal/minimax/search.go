// Package minimax picks optimal moves with an exhaustive alpha-beta search.
package minimax

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// Infinity bounds every utility; real scores are -1, 0 or 1.
const Infinity = 9999

// Stats counts work done by the last search.
type Stats struct {
	Nodes   int
	Cutoffs int
}

// Searcher runs the search and keeps statistics about it. It is not safe for concurrent use.
type Searcher struct {
	logger *slog.Logger
	stats  Stats
}

func NewSearcher(logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Searcher{
		logger: logger.With("component", "minimax"),
	}
}

// BestMove returns an optimal move for the side to move on board.
func BestMove(board entity.Board) (entity.Move, error) {
	return NewSearcher(nil).BestMove(board)
}

func (that *Searcher) Stats() Stats {
	return that.stats
}

// BestMove returns an optimal move for the side to move. Among equally good moves the first
// one searched wins. Terminal boards yield ErrNoMovesAvailable.
func (that *Searcher) BestMove(board entity.Board) (entity.Move, error) {
	that.stats = Stats{}

	if board.Terminal() {
		return entity.Move{}, fmt.Errorf("%w: %s", apperror.ErrNoMovesAvailable, board)
	}

	alpha, beta := -Infinity, Infinity

	var (
		best  entity.Move
		value int
	)

	turn := board.Player()
	if turn == entity.X {
		value = -Infinity
		for _, move := range board.Actions() {
			score, err := that.child(board, move, alpha, beta, that.minValue)
			if err != nil {
				return entity.Move{}, err
			}

			if score > value {
				value, best = score, move
				alpha = value
			}
		}
	} else {
		value = Infinity
		for _, move := range board.Actions() {
			score, err := that.child(board, move, alpha, beta, that.maxValue)
			if err != nil {
				return entity.Move{}, err
			}

			if score < value {
				value, best = score, move
				beta = value
			}
		}
	}

	that.logger.Debug("search finished",
		"board", board.String(),
		"turn", turn.String(),
		"move", best.String(),
		"value", value,
		"nodes", that.stats.Nodes,
		"cutoffs", that.stats.Cutoffs,
	)

	return best, nil
}

// Evaluate returns the exact minimax value of board from X's side.
func (that *Searcher) Evaluate(board entity.Board) (int, error) {
	that.stats = Stats{}

	if board.Player() == entity.X {
		return that.maxValue(board, -Infinity, Infinity)
	}

	return that.minValue(board, -Infinity, Infinity)
}

// maxValue scores a position with X to move. The window comes from the caller and is not
// narrowed here; the loop stops once the value reaches beta, which the minimising caller
// already has a better answer than.
func (that *Searcher) maxValue(board entity.Board, alpha, beta int) (int, error) {
	that.stats.Nodes++

	if board.Terminal() {
		return board.Utility()
	}

	v := -Infinity
	for _, move := range board.Actions() {
		score, err := that.child(board, move, alpha, beta, that.minValue)
		if err != nil {
			return 0, err
		}

		v = max(v, score)
		if v >= beta {
			that.stats.Cutoffs++
			break
		}
	}

	return v, nil
}

// minValue mirrors maxValue for O, stopping once the value drops to alpha.
func (that *Searcher) minValue(board entity.Board, alpha, beta int) (int, error) {
	that.stats.Nodes++

	if board.Terminal() {
		return board.Utility()
	}

	v := Infinity
	for _, move := range board.Actions() {
		score, err := that.child(board, move, alpha, beta, that.maxValue)
		if err != nil {
			return 0, err
		}

		v = min(v, score)
		if v <= alpha {
			that.stats.Cutoffs++
			break
		}
	}

	return v, nil
}

type valueFunc func(board entity.Board, alpha, beta int) (int, error)

// child plays move and scores the successor with next.
func (that *Searcher) child(board entity.Board, move entity.Move, alpha, beta int, next valueFunc) (int, error) {
	successor, err := tictactoe.Result(board, move)
	if err != nil {
		return 0, fmt.Errorf("failed to apply %s to %s: %w", move, board, err)
	}

	return next(successor, alpha, beta)
}
