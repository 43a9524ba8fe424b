package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	// BestMove returns the engine's move for board, from cache when possible.
	BestMove(ctx context.Context, board entity.Board) (entity.Move, error)
	// MakeTurn plays the engine's move in game.
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type solutionRepo interface {
	Get(ctx context.Context, board entity.Board) (entity.Move, error)
	Save(ctx context.Context, board entity.Board, move entity.Move) error
}

// SearchFunc computes a best move for the side to move.
type SearchFunc func(board entity.Board) (entity.Move, error)

type botService struct {
	logger    *slog.Logger
	solutions solutionRepo
	search    SearchFunc
}

func NewBotService(logger *slog.Logger, solutions solutionRepo, search SearchFunc) BotService {
	return &botService{
		logger:    logger.With("component", "bot"),
		solutions: solutions,
		search:    search,
	}
}

func (that *botService) BestMove(ctx context.Context, board entity.Board) (entity.Move, error) {
	log := that.logger.With("method", "BestMove", "board", board.String())

	move, err := that.solutions.Get(ctx, board)
	switch {
	case err == nil && legal(board, move):
		log.Debug("solution cache hit", "move", move.String())
		return move, nil
	case err == nil:
		log.Warn("cached solution is not legal, searching", "move", move.String())
	case !errors.Is(err, repository.ErrSolutionNotFound):
		log.Error("failed to read solution cache", "error", err)
	}

	move, err = that.search(board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to search: %w", err)
	}

	if err = that.solutions.Save(ctx, board, move); err != nil {
		log.Error("failed to save solution", "error", err)
	}

	return move, nil
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	botPlayer := game.Bot()
	if botPlayer == nil {
		return entity.Move{}, ErrBotNotFound
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	if game.Board.Player() != botPlayer.Mark {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	move, err := that.BestMove(ctx, game.Board)
	if err != nil {
		return entity.Move{}, err
	}

	if err = tictactoe.MakeTurn(game, botPlayer.Mark, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

func legal(board entity.Board, move entity.Move) bool {
	return move.Valid() && board.At(move) == entity.Empty && !board.Terminal()
}
