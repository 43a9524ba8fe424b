package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const HumanID = "human"

type botService interface {
	BestMove(ctx context.Context, board entity.Board) (entity.Move, error)
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

// GameManager runs a game between a human and the engine.
type GameManager struct {
	logger *slog.Logger
	bot    botService
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
	}
}

// NewGame seats the human on humanMark and the engine on the other side.
// When the engine plays X it opens immediately.
func (that *GameManager) NewGame(ctx context.Context, humanMark entity.Cell) (*entity.Game, error) {
	if humanMark != entity.X && humanMark != entity.O {
		return nil, fmt.Errorf("%w: human mark %s", apperror.ErrInvalidBoard, humanMark)
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID)
	game.Players = []*entity.Player{
		{ID: HumanID, Mark: humanMark},
		entity.NewBotPlayer(humanMark.Opponent()),
	}

	log := that.logger.With("method", "NewGame", "gameID", game.ID)

	if game.Bot().Mark == entity.X {
		move, err := that.bot.MakeTurn(ctx, game)
		if err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}

		log.Debug("bot opened", "move", move.String())
	}

	log.Info("game created", "human", humanMark.String())

	return game, nil
}

// MakeTurn plays the human move and the engine's reply. ErrGameFinished is returned
// together with the final game once either move ends it.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, move entity.Move) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	human := game.Human()
	if human == nil {
		return nil, fmt.Errorf("%w: no human player", apperror.ErrNotYourTurn)
	}

	if err := tictactoe.MakeTurn(game, human.Mark, move); err != nil {
		return game, fmt.Errorf("failed make turn: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
		return game, apperror.ErrGameFinished
	}

	reply, err := that.bot.MakeTurn(ctx, game)
	if err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot replied", "move", reply.String())

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
		return game, apperror.ErrGameFinished
	}

	return game, nil
}

// Hint suggests the engine's move for the human.
func (that *GameManager) Hint(ctx context.Context, game *entity.Game) (entity.Move, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	move, err := that.bot.BestMove(ctx, game.Board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get hint: %w", err)
	}

	return move, nil
}
