package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

// Game is a single session between a human and the engine.
type Game struct {
	ID      string    `json:"id"`
	Board   Board     `json:"board"`
	Winner  string    `json:"winner"`
	Status  string    `json:"status"`
	Turn    Cell      `json:"player_turn"`
	Players []*Player `json:"players,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  InitialState(),
		Turn:   X,
		Status: StatusOngoing,
	}
}

// UpdateGameState derives winner, status and turn from the board.
func (that *Game) UpdateGameState() {
	switch outcome := that.Board.Outcome(); outcome {
	// one player wins
	case XWins, OWins:
		that.Winner = that.Board.Winner().String()
		that.Status = StatusFinished
		that.Turn = Empty
	// tie
	case Draw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = Empty
	// game continue
	default:
		that.Winner = ""
		that.Status = StatusOngoing
		that.Turn = that.Board.Player()
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

// Bot returns the engine-controlled player, if any.
func (that *Game) Bot() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

// Human returns the first player that is not the engine.
func (that *Game) Human() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}

	return nil
}
