package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const solutionKeyPrefix = "solution:"

var ErrSolutionNotFound = errors.New("solution not found")

// SolutionRepository caches the engine's answer for a position.
type SolutionRepository interface {
	Get(ctx context.Context, board entity.Board) (entity.Move, error)
	Save(ctx context.Context, board entity.Board, move entity.Move) error
}

type dbSolution struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSolutionRepository stores solutions in Redis. A zero ttl keeps them forever.
func NewSolutionRepository(client *redis.Client, ttl time.Duration) SolutionRepository {
	return &dbSolution{
		client: client,
		ttl:    ttl,
	}
}

func solutionKey(board entity.Board) string {
	return solutionKeyPrefix + board.String()
}

func (that *dbSolution) Save(ctx context.Context, board entity.Board, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	err = that.client.Set(ctx, solutionKey(board), moveJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set solution: %w", err)
	}

	return nil
}

func (that *dbSolution) Get(ctx context.Context, board entity.Board) (entity.Move, error) {
	response, err := that.client.Get(ctx, solutionKey(board)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.Move{}, ErrSolutionNotFound
	}

	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get solution: %w", err)
	}

	var move entity.Move
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return entity.Move{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return move, nil
}
