package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type memorySolution struct {
	mu        sync.RWMutex
	solutions map[entity.Board]entity.Move
}

// NewMemorySolutionRepository keeps solutions in process memory.
func NewMemorySolutionRepository() SolutionRepository {
	return &memorySolution{
		solutions: make(map[entity.Board]entity.Move),
	}
}

func (that *memorySolution) Save(_ context.Context, board entity.Board, move entity.Move) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.solutions[board] = move

	return nil
}

func (that *memorySolution) Get(_ context.Context, board entity.Board) (entity.Move, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	move, ok := that.solutions[board]
	if !ok {
		return entity.Move{}, ErrSolutionNotFound
	}

	return move, nil
}
