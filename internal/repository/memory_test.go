package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySolutionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		// Given: an empty repository
		solutionRepo := NewMemorySolutionRepository()
		board := entity.InitialState()

		// When: a solution is saved
		require.NoError(t, solutionRepo.Save(ctx, board, entity.Move{Row: 2, Col: 2}))

		// Then: it can be read back
		move, err := solutionRepo.Get(ctx, board)
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := NewMemorySolutionRepository().Get(ctx, entity.InitialState())
		assert.ErrorIs(t, err, ErrSolutionNotFound)
	})

	t.Run("Concurrent access", func(t *testing.T) {
		solutionRepo := NewMemorySolutionRepository()

		var wg sync.WaitGroup
		for i := range entity.Size * entity.Size {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				var board entity.Board
				board[i/entity.Size][i%entity.Size] = entity.X
				move := entity.Move{Row: (i + 1) % entity.Size, Col: i % entity.Size}

				assert.NoError(t, solutionRepo.Save(ctx, board, move))
				_, err := solutionRepo.Get(ctx, board)
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()
	})
}
