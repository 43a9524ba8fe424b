package minimax

import (
	"log/slog"
	"os"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oracle is a plain memoised minimax without pruning.
type oracle map[entity.Board]int

func (that oracle) value(t *testing.T, board entity.Board) int {
	t.Helper()

	if v, ok := that[board]; ok {
		return v
	}

	var v int
	if board.Terminal() {
		u, err := board.Utility()
		require.NoError(t, err)
		v = u
	} else {
		maximise := board.Player() == entity.X
		v = Infinity
		if maximise {
			v = -Infinity
		}

		for _, move := range board.Actions() {
			next, err := tictactoe.Result(board, move)
			require.NoError(t, err)

			score := that.value(t, next)
			if maximise {
				v = max(v, score)
			} else {
				v = min(v, score)
			}
		}
	}

	that[board] = v

	return v
}

func mustParse(t *testing.T, notation string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(notation)
	require.NoError(t, err)

	return board
}

func reachable(t *testing.T) []entity.Board {
	t.Helper()

	seen := map[entity.Board]struct{}{}
	stack := []entity.Board{entity.InitialState()}

	for len(stack) > 0 {
		board := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[board]; ok {
			continue
		}
		seen[board] = struct{}{}

		for _, move := range board.Actions() {
			next, err := tictactoe.Result(board, move)
			require.NoError(t, err)
			stack = append(stack, next)
		}
	}

	boards := make([]entity.Board, 0, len(seen))
	for board := range seen {
		boards = append(boards, board)
	}

	return boards
}

func TestBestMove_OpeningMove(t *testing.T) {
	// Given: the empty board
	board := entity.InitialState()

	// When: asking the engine for X's first move
	move, err := BestMove(board)
	require.NoError(t, err)

	// Then: X plays a corner or the centre and the game stays drawn
	assert.Equal(t, entity.X, board.Player())
	corners := []entity.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}, {Row: 1, Col: 1}}
	assert.Contains(t, corners, move)

	next, err := tictactoe.Result(board, move)
	require.NoError(t, err)
	assert.Equal(t, 0, oracle{}.value(t, next))
}

func TestBestMove_TakesImmediateWin(t *testing.T) {
	for _, notation := range []string{"XX.OO....", "XX.OOX.O."} {
		t.Run(notation, func(t *testing.T) {
			// Given: X to move with two in the top row
			board := mustParse(t, notation)
			require.Equal(t, entity.X, board.Player())

			// When: searching
			move, err := BestMove(board)
			require.NoError(t, err)

			// Then: X completes the row and wins
			assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)

			next, err := tictactoe.Result(board, move)
			require.NoError(t, err)
			assert.Equal(t, entity.X, next.Winner())
			assert.True(t, next.Terminal())

			utility, err := next.Utility()
			require.NoError(t, err)
			assert.Equal(t, 1, utility)
		})
	}
}

func TestBestMove_BlocksThreat(t *testing.T) {
	// Given: O to move and X threatens the bottom row
	board := mustParse(t, "....O..XX")
	require.Equal(t, entity.O, board.Player())

	// When: searching
	move, err := BestMove(board)
	require.NoError(t, err)

	// Then: O blocks at the bottom-left corner, the only move that holds the draw
	assert.Equal(t, entity.Move{Row: 2, Col: 0}, move)
}

func TestBestMove_DoubleThreat(t *testing.T) {
	// Given: O to move facing X threats on the top row and the left column
	board := mustParse(t, "XX.XO...O")
	require.Equal(t, entity.O, board.Player())

	// When: searching
	move, err := BestMove(board)
	require.NoError(t, err)

	// Then: any legal move is acceptable since every reply loses
	assert.Contains(t, board.Actions(), move)
	next, err := tictactoe.Result(board, move)
	require.NoError(t, err)
	assert.Equal(t, 1, oracle{}.value(t, next))
}

func TestBestMove_PreservesValueEverywhere(t *testing.T) {
	// Given: every reachable non-terminal position and an unpruned oracle
	ref := oracle{}
	searcher := NewSearcher(nil)

	for _, board := range reachable(t) {
		if board.Terminal() {
			continue
		}

		// When: the engine picks a move
		move, err := searcher.BestMove(board)
		require.NoError(t, err)

		// Then: the move keeps the exact minimax value of the position
		next, err := tictactoe.Result(board, move)
		require.NoError(t, err)
		require.Equal(t, ref.value(t, board), ref.value(t, next), board.String())
	}
}

func TestBestMove_TerminalBoard(t *testing.T) {
	t.Run("Won board", func(t *testing.T) {
		_, err := BestMove(mustParse(t, "XXXOO...."))
		assert.ErrorIs(t, err, apperror.ErrNoMovesAvailable)
	})

	t.Run("Full board", func(t *testing.T) {
		_, err := BestMove(mustParse(t, "XOXXOOOXX"))
		assert.ErrorIs(t, err, apperror.ErrNoMovesAvailable)
	})
}

func TestSearcher_Evaluate(t *testing.T) {
	ref := oracle{}
	searcher := NewSearcher(nil)

	for _, board := range reachable(t) {
		value, err := searcher.Evaluate(board)
		require.NoError(t, err)
		require.Equal(t, ref.value(t, board), value, board.String())
	}
}

func TestSearcher_Stats(t *testing.T) {
	// Given: a searcher with a debug logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	searcher := NewSearcher(logger)

	// When: solving the opening
	_, err := searcher.BestMove(entity.InitialState())
	require.NoError(t, err)

	// Then: nodes were counted and pruning skipped part of the 549945-node tree
	stats := searcher.Stats()
	assert.Positive(t, stats.Nodes)
	assert.Positive(t, stats.Cutoffs)
	assert.Less(t, stats.Nodes, 549945)
}

func TestBestMove_DoesNotMutateBoard(t *testing.T) {
	board := mustParse(t, "X...O....")
	snapshot := board

	_, err := BestMove(board)
	require.NoError(t, err)

	assert.Equal(t, snapshot, board)
}
