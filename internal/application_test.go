package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, out io.Writer) *App {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := New(context.Background(), logger, &config.Config{}, out, termenv.WithProfile(termenv.Ascii))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, app.Close())
	})

	return app
}

func TestApp_Solve(t *testing.T) {
	t.Run("Prints best move and value", func(t *testing.T) {
		// Given: X can win on the top row
		var out bytes.Buffer
		app := newTestApp(t, &out)
		board, err := entity.ParseBoard("XX.OO....")
		require.NoError(t, err)

		// When: solving
		require.NoError(t, app.Solve(context.Background(), board))

		// Then: the winning move and value are reported
		assert.Contains(t, out.String(), "to move: X")
		assert.Contains(t, out.String(), "best move: (0,2)")
		assert.Contains(t, out.String(), "value: 1")
	})

	t.Run("Reports outcome of finished board", func(t *testing.T) {
		var out bytes.Buffer
		app := newTestApp(t, &out)
		board, err := entity.ParseBoard("XXXOO....")
		require.NoError(t, err)

		require.NoError(t, app.Solve(context.Background(), board))

		assert.Contains(t, out.String(), "outcome: X wins")
	})
}

func TestApp_Play(t *testing.T) {
	t.Run("Handles hints, bad input and quit", func(t *testing.T) {
		// Given: a scripted session
		var out bytes.Buffer
		app := newTestApp(t, &out)
		in := strings.NewReader("hint\nfoo\n9 9\nquit\n")

		// When: playing as X
		err := app.Play(context.Background(), in, entity.X)

		// Then: each command is answered and the session ends cleanly
		require.NoError(t, err)
		assert.Contains(t, out.String(), "hint: 0 0")
		assert.Contains(t, out.String(), ErrBadInput.Error())
		assert.Contains(t, out.String(), "illegal move (9,9)")
	})

	t.Run("Plays a full game without losing", func(t *testing.T) {
		// Given: a human that tries every cell in order
		var out bytes.Buffer
		app := newTestApp(t, &out)
		in := strings.NewReader("0 0\n0 1\n0 2\n1 0\n1 1\n1 2\n2 0\n2 1\n2 2\n")

		// When: playing as X
		err := app.Play(context.Background(), in, entity.X)

		// Then: the game ends and the human did not win
		require.NoError(t, err)
		assert.Contains(t, out.String(), "game over")
		assert.NotContains(t, out.String(), "game over: X wins")
	})

	t.Run("Engine opens when human plays O", func(t *testing.T) {
		var out bytes.Buffer
		app := newTestApp(t, &out)

		err := app.Play(context.Background(), strings.NewReader("q\n"), entity.O)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "0  X . .")
	})

	t.Run("Stops on cancelled context", func(t *testing.T) {
		var out bytes.Buffer
		app := newTestApp(t, &out)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := app.Play(ctx, strings.NewReader("0 0\n"), entity.X)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseMove(t *testing.T) {
	move, err := parseMove("1,2")
	require.NoError(t, err)
	assert.Equal(t, entity.Move{Row: 1, Col: 2}, move)

	_, err = parseMove("1")
	require.ErrorIs(t, err, ErrBadInput)

	_, err = parseMove("a b")
	require.ErrorIs(t, err, ErrBadInput)
}
