package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/render"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrBadInput     = errors.New("expected \"row col\", \"hint\" or \"quit\"")
)

// App wires the engine, its cache and the terminal driver.
type App struct {
	logger   *slog.Logger
	out      io.Writer
	renderer *render.Renderer

	bot     service.BotService
	manager *usecase.GameManager

	redis *redis.Client
}

// New builds the application. Redis is only contacted when enabled in conf.
func New(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer, opts ...termenv.OutputOption) (*App, error) {
	log := logger.With("component", "app")

	app := &App{
		logger:   log,
		out:      out,
		renderer: render.New(out, opts...),
	}

	solutions := repository.NewMemorySolutionRepository()

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, ErrAddrNotFound
		}

		client, err := storage.New(ctx, redisAddrString)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		log.Info("using redis solution cache", "addr", redisAddrString, "ttl", conf.Redis.TTL)

		app.redis = client
		solutions = repository.NewSolutionRepository(client, conf.Redis.TTL)
	}

	search := func(board entity.Board) (entity.Move, error) {
		return minimax.NewSearcher(logger).BestMove(board)
	}

	app.bot = service.NewBotService(logger, solutions, search)
	app.manager = usecase.NewGameManager(logger, app.bot)

	return app, nil
}

func (that *App) Close() error {
	if that.redis == nil {
		return nil
	}

	if err := that.redis.Close(); err != nil {
		return fmt.Errorf("could not close redis storage: %w", err)
	}

	return nil
}

// Solve prints the engine's analysis of board.
func (that *App) Solve(ctx context.Context, board entity.Board) error {
	fmt.Fprint(that.out, that.renderer.Board(board))

	if board.Terminal() {
		fmt.Fprintf(that.out, "outcome: %s\n", that.renderer.Outcome(board))
		return nil
	}

	move, err := that.bot.BestMove(ctx, board)
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}

	searcher := minimax.NewSearcher(that.logger)

	value, err := searcher.Evaluate(board)
	if err != nil {
		return fmt.Errorf("failed to evaluate: %w", err)
	}

	fmt.Fprintf(that.out, "to move: %s\nbest move: %s\nvalue: %d\nnodes: %d\n",
		board.Player(), move, value, searcher.Stats().Nodes)

	return nil
}

// Play runs an interactive game reading moves from in.
func (that *App) Play(ctx context.Context, in io.Reader, humanMark entity.Cell) error {
	game, err := that.manager.NewGame(ctx, humanMark)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	fmt.Fprintf(that.out, "you play %s; enter moves as \"row col\", \"hint\" or \"quit\"\n", humanMark)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(that.out, that.renderer.Board(game.Board))

		if game.IsFinished() {
			fmt.Fprintf(that.out, "game over: %s\n", that.renderer.Outcome(game.Board))
			return nil
		}

		fmt.Fprint(that.out, "> ")

		if err = ctx.Err(); err != nil {
			return err
		}

		if !scanner.Scan() {
			if err = scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "quit", "q":
			return nil
		case "hint", "h":
			move, err := that.manager.Hint(ctx, game)
			if err != nil {
				return err
			}

			fmt.Fprintf(that.out, "hint: %d %d\n", move.Row, move.Col)
			continue
		}

		move, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(that.out, err)
			continue
		}

		next, err := that.manager.MakeTurn(ctx, game, move)
		switch {
		case err == nil, errors.Is(err, apperror.ErrGameFinished):
			game = next
		case errors.Is(err, apperror.ErrInvalidMove):
			fmt.Fprintf(that.out, "illegal move %s\n", move)
		default:
			return err
		}
	}
}

func parseMove(line string) (entity.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return entity.Move{}, ErrBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %w", ErrBadInput, err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %w", ErrBadInput, err)
	}

	return entity.Move{Row: row, Col: col}, nil
}
