package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

// runtime is filled in by the root command before any subcommand runs.
type runtime struct {
	conf   *config.Config
	logger *slog.Logger
}

func Root() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Perfect tic-tac-toe via minimax search",
		Long: heredoc.Doc(`
			tictactoe plays and analyses 3x3 tic-tac-toe with an exhaustive
			minimax search using alpha-beta pruning.

			Boards are written as nine row-major cells using X, O and '.',
			optionally split into rows with '/', e.g. "XX./OO./...".
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init(cmd)
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "Path to config file")
	root.PersistentFlags().String("log-level", "", "Override log level (debug, info, warn, error)")

	root.AddCommand(Play(rt))
	root.AddCommand(Solve(rt))

	return root
}

func (that *runtime) init(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	if path == "" {
		path = config.Path()
	}

	conf, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		conf.LogLevel = level
	}

	logger, err := initLogger(conf, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	that.conf = conf
	that.logger = logger

	return nil
}

// initialize logger. Output goes to stderr so stdout only carries the game.
func initLogger(conf *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := conf.SlogLevel()
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), nil
}
