package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func Solve(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "solve board",
		Short: "Print the best move for a position",
		Long: heredoc.Doc(`
			solve prints the side to move, the engine's move, the minimax
			value from X's side (1 X wins, -1 O wins, 0 draw) and the number
			of nodes searched. Finished boards print their outcome instead.
		`),
		Example: `  tictactoe solve "XX./OO./..."`,
		Args:    cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := entity.ParseBoard(strings.Join(args, ""))
			if err != nil {
				return err
			}

			app, err := application.New(cmd.Context(), rt.logger, rt.conf, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to start: %w", err)
			}

			defer func() {
				if err := app.Close(); err != nil {
					rt.logger.Error("failed to close app", "error", err)
				}
			}()

			return app.Solve(cmd.Context(), board)
		},
	}
}
