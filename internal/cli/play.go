package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func Play(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the engine",
		Long: heredoc.Doc(`
			play starts an interactive game. Enter moves as "row col" with
			zero-based indices, "hint" for the engine's suggestion, or "quit".
			X always moves first; pick your side with --mark.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			markFlag, err := cmd.Flags().GetString("mark")
			if err != nil {
				return err
			}

			if markFlag == "" {
				markFlag = rt.conf.Engine.HumanMark
			}

			mark, err := entity.ParseMark(markFlag)
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

			return app.Play(cmd.Context(), cmd.InOrStdin(), mark)
		},
	}

	cmd.Flags().StringP("mark", "m", "", "Your mark, X or O (default from config)")

	return cmd
}
