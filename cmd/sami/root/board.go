package root

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, cleanup, err := openGame(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			autosave := time.Duration(cfg.AutosaveSeconds) * time.Second
			return tui.RunBoard(ctx, g.eng, autosave, cmd.OutOrStdout())
		},
	}

	return cmd
}
