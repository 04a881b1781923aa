package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/ui"
)

func newMeetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meet <character>",
		Short: "Talk to someone in the village",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("character is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, cleanup, err := openGame(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			first, err := g.eng.MeetCharacter(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if first {
				fmt.Fprintf(out, "%s You meet %s for the first time. %s\n", ui.IconSparkle, ui.Key.Render(args[0]), ui.Muted.Render("Bures!"))
				return nil
			}
			fmt.Fprintf(out, "You talk with %s again.\n", ui.Key.Render(args[0]))
			return nil
		},
	}
	return cmd
}
