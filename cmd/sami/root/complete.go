package root

import (
	"errors"

	"github.com/spf13/cobra"
)

func newCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Complete an objective and collect its reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			res, err := g.eng.CompleteObjective(ctx, args[0])
			if err != nil {
				return withObjectiveHint(err, g)
			}
			printCompletion(cmd.OutOrStdout(), *res, g.eng.Rules().CurrencyName)
			return nil
		},
	}

	return cmd
}
