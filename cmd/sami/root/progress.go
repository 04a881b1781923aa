package root

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/quest"
)

func newProgressCmd() *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "progress <kind> <target>",
		Short: "Report a gameplay event (build, location, collect, challenge)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("kind and target are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := quest.ParseKind(args[0])
			if err != nil {
				var names []string
				for _, k := range quest.Kinds() {
					names = append(names, string(k))
				}
				return didYouMean(err, args[0], names)
			}

			ctx := cmd.Context()
			g, cleanup, err := openGame(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := g.eng.RecordProgressN(ctx, kind, strings.TrimSpace(args[1]), amount)
			if err != nil {
				return err
			}
			printProgress(cmd.OutOrStdout(), res, g.eng.Rules().CurrencyName)
			return nil
		},
	}

	cmd.Flags().IntVarP(&amount, "amount", "n", 1, "units of progress to report")
	return cmd
}
