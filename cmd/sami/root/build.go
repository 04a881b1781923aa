package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
	"github.com/JohanGylseth/SAMI/internal/ui"
)

func newBuildCmd() *cobra.Command {
	var x, y int

	cmd := &cobra.Command{
		Use:   "build <type>",
		Short: "Place a building on the village grid",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("building type is required")
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

			res, err := g.eng.PlaceBuilding(ctx, profile.Placement{Type: args[0], X: x, Y: y})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			rules := g.eng.Rules()
			b := res.Building
			msg := fmt.Sprintf("%s Built %s at (%d,%d)", ui.IconBuild, b.Type, b.X, b.Y)
			if res.Cost > 0 {
				msg += " for " + ui.Amount(res.Cost, rules.CurrencyName)
			}
			fmt.Fprintln(out, msg)
			if l, ok := quest.LoreFor(b.Type); ok {
				printLore(out, l)
			}
			if len(res.Advanced) > 0 {
				printProgress(out, &res.ProgressResult, rules.CurrencyName)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "grid column")
	cmd.Flags().IntVar(&y, "y", 0, "grid row")
	return cmd
}
