package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/quest"
	"github.com/JohanGylseth/SAMI/internal/ui"
)

func newUseCmd() *cobra.Command {
	var x, y int

	cmd := &cobra.Command{
		Use:   "use",
		Short: "Interact with the building on a grid cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, cleanup, err := openGame(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := g.eng.UseBuilding(ctx, x, y)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBuild, res.Building.Type))
			if l, ok := quest.LoreFor(res.Building.Type); ok {
				printLore(out, l)
			}
			for _, id := range res.Unlocked {
				name := id
				if d, ok := quest.DecorationByID(id); ok {
					name = d.Emoji + " " + d.Name
				}
				fmt.Fprintf(out, "%s You can now place %s decorations!\n", ui.IconSparkle, name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "grid column")
	cmd.Flags().IntVar(&y, "y", 0, "grid row")
	return cmd
}
