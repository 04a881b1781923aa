package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
	"github.com/JohanGylseth/SAMI/internal/ui"
)

func newVisitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visit <location>",
		Short: "Go to a location and see what can be done there",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("location is required")
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

			out := cmd.OutOrStdout()
			loc := args[0]
			here, err := g.eng.Visit(ctx, loc)
			if err != nil {
				return err
			}
			if l, ok := quest.LocationByID(loc); ok {
				if err := g.eng.MovePlayer(ctx, profile.PositionAt(l.GridX, l.GridY)); err != nil {
					return err
				}
			}
			fmt.Fprintln(out, ui.Heading(ui.IconLocation, quest.LocationName(loc)))
			if l, ok := quest.LoreFor(loc); ok {
				printLore(out, l)
			}
			if len(here) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing to do here right now."))
				var ids []string
				for _, l := range quest.Locations() {
					ids = append(ids, l.ID)
				}
				if s := suggest(loc, ids); len(s) > 0 && s[0] != loc {
					fmt.Fprintln(out, ui.Muted.Render("Did you mean "+s[0]+"?"))
				}
				return nil
			}
			for _, o := range here {
				fmt.Fprintln(out, objectiveLine(o, true))
			}
			return nil
		},
	}

	return cmd
}
