package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/engine"
	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
)

func newDecorateCmd() *cobra.Command {
	var x, y int

	cmd := &cobra.Command{
		Use:   "decorate <type>",
		Short: "Place an unlocked decoration",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("decoration type is required")
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

			err = g.eng.PlaceDecoration(ctx, profile.Placement{Type: args[0], X: x, Y: y})
			var locked engine.LockedError
			if errors.As(err, &locked) {
				if _, known := quest.DecorationByID(locked.Type); !known {
					var ids []string
					for _, d := range quest.Decorations() {
						ids = append(ids, d.ID)
					}
					return didYouMean(err, locked.Type, ids)
				}
			}
			if err != nil {
				return err
			}
			name := args[0]
			if d, ok := quest.DecorationByID(name); ok {
				name = d.Emoji + " " + d.Name
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Placed %s at (%d,%d)\n", name, x, y)
			return nil
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "x position")
	cmd.Flags().IntVar(&y, "y", 0, "y position")
	return cmd
}
