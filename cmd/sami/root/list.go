package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List objectives",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, cleanup, err := openGame(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			active := map[string]bool{}
			for _, o := range g.eng.ActiveObjectives() {
				active[o.ID] = true
			}

			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Objectives"))
			shown := 0
			for _, o := range g.eng.Objectives() {
				if !all && !active[o.ID] {
					continue
				}
				fmt.Fprintln(out, objectiveLine(o, active[o.ID]))
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing to do right now)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include completed and waiting objectives")
	return cmd
}
