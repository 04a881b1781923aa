package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/ui"
)

func newJournalCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recent rewards, level-ups and chapters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, cleanup, err := openGame(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			if g.journal == nil {
				return errNoJournal
			}

			entries, err := g.journal.Recent(ctx, limit)
			if err != nil {
				return err
			}
			total, err := g.journal.Count(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Journal"))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "- %s %s\n", e.Text, ui.Muted.Render(ui.Ago(e.CreatedAt)))
			}
			if total > len(entries) {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("showing %d of %d", len(entries), total)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries")
	return cmd
}
