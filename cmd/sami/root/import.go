package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/ui"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the current save with a JSON save document",
		Long:  "Import reads any save version, migrates it against the current objective catalog and stores it under the current save key.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			g, cleanup, err := openGame(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := g.repo.Codec().Decode(b)
			if err := g.repo.Persist(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Imported level %d, chapter %d, %d objectives", ui.IconDone, p.Level, p.Chapter, len(p.Objectives))))
			return nil
		},
	}

	return cmd
}
