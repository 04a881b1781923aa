package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/engine"
	"github.com/JohanGylseth/SAMI/internal/quest"
	"github.com/JohanGylseth/SAMI/internal/ui"
)

func newStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <id>",
		Short: "Check an objective can be played and show its challenge",
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

			out := cmd.OutOrStdout()
			res, err := g.eng.RequestObjectiveStart(ctx, args[0])
			var missing engine.MissingPrerequisiteError
			if errors.As(err, &missing) {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconLock+" Bring these artifacts first:"))
				for _, a := range missing.Missing {
					fmt.Fprintf(out, "- %s\n", a)
				}
				return err
			}
			if err != nil {
				return withObjectiveHint(err, g)
			}

			o := res.Objective
			fmt.Fprintln(out, ui.Heading(ui.KindIcon(o.Kind), o.Title))
			if o.Description != "" {
				fmt.Fprintln(out, ui.Muted.Render(o.Description))
			}
			if res.Location != "" {
				fmt.Fprintln(out, ui.LabelValue("Where", quest.LocationName(res.Location)))
			}
			switch {
			case res.Challenge != quest.ChallengeNone:
				fmt.Fprintln(out, ui.LabelValue("Challenge", res.Challenge))
			case res.MiniGame != quest.MiniGameNone:
				fmt.Fprintln(out, ui.LabelValue("Mini-game", res.MiniGame))
			}
			fmt.Fprintln(out, ui.LabelValue("Progress", fmt.Sprintf("%d/%d", o.Progress, o.MaxProgress)))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Report progress with: sami progress %s %s", o.Kind, o.Target)))
			return nil
		},
	}

	return cmd
}
