package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/quest"
	"github.com/JohanGylseth/SAMI/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, currency, story progress and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			g, cleanup, err := openGame(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			rules := g.eng.Rules()
			p := g.eng.Profile()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Sámi Adventure"))
			if p.SavedAt.IsZero() {
				if l, ok := quest.LoreFor(quest.LoreWelcome); ok {
					printLore(out, l)
					fmt.Fprintln(out, "")
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Rules", rules.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			currency := ui.Amount(p.Currency, rules.CurrencyName)
			if rules.Leveling {
				currency += " " + ui.Muted.Render(fmt.Sprintf("(next level at %d)", p.LevelThreshold))
			}
			fmt.Fprintln(out, ui.LabelValue("Currency", currency))
			if rules.Chapters {
				fmt.Fprintln(out, ui.LabelValue("Chapter", fmt.Sprintf("%d of %d", p.Chapter, g.eng.Catalog().MaxChapter())))
				fmt.Fprintln(out, ui.LabelValue("Story", fmt.Sprintf("%s %d%%", ui.ProgressBar(p.StoryProgress, 100, 20), p.StoryProgress)))
			}
			fmt.Fprintln(out, ui.LabelValue("Saved", ui.Ago(p.SavedAt)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("🏕️ Village"))
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("Buildings:"), len(p.Buildings))
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("Decorations:"), len(p.Decorations))
			fmt.Fprintf(out, "- %s %s\n", ui.Key.Render("Unlocked:"), listOrNone(p.Unlocked))
			fmt.Fprintf(out, "- %s %s\n", ui.Key.Render("Artifacts:"), listOrNone(p.Artifacts))
			fmt.Fprintf(out, "- %s %s\n", ui.Key.Render("Visited:"), listOrNone(p.LocationsVisited))
			fmt.Fprintf(out, "- %s %s\n", ui.Key.Render("Met:"), listOrNone(p.CharactersMet))
			fmt.Fprintln(out, "")

			badges := g.eng.Achievements()
			earned := 0
			for _, a := range badges {
				if a.Earned {
					earned++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Badges (%d/%d)", ui.IconTrophy, earned, len(badges))))
			for _, a := range badges {
				if a.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", a.Icon, ui.Good.Render(a.Name), ui.Muted.Render(a.Description))
				}
			}
			return nil
		},
	}

	return cmd
}

func listOrNone(list []string) string {
	if len(list) == 0 {
		return ui.Muted.Render("none")
	}
	return strings.Join(list, ", ")
}
