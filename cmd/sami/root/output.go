package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/JohanGylseth/SAMI/internal/engine"
	"github.com/JohanGylseth/SAMI/internal/quest"
	"github.com/JohanGylseth/SAMI/internal/ui"
)

func printCompletion(w io.Writer, c engine.CompleteResult, currency string) {
	if c.AlreadyCompleted {
		fmt.Fprintln(w, ui.Muted.Render(fmt.Sprintf("%s is already complete.", c.ObjectiveID)))
		return
	}
	fmt.Fprintln(w, ui.Good.Render(ui.IconDone+" "+engine.RewardText(c.Reward, currency)))
	if c.ArtifactNew {
		fmt.Fprintf(w, "%s New artifact: %s\n", ui.IconSparkle, ui.Gold.Render(c.Reward.Artifact))
	}
	if c.LevelUp {
		fmt.Fprintf(w, "%s %s level %d → %d\n", ui.IconBolt, ui.BadgeLevelUp, c.LevelBefore, c.LevelAfter)
	}
	if c.ChapterAdvanced() {
		fmt.Fprintf(w, "%s %s %d\n", ui.IconScroll, ui.BadgeChapter, c.ChapterAfter)
		if len(c.NewObjectives) > 0 {
			fmt.Fprintln(w, ui.LabelValue("New objectives", strings.Join(c.NewObjectives, ", ")))
		}
	}
}

func printProgress(w io.Writer, res *engine.ProgressResult, currency string) {
	if len(res.Advanced) == 0 {
		fmt.Fprintln(w, ui.Muted.Render("Nothing is waiting for that right now."))
		return
	}
	fmt.Fprintln(w, ui.LabelValue("Progress", strings.Join(res.Advanced, ", ")))
	for _, c := range res.Completions {
		printCompletion(w, c, currency)
	}
}

func objectiveLine(o quest.Instance, active bool) string {
	title := o.Title
	if o.SamiWord != "" {
		title += " " + ui.Muted.Render("("+o.SamiWord+")")
	}
	return fmt.Sprintf("%s %s %s %s %d/%d %s",
		ui.KindIcon(o.Kind), ui.Key.Render(o.ID), title,
		ui.ProgressBar(o.Progress, o.MaxProgress, 10), o.Progress, o.MaxProgress,
		ui.Status(o, active))
}

func printLore(w io.Writer, l quest.Lore) {
	fmt.Fprintln(w, ui.Gold.Render(l.Title))
	fmt.Fprintln(w, ui.Muted.Render(l.Text))
	if l.SamiWord != "" {
		fmt.Fprintln(w, ui.LabelValue("Sámi", l.SamiWord))
	}
}
