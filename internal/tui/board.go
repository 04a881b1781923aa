package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JohanGylseth/SAMI/internal/engine"
	"github.com/JohanGylseth/SAMI/internal/minigame"
	"github.com/JohanGylseth/SAMI/internal/quest"
	"github.com/JohanGylseth/SAMI/internal/ui"
)

// RunBoard runs the interactive board until the player quits. The profile
// is saved every autosave interval and once more on exit.
func RunBoard(ctx context.Context, eng *engine.Engine, autosave time.Duration, out io.Writer) error {
	m := newBoardModel(ctx, eng, autosave)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	var main string
	switch m.mode {
	case modeFishing:
		main = m.renderFishing()
	case modeQuiz:
		main = m.renderQuiz()
	default:
		main = m.renderObjectives()
	}
	footer := "\n" + m.lastLog
	if m.lore.Title != "" {
		footer += "\n" + ui.Gold.Render(m.lore.SamiWord) + " " + ui.Muted.Render(m.lore.Text)
	}

	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	left := lipgloss.NewStyle().Width(leftW).MaxWidth(leftW).Render(sidebar)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", main)
	return header + "\n" + body + "\n" + footer
}

func (m boardModel) renderHeader() string {
	if m.player == nil {
		return "Sámi Adventure | loading…"
	}
	p := m.player
	rules := m.eng.Rules()
	bar := ui.ProgressBar(p.Currency, p.LevelThreshold, 20)
	line := fmt.Sprintf("Sámi Adventure | Level %d | %s %s/%d", p.Level, bar, ui.Amount(p.Currency, rules.CurrencyName), p.LevelThreshold)
	if rules.Chapters {
		line += fmt.Sprintf(" | Chapter %d | Story %d%%", p.Chapter, p.StoryProgress)
	}
	return ui.Title.Render(line)
}

func (m boardModel) renderSidebar() string {
	if m.player == nil {
		return "Village\n\nLoading…"
	}
	p := m.player
	lines := []string{ui.H2.Render("Village")}
	lines = append(lines, fmt.Sprintf("Buildings: %d", len(p.Buildings)))
	lines = append(lines, fmt.Sprintf("Decorations: %d", len(p.Decorations)))
	lines = append(lines, fmt.Sprintf("Unlocked: %d", len(p.Unlocked)))
	if len(p.Artifacts) > 0 {
		lines = append(lines, "", ui.H2.Render("Artifacts"))
		for _, a := range p.Artifacts {
			lines = append(lines, "- "+a)
		}
	}
	lines = append(lines, "", "Saved "+ui.Ago(p.SavedAt))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	switch m.mode {
	case modeFishing:
		lines = append(lines, "- space: catch", "- esc: stop")
	case modeQuiz:
		lines = append(lines, "- 1-4: answer", "- esc: leave")
	default:
		lines = append(lines,
			"- ↑/↓ or j/k: move",
			"- enter/s: start",
			"- p/space: progress",
			"- c: complete",
			"- r: refresh",
			"- q: save & quit",
		)
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderObjectives() string {
	if m.loading {
		return "Loading…"
	}
	out := []string{ui.H2.Render("Objectives")}
	if len(m.objectives) == 0 {
		return strings.Join(append(out, "(none)"), "\n")
	}
	for i, o := range m.objectives {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		title := o.Title
		if o.SamiWord != "" {
			title += " (" + o.SamiWord + ")"
		}
		line := fmt.Sprintf("%s%s %s %s %d/%d %s",
			cursor, ui.KindIcon(o.Kind), title,
			ui.ProgressBar(o.Progress, o.MaxProgress, 10), o.Progress, o.MaxProgress,
			ui.Status(o, m.active[o.ID]))
		if missing := m.player.MissingArtifacts(o.RequiresArtifacts); len(missing) > 0 && !o.Completed {
			line += " " + ui.IconLock + " " + ui.Muted.Render(strings.Join(missing, ", "))
		}
		out = append(out, line)
	}
	if o, ok := m.current(); ok && o.Description != "" {
		out = append(out, "", ui.Muted.Render(o.Description))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFishing() string {
	f := m.fishing
	hole := "   ~~~~~   "
	switch f.State() {
	case minigame.FishingFishVisible:
		hole = "   ~ 🐟 ~   "
	case minigame.FishingCaught:
		hole = "   ~ ✨ ~   "
	case minigame.FishingMissed:
		hole = "   ~ 💨 ~   "
	}
	return strings.Join([]string{
		ui.H2.Render("Ice fishing at " + quest.LocationName(m.playing.Location)),
		"",
		ui.Panel.Render(hole),
		"",
		fmt.Sprintf("Fish caught: %d/%d", f.Caught(), f.Target()),
	}, "\n")
}

func (m boardModel) renderQuiz() string {
	q := m.quiz
	out := []string{ui.H2.Render(m.playing.Title)}
	cur, ok := q.Current()
	if !ok {
		return strings.Join(append(out, "Quiz finished."), "\n")
	}
	out = append(out, fmt.Sprintf("Question %d of %d, correct %d/%d", q.Number(), q.Total(), q.Correct(), q.Needed()), "", cur.Prompt)
	for i, opt := range cur.Options {
		out = append(out, fmt.Sprintf("  %d) %s", i+1, opt))
	}
	return strings.Join(out, "\n")
}
