package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/JohanGylseth/SAMI/internal/quest"
)

// Shared styles and icons for the CLI and the board.

const (
	IconQuest    = "🗺️"
	IconSparkle  = "✨"
	IconBuild    = "🏕️"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconBolt     = "⚡"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconLocation = "📍"
	IconBag      = "🧺"
	IconDrum     = "🥁"
	IconSun      = "☀️"
	IconScroll   = "📜"
	IconLock     = "🔒"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeChapter = lipgloss.NewStyle().Bold(true).Foreground(cAccent).Render("NEW CHAPTER")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Status renders an objective's state word.
func Status(o quest.Instance, active bool) string {
	switch {
	case o.Completed:
		return Good.Render("done")
	case active:
		return H2.Render("active")
	default:
		return Muted.Render("waiting")
	}
}

func KindIcon(k quest.Kind) string {
	switch k {
	case quest.KindBuild:
		return IconBuild
	case quest.KindLocation:
		return IconLocation
	case quest.KindCollect:
		return IconBag
	case quest.KindChallenge:
		return IconDrum
	default:
		return IconQuest
	}
}

// Amount renders a currency amount with thousands separators.
func Amount(n int, currency string) string {
	return Gold.Render(humanize.Comma(int64(n))) + " " + currency
}

// Ago renders a timestamp relative to now; the zero time is "never".
func Ago(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}

func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
