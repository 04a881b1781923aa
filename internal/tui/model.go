package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JohanGylseth/SAMI/internal/engine"
	"github.com/JohanGylseth/SAMI/internal/minigame"
	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
	"github.com/JohanGylseth/SAMI/internal/ui"
)

const frame = 100 * time.Millisecond

type mode int

const (
	modeList mode = iota
	modeFishing
	modeQuiz
)

type boardModel struct {
	ctx      context.Context
	eng      *engine.Engine
	autosave time.Duration
	rng      *rand.Rand

	width  int
	height int

	player     *profile.Profile
	objectives []quest.Instance
	active     map[string]bool
	selected   int

	mode    mode
	playing quest.Instance
	fishing *minigame.Fishing
	quiz    *minigame.Quiz
	lore    quest.Lore

	lastLog string
	loading bool
}

type loadedMsg struct {
	player     *profile.Profile
	objectives []quest.Instance
	active     []quest.Instance
}

type startedMsg struct {
	res *engine.StartResult
	err error
}

type progressedMsg struct {
	res *engine.ProgressResult
	err error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type savedMsg struct{ err error }

type autosaveMsg struct{}

type frameMsg struct{}

func newBoardModel(ctx context.Context, eng *engine.Engine, autosave time.Duration) boardModel {
	return boardModel{
		ctx:      ctx,
		eng:      eng,
		autosave: autosave,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		active:   map[string]bool{},
		loading:  true,
		lastLog:  "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.autosaveCmd())
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{
			player:     m.eng.Profile(),
			objectives: m.eng.Objectives(),
			active:     m.eng.ActiveObjectives(),
		}
	}
}

func (m boardModel) autosaveCmd() tea.Cmd {
	if m.autosave <= 0 {
		return nil
	}
	return tea.Tick(m.autosave, func(time.Time) tea.Msg { return autosaveMsg{} })
}

func (m boardModel) saveCmd() tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: m.eng.Save(m.ctx)}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frame, func(time.Time) tea.Msg { return frameMsg{} })
}

// startCmd moves the player to the objective's location before asking
// the engine whether it can be played.
func (m boardModel) startCmd(o quest.Instance) tea.Cmd {
	return func() tea.Msg {
		if o.Location != "" {
			if _, err := m.eng.Visit(m.ctx, o.Location); err != nil {
				return startedMsg{err: err}
			}
			if l, ok := quest.LocationByID(o.Location); ok {
				if err := m.eng.MovePlayer(m.ctx, profile.PositionAt(l.GridX, l.GridY)); err != nil {
					return startedMsg{err: err}
				}
			}
		}
		res, err := m.eng.RequestObjectiveStart(m.ctx, o.ID)
		return startedMsg{res: res, err: err}
	}
}

func (m boardModel) progressCmd(o quest.Instance) tea.Cmd {
	return func() tea.Msg {
		res, err := m.eng.RecordProgress(m.ctx, o.Kind, o.Target)
		return progressedMsg{res: res, err: err}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.eng.CompleteObjective(m.ctx, id)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.player = msg.player
		m.objectives = msg.objectives
		m.active = map[string]bool{}
		for _, o := range msg.active {
			m.active[o.ID] = true
		}
		if m.selected >= len(m.objectives) {
			m.selected = len(m.objectives) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil
	case autosaveMsg:
		return m, tea.Batch(m.saveCmd(), m.autosaveCmd())
	case savedMsg:
		if msg.err != nil {
			m.lastLog = "Save failed: " + msg.err.Error()
		}
		return m, nil
	case startedMsg:
		return m.handleStarted(msg)
	case progressedMsg:
		if msg.err != nil {
			m.lastLog = "Progress failed: " + msg.err.Error()
			return m, nil
		}
		if log := describeProgress(msg.res, m.eng.Rules().CurrencyName); log != "" {
			m.lastLog = log
		}
		return m, m.loadCmd()
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = describeCompletion(*msg.res, m.eng.Rules().CurrencyName)
		return m, m.loadCmd()
	case frameMsg:
		if m.mode != modeFishing {
			return m, nil
		}
		m.fishing.Tick(frame)
		return m, frameCmd()
	case tea.KeyMsg:
		switch m.mode {
		case modeFishing:
			return m.updateFishing(msg)
		case modeQuiz:
			return m.updateQuiz(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m boardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Sequence(m.saveCmd(), tea.Quit)
	case "r":
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.objectives)-1 {
			m.selected++
		}
		return m, nil
	}

	o, ok := m.current()
	if !ok {
		return m, nil
	}
	switch msg.String() {
	case "enter", "s":
		m.lastLog = fmt.Sprintf("Starting %s…", o.Title)
		return m, m.startCmd(o)
	case "p", " ":
		if !m.active[o.ID] {
			m.lastLog = o.Title + " is not active."
			return m, nil
		}
		return m, m.progressCmd(o)
	case "c":
		m.lastLog = fmt.Sprintf("Completing %s…", o.Title)
		return m, m.completeCmd(o.ID)
	}
	return m, nil
}

func (m boardModel) current() (quest.Instance, bool) {
	if m.selected < 0 || m.selected >= len(m.objectives) {
		return quest.Instance{}, false
	}
	return m.objectives[m.selected], true
}

func (m boardModel) handleStarted(msg startedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.lastLog = "Cannot start: " + msg.err.Error()
		return m, m.loadCmd()
	}
	o := msg.res.Objective
	m.playing = o
	m.lore, _ = o.Lore()
	switch msg.res.MiniGame {
	case quest.MiniGameFishing:
		m.mode = modeFishing
		m.fishing = minigame.NewFishing(m.rng, o.Progress, o.MaxProgress)
		m.lastLog = "Watch the hole. Press space when a fish shows."
		return m, tea.Batch(frameCmd(), m.loadCmd())
	case quest.MiniGameLanguage, quest.MiniGameHistory:
		bank, _ := minigame.QuestionsFor(msg.res.MiniGame)
		m.rng.Shuffle(len(bank), func(i, j int) { bank[i], bank[j] = bank[j], bank[i] })
		m.mode = modeQuiz
		m.quiz = minigame.NewQuiz(bank, o.Progress, o.MaxProgress)
		m.lastLog = "Answer with 1-4."
		return m, m.loadCmd()
	}
	m.lastLog = fmt.Sprintf("%s ready. Press p to make progress.", o.Title)
	return m, m.loadCmd()
}

func (m boardModel) updateFishing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Sequence(m.saveCmd(), tea.Quit)
	case "esc", "q":
		m.mode = modeList
		m.lastLog = "Stopped fishing."
		return m, nil
	case " ", "enter":
		if !m.fishing.Catch() {
			m.lastLog = "Too early!"
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Caught one! %d/%d", m.fishing.Caught(), m.fishing.Target())
		if m.fishing.Done() {
			m.mode = modeList
		}
		return m, m.progressCmd(m.playing)
	}
	return m, nil
}

func (m boardModel) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Sequence(m.saveCmd(), tea.Quit)
	case "esc", "q":
		m.mode = modeList
		m.lastLog = "Left the quiz."
		return m, nil
	case "1", "2", "3", "4":
		q, _ := m.quiz.Current()
		right, err := m.quiz.Answer(int(key[0] - '1'))
		if err != nil {
			m.lastLog = err.Error()
			return m, nil
		}
		var cmd tea.Cmd
		if right {
			m.lastLog = "Correct!"
			cmd = m.progressCmd(m.playing)
		} else {
			m.lastLog = "Not quite. The answer was " + q.Options[q.Correct] + "."
		}
		if m.quiz.Finished() {
			m.mode = modeList
			if !m.quiz.Passed() {
				m.lastLog += " Out of questions, try again later."
			}
		}
		return m, cmd
	}
	return m, nil
}

func describeProgress(res *engine.ProgressResult, currency string) string {
	if res == nil || len(res.Advanced) == 0 {
		return ""
	}
	if len(res.Completions) == 0 {
		return "Progress on " + strings.Join(res.Advanced, ", ") + "."
	}
	var parts []string
	for _, c := range res.Completions {
		parts = append(parts, describeCompletion(c, currency))
	}
	return strings.Join(parts, " ")
}

func describeCompletion(c engine.CompleteResult, currency string) string {
	if c.AlreadyCompleted {
		return c.ObjectiveID + " is already complete."
	}
	s := engine.RewardText(c.Reward, currency)
	if c.LevelUp {
		s += fmt.Sprintf(" %s %d → %d", ui.BadgeLevelUp, c.LevelBefore, c.LevelAfter)
	}
	if c.ChapterAdvanced() {
		s += fmt.Sprintf(" %s %d", ui.BadgeChapter, c.ChapterAfter)
	}
	return s
}
