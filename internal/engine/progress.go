package engine

import (
	"context"

	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
)

type CompleteResult struct {
	ObjectiveID      string
	Reward           quest.Reward
	AlreadyCompleted bool
	ArtifactNew      bool
	LevelBefore      int
	LevelAfter       int
	LevelUp          bool
	ChapterBefore    int
	ChapterAfter     int
	NewObjectives    []string
}

// ChapterAdvanced reports whether the completion moved the story forward.
func (r CompleteResult) ChapterAdvanced() bool { return r.ChapterAfter > r.ChapterBefore }

type ProgressResult struct {
	Advanced    []string
	Completions []CompleteResult
}

// RecordProgress reports one unit of a gameplay event.
func (e *Engine) RecordProgress(ctx context.Context, kind quest.Kind, target string) (*ProgressResult, error) {
	return e.RecordProgressN(ctx, kind, target, 1)
}

// RecordProgressN advances every active objective listening for kind/target
// by amount, completing those that reach their maximum. An event nothing
// listens for is a no-op.
func (e *Engine) RecordProgressN(ctx context.Context, kind quest.Kind, target string, amount int) (*ProgressResult, error) {
	if amount < 1 {
		return nil, InvalidAmountError{Amount: amount}
	}
	res := &ProgressResult{}
	err := e.run(ctx, func(b *batch) error {
		e.recordLocked(b, kind, target, amount, res)
		return nil
	})
	return res, err
}

func (e *Engine) recordLocked(b *batch, kind quest.Kind, target string, amount int, res *ProgressResult) {
	p := e.profile
	chapter := p.Chapter
	// Objectives appended by a chapter advance inside this loop start
	// fresh and do not see the event that unlocked them.
	n := len(p.Objectives)
	changed := false
	for i := 0; i < n; i++ {
		o := &p.Objectives[i]
		if !o.Matches(kind, target) || !e.isActive(*o, chapter) {
			continue
		}
		if missing := p.MissingArtifacts(o.RequiresArtifacts); len(missing) > 0 {
			e.log.Debug("objective waiting for artifacts", "id", o.ID, "missing", missing)
			continue
		}
		o.Progress += amount
		if o.Progress > o.MaxProgress {
			o.Progress = o.MaxProgress
		}
		changed = true
		res.Advanced = append(res.Advanced, o.ID)
		e.log.Debug("objective progress", "id", o.ID, "progress", o.Progress, "max", o.MaxProgress)

		if o.Progress >= o.MaxProgress {
			res.Completions = append(res.Completions, e.completeLocked(b, i))
		}
	}
	if changed {
		b.dirty = true
		b.emit(Event{Kind: EventObjectivesChanged})
	}
}

// CompleteObjective completes an objective directly, as a mini-game does
// when it has no incremental progress to report. Completing twice is a
// no-op reported through AlreadyCompleted.
func (e *Engine) CompleteObjective(ctx context.Context, id string) (*CompleteResult, error) {
	var res CompleteResult
	err := e.run(ctx, func(b *batch) error {
		p := e.profile
		i := p.Objective(id)
		if i < 0 {
			return UnknownObjectiveError{ID: id}
		}
		o := p.Objectives[i]
		if o.Completed {
			res = CompleteResult{ObjectiveID: id, AlreadyCompleted: true, LevelBefore: p.Level, LevelAfter: p.Level, ChapterBefore: p.Chapter, ChapterAfter: p.Chapter}
			return nil
		}
		if missing := p.MissingArtifacts(o.RequiresArtifacts); len(missing) > 0 {
			return MissingPrerequisiteError{ObjectiveID: id, Missing: missing}
		}
		res = e.completeLocked(b, i)
		b.dirty = true
		b.emit(Event{Kind: EventObjectivesChanged})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// completeLocked finishes the instance at index i: mark, record, reward,
// level, advance chapters. Callers own persistence and the
// objectives-changed event.
func (e *Engine) completeLocked(b *batch, i int) CompleteResult {
	p := e.profile
	o := &p.Objectives[i]
	res := CompleteResult{
		ObjectiveID:   o.ID,
		LevelBefore:   p.Level,
		ChapterBefore: p.Chapter,
	}
	if o.Completed {
		res.AlreadyCompleted = true
		res.LevelAfter = p.Level
		res.ChapterAfter = p.Chapter
		return res
	}

	o.Progress = o.MaxProgress
	o.Completed = true
	profile.AddUnique(&p.Completed, o.ID)
	reward := o.Reward.Clone()
	res.Reward = reward
	e.log.Info("objective completed", "id", o.ID)

	res.ArtifactNew = e.applyRewardLocked(b, o.ID, reward)
	e.levelUpLocked(b)
	res.NewObjectives = e.advanceChaptersLocked(b)

	res.LevelAfter = p.Level
	res.LevelUp = res.LevelAfter > res.LevelBefore
	res.ChapterAfter = p.Chapter
	return res
}

// applyRewardLocked grants currency, unlocks and the artifact. It reports
// whether the artifact was new.
func (e *Engine) applyRewardLocked(b *batch, id string, r quest.Reward) bool {
	p := e.profile
	p.Currency += r.Currency
	if p.Currency < 0 {
		p.Currency = 0
	}
	for _, u := range r.Unlocks {
		profile.AddUnique(&p.Unlocked, u)
	}
	b.emit(Event{
		Kind:        EventRewardGranted,
		ObjectiveID: id,
		Text:        RewardText(r, e.rules.CurrencyName),
		Reward:      r,
	})

	if r.Artifact == "" || !profile.AddUnique(&p.Artifacts, r.Artifact) {
		return false
	}
	b.emit(Event{
		Kind:        EventArtifactUnlocked,
		ObjectiveID: id,
		Artifact:    r.Artifact,
		Text:        "New artifact: " + r.Artifact,
	})
	return true
}
