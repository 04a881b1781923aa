package engine

import (
	"context"

	"github.com/JohanGylseth/SAMI/internal/quest"
)

type StartResult struct {
	Objective quest.Instance
	Challenge quest.ChallengeType
	MiniGame  quest.MiniGame
	Location  string
}

// RequestObjectiveStart checks whether an objective may be played now. It
// never mutates state; the caller launches the challenge on success.
func (e *Engine) RequestObjectiveStart(ctx context.Context, id string) (*StartResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.profile
	i := p.Objective(id)
	if i < 0 {
		return nil, UnknownObjectiveError{ID: id}
	}
	o := p.Objectives[i]
	if o.Completed {
		return nil, ObjectiveCompletedError{ID: id}
	}
	if missing := p.MissingArtifacts(o.RequiresArtifacts); len(missing) > 0 {
		return nil, MissingPrerequisiteError{ObjectiveID: id, Missing: missing}
	}
	e.log.Debug("objective start", "id", id, "challenge", o.Challenge, "minigame", o.MiniGame)
	return &StartResult{
		Objective: o.Clone(),
		Challenge: o.Challenge,
		MiniGame:  o.MiniGame,
		Location:  o.Location,
	}, nil
}
