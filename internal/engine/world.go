package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
)

// Visit marks a location as visited and returns the active objectives
// that can be played there.
func (e *Engine) Visit(ctx context.Context, location string) ([]quest.Instance, error) {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return nil, fmt.Errorf("location is required")
	}
	var out []quest.Instance
	err := e.run(ctx, func(b *batch) error {
		if profile.AddUnique(&e.profile.LocationsVisited, loc) {
			b.dirty = true
		}
		out = e.objectivesAtLocked(loc)
		return nil
	})
	return out, err
}

// MeetCharacter records that the player has talked to a character. It
// reports whether this was the first meeting.
func (e *Engine) MeetCharacter(ctx context.Context, id string) (bool, error) {
	c := strings.TrimSpace(id)
	if c == "" {
		return false, fmt.Errorf("character id is required")
	}
	var first bool
	err := e.run(ctx, func(b *batch) error {
		first = profile.AddUnique(&e.profile.CharactersMet, c)
		b.dirty = first
		return nil
	})
	return first, err
}

// MovePlayer stores the player's position.
func (e *Engine) MovePlayer(ctx context.Context, pos profile.Position) error {
	return e.run(ctx, func(b *batch) error {
		if e.profile.Position == pos {
			return nil
		}
		e.profile.Position = pos
		b.dirty = true
		return nil
	})
}
