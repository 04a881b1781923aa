package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
)

func normalizeType(s string) (string, error) {
	t := strings.TrimSpace(strings.ToLower(s))
	if t == "" {
		return "", fmt.Errorf("type is required")
	}
	return t, nil
}

// BuildResult is the outcome of placing a building.
type BuildResult struct {
	ProgressResult
	Building profile.Placement
	Cost     int
}

// PlaceBuilding records a building on a free grid cell, charging its cost
// under rulesets that price buildings, and reports it as build progress.
func (e *Engine) PlaceBuilding(ctx context.Context, pl profile.Placement) (*BuildResult, error) {
	t, err := normalizeType(pl.Type)
	if err != nil {
		return nil, err
	}
	pl.Type = t

	res := &BuildResult{Building: pl}
	err = e.run(ctx, func(b *batch) error {
		p := e.profile
		if existing, ok := p.BuildingAt(pl.X, pl.Y); ok {
			return OccupiedCellError{X: pl.X, Y: pl.Y, Occupant: existing.Type}
		}
		if cost := e.rules.BuildingCost(pl.Type); cost > 0 {
			if err := e.spendLocked(cost); err != nil {
				return err
			}
			res.Cost = cost
		}
		p.Buildings = append(p.Buildings, pl)
		b.dirty = true
		e.log.Debug("building placed", "type", pl.Type, "x", pl.X, "y", pl.Y)

		e.recordLocked(b, quest.KindBuild, pl.Type, 1, &res.ProgressResult)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// PlaceDecoration places an unlocked decoration.
func (e *Engine) PlaceDecoration(ctx context.Context, pl profile.Placement) error {
	t, err := normalizeType(pl.Type)
	if err != nil {
		return err
	}
	pl.Type = t

	return e.run(ctx, func(b *batch) error {
		p := e.profile
		if !p.IsUnlocked(pl.Type) {
			return LockedError{Type: pl.Type}
		}
		p.Decorations = append(p.Decorations, pl)
		b.dirty = true
		return nil
	})
}

// UseResult is the outcome of interacting with a placed building.
type UseResult struct {
	Building profile.Placement
	Unlocked []string
}

// UseBuilding interacts with the building on a grid cell. Some buildings
// unlock decorations the first time they are used.
func (e *Engine) UseBuilding(ctx context.Context, x, y int) (*UseResult, error) {
	res := &UseResult{}
	err := e.run(ctx, func(b *batch) error {
		p := e.profile
		pl, ok := p.BuildingAt(x, y)
		if !ok {
			return EmptyCellError{X: x, Y: y}
		}
		res.Building = pl
		for _, u := range quest.BuildingUnlocks(pl.Type) {
			if profile.AddUnique(&p.Unlocked, u) {
				res.Unlocked = append(res.Unlocked, u)
			}
		}
		if len(res.Unlocked) == 0 {
			return nil
		}
		b.dirty = true
		reward := quest.Reward{Unlocks: append([]string(nil), res.Unlocked...)}
		b.emit(Event{
			Kind:   EventRewardGranted,
			Text:   fmt.Sprintf("You can now place %s decorations!", strings.Join(res.Unlocked, ", ")),
			Reward: reward,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
