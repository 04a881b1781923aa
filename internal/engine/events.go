package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JohanGylseth/SAMI/internal/quest"
)

type EventKind string

const (
	EventObjectivesChanged EventKind = "objectives-changed"
	EventRewardGranted     EventKind = "reward-granted"
	EventArtifactUnlocked  EventKind = "artifact-unlocked"
	EventLevelUp           EventKind = "level-up"
	EventChapterAdvanced   EventKind = "chapter-advanced"
)

// Event is a notification for the presentation layer. Events are delivered
// after the mutation that produced them has been applied and persisted.
type Event struct {
	Kind        EventKind
	ObjectiveID string
	Text        string
	Reward      quest.Reward
	Artifact    string
	Level       int
	Chapter     int
	At          time.Time
}

// Notifier receives engine events. Implementations must not call back
// into the engine synchronously.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, ev Event)

func (f NotifierFunc) Notify(ctx context.Context, ev Event) { f(ctx, ev) }

// MultiNotifier fans an event out to several notifiers in order.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, ev Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, ev)
		}
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Event) {}

// RewardText renders a reward the way the game announces it.
func RewardText(r quest.Reward, currencyName string) string {
	var parts []string
	if r.Currency > 0 {
		name := currencyName
		if name == "" {
			name = "points"
		}
		parts = append(parts, fmt.Sprintf("%d %s", r.Currency, name))
	}
	for _, id := range r.Unlocks {
		if d, ok := quest.DecorationByID(id); ok {
			parts = append(parts, d.Name)
			continue
		}
		parts = append(parts, id)
	}
	if r.Artifact != "" {
		parts = append(parts, "artifact "+r.Artifact)
	}
	if len(parts) == 0 {
		return "Objective complete!"
	}
	return "Objective complete! You earned: " + strings.Join(parts, ", ")
}
