package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
)

// Persister writes the profile to durable storage.
type Persister interface {
	Persist(ctx context.Context, p *profile.Profile) error
}

type Options struct {
	Rules     Rules
	Catalog   *quest.Catalog
	Persister Persister
	Notifier  Notifier
	Logger    *slog.Logger
	Now       func() time.Time
}

// Engine owns the player profile and is its only mutator. Every operation
// runs to completion under the engine lock; the persistence write happens
// once per operation and notifications are delivered after unlocking.
type Engine struct {
	mu      sync.Mutex
	rules   Rules
	catalog *quest.Catalog
	profile *profile.Profile
	persist Persister
	notify  Notifier
	log     *slog.Logger
	now     func() time.Time
}

// New builds an engine over p. A nil profile starts a fresh game.
func New(p *profile.Profile, opts Options) *Engine {
	e := &Engine{
		rules:   opts.Rules,
		catalog: opts.Catalog,
		persist: opts.Persister,
		notify:  opts.Notifier,
		log:     opts.Logger,
		now:     opts.Now,
	}
	if e.rules.Name == "" {
		e.rules = StoryRules()
	}
	if e.rules.LevelThreshold <= 0 {
		e.rules.LevelThreshold = DefaultLevelThreshold
	}
	if e.rules.LevelMultiplier <= 1 {
		e.rules.LevelMultiplier = DefaultLevelMultiplier
	}
	if e.catalog == nil {
		e.catalog = quest.MustCatalog(e.rules.Templates())
	}
	if e.notify == nil {
		e.notify = nopNotifier{}
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if p == nil {
		p = profile.New(e.catalog, profile.Defaults{LevelThreshold: e.rules.LevelThreshold})
	}
	e.profile = p
	if e.rules.Chapters {
		// Catch up on chapters finished under an older catalog. Nothing is
		// announced; the next write persists the result.
		e.advanceChaptersLocked(&batch{})
	}
	return e
}

func (e *Engine) Rules() Rules            { return e.rules }
func (e *Engine) Catalog() *quest.Catalog { return e.catalog }

// batch collects the side effects of one operation.
type batch struct {
	dirty  bool
	events []Event
}

func (b *batch) emit(ev Event) {
	b.events = append(b.events, ev)
}

// run applies fn under the lock, persists once if fn changed anything and
// then delivers the collected events.
func (e *Engine) run(ctx context.Context, fn func(b *batch) error) error {
	var b batch
	e.mu.Lock()
	err := fn(&b)
	if b.dirty {
		e.persistLocked(ctx)
	}
	e.mu.Unlock()

	now := e.now()
	for _, ev := range b.events {
		if ev.At.IsZero() {
			ev.At = now
		}
		e.notify.Notify(ctx, ev)
	}
	return err
}

func (e *Engine) persistLocked(ctx context.Context) {
	if e.persist == nil {
		return
	}
	e.profile.SavedAt = e.now().UTC()
	if err := e.persist.Persist(ctx, e.profile); err != nil {
		e.log.Warn("persist profile failed", "err", err)
	}
}

// Save writes the profile unconditionally and reports the write error.
func (e *Engine) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.persist == nil {
		return nil
	}
	e.profile.SavedAt = e.now().UTC()
	return e.persist.Persist(ctx, e.profile)
}

// Profile returns a deep copy of the current profile.
func (e *Engine) Profile() *profile.Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile.Clone()
}

// Objectives returns copies of every objective instance in display order.
func (e *Engine) Objectives() []quest.Instance {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]quest.Instance, len(e.profile.Objectives))
	for i, o := range e.profile.Objectives {
		out[i] = o.Clone()
	}
	return out
}

// ActiveObjectives returns the incomplete objectives that can currently
// receive progress.
func (e *Engine) ActiveObjectives() []quest.Instance {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []quest.Instance
	for _, o := range e.profile.Objectives {
		if e.isActive(o, e.profile.Chapter) {
			out = append(out, o.Clone())
		}
	}
	return out
}

// ObjectivesAt returns the active objectives gated on a location.
func (e *Engine) ObjectivesAt(location string) []quest.Instance {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.objectivesAtLocked(location)
}

func (e *Engine) objectivesAtLocked(location string) []quest.Instance {
	var out []quest.Instance
	for _, o := range e.profile.Objectives {
		if o.Location == location && e.isActive(o, e.profile.Chapter) {
			out = append(out, o.Clone())
		}
	}
	return out
}

// isActive reports whether an instance can receive progress while the
// player is in chapter.
func (e *Engine) isActive(o quest.Instance, chapter int) bool {
	if o.Completed {
		return false
	}
	if e.rules.Chapters && o.Chapter != chapter {
		return false
	}
	return true
}
