package root

import (
	"context"
	"errors"

	"github.com/JohanGylseth/SAMI/internal/config"
	"github.com/JohanGylseth/SAMI/internal/engine"
	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
	"github.com/JohanGylseth/SAMI/internal/save"
	"github.com/JohanGylseth/SAMI/internal/storage"
)

var (
	_ save.Eraser = (*storage.KVRepo)(nil)
	_ save.Eraser = (*storage.MemoryKV)(nil)
)

var errNoJournal = errors.New("the journal needs a database; drop --ephemeral")

type game struct {
	eng     *engine.Engine
	repo    *save.Repo
	journal *storage.JournalRepo
}

// rulesFor builds the engine rules from the config.
func rulesFor(c *config.Config) (engine.Rules, error) {
	rules, err := engine.RulesFor(c.Ruleset)
	if err != nil {
		return engine.Rules{}, err
	}
	rules.LevelThreshold = c.Leveling.Threshold
	rules.LevelMultiplier = c.Leveling.Multiplier
	for k, v := range c.BuildingCosts {
		if rules.BuildingCosts == nil {
			rules.BuildingCosts = map[string]int{}
		}
		rules.BuildingCosts[k] = v
	}
	return rules, nil
}

func catalogFor(c *config.Config, rules engine.Rules) (*quest.Catalog, error) {
	cat, err := quest.NewCatalog(rules.Templates())
	if err != nil {
		return nil, err
	}
	if c.CatalogOverlay == "" {
		return cat, nil
	}
	more, err := quest.LoadOverlay(c.CatalogOverlay)
	if err != nil {
		return nil, err
	}
	return cat.Extend(more)
}

// openGame wires storage, the save repo and the engine, and loads the
// profile. The cleanup func trims the journal and closes the database.
func openGame(ctx context.Context) (*game, func(), error) {
	rules, err := rulesFor(cfg)
	if err != nil {
		return nil, nil, err
	}
	cat, err := catalogFor(cfg, rules)
	if err != nil {
		return nil, nil, err
	}

	var (
		store   save.Store
		journal *storage.JournalRepo
		cleanup = func() {}
	)
	if flags.ephemeral {
		store = storage.NewMemoryKV()
	} else {
		path, err := storage.ResolveDBPath(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		db, err := storage.Open(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		store = storage.NewKVRepo(db)
		journal = storage.NewJournalRepo(db)
		cleanup = func() {
			if n, err := journal.Prune(context.Background(), cfg.JournalKeep); err != nil {
				logger.Warn("prune journal failed", "err", err)
			} else if n > 0 {
				logger.Debug("pruned journal", "removed", n)
			}
			_ = db.Close()
		}
	}

	defaults := profile.Defaults{
		StartingCurrency: cfg.StartingCurrency,
		LevelThreshold:   rules.LevelThreshold,
	}
	repo := save.NewRepo(store, save.NewCodec(cat, defaults, logger), save.RepoOptions{
		Key:        cfg.SaveKey,
		LegacyKeys: cfg.LegacySaveKeys,
		Logger:     logger,
	})
	p, err := repo.Load(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	opts := engine.Options{
		Rules:     rules,
		Catalog:   cat,
		Persister: repo,
		Logger:    logger,
	}
	notifiers := engine.MultiNotifier{engine.NotifierFunc(logEvent)}
	if journal != nil {
		notifiers = append(notifiers, journalNotifier{repo: journal})
	}
	opts.Notifier = notifiers
	return &game{eng: engine.New(p, opts), repo: repo, journal: journal}, cleanup, nil
}

// journalNotifier records engine events in the journal table.
type journalNotifier struct {
	repo *storage.JournalRepo
}

func (n journalNotifier) Notify(ctx context.Context, ev engine.Event) {
	if ev.Kind == engine.EventObjectivesChanged {
		return
	}
	_, err := n.repo.Insert(ctx, storage.JournalEntry{
		Kind:        string(ev.Kind),
		ObjectiveID: ev.ObjectiveID,
		Text:        ev.Text,
		Chapter:     ev.Chapter,
		Level:       ev.Level,
		CreatedAt:   ev.At,
	})
	if err != nil {
		logger.Warn("journal insert failed", "kind", ev.Kind, "err", err)
	}
}

func logEvent(_ context.Context, ev engine.Event) {
	logger.Debug("engine event", "kind", ev.Kind, "objective", ev.ObjectiveID, "text", ev.Text)
}
