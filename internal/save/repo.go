package save

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JohanGylseth/SAMI/internal/profile"
)

const (
	// DefaultKey is where the current save format lives.
	DefaultKey = "sami.profile"
	// LegacyKey is the key the first game version saved under.
	LegacyKey = "samiAdventureSave"
)

// Store is a flat string-keyed persistence collaborator.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Repo loads and persists the profile through a Store.
type Repo struct {
	store  Store
	codec  *Codec
	key    string
	legacy []string
	log    *slog.Logger
}

type RepoOptions struct {
	Key        string
	LegacyKeys []string
	Logger     *slog.Logger
}

func NewRepo(store Store, codec *Codec, opts RepoOptions) *Repo {
	r := &Repo{
		store:  store,
		codec:  codec,
		key:    opts.Key,
		legacy: opts.LegacyKeys,
		log:    opts.Logger,
	}
	if r.key == "" {
		r.key = DefaultKey
	}
	if r.legacy == nil {
		r.legacy = []string{LegacyKey}
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	return r
}

func (r *Repo) Key() string   { return r.key }
func (r *Repo) Codec() *Codec { return r.codec }

// Load reads the current key, then each legacy key in order. A missing
// save is a fresh game, not an error.
func (r *Repo) Load(ctx context.Context) (*profile.Profile, error) {
	for _, key := range append([]string{r.key}, r.legacy...) {
		v, ok, err := r.store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", key, err)
		}
		if !ok {
			continue
		}
		if key != r.key {
			r.log.Info("migrating legacy save", "from", key, "to", r.key)
		}
		return r.codec.Decode([]byte(v)), nil
	}
	r.log.Debug("no save found, starting fresh", "key", r.key)
	return r.codec.Fresh(), nil
}

// Persist encodes the profile and writes it under the current key.
func (r *Repo) Persist(ctx context.Context, p *profile.Profile) error {
	b, err := r.codec.Encode(p)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.key, string(b)); err != nil {
		return fmt.Errorf("persist %s: %w", r.key, err)
	}
	return nil
}

// Eraser is a Store that can also list and delete keys.
type Eraser interface {
	Store
	Keys(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, key string) error
}

// Reset deletes the current save and every legacy save, returning the keys
// it removed. Unrelated keys are left alone.
func (r *Repo) Reset(ctx context.Context) ([]string, error) {
	er, ok := r.store.(Eraser)
	if !ok {
		return nil, fmt.Errorf("store cannot delete saves")
	}
	keys, err := er.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	owned := append([]string{r.key}, r.legacy...)
	var removed []string
	for _, k := range keys {
		if !profile.Contains(owned, k) {
			continue
		}
		if err := er.Delete(ctx, k); err != nil {
			return removed, fmt.Errorf("delete %s: %w", k, err)
		}
		removed = append(removed, k)
	}
	r.log.Info("save reset", "removed", removed)
	return removed, nil
}
