package save

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
)

// FormatVersion is written into every save document.
const FormatVersion = 4

// document is the on-disk shape. Every collection is always present.
type document struct {
	Version             int                 `json:"version"`
	Level               int                 `json:"level"`
	Chapter             int                 `json:"chapter"`
	CulturalTokens      int                 `json:"culturalTokens"`
	XPMax               int                 `json:"xpMax"`
	Decorations         []profile.Placement `json:"decorations"`
	DecorationsUnlocked []string            `json:"decorationsUnlocked"`
	Buildings           []profile.Placement `json:"buildings"`
	Artifacts           []string            `json:"artifacts"`
	Quests              []quest.Instance    `json:"quests"`
	CompletedQuests     []string            `json:"completedQuests"`
	PlayerPosition      profile.Position    `json:"playerPosition"`
	StoryProgress       int                 `json:"storyProgress"`
	CharactersMet       []string            `json:"charactersMet"`
	LocationsVisited    []string            `json:"locationsVisited"`
	SavedAt             time.Time           `json:"savedAt"`
}

// Codec converts profiles to and from save documents, migrating old saves
// against the current catalog.
type Codec struct {
	catalog  *quest.Catalog
	defaults profile.Defaults
	log      *slog.Logger
}

func NewCodec(cat *quest.Catalog, d profile.Defaults, log *slog.Logger) *Codec {
	if log == nil {
		log = slog.Default()
	}
	return &Codec{catalog: cat, defaults: d, log: log}
}

// Fresh returns a new-game profile.
func (c *Codec) Fresh() *profile.Profile {
	return profile.New(c.catalog, c.defaults)
}

// Encode serializes a profile.
func (c *Codec) Encode(p *profile.Profile) ([]byte, error) {
	doc := document{
		Version:             FormatVersion,
		Level:               p.Level,
		Chapter:             p.Chapter,
		CulturalTokens:      p.Currency,
		XPMax:               p.LevelThreshold,
		Decorations:         nonNilPlacements(p.Decorations),
		DecorationsUnlocked: nonNil(p.Unlocked),
		Buildings:           nonNilPlacements(p.Buildings),
		Artifacts:           nonNil(p.Artifacts),
		Quests:              p.Objectives,
		CompletedQuests:     nonNil(p.Completed),
		PlayerPosition:      p.Position,
		StoryProgress:       p.StoryProgress,
		CharactersMet:       nonNil(p.CharactersMet),
		LocationsVisited:    nonNil(p.LocationsVisited),
		SavedAt:             p.SavedAt,
	}
	if doc.Quests == nil {
		doc.Quests = []quest.Instance{}
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	return b, nil
}

// Decode never fails. Empty or unreadable input yields a fresh profile;
// otherwise each field is decoded on its own over the fresh defaults so one
// damaged field does not lose the rest of the save.
func (c *Codec) Decode(data []byte) *profile.Profile {
	if len(data) == 0 {
		return c.Fresh()
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		c.log.Warn("corrupt save, starting fresh", "err", err)
		return c.Fresh()
	}

	p := profile.Empty(c.defaults)
	f := fields{raw: raw, log: c.log}

	f.readInt(&p.Level, "level")
	f.readInt(&p.Chapter, "chapter")
	f.readInt(&p.Currency, "culturalTokens", "xp", "reindeer")
	f.readInt(&p.LevelThreshold, "xpMax")
	f.readInt(&p.StoryProgress, "storyProgress")
	f.readStrings(&p.Unlocked, "decorationsUnlocked")
	f.readStrings(&p.Artifacts, "artifacts")
	f.readStrings(&p.Completed, "completedQuests", "completedTasks")
	f.readStrings(&p.CharactersMet, "charactersMet")
	f.readStrings(&p.LocationsVisited, "locationsVisited")
	f.readPlacements(&p.Buildings, "buildings")
	f.readPlacements(&p.Decorations, "decorations")
	f.decode(&p.Position, "playerPosition")
	f.decode(&p.SavedAt, "savedAt")

	normalize(p, c.defaults)

	saved := f.instances("quests", "tasks")
	p.Objectives = c.migrate(p, saved)

	// A catalog that gained chapters moves a finished save forward.
	for {
		added, ok := p.AdvanceChapter(c.catalog)
		if !ok {
			break
		}
		c.log.Info("save moved to new chapter", "chapter", p.Chapter, "added", added)
	}
	return p
}

// migrate rebuilds saved instances from the current catalog, keeping only
// progress and completion, then adds current-chapter templates the save
// has never seen.
func (c *Codec) migrate(p *profile.Profile, saved []quest.Instance) []quest.Instance {
	out := make([]quest.Instance, 0, len(saved))
	seen := map[string]bool{}
	for _, s := range saved {
		if seen[s.ID] {
			c.log.Warn("duplicate objective in save", "id", s.ID)
			continue
		}
		seen[s.ID] = true

		t, ok := c.catalog.ByID(s.ID)
		if !ok {
			c.log.Debug("keeping orphaned objective", "id", s.ID)
			out = append(out, normalizeOrphan(s))
			continue
		}
		inst := t.Instantiate()
		inst.Progress = clamp(s.Progress, 0, inst.MaxProgress)
		inst.Completed = s.Completed
		if inst.Completed {
			inst.Progress = inst.MaxProgress
		}
		out = append(out, inst)
	}

	for _, t := range c.catalog.ByChapter(p.Chapter) {
		if seen[t.ID] || p.IsCompleted(t.ID) {
			continue
		}
		out = append(out, t.Instantiate())
	}
	return out
}

func normalize(p *profile.Profile, d profile.Defaults) {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Chapter < 1 {
		p.Chapter = 1
	}
	if p.Currency < 0 {
		p.Currency = 0
	}
	if p.LevelThreshold <= 0 {
		p.LevelThreshold = profile.Empty(d).LevelThreshold
	}
	p.StoryProgress = clamp(p.StoryProgress, 0, 100)
	p.Unlocked = profile.Dedupe(p.Unlocked)
	p.Artifacts = profile.Dedupe(p.Artifacts)
	p.Completed = profile.Dedupe(p.Completed)
	p.CharactersMet = profile.Dedupe(p.CharactersMet)
	p.LocationsVisited = profile.Dedupe(p.LocationsVisited)
}

// normalizeOrphan keeps an unknown instance as decoded, restoring the
// instance invariants.
func normalizeOrphan(s quest.Instance) quest.Instance {
	s = s.Clone()
	if s.MaxProgress < 1 {
		s.MaxProgress = 1
	}
	s.Progress = clamp(s.Progress, 0, s.MaxProgress)
	if s.Completed {
		s.Progress = s.MaxProgress
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func nonNilPlacements(in []profile.Placement) []profile.Placement {
	if in == nil {
		return []profile.Placement{}
	}
	return in
}
