package save

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
	"github.com/JohanGylseth/SAMI/internal/storage"
)

func storyCodec() *Codec {
	return NewCodec(quest.MustCatalog(quest.StoryTemplates()), profile.Defaults{}, nil)
}

func TestEncodeWritesEveryField(t *testing.T) {
	c := storyCodec()
	b, err := c.Encode(profile.Empty(profile.Defaults{}))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, k := range []string{
		"version", "level", "chapter", "culturalTokens", "xpMax", "decorations",
		"decorationsUnlocked", "buildings", "artifacts", "quests", "completedQuests",
		"playerPosition", "storyProgress", "charactersMet", "locationsVisited", "savedAt",
	} {
		v, ok := raw[k]
		require.True(t, ok, k)
		assert.NotEqual(t, "null", string(v), k)
	}
}

func TestRoundTrip(t *testing.T) {
	c := storyCodec()
	p := c.Fresh()
	p.Level = 2
	p.Currency = 70
	p.Unlocked = []string{"human", "reindeer"}
	p.Artifacts = []string{quest.ArtifactGiellaStone}
	p.Completed = []string{"first-words"}
	p.Objectives[0].Progress = 5
	p.Objectives[0].Completed = true
	p.Objectives[1].Progress = 3
	p.Position = profile.Position{X: 120.5, Y: 64, GridX: 3, GridY: 2}
	p.StoryProgress = 14
	p.CharactersMet = []string{"elder"}
	p.LocationsVisited = []string{quest.LocationSiida}
	p.Buildings = []profile.Placement{{Type: "tent", X: 4, Y: 5}}
	p.Decorations = []profile.Placement{{Type: "human", X: 1, Y: 1}}
	p.SavedAt = time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)

	b, err := c.Encode(p)
	require.NoError(t, err)
	assert.Equal(t, p, c.Decode(b))
}

func TestDecodeEmptyAndCorrupt(t *testing.T) {
	c := storyCodec()
	assert.Equal(t, c.Fresh(), c.Decode(nil))
	assert.Equal(t, c.Fresh(), c.Decode([]byte("{not json")))
}

func TestDecodeRecoversPerField(t *testing.T) {
	c := storyCodec()
	p := c.Decode([]byte(`{"level":"high","culturalTokens":40,"artifacts":7,"chapter":1}`))
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 40, p.Currency)
	assert.Empty(t, p.Artifacts)
	assert.Len(t, p.Objectives, 2)
}

func TestDecodeLegacyTaskSave(t *testing.T) {
	c := NewCodec(quest.MustCatalog(quest.VillageTemplates(true)), profile.Defaults{}, nil)
	doc := `{
		"level": 1,
		"xp": 35,
		"decorations": [{"type":"tree","x":10,"y":20}],
		"decorationsUnlocked": ["tree","building-small","tree"],
		"buildings": [{"type":"tent","x":4,"y":4}],
		"tasks": [
			{"id":"build-tent","type":"build","target":"tent","progress":1,"maxProgress":1,"completed":true,"reward":{"decorations":["building-small","tree"]}},
			{"id":"ice-fishing","type":"location","target":"lake","progress":7,"maxProgress":3,"completed":false,"requiresLocation":"lake"},
			{"id":"old-task","type":"collect","target":"berries","progress":2,"maxProgress":4,"completed":false,"requiresLocation":"forest"},
			{"id":"build-tent","progress":0}
		],
		"completedTasks": ["build-tent"],
		"playerPosition": {"x": 400, "y": 300}
	}`
	p := c.Decode([]byte(doc))

	assert.Equal(t, 35, p.Currency)
	assert.Equal(t, []string{"tree", "building-small"}, p.Unlocked)
	assert.Equal(t, []string{"build-tent"}, p.Completed)
	assert.Equal(t, 400.0, p.Position.X)

	require.Len(t, p.Objectives, 9)
	assert.Equal(t, "build-tent", p.Objectives[0].ID)
	assert.True(t, p.Objectives[0].Completed)
	// Rebuilt from the current template, progress clamped.
	fishing := p.Objectives[1]
	assert.Equal(t, 3, fishing.Progress)
	assert.Equal(t, 75, fishing.Reward.Currency)
	assert.Equal(t, quest.MiniGameFishing, fishing.MiniGame)
	// Orphans survive with their legacy fields.
	orphan := p.Objectives[2]
	assert.Equal(t, "old-task", orphan.ID)
	assert.Equal(t, "forest", orphan.Location)
	assert.Equal(t, 2, orphan.Progress)

	ids := map[string]bool{}
	for _, o := range p.Objectives {
		assert.False(t, ids[o.ID], "duplicate %s", o.ID)
		ids[o.ID] = true
	}
	assert.True(t, ids["build-farm"])
}

func TestDecodeAddsCurrentChapterTemplates(t *testing.T) {
	c := storyCodec()
	doc := `{
		"chapter": 2,
		"quests": [
			{"id":"first-words","progress":5,"completed":true},
			{"id":"gather-the-herd","progress":8,"completed":true}
		],
		"completedQuests": ["first-words","gather-the-herd"]
	}`
	p := c.Decode([]byte(doc))

	require.Len(t, p.Objectives, 4)
	for _, o := range p.Objectives[2:] {
		assert.Equal(t, 2, o.Chapter)
		assert.Zero(t, o.Progress)
		assert.False(t, o.Completed)
	}
	assert.Equal(t, "duodji-patterns", p.Objectives[2].ID)
}

func TestDecodeSkipsCompletedTemplates(t *testing.T) {
	c := storyCodec()
	p := c.Decode([]byte(`{"chapter":1,"quests":[],"completedQuests":["first-words"]}`))
	require.Len(t, p.Objectives, 1)
	assert.Equal(t, "gather-the-herd", p.Objectives[0].ID)
}

func TestDecodeClampsCounters(t *testing.T) {
	c := storyCodec()
	p := c.Decode([]byte(`{"level":0,"chapter":-1,"culturalTokens":-5,"xpMax":0,"storyProgress":250}`))
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 1, p.Chapter)
	assert.Equal(t, 0, p.Currency)
	assert.Equal(t, profile.DefaultLevelThreshold, p.LevelThreshold)
	assert.Equal(t, 100, p.StoryProgress)
}

func TestRepoLoadFallsBackToLegacyKey(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, LegacyKey, `{"level":3,"decorationsUnlocked":["dog"],"tasks":[]}`))

	r := NewRepo(kv, NewCodec(quest.MustCatalog(quest.VillageTemplates(false)), profile.Defaults{}, nil), RepoOptions{})
	p, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, []string{"dog"}, p.Unlocked)

	require.NoError(t, r.Persist(ctx, p))
	v, ok, err := kv.Get(ctx, DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, v, `"culturalTokens"`)

	again, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestRepoLoadFreshWhenEmpty(t *testing.T) {
	r := NewRepo(storage.NewMemoryKV(), storyCodec(), RepoOptions{})
	p, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, p.Objectives, 2)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("boom")
}
func (failingStore) Set(context.Context, string, string) error { return errors.New("boom") }

func TestRepoSurfacesStoreErrors(t *testing.T) {
	r := NewRepo(failingStore{}, storyCodec(), RepoOptions{})
	_, err := r.Load(context.Background())
	assert.ErrorContains(t, err, "boom")
	assert.Error(t, r.Persist(context.Background(), profile.Empty(profile.Defaults{})))
}

func finishedStoryProfile() *profile.Profile {
	p := storyCodec().Fresh()
	p.Chapter = 4
	p.Objectives = nil
	for _, t := range quest.StoryTemplates() {
		inst := t.Instantiate()
		inst.Progress = inst.MaxProgress
		inst.Completed = true
		p.Objectives = append(p.Objectives, inst)
		p.Completed = append(p.Completed, t.ID)
	}
	return p
}

func TestDecodeMovesFinishedSaveIntoNewChapter(t *testing.T) {
	b, err := storyCodec().Encode(finishedStoryProfile())
	require.NoError(t, err)

	cat, err := quest.MustCatalog(quest.StoryTemplates()).Extend([]quest.Template{{
		ID: "midnight-sun", Title: "Midnight Sun", Kind: quest.KindCollect,
		Target: "cloudberry", MaxProgress: 2, Chapter: 5,
	}})
	require.NoError(t, err)

	p := NewCodec(cat, profile.Defaults{}, nil).Decode(b)
	assert.Equal(t, 5, p.Chapter)
	i := p.Objective("midnight-sun")
	require.GreaterOrEqual(t, i, 0)
	assert.False(t, p.Objectives[i].Completed)
	assert.Len(t, p.Objectives, 8)
}

func TestDecodeKeepsFinishedSaveOnLastChapter(t *testing.T) {
	c := storyCodec()
	b, err := c.Encode(finishedStoryProfile())
	require.NoError(t, err)

	p := c.Decode(b)
	assert.Equal(t, 4, p.Chapter)
	assert.Len(t, p.Objectives, 7)
}

func TestRepoResetRemovesOnlySaveKeys(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, DefaultKey, "{}"))
	require.NoError(t, kv.Set(ctx, LegacyKey, "{}"))
	require.NoError(t, kv.Set(ctx, "settings", "keep"))

	r := NewRepo(kv, storyCodec(), RepoOptions{})
	removed, err := r.Reset(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{DefaultKey, LegacyKey}, removed)

	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"settings"}, keys)

	p, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Chapter)
}

func TestRepoResetNeedsEraser(t *testing.T) {
	r := NewRepo(failingStore{}, storyCodec(), RepoOptions{})
	_, err := r.Reset(context.Background())
	assert.ErrorContains(t, err, "cannot delete")
}
