package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohanGylseth/SAMI/internal/quest"
)

func TestNewInstantiatesChapterOne(t *testing.T) {
	cat := quest.MustCatalog(quest.StoryTemplates())
	p := New(cat, Defaults{})

	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 1, p.Chapter)
	assert.Equal(t, DefaultLevelThreshold, p.LevelThreshold)
	require.Len(t, p.Objectives, 2)
	for _, o := range p.Objectives {
		assert.Equal(t, 1, o.Chapter)
		assert.Zero(t, o.Progress)
		assert.False(t, o.Completed)
	}
	assert.NotNil(t, p.Completed)
	assert.NotNil(t, p.Buildings)
}

func TestCloneIsDeep(t *testing.T) {
	p := New(quest.MustCatalog(quest.VillageTemplates(false)), Defaults{StartingCurrency: 10})
	p.Unlocked = append(p.Unlocked, "tree")

	c := p.Clone()
	c.Unlocked[0] = "dog"
	c.Objectives[0].Progress = 1
	c.Objectives[0].Reward.Unlocks[0] = "x"

	assert.Equal(t, "tree", p.Unlocked[0])
	assert.Zero(t, p.Objectives[0].Progress)
	assert.Equal(t, "building-small", p.Objectives[0].Reward.Unlocks[0])
	assert.Equal(t, 10, c.Currency)
}

func TestSetHelpers(t *testing.T) {
	var list []string
	assert.True(t, AddUnique(&list, "a"))
	assert.False(t, AddUnique(&list, "a"))
	assert.True(t, AddUnique(&list, "b"))
	assert.Equal(t, []string{"a", "b"}, list)

	assert.Equal(t, []string{"reindeer", "dog"}, Dedupe([]string{"reindeer", "reindeer", "dog", "reindeer"}))
}

func TestMissingArtifactsKeepsRequiredOrder(t *testing.T) {
	p := Empty(Defaults{})
	p.Artifacts = []string{"b"}
	assert.Equal(t, []string{"a", "c"}, p.MissingArtifacts([]string{"a", "b", "c"}))
	assert.Empty(t, p.MissingArtifacts([]string{"b"}))
}

func TestDedupeKeepsFirstOccurrenceOrder(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Dedupe([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, Dedupe(nil))
}

func TestAdvanceChapter(t *testing.T) {
	cat := quest.MustCatalog(quest.StoryTemplates())
	p := New(cat, Defaults{})

	added, ok := p.AdvanceChapter(cat)
	assert.False(t, ok)
	assert.Nil(t, added)
	assert.False(t, p.ChapterDone(cat, 1))

	p.Completed = []string{"first-words", "gather-the-herd"}
	assert.True(t, p.ChapterDone(cat, 1))
	added, ok = p.AdvanceChapter(cat)
	require.True(t, ok)
	assert.Equal(t, 2, p.Chapter)
	assert.Equal(t, []string{"duodji-patterns", "voice-of-the-yoik"}, added)
	assert.Len(t, p.Objectives, 4)

	p.Chapter = cat.MaxChapter()
	p.Completed = cat.IDs()
	_, ok = p.AdvanceChapter(cat)
	assert.False(t, ok)
}

func TestPositionAtCellCentre(t *testing.T) {
	pos := PositionAt(8, 2)
	assert.Equal(t, Position{X: 425, Y: 125, GridX: 8, GridY: 2}, pos)
}
