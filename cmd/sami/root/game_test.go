package root

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohanGylseth/SAMI/internal/config"
	"github.com/JohanGylseth/SAMI/internal/engine"
	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
)

func useConfig(t *testing.T, c *config.Config) {
	t.Helper()
	prevCfg, prevLog, prevFlags := cfg, logger, flags
	cfg, logger, flags = c, slog.Default(), globalFlags{}
	t.Cleanup(func() { cfg, logger, flags = prevCfg, prevLog, prevFlags })
}

func TestOpenGamePersistsAndJournals(t *testing.T) {
	c := config.Default()
	c.DBPath = filepath.Join(t.TempDir(), "sami.db")
	useConfig(t, c)
	ctx := context.Background()

	g, cleanup, err := openGame(ctx)
	require.NoError(t, err)
	res, err := g.eng.CompleteObjective(ctx, "first-words")
	require.NoError(t, err)
	assert.False(t, res.AlreadyCompleted)

	entries, err := g.journal.Recent(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, "first-words", e.ObjectiveID)
		assert.NotEqual(t, string(engine.EventObjectivesChanged), e.Kind)
	}
	cleanup()

	g, cleanup, err = openGame(ctx)
	require.NoError(t, err)
	defer cleanup()
	assert.True(t, g.eng.Profile().IsCompleted("first-words"))
}

func TestOpenGameAppliesConfig(t *testing.T) {
	overlay := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte(`
objectives:
  - id: pick-cloudberries
    title: Pick cloudberries
    kind: collect
    target: cloudberry
    max_progress: 2
    reward:
      currency: 5
`), 0o644))

	c := config.Default()
	c.Ruleset = "village"
	c.StartingCurrency = 15
	c.CatalogOverlay = overlay
	c.BuildingCosts = map[string]int{"tent": 12}
	useConfig(t, c)
	flags.ephemeral = true
	ctx := context.Background()

	g, cleanup, err := openGame(ctx)
	require.NoError(t, err)
	defer cleanup()
	assert.Nil(t, g.journal)

	_, ok := g.eng.Catalog().ByID("pick-cloudberries")
	assert.True(t, ok)
	assert.Equal(t, 12, g.eng.Rules().BuildingCost("tent"))
	assert.Equal(t, 20, g.eng.Rules().BuildingCost("storage"))
	assert.Equal(t, 15, g.eng.Profile().Currency)
}

func TestRulesForRejectsUnknownRuleset(t *testing.T) {
	c := config.Default()
	c.Ruleset = "v9"
	_, err := rulesFor(c)
	assert.Error(t, err)
}

func runCmd(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{}, args...))
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return buf.String()
}

func useDB(t *testing.T, ruleset string) {
	t.Helper()
	c := config.Default()
	c.Ruleset = ruleset
	c.StartingCurrency = 100
	c.DBPath = filepath.Join(t.TempDir(), "sami.db")
	useConfig(t, c)
}

func loadProfile(t *testing.T) *profile.Profile {
	t.Helper()
	g, cleanup, err := openGame(context.Background())
	require.NoError(t, err)
	defer cleanup()
	return g.eng.Profile()
}

func TestBuildCommandUsesNormalizedType(t *testing.T) {
	useDB(t, "village")

	out := runCmd(t, newBuildCmd(), "Tent", "--x", "2", "--y", "3")
	assert.Contains(t, out, "Built tent at (2,3) for 10 xp")
	assert.NotContains(t, out, "Tent at")
	assert.Contains(t, out, "Lávvu (Tent)")
	assert.Contains(t, out, "build-tent")
}

func TestVisitCommandMovesPlayerAndShowsLore(t *testing.T) {
	useDB(t, "village")

	out := runCmd(t, newVisitCmd(), quest.LocationLake)
	assert.Contains(t, out, "Ice Fishing")
	assert.Contains(t, out, "ice-fishing")

	p := loadProfile(t)
	assert.Equal(t, profile.PositionAt(8, 2), p.Position)
	assert.Equal(t, []string{quest.LocationLake}, p.LocationsVisited)
}

func TestMeetCommandFirstAndRepeat(t *testing.T) {
	useDB(t, "story")

	assert.Contains(t, runCmd(t, newMeetCmd(), "elder"), "for the first time")
	assert.Contains(t, runCmd(t, newMeetCmd(), "elder"), "again")
	assert.Equal(t, []string{"elder"}, loadProfile(t).CharactersMet)
}

func TestUseCommandUnlocksReindeer(t *testing.T) {
	// The story catalog has no farm objective whose reward would unlock
	// reindeer first.
	useDB(t, "story")

	runCmd(t, newBuildCmd(), "reindeer-farm", "--x", "4", "--y", "4")
	out := runCmd(t, newUseCmd(), "--x", "4", "--y", "4")
	assert.Contains(t, out, "Boazodoallu")
	assert.Contains(t, out, "You can now place")
	assert.True(t, loadProfile(t).IsUnlocked("reindeer"))

	err := func() error {
		cmd := newUseCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"--x", "9", "--y", "9"})
		return cmd.ExecuteContext(context.Background())
	}()
	var empty engine.EmptyCellError
	assert.ErrorAs(t, err, &empty)
}

func TestResetCommandStartsOver(t *testing.T) {
	useDB(t, "story")
	ctx := context.Background()

	g, cleanup, err := openGame(ctx)
	require.NoError(t, err)
	_, err = g.eng.CompleteObjective(ctx, "first-words")
	require.NoError(t, err)
	cleanup()

	cmd := newResetCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	assert.ErrorContains(t, cmd.ExecuteContext(ctx), "--yes")

	out := runCmd(t, newResetCmd(), "--yes")
	assert.Contains(t, out, "sami.profile")
	assert.False(t, loadProfile(t).IsCompleted("first-words"))
}

func TestJournalCommandShowsTotal(t *testing.T) {
	useDB(t, "story")
	ctx := context.Background()

	g, cleanup, err := openGame(ctx)
	require.NoError(t, err)
	for _, id := range []string{"first-words", "gather-the-herd"} {
		_, err = g.eng.CompleteObjective(ctx, id)
		require.NoError(t, err)
	}
	cleanup()

	out := runCmd(t, newJournalCmd(), "-n", "1")
	assert.Contains(t, out, "showing 1 of")
}

func TestStatusWelcomesNewPlayer(t *testing.T) {
	useDB(t, "story")

	out := runCmd(t, newStatusCmd())
	assert.Contains(t, out, "Bures boahtin!")
}
