package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
)

type countingPersister struct {
	mu     sync.Mutex
	writes int
	last   *profile.Profile
	err    error
}

func (c *countingPersister) Persist(_ context.Context, p *profile.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++
	c.last = p.Clone()
	return c.err
}

type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) Notify(_ context.Context, ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) count(kind EventKind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, ev := range l.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func newTestEngine(t *testing.T, rules Rules, templates []quest.Template) (*Engine, *countingPersister, *eventLog) {
	t.Helper()
	cat, err := quest.NewCatalog(templates)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	store := &countingPersister{}
	log := &eventLog{}
	e := New(nil, Options{Rules: rules, Catalog: cat, Persister: store, Notifier: log})
	return e, store, log
}

func tentTemplate() quest.Template {
	return quest.Template{
		ID: "build-tent", Kind: quest.KindBuild, Target: "tent", MaxProgress: 1,
		Reward: quest.Reward{Currency: 50}, Chapter: 1,
	}
}

func fishingTemplate() quest.Template {
	return quest.Template{
		ID: "ice-fishing", Kind: quest.KindLocation, Target: "lake", MaxProgress: 3,
		Reward: quest.Reward{Currency: 75, Unlocks: []string{"reindeer", "dog"}}, Location: "lake", Chapter: 1,
	}
}

func objective(t *testing.T, e *Engine, id string) quest.Instance {
	t.Helper()
	for _, o := range e.Objectives() {
		if o.ID == id {
			return o
		}
	}
	t.Fatalf("objective %s not found", id)
	return quest.Instance{}
}

func TestRecordProgressCompletesSingleStepObjective(t *testing.T) {
	e, store, log := newTestEngine(t, ClassicRules(), []quest.Template{tentTemplate()})
	ctx := context.Background()

	res, err := e.RecordProgress(ctx, quest.KindBuild, "tent")
	if err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	if len(res.Completions) != 1 || res.Completions[0].ObjectiveID != "build-tent" {
		t.Fatalf("completions=%+v, want build-tent", res.Completions)
	}

	o := objective(t, e, "build-tent")
	if !o.Completed || o.Progress != 1 {
		t.Fatalf("instance=%+v, want completed at 1", o)
	}
	p := e.Profile()
	if p.Currency != 50 {
		t.Fatalf("currency=%d, want 50", p.Currency)
	}
	if !p.IsCompleted("build-tent") {
		t.Fatalf("completed ids=%v, want build-tent", p.Completed)
	}
	if store.writes != 1 {
		t.Fatalf("writes=%d, want 1", store.writes)
	}
	if got := log.count(EventObjectivesChanged); got != 1 {
		t.Fatalf("objectives-changed=%d, want 1", got)
	}
	if got := log.count(EventRewardGranted); got != 1 {
		t.Fatalf("reward-granted=%d, want 1", got)
	}
}

func TestRecordProgressAccumulatesAndRewardsOnce(t *testing.T) {
	e, _, log := newTestEngine(t, ClassicRules(), []quest.Template{fishingTemplate()})
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		if _, err := e.RecordProgress(ctx, quest.KindLocation, "lake"); err != nil {
			t.Fatalf("RecordProgress #%d: %v", i, err)
		}
		o := objective(t, e, "ice-fishing")
		if o.Progress != i || o.Completed {
			t.Fatalf("after %d: progress=%d completed=%v", i, o.Progress, o.Completed)
		}
	}

	if _, err := e.RecordProgress(ctx, quest.KindLocation, "lake"); err != nil {
		t.Fatalf("RecordProgress #3: %v", err)
	}
	o := objective(t, e, "ice-fishing")
	if o.Progress != 3 || !o.Completed {
		t.Fatalf("after 3: progress=%d completed=%v", o.Progress, o.Completed)
	}

	// A fourth catch must not grant anything.
	res, err := e.RecordProgress(ctx, quest.KindLocation, "lake")
	if err != nil {
		t.Fatalf("RecordProgress #4: %v", err)
	}
	if len(res.Advanced) != 0 {
		t.Fatalf("advanced=%v, want none", res.Advanced)
	}
	if got := log.count(EventRewardGranted); got != 1 {
		t.Fatalf("reward-granted=%d, want 1", got)
	}
	p := e.Profile()
	if p.Currency != 75 || len(p.Unlocked) != 2 {
		t.Fatalf("currency=%d unlocked=%v", p.Currency, p.Unlocked)
	}
}

func TestRecordProgressUnknownTargetIsNoop(t *testing.T) {
	e, store, log := newTestEngine(t, ClassicRules(), []quest.Template{tentTemplate()})

	res, err := e.RecordProgress(context.Background(), quest.KindBuild, "igloo")
	if err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	if len(res.Advanced) != 0 || store.writes != 0 || len(log.events) != 0 {
		t.Fatalf("expected no effect, got res=%+v writes=%d events=%d", res, store.writes, len(log.events))
	}
}

func TestRecordProgressRejectsNonPositiveAmount(t *testing.T) {
	e, _, _ := newTestEngine(t, ClassicRules(), []quest.Template{fishingTemplate()})

	for _, n := range []int{0, -2} {
		_, err := e.RecordProgressN(context.Background(), quest.KindLocation, "lake", n)
		var inv InvalidAmountError
		if !errors.As(err, &inv) {
			t.Fatalf("amount %d: err=%v, want InvalidAmountError", n, err)
		}
	}
	if o := objective(t, e, "ice-fishing"); o.Progress != 0 {
		t.Fatalf("progress=%d, want 0", o.Progress)
	}
}

func TestRecordProgressDiscardsExcess(t *testing.T) {
	e, _, _ := newTestEngine(t, ClassicRules(), []quest.Template{fishingTemplate()})

	if _, err := e.RecordProgressN(context.Background(), quest.KindLocation, "lake", 10); err != nil {
		t.Fatalf("RecordProgressN: %v", err)
	}
	o := objective(t, e, "ice-fishing")
	if o.Progress != o.MaxProgress || !o.Completed {
		t.Fatalf("instance=%+v, want clamped and completed", o)
	}
}

func TestRecordProgressBatchesOneWritePerCall(t *testing.T) {
	a := quest.Template{ID: "a", Kind: quest.KindCollect, Target: "berries", MaxProgress: 2, Chapter: 1}
	b := quest.Template{ID: "b", Kind: quest.KindCollect, Target: "berries", MaxProgress: 1, Chapter: 1}
	e, store, log := newTestEngine(t, ClassicRules(), []quest.Template{a, b})

	res, err := e.RecordProgress(context.Background(), quest.KindCollect, "berries")
	if err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	if len(res.Advanced) != 2 {
		t.Fatalf("advanced=%v, want both", res.Advanced)
	}
	if store.writes != 1 || log.count(EventObjectivesChanged) != 1 {
		t.Fatalf("writes=%d changed=%d, want 1/1", store.writes, log.count(EventObjectivesChanged))
	}
}

func TestSpendCurrencyRejectsOverdraw(t *testing.T) {
	e, store, _ := newTestEngine(t, VillageRules(), quest.VillageTemplates(true))
	ctx := context.Background()
	p := e.Profile()
	p.Currency = 100
	e = New(p, Options{Rules: VillageRules(), Persister: store})

	err := e.SpendCurrency(ctx, 200)
	var funds InsufficientFundsError
	if !errors.As(err, &funds) {
		t.Fatalf("err=%v, want InsufficientFundsError", err)
	}
	if funds.Needed != 200 || funds.Have != 100 {
		t.Fatalf("err=%+v", funds)
	}
	if got := e.Profile().Currency; got != 100 {
		t.Fatalf("currency=%d, want 100", got)
	}
	if len(e.Profile().Buildings) != 0 {
		t.Fatalf("buildings recorded after failed spend")
	}

	if err := e.SpendCurrency(ctx, 40); err != nil {
		t.Fatalf("SpendCurrency: %v", err)
	}
	if got := e.Profile().Currency; got != 60 {
		t.Fatalf("currency=%d, want 60", got)
	}
}

func TestPlaceBuildingChargesCostAndRecordsProgress(t *testing.T) {
	rules := VillageRules()
	rules.BuildingCosts = map[string]int{"storage": 20, "reindeer-farm": 500}
	p := profile.New(quest.MustCatalog(quest.VillageTemplates(true)), profile.Defaults{StartingCurrency: 30})
	e := New(p, Options{Rules: rules})
	ctx := context.Background()

	res, err := e.PlaceBuilding(ctx, profile.Placement{Type: "storage", X: 3, Y: 4})
	if err != nil {
		t.Fatalf("PlaceBuilding: %v", err)
	}
	if len(res.Completions) != 1 || res.Completions[0].ObjectiveID != "build-storage" {
		t.Fatalf("completions=%+v", res.Completions)
	}
	// 30 - 20 + 50 reward
	if got := e.Profile().Currency; got != 60 {
		t.Fatalf("currency=%d, want 60", got)
	}

	_, err = e.PlaceBuilding(ctx, profile.Placement{Type: "tent", X: 3, Y: 4})
	var occupied OccupiedCellError
	if !errors.As(err, &occupied) || occupied.Occupant != "storage" {
		t.Fatalf("err=%v, want OccupiedCellError", err)
	}

	_, err = e.PlaceBuilding(ctx, profile.Placement{Type: "storage", X: 9, Y: 9})
	if err != nil {
		t.Fatalf("second storage: %v", err)
	}
	_, err = e.PlaceBuilding(ctx, profile.Placement{Type: "reindeer-farm", X: 10, Y: 9})
	var funds InsufficientFundsError
	if !errors.As(err, &funds) {
		t.Fatalf("err=%v, want InsufficientFundsError", err)
	}
	if got := len(e.Profile().Buildings); got != 2 {
		t.Fatalf("buildings=%d, want 2", got)
	}
}

func TestPlaceDecorationRequiresUnlock(t *testing.T) {
	e, _, _ := newTestEngine(t, ClassicRules(), quest.VillageTemplates(false))
	ctx := context.Background()

	err := e.PlaceDecoration(ctx, profile.Placement{Type: "tree", X: 1, Y: 1})
	var locked LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("err=%v, want LockedError", err)
	}

	if _, err := e.PlaceBuilding(ctx, profile.Placement{Type: "tent", X: 2, Y: 2}); err != nil {
		t.Fatalf("PlaceBuilding: %v", err)
	}
	if err := e.PlaceDecoration(ctx, profile.Placement{Type: "tree", X: 1, Y: 1}); err != nil {
		t.Fatalf("PlaceDecoration: %v", err)
	}
	if got := len(e.Profile().Decorations); got != 1 {
		t.Fatalf("decorations=%d, want 1", got)
	}
}

func TestCompleteObjectiveTwiceRewardsOnce(t *testing.T) {
	tmpl := quest.Template{
		ID: "first-words", Kind: quest.KindChallenge, Target: string(quest.ChallengeLanguage), MaxProgress: 5,
		Reward:    quest.Reward{Currency: 30, Artifact: "giella-stone"},
		Chapter:   1,
		Challenge: quest.ChallengeLanguage,
	}
	e, store, log := newTestEngine(t, StoryRules(), []quest.Template{tmpl})
	ctx := context.Background()

	first, err := e.CompleteObjective(ctx, "first-words")
	if err != nil {
		t.Fatalf("CompleteObjective: %v", err)
	}
	if first.AlreadyCompleted || !first.ArtifactNew {
		t.Fatalf("first=%+v", first)
	}
	second, err := e.CompleteObjective(ctx, "first-words")
	if err != nil {
		t.Fatalf("CompleteObjective again: %v", err)
	}
	if !second.AlreadyCompleted {
		t.Fatalf("second=%+v, want AlreadyCompleted", second)
	}

	p := e.Profile()
	if p.Currency != 30 || len(p.Artifacts) != 1 || len(p.Completed) != 1 {
		t.Fatalf("currency=%d artifacts=%v completed=%v", p.Currency, p.Artifacts, p.Completed)
	}
	if store.writes != 1 || log.count(EventArtifactUnlocked) != 1 {
		t.Fatalf("writes=%d artifact events=%d", store.writes, log.count(EventArtifactUnlocked))
	}
}

func TestCompleteObjectiveUnknownID(t *testing.T) {
	e, _, _ := newTestEngine(t, ClassicRules(), []quest.Template{tentTemplate()})
	_, err := e.CompleteObjective(context.Background(), "build-igloo")
	var unknown UnknownObjectiveError
	if !errors.As(err, &unknown) || unknown.ID != "build-igloo" {
		t.Fatalf("err=%v, want UnknownObjectiveError", err)
	}
}

func TestLevelingCrossesSeveralLevels(t *testing.T) {
	big := quest.Template{ID: "feast", Kind: quest.KindCollect, Target: "fish", MaxProgress: 1, Reward: quest.Reward{Currency: 300}, Chapter: 1}
	e, _, log := newTestEngine(t, VillageRules(), []quest.Template{big})

	res, err := e.RecordProgress(context.Background(), quest.KindCollect, "fish")
	if err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	// 300 -> level 2 (-100, next 150) -> level 3 (-150, next 225), 50 left.
	p := e.Profile()
	if p.Level != 3 || p.Currency != 50 || p.LevelThreshold != 225 {
		t.Fatalf("level=%d currency=%d threshold=%d", p.Level, p.Currency, p.LevelThreshold)
	}
	if !res.Completions[0].LevelUp || log.count(EventLevelUp) != 2 {
		t.Fatalf("level-up events=%d", log.count(EventLevelUp))
	}
}

func TestNoLevelingWithoutRule(t *testing.T) {
	big := quest.Template{ID: "feast", Kind: quest.KindCollect, Target: "fish", MaxProgress: 1, Reward: quest.Reward{Currency: 300}, Chapter: 1}
	e, _, _ := newTestEngine(t, StoryRules(), []quest.Template{big})

	if _, err := e.RecordProgress(context.Background(), quest.KindCollect, "fish"); err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	if p := e.Profile(); p.Level != 1 || p.Currency != 300 {
		t.Fatalf("level=%d currency=%d", p.Level, p.Currency)
	}
}

func TestNextThresholdAlwaysGrows(t *testing.T) {
	if got := NextThreshold(100, 1.5); got != 150 {
		t.Fatalf("NextThreshold(100)=%d, want 150", got)
	}
	if got := NextThreshold(1, 1.5); got != 2 {
		t.Fatalf("NextThreshold(1)=%d, want 2", got)
	}
}

func TestChapterAdvancesWhenChapterComplete(t *testing.T) {
	e, _, log := newTestEngine(t, StoryRules(), quest.StoryTemplates())
	ctx := context.Background()

	// Chapter 2 challenges are not active yet.
	res, err := e.RecordProgressN(ctx, quest.KindChallenge, string(quest.ChallengeDuodji), 3)
	if err != nil {
		t.Fatalf("RecordProgressN: %v", err)
	}
	if len(res.Advanced) != 0 {
		t.Fatalf("advanced=%v, want none in chapter 1", res.Advanced)
	}

	if _, err := e.CompleteObjective(ctx, "first-words"); err != nil {
		t.Fatalf("complete first-words: %v", err)
	}
	if got := e.Profile().Chapter; got != 1 {
		t.Fatalf("chapter=%d, want 1", got)
	}
	c, err := e.CompleteObjective(ctx, "gather-the-herd")
	if err != nil {
		t.Fatalf("complete gather-the-herd: %v", err)
	}
	if !c.ChapterAdvanced() || len(c.NewObjectives) != 2 {
		t.Fatalf("result=%+v, want chapter 2 with 2 new objectives", c)
	}

	p := e.Profile()
	if p.Chapter != 2 || len(p.Objectives) != 4 {
		t.Fatalf("chapter=%d objectives=%d", p.Chapter, len(p.Objectives))
	}
	if p.StoryProgress != 100*2/7 {
		t.Fatalf("storyProgress=%d", p.StoryProgress)
	}
	if log.count(EventChapterAdvanced) != 1 {
		t.Fatalf("chapter events=%d", log.count(EventChapterAdvanced))
	}

	for _, o := range e.ActiveObjectives() {
		if o.Chapter != 2 {
			t.Fatalf("active objective %s from chapter %d", o.ID, o.Chapter)
		}
	}
}

func TestFinalQuestRequiresArtifacts(t *testing.T) {
	e, _, _ := newTestEngine(t, StoryRules(), quest.StoryTemplates())
	ctx := context.Background()

	for _, id := range []string{"first-words", "gather-the-herd", "duodji-patterns", "voice-of-the-yoik", "keep-the-balance"} {
		if _, err := e.CompleteObjective(ctx, id); err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}
	if got := e.Profile().Chapter; got != 3 {
		t.Fatalf("chapter=%d, want 3", got)
	}

	// The final quest is not in the profile until chapter 4.
	_, err := e.RequestObjectiveStart(ctx, "return-of-the-sun")
	var unknown UnknownObjectiveError
	if !errors.As(err, &unknown) {
		t.Fatalf("err=%v, want UnknownObjectiveError", err)
	}

	if _, err := e.CompleteObjective(ctx, "remember-the-past"); err != nil {
		t.Fatalf("complete remember-the-past: %v", err)
	}
	start, err := e.RequestObjectiveStart(ctx, "return-of-the-sun")
	if err != nil {
		t.Fatalf("RequestObjectiveStart: %v", err)
	}
	if start.Challenge != quest.ChallengeFinal {
		t.Fatalf("challenge=%q", start.Challenge)
	}
	if _, err := e.CompleteObjective(ctx, "return-of-the-sun"); err != nil {
		t.Fatalf("complete final: %v", err)
	}
	p := e.Profile()
	if p.StoryProgress != 100 || p.Chapter != 4 || !p.HasArtifact(quest.ArtifactSunRing) {
		t.Fatalf("storyProgress=%d chapter=%d artifacts=%v", p.StoryProgress, p.Chapter, p.Artifacts)
	}
	if _, err := e.RequestObjectiveStart(ctx, "return-of-the-sun"); !errors.As(err, new(ObjectiveCompletedError)) {
		t.Fatalf("err=%v, want ObjectiveCompletedError", err)
	}
}

func TestRequestStartReportsMissingArtifacts(t *testing.T) {
	final := quest.StoryTemplates()[6]
	final.Chapter = 1
	e, store, _ := newTestEngine(t, StoryRules(), []quest.Template{final})

	_, err := e.RequestObjectiveStart(context.Background(), final.ID)
	var missing MissingPrerequisiteError
	if !errors.As(err, &missing) {
		t.Fatalf("err=%v, want MissingPrerequisiteError", err)
	}
	if len(missing.Missing) != 6 || missing.Missing[0] != quest.ArtifactGiellaStone {
		t.Fatalf("missing=%v", missing.Missing)
	}
	if _, err := e.CompleteObjective(context.Background(), final.ID); !errors.As(err, &missing) {
		t.Fatalf("CompleteObjective err=%v, want MissingPrerequisiteError", err)
	}
	if store.writes != 0 {
		t.Fatalf("writes=%d, want 0", store.writes)
	}
}

func TestVisitReturnsGatedObjectives(t *testing.T) {
	e, store, _ := newTestEngine(t, ClassicRules(), quest.VillageTemplates(false))
	ctx := context.Background()

	got, err := e.Visit(ctx, quest.LocationClassroom)
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("classroom objectives=%d, want 3", len(got))
	}
	if _, err := e.Visit(ctx, quest.LocationClassroom); err != nil {
		t.Fatalf("Visit again: %v", err)
	}
	if store.writes != 1 || len(e.Profile().LocationsVisited) != 1 {
		t.Fatalf("writes=%d visited=%v", store.writes, e.Profile().LocationsVisited)
	}
}

func TestPersistFailureKeepsState(t *testing.T) {
	e, store, _ := newTestEngine(t, ClassicRules(), []quest.Template{tentTemplate()})
	store.err = errors.New("disk full")

	if _, err := e.RecordProgress(context.Background(), quest.KindBuild, "tent"); err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	if !objective(t, e, "build-tent").Completed {
		t.Fatalf("completion rolled back after failed write")
	}
	if err := e.Save(context.Background()); err == nil {
		t.Fatalf("Save: expected error")
	}
}

func TestProfileIsACopy(t *testing.T) {
	e, _, _ := newTestEngine(t, ClassicRules(), []quest.Template{tentTemplate()})
	p := e.Profile()
	p.Objectives[0].Progress = 1
	p.Currency = 999
	if o := objective(t, e, "build-tent"); o.Progress != 0 {
		t.Fatalf("engine state changed through a copy")
	}
}

func TestAchievements(t *testing.T) {
	e, _, _ := newTestEngine(t, ClassicRules(), quest.VillageTemplates(false))
	if _, err := e.PlaceBuilding(context.Background(), profile.Placement{Type: "tent"}); err != nil {
		t.Fatalf("PlaceBuilding: %v", err)
	}
	earned := map[string]bool{}
	for _, a := range e.Achievements() {
		earned[a.ID] = a.Earned
	}
	if !earned["first_steps"] || !earned["first_lavvu"] || earned["herder"] {
		t.Fatalf("earned=%v", earned)
	}
}

func TestRulesFor(t *testing.T) {
	for _, name := range Rulesets() {
		r, err := RulesFor(name)
		if err != nil || r.Name != name {
			t.Fatalf("RulesFor(%q)=%+v, %v", name, r, err)
		}
	}
	if _, err := RulesFor("v9"); err == nil {
		t.Fatalf("expected error for unknown ruleset")
	}
}

func TestGatedObjectiveIgnoresProgressWithoutArtifacts(t *testing.T) {
	final := quest.StoryTemplates()[6]
	final.Chapter = 1
	e, store, _ := newTestEngine(t, StoryRules(), []quest.Template{final})

	res, err := e.RecordProgressN(context.Background(), final.Kind, final.Target, final.MaxProgress)
	if err != nil {
		t.Fatalf("RecordProgressN: %v", err)
	}
	if len(res.Advanced) != 0 || len(res.Completions) != 0 {
		t.Fatalf("result=%+v, want no progress", res)
	}
	if got := objective(t, e, final.ID); got.Progress != 0 || got.Completed {
		t.Fatalf("objective=%+v", got)
	}
	if store.writes != 0 {
		t.Fatalf("writes=%d, want 0", store.writes)
	}
}

func TestNewMovesFinishedProfileIntoNewChapter(t *testing.T) {
	story := quest.StoryTemplates()
	p := profile.New(quest.MustCatalog(story), profile.Defaults{})
	p.Chapter = 4
	p.Objectives = nil
	for _, tmpl := range story {
		inst := tmpl.Instantiate()
		inst.Progress = inst.MaxProgress
		inst.Completed = true
		p.Objectives = append(p.Objectives, inst)
		p.Completed = append(p.Completed, tmpl.ID)
	}

	cat, err := quest.MustCatalog(story).Extend([]quest.Template{{
		ID: "midnight-sun", Title: "Midnight Sun", Kind: quest.KindCollect,
		Target: "cloudberry", MaxProgress: 2, Reward: quest.Reward{Currency: 10}, Chapter: 5,
	}})
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	store := &countingPersister{}
	e := New(p, Options{Rules: StoryRules(), Catalog: cat, Persister: store})
	if got := e.Profile().Chapter; got != 5 {
		t.Fatalf("chapter=%d, want 5", got)
	}
	if store.writes != 0 {
		t.Fatalf("writes=%d, want 0 before any operation", store.writes)
	}

	res, err := e.RecordProgressN(context.Background(), quest.KindCollect, "cloudberry", 2)
	if err != nil {
		t.Fatalf("RecordProgressN: %v", err)
	}
	if len(res.Completions) != 1 || res.Completions[0].ObjectiveID != "midnight-sun" {
		t.Fatalf("completions=%+v", res.Completions)
	}
	if got := e.Profile().StoryProgress; got != 100 {
		t.Fatalf("storyProgress=%d, want 100", got)
	}
}

func TestPlaceBuildingNormalizesTypeAndReportsCost(t *testing.T) {
	p := profile.New(quest.MustCatalog(quest.VillageTemplates(true)), profile.Defaults{StartingCurrency: 100})
	e := New(p, Options{Rules: VillageRules()})

	res, err := e.PlaceBuilding(context.Background(), profile.Placement{Type: " Tent ", X: 1, Y: 1})
	if err != nil {
		t.Fatalf("PlaceBuilding: %v", err)
	}
	if res.Building.Type != "tent" || res.Cost != 10 {
		t.Fatalf("building=%+v cost=%d", res.Building, res.Cost)
	}
	if len(res.Completions) != 1 || res.Completions[0].ObjectiveID != "build-tent" {
		t.Fatalf("completions=%+v", res.Completions)
	}

	free, _, _ := newTestEngine(t, ClassicRules(), quest.VillageTemplates(false))
	res, err = free.PlaceBuilding(context.Background(), profile.Placement{Type: "TENT", X: 1, Y: 1})
	if err != nil {
		t.Fatalf("PlaceBuilding: %v", err)
	}
	if res.Cost != 0 {
		t.Fatalf("cost=%d under free rules", res.Cost)
	}
}

func TestUseReindeerFarmUnlocksReindeerOnce(t *testing.T) {
	e, store, log := newTestEngine(t, ClassicRules(), []quest.Template{tentTemplate()})
	ctx := context.Background()

	if _, err := e.PlaceBuilding(ctx, profile.Placement{Type: "reindeer-farm", X: 4, Y: 4}); err != nil {
		t.Fatalf("PlaceBuilding: %v", err)
	}
	writes := store.writes

	res, err := e.UseBuilding(ctx, 4, 4)
	if err != nil {
		t.Fatalf("UseBuilding: %v", err)
	}
	if len(res.Unlocked) != 1 || res.Unlocked[0] != "reindeer" {
		t.Fatalf("unlocked=%v", res.Unlocked)
	}
	if !e.Profile().IsUnlocked("reindeer") {
		t.Fatal("reindeer not unlocked")
	}
	if store.writes != writes+1 || log.count(EventRewardGranted) != 1 {
		t.Fatalf("writes=%d rewards=%d", store.writes-writes, log.count(EventRewardGranted))
	}

	res, err = e.UseBuilding(ctx, 4, 4)
	if err != nil {
		t.Fatalf("second UseBuilding: %v", err)
	}
	if len(res.Unlocked) != 0 || store.writes != writes+1 {
		t.Fatalf("unlocked=%v writes=%d, want no change", res.Unlocked, store.writes-writes)
	}
	if err := e.PlaceDecoration(ctx, profile.Placement{Type: "reindeer", X: 5, Y: 5}); err != nil {
		t.Fatalf("PlaceDecoration: %v", err)
	}
}

func TestUseEmptyCell(t *testing.T) {
	e, store, _ := newTestEngine(t, ClassicRules(), []quest.Template{tentTemplate()})

	_, err := e.UseBuilding(context.Background(), 7, 7)
	var empty EmptyCellError
	if !errors.As(err, &empty) || empty.X != 7 || empty.Y != 7 {
		t.Fatalf("err=%v, want EmptyCellError", err)
	}
	if store.writes != 0 {
		t.Fatalf("writes=%d, want 0", store.writes)
	}
}
