package quest

// Location ids shared by templates and the presentation layer.
const (
	LocationLake      = "lake"
	LocationKitchen   = "kitchen"
	LocationClassroom = "classroom"
	LocationSiida     = "siida"
	LocationForest    = "forest"
	LocationFjell     = "fjell"
	LocationMuseum    = "museum"
	LocationSacred    = "sieidi"
)

// Location is a named place on the road network.
type Location struct {
	ID    string
	Name  string
	GridX int
	GridY int
}

// Locations returns the built-in map locations, placed at road ends.
func Locations() []Location {
	return []Location{
		{ID: LocationLake, Name: "Lake", GridX: 8, GridY: 2},
		{ID: LocationKitchen, Name: "Kitchen Area", GridX: 15, GridY: 8},
		{ID: LocationClassroom, Name: "Classroom", GridX: 1, GridY: 8},
		{ID: LocationSiida, Name: "Siida Camp", GridX: 8, GridY: 14},
		{ID: LocationForest, Name: "Birch Forest", GridX: 3, GridY: 3},
		{ID: LocationFjell, Name: "Fjell Pasture", GridX: 13, GridY: 3},
		{ID: LocationMuseum, Name: "Museum", GridX: 13, GridY: 13},
		{ID: LocationSacred, Name: "Sieidi Stone", GridX: 3, GridY: 13},
	}
}

// LocationByID looks up a built-in location.
func LocationByID(id string) (Location, bool) {
	for _, l := range Locations() {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}

// LocationName returns the display name for a location id.
func LocationName(id string) string {
	if l, ok := LocationByID(id); ok {
		return l.Name
	}
	return id
}

// Decoration is an unlockable placeable item.
type Decoration struct {
	ID    string
	Name  string
	Emoji string
}

var decorations = []Decoration{
	{ID: "building-small", Name: "Small Building", Emoji: "🏠"},
	{ID: "building-large", Name: "Large Building", Emoji: "🏛️"},
	{ID: "dog", Name: "Dog", Emoji: "🐕"},
	{ID: "reindeer", Name: "Reindeer", Emoji: "🦌"},
	{ID: "human", Name: "Person", Emoji: "👤"},
	{ID: "tree", Name: "Tree", Emoji: "🌲"},
	{ID: "fire", Name: "Campfire", Emoji: "🔥"},
}

// Decorations returns the built-in decoration types.
func Decorations() []Decoration {
	out := make([]Decoration, len(decorations))
	copy(out, decorations)
	return out
}

// DecorationByID looks up a decoration type.
func DecorationByID(id string) (Decoration, bool) {
	for _, d := range decorations {
		if d.ID == id {
			return d, true
		}
	}
	return Decoration{}, false
}

// VillageTemplates returns the task-model objectives (game versions 1-3).
// withXP adds the currency rewards used by the leveling ruleset.
func VillageTemplates(withXP bool) []Template {
	xp := func(n int) int {
		if withXP {
			return n
		}
		return 0
	}
	return []Template{
		{
			ID:          "build-tent",
			Title:       "Build Your First Lávvu",
			Description: "Build a traditional Sámi tent (lávvu) to learn about Sámi housing.",
			SamiWord:    "Lávvu",
			Kind:        KindBuild,
			Target:      "tent",
			MaxProgress: 1,
			Reward:      Reward{Currency: xp(50), Unlocks: []string{"building-small", "tree"}},
			Chapter:     1,
		},
		{
			ID:          "ice-fishing",
			Title:       "Go Ice Fishing",
			Description: "Go to the lake and catch fish through the ice.",
			SamiWord:    "Jiekŋaguollevuohta",
			Kind:        KindLocation,
			Target:      LocationLake,
			MaxProgress: 3,
			Reward:      Reward{Currency: xp(75), Unlocks: []string{"reindeer", "dog"}},
			Location:    LocationLake,
			Chapter:     1,
			MiniGame:    MiniGameFishing,
		},
		{
			ID:          "make-bidos",
			Title:       "Make Bidos (Traditional Stew)",
			Description: "Go to the kitchen area and prepare bidos by cutting vegetables.",
			SamiWord:    "Bidos",
			Kind:        KindLocation,
			Target:      LocationKitchen,
			MaxProgress: 5,
			Reward:      Reward{Currency: xp(75), Unlocks: []string{"building-small", "fire"}},
			Location:    LocationKitchen,
			Chapter:     1,
			MiniGame:    MiniGameCutting,
		},
		{
			ID:          "paint",
			Title:       "Paint Traditional Art",
			Description: "Go to the classroom and create traditional Sámi art.",
			SamiWord:    "Dáidda",
			Kind:        KindLocation,
			Target:      "painting",
			MaxProgress: 1,
			Reward:      Reward{Currency: xp(40), Unlocks: []string{"human", "tree"}},
			Location:    LocationClassroom,
			Chapter:     1,
			MiniGame:    MiniGamePainting,
		},
		{
			ID:          "language-quiz",
			Title:       "Learn Sámi Language",
			Description: "Go to the classroom and take a quiz to learn Sámi words.",
			SamiWord:    "Giella",
			Kind:        KindLocation,
			Target:      "language-quiz",
			MaxProgress: 5,
			Reward:      Reward{Currency: xp(100), Unlocks: []string{"building-small", "dog"}},
			Location:    LocationClassroom,
			Chapter:     1,
			MiniGame:    MiniGameLanguage,
		},
		{
			ID:          "history-quiz",
			Title:       "Learn Sámi History",
			Description: "Go to the classroom and take a quiz about Sámi history.",
			SamiWord:    "Historia",
			Kind:        KindLocation,
			Target:      "history-quiz",
			MaxProgress: 5,
			Reward:      Reward{Currency: xp(100), Unlocks: []string{"building-large", "reindeer"}},
			Location:    LocationClassroom,
			Chapter:     1,
			MiniGame:    MiniGameHistory,
		},
		{
			ID:          "build-storage",
			Title:       "Create Storage",
			Description: "Build a gárdi (storage) to store your supplies.",
			SamiWord:    "Gárdi",
			Kind:        KindBuild,
			Target:      "storage",
			MaxProgress: 1,
			Reward:      Reward{Currency: xp(50), Unlocks: []string{"building-small", "fire"}},
			Chapter:     1,
		},
		{
			ID:          "build-farm",
			Title:       "Start Reindeer Herding",
			Description: "Build a reindeer farm (boazodoallu) to begin your reindeer herd.",
			SamiWord:    "Boazodoallu",
			Kind:        KindBuild,
			Target:      "reindeer-farm",
			MaxProgress: 1,
			Reward:      Reward{Currency: xp(120), Unlocks: []string{"reindeer", "reindeer", "building-large"}},
			Chapter:     1,
		},
	}
}

// Artifacts granted by the story quests.
const (
	ArtifactGiellaStone  = "giella-stone"
	ArtifactHerdersLasso = "herders-lasso"
	ArtifactDuodjiKnife  = "duodji-knife"
	ArtifactGoavddis     = "goavddis-drum"
	ArtifactBirchSeed    = "birch-seed"
	ArtifactSiidaMap     = "siida-map"
	ArtifactSunRing      = "beaivi-ring"
)

// StoryTemplates returns the chapter-gated quest model (game version 4).
func StoryTemplates() []Template {
	return []Template{
		{
			ID:          "first-words",
			Title:       "First Words",
			Description: "Help the elder at the siida match Sámi words with their meanings.",
			SamiWord:    "Giella",
			Kind:        KindChallenge,
			Target:      string(ChallengeLanguage),
			MaxProgress: 5,
			Reward:      Reward{Currency: 30, Unlocks: []string{"human"}, Artifact: ArtifactGiellaStone},
			Location:    LocationSiida,
			Chapter:     1,
			Challenge:   ChallengeLanguage,
		},
		{
			ID:          "gather-the-herd",
			Title:       "Gather the Herd",
			Description: "Guide scattered reindeer back to the corral on the fjell.",
			SamiWord:    "Boazu",
			Kind:        KindChallenge,
			Target:      string(ChallengeHerding),
			MaxProgress: 8,
			Reward:      Reward{Currency: 40, Unlocks: []string{"reindeer"}, Artifact: ArtifactHerdersLasso},
			Location:    LocationFjell,
			Chapter:     1,
			Challenge:   ChallengeHerding,
		},
		{
			ID:          "duodji-patterns",
			Title:       "Duodji Patterns",
			Description: "Recreate a traditional pattern on a gákti band.",
			SamiWord:    "Duodji",
			Kind:        KindChallenge,
			Target:      string(ChallengeDuodji),
			MaxProgress: 3,
			Reward:      Reward{Currency: 50, Unlocks: []string{"building-small"}, Artifact: ArtifactDuodjiKnife},
			Location:    LocationSiida,
			Chapter:     2,
			Challenge:   ChallengeDuodji,
		},
		{
			ID:          "voice-of-the-yoik",
			Title:       "Voice of the Yoik",
			Description: "Arrange the rhythm of a yoik so it honours the person it describes.",
			SamiWord:    "Luohti",
			Kind:        KindChallenge,
			Target:      string(ChallengeYoik),
			MaxProgress: 4,
			Reward:      Reward{Currency: 50, Unlocks: []string{"fire"}, Artifact: ArtifactGoavddis},
			Location:    LocationSacred,
			Chapter:     2,
			Challenge:   ChallengeYoik,
		},
		{
			ID:          "keep-the-balance",
			Title:       "Keep the Balance",
			Description: "Balance grazing, forest and water so the land stays healthy.",
			SamiWord:    "Luondu",
			Kind:        KindChallenge,
			Target:      string(ChallengeEnvironmental),
			MaxProgress: 3,
			Reward:      Reward{Currency: 60, Unlocks: []string{"tree", "dog"}, Artifact: ArtifactBirchSeed},
			Location:    LocationForest,
			Chapter:     3,
			Challenge:   ChallengeEnvironmental,
		},
		{
			ID:          "remember-the-past",
			Title:       "Remember the Past",
			Description: "Place events of Sámi history in the right order on the museum timeline.",
			SamiWord:    "Historjá",
			Kind:        KindChallenge,
			Target:      string(ChallengeTimeline),
			MaxProgress: 6,
			Reward:      Reward{Currency: 60, Unlocks: []string{"building-large"}, Artifact: ArtifactSiidaMap},
			Location:    LocationMuseum,
			Chapter:     3,
			Challenge:   ChallengeTimeline,
		},
		{
			ID:          "return-of-the-sun",
			Title:       "Return of the Sun",
			Description: "Bring every artifact to the sieidi stone and welcome the sun back after the polar night.",
			SamiWord:    "Beaivi",
			Kind:        KindChallenge,
			Target:      string(ChallengeFinal),
			MaxProgress: 1,
			Reward:      Reward{Currency: 150, Artifact: ArtifactSunRing},
			Location:    LocationSacred,
			RequiresArtifacts: []string{
				ArtifactGiellaStone, ArtifactHerdersLasso, ArtifactDuodjiKnife,
				ArtifactGoavddis, ArtifactBirchSeed, ArtifactSiidaMap,
			},
			Chapter:   4,
			Challenge: ChallengeFinal,
		},
	}
}
