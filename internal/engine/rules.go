package engine

import (
	"fmt"
	"strings"

	"github.com/JohanGylseth/SAMI/internal/quest"
)

const (
	RulesetClassic = "classic"
	RulesetVillage = "village"
	RulesetStory   = "story"

	DefaultLevelThreshold  = 100
	DefaultLevelMultiplier = 1.5
)

// Rules is the version-specific rule combination the engine runs under.
type Rules struct {
	Name            string
	CurrencyName    string
	Leveling        bool
	LevelThreshold  int
	LevelMultiplier float64
	Chapters        bool
	BuildingCosts   map[string]int
}

// DefaultBuildingCosts are the village ruleset's construction prices.
func DefaultBuildingCosts() map[string]int {
	return map[string]int{
		"tent":          10,
		"storage":       20,
		"reindeer-farm": 40,
	}
}

func ClassicRules() Rules {
	return Rules{
		Name:           RulesetClassic,
		LevelThreshold: DefaultLevelThreshold,
	}
}

func VillageRules() Rules {
	return Rules{
		Name:            RulesetVillage,
		CurrencyName:    "xp",
		Leveling:        true,
		LevelThreshold:  DefaultLevelThreshold,
		LevelMultiplier: DefaultLevelMultiplier,
		BuildingCosts:   DefaultBuildingCosts(),
	}
}

func StoryRules() Rules {
	return Rules{
		Name:           RulesetStory,
		CurrencyName:   "cultural tokens",
		LevelThreshold: DefaultLevelThreshold,
		Chapters:       true,
	}
}

// RulesFor returns the named ruleset.
func RulesFor(name string) (Rules, error) {
	switch strings.TrimSpace(strings.ToLower(name)) {
	case RulesetClassic, "v1":
		return ClassicRules(), nil
	case RulesetVillage, "v2", "v3":
		return VillageRules(), nil
	case RulesetStory, "v4", "":
		return StoryRules(), nil
	default:
		return Rules{}, fmt.Errorf("unknown ruleset: %q", name)
	}
}

// Rulesets lists the known ruleset names.
func Rulesets() []string {
	return []string{RulesetClassic, RulesetVillage, RulesetStory}
}

// Templates returns the built-in catalog content for the ruleset.
func (r Rules) Templates() []quest.Template {
	switch r.Name {
	case RulesetClassic:
		return quest.VillageTemplates(false)
	case RulesetVillage:
		return quest.VillageTemplates(true)
	default:
		return quest.StoryTemplates()
	}
}

// BuildingCost returns the price of a building type, 0 when free.
func (r Rules) BuildingCost(buildingType string) int {
	if r.BuildingCosts == nil {
		return 0
	}
	return r.BuildingCosts[buildingType]
}
