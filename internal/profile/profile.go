package profile

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/JohanGylseth/SAMI/internal/quest"
)

const (
	DefaultLevelThreshold = 100
	// GridSize is the pixel size of one map cell.
	GridSize = 50
)

// Position is the player's last known map position. The core stores it
// and never interprets it.
type Position struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	GridX int     `json:"gridX"`
	GridY int     `json:"gridY"`
}

// PositionAt returns the position at the centre of a grid cell.
func PositionAt(gridX, gridY int) Position {
	return Position{
		X:     float64(gridX*GridSize + GridSize/2),
		Y:     float64(gridY*GridSize + GridSize/2),
		GridX: gridX,
		GridY: gridY,
	}
}

// Placement is a building or decoration on the village grid.
type Placement struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Profile is the persisted player state. The engine is its only mutator.
type Profile struct {
	Level          int
	Chapter        int
	Currency       int
	LevelThreshold int

	Unlocked  []string
	Artifacts []string

	Objectives []quest.Instance
	Completed  []string

	Position         Position
	StoryProgress    int
	CharactersMet    []string
	LocationsVisited []string

	Buildings   []Placement
	Decorations []Placement

	SavedAt time.Time
}

// Defaults are the ruleset values a fresh profile starts from.
type Defaults struct {
	StartingCurrency int
	LevelThreshold   int
}

// Empty returns a profile with every collection present and no objectives.
func Empty(d Defaults) *Profile {
	threshold := d.LevelThreshold
	if threshold <= 0 {
		threshold = DefaultLevelThreshold
	}
	currency := d.StartingCurrency
	if currency < 0 {
		currency = 0
	}
	return &Profile{
		Level:            1,
		Chapter:          1,
		Currency:         currency,
		LevelThreshold:   threshold,
		Unlocked:         []string{},
		Artifacts:        []string{},
		Objectives:       []quest.Instance{},
		Completed:        []string{},
		CharactersMet:    []string{},
		LocationsVisited: []string{},
		Buildings:        []Placement{},
		Decorations:      []Placement{},
	}
}

// New returns a fresh profile holding an instance of every chapter-1 template.
func New(cat *quest.Catalog, d Defaults) *Profile {
	p := Empty(d)
	for _, t := range cat.ByChapter(1) {
		p.Objectives = append(p.Objectives, t.Instantiate())
	}
	return p
}

// Clone returns a deep copy.
func (p *Profile) Clone() *Profile {
	out := *p
	out.Unlocked = cloneStrings(p.Unlocked)
	out.Artifacts = cloneStrings(p.Artifacts)
	out.Completed = cloneStrings(p.Completed)
	out.CharactersMet = cloneStrings(p.CharactersMet)
	out.LocationsVisited = cloneStrings(p.LocationsVisited)
	out.Objectives = make([]quest.Instance, len(p.Objectives))
	for i, o := range p.Objectives {
		out.Objectives[i] = o.Clone()
	}
	out.Buildings = append([]Placement{}, p.Buildings...)
	out.Decorations = append([]Placement{}, p.Decorations...)
	return &out
}

// Objective returns the index of the instance with id, or -1.
func (p *Profile) Objective(id string) int {
	for i := range p.Objectives {
		if p.Objectives[i].ID == id {
			return i
		}
	}
	return -1
}

func (p *Profile) HasObjective(id string) bool { return p.Objective(id) >= 0 }
func (p *Profile) IsCompleted(id string) bool  { return Contains(p.Completed, id) }
func (p *Profile) HasArtifact(id string) bool  { return Contains(p.Artifacts, id) }
func (p *Profile) IsUnlocked(id string) bool   { return Contains(p.Unlocked, id) }

// MissingArtifacts lists required artifacts the player does not hold, in
// the order they are required.
func (p *Profile) MissingArtifacts(required []string) []string {
	if len(required) == 0 {
		return nil
	}
	held := setOf(p.Artifacts)
	var missing []string
	for _, a := range required {
		if !held.Has(a) {
			missing = append(missing, a)
		}
	}
	return missing
}

// ChapterDone reports whether every catalog template of chapter has been
// completed. A chapter without templates is done.
func (p *Profile) ChapterDone(cat *quest.Catalog, chapter int) bool {
	done := setOf(p.Completed)
	for _, t := range cat.ByChapter(chapter) {
		if !done.Has(t.ID) {
			return false
		}
	}
	return true
}

// AdvanceChapter moves into the next chapter when the current one is
// finished and instantiates the new chapter's templates that the player
// has neither seen nor completed. It reports the ids added and whether
// the chapter changed.
func (p *Profile) AdvanceChapter(cat *quest.Catalog) ([]string, bool) {
	if p.Chapter >= cat.MaxChapter() || !p.ChapterDone(cat, p.Chapter) {
		return nil, false
	}
	p.Chapter++
	var added []string
	for _, t := range cat.ByChapter(p.Chapter) {
		if p.HasObjective(t.ID) || p.IsCompleted(t.ID) {
			continue
		}
		p.Objectives = append(p.Objectives, t.Instantiate())
		added = append(added, t.ID)
	}
	return added, true
}

// BuildingAt returns the building occupying a grid cell.
func (p *Profile) BuildingAt(x, y int) (Placement, bool) {
	for _, b := range p.Buildings {
		if b.X == x && b.Y == y {
			return b, true
		}
	}
	return Placement{}, false
}

// Contains reports whether list holds v.
func Contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// AddUnique appends v when absent and reports whether it was added.
func AddUnique(list *[]string, v string) bool {
	if Contains(*list, v) {
		return false
	}
	*list = append(*list, v)
	return true
}

// Dedupe drops repeated entries, keeping first occurrences in order.
func Dedupe(list []string) []string {
	seen := mapset.New[string]()
	out := make([]string, 0, len(list))
	for _, s := range list {
		if seen.Has(s) {
			continue
		}
		seen.Put(s)
		out = append(out, s)
	}
	return out
}

func setOf(list []string) mapset.Set[string] {
	return mapset.Of(list...)
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
