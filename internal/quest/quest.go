package quest

import "encoding/json"

// Reward is the payload granted when an objective completes. Every game
// version's reward vocabulary decodes into this one shape.
type Reward struct {
	Currency int      `json:"currency" yaml:"currency"`
	Unlocks  []string `json:"unlocks" yaml:"unlocks"`
	Artifact string   `json:"artifact" yaml:"artifact"`
}

// UnmarshalJSON accepts the historical reward shapes:
// {decorations: [...]}, {xp, reindeer} and {tokens, artifact}.
func (r *Reward) UnmarshalJSON(data []byte) error {
	var raw struct {
		Currency    *int     `json:"currency"`
		Tokens      *int     `json:"tokens"`
		XP          *int     `json:"xp"`
		Reindeer    *int     `json:"reindeer"`
		Unlocks     []string `json:"unlocks"`
		Decorations []string `json:"decorations"`
		Artifact    string   `json:"artifact"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := Reward{Artifact: raw.Artifact}
	for _, v := range []*int{raw.Currency, raw.Tokens, raw.XP, raw.Reindeer} {
		if v != nil {
			out.Currency = *v
			break
		}
	}
	switch {
	case raw.Unlocks != nil:
		out.Unlocks = cloneStrings(raw.Unlocks)
	default:
		out.Unlocks = cloneStrings(raw.Decorations)
	}
	*r = out
	return nil
}

// IsEmpty reports whether the reward grants nothing.
func (r Reward) IsEmpty() bool {
	return r.Currency == 0 && len(r.Unlocks) == 0 && r.Artifact == ""
}

// Clone returns a deep copy of the reward.
func (r Reward) Clone() Reward {
	return Reward{
		Currency: r.Currency,
		Unlocks:  cloneStrings(r.Unlocks),
		Artifact: r.Artifact,
	}
}

// Template is a catalog-defined objective. Templates are never mutated;
// players get Instances copied from them.
type Template struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	SamiWord    string `json:"samiWord" yaml:"sami_word"`

	Kind        Kind   `json:"type" yaml:"kind"`
	Target      string `json:"target" yaml:"target"`
	MaxProgress int    `json:"maxProgress" yaml:"max_progress"`
	Reward      Reward `json:"reward" yaml:"reward"`

	Location          string   `json:"location" yaml:"location"`
	RequiresArtifacts []string `json:"requiresArtifacts" yaml:"requires_artifacts"`
	Chapter           int      `json:"chapter" yaml:"chapter"`

	Challenge ChallengeType `json:"challengeType" yaml:"challenge_type"`
	MiniGame  MiniGame      `json:"miniGame" yaml:"mini_game"`
}

// Clone returns a deep copy of the template.
func (t Template) Clone() Template {
	out := t
	out.Reward = t.Reward.Clone()
	out.RequiresArtifacts = cloneStrings(t.RequiresArtifacts)
	return out
}

// Instantiate returns a fresh, independent instance at progress 0.
func (t Template) Instantiate() Instance {
	return Instance{Template: t.Clone()}
}

// Instance is a player's mutable copy of a template.
type Instance struct {
	Template
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}

// Clone returns a deep copy of the instance.
func (i Instance) Clone() Instance {
	return Instance{
		Template:  i.Template.Clone(),
		Progress:  i.Progress,
		Completed: i.Completed,
	}
}

// Matches reports whether an event of kind/target advances this instance.
func (i Instance) Matches(kind Kind, target string) bool {
	return !i.Completed && i.Kind == kind && i.Target == target
}

// Remaining is the progress still needed to complete the instance.
func (i Instance) Remaining() int {
	if i.Completed || i.Progress >= i.MaxProgress {
		return 0
	}
	return i.MaxProgress - i.Progress
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
