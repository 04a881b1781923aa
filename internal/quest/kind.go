package quest

import (
	"fmt"
	"strings"
)

// Kind is the event discriminator an objective listens for.
type Kind string

const (
	KindBuild     Kind = "build"
	KindLocation  Kind = "location"
	KindCollect   Kind = "collect"
	KindChallenge Kind = "challenge"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindBuild, KindLocation, KindCollect, KindChallenge:
		return true
	default:
		return false
	}
}

// Kinds lists every objective kind in display order.
func Kinds() []Kind {
	return []Kind{KindBuild, KindLocation, KindCollect, KindChallenge}
}

// ParseKind parses user input to a Kind.
// Supported: build, location (visit, loc), collect (gather), challenge (quest)
func ParseKind(input string) (Kind, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "build":
		return KindBuild, nil
	case "location", "visit", "loc":
		return KindLocation, nil
	case "collect", "gather":
		return KindCollect, nil
	case "challenge", "quest":
		return KindChallenge, nil
	default:
		return "", fmt.Errorf("invalid objective kind: %q", input)
	}
}

// ChallengeType tags the mini-game a story quest launches.
type ChallengeType string

const (
	ChallengeNone          ChallengeType = ""
	ChallengeLanguage      ChallengeType = "language-puzzle"
	ChallengeHerding       ChallengeType = "reindeer-herding"
	ChallengeDuodji        ChallengeType = "duodji-crafting"
	ChallengeYoik          ChallengeType = "yoik-puzzle"
	ChallengeEnvironmental ChallengeType = "environmental-challenge"
	ChallengeTimeline      ChallengeType = "history-timeline"
	ChallengeFinal         ChallengeType = "final-quest"
)

func (c ChallengeType) IsValid() bool {
	switch c {
	case ChallengeLanguage, ChallengeHerding, ChallengeDuodji, ChallengeYoik,
		ChallengeEnvironmental, ChallengeTimeline, ChallengeFinal:
		return true
	default:
		return false
	}
}

// MiniGame tags the presentation-side game a village task launches.
type MiniGame string

const (
	MiniGameNone     MiniGame = ""
	MiniGameFishing  MiniGame = "fishing"
	MiniGameCutting  MiniGame = "cutting"
	MiniGamePainting MiniGame = "painting"
	MiniGameLanguage MiniGame = "language-quiz"
	MiniGameHistory  MiniGame = "history-quiz"
)

func (m MiniGame) IsValid() bool {
	switch m {
	case MiniGameNone, MiniGameFishing, MiniGameCutting, MiniGamePainting, MiniGameLanguage, MiniGameHistory:
		return true
	default:
		return false
	}
}
