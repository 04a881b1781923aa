package minigame

import (
	"math/rand"
	"time"
)

const (
	FishMinDelay   = 1 * time.Second
	FishMaxDelay   = 3 * time.Second
	FishVisibleFor = 1500 * time.Millisecond
)

type FishingState int

const (
	FishingIdle FishingState = iota
	FishingFishVisible
	FishingCaught
	FishingMissed
)

func (s FishingState) String() string {
	switch s {
	case FishingIdle:
		return "idle"
	case FishingFishVisible:
		return "fish-visible"
	case FishingCaught:
		return "caught"
	case FishingMissed:
		return "missed"
	default:
		return "unknown"
	}
}

// Fishing is the ice-fishing game: a fish shows in the hole after a random
// delay and stays for FishVisibleFor. Time only moves through Tick, so a
// seeded source and simulated durations make a run reproducible.
type Fishing struct {
	rng    *rand.Rand
	state  FishingState
	wait   time.Duration
	caught int
	target int
}

// NewFishing starts a round for an objective that already has caught
// fish out of target.
func NewFishing(rng *rand.Rand, caught, target int) *Fishing {
	f := &Fishing{rng: rng, caught: caught, target: target}
	f.wait = f.nextDelay()
	return f
}

func (f *Fishing) nextDelay() time.Duration {
	span := int64(FishMaxDelay - FishMinDelay)
	return FishMinDelay + time.Duration(f.rng.Int63n(span+1))
}

func (f *Fishing) State() FishingState { return f.state }
func (f *Fishing) Caught() int         { return f.caught }
func (f *Fishing) Target() int         { return f.target }
func (f *Fishing) Done() bool          { return f.caught >= f.target }

// Tick advances the game clock by dt. Caught and missed are shown for one
// tick before the next fish is scheduled.
func (f *Fishing) Tick(dt time.Duration) {
	for dt > 0 && !f.Done() {
		switch f.state {
		case FishingCaught, FishingMissed:
			f.state = FishingIdle
			f.wait = f.nextDelay()
		case FishingIdle:
			if dt < f.wait {
				f.wait -= dt
				return
			}
			dt -= f.wait
			f.state = FishingFishVisible
			f.wait = FishVisibleFor
		case FishingFishVisible:
			if dt < f.wait {
				f.wait -= dt
				return
			}
			f.state = FishingMissed
			f.wait = 0
			return
		}
	}
}

// Catch tries to catch the fish. It reports true only while a fish is
// visible; the caller records one unit of progress per catch.
func (f *Fishing) Catch() bool {
	if f.state != FishingFishVisible || f.Done() {
		return false
	}
	f.caught++
	f.state = FishingCaught
	f.wait = 0
	return true
}
