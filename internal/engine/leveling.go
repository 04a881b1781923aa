package engine

import (
	"context"
	"fmt"
	"math"
)

// NextThreshold returns the currency needed for the level after one whose
// threshold was t. The result always grows.
func NextThreshold(t int, multiplier float64) int {
	next := int(math.Floor(float64(t) * multiplier))
	if next <= t {
		next = t + 1
	}
	return next
}

// levelUpLocked converts currency into levels while the balance covers the
// threshold. A single grant can cross several levels.
func (e *Engine) levelUpLocked(b *batch) {
	if !e.rules.Leveling {
		return
	}
	p := e.profile
	if p.LevelThreshold <= 0 {
		p.LevelThreshold = e.rules.LevelThreshold
	}
	for p.Currency >= p.LevelThreshold {
		p.Currency -= p.LevelThreshold
		p.Level++
		p.LevelThreshold = NextThreshold(p.LevelThreshold, e.rules.LevelMultiplier)
		e.log.Info("level up", "level", p.Level, "next", p.LevelThreshold)
		b.emit(Event{
			Kind:  EventLevelUp,
			Level: p.Level,
			Text:  fmt.Sprintf("Level up! You are now level %d", p.Level),
		})
	}
}

// SpendCurrency removes amount from the balance. Overdrawing fails with
// InsufficientFundsError and changes nothing.
func (e *Engine) SpendCurrency(ctx context.Context, amount int) error {
	if amount < 0 {
		return InvalidAmountError{Amount: amount}
	}
	return e.run(ctx, func(b *batch) error {
		if err := e.spendLocked(amount); err != nil {
			return err
		}
		b.dirty = amount > 0
		return nil
	})
}

func (e *Engine) spendLocked(amount int) error {
	p := e.profile
	if amount > p.Currency {
		return InsufficientFundsError{Needed: amount, Have: p.Currency}
	}
	p.Currency -= amount
	return nil
}
