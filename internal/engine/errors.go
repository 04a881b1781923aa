package engine

import (
	"fmt"
	"strings"
)

// UnknownObjectiveError is returned for ids the player has no objective for.
type UnknownObjectiveError struct {
	ID string
}

func (e UnknownObjectiveError) Error() string {
	return fmt.Sprintf("unknown objective '%s'", e.ID)
}

// ObjectiveCompletedError is returned when starting an objective that is done.
type ObjectiveCompletedError struct {
	ID string
}

func (e ObjectiveCompletedError) Error() string {
	return fmt.Sprintf("objective '%s' is already completed", e.ID)
}

// MissingPrerequisiteError lists the artifacts an objective still needs.
type MissingPrerequisiteError struct {
	ObjectiveID string
	Missing     []string
}

func (e MissingPrerequisiteError) Error() string {
	return fmt.Sprintf("objective '%s' requires artifacts: %s", e.ObjectiveID, strings.Join(e.Missing, ", "))
}

// InsufficientFundsError is returned when a spend exceeds the balance.
// The balance is left unchanged.
type InsufficientFundsError struct {
	Needed int
	Have   int
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("not enough currency: need %d, have %d", e.Needed, e.Have)
}

// InvalidAmountError rejects progress or spend amounts that would move
// state backwards.
type InvalidAmountError struct {
	Amount int
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %d", e.Amount)
}

// OccupiedCellError is returned when a building already stands on a cell.
type OccupiedCellError struct {
	X, Y     int
	Occupant string
}

func (e OccupiedCellError) Error() string {
	return fmt.Sprintf("a %s is already built at (%d,%d)", e.Occupant, e.X, e.Y)
}

// LockedError indicates a decoration type has not been unlocked yet.
type LockedError struct {
	Type string
}

func (e LockedError) Error() string {
	return fmt.Sprintf("decoration '%s' is locked", e.Type)
}

// EmptyCellError is returned when no building stands on a cell.
type EmptyCellError struct {
	X, Y int
}

func (e EmptyCellError) Error() string {
	return fmt.Sprintf("nothing is built at (%d,%d)", e.X, e.Y)
}
