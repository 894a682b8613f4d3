package draw

import (
	"fmt"
)

// Action represents a betting action a player can take
type Action string

// action constants
const (
	Check Action = "check"
	Bet   Action = "bet"
	Call  Action = "call"
	Raise Action = "raise"
	Fold  Action = "fold"
)

var allowedActions = map[Action]bool{
	Check: true,
	Bet:   true,
	Call:  true,
	Raise: true,
	Fold:  true,
}

// FromString returns an action for the given string
func FromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Check:
		return "Check"
	case Bet:
		return "Bet"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	case Fold:
		return "Fold"
	}

	panic("unknown action")
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case Check:
		return "checked"
	case Bet:
		return fmt.Sprintf("bet ${%d}", amount)
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised to ${%d}", amount)
	case Fold:
		return "folded"
	}

	panic("unknown action")
}

// Decision is a single betting choice returned by a decision provider.
// Amount is the raise-to value and only meaningful for Bet and Raise.
type Decision struct {
	Action Action
	Amount int
}
