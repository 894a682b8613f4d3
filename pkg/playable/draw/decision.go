package draw

import (
	"drawpoker/pkg/deck"
	"drawpoker/pkg/poker"
)

// TurnView is a read-only projection of the table visible to a decision
// provider when it's the seat's turn
type TurnView struct {
	Name           string
	Hand           deck.Hand
	Rank           *poker.Result
	Balance        int
	Contributed    int
	CurrentBid     int
	Pool           int
	MinRaise       int
	Denomination   int
	DidRaise       bool
	Aggressiveness float64
}

// DecisionProvider chooses a betting action for a seat.
// The call may block (a human thinking at the terminal); the engine makes no
// assumption about how long it takes. The provider must return one of
// Fold, Call, Check, Bet or Raise.
type DecisionProvider interface {
	Decide(view TurnView) (Decision, error)
}

// ReplacementProvider chooses which cards (0–4, by hand index) to discard
// during the one-time replacement phase
type ReplacementProvider interface {
	Replace(view TurnView) ([]int, error)
}

// ValidateRaise checks a raise-to amount against the table constraints:
// at least the minimum raise, at most the seat's total funds, and a multiple
// of the denomination. Human providers should call this before returning and
// re-prompt on a RaiseError.
func ValidateRaise(view TurnView, amount int) error {
	max := view.Contributed + view.Balance
	if amount < view.MinRaise || amount > max || amount%view.Denomination > 0 {
		return RaiseError{
			Amount:       amount,
			Min:          view.MinRaise,
			Max:          max,
			Denomination: view.Denomination,
		}
	}

	return nil
}
