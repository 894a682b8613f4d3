package draw

import (
	"errors"
	"fmt"
)

// ErrGameIsOver is returned when a round is attempted on a finished game
var ErrGameIsOver = errors.New("game is over")

// ErrNotEnoughSeats is returned when a game is created with fewer than two seats
var ErrNotEnoughSeats = errors.New("need at least two seats")

// ErrRoundInProgress is returned when a round is started before the previous one ended
var ErrRoundInProgress = errors.New("round is already in progress")

// RaiseError is returned when a raise amount violates the table constraints.
// Human decision providers should resolve it by re-prompting; the engine never
// accepts an invalid amount.
type RaiseError struct {
	Amount       int
	Min          int
	Max          int
	Denomination int
}

func (e RaiseError) Error() string {
	switch {
	case e.Amount > e.Max:
		return fmt.Sprintf("you lack funds to bid ${%d} (at most ${%d})", e.Amount, e.Max)
	case e.Amount < e.Min:
		return fmt.Sprintf("you have to bid at least ${%d}", e.Min)
	default:
		return fmt.Sprintf("your bid must be in multiples of ${%d}", e.Denomination)
	}
}
