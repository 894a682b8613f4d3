package draw

import (
	"errors"
	"fmt"
)

// Options configures how five-card draw is played
type Options struct {
	// StartingBalance is the money each seat begins the game with
	StartingBalance int

	// Ante is the base entry fee; round N charges N antes
	Ante int

	// Denomination is the minimum currency increment for human bets
	Denomination int

	// FirstBetFloor is the minimum amount for an opening bet
	FirstBetFloor int

	// Seed makes the whole game deterministic when non-zero
	Seed int64
}

// DefaultOptions returns the default options for five-card draw
func DefaultOptions() Options {
	return Options{
		StartingBalance: 10000,
		Ante:            50,
		Denomination:    10,
		FirstBetFloor:   100,
	}
}

func validateOptions(opts Options) error {
	if opts.StartingBalance <= 0 {
		return errors.New("starting balance must be greater than zero")
	}

	if opts.Ante <= 0 {
		return errors.New("ante must be greater than zero")
	}

	if opts.Denomination <= 0 {
		return errors.New("denomination must be greater than zero")
	}

	if opts.FirstBetFloor%opts.Denomination > 0 {
		return fmt.Errorf("first bet floor must be in multiples of ${%d}", opts.Denomination)
	}

	if opts.Ante > opts.StartingBalance {
		return errors.New("ante must not exceed the starting balance")
	}

	return nil
}
