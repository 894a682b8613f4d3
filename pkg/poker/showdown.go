package poker

import (
	"errors"

	"drawpoker/pkg/deck"
)

// ErrNoEligiblePlayers is an error when a showdown is attempted with no hands
var ErrNoEligiblePlayers = errors.New("no eligible hands in showdown")

// Showdown returns the index of the winning result.
//
// The strongest category on the table selects the contenders; ties within that
// category are resolved with Beats, keeping a running best from the first
// contender. When two hands are genuinely equal after every tie-break, the
// first-encountered contender wins (there is no split pot).
func Showdown(results []*Result) (int, error) {
	if len(results) == 0 {
		return 0, ErrNoEligiblePlayers
	}

	if len(results) == 1 {
		return 0, nil
	}

	best := results[0].Category
	for _, r := range results[1:] {
		if r.Category > best {
			best = r.Category
		}
	}

	winner := -1
	for i, r := range results {
		if r.Category != best {
			continue
		}

		if winner < 0 || r.Beats(results[winner]) {
			winner = i
		}
	}

	return winner, nil
}

// Beats returns true if r strictly beats other.
// For equal categories the category-specific tie-break rules apply; equal hands
// do not beat each other.
//
// The ace sorts low for sequences but wins tie-breaks: an ace kicker beats a
// king kicker, a pair of aces beats a pair of kings. Straights are the
// exception and compare on the sequence top, so A-2-3-4-5 stays the weakest
// straight.
func (r *Result) Beats(other *Result) bool {
	if r.Category != other.Category {
		return r.Category > other.Category
	}

	switch r.Category {
	case HighCard, OnePair:
		if cmp := r.highestMatched() - other.highestMatched(); cmp != 0 {
			return cmp > 0
		}

		return compareHighestFirst(r.Kickers, other.Kickers) > 0

	case TwoPairs:
		rHigh, rLow := pairRanks(r.Cards)
		oHigh, oLow := pairRanks(other.Cards)

		if cmp := rHigh - oHigh; cmp != 0 {
			return cmp > 0
		}

		if cmp := rLow - oLow; cmp != 0 {
			return cmp > 0
		}

		return compareHighestFirst(r.Kickers, other.Kickers) > 0

	case Flush:
		return compareHighestFirst(highestFirst(r.Cards), highestFirst(other.Cards)) > 0

	case Straight, StraightFlush:
		// the sequence top; the ace can only ever lead the lowest straight
		return r.Cards.LastCard().Rank > other.Cards.LastCard().Rank

	default:
		// trips, quads and full houses cannot tie on the matched subset in a
		// single-deck game
		return r.highestMatched() > other.highestMatched()
	}
}

// tieBreakRank maps a card rank to its comparison value: the ace wins
// tie-breaks even though it sorts low for sequences
func tieBreakRank(rank int) int {
	if rank == deck.Ace {
		return deck.King + 1
	}

	return rank
}

// highestMatched returns the best tie-break value in the matched subset
func (r *Result) highestMatched() int {
	best := 0
	for _, card := range r.Cards {
		if v := tieBreakRank(card.Rank); v > best {
			best = v
		}
	}

	return best
}

// pairRanks returns the tie-break values of the two pairs, higher pair first.
// The matched cards hold the lower-sorting pair in the first two positions.
func pairRanks(cards deck.Hand) (int, int) {
	a := tieBreakRank(cards[0].Rank)
	b := tieBreakRank(cards[3].Rank)
	if a > b {
		return a, b
	}

	return b, a
}

// compareHighestFirst walks two highest-first card lists and returns the sign
// of the first tie-break difference, or 0 if the lists match rank for rank
func compareHighestFirst(a, b deck.Hand) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if cmp := tieBreakRank(a[i].Rank) - tieBreakRank(b[i].Rank); cmp != 0 {
			return cmp
		}
	}

	return 0
}

// highestFirst returns a copy of the hand ordered by descending tie-break value
func highestFirst(h deck.Hand) deck.Hand {
	r := h.Clone()
	for i := 0; i < len(r); i++ {
		for j := i + 1; j < len(r); j++ {
			if tieBreakRank(r[j].Rank) > tieBreakRank(r[i].Rank) {
				r[i], r[j] = r[j], r[i]
			}
		}
	}

	return r
}
