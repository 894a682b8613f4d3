package poker

import (
	"drawpoker/pkg/deck"
)

// Result is the outcome of a single classification pass. It holds the one
// dominant category found in the hand, the cards forming it (ascending by rank)
// and the remaining kickers (highest first, aces leading).
//
// A Result is a snapshot: it is built fresh on every Classify call and is never
// mutated afterwards.
type Result struct {
	Category Category
	Cards    deck.Hand
	Kickers  deck.Hand
}

// Classify determines the dominant poker category in the hand.
//
// Overlapping categories are collapsed by the standard merge rules: two pairs
// become TwoPairs, a pair plus three of a kind become FullHouse, and a straight
// that is also a flush becomes StraightFlush. Straight, Flush and StraightFlush
// are only considered when the hand holds exactly five cards. A non-empty hand
// with no better category yields HighCard with the single highest card.
//
// Classify returns nil for an empty hand.
func Classify(hand deck.Hand) *Result {
	if len(hand) == 0 {
		return nil
	}

	cards := hand.Clone()
	cards.Sort()

	suitCounts := make(map[deck.Suit]int)
	for _, card := range cards {
		suitCounts[card.Suit]++
	}

	var flush deck.Hand
	if suitCounts[cards[0].Suit] == 5 {
		flush = cards
	}

	// group cards of equal rank; cards are sorted so groups are contiguous
	var pair, secondPair, trips, quads deck.Hand
	for i := 0; i < len(cards); {
		j := i
		for j < len(cards) && cards[j].Rank == cards[i].Rank {
			j++
		}

		group := cards[i:j]
		switch len(group) {
		case 4:
			quads = group
		case 3:
			trips = group
		case 2:
			if pair == nil {
				pair = group
			} else {
				secondPair = group
			}
		}

		i = j
	}

	straight := len(cards) == 5
	for i := 0; i < len(cards)-1 && straight; i++ {
		if cards[i].Rank+1 != cards[i+1].Rank {
			straight = false
		}
	}

	result := &Result{}
	switch {
	case straight && flush != nil:
		result.Category = StraightFlush
		result.Cards = cards
	case quads != nil:
		result.Category = FourOfAKind
		result.Cards = quads
	case trips != nil && pair != nil:
		result.Category = FullHouse
		result.Cards = cards
	case flush != nil:
		result.Category = Flush
		result.Cards = cards
	case straight:
		result.Category = Straight
		result.Cards = cards
	case trips != nil:
		result.Category = ThreeOfAKind
		result.Cards = trips
	case secondPair != nil:
		result.Category = TwoPairs
		result.Cards = append(pair.Clone(), secondPair...)
	case pair != nil:
		result.Category = OnePair
		result.Cards = pair
	default:
		result.Category = HighCard
		// the ace sorts first but outranks everything in a tie-break
		if cards.FirstCard().Rank == deck.Ace {
			result.Cards = deck.Hand{cards.FirstCard()}
		} else {
			result.Cards = deck.Hand{cards.LastCard()}
		}
	}

	result.Kickers = kickers(cards, result.Cards)
	return result
}

// kickers returns the cards not part of the matched subset, highest first
func kickers(sorted, matched deck.Hand) deck.Hand {
	rest := make(deck.Hand, 0, len(sorted)-len(matched))
	used := make([]bool, len(matched))

	for _, card := range sorted {
		found := false
		for i, m := range matched {
			if !used[i] && card == m {
				used[i] = true
				found = true
				break
			}
		}

		if !found {
			rest = append(rest, card)
		}
	}

	// highest first for tie-break comparisons, with aces leading
	var aces, others deck.Hand
	for _, card := range rest {
		if card.Rank == deck.Ace {
			aces = append(aces, card)
		} else {
			others = append(others, card)
		}
	}

	for i, j := 0, len(others)-1; i < j; i, j = i+1, j-1 {
		others[i], others[j] = others[j], others[i]
	}

	return append(aces, others...)
}
