package deck

import (
	"fmt"
	"sort"
)

// Hand represents a collection of cards owned by a single player.
// Cards keep their insertion order until Sort() is called.
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Sort orders the hand ascending by rank. The sort is stable so cards of equal
// rank keep their relative order.
func (h Hand) Sort() {
	sort.SliceStable(h, func(i, j int) bool {
		return h[i].Rank < h[j].Rank
	})
}

// Discard will discard the specified card and returns true if a card was removed
func (h *Hand) Discard(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// DiscardIndices removes the cards at the given positions and returns them.
// An out-of-range or duplicate index is an error; the hand is left untouched on failure.
func (h *Hand) DiscardIndices(indices []int) ([]*Card, error) {
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(*h) {
			return nil, fmt.Errorf("card index out of range: %d", i)
		}

		if seen[i] {
			return nil, fmt.Errorf("duplicate card index: %d", i)
		}

		seen[i] = true
	}

	discarded := make([]*Card, 0, len(indices))
	kept := make(Hand, 0, len(*h))
	for i, c := range *h {
		if seen[i] {
			discarded = append(discarded, c)
		} else {
			kept = append(kept, c)
		}
	}

	*h = kept
	return discarded, nil
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
