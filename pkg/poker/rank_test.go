package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "High card", HighCard.String())
	assert.Equal(t, "Pair", OnePair.String())
	assert.Equal(t, "Two pairs", TwoPairs.String())
	assert.Equal(t, "Three of a kind", ThreeOfAKind.String())
	assert.Equal(t, "Straight", Straight.String())
	assert.Equal(t, "Flush", Flush.String())
	assert.Equal(t, "Full house", FullHouse.String())
	assert.Equal(t, "Four of a kind", FourOfAKind.String())
	assert.Equal(t, "Straight flush", StraightFlush.String())
}

func TestCategory_ordering(t *testing.T) {
	order := []Category{
		HighCard, OnePair, TwoPairs, ThreeOfAKind,
		Straight, Flush, FullHouse, FourOfAKind, StraightFlush,
	}

	for i := 1; i < len(order); i++ {
		assert.Greater(t, int(order[i]), int(order[i-1]))
	}
}
