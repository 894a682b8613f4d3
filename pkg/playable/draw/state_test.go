package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"drawpoker/pkg/deck"
)

func TestGame_State(t *testing.T) {
	game := testGame(t, Seat{Name: "viewer", ShowHand: true}, Seat{Name: "cpu"})
	game.round = 2
	game.pool = 300
	game.currentBid = 100
	game.seats[0].hand = deck.CardsFromString("2s,2c,5d,9h,13s")
	game.seats[0].bet = 100
	game.seats[1].hand = deck.CardsFromString("3c,5h,7d,9c,13h")

	state := game.State()
	assert.Equal(t, 2, state.Round)
	assert.Equal(t, 300, state.Pool)
	assert.Equal(t, 100, state.CurrentBid)
	assert.False(t, state.Finished)
	assert.Equal(t, 2, len(state.Participants))

	viewer := state.Participants[0]
	assert.Equal(t, "viewer", viewer.Name)
	assert.Equal(t, 100, viewer.Bet)
	assert.Equal(t, 5, viewer.CardCount)
	assert.Equal(t, []string{"2♠", "2♣", "5♦", "9♥", "K♠"}, viewer.Cards)
	assert.Equal(t, "Pair", viewer.Rank)
	assert.Equal(t, []string{"2♠", "2♣"}, viewer.RankCards)

	// the computer's hand stays face down
	cpu := state.Participants[1]
	assert.Equal(t, 5, cpu.CardCount)
	assert.Nil(t, cpu.Cards)
	assert.Equal(t, "", cpu.Rank)
}

func TestGame_State_revealAtShowdown(t *testing.T) {
	game := testGame(t, Seat{Name: "a"}, Seat{Name: "b"})
	game.seats[0].hand = deck.CardsFromString("2s,2c,5d,9h,13s")
	game.seats[1].hand = deck.CardsFromString("3c,5h,7d,9c,13h")
	game.pool = 200

	state := game.State()
	assert.Nil(t, state.Participants[0].Cards)

	assert.NoError(t, game.showdown())
	state = game.State()
	assert.NotNil(t, state.Participants[0].Cards)
	assert.NotNil(t, state.Participants[1].Cards)
	assert.True(t, state.RoundOver)
}

func TestGame_State_folded(t *testing.T) {
	game := testGame(t, Seat{Name: "a"}, Seat{Name: "b"})
	game.seats[0].fold()

	state := game.State()
	assert.True(t, state.Participants[0].Folded)
	assert.False(t, state.Participants[1].Folded)
}
