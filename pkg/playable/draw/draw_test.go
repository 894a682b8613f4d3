package draw

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"drawpoker/pkg/deck"
)

// scriptedDecider plays a fixed sequence of decisions and fails the round if
// asked for more than it holds
type scriptedDecider struct {
	decisions []Decision
	calls     int
}

func (s *scriptedDecider) Decide(view TurnView) (Decision, error) {
	if s.calls >= len(s.decisions) {
		return Decision{}, fmt.Errorf("unexpected decision request for %s", view.Name)
	}

	decision := s.decisions[s.calls]
	s.calls++
	return decision, nil
}

type scriptedReplacer struct {
	indices []int
	calls   int
}

func (s *scriptedReplacer) Replace(view TurnView) ([]int, error) {
	s.calls++
	return s.indices, nil
}

type keepAllReplacer struct{}

func (keepAllReplacer) Replace(view TurnView) ([]int, error) {
	return nil, nil
}

func testOptions() Options {
	return Options{
		StartingBalance: 1000,
		Ante:            50,
		Denomination:    10,
		FirstBetFloor:   100,
		Seed:            11,
	}
}

func testGame(t *testing.T, seats ...Seat) *Game {
	t.Helper()

	game, err := NewGame(logrus.StandardLogger(), seats, testOptions())
	assert.NoError(t, err)
	assert.NotNil(t, game)

	return game
}

func TestNewGame_validation(t *testing.T) {
	logger := logrus.StandardLogger()

	game, err := NewGame(logger, []Seat{{Name: "alone"}}, testOptions())
	assert.Nil(t, game)
	assert.Equal(t, ErrNotEnoughSeats, err)

	tooMany := make([]Seat, 6)
	for i := range tooMany {
		tooMany[i] = Seat{Name: fmt.Sprintf("seat-%d", i)}
	}
	game, err = NewGame(logger, tooMany, testOptions())
	assert.Nil(t, game)
	assert.EqualError(t, err, "you cannot have more than 5 seats")

	game, err = NewGame(logger, []Seat{{Name: "a"}, {Name: ""}}, testOptions())
	assert.Nil(t, game)
	assert.EqualError(t, err, "seat 1 needs a name")

	game, err = NewGame(logger, []Seat{{Name: "a"}, {Name: "a"}}, testOptions())
	assert.Nil(t, game)
	assert.EqualError(t, err, "duplicate seat name: a")

	opts := testOptions()
	opts.Ante = 0
	game, err = NewGame(logger, []Seat{{Name: "a"}, {Name: "b"}}, opts)
	assert.Nil(t, game)
	assert.EqualError(t, err, "ante must be greater than zero")
}

func TestNewGame_aggressivenessRange(t *testing.T) {
	game := testGame(t, Seat{Name: "a"}, Seat{Name: "b"}, Seat{Name: "c"})
	for _, p := range game.seats {
		assert.GreaterOrEqual(t, p.aggressiveness, 0.4)
		assert.LessOrEqual(t, p.aggressiveness, 0.6)
	}
}

func TestGame_collectEntryFees(t *testing.T) {
	game := testGame(t, Seat{Name: "rich"}, Seat{Name: "poor"})
	game.seats[1].balance = 80
	game.round = 2

	game.collectEntryFees()

	assert.Equal(t, 180, game.pool)
	assert.Equal(t, 900, game.seats[0].Balance())
	assert.False(t, game.seats[0].allIn)
	assert.Equal(t, 0, game.seats[1].Balance())
	assert.True(t, game.seats[1].allIn)
	assert.True(t, game.seats[1].inHand())
}

func TestGame_dealCards(t *testing.T) {
	game := testGame(t, Seat{Name: "a"}, Seat{Name: "b"}, Seat{Name: "c"})
	game.seats[1].playing = false

	game.deck = deck.New()
	game.deck.Shuffle(1)

	assert.NoError(t, game.dealCards())
	assert.Equal(t, 5, len(game.seats[0].hand))
	assert.Equal(t, 0, len(game.seats[1].hand))
	assert.Equal(t, 5, len(game.seats[2].hand))
	assert.Equal(t, 42, game.deck.CardsLeft())
	assert.Equal(t, 5, game.turnCount)

	// dealt hands come out sorted
	for _, p := range game.seats {
		for i := 1; i < len(p.hand); i++ {
			assert.LessOrEqual(t, p.hand[i-1].Rank, p.hand[i].Rank)
		}
	}
}

func TestGame_replacementPhase(t *testing.T) {
	replacer := &scriptedReplacer{indices: []int{0, 1}}
	game := testGame(t,
		Seat{Name: "swapper", Replacer: replacer},
		Seat{Name: "keeper", Replacer: keepAllReplacer{}},
	)

	game.deck = deck.New()
	game.deck.Shuffle(1)
	game.seats[0].hand = deck.CardsFromString("2s,3c,9d,9h,13s")
	game.seats[1].hand = deck.CardsFromString("4s,5c,6d,10h,12s")

	assert.NoError(t, game.replacementPhase())
	assert.True(t, game.usedReplacement)
	assert.Equal(t, 1, replacer.calls)
	assert.Equal(t, 5, len(game.seats[0].hand))
	assert.Equal(t, "4s,5c,6d,10h,12s", game.seats[1].hand.String())
	assert.Equal(t, 50, game.deck.CardsLeft())

	// the kept cards survive the exchange
	assert.True(t, game.seats[0].hand.HasCard(deck.CardFromString("9d")))
	assert.True(t, game.seats[0].hand.HasCard(deck.CardFromString("9h")))
	assert.True(t, game.seats[0].hand.HasCard(deck.CardFromString("13s")))
}

func TestGame_replacementPhase_tooManyCards(t *testing.T) {
	game := testGame(t,
		Seat{Name: "greedy", Replacer: &scriptedReplacer{indices: []int{0, 1, 2, 3, 4}}},
		Seat{Name: "keeper", Replacer: keepAllReplacer{}},
	)

	game.deck = deck.New()
	game.deck.Shuffle(1)
	game.seats[0].hand = deck.CardsFromString("2s,3c,9d,9h,13s")
	game.seats[1].hand = deck.CardsFromString("4s,5c,6d,10h,12s")

	assert.EqualError(t, game.replacementPhase(), "greedy cannot replace more than four cards")
}

func TestGame_showdown(t *testing.T) {
	game := testGame(t, Seat{Name: "pair"}, Seat{Name: "highCard"})
	game.seats[0].hand = deck.CardsFromString("2s,2c,5d,9h,13s")
	game.seats[1].hand = deck.CardsFromString("3c,5h,7d,9c,13h")
	game.pool = 500

	assert.NoError(t, game.showdown())
	assert.True(t, game.roundOver)
	assert.Equal(t, 0, game.pool)
	assert.Equal(t, 1500, game.seats[0].Balance())
	assert.Equal(t, 1000, game.seats[1].Balance())
	assert.True(t, game.seats[0].reveal)
	assert.True(t, game.seats[1].reveal)
}

func TestGame_showdown_singleContenderStaysHidden(t *testing.T) {
	game := testGame(t, Seat{Name: "last"}, Seat{Name: "folded"})
	game.seats[0].hand = deck.CardsFromString("2s,4c,6d,9h,13s")
	game.seats[1].fold()
	game.pool = 300

	assert.NoError(t, game.showdown())
	assert.Equal(t, 1300, game.seats[0].Balance())
	assert.False(t, game.seats[0].reveal)
}

func TestGame_showdown_noEligiblePlayers(t *testing.T) {
	game := testGame(t, Seat{Name: "a"}, Seat{Name: "b"})
	game.seats[0].fold()
	game.seats[1].fold()

	assert.Error(t, game.showdown())
}

func TestGame_removeBankrupt(t *testing.T) {
	game := testGame(t, Seat{Name: "winner"}, Seat{Name: "loser"}, Seat{Name: "broke"})
	game.seats[1].balance = 0
	game.seats[2].balance = -20

	game.removeBankrupt()

	assert.False(t, game.seats[0].out)
	assert.True(t, game.seats[1].out)
	assert.True(t, game.seats[2].out)
	assert.True(t, game.Finished())

	winner, ok := game.Winner()
	assert.True(t, ok)
	assert.Equal(t, "winner", winner.Name)
}

func TestGame_Winner_notFinished(t *testing.T) {
	game := testGame(t, Seat{Name: "a"}, Seat{Name: "b"})
	winner, ok := game.Winner()
	assert.False(t, ok)
	assert.Nil(t, winner)
}

func TestGame_PlayRound_guards(t *testing.T) {
	game := testGame(t, Seat{Name: "a"}, Seat{Name: "b"})

	game.inRound = true
	assert.Equal(t, ErrRoundInProgress, game.PlayRound())
	game.inRound = false

	game.finished = true
	assert.Equal(t, ErrGameIsOver, game.PlayRound())
}

func TestGame_PlayRound_conservesMoney(t *testing.T) {
	// three computer seats play out a deterministic round
	game := testGame(t, Seat{Name: "a"}, Seat{Name: "b"}, Seat{Name: "c"})

	assert.NoError(t, game.PlayRound())
	assert.Equal(t, 1, game.Round())
	assert.True(t, game.roundOver)
	assert.Equal(t, 0, game.pool)

	total := 0
	for _, p := range game.seats {
		total += p.Balance()
	}

	assert.Equal(t, 3000, total)
}

func TestGame_Play(t *testing.T) {
	opts := testOptions()
	opts.StartingBalance = 300
	opts.Seed = 3

	game, err := NewGame(logrus.StandardLogger(), []Seat{{Name: "a"}, {Name: "b"}}, opts)
	assert.NoError(t, err)

	go func() {
		for range game.LogChan() {
		}
	}()

	assert.NoError(t, game.Play())
	assert.True(t, game.Finished())

	winner, ok := game.Winner()
	assert.True(t, ok)
	assert.Equal(t, 600, winner.Balance())
	assert.Equal(t, ErrGameIsOver, game.PlayRound())
}

func TestGame_Name(t *testing.T) {
	game := testGame(t, Seat{Name: "a"}, Seat{Name: "b"})
	assert.Equal(t, "Five-Card Draw", game.Name())
}
