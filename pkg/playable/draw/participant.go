package draw

import (
	"drawpoker/pkg/deck"
	"drawpoker/pkg/poker"
)

// Seat describes one place at the table before the game starts.
// A nil Decider means the seat is computer-controlled; the game builds a
// probabilistic decider for it at seat assignment.
type Seat struct {
	Name     string
	Decider  DecisionProvider
	Replacer ReplacementProvider

	// ShowHand renders the seat's cards in every snapshot (the seat's owner is
	// looking at the screen). Folded and computer hands stay hidden until showdown.
	ShowHand bool
}

// Participant represents an individual player at the draw poker table
type Participant struct {
	Name string

	balance        int
	hand           deck.Hand
	bet            int
	playing        bool
	allIn          bool
	didRaise       bool
	reveal         bool
	out            bool
	showHand       bool
	aggressiveness float64

	decider  DecisionProvider
	replacer ReplacementProvider

	rank         *poker.Result
	rankCacheKey string
}

func newParticipant(name string, balance int, aggressiveness float64) *Participant {
	return &Participant{
		Name:           name,
		balance:        balance,
		hand:           make(deck.Hand, 0, 5),
		aggressiveness: aggressiveness,
	}
}

// Balance returns the participant's money
func (p *Participant) Balance() int {
	return p.balance
}

// Bet ensures the participant's round contribution reaches the specified
// amount. The value returned is the amount newly added to the pool. For
// example, if a player already contributed 100 and then calls a bid of 150,
// this method returns 50.
func (p *Participant) Bet(amount int) int {
	diff := amount - p.bet
	p.bet = amount
	p.balance -= diff

	return diff
}

// Rank returns the participant's dominant rank, recomputing it whenever the
// hand has changed since the previous call
func (p *Participant) Rank() *poker.Result {
	if len(p.hand) == 0 {
		return nil
	}

	key := p.hand.String()
	if p.rankCacheKey != key {
		p.rank = poker.Classify(p.hand)
		p.rankCacheKey = key
	}

	return p.rank
}

// NewRound resets the participant's round-scoped state. A seat that already
// busted stays out of play.
func (p *Participant) NewRound() {
	p.hand = make(deck.Hand, 0, 5)
	p.bet = 0
	p.allIn = false
	p.didRaise = false
	p.reveal = false
	p.rank = nil
	p.rankCacheKey = ""
	p.playing = !p.out
}

// Folded returns true if the participant folded this round
func (p *Participant) Folded() bool {
	return !p.playing && !p.out
}

// fold removes the participant from the active set for the rest of the round;
// contributed money stays in the pool
func (p *Participant) fold() {
	p.playing = false
}

// inHand returns true if the participant still holds a stake in the round's
// pool: not folded and not out, all-in included
func (p *Participant) inHand() bool {
	return p.playing || (p.allIn && !p.out)
}

// canAct returns true if the participant takes betting turns: in hand and not all-in
func (p *Participant) canAct() bool {
	return p.playing && !p.allIn
}

func (p *Participant) turnView(g *Game) TurnView {
	minRaise := g.currentBid + g.options.Denomination
	if minRaise < g.options.FirstBetFloor {
		minRaise = g.options.FirstBetFloor
	}

	return TurnView{
		Name:           p.Name,
		Hand:           p.hand.Clone(),
		Rank:           p.Rank(),
		Balance:        p.balance,
		Contributed:    p.bet,
		CurrentBid:     g.currentBid,
		Pool:           g.pool,
		MinRaise:       minRaise,
		Denomination:   g.options.Denomination,
		DidRaise:       p.didRaise,
		Aggressiveness: p.aggressiveness,
	}
}
