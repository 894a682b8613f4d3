package draw

import (
	"math"

	"drawpoker/internal/rng"
	"drawpoker/pkg/deck"
	"drawpoker/pkg/poker"
)

// maxHandValue is the positional value of the best possible high-card hand
// (9, 10, J, Q, K): 9 + 10² + 11³ + 12⁴ + 13⁵
const maxHandValue = 393469

// Computer is the probabilistic decision provider for computer-controlled
// seats. Decisions are pure functions of the turn view plus the injected
// random source; there is no hidden state between turns.
type Computer struct {
	random rng.Generator
}

// NewComputer returns a computer decision provider using the random source
func NewComputer(random rng.Generator) *Computer {
	return &Computer{random: random}
}

// Decide samples the fold check first and the raise check second; when neither
// fires the computer calls (or checks at a zero bid)
func (c *Computer) Decide(view TurnView) (Decision, error) {
	if c.random.Float64() < c.foldProbability(view) {
		return Decision{Action: Fold}, nil
	}

	if c.random.Float64() < c.raiseProbability(view) {
		if amount := c.raiseAmount(view); amount > view.CurrentBid && ValidateRaise(view, amount) == nil {
			action := Raise
			if view.CurrentBid == 0 {
				action = Bet
			}

			return Decision{Action: action, Amount: amount}, nil
		}
	}

	if view.CurrentBid == 0 {
		return Decision{Action: Check}, nil
	}

	return Decision{Action: Call}, nil
}

// Replace keeps the cards forming the detected rank and discards the rest,
// up to the four-card table limit
func (c *Computer) Replace(view TurnView) ([]int, error) {
	if view.Rank == nil {
		return nil, nil
	}

	indices := make([]int, 0, 4)
	for i, card := range view.Hand {
		if view.Rank.Cards.HasCard(card) {
			continue
		}

		indices = append(indices, i)
		if len(indices) == 4 {
			break
		}
	}

	return indices, nil
}

// foldProbability maps the hand to a chance of giving up.
//
// A high-card hand folds on a steep logarithmic curve: the positional hand
// value is compared against the best achievable high card hand, with the
// seat's aggressiveness flattening both the base and the exponent. A made hand
// folds rarely, and only when the bid looms large against the bankroll.
func (c *Computer) foldProbability(view TurnView) float64 {
	if view.Rank == nil {
		return 0
	}

	if view.Rank.Category == poker.HighCard {
		base := maxHandValue / (32 - 31.99*view.Aggressiveness)
		p := math.Pow(math.Log(maxHandValue/handValue(view.Hand))/math.Log(base), 2.5+view.Aggressiveness)
		return clamp01(p)
	}

	ratio := 0.0
	if view.Balance > 0 {
		ratio = float64(view.CurrentBid) / float64(view.Balance)
	}

	strength := float64(view.Rank.Category - poker.HighCard) // 1..8
	return clamp01(ratio / (ratio + 1) * (1 - strength/8) * 0.2)
}

// raiseProbability grows with category strength and the top matched card, plus
// a bounded bluff term. Having already raised this cycle divides the
// probability by an order of magnitude to stop self-raising loops.
func (c *Computer) raiseProbability(view TurnView) float64 {
	if view.Rank == nil {
		return 0
	}

	strength := float64(view.Rank.Category - poker.HighCard)
	top := 0.0
	if last := view.Rank.Cards.LastCard(); last != nil {
		top = float64(last.Rank)
	}

	p := strength/16 + top/52 + c.random.Float64()*0.15
	if view.DidRaise {
		p /= 10
	}

	return clamp01(p)
}

// raiseAmount picks the raise-to value.
//
// An opening bet is 0–490 in steps of ten, biased heavily toward not opening.
// Over an existing bid the amount scales with aggressiveness: an aggressiveness
// of 0 always calls, 0.5 calls and raises equally, 1 nearly always raises.
func (c *Computer) raiseAmount(view TurnView) int {
	bid := view.CurrentBid
	if bid == 0 {
		bid = 10 * int(50*(10.0/3)*math.Max(0, c.random.Float64()-0.7))
	} else {
		bid = int(math.Max(float64(bid), float64(bid)*(view.Aggressiveness+c.random.Float64())))
	}

	bid = bid / view.Denomination * view.Denomination

	if max := view.Contributed + view.Balance; bid > max {
		// an all-in raise
		bid = max
	}

	return bid
}

// handValue treats the ascending sorted hand as digits of increasing power:
// the highest card dominates, lower cards break near-ties
func handValue(hand deck.Hand) float64 {
	sorted := hand.Clone()
	sorted.Sort()

	value := 0.0
	for i, card := range sorted {
		value += math.Pow(float64(card.Rank), float64(i+1))
	}

	return value
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}

	if f > 1 {
		return 1
	}

	return f
}
