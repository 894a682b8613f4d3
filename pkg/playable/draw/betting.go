package draw

import (
	"fmt"
)

// runBettingCycle drives betting passes in seating order until either every
// active seat's contribution equals the current bid at the end of a full pass,
// or a single seat is left holding a stake. The didRaise flags reset at the
// start of the cycle so each cycle allows one enthusiastic raise per seat.
func (g *Game) runBettingCycle() error {
	for _, p := range g.seats {
		p.didRaise = false
	}

	for {
		if g.inHandCount() <= 1 {
			g.roundOver = true
			return nil
		}

		if err := g.runBettingPass(); err != nil {
			return err
		}

		if g.inHandCount() <= 1 {
			g.roundOver = true
			return nil
		}

		if g.bidsEqual() {
			return nil
		}
	}
}

// runBettingPass gives every seat that can still act exactly one turn
func (g *Game) runBettingPass() error {
	for _, p := range g.seats {
		if !p.canAct() {
			continue
		}

		if g.inHandCount() == 1 {
			// everyone else folded mid-pass; no more decisions needed
			return nil
		}

		if err := g.takeTurn(p); err != nil {
			return err
		}
	}

	return nil
}

// takeTurn resolves a single seat's betting decision.
//
// A seat that cannot cover the current bid never gets to decide: it contributes
// its entire remaining balance as an all-in call and stays eligible for the
// round's pool without further betting action.
func (g *Game) takeTurn(p *Participant) error {
	owed := g.currentBid - p.bet
	if g.currentBid > 0 && p.balance <= owed {
		g.pool += p.Bet(p.bet + p.balance)
		p.allIn = true
		g.log(p.Name, "went all-in with ${%d}", p.bet)
		return nil
	}

	decision, err := p.decider.Decide(p.turnView(g))
	if err != nil {
		return err
	}

	return g.applyDecision(p, decision)
}

func (g *Game) applyDecision(p *Participant, decision Decision) error {
	switch decision.Action {
	case Fold:
		p.fold()
		g.log(p.Name, "%s", Fold.LogMessage(0))

	case Check:
		if g.currentBid > 0 {
			return fmt.Errorf("%s cannot check a bid of ${%d}", p.Name, g.currentBid)
		}

		g.log(p.Name, "%s", Check.LogMessage(0))

	case Call:
		action := Call
		if g.currentBid == 0 {
			// calling a zero bid is a check
			action = Check
		}

		g.pool += p.Bet(g.currentBid)
		if p.balance == 0 {
			p.allIn = true
		}

		g.log(p.Name, "%s", action.LogMessage(g.currentBid))

	case Bet, Raise:
		amount := decision.Amount
		if err := ValidateRaise(p.turnView(g), amount); err != nil {
			return err
		}

		g.pool += p.Bet(amount)
		g.currentBid = amount
		p.didRaise = true
		if p.balance == 0 {
			p.allIn = true
		}

		g.log(p.Name, "%s", decision.Action.LogMessage(amount))

	default:
		return fmt.Errorf("unknown action: %s", string(decision.Action))
	}

	return nil
}

// bidsEqual returns true when every seat still able to act has matched the
// current bid. With nobody left to act the bids are trivially equal.
func (g *Game) bidsEqual() bool {
	for _, p := range g.seats {
		if p.canAct() && p.bet != g.currentBid {
			return false
		}
	}

	return true
}

// inHandCount counts the seats still holding a stake in the pool, all-in
// seats included
func (g *Game) inHandCount() int {
	count := 0
	for _, p := range g.seats {
		if p.inHand() {
			count++
		}
	}

	return count
}
