package draw

import (
	"drawpoker/pkg/deck"
)

// Presenter receives read-only table snapshots after each mutating phase.
// The engine makes no assumption about rendering timing or medium; a nil
// presenter is legal and leaves the game headless.
type Presenter interface {
	Present(state *GameState)
}

// GameState is a read-only snapshot of the table
type GameState struct {
	Round        int                 `json:"round"`
	Pool         int                 `json:"pool"`
	CurrentBid   int                 `json:"currentBid"`
	TurnCount    int                 `json:"turnCount"`
	Replaced     bool                `json:"replaced"`
	RoundOver    bool                `json:"roundOver"`
	Finished     bool                `json:"finished"`
	Participants []*ParticipantState `json:"participants"`
}

// ParticipantState is a participant's slice of the snapshot. Cards and rank
// are only populated for hands that are face-up to the viewer.
type ParticipantState struct {
	Name      string   `json:"name"`
	Balance   int      `json:"balance"`
	Bet       int      `json:"bet"`
	Folded    bool     `json:"folded"`
	AllIn     bool     `json:"allIn"`
	Out       bool     `json:"out"`
	CardCount int      `json:"cardCount"`
	Cards     []string `json:"cards,omitempty"`
	Rank      string   `json:"rank,omitempty"`
	RankCards []string `json:"rankCards,omitempty"`
}

// State returns the current table snapshot. Hands are revealed only for seats
// whose owner is watching the screen or whose cards were turned over at
// showdown.
func (g *Game) State() *GameState {
	participants := make([]*ParticipantState, len(g.seats))
	for i, p := range g.seats {
		ps := &ParticipantState{
			Name:      p.Name,
			Balance:   p.balance,
			Bet:       p.bet,
			Folded:    p.Folded(),
			AllIn:     p.allIn,
			Out:       p.out,
			CardCount: len(p.hand),
		}

		if p.showHand || p.reveal {
			ps.Cards = cardSymbols(p.hand)
			if rank := p.Rank(); rank != nil {
				ps.Rank = rank.Category.String()
				ps.RankCards = cardSymbols(rank.Cards)
			}
		}

		participants[i] = ps
	}

	return &GameState{
		Round:        g.round,
		Pool:         g.pool,
		CurrentBid:   g.currentBid,
		TurnCount:    g.turnCount,
		Replaced:     g.usedReplacement,
		RoundOver:    g.roundOver,
		Finished:     g.finished,
		Participants: participants,
	}
}

func cardSymbols(cards deck.Hand) []string {
	symbols := make([]string, len(cards))
	for i, card := range cards {
		symbols[i] = card.String()
	}

	return symbols
}
