package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"drawpoker/pkg/playable/draw"
)

// consolePresenter renders table snapshots with pterm
type consolePresenter struct {
	viewer string
}

func (c *consolePresenter) Present(state *draw.GameState) {
	pterm.Println()
	pterm.DefaultSection.Printfln("Round %d — money pool: $%d — current bid: $%d",
		state.Round, state.Pool, state.CurrentBid)

	data := pterm.TableData{{"Player", "Cash", "Bet", "Hand", "Rank"}}
	for _, p := range state.Participants {
		data = append(data, []string{
			seatLabel(p, c.viewer),
			fmt.Sprintf("$%d", p.Balance),
			fmt.Sprintf("$%d", p.Bet),
			seatCards(p),
			p.Rank,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err.Error())
	}
}

func seatLabel(p *draw.ParticipantState, viewer string) string {
	name := p.Name
	if name == viewer {
		name = pterm.Cyan(name)
	}

	switch {
	case p.Out:
		return name + " (out)"
	case p.Folded:
		return name + " (fold)"
	case p.AllIn:
		return name + " (all-in)"
	}

	return name
}

func seatCards(p *draw.ParticipantState) string {
	if len(p.Cards) > 0 {
		return strings.Join(p.Cards, " ")
	}

	return strings.Repeat("🂠 ", p.CardCount)
}
