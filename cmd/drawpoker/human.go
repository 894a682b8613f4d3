package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"drawpoker/pkg/deck"
	"drawpoker/pkg/playable/draw"
)

// humanProvider asks the person at the terminal for betting and replacement
// decisions. Amount validation happens here: the engine never sees an invalid
// raise because the prompt loops until the constraints are met.
type humanProvider struct {
	name string
}

func (h *humanProvider) Decide(view draw.TurnView) (draw.Decision, error) {
	pterm.Printfln("Your hand: %s", handLine(view.Hand))
	if view.Rank != nil {
		pterm.Printfln("Your rank: %s (%s)", view.Rank.Category, handLine(view.Rank.Cards))
	}
	pterm.Printfln("Pool: $%d — current bid: $%d — your bet: $%d — your cash: $%d",
		view.Pool, view.CurrentBid, view.Contributed, view.Balance)

	options := []string{"Bet", "Check", "Fold"}
	if view.CurrentBid > 0 {
		options = []string{"Call", "Raise", "Fold"}
	}

	for {
		choice, err := pterm.DefaultInteractiveSelect.
			WithDefaultText("What would you like to do?").
			WithOptions(options).
			Show()
		if err != nil {
			return draw.Decision{}, err
		}

		switch choice {
		case "Check":
			return draw.Decision{Action: draw.Check}, nil
		case "Call":
			return draw.Decision{Action: draw.Call}, nil
		case "Fold":
			return draw.Decision{Action: draw.Fold}, nil
		}

		amount, err := h.promptAmount(view)
		if err != nil {
			if errors.Is(err, errCancelled) {
				continue
			}

			return draw.Decision{}, err
		}

		action := draw.Raise
		if view.CurrentBid == 0 {
			action = draw.Bet
		}

		return draw.Decision{Action: action, Amount: amount}, nil
	}
}

var errCancelled = errors.New("cancelled")

// promptAmount keeps asking until the amount satisfies the table constraints.
// An empty answer backs out to the action menu.
func (h *humanProvider) promptAmount(view draw.TurnView) (int, error) {
	for {
		answer, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText("How much money do you want to bet?").
			Show()
		if err != nil {
			return 0, err
		}

		answer = strings.TrimSpace(answer)
		if answer == "" {
			return 0, errCancelled
		}

		amount, err := strconv.Atoi(answer)
		if err != nil {
			pterm.Error.Println("that is not a number")
			continue
		}

		if err := draw.ValidateRaise(view, amount); err != nil {
			pterm.Error.Println(err.Error())
			continue
		}

		return amount, nil
	}
}

// Replace lets the player pick which cards to exchange, at most four
func (h *humanProvider) Replace(view draw.TurnView) ([]int, error) {
	labels := make([]string, len(view.Hand))
	for i, card := range view.Hand {
		labels[i] = card.String()
	}

	for {
		picked, err := pterm.DefaultInteractiveMultiselect.
			WithDefaultText("Which cards would you like to replace? (none to stand pat)").
			WithOptions(labels).
			Show()
		if err != nil {
			return nil, err
		}

		if len(picked) > 4 {
			pterm.Error.Println("you can replace at most four cards")
			continue
		}

		indices := make([]int, 0, len(picked))
		for _, label := range picked {
			for i, candidate := range labels {
				if candidate == label {
					indices = append(indices, i)
					break
				}
			}
		}

		return indices, nil
	}
}

func handLine(cards deck.Hand) string {
	symbols := make([]string, len(cards))
	for i, card := range cards {
		symbols[i] = card.String()
	}

	return strings.Join(symbols, " ")
}
