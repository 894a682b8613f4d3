package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Clubs    Suit = "clubs"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
)

// rank constants. The ace is always low in five-card draw: Ace < Two < … < King.
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// InvalidCardError is returned when a card is constructed outside the 52-card domain
type InvalidCardError struct {
	Suit Suit
	Rank int
}

func (e InvalidCardError) Error() string {
	return fmt.Sprintf("invalid card: suit=%q rank=%d", e.Suit, e.Rank)
}

// NewCard returns a card for the suit and rank.
// Construction fails with an InvalidCardError if the pair falls outside the 52-card domain.
func NewCard(suit Suit, rank int) (*Card, error) {
	switch suit {
	case Spades, Clubs, Hearts, Diamonds:
	default:
		return nil, InvalidCardError{Suit: suit, Rank: rank}
	}

	if rank < Ace || rank > King {
		return nil, InvalidCardError{Suit: suit, Rank: rank}
	}

	return &Card{Rank: rank, Suit: suit}, nil
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Ace:
		rank = "A"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Spades:
		suit = "♠"
	case Clubs:
		suit = "♣"
	case Hearts:
		suit = "♥"
	case Diamonds:
		suit = "♦"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([1-9]|1[0-3])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 1 (ace) and <= 13 (king)
// and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (King of Clubs) to a string (13c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
