package draw

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"drawpoker/internal/rng"
	"drawpoker/pkg/deck"
	"drawpoker/pkg/playable"
	"drawpoker/pkg/poker"
)

// maxSeats keeps the deck from ever running dry: five dealt cards plus up to
// four replacements per seat means at most 45 of the 52 cards in play
const maxSeats = 5

// Game is a game of five-card draw. It owns the cross-round state (seats and
// their money) and the state of the round in progress. All mutation happens on
// the goroutine driving PlayRound; the game itself performs no I/O beyond the
// injected providers, presenter and log channel.
type Game struct {
	options   Options
	logger    logrus.FieldLogger
	seats     []*Participant
	deck      *deck.Deck
	random    rng.Generator
	presenter Presenter
	logChan   chan []*playable.LogMessage

	round           int
	inRound         bool
	pool            int
	currentBid      int
	turnCount       int
	usedReplacement bool
	roundOver       bool
	finished        bool
}

// NewGame returns a new game of five-card draw for the given seats.
// Seats without a decision provider are computer-controlled; their
// aggressiveness is sampled once here, at seat assignment.
func NewGame(logger logrus.FieldLogger, seats []Seat, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(seats) < 2 {
		return nil, ErrNotEnoughSeats
	}

	if len(seats) > maxSeats {
		return nil, fmt.Errorf("you cannot have more than %d seats", maxSeats)
	}

	var random rng.Generator = rng.Crypto{}
	if opts.Seed != 0 {
		random = rng.NewSeeded(opts.Seed)
	}

	computer := NewComputer(random)

	participants := make([]*Participant, len(seats))
	names := make(map[string]bool, len(seats))
	for i, seat := range seats {
		if seat.Name == "" {
			return nil, fmt.Errorf("seat %d needs a name", i)
		}

		if names[seat.Name] {
			return nil, fmt.Errorf("duplicate seat name: %s", seat.Name)
		}
		names[seat.Name] = true

		aggressiveness := 0.5 + 0.2*(random.Float64()-0.5)
		p := newParticipant(seat.Name, opts.StartingBalance, aggressiveness)
		p.playing = true
		p.showHand = seat.ShowHand

		p.decider = seat.Decider
		if p.decider == nil {
			p.decider = computer
		}

		p.replacer = seat.Replacer
		if p.replacer == nil {
			p.replacer = computer
		}

		participants[i] = p
	}

	g := &Game{
		options: opts,
		logger:  logger,
		seats:   participants,
		random:  random,
		logChan: make(chan []*playable.LogMessage, 256),
	}

	g.log("", "new game of five-card draw started (%d seats, ${%d} each)", len(seats), opts.StartingBalance)
	return g, nil
}

// SetPresenter attaches a presentation sink. Pass nil to run headless.
func (g *Game) SetPresenter(presenter Presenter) {
	g.presenter = presenter
}

// LogChan returns the channel the game sends log messages to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Five-Card Draw"
}

// Finished returns true once only one solvent seat remains
func (g *Game) Finished() bool {
	return g.finished
}

// Round returns the number of the round in progress (or last played)
func (g *Game) Round() int {
	return g.round
}

// Winner returns the last solvent seat once the game is finished
func (g *Game) Winner() (*Participant, bool) {
	if !g.finished {
		return nil, false
	}

	for _, p := range g.seats {
		if !p.out {
			return p, true
		}
	}

	return nil, false
}

// Play drives rounds until one seat holds all the money
func (g *Game) Play() error {
	for !g.finished {
		if err := g.PlayRound(); err != nil {
			return err
		}
	}

	return nil
}

// PlayRound plays a single round: fresh deck, entry fees, deal, a betting
// cycle, the one-time replacement phase, a final betting cycle, then the
// showdown, pool award and removal of bankrupt seats.
func (g *Game) PlayRound() error {
	if g.finished {
		return ErrGameIsOver
	}

	// a decision provider must not drive the game reentrantly
	if g.inRound {
		return ErrRoundInProgress
	}

	g.inRound = true
	defer func() { g.inRound = false }()

	g.round++
	g.startNewRound()
	g.collectEntryFees()

	if err := g.dealCards(); err != nil {
		return err
	}
	g.present()

	if err := g.runBettingCycle(); err != nil {
		return err
	}

	if !g.roundOver {
		if err := g.replacementPhase(); err != nil {
			return err
		}
		g.present()

		if err := g.runBettingCycle(); err != nil {
			return err
		}
	}

	if err := g.showdown(); err != nil {
		return err
	}
	g.present()

	g.removeBankrupt()
	return nil
}

func (g *Game) startNewRound() {
	g.pool = 0
	g.currentBid = 0
	g.turnCount = 0
	g.usedReplacement = false
	g.roundOver = false

	g.deck = deck.New()
	g.deck.Shuffle(g.shuffleSeed())

	for _, p := range g.seats {
		p.NewRound()
	}

	g.logger.WithFields(logrus.Fields{
		"round": g.round,
		"deck":  g.deck.HashCode(),
	}).Debug("round started")
	g.log("", "round %d started", g.round)
}

// shuffleSeed derives a per-round seed so a seeded game replays identically
func (g *Game) shuffleSeed() int64 {
	if g.options.Seed == 0 {
		return 0
	}

	return g.options.Seed + int64(g.round)
}

// collectEntryFees charges every still-present seat the round's entry fee
// before any card is dealt. The fee climbs each round to force the table
// toward a conclusion. A seat that cannot cover the fee goes all-in for its
// remaining balance and stays eligible for the pool.
func (g *Game) collectEntryFees() {
	fee := g.options.Ante * g.round
	for _, p := range g.seats {
		if !p.playing {
			continue
		}

		amount := fee
		if amount >= p.balance {
			amount = p.balance
			p.allIn = true
		}

		p.balance -= amount
		g.pool += amount
		g.log(p.Name, "paid the ${%d} entry fee", amount)
	}
}

func (g *Game) dealCards() error {
	for i := 0; i < 5; i++ {
		for _, p := range g.seats {
			if !p.playing {
				continue
			}

			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			p.hand.AddCard(card)
		}

		g.turnCount++
	}

	for _, p := range g.seats {
		p.hand.Sort()
	}

	return nil
}

// replacementPhase runs the one-time card exchange: each seat still holding a
// stake discards 0–4 cards and receives equal replacements
func (g *Game) replacementPhase() error {
	for _, p := range g.seats {
		if !p.inHand() {
			continue
		}

		indices, err := p.replacer.Replace(p.turnView(g))
		if err != nil {
			return err
		}

		if len(indices) == 0 {
			g.log(p.Name, "kept every card")
			continue
		}

		if len(indices) > 4 {
			return fmt.Errorf("%s cannot replace more than four cards", p.Name)
		}

		discarded, err := p.hand.DiscardIndices(indices)
		if err != nil {
			return err
		}

		for range discarded {
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			p.hand.AddCard(card)
		}

		p.hand.Sort()
		g.log(p.Name, "replaced %d cards", len(discarded))
	}

	g.usedReplacement = true
	return nil
}

// showdown compares every hand still holding a stake and awards the pool.
// Showdown returning ErrNoEligiblePlayers signals an orchestrator bug and
// aborts the round.
func (g *Game) showdown() error {
	contenders := make([]*Participant, 0, len(g.seats))
	results := make([]*poker.Result, 0, len(g.seats))
	for _, p := range g.seats {
		if !p.inHand() {
			continue
		}

		contenders = append(contenders, p)
		results = append(results, p.Rank())
	}

	index, err := poker.Showdown(results)
	if err != nil {
		return err
	}

	if len(contenders) > 1 {
		for _, p := range contenders {
			p.reveal = true
		}
	}

	winner := contenders[index]
	winner.balance += g.pool
	g.log(winner.Name, "won ${%d} with %s", g.pool, results[index].Category)
	g.logger.WithFields(logrus.Fields{
		"round":  g.round,
		"winner": winner.Name,
		"pool":   g.pool,
		"rank":   results[index].Category.String(),
	}).Debug("round decided")

	g.pool = 0
	g.roundOver = true
	return nil
}

// removeBankrupt drops seats with no money left and finishes the game when a
// single solvent seat remains
func (g *Game) removeBankrupt() {
	solvent := 0
	var last *Participant
	for _, p := range g.seats {
		if p.out {
			continue
		}

		if p.balance <= 0 {
			p.out = true
			p.playing = false
			g.log(p.Name, "went bankrupt and left the table")
			continue
		}

		solvent++
		last = p
	}

	if solvent == 1 {
		g.finished = true
		g.log(last.Name, "won the game with ${%d}", last.balance)
	}
}

func (g *Game) present() {
	if g.presenter == nil {
		return
	}

	g.presenter.Present(g.State())
}

// log sends a message to the log channel. A full channel drops the message
// rather than stalling the round.
func (g *Game) log(player, format string, a ...interface{}) {
	select {
	case g.logChan <- playable.SimpleLogMessageSlice(player, format, a...):
	default:
		g.logger.WithField("player", player).Warn("log channel is full; dropping message")
	}
}
