package main

import (
	"flag"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"drawpoker/internal/config"
	"drawpoker/internal/rng"
	"drawpoker/internal/util"
	"drawpoker/pkg/playable"
	"drawpoker/pkg/playable/draw"
)

// Version is the build version
var Version = "v0.0.0-dev"

var computerSeats = flag.Int("seats", 0, "number of computer opponents (overrides config)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	opponents := cfg.Game.ComputerSeats
	if *computerSeats > 0 {
		opponents = *computerSeats
	}

	pterm.DefaultHeader.Println("Five-Card Draw", Version)

	name, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Welcome to the table! What is your name?").
		Show()
	if err != nil {
		logrus.WithError(err).Fatal("could not read name")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "You"
	}

	human := &humanProvider{name: name}

	var random rng.Generator = rng.Crypto{}
	if cfg.Game.Seed != 0 {
		random = rng.NewSeeded(cfg.Game.Seed)
	}

	seats := make([]draw.Seat, 0, opponents+1)
	for _, opponent := range util.RandomSeatNames(random, opponents) {
		seats = append(seats, draw.Seat{Name: opponent})
	}
	seats = append(seats, draw.Seat{
		Name:     name,
		Decider:  human,
		Replacer: human,
		ShowHand: true,
	})

	// seating order is part of the game; shuffle it
	for i := len(seats) - 1; i > 0; i-- {
		j := random.Intn(i + 1)
		seats[i], seats[j] = seats[j], seats[i]
	}

	options := draw.Options{
		StartingBalance: cfg.Game.StartingBalance,
		Ante:            cfg.Game.Ante,
		Denomination:    cfg.Game.Denomination,
		FirstBetFloor:   cfg.Game.FirstBetFloor,
		Seed:            cfg.Game.Seed,
	}

	game, err := draw.NewGame(logrus.StandardLogger(), seats, options)
	if err != nil {
		logrus.WithError(err).Fatal("could not start game")
	}

	game.SetPresenter(&consolePresenter{viewer: name})
	go drainLog(game.LogChan())

	if err := game.Play(); err != nil {
		logrus.WithError(err).Fatal("game aborted")
	}

	if winner, ok := game.Winner(); ok {
		if winner.Name == name {
			pterm.Success.Printfln("%s wins the game with $%d. Congratulations!", winner.Name, winner.Balance())
		} else {
			pterm.Info.Printfln("%s wins the game with $%d. Better luck next time!", winner.Name, winner.Balance())
		}
	}
}

func drainLog(ch <-chan []*playable.LogMessage) {
	for messages := range ch {
		for _, message := range messages {
			if len(message.Players) == 0 {
				pterm.Info.Println(message.Message)
				continue
			}

			pterm.Println(pterm.Cyan(message.Players[0]) + " " + message.Message)
		}
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" ||
		strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
