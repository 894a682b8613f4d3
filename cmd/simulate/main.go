package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"drawpoker/internal/config"
	"drawpoker/internal/rng"
	"drawpoker/internal/util"
	"drawpoker/pkg/playable/draw"
)

// simulate runs computer-only games back to back, which is handy for tuning
// the decision model and the entry-fee schedule.

var (
	games = flag.Int("games", 100, "number of games to simulate")
	table = flag.Int("table", 4, "number of seats per game")
	seed  = flag.Int64("seed", 0, "base seed; 0 picks a crypto-random game")
)

func main() {
	flag.Parse()

	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	var random rng.Generator = rng.Crypto{}
	if *seed != 0 {
		random = rng.NewSeeded(*seed)
	}

	names := util.RandomSeatNames(random, *table)
	seats := make([]draw.Seat, *table)
	for i, name := range names {
		seats[i] = draw.Seat{Name: name}
	}

	options := draw.Options{
		StartingBalance: cfg.Game.StartingBalance,
		Ante:            cfg.Game.Ante,
		Denomination:    cfg.Game.Denomination,
		FirstBetFloor:   cfg.Game.FirstBetFloor,
	}

	wins := make(map[string]int, *table)
	rounds := 0

	for i := 0; i < *games; i++ {
		if *seed != 0 {
			options.Seed = *seed + int64(i)*1000
		}

		game, err := draw.NewGame(logrus.StandardLogger(), seats, options)
		if err != nil {
			logrus.WithError(err).Fatal("could not create game")
		}

		go func(game *draw.Game) {
			for range game.LogChan() {
			}
		}(game)

		if err := game.Play(); err != nil {
			logrus.WithError(err).WithField("game", i).Fatal("simulation aborted")
		}

		winner, _ := game.Winner()
		wins[winner.Name]++
		rounds += game.Round()
	}

	logrus.WithFields(logrus.Fields{
		"games":      *games,
		"seats":      *table,
		"meanRounds": float64(rounds) / float64(*games),
	}).Info("simulation finished")

	for name, count := range wins {
		logrus.WithFields(logrus.Fields{
			"player": name,
			"wins":   count,
		}).Info("result")
	}
}
