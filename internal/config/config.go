package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"drawpoker/internal/util"
)

// Config provides configuration for the draw poker table
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	}
	Game struct {
		StartingBalance int   `yaml:"startingBalance" envconfig:"starting_balance"`
		Ante            int   `yaml:"ante" envconfig:"ante"`
		Denomination    int   `yaml:"denomination" envconfig:"denomination"`
		FirstBetFloor   int   `yaml:"firstBetFloor" envconfig:"first_bet_floor"`
		ComputerSeats   int   `yaml:"computerSeats" envconfig:"computer_seats"`
		Seed            int64 `yaml:"seed" envconfig:"seed"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults plus the environment apply.
func Load() error {
	config = Config{}
	config.Game.StartingBalance = 10000
	config.Game.Ante = 50
	config.Game.Denomination = 10
	config.Game.FirstBetFloor = 100
	config.Game.ComputerSeats = 3

	configFile := util.Getenv("DRAWPOKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("drawpoker", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
