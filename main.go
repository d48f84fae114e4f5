package main

import (
	"flag"
	"os"
	"othello/experiments"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment config; overrides -preset")
	preset := flag.String("preset", "tournament", "Built-in experiment to run when no config is given")
	games := flag.Int("games", 0, "Games per match up; 0 keeps the configured number")
	out := flag.String("out", "results", "Directory the experiment records are written under")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	seed := flag.Uint64("seed", 0, "Experiment seed; 0 keeps the configured seed")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	config, err := loadConfig(*configPath, *preset)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load experiment")
	}
	if *games > 0 {
		config.Games = *games
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	result, err := experiments.Run(config, *out)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", config.Name)
	}
	log.Info().Msgf("results written to %s", result.Dir)
}

func loadConfig(path, preset string) (experiments.Config, error) {
	if path != "" {
		return experiments.LoadConfig(path)
	}
	return experiments.Preset(preset)
}
