package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"teg/experiments"
	"teg/game"
	"teg/gamemaster"
	"teg/logging"
	"teg/meta"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	dataDir := flag.String("data", "", "Directory with the map files, overrides the config")
	odds := flag.Bool("odds", false, "Run the battle odds experiment after setup")
	trials := flag.Int("trials", experiments.DefaultTrials, "Battles per match up for the odds experiment")
	oddsDir := flag.String("odds-dir", "experiments", "Where to store the odds experiment results")
	flag.Parse()

	cfg, err := meta.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if err := logging.Init(cfg.Log); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}

	gm, err := gamemaster.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}
	if err := gm.Setup(); err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}

	for _, line := range gm.Board() {
		log.Info().Msg(line)
	}
	for _, p := range gm.Game.Players() {
		log.Info().Msgf("%s owns %d countries and receives %d armies per turn plus %d continent bonus",
			p, len(p.Countries()), gm.Game.ReinforcementsFor(p), gm.Game.ContinentBonusFor(p))
	}

	if !*odds {
		return
	}
	seed := cfg.Seed
	if seed == 0 {
		if seed, err = game.NewSeed(); err != nil {
			log.Fatal().Err(err).Msg("failed to seed random source")
		}
	}
	if _, err := experiments.RunBattleOddsExperiment(*oddsDir, *trials, game.NewRandom(seed)); err != nil {
		log.Error().Err(err).Msg("battle odds experiment failed")
		os.Exit(1)
	}
}
