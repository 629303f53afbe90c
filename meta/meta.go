// meta/meta.go
package meta

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"teg/game"
)

// MIN_PLAYERS and MAX_PLAYERS bound the number of seats at the table.
const MIN_PLAYERS = game.MinPlayers
const MAX_PLAYERS = game.MaxPlayers

// Config holds everything needed to set up a game.
type Config struct {
	DataDir                string         `yaml:"data_dir" env:"TEG_DATA_DIR"`                                 // Directory with the map files
	Players                []PlayerConfig `yaml:"players"`                                                     // Seating order
	WorldDominationPercent float64        `yaml:"world_domination_percent" env:"TEG_WORLD_DOMINATION_PERCENT"` // Share of the map that wins the game
	MinArmiesPerTurn       int            `yaml:"min_armies_per_turn" env:"TEG_MIN_ARMIES_PER_TURN"`           // Reinforcement floor
	MaxBattleTroops        int            `yaml:"max_battle_troops" env:"TEG_MAX_BATTLE_TROOPS"`               // Dice cap for both sides of a battle
	Seed                   uint64         `yaml:"seed" env:"TEG_SEED"`                                         // 0 picks a random seed
	Log                    LogConfig      `yaml:"log" envPrefix:"TEG_LOG_"`
}

type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// LogConfig controls the global logger. File output is rotated once it
// reaches MaxSize megabytes.
type LogConfig struct {
	Level      string `yaml:"level" env:"LEVEL"`
	JSON       bool   `yaml:"json" env:"JSON"`
	File       string `yaml:"file" env:"FILE"`
	MaxSize    int    `yaml:"max_size" env:"MAX_SIZE"`
	MaxBackups int    `yaml:"max_backups" env:"MAX_BACKUPS"`
	MaxAge     int    `yaml:"max_age" env:"MAX_AGE"`
	Compress   bool   `yaml:"compress" env:"COMPRESS"`
}

var (
	ErrPlayerCount = errors.New("invalid number of players")
	ErrPlayerName  = errors.New("player name is empty")
	ErrPercent     = errors.New("world domination percent must be in (0, 1]")
	ErrMinArmies   = errors.New("min armies per turn must be positive")
	ErrMaxTroops   = errors.New("max battle troops must be positive")
	ErrDataDir     = errors.New("data dir is empty")
)

// Default returns a two player game on the bundled map.
func Default() Config {
	return Config{
		DataDir: "game_data",
		Players: []PlayerConfig{
			{Name: "Player 1", Color: "red"},
			{Name: "Player 2", Color: "blue"},
		},
		WorldDominationPercent: 0.6,
		MinArmiesPerTurn:       3,
		MaxBattleTroops:        3,
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load starts from Default, applies the YAML file at path when path is not
// empty, then the TEG_ environment variables, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDir
	}
	if len(c.Players) < MIN_PLAYERS || len(c.Players) > MAX_PLAYERS {
		return fmt.Errorf("%w: %d, want %d to %d", ErrPlayerCount, len(c.Players), MIN_PLAYERS, MAX_PLAYERS)
	}
	for i, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("%w: seat %d", ErrPlayerName, i+1)
		}
	}
	if c.WorldDominationPercent <= 0 || c.WorldDominationPercent > 1 {
		return fmt.Errorf("%w: %v", ErrPercent, c.WorldDominationPercent)
	}
	if c.MinArmiesPerTurn < 1 {
		return ErrMinArmies
	}
	if c.MaxBattleTroops < 1 {
		return ErrMaxTroops
	}
	return nil
}
