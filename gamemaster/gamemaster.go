package gamemaster

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"teg/game"
	"teg/mapfile"
	"teg/meta"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// GameMaster loads a board from configuration, runs the initial setup and
// resolves attacks until someone reaches an objective.
type GameMaster struct {
	Game  *game.Game
	Cards []game.Card // Country cards, empty when the map ships none

	cfg      meta.Config
	updateCh chan Update
	gameOver bool
}

// New loads the map from cfg.DataDir and seats the configured players.
// Options are applied after the ones derived from cfg, so they win.
func New(cfg meta.Config, opts ...game.Option) (*GameMaster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := mapfile.Load(cfg.DataDir, mapfile.DefaultFiles())
	if err != nil {
		return nil, fmt.Errorf("load map from %s: %w", cfg.DataDir, err)
	}

	options := []game.Option{game.WithRules(&game.StandardRules{
		MaxAttackDice: cfg.MaxBattleTroops,
		MaxDefendDice: cfg.MaxBattleTroops,
		MinArmies:     cfg.MinArmiesPerTurn,
	})}
	if cfg.Seed != 0 {
		options = append(options, game.WithRandom(game.NewRandom(cfg.Seed)))
	}
	g := game.New(data.Map, append(options, opts...)...)

	specs := make([]game.PlayerSpec, len(cfg.Players))
	for i, p := range cfg.Players {
		specs[i] = game.PlayerSpec{Name: p.Name, Color: p.Color}
	}
	if err := g.AssignPlayers(specs); err != nil {
		return nil, err
	}

	log.Info().Msgf("game %s created with %d countries and %d players", g.ID, len(g.Countries()), len(specs))
	return &GameMaster{
		Game:     g,
		Cards:    data.Cards,
		cfg:      cfg,
		updateCh: make(chan Update, updateBuffer),
	}, nil
}

// Setup deals the board, settles leftover countries by a dice-off, scatters
// the setup armies, hands out the world domination objective and shuffles
// the deck.
func (gm *GameMaster) Setup() error {
	leftovers, err := gm.Game.DealInitialCountriesEqually()
	if err != nil {
		return err
	}
	for _, c := range leftovers {
		winner := gm.diceOff()
		if err := gm.Game.AssignCountry(c, winner); err != nil {
			return err
		}
		log.Info().Msgf("%s wins the dice-off for %s", winner.Name, c.Name)
	}

	if !gm.Game.InitialSetupReady() {
		return fmt.Errorf("setup left %d countries unowned", len(gm.Game.UnassignedCountries()))
	}
	if err := gm.Game.DistributeSetupArmies(); err != nil {
		return err
	}

	objective, err := gm.Game.LoadWorldDominationObjective(gm.cfg.WorldDominationPercent)
	if err != nil {
		return err
	}
	log.Info().Msgf("objective for everyone: %s", objective)

	gm.Game.InitializeDeck(gm.Cards)
	return nil
}

// diceOff rolls one die per player in seating order. The first highest roll
// wins, so ties favour the earlier player.
func (gm *GameMaster) diceOff() *game.Player {
	var winner *game.Player
	best := 0
	for _, p := range gm.Game.Players() {
		roll := gm.Game.Random().Intn(6) + 1
		log.Debug().Msgf("%s rolls %d", p.Name, roll)
		if roll > best {
			winner, best = p, roll
		}
	}
	return winner
}

// Board describes every country, one line each, in map order.
func (gm *GameMaster) Board() []string {
	lines := make([]string, 0, len(gm.Game.Countries()))
	for _, c := range gm.Game.Countries() {
		lines = append(lines, fmt.Sprintf("%s [%s]", c, c.Continent().Name))
	}
	return lines
}

// Winner reports the first player in seating order who achieved an objective.
func (gm *GameMaster) Winner() (*game.Player, game.Objective, bool) {
	return gm.Game.CheckForWinner()
}
