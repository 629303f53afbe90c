package game

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	MinPlayers = 2
	MaxPlayers = 6
)

type Option func(g *Game)

// WithRandom replaces the default pseudo-random source.
func WithRandom(r Random) Option {
	return func(g *Game) {
		if r != nil {
			g.random = r
		}
	}
}

func WithRules(r Rules) Option {
	return func(g *Game) {
		if r != nil {
			g.rules = r
		}
	}
}

// Game owns the board, the players and the history of battles. Every change
// to countries and players goes through its methods.
type Game struct {
	ID  uuid.UUID
	Map *Map

	players        []*Player
	battles        []*Battle
	rules          Rules
	random         Random
	worldObjective *WorldDomination
	deck           deck
}

// New creates a game on m. The map cannot be modified afterwards.
func New(m *Map, options ...Option) *Game {
	if m == nil {
		m = NewMap()
	}
	m.frozen = true

	g := &Game{ // Default values
		ID:    uuid.New(),
		Map:   m,
		rules: NewStandardRules(),
	}
	for _, option := range options {
		option(g)
	}
	if g.random == nil {
		seed, err := NewSeed()
		if err != nil {
			seed = uint64(time.Now().UnixNano())
		}
		g.random = NewRandom(seed)
	}
	return g
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Random() Random {
	return g.random
}

// Countries returns every country in the global order.
func (g *Game) Countries() []*Country {
	return g.Map.Countries
}

func (g *Game) Continents() []*Continent {
	return g.Map.Continents
}

// Players returns the players in turn order.
func (g *Game) Players() []*Player {
	out := make([]*Player, len(g.players))
	copy(out, g.players)
	return out
}

// Battles returns every battle declared in this game, oldest first.
func (g *Game) Battles() []*Battle {
	out := make([]*Battle, len(g.battles))
	copy(out, g.battles)
	return out
}

// WorldObjective returns the shared world domination objective, if loaded.
func (g *Game) WorldObjective() *WorldDomination {
	return g.worldObjective
}

// AssignPlayers creates the game's players in the given order.
func (g *Game) AssignPlayers(specs []PlayerSpec) error {
	if len(specs) < MinPlayers || len(specs) > MaxPlayers {
		return fmt.Errorf("%w: %d, need %d to %d", ErrPlayerCount, len(specs), MinPlayers, MaxPlayers)
	}
	seen := make(map[string]bool, len(specs))
	players := make([]*Player, 0, len(specs))
	for _, s := range specs {
		if seen[s.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicatePlayer, s.Name)
		}
		seen[s.Name] = true
		players = append(players, newPlayer(s.Name, s.Color))
	}
	g.players = players
	return nil
}

// CountriesOwnedBy lists p's countries in the global order, optionally only
// those with more than one army.
func (g *Game) CountriesOwnedBy(p *Player, onlyWithMoreThanOne bool) []*Country {
	var countries []*Country
	for _, c := range g.Map.Countries {
		if c.player != p {
			continue
		}
		if onlyWithMoreThanOne && c.armies <= 1 {
			continue
		}
		countries = append(countries, c)
	}
	return countries
}

// UnassignedCountries lists countries nobody owns.
func (g *Game) UnassignedCountries() []*Country {
	var countries []*Country
	for _, c := range g.Map.Countries {
		if c.player == nil {
			countries = append(countries, c)
		}
	}
	return countries
}

// UpdatePlayerCountries refreshes p's cached country list.
func (g *Game) UpdatePlayerCountries(p *Player) {
	p.countries = g.CountriesOwnedBy(p, false)
}

// InitialSetupReady reports whether there are enough players and every
// country has an owner.
func (g *Game) InitialSetupReady() bool {
	if len(g.players) < MinPlayers {
		return false
	}
	return len(g.UnassignedCountries()) == 0
}

// DealInitialCountriesEqually gives each player floor(countries/players)
// random countries. The remainder is returned still unowned, to be assigned
// one by one by the caller. Every country must still be unowned.
func (g *Game) DealInitialCountriesEqually() ([]*Country, error) {
	if len(g.Map.Countries) == 0 {
		return nil, ErrNoCountries
	}
	if len(g.players) == 0 {
		return nil, ErrNoPlayers
	}
	if owned := len(g.Map.Countries) - len(g.UnassignedCountries()); owned > 0 {
		return nil, fmt.Errorf("%w: %d countries dealt already", ErrAlreadyOwned, owned)
	}

	toDeal := make([]*Country, len(g.Map.Countries))
	copy(toDeal, g.Map.Countries)
	g.random.Shuffle(len(toDeal), func(i, j int) {
		toDeal[i], toDeal[j] = toDeal[j], toDeal[i]
	})

	perPlayer := len(toDeal) / len(g.players)
	for _, p := range g.players {
		for i := 0; i < perPlayer; i++ {
			c := toDeal[len(toDeal)-1]
			toDeal = toDeal[:len(toDeal)-1]
			c.player = p
		}
		g.UpdatePlayerCountries(p)
	}

	log.Info().Msgf("dealt %d countries to each of %d players, %d left", perPlayer, len(g.players), len(toDeal))
	return toDeal, nil
}

// AssignCountry gives an unowned country to p.
func (g *Game) AssignCountry(c *Country, p *Player) error {
	if !g.hasPlayer(p) {
		return ErrUnknownPlayer
	}
	if c.player != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyOwned, c.Name)
	}
	c.player = p
	g.UpdatePlayerCountries(p)
	return nil
}

// AddTroopsToAll adds n armies to every country.
func (g *Game) AddTroopsToAll(n int) error {
	if len(g.Map.Countries) == 0 {
		return ErrNoCountries
	}
	for _, c := range g.Map.Countries {
		c.armies += n
	}
	return nil
}

// PlaceArmies adds n reinforcement armies to a country p owns.
func (g *Game) PlaceArmies(p *Player, c *Country, n int) error {
	if n <= 0 {
		return ErrInvalidArmies
	}
	if c.player != p {
		return fmt.Errorf("%w: %s", ErrNotOwner, c.Name)
	}
	c.armies += n
	return nil
}

// MoveArmies regroups n armies between two adjacent countries of the same
// player. At least one army stays behind.
func (g *Game) MoveArmies(from, to *Country, n int) error {
	if n <= 0 {
		return ErrInvalidArmies
	}
	if from.player == nil || from.player != to.player {
		return fmt.Errorf("%w: %s and %s", ErrNotOwner, from.Name, to.Name)
	}
	if !from.IsNeighbour(to) {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, from.Name, to.Name)
	}
	if from.armies <= n {
		return fmt.Errorf("%w: %s has %d", ErrNotEnoughArmies, from.Name, from.armies)
	}
	from.armies -= n
	to.armies += n
	return nil
}

// CallAttack declares a battle from one country on a declared neighbour and
// records it in the game's history.
func (g *Game) CallAttack(from, to *Country, troops int) (*Battle, error) {
	b, err := NewBattle(from, to, troops, g.rules)
	if err != nil {
		return nil, err
	}
	if !from.IsNeighbour(to) {
		return nil, fmt.Errorf("%w: %s cannot reach %s", ErrNotAdjacent, from.Name, to.Name)
	}
	g.battles = append(g.battles, b)
	return b, nil
}

// Attack runs a whole battle: declaration, attacker dice, defender dice and
// resolution. Both players' country lists are refreshed afterwards.
func (g *Game) Attack(from, to *Country, troops int) (*Battle, error) {
	b, err := g.CallAttack(from, to, troops)
	if err != nil {
		return nil, err
	}
	if _, err := b.RollAttackerDice(g.random); err != nil {
		return b, err
	}
	if _, err := b.RollDefenderDice(g.random); err != nil {
		return b, err
	}
	if err := b.Calculate(); err != nil {
		return b, fmt.Errorf("battle %s: %w", b.ID, err)
	}
	g.UpdatePlayerCountries(b.AttackingPlayer)
	g.UpdatePlayerCountries(b.DefendingPlayer)
	return b, nil
}

// LoadWorldDominationObjective gives every player the objective of owning
// ceil(percent * countries) countries. All players share one instance.
func (g *Game) LoadWorldDominationObjective(percent float64) (*WorldDomination, error) {
	if len(g.Map.Countries) == 0 {
		return nil, ErrNoCountries
	}
	if len(g.players) == 0 {
		return nil, ErrNoPlayers
	}
	if percent <= 0 || percent > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPercent, percent)
	}

	threshold := int(math.Ceil(percent * float64(len(g.Map.Countries))))
	g.worldObjective = NewWorldDomination(threshold, g.Map.Countries)
	for _, p := range g.players {
		p.AddObjective(g.worldObjective)
	}
	return g.worldObjective, nil
}

// CheckForWinner returns the first player, in turn order, with an achieved
// objective. Simultaneous wins are not detected.
func (g *Game) CheckForWinner() (*Player, Objective, bool) {
	for _, p := range g.players {
		for _, o := range p.objectives {
			if o.Achieved(p) {
				log.Info().Msgf("%s achieved: %s", p.Name, o)
				return p, o, true
			}
		}
	}
	return nil, nil, false
}

// ReinforcementsFor is the number of armies p receives at the start of a turn.
func (g *Game) ReinforcementsFor(p *Player) int {
	return reinforcements(len(g.CountriesOwnedBy(p, false)), g.rules.MinArmiesPerTurn())
}

// ContinentBonusFor sums the bonus of every continent p fully owns.
func (g *Game) ContinentBonusFor(p *Player) int {
	bonus := 0
	for _, cont := range g.Map.Continents {
		if len(cont.countries) > 0 && cont.ConqueredBy(p) {
			bonus += cont.Bonus
		}
	}
	return bonus
}

func (g *Game) hasPlayer(p *Player) bool {
	if p == nil {
		return false
	}
	for _, pl := range g.players {
		if pl == p {
			return true
		}
	}
	return false
}
