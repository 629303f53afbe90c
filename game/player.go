package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Player is one of the game's participants. Players are never removed, even
// after losing their last country.
type Player struct {
	ID    uuid.UUID
	Name  string
	Color string // Display token only, the engine never interprets it

	objectives []Objective
	countries  []*Country // Refreshed by Game.UpdatePlayerCountries
	hand       []Card
	trades     int
}

// PlayerSpec describes a player to be created by Game.AssignPlayers.
type PlayerSpec struct {
	Name  string
	Color string
}

func newPlayer(name, color string) *Player {
	return &Player{
		ID:    uuid.New(),
		Name:  name,
		Color: color,
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Color)
}

// AddObjective appends an objective the player can win with.
func (p *Player) AddObjective(o Objective) {
	p.objectives = append(p.objectives, o)
}

// Objectives returns the player's objectives in the order they were added.
func (p *Player) Objectives() []Objective {
	out := make([]Objective, len(p.objectives))
	copy(out, p.objectives)
	return out
}

// Countries returns the owned-country list as of the last
// Game.UpdatePlayerCountries call for this player.
func (p *Player) Countries() []*Country {
	out := make([]*Country, len(p.countries))
	copy(out, p.countries)
	return out
}

// Hand returns the cards the player holds.
func (p *Player) Hand() []Card {
	out := make([]Card, len(p.hand))
	copy(out, p.hand)
	return out
}

// Trades returns how many card sets the player has traded in.
func (p *Player) Trades() int {
	return p.trades
}
