package game

import (
	"fmt"
	"strings"
)

// Objective is a win condition. The set of variants is closed:
// *WorldDomination, *Annihilation and *Conquest.
type Objective interface {
	// Achieved reports whether p has fulfilled the objective.
	Achieved(p *Player) bool
	String() string

	objective()
}

// WorldDomination is the shared objective of owning a number of countries.
type WorldDomination struct {
	Countries int // Threshold

	all []*Country
}

// NewWorldDomination requires owning at least threshold of the given countries.
func NewWorldDomination(threshold int, all []*Country) *WorldDomination {
	return &WorldDomination{Countries: threshold, all: all}
}

func (o *WorldDomination) Achieved(p *Player) bool {
	owned := 0
	for _, c := range o.all {
		if c.player == p {
			owned++
		}
	}
	return owned >= o.Countries
}

func (o *WorldDomination) String() string {
	return fmt.Sprintf("World domination - Conquer a total of %d countries", o.Countries)
}

func (*WorldDomination) objective() {}

// Annihilation is achieved once the target player holds no country.
type Annihilation struct {
	Target *Player

	all []*Country
}

// NewAnnihilation requires target to be left without countries among all.
func NewAnnihilation(target *Player, all []*Country) *Annihilation {
	return &Annihilation{Target: target, all: all}
}

// Achieved looks at the board itself rather than the target's cached
// country list, so a missing Game.UpdatePlayerCountries call cannot hide
// the result.
func (o *Annihilation) Achieved(_ *Player) bool {
	for _, c := range o.all {
		if c.player == o.Target {
			return false
		}
	}
	return true
}

func (o *Annihilation) String() string {
	return fmt.Sprintf("Eliminate %s", o.Target)
}

func (*Annihilation) objective() {}

// ContinentQuota asks for at least Countries countries of Continent.
type ContinentQuota struct {
	Continent *Continent
	Countries int
}

// Conquest is achieved by holding whole continents and/or a minimum number
// of countries in given continents.
type Conquest struct {
	continents []*Continent
	quotas     []ContinentQuota
}

// NewConquest fails with ErrEmptyConquest when both lists are empty.
func NewConquest(continents []*Continent, quotas []ContinentQuota) (*Conquest, error) {
	if len(continents) == 0 && len(quotas) == 0 {
		return nil, ErrEmptyConquest
	}
	return &Conquest{
		continents: append([]*Continent(nil), continents...),
		quotas:     append([]ContinentQuota(nil), quotas...),
	}, nil
}

func (o *Conquest) Achieved(p *Player) bool {
	for _, cont := range o.continents {
		if !cont.ConqueredBy(p) {
			return false
		}
	}
	for _, q := range o.quotas {
		if q.Continent.CountOwnedBy(p) < q.Countries {
			return false
		}
	}
	return true
}

func (o *Conquest) String() string {
	var parts []string
	for _, cont := range o.continents {
		parts = append(parts, "the continent of "+cont.Name)
	}
	for _, q := range o.quotas {
		parts = append(parts, fmt.Sprintf("%d countries of the continent of %s", q.Countries, q.Continent.Name))
	}
	return "Conquer " + strings.Join(parts, ", ")
}

func (*Conquest) objective() {}
