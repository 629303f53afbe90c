package game

import (
	"fmt"

	"teg/utils"
)

// Country is a territory a player can own and garrison.
type Country struct {
	ID   int    // Unique identifier from the map data
	Name string // Display name

	continent  *Continent
	neighbours []*Country // Directed adjacency, in declaration order

	player *Player // nil while unassigned
	armies int
}

// Continent returns the continent the country belongs to.
func (c *Country) Continent() *Continent {
	return c.continent
}

// Neighbours returns the countries c may attack, in the order they were declared.
func (c *Country) Neighbours() []*Country {
	out := make([]*Country, len(c.neighbours))
	copy(out, c.neighbours)
	return out
}

// IsNeighbour reports whether other was declared as a neighbour of c.
// Adjacency is directed: the reverse edge has to be declared separately.
func (c *Country) IsNeighbour(other *Country) bool {
	return utils.Contains(c.neighbours, other)
}

// Owner returns the player holding the country, or nil.
func (c *Country) Owner() *Player {
	return c.player
}

// Armies returns the number of armies garrisoned in the country.
func (c *Country) Armies() int {
	return c.armies
}

func (c *Country) String() string {
	if c.player != nil {
		return fmt.Sprintf("%s (%s, %d)", c.Name, c.player.Name, c.armies)
	}
	return fmt.Sprintf("%s (%d)", c.Name, c.armies)
}

// Continent groups countries and grants Bonus armies to whoever holds all of them.
type Continent struct {
	ID    int
	Name  string
	Bonus int

	countries []*Country
}

// Countries returns the member countries in load order.
func (c *Continent) Countries() []*Country {
	out := make([]*Country, len(c.countries))
	copy(out, c.countries)
	return out
}

// ConqueredBy reports whether p owns every country of the continent.
func (c *Continent) ConqueredBy(p *Player) bool {
	for _, country := range c.countries {
		if country.player != p {
			return false
		}
	}
	return true
}

// CountOwnedBy returns how many countries of the continent p owns.
func (c *Continent) CountOwnedBy(p *Player) int {
	n := 0
	for _, country := range c.countries {
		if country.player == p {
			n++
		}
	}
	return n
}

func (c *Continent) String() string {
	return fmt.Sprintf("%s (%d countries)", c.Name, len(c.countries))
}

// Map is the static board: continents, countries and their borders.
type Map struct {
	Continents []*Continent // Load order
	Countries  []*Country   // Load order, the global country order of the game

	continentsByID map[int]*Continent
	countriesByID  map[int]*Country
	frozen         bool
}

// NewMap creates and returns an empty Map.
func NewMap() *Map {
	return &Map{
		continentsByID: make(map[int]*Continent),
		countriesByID:  make(map[int]*Country),
	}
}

// AddContinent adds a new continent to the map.
func (m *Map) AddContinent(id int, name string, bonus int) (*Continent, error) {
	if m.frozen {
		return nil, ErrMapFrozen
	}
	if _, ok := m.continentsByID[id]; ok {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateContinent, id)
	}
	cont := &Continent{ID: id, Name: name, Bonus: bonus}
	m.Continents = append(m.Continents, cont)
	m.continentsByID[id] = cont
	return cont, nil
}

// AddCountry adds a new country to the map and to its continent.
func (m *Map) AddCountry(id int, name string, continentID int) (*Country, error) {
	if m.frozen {
		return nil, ErrMapFrozen
	}
	if _, ok := m.countriesByID[id]; ok {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateCountry, id)
	}
	cont, ok := m.continentsByID[continentID]
	if !ok {
		return nil, fmt.Errorf("%w: %d (country %d)", ErrUnknownContinent, continentID, id)
	}
	country := &Country{ID: id, Name: name, continent: cont}
	m.Countries = append(m.Countries, country)
	m.countriesByID[id] = country
	cont.countries = append(cont.countries, country)
	return country, nil
}

// AddNeighbour declares that countryID borders neighbourID. Only this
// direction is added.
func (m *Map) AddNeighbour(countryID, neighbourID int) error {
	if m.frozen {
		return ErrMapFrozen
	}
	country, ok := m.countriesByID[countryID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownCountry, countryID)
	}
	neighbour, ok := m.countriesByID[neighbourID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownCountry, neighbourID)
	}
	if !utils.Contains(country.neighbours, neighbour) {
		country.neighbours = append(country.neighbours, neighbour)
	}
	return nil
}

// Country looks up a country by id.
func (m *Map) Country(id int) (*Country, bool) {
	c, ok := m.countriesByID[id]
	return c, ok
}

// Continent looks up a continent by id.
func (m *Map) Continent(id int) (*Continent, bool) {
	c, ok := m.continentsByID[id]
	return c, ok
}
