package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRandom replays values for Intn (modulo n) and never shuffles.
type scriptedRandom struct {
	values []int
	next   int
}

func (s *scriptedRandom) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func (s *scriptedRandom) Shuffle(int, func(i, j int)) {}

// dice turns die faces into the Intn values that produce them.
func dice(faces ...int) *scriptedRandom {
	values := make([]int, len(faces))
	for i, f := range faces {
		values[i] = f - 1
	}
	return &scriptedRandom{values: values}
}

// newTestMap builds two continents:
//
//	North (bonus 2): 1 Alpha, 2 Bravo, 3 Charlie
//	South (bonus 3): 4 Delta, 5 Echo
//
// with symmetric borders 1-2, 2-3, 3-4, 4-5 and a one-way border 1->5.
func newTestMap(t *testing.T) *Map {
	t.Helper()
	m := NewMap()
	_, err := m.AddContinent(1, "North", 2)
	require.NoError(t, err)
	_, err = m.AddContinent(2, "South", 3)
	require.NoError(t, err)

	for _, c := range []struct {
		id        int
		name      string
		continent int
	}{
		{1, "Alpha", 1}, {2, "Bravo", 1}, {3, "Charlie", 1},
		{4, "Delta", 2}, {5, "Echo", 2},
	} {
		_, err := m.AddCountry(c.id, c.name, c.continent)
		require.NoError(t, err)
	}

	for _, edge := range [][2]int{
		{1, 2}, {2, 1}, {2, 3}, {3, 2}, {3, 4}, {4, 3}, {4, 5}, {5, 4}, {1, 5},
	} {
		require.NoError(t, m.AddNeighbour(edge[0], edge[1]))
	}
	return m
}

// newLineMap builds n countries in one continent, each bordering the next.
func newLineMap(t *testing.T, n int) *Map {
	t.Helper()
	m := NewMap()
	_, err := m.AddContinent(1, "Line", 5)
	require.NoError(t, err)
	for i := 1; i <= n; i++ {
		_, err := m.AddCountry(i, fmt.Sprintf("Country%d", i), 1)
		require.NoError(t, err)
		if i > 1 {
			require.NoError(t, m.AddNeighbour(i-1, i))
			require.NoError(t, m.AddNeighbour(i, i-1))
		}
	}
	return m
}

func newTestGame(t *testing.T, m *Map, r Random, players int) *Game {
	t.Helper()
	g := New(m, WithRandom(r))
	specs := make([]PlayerSpec, players)
	for i := range specs {
		specs[i] = PlayerSpec{Name: fmt.Sprintf("Player %d", i+1), Color: fmt.Sprintf("color%d", i+1)}
	}
	require.NoError(t, g.AssignPlayers(specs))
	return g
}

func country(t *testing.T, g *Game, id int) *Country {
	t.Helper()
	c, ok := g.Map.Country(id)
	require.True(t, ok, "country %d should exist", id)
	return c
}

// own sets owner and armies directly, bypassing the ledger.
func own(c *Country, p *Player, armies int) {
	c.player = p
	c.armies = armies
}
