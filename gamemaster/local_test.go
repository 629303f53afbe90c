package gamemaster

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"teg/game"
	"teg/meta"
)

// fixedRandom replays values for Intn, then keeps returning 0. Shuffle keeps
// the original order.
type fixedRandom struct {
	values []int
	next   int
}

func (r *fixedRandom) Intn(n int) int {
	if r.next >= len(r.values) {
		return 0
	}
	v := r.values[r.next] % n
	r.next++
	return v
}

func (r *fixedRandom) Shuffle(int, func(i, j int)) {}

func testConfig(players ...string) meta.Config {
	cfg := meta.Default()
	cfg.DataDir = filepath.Join("..", "game_data")
	cfg.Seed = 42
	cfg.Players = nil
	for _, name := range players {
		cfg.Players = append(cfg.Players, meta.PlayerConfig{Name: name, Color: strings.ToLower(name)})
	}
	return cfg
}

func newSetUpGameMaster(t *testing.T, cfg meta.Config, opts ...game.Option) *GameMaster {
	t.Helper()
	gm, err := New(cfg, opts...)
	require.NoError(t, err)
	require.NoError(t, gm.Setup())
	return gm
}

// frontier finds a country of p bordering a country of another player.
func frontier(t *testing.T, g *game.Game, p *game.Player) (*game.Country, *game.Country) {
	t.Helper()
	for _, c := range g.CountriesOwnedBy(p, false) {
		for _, n := range c.Neighbours() {
			if n.Owner() != p {
				return c, n
			}
		}
	}
	t.Fatalf("%s has no frontier", p.Name)
	return nil, nil
}

func TestNew(t *testing.T) {
	t.Run("loads the bundled map", func(t *testing.T) {
		gm, err := New(testConfig("Ana", "Bruno"))
		require.NoError(t, err)

		require.Len(t, gm.Game.Countries(), 26)
		require.Len(t, gm.Game.Players(), 2)
		require.Len(t, gm.Cards, 26)
		require.Equal(t, 3, gm.Game.Rules().MaxAttackTroops())
		require.Len(t, gm.Game.UnassignedCountries(), 26)
	})

	t.Run("rules follow the config", func(t *testing.T) {
		cfg := testConfig("Ana", "Bruno")
		cfg.MaxBattleTroops = 2
		cfg.MinArmiesPerTurn = 5
		gm, err := New(cfg)
		require.NoError(t, err)

		require.Equal(t, 2, gm.Game.Rules().MaxAttackTroops())
		require.Equal(t, 2, gm.Game.Rules().MaxDefendTroops())
		require.Equal(t, 5, gm.Game.Rules().MinArmiesPerTurn())
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := New(testConfig("Ana"))
		require.ErrorIs(t, err, meta.ErrPlayerCount)
	})

	t.Run("missing map", func(t *testing.T) {
		cfg := testConfig("Ana", "Bruno")
		cfg.DataDir = t.TempDir()
		_, err := New(cfg)
		require.Error(t, err)
	})
}

func TestSetup(t *testing.T) {
	t.Run("every country is owned and garrisoned", func(t *testing.T) {
		gm := newSetUpGameMaster(t, testConfig("Ana", "Bruno", "Carla", "Dora"))
		g := gm.Game

		require.True(t, g.InitialSetupReady())
		total := 0
		for _, c := range g.Countries() {
			require.GreaterOrEqual(t, c.Armies(), 1)
			total += c.Armies()
		}
		require.Equal(t, 26+3*4, total)

		require.Equal(t, 16, g.WorldObjective().Countries)
		for _, p := range g.Players() {
			require.Contains(t, p.Objectives(), game.Objective(g.WorldObjective()))
			require.GreaterOrEqual(t, len(p.Countries()), 6)
		}
		require.Equal(t, 26, g.DeckSize())
	})

	t.Run("dice-off settles leftovers", func(t *testing.T) {
		// Country 1: rolls 3, 6, 6. Country 2: rolls 6, 6, 6.
		r := &fixedRandom{values: []int{2, 5, 5, 5, 5, 5}}
		gm := newSetUpGameMaster(t, testConfig("Ana", "Bruno", "Carla"), game.WithRandom(r))
		g := gm.Game
		ana, bruno := g.Players()[0], g.Players()[1]

		first, _ := g.Map.Country(1)
		second, _ := g.Map.Country(2)
		require.Equal(t, bruno, first.Owner(), "Ties go to the earlier player")
		require.Equal(t, ana, second.Owner())
		require.Len(t, ana.Countries(), 9)
		require.Len(t, bruno.Countries(), 9)
		require.Len(t, g.Players()[2].Countries(), 8)
	})

	t.Run("same seed same board", func(t *testing.T) {
		a := newSetUpGameMaster(t, testConfig("Ana", "Bruno"))
		b := newSetUpGameMaster(t, testConfig("Ana", "Bruno"))

		require.Len(t, a.Board(), 26)
		for i, line := range a.Board() {
			owner := func(gm *GameMaster) string { return gm.Game.Countries()[i].Owner().Name }
			require.Equal(t, owner(a), owner(b), line)
			require.Equal(t, a.Game.Countries()[i].Armies(), b.Game.Countries()[i].Armies(), line)
		}
	})

	t.Run("second setup is rejected", func(t *testing.T) {
		gm := newSetUpGameMaster(t, testConfig("Ana", "Bruno"))
		armies := 0
		for _, c := range gm.Game.Countries() {
			armies += c.Armies()
		}

		require.ErrorIs(t, gm.Setup(), game.ErrAlreadyOwned)

		after := 0
		for _, c := range gm.Game.Countries() {
			after += c.Armies()
		}
		require.Equal(t, armies, after)
	})

	t.Run("no winner after setup", func(t *testing.T) {
		gm := newSetUpGameMaster(t, testConfig("Ana", "Bruno"))
		_, _, won := gm.Winner()
		require.False(t, won)
	})
}

func TestBoard(t *testing.T) {
	gm := newSetUpGameMaster(t, testConfig("Ana", "Bruno"))
	board := gm.Board()

	require.Len(t, board, 26)
	require.True(t, strings.HasPrefix(board[3], "Bern ("), board[3])
	require.True(t, strings.HasSuffix(board[3], "[Espace Mittelland]"), board[3])
}

func TestAttack(t *testing.T) {
	t.Run("battle is published", func(t *testing.T) {
		gm := newSetUpGameMaster(t, testConfig("Ana", "Bruno"))
		g := gm.Game
		ana := g.Players()[0]
		from, to := frontier(t, g, ana)
		require.NoError(t, g.PlaceArmies(ana, from, 5))

		b, err := gm.Attack(from.ID, to.ID, 3)
		require.NoError(t, err)
		require.True(t, b.Decided())
		require.Equal(t, min(b.AttackerTroops, b.DefenderTroops), b.AttackerCasualties+b.DefenderCasualties)

		u, ok := gm.Updates()()
		require.True(t, ok)
		require.Equal(t, b, u.Battle)
		require.Nil(t, u.Winner)

		_, ok = gm.Updates()()
		require.False(t, ok, "Nothing else is pending")
	})

	t.Run("unknown country", func(t *testing.T) {
		gm := newSetUpGameMaster(t, testConfig("Ana", "Bruno"))
		_, err := gm.Attack(99, 1, 1)
		require.ErrorIs(t, err, game.ErrUnknownCountry)
		_, err = gm.Attack(1, 99, 1)
		require.ErrorIs(t, err, game.ErrUnknownCountry)
	})

	t.Run("rule violations are not published", func(t *testing.T) {
		gm := newSetUpGameMaster(t, testConfig("Ana", "Bruno"))
		ana := gm.Game.Players()[0]
		owned := gm.Game.CountriesOwnedBy(ana, false)

		_, err := gm.Attack(owned[0].ID, owned[0].ID, 1)
		require.ErrorIs(t, err, game.ErrSelfAttack)
		_, ok := gm.Updates()()
		require.False(t, ok)
	})

	t.Run("game over", func(t *testing.T) {
		cfg := testConfig("Ana", "Bruno")
		cfg.WorldDominationPercent = 0.5
		gm := newSetUpGameMaster(t, cfg)
		g := gm.Game
		ana := g.Players()[0]
		from, to := frontier(t, g, ana)
		require.NoError(t, g.PlaceArmies(ana, from, 5))

		_, err := gm.Attack(from.ID, to.ID, 1)
		require.NoError(t, err)
		require.True(t, gm.GameOver())

		u, ok := gm.Updates()()
		require.True(t, ok)
		require.Equal(t, ana, u.Winner)
		require.Equal(t, game.Objective(g.WorldObjective()), u.Objective)

		_, ok = gm.Updates()()
		require.False(t, ok)

		_, err = gm.Attack(from.ID, to.ID, 1)
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("final update survives a full buffer", func(t *testing.T) {
		cfg := testConfig("Ana", "Bruno")
		cfg.WorldDominationPercent = 0.5
		gm := newSetUpGameMaster(t, cfg)
		g := gm.Game
		ana := g.Players()[0]
		from, to := frontier(t, g, ana)
		require.NoError(t, g.PlaceArmies(ana, from, 5))
		for i := 0; i < updateBuffer; i++ {
			gm.publish(Update{Battle: &game.Battle{}})
		}

		b, err := gm.Attack(from.ID, to.ID, 1)
		require.NoError(t, err)

		var last Update
		received := 0
		for u, ok := gm.Updates()(); ok; u, ok = gm.Updates()() {
			last = u
			received++
		}
		require.Equal(t, updateBuffer, received)
		require.Equal(t, b, last.Battle)
		require.Equal(t, ana, last.Winner)
	})
}
