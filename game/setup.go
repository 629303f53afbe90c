package game

// setupPasses are the extra armies each player scatters after every country
// received its first one.
var setupPasses = []int{2, 1}

// DistributeSetupArmies puts one army on every country, then for each pass
// places that many armies per player on randomly chosen countries of theirs.
// Picks are independent, so armies may stack on one country.
func (g *Game) DistributeSetupArmies() error {
	if len(g.players) == 0 {
		return ErrNoPlayers
	}
	if err := g.AddTroopsToAll(1); err != nil {
		return err
	}
	for _, n := range setupPasses {
		for _, p := range g.players {
			owned := g.CountriesOwnedBy(p, false)
			if len(owned) == 0 {
				continue
			}
			for i := 0; i < n; i++ {
				owned[g.random.Intn(len(owned))].armies++
			}
		}
	}
	return nil
}
