package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"teg/experiments/metrics"
	"teg/game"
)

const (
	DefaultTrials = 10000 // Per match up
	maxTroops     = 3
)

type matchUp struct {
	attackerTroops int
	defenderArmies int
}

// matchUps pairs every number of committed troops with every defending
// garrison up to the standard dice cap.
func matchUps() []matchUp {
	var mu []matchUp
	for a := 1; a <= maxTroops; a++ {
		for d := 1; d <= maxTroops; d++ {
			mu = append(mu, matchUp{attackerTroops: a, defenderArmies: d})
		}
	}
	return mu
}

// RunBattleOdds fights trials battles for each match up and returns one
// record per match up, attacker troops first.
func RunBattleOdds(trials int, r game.Random) ([]metrics.OddsRecord, error) {
	if trials < 1 {
		return nil, fmt.Errorf("trials must be positive, got %d", trials)
	}

	var records []metrics.OddsRecord
	all := matchUps()
	for mi, mu := range all {
		log.Debug().Msgf("starting match up %d of %d: %d troops against %d armies", mi+1, len(all), mu.attackerTroops, mu.defenderArmies)

		collector := metrics.NewCollector(mu.attackerTroops, mu.defenderArmies)
		for i := 0; i < trials; i++ {
			b, err := duel(mu.attackerTroops, mu.defenderArmies, r)
			if err != nil {
				return nil, err
			}
			collector.Add(b)
		}
		record := collector.Complete()
		records = append(records, record)

		log.Info().Msgf("%d troops against %d armies: conquest rate %.3f", mu.attackerTroops, mu.defenderArmies, record.ConquestRate())
	}
	return records, nil
}

// RunBattleOddsExperiment runs the odds and stores them under baseDir. It
// returns the directory written to.
func RunBattleOddsExperiment(baseDir string, trials int, r game.Random) (string, error) {
	log.Info().Msgf("starting battle odds experiment with %d trials per match up...", trials)

	records, err := RunBattleOdds(trials, r)
	if err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(baseDir, "battle_odds")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteOddsRecords(records); err != nil {
		return "", fmt.Errorf("failed to store odds records: %w", err)
	}

	log.Info().Msgf("stored odds records in %s", writer.Dir())
	return writer.Dir(), nil
}

// duel resolves one battle on a fresh two-country board where the attacker
// has exactly one army more than it commits.
func duel(attackerTroops, defenderArmies int, r game.Random) (*game.Battle, error) {
	m := game.NewMap()
	if _, err := m.AddContinent(1, "Arena", 0); err != nil {
		return nil, err
	}
	if _, err := m.AddCountry(1, "Attacker", 1); err != nil {
		return nil, err
	}
	if _, err := m.AddCountry(2, "Defender", 1); err != nil {
		return nil, err
	}
	if err := m.AddNeighbour(1, 2); err != nil {
		return nil, err
	}

	g := game.New(m, game.WithRandom(r))
	err := g.AssignPlayers([]game.PlayerSpec{{Name: "Attacker"}, {Name: "Defender"}})
	if err != nil {
		return nil, err
	}
	attacker, defender := g.Players()[0], g.Players()[1]
	from, _ := m.Country(1)
	to, _ := m.Country(2)

	if err := g.AssignCountry(from, attacker); err != nil {
		return nil, err
	}
	if err := g.AssignCountry(to, defender); err != nil {
		return nil, err
	}
	if err := g.PlaceArmies(attacker, from, attackerTroops+1); err != nil {
		return nil, err
	}
	if err := g.PlaceArmies(defender, to, defenderArmies); err != nil {
		return nil, err
	}

	return g.Attack(from, to, attackerTroops)
}
