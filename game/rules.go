package game

import "sort"

type Rules interface {
	MaxAttackTroops() int
	MaxDefendTroops() int
	MinArmiesPerTurn() int
	// DetermineAttackOutcome compares descending-sorted rolls pairwise.
	DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int)
	// ArmiesForTrade is the bonus for a card set given the player's prior trades.
	ArmiesForTrade(priorTrades int) int
}

// StandardRules are the TEG rules: up to three dice each side, defender
// wins ties.
type StandardRules struct {
	MaxAttackDice int
	MaxDefendDice int
	MinArmies     int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		MaxAttackDice: 3,
		MaxDefendDice: 3,
		MinArmies:     3,
	}
}

func (sr *StandardRules) MaxAttackTroops() int {
	return sr.MaxAttackDice
}

func (sr *StandardRules) MaxDefendTroops() int {
	return sr.MaxDefendDice
}

func (sr *StandardRules) MinArmiesPerTurn() int {
	return sr.MinArmies
}

func (sr *StandardRules) DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int) {
	battles := min(len(attackerRolls), len(defenderRolls))
	for i := 0; i < battles; i++ {
		// Attacker needs a strictly higher die
		if attackerRolls[i] > defenderRolls[i] {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}
	return
}

// ArmiesForTrade: first set 4 armies, second 7, every later one 10.
func (sr *StandardRules) ArmiesForTrade(priorTrades int) int {
	switch {
	case priorTrades <= 0:
		return 4
	case priorTrades == 1:
		return 7
	default:
		return 10
	}
}

// reinforcements is max(ceil(countries/2), minimum).
func reinforcements(countries, minimum int) int {
	return max((countries+1)/2, minimum)
}

func sortDescending(rolls []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
}
