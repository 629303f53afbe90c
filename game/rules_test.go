package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetermineAttackOutcome(t *testing.T) {
	rules := NewStandardRules()

	for _, tc := range []struct {
		name           string
		attacker       []int
		defender       []int
		attackerLosses int
		defenderLosses int
	}{
		{"ties go to the defender", []int{5, 5, 5}, []int{5, 5}, 2, 0},
		{"attacker sweeps", []int{6, 5, 4}, []int{5, 4, 3}, 0, 3},
		{"split", []int{6, 2}, []int{4, 3}, 1, 1},
		{"one die each", []int{3}, []int{3}, 1, 0},
		{"extra attacker dice are ignored", []int{6, 6, 6}, []int{1}, 0, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			attackerLosses, defenderLosses := rules.DetermineAttackOutcome(tc.attacker, tc.defender)
			require.Equal(t, tc.attackerLosses, attackerLosses)
			require.Equal(t, tc.defenderLosses, defenderLosses)
		})
	}
}

func TestArmiesForTrade(t *testing.T) {
	rules := NewStandardRules()
	require.Equal(t, 4, rules.ArmiesForTrade(0))
	require.Equal(t, 7, rules.ArmiesForTrade(1))
	require.Equal(t, 10, rules.ArmiesForTrade(2))
	require.Equal(t, 10, rules.ArmiesForTrade(9))
}

func TestReinforcements(t *testing.T) {
	require.Equal(t, 3, reinforcements(5, 3))
	require.Equal(t, 5, reinforcements(10, 3))
	require.Equal(t, 3, reinforcements(0, 3))
	require.Equal(t, 8, reinforcements(15, 3))
}
