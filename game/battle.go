package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Battle is a single attack between two countries. It is resolved exactly
// once: roll both sides, then Calculate.
type Battle struct {
	ID        uuid.UUID
	Attacking *Country
	Defending *Country

	AttackingPlayer *Player
	DefendingPlayer *Player

	AttackerTroops int // Committed troops, capped by the rules
	DefenderTroops int // min(defender armies, rules cap) at declaration

	AttackerCasualties  int
	DefenderCasualties  int
	DefenderLostCountry bool

	Created time.Time
	Fought  time.Time

	rules        Rules
	attackerDice []int
	defenderDice []int
	decided      bool
}

// NewBattle declares an attack from attacking on defending with troops
// armies. Troops above the rules' cap are silently capped.
func NewBattle(attacking, defending *Country, troops int, rules Rules) (*Battle, error) {
	if attacking == defending {
		return nil, ErrSelfAttack
	}
	if attacking.player == nil || defending.player == nil {
		return nil, ErrUnownedCountry
	}
	if attacking.player == defending.player {
		return nil, ErrSamePlayer
	}
	if troops < 1 {
		return nil, ErrInvalidTroops
	}

	return &Battle{
		ID:              uuid.New(),
		Attacking:       attacking,
		Defending:       defending,
		AttackingPlayer: attacking.player,
		DefendingPlayer: defending.player,
		AttackerTroops:  min(troops, rules.MaxAttackTroops()),
		DefenderTroops:  min(defending.armies, rules.MaxDefendTroops()),
		Created:         time.Now(),
		rules:           rules,
	}, nil
}

// RollAttackerDice throws one die per committed attacking troop.
func (b *Battle) RollAttackerDice(r Random) ([]int, error) {
	if b.decided {
		return nil, ErrBattleDecided
	}
	b.attackerDice = rollDice(r, b.AttackerTroops)
	return b.AttackerDice(), nil
}

// RollDefenderDice throws one die per defending troop.
func (b *Battle) RollDefenderDice(r Random) ([]int, error) {
	if b.decided {
		return nil, ErrBattleDecided
	}
	b.defenderDice = rollDice(r, b.DefenderTroops)
	return b.DefenderDice(), nil
}

func (b *Battle) AttackerDice() []int {
	return append([]int(nil), b.attackerDice...)
}

func (b *Battle) DefenderDice() []int {
	return append([]int(nil), b.defenderDice...)
}

// Decided reports whether Calculate has completed.
func (b *Battle) Decided() bool {
	return b.decided
}

// Calculate compares the dice, removes casualties and, when the defender is
// wiped out, hands the country to the attacker together with the surviving
// committed troops. Nothing changes when an error is returned.
func (b *Battle) Calculate() error {
	if b.decided {
		return ErrBattleDecided
	}
	if len(b.attackerDice) == 0 || len(b.defenderDice) == 0 {
		return ErrDiceNotRolled
	}
	if b.Attacking.armies <= 1 {
		return ErrSingleArmy
	}

	sortDescending(b.attackerDice)
	sortDescending(b.defenderDice)
	attackerLosses, defenderLosses := b.rules.DetermineAttackOutcome(b.attackerDice, b.defenderDice)

	attackerArmies := b.Attacking.armies - attackerLosses
	defenderArmies := b.Defending.armies - defenderLosses
	if defenderArmies < 0 {
		return fmt.Errorf("%w: %s would have %d", ErrNegativeArmies, b.Defending.Name, defenderArmies)
	}

	conquered := defenderArmies == 0
	if conquered {
		moving := b.AttackerTroops - attackerLosses
		attackerArmies -= moving
		defenderArmies += moving
	}
	if attackerArmies < 0 {
		return fmt.Errorf("%w: %s would have %d", ErrNegativeArmies, b.Attacking.Name, attackerArmies)
	}

	b.AttackerCasualties = attackerLosses
	b.DefenderCasualties = defenderLosses
	b.Attacking.armies = attackerArmies
	b.Defending.armies = defenderArmies
	if conquered {
		b.Defending.player = b.Attacking.player
	}
	b.DefenderLostCountry = conquered
	b.Fought = time.Now()
	b.decided = true

	log.Debug().
		Str("battle", b.ID.String()).
		Ints("attacker_dice", b.attackerDice).
		Ints("defender_dice", b.defenderDice).
		Int("attacker_casualties", attackerLosses).
		Int("defender_casualties", defenderLosses).
		Bool("conquered", conquered).
		Msgf("%s attacked %s", b.Attacking.Name, b.Defending.Name)

	return nil
}

func (b *Battle) String() string {
	text := fmt.Sprintf("%s (%s) attacks with %d armies %s (%s, %d armies)",
		b.Attacking.Name, b.AttackingPlayer.Name, b.AttackerTroops,
		b.Defending.Name, b.DefendingPlayer.Name, b.Defending.armies)
	if b.decided {
		text += fmt.Sprintf("; attacker lost %d, dice %v; defender lost %d, dice %v",
			b.AttackerCasualties, b.attackerDice, b.DefenderCasualties, b.defenderDice)
	}
	if b.DefenderLostCountry {
		text += ", attacker conquered country"
	}
	return text
}
