package metrics

import (
	"time"

	"teg/game"
)

// OddsRecord summarizes many battles of one match-up.
type OddsRecord struct {
	AttackerTroops int
	DefenderArmies int // Armies on the defending country before each battle
	Trials         int
	Conquests      int
	AttackerLosses []int // AttackerLosses[k] counts battles where the attacker lost k armies
	DefenderLosses []int
	Duration       time.Duration
}

func (r OddsRecord) ConquestRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Conquests) / float64(r.Trials)
}

// Collector tallies resolved battles of a single match-up.
type Collector struct {
	record    OddsRecord
	startTime time.Time
}

func NewCollector(attackerTroops, defenderArmies int) *Collector {
	return &Collector{
		record: OddsRecord{
			AttackerTroops: attackerTroops,
			DefenderArmies: defenderArmies,
		},
		startTime: time.Now(),
	}
}

// Add counts b, which must be decided.
func (c *Collector) Add(b *game.Battle) {
	c.record.Trials++
	if b.DefenderLostCountry {
		c.record.Conquests++
	}
	c.record.AttackerLosses = increment(c.record.AttackerLosses, b.AttackerCasualties)
	c.record.DefenderLosses = increment(c.record.DefenderLosses, b.DefenderCasualties)
}

func (c *Collector) Complete() OddsRecord {
	c.record.Duration = time.Since(c.startTime)
	return c.record
}

func increment(counts []int, k int) []int {
	for len(counts) <= k {
		counts = append(counts, 0)
	}
	counts[k]++
	return counts
}
