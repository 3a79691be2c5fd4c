package balance

import (
	"github.com/lawnchairsociety/enemyforge/internal/difficulty"
	"github.com/lawnchairsociety/enemyforge/internal/loadout"
	"github.com/lawnchairsociety/enemyforge/internal/logger"
	"github.com/lawnchairsociety/enemyforge/internal/rarity"
	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

// SweepResult aggregates many generated loadouts for one tier
type SweepResult struct {
	Tier         difficulty.Tier
	Iterations   int
	AvgPower     float64
	MinPower     int
	MaxPower     int
	AvgCreatures float64
	AvgTools     float64
	AvgSpells    float64
	AvgForm      float64
	AvgStats     float64
	FormShare    [4]float64 // Fraction of creatures at each form
	RarityShare  map[rarity.Rarity]float64
	MinStat      int // Lowest single attribute observed
	MaxStat      int // Highest single attribute observed
	Combinations int // Creatures that rolled a combination bonus
}

// RunSweep generates iterations loadouts for a tier and aggregates them
func RunSweep(a *loadout.Assembler, tier difficulty.Tier, iterations int) SweepResult {
	result := SweepResult{
		Tier:        tier,
		Iterations:  iterations,
		MinPower:    999999,
		MinStat:     stats.MaxValue + 1,
		RarityShare: make(map[rarity.Rarity]float64, len(rarity.All)),
	}
	for _, r := range rarity.All {
		result.RarityShare[r] = 0
	}
	if iterations <= 0 {
		result.MinPower = 0
		result.MinStat = 0
		return result
	}

	totalPower := 0
	totalCreatures := 0
	totalTools := 0
	totalSpells := 0
	totalForm := 0
	totalStats := 0
	var forms [4]int
	rarities := make(map[rarity.Rarity]int, len(rarity.All))

	deck := a.Profile(tier).DeckSize
	for i := 0; i < iterations; i++ {
		l := a.Generate(tier, deck, nil)

		totalPower += l.TotalPower
		if l.TotalPower < result.MinPower {
			result.MinPower = l.TotalPower
		}
		if l.TotalPower > result.MaxPower {
			result.MaxPower = l.TotalPower
		}

		totalTools += len(l.Tools)
		totalSpells += len(l.Spells)

		for _, c := range l.Creatures {
			totalCreatures++
			totalForm += c.Form
			totalStats += c.Stats.Total()
			if c.Form >= 0 && c.Form < len(forms) {
				forms[c.Form]++
			}
			rarities[c.Rarity]++
			if c.CombinationLevel > 0 {
				result.Combinations++
			}
			if lo := c.Stats.Min(); lo < result.MinStat {
				result.MinStat = lo
			}
			if hi := c.Stats.Max(); hi > result.MaxStat {
				result.MaxStat = hi
			}
		}
	}

	n := float64(iterations)
	result.AvgPower = float64(totalPower) / n
	result.AvgCreatures = float64(totalCreatures) / n
	result.AvgTools = float64(totalTools) / n
	result.AvgSpells = float64(totalSpells) / n

	if totalCreatures > 0 {
		c := float64(totalCreatures)
		result.AvgForm = float64(totalForm) / c
		result.AvgStats = float64(totalStats) / c
		for f := range forms {
			result.FormShare[f] = float64(forms[f]) / c
		}
		for r, count := range rarities {
			result.RarityShare[r] = float64(count) / c
		}
	} else {
		result.MinStat = 0
	}

	return result
}

// Sweep runs RunSweep for each tier in order
func Sweep(a *loadout.Assembler, tiers []difficulty.Tier, iterations int) []SweepResult {
	results := make([]SweepResult, 0, len(tiers))
	for _, tier := range tiers {
		logger.Debug("Running balance sweep", "tier", tier.String(), "iterations", iterations)
		results = append(results, RunSweep(a, tier, iterations))
	}
	return results
}
