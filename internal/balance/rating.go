// Package balance rates a player's roster against a difficulty tier and
// runs Monte Carlo sweeps over generated enemy loadouts.
package balance

import (
	"fmt"
	"math"

	"github.com/lawnchairsociety/enemyforge/internal/creature"
	"github.com/lawnchairsociety/enemyforge/internal/difficulty"
	"github.com/lawnchairsociety/enemyforge/internal/loadout"
)

const (
	meetsFormat        = "Your team composition meets the requirements for %s difficulty."
	underpoweredFormat = "Warning: Your team may be underpowered for %s difficulty. Consider improving your creatures or selecting a lower difficulty."
)

// Rating compares a player's roster to what a tier expects
type Rating struct {
	PlayerRating      int
	EnemyRating       int
	MeetsRequirements bool
	Balanced          bool
	Composition       loadout.Composition
	Recommendation    string
}

// Evaluate rates a roster against a tier's requirements
func Evaluate(roster []*creature.Creature, tier difficulty.Tier) Rating {
	comp := loadout.Analyze(roster)
	req := difficulty.RequirementsFor(tier)

	meets := comp.Form(3) >= req.Form3 &&
		comp.Form(2) >= req.Form2 &&
		comp.Form(1) >= req.Form1 &&
		comp.AverageStats >= req.AvgStats

	playerPower := averagePower(roster)
	enemyPower := playerPower * tier.EnemyRatingMultiplier()

	format := underpoweredFormat
	if meets {
		format = meetsFormat
	}

	return Rating{
		PlayerRating:      int(math.Round(playerPower)),
		EnemyRating:       int(math.Round(enemyPower)),
		MeetsRequirements: meets,
		Balanced:          meets,
		Composition:       comp,
		Recommendation:    fmt.Sprintf(format, tier),
	}
}

func averagePower(roster []*creature.Creature) float64 {
	total := 0
	counted := 0
	for _, c := range roster {
		if c == nil {
			continue
		}
		total += c.Power()
		counted++
	}
	return float64(total) / float64(max(counted, 1))
}
