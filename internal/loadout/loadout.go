// Package loadout assembles complete enemy loadouts and derives their
// power and composition metrics.
package loadout

import (
	"math"

	"github.com/lawnchairsociety/enemyforge/internal/creature"
	"github.com/lawnchairsociety/enemyforge/internal/difficulty"
	"github.com/lawnchairsociety/enemyforge/internal/items"
	"github.com/lawnchairsociety/enemyforge/internal/logger"
	"github.com/lawnchairsociety/enemyforge/internal/rarity"
)

const (
	toolPower  = 20
	spellPower = 30
)

// Loadout is everything an enemy brings to one battle.
type Loadout struct {
	Creatures   []*creature.Creature
	Tools       []*items.Item
	Spells      []*items.Item
	Tier        difficulty.Tier
	Profile     difficulty.Profile
	TotalPower  int
	Composition Composition
}

// Composition summarizes a roster by form, rarity and average stat total.
type Composition struct {
	Forms        [creature.MaxForm + 1]int
	Rarities     map[rarity.Rarity]int
	AverageStats int
}

// Form returns how many creatures are at the given form.
func (c Composition) Form(form int) int {
	if form < 0 || form > creature.MaxForm {
		return 0
	}
	return c.Forms[form]
}

// Assembler combines creature and item generation into loadouts.
type Assembler struct {
	creatures *creature.Generator
	items     *items.Generator
	profiles  *difficulty.Catalog
}

// NewAssembler creates an assembler from its generators.
func NewAssembler(creatures *creature.Generator, itemGen *items.Generator, profiles *difficulty.Catalog) *Assembler {
	return &Assembler{
		creatures: creatures,
		items:     itemGen,
		profiles:  profiles,
	}
}

// Profile returns the difficulty profile the assembler uses for tier.
func (a *Assembler) Profile(tier difficulty.Tier) difficulty.Profile {
	return a.profiles.Profile(tier)
}

// Generate builds a complete enemy loadout for the tier with up to
// creatureCount creatures. Callers wanting a full deck pass
// Profile(tier).DeckSize.
func (a *Assembler) Generate(tier difficulty.Tier, creatureCount int, roster []*creature.Creature) *Loadout {
	creatures := a.creatures.Generate(tier, creatureCount, roster)
	set := a.items.All(tier)

	l := &Loadout{
		Creatures:   creatures,
		Tools:       set.Tools,
		Spells:      set.Spells,
		Tier:        tier,
		Profile:     a.profiles.Profile(tier),
		TotalPower:  TotalPower(creatures, len(set.Tools), len(set.Spells)),
		Composition: Analyze(creatures),
	}

	logger.Debug("Enemy loadout generated",
		"tier", tier.String(),
		"creatures", len(l.Creatures),
		"tools", len(l.Tools),
		"spells", len(l.Spells),
		"total_power", l.TotalPower)

	return l
}

// TotalPower sums creature power and a flat value per tool and spell.
func TotalPower(creatures []*creature.Creature, tools, spells int) int {
	total := 0
	for _, c := range creatures {
		total += c.Power()
	}
	return total + tools*toolPower + spells*spellPower
}

// Analyze computes the composition of a roster. An empty roster yields
// all-zero counts and a zero average.
func Analyze(creatures []*creature.Creature) Composition {
	comp := Composition{Rarities: make(map[rarity.Rarity]int, len(rarity.All))}
	for _, r := range rarity.All {
		comp.Rarities[r] = 0
	}

	statTotal := 0
	counted := 0
	for _, c := range creatures {
		if c == nil {
			continue
		}
		if c.Form >= 0 && c.Form <= creature.MaxForm {
			comp.Forms[c.Form]++
		}
		comp.Rarities[c.Rarity]++
		statTotal += c.Stats.Total()
		counted++
	}

	comp.AverageStats = int(math.Round(float64(statTotal) / float64(max(counted, 1))))
	return comp
}
