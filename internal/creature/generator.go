package creature

import (
	"math/rand"

	"github.com/lawnchairsociety/enemyforge/internal/difficulty"
	"github.com/lawnchairsociety/enemyforge/internal/logger"
	"github.com/lawnchairsociety/enemyforge/internal/rarity"
	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

// Generator produces enemy creatures for a difficulty tier.
// It is not safe for concurrent use.
type Generator struct {
	rng       *rand.Rand
	profiles  *difficulty.Catalog
	templates TemplateSource
	factory   Factory
	synth     *stats.Synthesizer
}

// NewGenerator creates a generator. Nil collaborators are replaced with the
// built-in profiles, species catalog and factory.
func NewGenerator(rng *rand.Rand, profiles *difficulty.Catalog, templates TemplateSource, factory Factory) *Generator {
	if templates == nil {
		templates = DefaultCatalog()
	}
	if factory == nil {
		factory = DefaultFactory{}
	}
	return &Generator{
		rng:       rng,
		profiles:  profiles,
		templates: templates,
		factory:   factory,
		synth:     stats.NewSynthesizer(rng),
	}
}

// Generate builds up to count enemy creatures for the tier. The count is
// capped at the tier's deck size. Species are drawn from the player's
// roster when it has any.
func (g *Generator) Generate(tier difficulty.Tier, count int, roster []*Creature) []*Creature {
	profile := g.profiles.Profile(tier)

	if count > profile.DeckSize {
		count = profile.DeckSize
	}
	if count < 0 {
		count = 0
	}

	pool := speciesPool(roster)
	creatures := make([]*Creature, 0, count)

	for i := 0; i < count; i++ {
		r := rarity.DrawCreatureRarity(g.rng, profile.Rarity)
		form := g.rollForm(tier, profile.CreatureLevel)

		var speciesID string
		if len(pool) > 0 {
			speciesID = pool[g.rng.Intn(len(pool))]
		} else {
			speciesID = g.templates.RandomTemplate(g.rng).ID
		}

		block := g.synth.Base(r.BaseStat(), profile.StatsMultiplier)
		specialties := stats.PickDistinct(g.rng, g.specialtyCount(tier))

		c := g.factory.NewEnemy(speciesID, form, r, block)
		c.Specialties = specialties
		g.enhance(c, tier, profile)

		logger.Debug("Generated enemy creature",
			"tier", tier.String(),
			"species", c.SpeciesID,
			"form", c.Form,
			"rarity", c.Rarity.String(),
			"stat_total", c.Stats.Total(),
			"combination", c.CombinationLevel)

		creatures = append(creatures, c)
	}

	return creatures
}

// enhance runs evolution, upgrade, floor and combination passes in order.
func (g *Generator) enhance(c *Creature, tier difficulty.Tier, profile difficulty.Profile) {
	stats.ApplyEvolution(&c.Stats, c.Form, c.Specialties)
	g.synth.ApplyUpgrades(&c.Stats, stats.UpgradePoints(c.Form, tier.UpgradeBonus()), c.Specialties)
	stats.ApplyFloor(&c.Stats, profile.MinStat)

	combo := tier.CombinationBonus()
	if combo.Chance > 0 && stats.Chance(g.rng, combo.Chance) {
		c.CombinationLevel = stats.Between(g.rng, combo.MinLevel, combo.MaxLevel)
		stats.ApplyCombination(&c.Stats, c.CombinationLevel, c.Specialties)
	}

	stats.Cap(&c.Stats)
}

// rollForm picks an evolution form with a tier-specific bias toward the
// top of the range.
func (g *Generator) rollForm(tier difficulty.Tier, levels difficulty.FormRange) int {
	switch tier {
	case difficulty.Expert:
		return g.biasedForm(levels, 0.8)
	case difficulty.Hard:
		return g.biasedForm(levels, 0.65)
	case difficulty.Easy:
		return g.biasedForm(levels, 0.3)
	default:
		roll := g.rng.Float64()
		switch {
		case roll < 0.4:
			return levels.Max
		case roll < 0.7:
			return max(levels.Min, levels.Max-1)
		default:
			return levels.Min
		}
	}
}

// biasedForm returns the max form with probability p, otherwise a uniform
// form within the range.
func (g *Generator) biasedForm(levels difficulty.FormRange, p float64) int {
	if stats.Chance(g.rng, p) {
		return levels.Max
	}
	return stats.Between(g.rng, levels.Min, levels.Max)
}

// specialtyCount rolls how many specialty stats a new enemy gets.
func (g *Generator) specialtyCount(tier difficulty.Tier) int {
	switch tier {
	case difficulty.Expert:
		if stats.Chance(g.rng, 0.8) {
			return 3
		}
		return 2
	case difficulty.Hard:
		if stats.Chance(g.rng, 0.7) {
			return 2
		}
		return 1
	case difficulty.Easy:
		if stats.Chance(g.rng, 0.3) {
			return 2
		}
		return 1
	default:
		if stats.Chance(g.rng, 0.5) {
			return 2
		}
		return 1
	}
}

// speciesPool returns the distinct species in the roster in first-seen
// order.
func speciesPool(roster []*Creature) []string {
	seen := make(map[string]bool)
	var pool []string
	for _, c := range roster {
		if c == nil || c.SpeciesID == "" || seen[c.SpeciesID] {
			continue
		}
		seen[c.SpeciesID] = true
		pool = append(pool, c.SpeciesID)
	}
	return pool
}
