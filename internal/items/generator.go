package items

import (
	"math/rand"

	"github.com/lawnchairsociety/enemyforge/internal/difficulty"
	"github.com/lawnchairsociety/enemyforge/internal/logger"
	"github.com/lawnchairsociety/enemyforge/internal/rarity"
	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

const (
	strategicToolChance = 0.7
	lethalSpellChance   = 0.6
	bonusToolChance     = 0.6
)

// Set is the tools and spells handed to an enemy at battle start
type Set struct {
	Tools  []*Item
	Spells []*Item
}

// Generator produces enemy tools and spells. It is not safe for
// concurrent use.
type Generator struct {
	rng      *rand.Rand
	profiles *difficulty.Catalog
}

// NewGenerator creates an item generator. A nil catalog uses the built-in
// profiles.
func NewGenerator(rng *rand.Rand, profiles *difficulty.Catalog) *Generator {
	return &Generator{rng: rng, profiles: profiles}
}

// Tools generates count tools. A count of zero or less uses the tier's
// default tool count.
func (g *Generator) Tools(tier difficulty.Tier, count int) []*Item {
	if count <= 0 {
		count = tier.ToolCount()
	}

	table := toolRarity(tier)
	tools := make([]*Item, 0, count)
	for i := 0; i < count; i++ {
		var combo Combo
		if isHardTier(tier) && stats.Chance(g.rng, strategicToolChance) {
			combo = strategicTools[i%len(strategicTools)]
		} else {
			combo = g.randomCombo()
		}

		r := rarity.DrawItemRarity(g.rng, table)
		tools = append(tools, newItem(Tool, combo, r, tier))
	}

	return tools
}

// Spells generates count spells. A count of zero or less uses the tier's
// default spell count.
func (g *Generator) Spells(tier difficulty.Tier, count int) []*Item {
	if count <= 0 {
		count = tier.SpellCount()
	}

	table := spellRarity(tier)
	spells := make([]*Item, 0, count)
	for i := 0; i < count; i++ {
		combo := g.spellCombo(tier, i)
		r := rarity.DrawItemRarity(g.rng, table)
		spells = append(spells, newItem(Spell, combo, r, tier))
	}

	return spells
}

// All generates the tier's default tools and spells plus the profile's
// bonus items, each of which is a tool or a spell.
func (g *Generator) All(tier difficulty.Tier) Set {
	set := Set{
		Tools:  g.Tools(tier, 0),
		Spells: g.Spells(tier, 0),
	}

	bonus := g.profiles.Profile(tier).BonusItems
	for i := 0; i < bonus; i++ {
		if stats.Chance(g.rng, bonusToolChance) {
			set.Tools = append(set.Tools, g.Tools(tier, 1)...)
		} else {
			set.Spells = append(set.Spells, g.Spells(tier, 1)...)
		}
	}

	logger.Debug("Generated enemy items",
		"tier", tier.String(),
		"tools", len(set.Tools),
		"spells", len(set.Spells),
		"bonus", bonus)

	return set
}

// spellCombo picks the i-th spell's pairing. The tier's ordered preference
// list is consumed first; after it runs out the fallback distribution
// applies.
func (g *Generator) spellCombo(tier difficulty.Tier, i int) Combo {
	if prefs := preferredSpells(tier); i < len(prefs) {
		return prefs[i]
	}
	if tier == difficulty.Hard && stats.Chance(g.rng, lethalSpellChance) {
		return lethalSpells[g.rng.Intn(len(lethalSpells))]
	}
	return g.randomCombo()
}

func (g *Generator) randomCombo() Combo {
	return Combo{
		Type:   stats.PickAttribute(g.rng, stats.Attributes),
		Effect: Effects[g.rng.Intn(len(Effects))],
	}
}

func preferredSpells(tier difficulty.Tier) []Combo {
	if tier == difficulty.Expert {
		return lethalSpells
	}
	return nil
}

func isHardTier(tier difficulty.Tier) bool {
	return tier == difficulty.Hard || tier == difficulty.Expert
}

func toolRarity(tier difficulty.Tier) rarity.Table {
	switch tier {
	case difficulty.Easy:
		return itemTable(0.6, 0.3, 0.1, 0)
	case difficulty.Hard:
		return itemTable(0.1, 0.3, 0.4, 0.2)
	case difficulty.Expert:
		return itemTable(0, 0.2, 0.4, 0.4)
	default:
		return itemTable(0.3, 0.4, 0.25, 0.05)
	}
}

func spellRarity(tier difficulty.Tier) rarity.Table {
	switch tier {
	case difficulty.Easy:
		return itemTable(0.5, 0.35, 0.15, 0)
	case difficulty.Hard:
		return itemTable(0, 0.2, 0.5, 0.3)
	case difficulty.Expert:
		return itemTable(0, 0, 0.4, 0.6)
	default:
		return itemTable(0.2, 0.4, 0.3, 0.1)
	}
}

func itemTable(common, rare, epic, legendary float64) rarity.Table {
	return rarity.Table{
		{Outcome: "Common", Chance: common},
		{Outcome: "Rare", Chance: rare},
		{Outcome: "Epic", Chance: epic},
		{Outcome: "Legendary", Chance: legendary},
	}
}
