package items

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lawnchairsociety/enemyforge/internal/difficulty"
	"github.com/lawnchairsociety/enemyforge/internal/rarity"
	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

const (
	// ToolUsageCost is what a tool costs to use. Constant across tiers.
	ToolUsageCost = 0
	// SpellManaCost is what a spell costs to cast. Constant across tiers.
	SpellManaCost = 4
)

// Item represents a generated tool or spell
type Item struct {
	ID             string
	Kind           Kind
	Name           string
	Type           stats.Attribute
	Effect         Effect
	Rarity         rarity.Rarity
	ImageURL       string
	Description    string
	PowerLevel     float64
	StrategicValue int
	UsageCost      int // Tools only
	ManaCost       int // Spells only
}

// newItem fills in every derived field for a tool or spell
func newItem(kind Kind, combo Combo, r rarity.Rarity, tier difficulty.Tier) *Item {
	item := &Item{
		ID:             fmt.Sprintf("enemy_%s_%s", kind, uuid.New().String()),
		Kind:           kind,
		Name:           fmt.Sprintf("%s %s %s %s", r, combo.Effect, combo.Type.Title(), rarity.Capitalize(kind.String())),
		Type:           combo.Type,
		Effect:         combo.Effect,
		Rarity:         r,
		ImageURL:       fmt.Sprintf("/assets/%ss/%s_%s.png", kind, combo.Type, strings.ToLower(combo.Effect.String())),
		PowerLevel:     PowerLevel(r, tier),
		StrategicValue: StrategicValue(combo, tier),
	}

	switch kind {
	case Spell:
		item.Description = spellDescription(combo, r)
		item.ManaCost = SpellManaCost
	default:
		item.Description = toolDescription(combo, r)
		item.UsageCost = ToolUsageCost
	}

	return item
}

// PowerLevel returns the rarity multiplier scaled by the tier multiplier
func PowerLevel(r rarity.Rarity, tier difficulty.Tier) float64 {
	return r.ItemMultiplier() * tier.ItemMultiplier()
}

// StrategicValue scores an item from its effect, type synergy and tier
func StrategicValue(combo Combo, tier difficulty.Tier) int {
	return combo.Effect.BaseValue() + SynergyBonus(combo) + tier.StrategicBonus()
}

// String returns the item's display name
func (i *Item) String() string {
	return i.Name
}

// Combo returns the item's type/effect pairing
func (i *Item) Combo() Combo {
	return Combo{Type: i.Type, Effect: i.Effect}
}
