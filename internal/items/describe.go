package items

import (
	"fmt"

	"github.com/lawnchairsociety/enemyforge/internal/rarity"
	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

func toolDescription(combo Combo, r rarity.Rarity) string {
	var adjective string
	switch r {
	case rarity.Legendary:
		adjective = "legendary"
	case rarity.Epic:
		adjective = "powerful"
	case rarity.Rare:
		adjective = "enhanced"
	default:
		adjective = "basic"
	}

	var purpose string
	switch combo.Type {
	case stats.Energy:
		purpose = "energy manipulation"
	case stats.Strength:
		purpose = "physical enhancement"
	case stats.Magic:
		purpose = "magical amplification"
	case stats.Stamina:
		purpose = "endurance boosting"
	case stats.Speed:
		purpose = "agility enhancement"
	default:
		purpose = "enhancement"
	}

	var effect string
	switch combo.Effect {
	case Surge:
		effect = "provides a powerful but temporary boost"
	case Shield:
		effect = "offers protective enhancement"
	case Echo:
		effect = "creates lasting effects over time"
	case Drain:
		effect = "converts defensive power to offense"
	case Charge:
		effect = "builds up power for devastating results"
	default:
		effect = "enhances abilities"
	}

	return fmt.Sprintf("A %s tool for %s that %s.", adjective, purpose, effect)
}

func spellDescription(combo Combo, r rarity.Rarity) string {
	var adjective string
	switch r {
	case rarity.Legendary:
		adjective = "legendary"
	case rarity.Epic:
		adjective = "powerful"
	case rarity.Rare:
		adjective = "potent"
	default:
		adjective = "minor"
	}

	var school string
	switch combo.Type {
	case stats.Energy:
		school = "energy"
	case stats.Strength:
		school = "force"
	case stats.Magic:
		school = "arcane"
	case stats.Stamina:
		school = "vitality"
	case stats.Speed:
		school = "temporal"
	default:
		school = "magical"
	}

	var effect string
	switch combo.Effect {
	case Surge:
		effect = "unleashes immediate powerful effects"
	case Shield:
		effect = "creates protective magical barriers"
	case Echo:
		effect = "resonates with lasting magical effects"
	case Drain:
		effect = "siphons life force and power"
	case Charge:
		effect = "builds magical energy for explosive release"
	default:
		effect = "affects the target"
	}

	return fmt.Sprintf("A %s %s spell that %s.", adjective, school, effect)
}
