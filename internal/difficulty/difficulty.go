// Package difficulty holds the per-tier tuning tables that parameterize
// enemy generation and balance checks.
package difficulty

import (
	"strings"

	"github.com/lawnchairsociety/enemyforge/internal/rarity"
)

// Tier is a selectable difficulty level.
type Tier int

const (
	Easy Tier = iota
	Medium
	Hard
	Expert
)

// Tiers lists every tier from easiest to hardest.
var Tiers = []Tier{Easy, Medium, Hard, Expert}

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseTier converts a tier name to a Tier. Unknown names fall back to
// Medium so callers always get usable settings.
func ParseTier(name string) Tier {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy
	case "medium":
		return Medium
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// normalize maps out-of-range values onto Medium.
func (t Tier) normalize() Tier {
	switch t {
	case Easy, Medium, Hard, Expert:
		return t
	default:
		return Medium
	}
}

// FormRange bounds the evolution forms an enemy creature can spawn with.
type FormRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Profile is the immutable tuning for a single tier.
type Profile struct {
	StatsMultiplier   float64      `yaml:"stats_multiplier"`
	CreatureLevel     FormRange    `yaml:"creature_level"`
	Rarity            rarity.Table `yaml:"rarity"`
	InitialHandSize   int          `yaml:"initial_hand_size"`
	DeckSize          int          `yaml:"deck_size"`
	MaxFieldSize      int          `yaml:"max_field_size"`
	AILevel           int          `yaml:"ai_level"`
	EnergyRegen       int          `yaml:"energy_regen"`
	RewardMultiplier  float64      `yaml:"reward_multiplier"`
	MultiActionChance float64      `yaml:"multi_action_chance"`
	AggressionLevel   float64      `yaml:"aggression_level"`
	StartingEnergy    int          `yaml:"starting_energy"`
	BonusItems        int          `yaml:"bonus_starting_items"`
	FocusFireChance   float64      `yaml:"focus_fire_chance"`
	ComboAwareness    float64      `yaml:"combo_awareness"`
	PredictiveDepth   int          `yaml:"predictive_depth"`
	MinStat           int          `yaml:"min_stat"`
}

// Settings returns the built-in profile for a tier. Unknown tiers get the
// Medium profile.
func Settings(t Tier) Profile {
	switch t.normalize() {
	case Easy:
		return Profile{
			StatsMultiplier: 1.0,
			CreatureLevel:   FormRange{Min: 1, Max: 2},
			Rarity: rarity.Table{
				{Outcome: "common", Chance: 0.4},
				{Outcome: "rare", Chance: 0.35},
				{Outcome: "epic", Chance: 0.2},
				{Outcome: "legendary", Chance: 0.05},
			},
			InitialHandSize:   3,
			DeckSize:          6,
			MaxFieldSize:      5,
			AILevel:           2,
			EnergyRegen:       3,
			RewardMultiplier:  0.5,
			MultiActionChance: 0.35,
			AggressionLevel:   0.5,
			StartingEnergy:    10,
			BonusItems:        1,
			FocusFireChance:   0.4,
			ComboAwareness:    0.3,
			PredictiveDepth:   1,
			MinStat:           5,
		}
	case Hard:
		return Profile{
			StatsMultiplier: 1.2,
			CreatureLevel:   FormRange{Min: 2, Max: 3},
			Rarity: rarity.Table{
				{Outcome: "common", Chance: 0.05},
				{Outcome: "rare", Chance: 0.25},
				{Outcome: "epic", Chance: 0.45},
				{Outcome: "legendary", Chance: 0.25},
			},
			InitialHandSize:   4,
			DeckSize:          8,
			MaxFieldSize:      6,
			AILevel:           4,
			EnergyRegen:       3,
			RewardMultiplier:  1.5,
			MultiActionChance: 0.75,
			AggressionLevel:   0.8,
			StartingEnergy:    13,
			BonusItems:        3,
			FocusFireChance:   0.8,
			ComboAwareness:    0.7,
			PredictiveDepth:   3,
			MinStat:           7,
		}
	case Expert:
		return Profile{
			StatsMultiplier: 1.3,
			CreatureLevel:   FormRange{Min: 2, Max: 3},
			Rarity: rarity.Table{
				{Outcome: "common", Chance: 0},
				{Outcome: "rare", Chance: 0.1},
				{Outcome: "epic", Chance: 0.5},
				{Outcome: "legendary", Chance: 0.4},
			},
			InitialHandSize:   5,
			DeckSize:          10,
			MaxFieldSize:      6,
			AILevel:           5,
			EnergyRegen:       3,
			RewardMultiplier:  2.0,
			MultiActionChance: 0.95,
			AggressionLevel:   0.95,
			StartingEnergy:    15,
			BonusItems:        5,
			FocusFireChance:   0.95,
			ComboAwareness:    0.9,
			PredictiveDepth:   4,
			MinStat:           9,
		}
	default:
		return Profile{
			StatsMultiplier: 1.1,
			CreatureLevel:   FormRange{Min: 1, Max: 3},
			Rarity: rarity.Table{
				{Outcome: "common", Chance: 0.2},
				{Outcome: "rare", Chance: 0.35},
				{Outcome: "epic", Chance: 0.35},
				{Outcome: "legendary", Chance: 0.1},
			},
			InitialHandSize:   3,
			DeckSize:          7,
			MaxFieldSize:      5,
			AILevel:           3,
			EnergyRegen:       3,
			RewardMultiplier:  1.0,
			MultiActionChance: 0.55,
			AggressionLevel:   0.65,
			StartingEnergy:    11,
			BonusItems:        2,
			FocusFireChance:   0.6,
			ComboAwareness:    0.5,
			PredictiveDepth:   2,
			MinStat:           6,
		}
	}
}

// UpgradeBonus returns the extra stat upgrade points enemies get on top of
// their form-based allowance.
func (t Tier) UpgradeBonus() int {
	switch t.normalize() {
	case Easy:
		return 2
	case Hard:
		return 7
	case Expert:
		return 10
	default:
		return 4
	}
}

// Combination describes the chance and level range of combination bonuses.
// A zero Chance means the tier never rolls them.
type Combination struct {
	Chance   float64
	MinLevel int
	MaxLevel int
}

// CombinationBonus returns the combination roll for a tier.
func (t Tier) CombinationBonus() Combination {
	switch t.normalize() {
	case Hard:
		return Combination{Chance: 0.5, MinLevel: 1, MaxLevel: 2}
	case Expert:
		return Combination{Chance: 0.7, MinLevel: 2, MaxLevel: 4}
	default:
		return Combination{}
	}
}

// ItemMultiplier scales tool and spell power levels.
func (t Tier) ItemMultiplier() float64 {
	switch t.normalize() {
	case Easy:
		return 1.0
	case Hard:
		return 1.3
	case Expert:
		return 1.5
	default:
		return 1.1
	}
}

// StrategicBonus is added to every item's strategic value.
func (t Tier) StrategicBonus() int {
	switch t.normalize() {
	case Easy:
		return 0
	case Hard:
		return 6
	case Expert:
		return 9
	default:
		return 3
	}
}

// EnemyRatingMultiplier projects the enemy power relative to the player.
func (t Tier) EnemyRatingMultiplier() float64 {
	switch t.normalize() {
	case Easy:
		return 1.0
	case Hard:
		return 1.2
	case Expert:
		return 1.5
	default:
		return 1.1
	}
}

// ToolCount is the default number of tools generated for a tier.
func (t Tier) ToolCount() int {
	switch t.normalize() {
	case Easy:
		return 2
	case Hard:
		return 4
	case Expert:
		return 5
	default:
		return 3
	}
}

// SpellCount is the default number of spells generated for a tier.
func (t Tier) SpellCount() int {
	switch t.normalize() {
	case Easy:
		return 1
	case Hard:
		return 3
	case Expert:
		return 4
	default:
		return 2
	}
}
