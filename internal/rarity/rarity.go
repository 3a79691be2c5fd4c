// Package rarity defines creature and item rarities and the weighted
// sampler used to draw them from probability tables.
package rarity

import "strings"

// Rarity represents how rare a creature or item is.
type Rarity int

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
)

// All lists the rarities from least to most rare.
var All = []Rarity{Common, Rare, Epic, Legendary}

// String returns the capitalized rarity name used throughout the game data.
func (r Rarity) String() string {
	switch r {
	case Common:
		return "Common"
	case Rare:
		return "Rare"
	case Epic:
		return "Epic"
	case Legendary:
		return "Legendary"
	default:
		return "Common"
	}
}

// Parse converts a rarity name to a Rarity. Matching is case-insensitive.
// Unknown names return Common and false.
func Parse(name string) (Rarity, bool) {
	switch strings.ToLower(name) {
	case "common":
		return Common, true
	case "rare":
		return Rare, true
	case "epic":
		return Epic, true
	case "legendary":
		return Legendary, true
	default:
		return Common, false
	}
}

// BaseStat returns the starting value of every attribute for a creature of
// this rarity, before difficulty scaling.
func (r Rarity) BaseStat() int {
	switch r {
	case Legendary:
		return 10
	case Epic:
		return 9
	case Rare:
		return 8
	default:
		return 7
	}
}

// PowerBonus returns the flat bonus a creature of this rarity adds to a
// power estimate.
func (r Rarity) PowerBonus() int {
	switch r {
	case Legendary:
		return 40
	case Epic:
		return 30
	case Rare:
		return 20
	default:
		return 10
	}
}

// ItemMultiplier returns the base power multiplier for tools and spells.
func (r Rarity) ItemMultiplier() float64 {
	switch r {
	case Legendary:
		return 2.0
	case Epic:
		return 1.7
	case Rare:
		return 1.4
	default:
		return 1.0
	}
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
