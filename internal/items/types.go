package items

import (
	"strings"

	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

// Kind distinguishes tools from spells
type Kind int

const (
	Tool Kind = iota
	Spell
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case Spell:
		return "spell"
	default:
		return "tool"
	}
}

// Effect is the mechanical behavior of an item
type Effect int

const (
	Surge Effect = iota
	Shield
	Echo
	Drain
	Charge
)

// Effects lists the full effect vocabulary in canonical order
var Effects = []Effect{Surge, Shield, Echo, Drain, Charge}

// String returns the capitalized effect name
func (e Effect) String() string {
	switch e {
	case Surge:
		return "Surge"
	case Shield:
		return "Shield"
	case Echo:
		return "Echo"
	case Drain:
		return "Drain"
	case Charge:
		return "Charge"
	default:
		return "Surge"
	}
}

// ParseEffect converts an effect name to an Effect (case-insensitive)
func ParseEffect(name string) (Effect, bool) {
	switch strings.ToLower(name) {
	case "surge":
		return Surge, true
	case "shield":
		return Shield, true
	case "echo":
		return Echo, true
	case "drain":
		return Drain, true
	case "charge":
		return Charge, true
	default:
		return Surge, false
	}
}

// BaseValue is the strategic worth of the effect on its own
func (e Effect) BaseValue() int {
	switch e {
	case Surge:
		return 30
	case Shield:
		return 35
	case Echo:
		return 25
	case Drain:
		return 40
	case Charge:
		return 45
	default:
		return 20
	}
}

// Combo pairs an item type with an effect
type Combo struct {
	Type   stats.Attribute
	Effect Effect
}

// strategicTools are cycled through on hard tiers when a tool takes the
// strategic path.
var strategicTools = []Combo{
	{stats.Strength, Surge},
	{stats.Stamina, Shield},
	{stats.Magic, Echo},
	{stats.Energy, Drain},
	{stats.Speed, Charge},
}

// lethalSpells is the ordered preference list for spells.
var lethalSpells = []Combo{
	{stats.Energy, Surge},
	{stats.Strength, Drain},
	{stats.Magic, Charge},
	{stats.Stamina, Shield},
}

// SynergyBonus returns the strategic bonus for a canonical type/effect pair
func SynergyBonus(c Combo) int {
	switch c {
	case Combo{stats.Energy, Drain},
		Combo{stats.Strength, Surge},
		Combo{stats.Magic, Echo},
		Combo{stats.Stamina, Shield},
		Combo{stats.Speed, Charge}:
		return 10
	default:
		return 0
	}
}
