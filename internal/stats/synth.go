package stats

import (
	"math"
	"math/rand"
)

const (
	// varianceLow and varianceHigh bound the per-attribute jitter applied
	// to base stats.
	varianceLow  = 0.95
	varianceHigh = 1.05

	// specialtyUpgradeChance is the chance an upgrade point lands on a
	// specialty stat when the creature has any.
	specialtyUpgradeChance = 0.7

	// pointsPerForm is the upgrade allowance granted per evolution form.
	pointsPerForm = 5
)

// Synthesizer builds stat blocks using an injected random source.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a synthesizer drawing from rng.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Base rolls a fresh block: every attribute starts at base, is scaled by
// multiplier and an independent variance, then clamped to [1, 20].
func (s *Synthesizer) Base(base int, multiplier float64) Block {
	var b Block
	for _, a := range Attributes {
		v := Variance(s.rng, varianceLow, varianceHigh)
		b[a] = clamp(int(math.Round(float64(base)*multiplier*v)), MinValue, MaxValue)
	}
	return b
}

// ApplyEvolution layers the per-form bonuses onto b. Each form threshold
// crossed adds its own layer.
func ApplyEvolution(b *Block, form int, specialties []Attribute) {
	if b == nil {
		return
	}

	if form >= 1 {
		b.AddAll(2)
	}
	if form >= 2 {
		b.AddAll(2)
		for _, a := range Attributes {
			if Contains(specialties, a) {
				b.Add(a, 2)
			}
		}
	}
	if form >= 3 {
		b.AddAll(3)
	}
}

// UpgradePoints returns how many single-point upgrades a creature of the
// given form receives.
func UpgradePoints(form, bonus int) int {
	return form*pointsPerForm + bonus
}

// ApplyUpgrades distributes points one at a time, biased toward
// specialties.
func (s *Synthesizer) ApplyUpgrades(b *Block, points int, specialties []Attribute) {
	if b == nil {
		return
	}

	for i := 0; i < points; i++ {
		var target Attribute
		if len(specialties) > 0 && Chance(s.rng, specialtyUpgradeChance) {
			target = PickAttribute(s.rng, specialties)
		} else {
			target = PickAttribute(s.rng, Attributes)
		}
		b.Add(target, 1)
	}
}

// ApplyFloor raises every attribute below floor up to floor.
func ApplyFloor(b *Block, floor int) {
	if b == nil {
		return
	}
	for i := range b {
		if b[i] < floor {
			b[i] = floor
		}
	}
}

// ApplyCombination adds combination-level bonuses: 2 per level to each
// specialty, plus 1 to everything from level 3 up.
func ApplyCombination(b *Block, level int, specialties []Attribute) {
	if b == nil || len(specialties) == 0 || level <= 0 {
		return
	}

	for _, a := range specialties {
		b.Add(a, level*2)
	}
	if level >= 3 {
		b.AddAll(1)
	}
}

// Cap limits every attribute to MaxValue without touching the floor.
func Cap(b *Block) {
	if b == nil {
		return
	}
	for i := range b {
		if b[i] > MaxValue {
			b[i] = MaxValue
		}
	}
}
