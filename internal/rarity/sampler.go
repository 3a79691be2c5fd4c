package rarity

import "math/rand"

// DefaultOutcome is returned when a draw lands past every cumulative weight.
const DefaultOutcome = "Common"

// Weight is a single outcome in a probability table.
type Weight struct {
	Outcome string  `yaml:"outcome"`
	Chance  float64 `yaml:"chance"`
}

// Table is an ordered probability ladder. Weights do not have to sum to 1;
// they are accumulated in slice order.
type Table []Weight

// Sample draws one outcome from the table. A uniform value in [0,1) is
// compared against the running cumulative weight and the first outcome
// whose cumulative weight reaches the draw wins. If none does, the
// DefaultOutcome is returned.
func Sample(rng *rand.Rand, table Table) string {
	roll := rng.Float64()
	cumulative := 0.0

	for _, w := range table {
		cumulative += w.Chance
		if roll <= cumulative {
			return w.Outcome
		}
	}

	return DefaultOutcome
}

// DrawCreatureRarity samples a creature rarity table. Creature tables use
// lowercase keys ("common", "rare", ...) and the outcome is capitalized
// before it is interpreted.
func DrawCreatureRarity(rng *rand.Rand, table Table) Rarity {
	r, _ := Parse(Capitalize(Sample(rng, table)))
	return r
}

// DrawItemRarity samples an item rarity table. Item tables already use the
// capitalized names, so the outcome is taken as-is.
func DrawItemRarity(rng *rand.Rand, table Table) Rarity {
	r, _ := Parse(Sample(rng, table))
	return r
}

// Total returns the sum of all weights in the table.
func (t Table) Total() float64 {
	total := 0.0
	for _, w := range t {
		total += w.Chance
	}
	return total
}

// Chance returns the weight configured for outcome, or 0 if absent.
func (t Table) Chance(outcome string) float64 {
	for _, w := range t {
		if w.Outcome == outcome {
			return w.Chance
		}
	}
	return 0
}
