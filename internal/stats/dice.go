package stats

import "math/rand"

// Chance returns true with probability p.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Between returns a uniform integer in [lo, hi]. If hi < lo, lo is
// returned.
func Between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Variance returns a uniform multiplier in [lo, hi).
func Variance(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// PickAttribute returns a uniformly chosen attribute from attrs.
func PickAttribute(rng *rand.Rand, attrs []Attribute) Attribute {
	return attrs[rng.Intn(len(attrs))]
}

// PickDistinct returns n distinct attributes drawn without replacement in
// draw order. n is capped at the number of attributes.
func PickDistinct(rng *rand.Rand, n int) []Attribute {
	if n > NumAttributes {
		n = NumAttributes
	}
	picked := make([]Attribute, 0, n)
	for len(picked) < n {
		available := make([]Attribute, 0, NumAttributes-len(picked))
		for _, a := range Attributes {
			if !Contains(picked, a) {
				available = append(available, a)
			}
		}
		picked = append(picked, PickAttribute(rng, available))
	}
	return picked
}
