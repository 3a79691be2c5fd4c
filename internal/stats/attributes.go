package stats

import "strings"

// Attribute is one of the five creature stats.
type Attribute int

const (
	Energy Attribute = iota
	Strength
	Magic
	Stamina
	Speed
)

// NumAttributes is the size of a stat block.
const NumAttributes = 5

// MinValue and MaxValue bound every synthesized stat.
const (
	MinValue = 1
	MaxValue = 20
)

// Attributes in canonical order
var Attributes = []Attribute{Energy, Strength, Magic, Stamina, Speed}

// String returns the lowercase attribute name.
func (a Attribute) String() string {
	switch a {
	case Energy:
		return "energy"
	case Strength:
		return "strength"
	case Magic:
		return "magic"
	case Stamina:
		return "stamina"
	case Speed:
		return "speed"
	default:
		return "unknown"
	}
}

// Title returns the attribute name with a leading capital.
func (a Attribute) Title() string {
	name := a.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseAttribute converts a name to an Attribute.
func ParseAttribute(name string) (Attribute, bool) {
	switch strings.ToLower(name) {
	case "energy":
		return Energy, true
	case "strength":
		return Strength, true
	case "magic":
		return Magic, true
	case "stamina":
		return Stamina, true
	case "speed":
		return Speed, true
	default:
		return Energy, false
	}
}

// Block holds a creature's five stat values indexed by Attribute.
type Block [NumAttributes]int

// NewBlock creates a block with every attribute set to value.
func NewBlock(value int) Block {
	var b Block
	for i := range b {
		b[i] = value
	}
	return b
}

// NewBlockFrom creates a block from individual values in canonical order.
func NewBlockFrom(energy, strength, magic, stamina, speed int) Block {
	return Block{energy, strength, magic, stamina, speed}
}

// Get returns the value of an attribute.
func (b *Block) Get(a Attribute) int {
	return b[a]
}

// Add adds delta to an attribute.
func (b *Block) Add(a Attribute, delta int) {
	b[a] += delta
}

// AddAll adds delta to every attribute.
func (b *Block) AddAll(delta int) {
	for i := range b {
		b[i] += delta
	}
}

// Total returns the sum of all five attributes.
func (b *Block) Total() int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// Min returns the lowest attribute value.
func (b *Block) Min() int {
	lowest := b[0]
	for _, v := range b[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}

// Max returns the highest attribute value.
func (b *Block) Max() int {
	highest := b[0]
	for _, v := range b[1:] {
		if v > highest {
			highest = v
		}
	}
	return highest
}

// Clamp limits every attribute to [lo, hi].
func (b *Block) Clamp(lo, hi int) {
	for i := range b {
		b[i] = clamp(b[i], lo, hi)
	}
}

// ToMap returns the block keyed by attribute name.
func (b *Block) ToMap() map[string]int {
	m := make(map[string]int, NumAttributes)
	for _, a := range Attributes {
		m[a.String()] = b[a]
	}
	return m
}

// Contains reports whether a appears in attrs.
func Contains(attrs []Attribute, a Attribute) bool {
	for _, x := range attrs {
		if x == a {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
