// Package creature generates the enemy creatures of a loadout.
package creature

import (
	"github.com/google/uuid"
	"github.com/lawnchairsociety/enemyforge/internal/rarity"
	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

// MaxForm is the highest evolution form a creature can reach.
const MaxForm = 3

// Creature is a player-owned or generated creature.
type Creature struct {
	ID               string
	SpeciesID        string
	Form             int
	Rarity           rarity.Rarity
	Stats            stats.Block
	Specialties      []stats.Attribute
	CombinationLevel int
}

// Power estimates the creature's strength: stat total, 20 per form and a
// rarity bonus.
func (c *Creature) Power() int {
	if c == nil {
		return 0
	}
	return c.Stats.Total() + c.Form*20 + c.Rarity.PowerBonus()
}

// HasSpecialty reports whether a is one of the creature's specialties.
func (c *Creature) HasSpecialty(a stats.Attribute) bool {
	return stats.Contains(c.Specialties, a)
}

// Template is a species entry supplied by a TemplateSource.
type Template struct {
	ID          string
	Name        string
	Description string
}

// Factory builds the creature shell that generation then enhances.
type Factory interface {
	NewEnemy(speciesID string, form int, r rarity.Rarity, block stats.Block) *Creature
}

// DefaultFactory creates enemies with a random unique ID.
type DefaultFactory struct{}

// NewEnemy implements Factory.
func (DefaultFactory) NewEnemy(speciesID string, form int, r rarity.Rarity, block stats.Block) *Creature {
	return &Creature{
		ID:        "enemy_" + uuid.New().String(),
		SpeciesID: speciesID,
		Form:      form,
		Rarity:    r,
		Stats:     block,
	}
}
