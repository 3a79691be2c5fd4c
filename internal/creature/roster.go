package creature

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/enemyforge/internal/rarity"
	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

// RosterEntry is one player creature in a roster file
type RosterEntry struct {
	ID               string         `yaml:"id"`
	Species          string         `yaml:"species"`
	Form             int            `yaml:"form"`
	Rarity           string         `yaml:"rarity"`
	Stats            map[string]int `yaml:"stats"`
	Specialties      []string       `yaml:"specialties"`
	CombinationLevel int            `yaml:"combination_level"`
}

// RosterFile is a player's creatures as written by hand or exported
type RosterFile struct {
	Player    string        `yaml:"player"`
	Creatures []RosterEntry `yaml:"creatures"`
}

// LoadRosterFromYAML reads a roster file and converts every entry.
func LoadRosterFromYAML(filename string) (string, []*Creature, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return ParseRoster(data)
}

// ParseRoster decodes roster YAML. Entries without an id get a "player_"
// id derived from the file's player, the entry position and its species,
// so parsing the same file twice yields the same ids. Stats left out of an
// entry default to the minimum value.
func ParseRoster(data []byte) (string, []*Creature, error) {
	var file RosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", nil, fmt.Errorf("failed to parse roster YAML: %w", err)
	}

	creatures := make([]*Creature, 0, len(file.Creatures))
	for i, entry := range file.Creatures {
		c, err := entry.toCreature(file.Player, i)
		if err != nil {
			return "", nil, fmt.Errorf("roster entry %d: %w", i+1, err)
		}
		creatures = append(creatures, c)
	}

	return file.Player, creatures, nil
}

func (e RosterEntry) toCreature(player string, index int) (*Creature, error) {
	if e.Species == "" {
		return nil, fmt.Errorf("species is required")
	}
	if e.Form < 0 || e.Form > MaxForm {
		return nil, fmt.Errorf("form %d outside 0-%d", e.Form, MaxForm)
	}

	r := rarity.Common
	if e.Rarity != "" {
		parsed, ok := rarity.Parse(e.Rarity)
		if !ok {
			return nil, fmt.Errorf("unknown rarity %q", e.Rarity)
		}
		r = parsed
	}

	block := stats.NewBlock(stats.MinValue)
	for name, value := range e.Stats {
		attr, ok := stats.ParseAttribute(name)
		if !ok {
			return nil, fmt.Errorf("unknown stat %q", name)
		}
		if value < stats.MinValue || value > stats.MaxValue {
			return nil, fmt.Errorf("stat %s = %d outside %d-%d", name, value, stats.MinValue, stats.MaxValue)
		}
		block[attr] = value
	}

	var specialties []stats.Attribute
	for _, name := range e.Specialties {
		attr, ok := stats.ParseAttribute(name)
		if !ok {
			return nil, fmt.Errorf("unknown specialty %q", name)
		}
		if !stats.Contains(specialties, attr) {
			specialties = append(specialties, attr)
		}
	}

	id := e.ID
	if id == "" {
		id = rosterEntryID(player, index, e.Species)
	}

	return &Creature{
		ID:               id,
		SpeciesID:        e.Species,
		Form:             e.Form,
		Rarity:           r,
		Stats:            block,
		Specialties:      specialties,
		CombinationLevel: e.CombinationLevel,
	}, nil
}

func rosterEntryID(player string, index int, species string) string {
	name := fmt.Sprintf("roster:%s/%d/%s", player, index, species)
	return "player_" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// ToRosterFile converts creatures back into the file representation.
func ToRosterFile(player string, creatures []*Creature) RosterFile {
	file := RosterFile{Player: player, Creatures: make([]RosterEntry, 0, len(creatures))}
	for _, c := range creatures {
		if c == nil {
			continue
		}
		specialties := make([]string, len(c.Specialties))
		for i, a := range c.Specialties {
			specialties[i] = a.String()
		}
		file.Creatures = append(file.Creatures, RosterEntry{
			ID:               c.ID,
			Species:          c.SpeciesID,
			Form:             c.Form,
			Rarity:           c.Rarity.String(),
			Stats:            c.Stats.ToMap(),
			Specialties:      specialties,
			CombinationLevel: c.CombinationLevel,
		})
	}
	return file
}
