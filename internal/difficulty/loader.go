package difficulty

import (
	"fmt"
	"os"
	"strings"

	"github.com/lawnchairsociety/enemyforge/internal/logger"
	"gopkg.in/yaml.v3"
)

// OverridesFile represents the structure of a difficulty overrides YAML file.
// Each tier entry is decoded on top of the built-in profile, so only the
// fields present in the file change.
type OverridesFile struct {
	Tiers map[string]yaml.Node `yaml:"tiers"`
}

// Catalog resolves tiers to profiles. A nil Catalog serves the built-in
// profiles.
type Catalog struct {
	profiles map[Tier]Profile
}

// DefaultCatalog returns a catalog holding the built-in profiles.
func DefaultCatalog() *Catalog {
	c := &Catalog{profiles: make(map[Tier]Profile, len(Tiers))}
	for _, t := range Tiers {
		c.profiles[t] = Settings(t)
	}
	return c
}

// LoadCatalogFromYAML loads profile overrides from a YAML file.
func LoadCatalogFromYAML(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog builds a catalog from YAML overrides.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file OverridesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty YAML: %w", err)
	}

	c := DefaultCatalog()
	for name, node := range file.Tiers {
		tier, ok := lookupTier(name)
		if !ok {
			logger.Warning("Ignoring unknown difficulty tier in overrides", "tier", name)
			continue
		}

		profile := Settings(tier)
		if err := node.Decode(&profile); err != nil {
			return nil, fmt.Errorf("failed to decode %s overrides: %w", name, err)
		}
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("invalid %s profile: %w", name, err)
		}
		c.profiles[tier] = profile
		logger.Debug("Applied difficulty overrides", "tier", name)
	}

	return c, nil
}

// Profile returns the profile for a tier, falling back to Medium for
// unknown tiers.
func (c *Catalog) Profile(t Tier) Profile {
	t = t.normalize()
	if c == nil {
		return Settings(t)
	}
	if p, ok := c.profiles[t]; ok {
		return p
	}
	return Settings(t)
}

// Validate checks that a profile can drive generation.
func (p Profile) Validate() error {
	if p.StatsMultiplier <= 0 {
		return fmt.Errorf("stats_multiplier must be positive, got %v", p.StatsMultiplier)
	}
	if p.CreatureLevel.Min < 0 || p.CreatureLevel.Max > 3 || p.CreatureLevel.Min > p.CreatureLevel.Max {
		return fmt.Errorf("creature_level must satisfy 0 <= min <= max <= 3, got %d-%d",
			p.CreatureLevel.Min, p.CreatureLevel.Max)
	}
	if p.DeckSize < 1 {
		return fmt.Errorf("deck_size must be at least 1, got %d", p.DeckSize)
	}
	if p.BonusItems < 0 {
		return fmt.Errorf("bonus_starting_items must not be negative, got %d", p.BonusItems)
	}
	if p.MinStat < 1 || p.MinStat > 20 {
		return fmt.Errorf("min_stat must be within 1-20, got %d", p.MinStat)
	}
	return nil
}

func lookupTier(name string) (Tier, bool) {
	for _, t := range Tiers {
		if strings.EqualFold(t.String(), name) {
			return t, true
		}
	}
	return Medium, false
}
