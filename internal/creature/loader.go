package creature

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// TemplateSource supplies species when the player roster offers none.
type TemplateSource interface {
	RandomTemplate(rng *rand.Rand) Template
}

// SpeciesDefinition represents a species entry in the YAML file
type SpeciesDefinition struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// SpeciesConfig represents the structure of the species.yaml file
type SpeciesConfig struct {
	Species map[string]SpeciesDefinition `yaml:"species"`
}

// Catalog is a TemplateSource backed by a fixed species list.
type Catalog struct {
	templates []Template
}

// defaultSpecies is used when no species file is configured.
var defaultSpecies = []Template{
	{ID: "cinder_pup", Name: "Cinder Pup"},
	{ID: "moss_golem", Name: "Moss Golem"},
	{ID: "storm_wisp", Name: "Storm Wisp"},
	{ID: "tide_serpent", Name: "Tide Serpent"},
	{ID: "thorn_stag", Name: "Thorn Stag"},
	{ID: "gloom_moth", Name: "Gloom Moth"},
}

// DefaultCatalog returns the built-in species catalog.
func DefaultCatalog() *Catalog {
	templates := make([]Template, len(defaultSpecies))
	copy(templates, defaultSpecies)
	return &Catalog{templates: templates}
}

// NewCatalog builds a catalog from templates. An empty list yields the
// built-in species.
func NewCatalog(templates []Template) *Catalog {
	if len(templates) == 0 {
		return DefaultCatalog()
	}
	return &Catalog{templates: templates}
}

// LoadCatalogFromYAML loads species templates from a YAML file.
func LoadCatalogFromYAML(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read species file: %w", err)
	}

	var config SpeciesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse species YAML: %w", err)
	}
	if len(config.Species) == 0 {
		return nil, fmt.Errorf("species file %s defines no species", filename)
	}

	// Sort IDs so seeded draws are reproducible
	ids := make([]string, 0, len(config.Species))
	for id := range config.Species {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	templates := make([]Template, 0, len(ids))
	for _, id := range ids {
		def := config.Species[id]
		templates = append(templates, Template{ID: id, Name: def.Name, Description: def.Description})
	}

	return &Catalog{templates: templates}, nil
}

// RandomTemplate implements TemplateSource.
func (c *Catalog) RandomTemplate(rng *rand.Rand) Template {
	templates := c.list()
	return templates[rng.Intn(len(templates))]
}

// list returns the catalog's species, or the built-in ones when the
// catalog is nil or empty.
func (c *Catalog) list() []Template {
	if c == nil || len(c.templates) == 0 {
		return defaultSpecies
	}
	return c.templates
}

// Count returns the number of species in the catalog.
func (c *Catalog) Count() int {
	return len(c.list())
}

// Get returns a template by species ID.
func (c *Catalog) Get(id string) (Template, bool) {
	for _, t := range c.list() {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
