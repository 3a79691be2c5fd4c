package creature

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Count() == 0 {
		t.Fatal("default catalog is empty")
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		tmpl := c.RandomTemplate(rng)
		if _, ok := c.Get(tmpl.ID); !ok {
			t.Errorf("RandomTemplate returned unknown species %q", tmpl.ID)
		}
	}
}

func TestNewCatalog_EmptyUsesDefaults(t *testing.T) {
	if NewCatalog(nil).Count() != DefaultCatalog().Count() {
		t.Error("empty template list should fall back to built-in species")
	}
	if NewCatalog([]Template{{ID: "one"}}).Count() != 1 {
		t.Error("expected single-template catalog")
	}
}

func TestCatalog_ZeroAndNilFallBack(t *testing.T) {
	var nilCatalog *Catalog
	catalogs := map[string]*Catalog{
		"zero value": {},
		"nil":        nilCatalog,
	}

	for name, c := range catalogs {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(5))
			tmpl := c.RandomTemplate(rng)
			if _, ok := DefaultCatalog().Get(tmpl.ID); !ok {
				t.Errorf("RandomTemplate = %q, want a built-in species", tmpl.ID)
			}
			if c.Count() != DefaultCatalog().Count() {
				t.Errorf("Count = %d, want %d", c.Count(), DefaultCatalog().Count())
			}
		})
	}
}

func TestLoadCatalogFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "species.yaml")
	content := `
species:
  frost_owl:
    name: Frost Owl
    description: A silent hunter of the tundra.
  ash_hound:
    name: Ash Hound
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalogFromYAML(path)
	if err != nil {
		t.Fatalf("LoadCatalogFromYAML failed: %v", err)
	}
	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", c.Count())
	}

	owl, ok := c.Get("frost_owl")
	if !ok || owl.Name != "Frost Owl" {
		t.Errorf("frost_owl = %+v, %v", owl, ok)
	}

	// IDs are sorted so seeded draws are stable
	if c.templates[0].ID != "ash_hound" {
		t.Errorf("first template = %q, want ash_hound", c.templates[0].ID)
	}
}

func TestLoadCatalogFromYAML_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCatalogFromYAML(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("species: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalogFromYAML(empty); err == nil {
		t.Error("expected error for empty species list")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("species: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalogFromYAML(bad); err == nil {
		t.Error("expected parse error")
	}
}
