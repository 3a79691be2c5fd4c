package creature

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/enemyforge/internal/rarity"
	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

const sampleRoster = `
player: ash
creatures:
  - id: starter
    species: cinder_pup
    form: 3
    rarity: epic
    stats: {energy: 14, strength: 16, magic: 12, stamina: 13, speed: 15}
    specialties: [strength, speed, strength]
    combination_level: 2
  - species: moss_golem
    form: 1
`

func TestParseRoster(t *testing.T) {
	player, creatures, err := ParseRoster([]byte(sampleRoster))
	if err != nil {
		t.Fatalf("ParseRoster: %v", err)
	}
	if player != "ash" {
		t.Errorf("player = %q", player)
	}
	if len(creatures) != 2 {
		t.Fatalf("got %d creatures", len(creatures))
	}

	first := creatures[0]
	if first.ID != "starter" || first.SpeciesID != "cinder_pup" || first.Form != 3 || first.Rarity != rarity.Epic {
		t.Errorf("first = %+v", first)
	}
	if first.Stats != stats.NewBlockFrom(14, 16, 12, 13, 15) {
		t.Errorf("stats = %v", first.Stats)
	}
	if !reflect.DeepEqual(first.Specialties, []stats.Attribute{stats.Strength, stats.Speed}) {
		t.Errorf("specialties = %v, want duplicates removed", first.Specialties)
	}
	if first.CombinationLevel != 2 {
		t.Errorf("CombinationLevel = %d", first.CombinationLevel)
	}

	second := creatures[1]
	if !strings.HasPrefix(second.ID, "player_") {
		t.Errorf("generated ID = %q", second.ID)
	}
	if second.Rarity != rarity.Common {
		t.Errorf("default rarity = %s", second.Rarity)
	}
	if second.Stats != stats.NewBlock(stats.MinValue) {
		t.Errorf("default stats = %v", second.Stats)
	}
}

func TestParseRoster_GeneratedIDsAreStable(t *testing.T) {
	_, first, err := ParseRoster([]byte(sampleRoster))
	if err != nil {
		t.Fatalf("ParseRoster: %v", err)
	}
	_, second, err := ParseRoster([]byte(sampleRoster))
	if err != nil {
		t.Fatalf("ParseRoster: %v", err)
	}
	if first[1].ID != second[1].ID {
		t.Errorf("generated IDs differ between parses: %q vs %q", first[1].ID, second[1].ID)
	}

	other := strings.Replace(sampleRoster, "player: ash", "player: misty", 1)
	_, misty, err := ParseRoster([]byte(other))
	if err != nil {
		t.Fatalf("ParseRoster: %v", err)
	}
	if misty[1].ID == first[1].ID {
		t.Error("different players should get different generated IDs")
	}

	twins := "creatures:\n  - species: x\n  - species: x\n"
	_, pair, err := ParseRoster([]byte(twins))
	if err != nil {
		t.Fatalf("ParseRoster: %v", err)
	}
	if pair[0].ID == pair[1].ID {
		t.Errorf("identical entries share ID %q", pair[0].ID)
	}
}

func TestParseRoster_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing species", "creatures:\n  - form: 1\n", "species is required"},
		{"form too high", "creatures:\n  - species: x\n    form: 4\n", "form 4"},
		{"negative form", "creatures:\n  - species: x\n    form: -1\n", "form -1"},
		{"bad rarity", "creatures:\n  - species: x\n    rarity: mythic\n", "unknown rarity"},
		{"bad stat", "creatures:\n  - species: x\n    stats: {luck: 5}\n", "unknown stat"},
		{"stat range", "creatures:\n  - species: x\n    stats: {speed: 21}\n", "outside"},
		{"bad specialty", "creatures:\n  - species: x\n    specialties: [charm]\n", "unknown specialty"},
		{"malformed", "creatures: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseRoster([]byte(tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRosterFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte(sampleRoster), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	player, creatures, err := LoadRosterFromYAML(path)
	if err != nil || player != "ash" || len(creatures) != 2 {
		t.Errorf("LoadRosterFromYAML = %q, %d creatures, %v", player, len(creatures), err)
	}

	if _, _, err := LoadRosterFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestToRosterFile_RoundTrip(t *testing.T) {
	_, creatures, err := ParseRoster([]byte(sampleRoster))
	if err != nil {
		t.Fatalf("ParseRoster: %v", err)
	}

	data, err := yaml.Marshal(ToRosterFile("ash", append(creatures, nil)))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	player, again, err := ParseRoster(data)
	if err != nil {
		t.Fatalf("ParseRoster(exported): %v", err)
	}
	if player != "ash" || !reflect.DeepEqual(again, creatures) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", again, creatures)
	}
}
