package items

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/lawnchairsociety/enemyforge/internal/difficulty"
	"github.com/lawnchairsociety/enemyforge/internal/rarity"
	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), nil)
}

func TestTools_DefaultCounts(t *testing.T) {
	g := newTestGenerator(1)

	tests := []struct {
		tier   difficulty.Tier
		tools  int
		spells int
	}{
		{difficulty.Easy, 2, 1},
		{difficulty.Medium, 3, 2},
		{difficulty.Hard, 4, 3},
		{difficulty.Expert, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			if got := len(g.Tools(tt.tier, 0)); got != tt.tools {
				t.Errorf("Tools() = %d, want %d", got, tt.tools)
			}
			if got := len(g.Spells(tt.tier, 0)); got != tt.spells {
				t.Errorf("Spells() = %d, want %d", got, tt.spells)
			}
		})
	}
}

func TestTools_ExplicitCount(t *testing.T) {
	g := newTestGenerator(2)

	if got := len(g.Tools(difficulty.Expert, 1)); got != 1 {
		t.Errorf("Tools(expert, 1) = %d items, want 1", got)
	}
	if got := len(g.Spells(difficulty.Easy, 3)); got != 3 {
		t.Errorf("Spells(easy, 3) = %d items, want 3", got)
	}
}

func TestTools_Fields(t *testing.T) {
	g := newTestGenerator(3)

	for _, tool := range g.Tools(difficulty.Medium, 20) {
		if tool.Kind != Tool {
			t.Errorf("Kind = %v, want tool", tool.Kind)
		}
		if !strings.HasPrefix(tool.ID, "enemy_tool_") {
			t.Errorf("ID = %q", tool.ID)
		}
		if !strings.HasSuffix(tool.Name, " Tool") || !strings.HasPrefix(tool.Name, tool.Rarity.String()) {
			t.Errorf("Name = %q", tool.Name)
		}
		if !strings.HasPrefix(tool.ImageURL, "/assets/tools/"+tool.Type.String()+"_") {
			t.Errorf("ImageURL = %q", tool.ImageURL)
		}
		if !strings.HasPrefix(tool.Description, "A ") || !strings.Contains(tool.Description, " tool for ") {
			t.Errorf("Description = %q", tool.Description)
		}
		if tool.UsageCost != ToolUsageCost || tool.ManaCost != 0 {
			t.Errorf("costs = %d/%d", tool.UsageCost, tool.ManaCost)
		}
		if tool.PowerLevel != PowerLevel(tool.Rarity, difficulty.Medium) {
			t.Errorf("PowerLevel = %v", tool.PowerLevel)
		}
		if tool.StrategicValue != StrategicValue(tool.Combo(), difficulty.Medium) {
			t.Errorf("StrategicValue = %d", tool.StrategicValue)
		}
	}
}

func TestSpells_Fields(t *testing.T) {
	g := newTestGenerator(4)

	for _, spell := range g.Spells(difficulty.Hard, 20) {
		if spell.Kind != Spell {
			t.Errorf("Kind = %v, want spell", spell.Kind)
		}
		if !strings.HasPrefix(spell.ID, "enemy_spell_") {
			t.Errorf("ID = %q", spell.ID)
		}
		if !strings.HasSuffix(spell.Name, " Spell") {
			t.Errorf("Name = %q", spell.Name)
		}
		if !strings.HasPrefix(spell.ImageURL, "/assets/spells/") {
			t.Errorf("ImageURL = %q", spell.ImageURL)
		}
		if !strings.Contains(spell.Description, " spell that ") {
			t.Errorf("Description = %q", spell.Description)
		}
		if spell.ManaCost != SpellManaCost || spell.UsageCost != 0 {
			t.Errorf("costs = %d/%d", spell.UsageCost, spell.ManaCost)
		}
	}
}

func TestSpells_ExpertPreferenceList(t *testing.T) {
	g := newTestGenerator(5)

	for run := 0; run < 20; run++ {
		spells := g.Spells(difficulty.Expert, 6)
		for i, want := range lethalSpells {
			if got := spells[i].Combo(); got != want {
				t.Fatalf("spell %d = %+v, want %+v", i, got, want)
			}
		}
	}

	// A single bonus spell on expert always takes the first preference
	for run := 0; run < 20; run++ {
		if got := g.Spells(difficulty.Expert, 1)[0].Combo(); got != lethalSpells[0] {
			t.Fatalf("bonus spell = %+v, want %+v", got, lethalSpells[0])
		}
	}
}

func TestSpells_HardFavorsLethalCombos(t *testing.T) {
	g := newTestGenerator(6)

	lethal, total := 0, 0
	for run := 0; run < 500; run++ {
		for _, s := range g.Spells(difficulty.Hard, 0) {
			total++
			for _, c := range lethalSpells {
				if s.Combo() == c {
					lethal++
					break
				}
			}
		}
	}
	// 0.6 + 0.4 * 4/25 = 0.664
	if share := float64(lethal) / float64(total); share < 0.60 || share > 0.73 {
		t.Errorf("hard lethal share = %.3f, expected about 0.66", share)
	}
}

func TestTools_StrategicCycleOnHardTiers(t *testing.T) {
	g := newTestGenerator(7)

	matches, total := 0, 0
	for run := 0; run < 400; run++ {
		for i, tool := range g.Tools(difficulty.Expert, 0) {
			total++
			if tool.Combo() == strategicTools[i%len(strategicTools)] {
				matches++
			}
		}
	}
	// 0.7 + 0.3 * 1/25 = 0.712
	if share := float64(matches) / float64(total); share < 0.67 || share > 0.76 {
		t.Errorf("expert strategic share = %.3f, expected about 0.71", share)
	}

	matches, total = 0, 0
	for run := 0; run < 400; run++ {
		for i, tool := range g.Tools(difficulty.Easy, 0) {
			total++
			if tool.Combo() == strategicTools[i%len(strategicTools)] {
				matches++
			}
		}
	}
	if share := float64(matches) / float64(total); share > 0.1 {
		t.Errorf("easy strategic share = %.3f, expected about 0.04", share)
	}
}

func TestItemRarityTables(t *testing.T) {
	g := newTestGenerator(8)

	for run := 0; run < 200; run++ {
		for _, s := range g.Spells(difficulty.Expert, 0) {
			if s.Rarity != rarity.Epic && s.Rarity != rarity.Legendary {
				t.Fatalf("expert spell rarity %s not in table", s.Rarity)
			}
		}
		for _, tool := range g.Tools(difficulty.Easy, 0) {
			if tool.Rarity == rarity.Legendary {
				t.Fatal("easy tools never roll Legendary")
			}
		}
	}
}

func TestAll_BonusItems(t *testing.T) {
	g := newTestGenerator(9)

	for _, tier := range difficulty.Tiers {
		profile := difficulty.Settings(tier)
		want := tier.ToolCount() + tier.SpellCount() + profile.BonusItems

		for run := 0; run < 20; run++ {
			set := g.All(tier)
			if got := len(set.Tools) + len(set.Spells); got != want {
				t.Fatalf("%s: %d items, want %d", tier, got, want)
			}
			if len(set.Tools) < tier.ToolCount() || len(set.Spells) < tier.SpellCount() {
				t.Fatalf("%s: base counts missing (%d tools, %d spells)", tier, len(set.Tools), len(set.Spells))
			}
		}
	}
}

func TestAll_BonusSplit(t *testing.T) {
	g := newTestGenerator(10)

	bonusTools, bonusTotal := 0, 0
	for run := 0; run < 1000; run++ {
		set := g.All(difficulty.Expert)
		bonusTools += len(set.Tools) - difficulty.Expert.ToolCount()
		bonusTotal += difficulty.Settings(difficulty.Expert).BonusItems
	}
	if share := float64(bonusTools) / float64(bonusTotal); share < 0.57 || share > 0.63 {
		t.Errorf("bonus tool share = %.3f, expected about 0.6", share)
	}
}

func TestPowerLevel_Monotonic(t *testing.T) {
	for _, tier := range difficulty.Tiers {
		prev := 0.0
		for _, r := range rarity.All {
			p := PowerLevel(r, tier)
			if p < prev {
				t.Errorf("%s: power %v for %s below previous %v", tier, p, r, prev)
			}
			prev = p
		}
	}

	for _, r := range rarity.All {
		prev := 0.0
		for _, tier := range difficulty.Tiers {
			p := PowerLevel(r, tier)
			if p < prev {
				t.Errorf("%s: power %v on %s below previous %v", r, p, tier, prev)
			}
			prev = p
		}
	}

	if got := PowerLevel(rarity.Legendary, difficulty.Expert); got != 3.0 {
		t.Errorf("Legendary/expert = %v, want 3.0", got)
	}
	if got := PowerLevel(rarity.Common, difficulty.Easy); got != 1.0 {
		t.Errorf("Common/easy = %v, want 1.0", got)
	}
}

func TestStrategicValue(t *testing.T) {
	tests := []struct {
		combo    Combo
		tier     difficulty.Tier
		expected int
	}{
		{Combo{stats.Speed, Charge}, difficulty.Expert, 45 + 10 + 9},
		{Combo{stats.Energy, Drain}, difficulty.Easy, 40 + 10},
		{Combo{stats.Magic, Surge}, difficulty.Medium, 30 + 3},
		{Combo{stats.Stamina, Shield}, difficulty.Hard, 35 + 10 + 6},
		{Combo{stats.Strength, Echo}, difficulty.Hard, 25 + 6},
	}

	for _, tt := range tests {
		if got := StrategicValue(tt.combo, tt.tier); got != tt.expected {
			t.Errorf("StrategicValue(%s %s, %s) = %d, want %d",
				tt.combo.Type, tt.combo.Effect, tt.tier, got, tt.expected)
		}
	}
}

func TestDescriptions(t *testing.T) {
	tool := toolDescription(Combo{stats.Speed, Charge}, rarity.Legendary)
	if tool != "A legendary tool for agility enhancement that builds up power for devastating results." {
		t.Errorf("tool description = %q", tool)
	}

	spell := spellDescription(Combo{stats.Strength, Drain}, rarity.Rare)
	if spell != "A potent force spell that siphons life force and power." {
		t.Errorf("spell description = %q", spell)
	}
}

func TestParseEffect(t *testing.T) {
	for _, e := range Effects {
		parsed, ok := ParseEffect(strings.ToLower(e.String()))
		if !ok || parsed != e {
			t.Errorf("ParseEffect(%q) = (%v, %v)", e, parsed, ok)
		}
	}
	if _, ok := ParseEffect("Blink"); ok {
		t.Error("ParseEffect(Blink) should fail")
	}
}
