package items

import (
	"testing"

	"github.com/lawnchairsociety/enemyforge/internal/rarity"
)

func testItems() []*Item {
	return []*Item{
		{ID: "a", Rarity: rarity.Rare, StrategicValue: 30, PowerLevel: 1.4},
		{ID: "b", Rarity: rarity.Epic, StrategicValue: 45, PowerLevel: 1.7},
		{ID: "c", Rarity: rarity.Rare, StrategicValue: 25, PowerLevel: 1.4},
	}
}

func TestFindByID(t *testing.T) {
	list := testItems()

	item, found := FindByID(list, "b")
	if !found || item.ID != "b" {
		t.Errorf("FindByID(b) = %v, %v", item, found)
	}

	if _, found := FindByID(list, "z"); found {
		t.Error("FindByID(z) should not be found")
	}
}

func TestCountByRarity(t *testing.T) {
	counts := CountByRarity(testItems())

	if counts[rarity.Rare] != 2 || counts[rarity.Epic] != 1 {
		t.Errorf("counts = %v", counts)
	}
	if _, ok := counts[rarity.Legendary]; !ok {
		t.Error("expected zero entry for Legendary")
	}

	empty := CountByRarity(nil)
	if len(empty) != len(rarity.All) {
		t.Errorf("empty counts = %v", empty)
	}
}

func TestTotals(t *testing.T) {
	list := testItems()

	if got := TotalStrategicValue(list); got != 100 {
		t.Errorf("TotalStrategicValue = %d, want 100", got)
	}
	if got := TotalPowerLevel(list); got < 4.49 || got > 4.51 {
		t.Errorf("TotalPowerLevel = %v, want 4.5", got)
	}
	if TotalStrategicValue(nil) != 0 || TotalPowerLevel(nil) != 0 {
		t.Error("empty totals should be zero")
	}
}
