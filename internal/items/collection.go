package items

import "github.com/lawnchairsociety/enemyforge/internal/rarity"

// FindByID returns the item with the given ID
func FindByID(items []*Item, id string) (*Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// CountByRarity tallies items per rarity. Every rarity has an entry.
func CountByRarity(items []*Item) map[rarity.Rarity]int {
	counts := make(map[rarity.Rarity]int, len(rarity.All))
	for _, r := range rarity.All {
		counts[r] = 0
	}
	for _, item := range items {
		counts[item.Rarity]++
	}
	return counts
}

// TotalStrategicValue sums the strategic value of every item
func TotalStrategicValue(items []*Item) int {
	total := 0
	for _, item := range items {
		total += item.StrategicValue
	}
	return total
}

// TotalPowerLevel sums the power level of every item
func TotalPowerLevel(items []*Item) float64 {
	total := 0.0
	for _, item := range items {
		total += item.PowerLevel
	}
	return total
}
