package difficulty

// Requirements is the minimum roster a player needs before a tier is
// considered fair.
type Requirements struct {
	Form3    int
	Form2    int
	Form1    int
	AvgStats int
}

// RequirementsFor returns the roster requirements for a tier.
func RequirementsFor(t Tier) Requirements {
	switch t.normalize() {
	case Easy:
		return Requirements{Form3: 1, Form2: 1, Form1: 1, AvgStats: 45}
	case Hard:
		return Requirements{Form3: 4, Form2: 2, Form1: 2, AvgStats: 65}
	case Expert:
		return Requirements{Form3: 7, Form2: 3, Form1: 2, AvgStats: 75}
	default:
		return Requirements{Form3: 2, Form2: 1, Form1: 1, AvgStats: 55}
	}
}

// Tips returns flavor text describing what a tier expects from the player.
func Tips(t Tier) []string {
	switch t.normalize() {
	case Easy:
		return []string{
			"Enemy creatures are 15% stronger than normal",
			"AI makes tactical decisions and uses items strategically",
			"Requires at least 1 Form 3, 1 Form 2, and 1 Form 1 creature to win",
			"Good spell usage is essential for victory",
		}
	case Hard:
		return []string{
			"Enemy creatures are 60% stronger with multiple specialties",
			"AI plays near-optimally with predictive planning",
			"Requires at least 4 Form 3, 2 Form 2, and 2 Form 1 creatures",
			"Prepare for focus-fire tactics and lethal combos",
		}
	case Expert:
		return []string{
			"Enemy creatures are 100% stronger with maximum upgrades",
			"AI plays perfectly with multi-turn planning",
			"Requires at least 7 Form 3, 3 Form 2, and 2 Form 1 creatures",
			"Perfect resource management and execution required to win",
		}
	default:
		return []string{
			"Enemy creatures are 35% stronger than yours",
			"AI uses advanced tactics and multi-action turns",
			"Requires at least 2 Form 3, 1 Form 2, and 1 Form 1 creature",
			"Expect coordinated attacks and strategic item usage",
		}
	}
}
