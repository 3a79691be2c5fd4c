package stats

import (
	"math/rand"
	"testing"
)

func TestBase_VarianceAndClamp(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(10)))

	for i := 0; i < 200; i++ {
		b := s.Base(10, 1.3)
		for _, a := range Attributes {
			// 10 * 1.3 * [0.95, 1.05) rounds to 12..14
			if v := b.Get(a); v < 12 || v > 14 {
				t.Fatalf("Base(10, 1.3) %s = %d, expected 12-14", a, v)
			}
		}
	}

	high := s.Base(10, 5.0)
	if high.Max() != MaxValue {
		t.Errorf("Base should clamp to %d, got %v", MaxValue, high)
	}

	low := s.Base(7, 0.01)
	if low.Min() != MinValue {
		t.Errorf("Base should clamp to %d, got %v", MinValue, low)
	}
}

func TestBase_IndependentDraws(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(11)))

	// With a shared variance every attribute would always be equal
	varied := false
	for i := 0; i < 50 && !varied; i++ {
		b := s.Base(9, 1.2)
		if b.Min() != b.Max() {
			varied = true
		}
	}
	if !varied {
		t.Error("expected attributes to vary independently")
	}
}

func TestApplyEvolution(t *testing.T) {
	specialties := []Attribute{Magic}

	tests := []struct {
		form      int
		other     int
		specialty int
	}{
		{0, 10, 10},
		{1, 12, 12},
		{2, 14, 16},
		{3, 17, 19},
	}

	for _, tt := range tests {
		b := NewBlock(10)
		ApplyEvolution(&b, tt.form, specialties)
		if b.Get(Energy) != tt.other {
			t.Errorf("form %d: Energy = %d, want %d", tt.form, b.Get(Energy), tt.other)
		}
		if b.Get(Magic) != tt.specialty {
			t.Errorf("form %d: Magic = %d, want %d", tt.form, b.Get(Magic), tt.specialty)
		}
	}

	// Nil block is a no-op
	ApplyEvolution(nil, 3, specialties)
}

func TestUpgradePoints(t *testing.T) {
	if got := UpgradePoints(3, 10); got != 25 {
		t.Errorf("UpgradePoints(3, 10) = %d, want 25", got)
	}
	if got := UpgradePoints(0, 2); got != 2 {
		t.Errorf("UpgradePoints(0, 2) = %d, want 2", got)
	}
}

func TestApplyUpgrades(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(12)))

	b := NewBlock(5)
	s.ApplyUpgrades(&b, 17, []Attribute{Strength})
	if got := b.Total(); got != 25+17 {
		t.Errorf("Total after 17 upgrades = %d, want %d", got, 25+17)
	}

	// Specialty should collect most of the points over many runs
	specialtyPoints, total := 0, 0
	for i := 0; i < 200; i++ {
		b := NewBlock(0)
		s.ApplyUpgrades(&b, 10, []Attribute{Speed})
		specialtyPoints += b.Get(Speed)
		total += 10
	}
	// 0.7 + 0.3/5 = 0.76 expected share
	if share := float64(specialtyPoints) / float64(total); share < 0.70 || share > 0.82 {
		t.Errorf("specialty share = %.3f, expected about 0.76", share)
	}

	// No specialties spreads points over all attributes
	b = NewBlock(0)
	s.ApplyUpgrades(&b, 500, nil)
	for _, a := range Attributes {
		if b.Get(a) == 0 {
			t.Errorf("%s received no upgrades", a)
		}
	}

	s.ApplyUpgrades(nil, 5, nil)
}

func TestApplyFloor(t *testing.T) {
	b := NewBlockFrom(3, 9, 1, 12, 7)
	ApplyFloor(&b, 7)

	expected := NewBlockFrom(7, 9, 7, 12, 7)
	if b != expected {
		t.Errorf("ApplyFloor = %v, want %v", b, expected)
	}

	ApplyFloor(nil, 7)
}

func TestApplyCombination(t *testing.T) {
	specialties := []Attribute{Strength, Speed}

	b := NewBlock(10)
	ApplyCombination(&b, 2, specialties)
	if b != NewBlockFrom(10, 14, 10, 10, 14) {
		t.Errorf("level 2 = %v", b)
	}

	b = NewBlock(10)
	ApplyCombination(&b, 3, specialties)
	if b != NewBlockFrom(11, 17, 11, 11, 17) {
		t.Errorf("level 3 = %v", b)
	}

	b = NewBlock(10)
	ApplyCombination(&b, 4, nil)
	if b != NewBlock(10) {
		t.Errorf("no specialties should be a no-op, got %v", b)
	}

	ApplyCombination(nil, 4, specialties)
}

func TestCap(t *testing.T) {
	b := NewBlockFrom(25, 20, 3, 40, 19)
	Cap(&b)
	if b != NewBlockFrom(20, 20, 3, 20, 19) {
		t.Errorf("Cap = %v", b)
	}
	Cap(nil)
}
