package stats

import "testing"

func TestAttributeNames(t *testing.T) {
	tests := []struct {
		attr  Attribute
		name  string
		title string
	}{
		{Energy, "energy", "Energy"},
		{Strength, "strength", "Strength"},
		{Magic, "magic", "Magic"},
		{Stamina, "stamina", "Stamina"},
		{Speed, "speed", "Speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.attr.Title(); got != tt.title {
				t.Errorf("Title() = %q, want %q", got, tt.title)
			}
			parsed, ok := ParseAttribute(tt.title)
			if !ok || parsed != tt.attr {
				t.Errorf("ParseAttribute(%q) = (%v, %v)", tt.title, parsed, ok)
			}
		})
	}

	if _, ok := ParseAttribute("luck"); ok {
		t.Error("ParseAttribute(luck) should fail")
	}
}

func TestBlock(t *testing.T) {
	b := NewBlockFrom(1, 2, 3, 4, 5)

	if b.Total() != 15 {
		t.Errorf("Total() = %d, want 15", b.Total())
	}
	if b.Min() != 1 || b.Max() != 5 {
		t.Errorf("Min/Max = %d/%d, want 1/5", b.Min(), b.Max())
	}

	b.Add(Magic, 10)
	if b.Get(Magic) != 13 {
		t.Errorf("Magic = %d, want 13", b.Get(Magic))
	}

	b.AddAll(10)
	if b.Get(Energy) != 11 || b.Get(Magic) != 23 {
		t.Errorf("after AddAll: %v", b)
	}

	b.Clamp(MinValue, MaxValue)
	if b.Get(Magic) != 20 {
		t.Errorf("Clamp should cap Magic at 20, got %d", b.Get(Magic))
	}

	m := b.ToMap()
	if len(m) != NumAttributes || m["speed"] != 15 {
		t.Errorf("ToMap() = %v", m)
	}
}

func TestNewBlock(t *testing.T) {
	b := NewBlock(7)
	for _, a := range Attributes {
		if b.Get(a) != 7 {
			t.Errorf("%s = %d, want 7", a, b.Get(a))
		}
	}
}

func TestContains(t *testing.T) {
	attrs := []Attribute{Magic, Speed}
	if !Contains(attrs, Speed) {
		t.Error("expected Speed to be found")
	}
	if Contains(attrs, Energy) {
		t.Error("did not expect Energy to be found")
	}
	if Contains(nil, Energy) {
		t.Error("nil slice contains nothing")
	}
}
