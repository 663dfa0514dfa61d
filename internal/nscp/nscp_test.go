package nscp

import (
	"math"
	"testing"
)

func TestFactored(t *testing.T) {
	effects := LoadEffects{Dead: 11.25e3, Live: 15e3}

	tests := []struct {
		id   string
		want float64
	}{
		{"S", 26.25e3},
		{"1", 15.75e3},
		{"2", 37.5e3},
		{"3", 28.5e3},
		{"6", 10.125e3},
	}

	for _, tt := range tests {
		combo, err := FindCombination(tt.id)
		if err != nil {
			t.Fatalf("FindCombination(%q): %v", tt.id, err)
		}
		if got := combo.Factored(effects); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("combo %s: got %f, want %f", tt.id, got, tt.want)
		}
	}
}

func TestFindCombination_NotFound(t *testing.T) {
	if _, err := FindCombination("9"); err == nil {
		t.Error("expected error for unknown combination")
	}
	combo, err := FindCombination("")
	if err != nil || combo.ID != "S" {
		t.Errorf("empty id should select service combination, got %+v (%v)", combo, err)
	}
}

func TestGoverning(t *testing.T) {
	value, combo := Governing(LoadEffects{Dead: 10, Live: 15}, GravityCombinations)
	if combo.ID != "2" {
		t.Errorf("expected 1.2D + 1.6L to govern, got %s", combo.Description)
	}
	if math.Abs(value-36) > 1e-9 {
		t.Errorf("governing value %f, want 36", value)
	}

	// Dead-only loading is governed by 1.4D.
	_, combo = Governing(LoadEffects{Dead: 10}, GravityCombinations)
	if combo.ID != "1" {
		t.Errorf("expected 1.4D to govern, got %s", combo.Description)
	}
}

func TestConcreteModulus(t *testing.T) {
	if got := ConcreteModulus(28); math.Abs(got-24870.06) > 0.01 {
		t.Errorf("Ec(28) = %f", got)
	}
	if ConcreteModulus(-1) != 0 {
		t.Error("expected 0 for non-positive f'c")
	}
}

func TestSelfWeight(t *testing.T) {
	if got := SelfWeight(0.45, GammaConcrete); math.Abs(got-10800) > 1e-9 {
		t.Errorf("SelfWeight = %f, want 10800", got)
	}
}
