package valuation

import (
	"testing"
	"time"

	"github.com/naphat/floodkit/internal/model"
)

func TestTotalDamageValue(t *testing.T) {
	got := TotalDamageValue(10000, 80, 1)
	if got != 8000 {
		t.Errorf("expected 8000, got %v", got)
	}

	got = TotalDamageValue(5000, 100, 2)
	if got != 10000 {
		t.Errorf("expected 10000, got %v", got)
	}

	got = TotalDamageValue(3000, 50, 1)
	if got != 1500 {
		t.Errorf("expected 1500, got %v", got)
	}
}

func TestTotalDamageValueNegativeInputsAreZero(t *testing.T) {
	if got := TotalDamageValue(-100, 50, 1); got != 0 {
		t.Errorf("negative value per unit: expected 0, got %v", got)
	}
	if got := TotalDamageValue(100, -50, 1); got != 0 {
		t.Errorf("negative percent: expected 0, got %v", got)
	}
	if got := TotalDamageValue(100, 50, -1); got != 0 {
		t.Errorf("negative quantity: expected 0, got %v", got)
	}
}

func TestDefaultDamagePercent(t *testing.T) {
	cases := map[string]float64{
		model.DamageLevelMinor:    20,
		model.DamageLevelModerate: 50,
		model.DamageLevelSevere:   80,
		model.DamageLevelTotal:    100,
	}
	for level, want := range cases {
		if got := DefaultDamagePercent(level); got != want {
			t.Errorf("%s: expected %v, got %v", level, want, got)
		}
	}

	// Unknown levels fall back to the moderate default.
	if got := DefaultDamagePercent("melted"); got != 50 {
		t.Errorf("unknown level: expected 50, got %v", got)
	}
}

func TestClampPercent(t *testing.T) {
	if got := ClampPercent(-5); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := ClampPercent(150); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
	if got := ClampPercent(42); got != 42 {
		t.Errorf("expected 42, got %v", got)
	}
}

func TestAgeYears(t *testing.T) {
	ref := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	age := AgeYears("2020-03-15", ref)
	if age == nil || *age != 5 {
		t.Errorf("expected 5, got %v", age)
	}

	// Future purchase date clamps to 0.
	age = AgeYears("2027-01-01", ref)
	if age == nil || *age != 0 {
		t.Errorf("expected 0, got %v", age)
	}

	// Absent or garbage dates mean "unknown", not "new".
	if age = AgeYears("", ref); age != nil {
		t.Errorf("expected nil for empty date, got %v", *age)
	}
	if age = AgeYears("last summer", ref); age != nil {
		t.Errorf("expected nil for unparseable date, got %v", *age)
	}
}
