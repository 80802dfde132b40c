// Package valuation holds the pure damage-valuation math: no state, no
// I/O, every function total over its inputs.
package valuation

import (
	"time"

	"github.com/naphat/floodkit/internal/model"
)

// defaultPercents maps a damage level to the damage percentage applied
// when the user has not overridden it.
var defaultPercents = map[string]float64{
	model.DamageLevelMinor:    20,
	model.DamageLevelModerate: 50,
	model.DamageLevelSevere:   80,
	model.DamageLevelTotal:    100,
}

// DefaultDamagePercent returns the configured default damage percentage
// for a damage level. Unknown levels get the moderate default.
func DefaultDamagePercent(level string) float64 {
	if pct, ok := defaultPercents[level]; ok {
		return pct
	}
	return defaultPercents[model.DamageLevelModerate]
}

// ClampPercent limits a damage percentage to the [0, 100] range.
func ClampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// TotalDamageValue computes the monetary loss for an item:
// valuePerUnit * damagePercent/100 * quantity. Negative inputs count as
// zero, so the result is never negative and the function never fails.
func TotalDamageValue(valuePerUnit, damagePercent float64, quantity int) float64 {
	if valuePerUnit < 0 {
		valuePerUnit = 0
	}
	if damagePercent < 0 {
		damagePercent = 0
	}
	if quantity < 0 {
		quantity = 0
	}
	return valuePerUnit * (damagePercent / 100) * float64(quantity)
}

// AgeYears computes the whole-year age of an item bought on purchaseDate
// (YYYY-MM-DD) as of ref. Returns nil when the date is absent or
// unparseable: an unknown age is not the same as a brand-new item.
// Non-positive ages clamp to 0.
func AgeYears(purchaseDate string, ref time.Time) *int {
	if purchaseDate == "" {
		return nil
	}
	bought, err := time.Parse("2006-01-02", purchaseDate)
	if err != nil {
		return nil
	}
	years := ref.Year() - bought.Year()
	if years < 0 {
		years = 0
	}
	return &years
}

// DamageLevelLabel returns the Thai display label for a damage level.
// Unknown levels render as-is.
func DamageLevelLabel(level string) string {
	switch level {
	case model.DamageLevelMinor:
		return "เล็กน้อย"
	case model.DamageLevelModerate:
		return "ปานกลาง"
	case model.DamageLevelSevere:
		return "รุนแรง"
	case model.DamageLevelTotal:
		return "ใช้งานไม่ได้/สูญหาย"
	default:
		return level
	}
}

// RepairStatusLabel returns the Thai display label for a repair status.
func RepairStatusLabel(status string) string {
	switch status {
	case model.RepairStatusRepairable:
		return "ซ่อมได้"
	case model.RepairStatusIrreparable:
		return "ซ่อมไม่ได้"
	case model.RepairStatusRepaired:
		return "ซ่อมแล้ว"
	default:
		return "รอประเมิน"
	}
}
