package model

// Damage levels, ordered by severity.
const (
	DamageLevelMinor    = "minor"
	DamageLevelModerate = "moderate"
	DamageLevelSevere   = "severe"
	DamageLevelTotal    = "total"
)

// Usability statuses.
const (
	UsabilityNormal   = "normal"
	UsabilityPartial  = "partial"
	UsabilityUnusable = "unusable"
)

// Repair statuses.
const (
	RepairStatusPending     = "pending"
	RepairStatusRepairable  = "repairable"
	RepairStatusIrreparable = "irreparable"
	RepairStatusRepaired    = "repaired"
)

// ValidDamageLevel reports whether level is a known damage level.
func ValidDamageLevel(level string) bool {
	switch level {
	case DamageLevelMinor, DamageLevelModerate, DamageLevelSevere, DamageLevelTotal:
		return true
	}
	return false
}

// ValidUsability reports whether status is a known usability status.
func ValidUsability(status string) bool {
	switch status {
	case UsabilityNormal, UsabilityPartial, UsabilityUnusable:
		return true
	}
	return false
}

// ValidRepairStatus reports whether status is a known repair status.
func ValidRepairStatus(status string) bool {
	switch status {
	case RepairStatusPending, RepairStatusRepairable, RepairStatusIrreparable, RepairStatusRepaired:
		return true
	}
	return false
}

// InventoryItem is one damaged possession. JSON tags keep the camelCase
// wire names of the v2 records written by the original web tool, so data
// saved by either round-trips unchanged.
type InventoryItem struct {
	ID string `json:"id"`

	// Asset info.
	CategoryID  string `json:"categoryId"`
	SubCategory string `json:"subCategory,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`

	// Damage facts.
	DamageType   string `json:"damageType"`
	DamageLevel  string `json:"damageLevel"`
	DamageDetail string `json:"damageDetail"`
	IncidentDate string `json:"incidentDate,omitempty"`
	PhotoRef     string `json:"photoRef,omitempty"`

	// Status.
	Usability          string   `json:"usability"`
	RepairStatus       string   `json:"repairStatus"`
	RepairCostEstimate *float64 `json:"repairCostEstimate,omitempty"`

	// Valuation inputs.
	OriginalPrice    *float64 `json:"originalPrice,omitempty"`
	PurchaseDate     string   `json:"purchaseDate,omitempty"`
	AgeYears         *int     `json:"ageYears,omitempty"`
	ExpectedLifespan *float64 `json:"expectedLifespan,omitempty"`

	CurrentValuePerUnit float64 `json:"currentValuePerUnit"`
	DamagePercent       float64 `json:"damagePercent"`

	// Derived, recomputed and cached on every save.
	TotalDamageValue float64 `json:"totalDamageValue"`

	Note string `json:"note,omitempty"`
}

// ItemDraft is the typed input shape for creating or updating an item,
// validated at the store boundary. A nil DamagePercent means "not
// overridden": the damage level's default percentage applies.
type ItemDraft struct {
	CategoryID  string `json:"categoryId"`
	SubCategory string `json:"subCategory"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`

	DamageType   string `json:"damageType"`
	DamageLevel  string `json:"damageLevel"`
	DamageDetail string `json:"damageDetail"`
	IncidentDate string `json:"incidentDate"`
	PhotoRef     string `json:"photoRef"`

	Usability          string   `json:"usability"`
	RepairStatus       string   `json:"repairStatus"`
	RepairCostEstimate *float64 `json:"repairCostEstimate"`

	OriginalPrice    *float64 `json:"originalPrice"`
	PurchaseDate     string   `json:"purchaseDate"`
	AgeYears         *int     `json:"ageYears"`
	ExpectedLifespan *float64 `json:"expectedLifespan"`

	CurrentValuePerUnit float64  `json:"currentValuePerUnit"`
	DamagePercent       *float64 `json:"damagePercent"`

	Note string `json:"note"`
}
