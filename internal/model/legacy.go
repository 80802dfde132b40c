package model

// LegacyItem is the v1 record schema written before the damage-assessment
// fields were split out. It only exists as a migration source: v1 records
// carried a flat price/status pair instead of the per-unit valuation and
// repair workflow of InventoryItem.
type LegacyItem struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"categoryId"`
	SubCategory  string  `json:"subCategory"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	TotalValue   float64 `json:"totalValue"`
	Status       string  `json:"status"`
	Note         string  `json:"note"`
}
