package model

// Category is a classification bucket for inventory items. Sub-categories
// are suggestions for data entry, not an enforced enum.
type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	SubCategories []string `json:"subCategories"`
}
