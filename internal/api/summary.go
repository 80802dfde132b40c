package api

import (
	"net/http"

	"github.com/naphat/floodkit/internal/inventory"
)

// SummaryHandler serves the aggregated damage figures.
type SummaryHandler struct {
	Store *inventory.Store
}

// Get handles GET /api/summary.
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"categories": h.Store.SummaryByCategory(),
		"totals":     h.Store.GrandTotal(),
	})
}
