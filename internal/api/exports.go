package api

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/naphat/floodkit/internal/export"
	"github.com/naphat/floodkit/internal/inventory"
	"github.com/naphat/floodkit/internal/logger"
)

// ExportHandler serves the CSV downloads for claim paperwork.
type ExportHandler struct {
	Store *inventory.Store
}

// Items handles GET /api/export/items.csv.
func (h *ExportHandler) Items(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("Damage_Inventory_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := export.ItemsCSV(w, h.Store.Items(), h.Store.CategoryName); err != nil {
		// Headers are already sent; all that is left is to log.
		logger.FromContext(r.Context()).Error("writing items csv", zap.Error(err))
	}
}

// Summary handles GET /api/export/summary.csv.
func (h *ExportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("Damage_Summary_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := export.SummaryCSV(w, h.Store.SummaryByCategory(), h.Store.GrandTotal()); err != nil {
		logger.FromContext(r.Context()).Error("writing summary csv", zap.Error(err))
	}
}
