package api

import (
	"net/http"

	"github.com/naphat/floodkit/internal/inventory"
	"github.com/naphat/floodkit/internal/metrics"
	"github.com/naphat/floodkit/internal/playbook"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(store *inventory.Store, tracker *playbook.Tracker, maxPhotoBytes int64) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{Store: store, MaxPhotoBytes: maxPhotoBytes}
	categoriesHandler := &CategoriesHandler{Store: store}
	summaryHandler := &SummaryHandler{Store: store}
	checklistHandler := &ChecklistHandler{Tracker: tracker}
	exportHandler := &ExportHandler{Store: store}

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Items.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PUT /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)
	mux.HandleFunc("PUT /api/items/{id}/photo", itemsHandler.UploadPhoto)
	mux.HandleFunc("GET /api/items/{id}/photo", itemsHandler.GetPhoto)

	// Aggregates.
	mux.HandleFunc("GET /api/summary", summaryHandler.Get)

	// Category registry.
	mux.HandleFunc("GET /api/categories", categoriesHandler.List)
	mux.HandleFunc("POST /api/categories", categoriesHandler.Create)
	mux.HandleFunc("PUT /api/categories/{id}", categoriesHandler.Rename)
	mux.HandleFunc("DELETE /api/categories/{id}", categoriesHandler.Delete)
	mux.HandleFunc("POST /api/categories/{id}/subcategories", categoriesHandler.AddSubCategory)
	mux.HandleFunc("DELETE /api/categories/{id}/subcategories", categoriesHandler.RemoveSubCategory)

	// Recovery checklist.
	mux.HandleFunc("GET /api/checklist", checklistHandler.Get)
	mux.HandleFunc("PUT /api/checklist/{taskID}", checklistHandler.SetDone)
	mux.HandleFunc("POST /api/checklist/reset", checklistHandler.Reset)

	// CSV exports.
	mux.HandleFunc("GET /api/export/items.csv", exportHandler.Items)
	mux.HandleFunc("GET /api/export/summary.csv", exportHandler.Summary)

	return RequestLogger(metrics.Middleware(mux))
}
