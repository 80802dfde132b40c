package api

import (
	"net/http"

	"github.com/naphat/floodkit/internal/imaging"
	"github.com/naphat/floodkit/internal/inventory"
	"github.com/naphat/floodkit/internal/metrics"
	"github.com/naphat/floodkit/internal/model"
)

// ItemsHandler handles inventory item endpoints.
type ItemsHandler struct {
	Store         *inventory.Store
	MaxPhotoBytes int64
}

// List handles GET /api/items. The search, category, and repair_status
// query parameters filter the result; empty or "all" matches everything.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := h.Store.Filter(inventory.FilterOptions{
		Search:       q.Get("search"),
		CategoryID:   q.Get("category"),
		RepairStatus: q.Get("repair_status"),
	})
	if items == nil {
		items = []model.InventoryItem{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft model.ItemDraft
	if err := decodeJSON(r, &draft); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Store.CreateItem(r.Context(), draft)
	if err != nil {
		domainError(w, r, err)
		return
	}

	metrics.RecordItemOperation("create")
	h.updateGauges()
	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Store.Item(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var draft model.ItemDraft
	if err := decodeJSON(r, &draft); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Store.UpdateItem(r.Context(), r.PathValue("id"), draft)
	if err != nil {
		domainError(w, r, err)
		return
	}

	metrics.RecordItemOperation("update")
	h.updateGauges()
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteItem(r.Context(), r.PathValue("id")); err != nil {
		domainError(w, r, err)
		return
	}

	metrics.RecordItemOperation("delete")
	h.updateGauges()
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// UploadPhoto handles PUT /api/items/{id}/photo.
func (h *ItemsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.Store.Item(id); !ok {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxPhotoBytes)
	if err := r.ParseMultipartForm(h.MaxPhotoBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Normalize(file, h.MaxPhotoBytes)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.AttachPhoto(r.Context(), id, photo.Data, photo.MIME); err != nil {
		domainError(w, r, err)
		return
	}

	metrics.RecordItemOperation("photo")
	jsonResponse(w, http.StatusOK, map[string]string{"photoRef": "/api/items/" + id + "/photo"})
}

// GetPhoto handles GET /api/items/{id}/photo.
func (h *ItemsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	data, mime, err := h.Store.Photo(r.Context(), r.PathValue("id"))
	if err != nil {
		domainError(w, r, err)
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "photo not found")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.Write(data)
}

func (h *ItemsHandler) updateGauges() {
	totals := h.Store.GrandTotal()
	metrics.UpdateInventoryGauges(totals.ItemCount, totals.TotalDamageValue)
}
