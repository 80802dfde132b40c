package api

import (
	"net/http"

	"github.com/naphat/floodkit/internal/inventory"
)

// CategoriesHandler handles category registry endpoints.
type CategoriesHandler struct {
	Store *inventory.Store
}

type categoryRequest struct {
	Name string `json:"name"`
}

type subCategoryRequest struct {
	Label string `json:"label"`
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.Categories())
}

// Create handles POST /api/categories.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := h.Store.AddCategory(r.Context(), req.Name)
	if err != nil {
		domainError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusCreated, cat)
}

// Rename handles PUT /api/categories/{id}.
func (h *CategoriesHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Store.RenameCategory(r.Context(), r.PathValue("id"), req.Name); err != nil {
		domainError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "category renamed"})
}

// Delete handles DELETE /api/categories/{id}.
func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.RemoveCategory(r.Context(), r.PathValue("id")); err != nil {
		domainError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

// AddSubCategory handles POST /api/categories/{id}/subcategories.
func (h *CategoriesHandler) AddSubCategory(w http.ResponseWriter, r *http.Request) {
	var req subCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Label == "" {
		jsonError(w, http.StatusBadRequest, "label required")
		return
	}

	if err := h.Store.AddSubCategory(r.Context(), r.PathValue("id"), req.Label); err != nil {
		domainError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]string{"message": "sub-category added"})
}

// RemoveSubCategory handles DELETE /api/categories/{id}/subcategories.
func (h *CategoriesHandler) RemoveSubCategory(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("label")
	if label == "" {
		jsonError(w, http.StatusBadRequest, "label query parameter required")
		return
	}

	if err := h.Store.RemoveSubCategory(r.Context(), r.PathValue("id"), label); err != nil {
		domainError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "sub-category removed"})
}
