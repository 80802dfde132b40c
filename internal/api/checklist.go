package api

import (
	"net/http"

	"github.com/naphat/floodkit/internal/playbook"
)

// ChecklistHandler serves the recovery checklist and its progress.
type ChecklistHandler struct {
	Tracker *playbook.Tracker
}

type setDoneRequest struct {
	Done bool `json:"done"`
}

// Get handles GET /api/checklist: the full section content plus the
// current completion state.
func (h *ChecklistHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"sections": playbook.Sections(),
		"progress": h.Tracker.Progress(),
	})
}

// SetDone handles PUT /api/checklist/{taskID}.
func (h *ChecklistHandler) SetDone(w http.ResponseWriter, r *http.Request) {
	var req setDoneRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Tracker.SetDone(r.Context(), r.PathValue("taskID"), req.Done); err != nil {
		domainError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, h.Tracker.Progress())
}

// Reset handles POST /api/checklist/reset.
func (h *ChecklistHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Tracker.Reset(r.Context()); err != nil {
		domainError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, h.Tracker.Progress())
}
