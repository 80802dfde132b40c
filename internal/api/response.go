package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/naphat/floodkit/internal/inventory"
	"github.com/naphat/floodkit/internal/logger"
	"github.com/naphat/floodkit/internal/playbook"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logger.Get().Error("encoding response", zap.Error(err))
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// domainError maps application errors onto HTTP responses: validation
// failures are 400, missing records 404, protected categories 403,
// everything else a logged 500.
func domainError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *inventory.ValidationError
	switch {
	case errors.As(err, &verr):
		jsonError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, inventory.ErrNotFound), errors.Is(err, playbook.ErrNotFound):
		jsonError(w, http.StatusNotFound, "not found")
	case errors.Is(err, inventory.ErrProtectedCategory):
		jsonError(w, http.StatusForbidden, "default categories cannot be deleted")
	default:
		logger.FromContext(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path), zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}
