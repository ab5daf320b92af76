package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/courseos/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// respondLookupError answers 404 for missing entities and 500 for everything else
func (h *BaseHandler) respondLookupError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, models.ErrNotFound) {
		h.RespondError(w, http.StatusNotFound, message)
		return
	}
	h.RespondError(w, http.StatusInternalServerError, "internal server error")
}

// validID reports whether "id" is a well-formed UUID
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
