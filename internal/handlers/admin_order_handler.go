package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/courseos/backend/internal/models"
	"github.com/courseos/backend/internal/ordering"
	"github.com/courseos/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderingService is the interface that wraps methods for admin ordering operations
type OrderingService interface {
	// Method Reorder moves the item at "from" to "to" inside a scope and persists the changed positions
	//
	// "ctx" is the context for the request.
	// "scope" is the sibling scope type.
	// "scopeID" is the parent ID, ignored for modules.
	// "from" and "to" are 0-based indexes into the ordered siblings.
	//
	// Returns the new order and an error if any.
	// On a failed write the result holds the last committed order and the error is an *services.OrderPersistError.
	Reorder(ctx context.Context, scope models.ScopeType, scopeID string, from, to int) (*models.ReorderResult, error)
	// Method MoveUp moves the item at "index" one step towards the start
	MoveUp(ctx context.Context, scope models.ScopeType, scopeID string, index int) (*models.ReorderResult, error)
	// Method MoveDown moves the item at "index" one step towards the end
	MoveDown(ctx context.Context, scope models.ScopeType, scopeID string, index int) (*models.ReorderResult, error)
	// Method SetOrder replaces the order of a scope with "orderedIDs", which must be a permutation of the siblings
	SetOrder(ctx context.Context, scope models.ScopeType, scopeID string, orderedIDs []string) (*models.ReorderResult, error)
	// Method Renumber rewrites the positions of a scope as 1..N keeping the current order
	Renumber(ctx context.Context, scope models.ScopeType, scopeID string) (*models.ReorderResult, error)
	// Method RepairAll renumbers every scope of the catalog
	//
	// Returns the number of items whose position changed and an error if any.
	RepairAll(ctx context.Context) (int, error)
}

// orderErrorResponse is returned when a computed order could not be saved
type orderErrorResponse struct {
	Error  string                `json:"error"`
	Result *models.ReorderResult `json:"result"`
}

// AdminOrderHandler handles HTTP requests for admin ordering operations
type AdminOrderHandler struct {
	BaseHandler
	ordering OrderingService
}

// NewAdminOrderHandler creates a new admin order handler
func NewAdminOrderHandler(ordering OrderingService, logger *zap.Logger) *AdminOrderHandler {
	return &AdminOrderHandler{
		ordering:    ordering,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all admin order handler routes
func (h *AdminOrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin/order", func(r chi.Router) {
		r.Post("/repair", h.RepairAll)
		r.Put("/{scope}", h.SetOrder)
		r.Post("/{scope}/reorder", h.Reorder)
		r.Post("/{scope}/move-up", h.MoveUp)
		r.Post("/{scope}/move-down", h.MoveDown)
		r.Post("/{scope}/renumber", h.Renumber)
	})
}

// Reorder handles POST /admin/order/{scope}/reorder
// @Summary Move an item inside a scope
// @Description Move the item at fromIndex to toIndex and persist only the changed positions
// @Tags admin
// @Accept json
// @Produce json
// @Param scope path string true "Scope (modules, lessons, resources)"
// @Param request body models.ReorderRequest true "Reorder request"
// @Success 200 {object} models.ReorderResult "New order"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} orderErrorResponse "Order could not be saved, committed order returned"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/order/{scope}/reorder [post]
func (h *AdminOrderHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !h.validScopeID(w, req.ScopeID) {
		return
	}

	result, err := h.ordering.Reorder(r.Context(), scopeParam(r), req.ScopeID, req.FromIndex, req.ToIndex)
	h.respondOrder(w, result, err)
}

// MoveUp handles POST /admin/order/{scope}/move-up
// @Summary Move an item one step up
// @Tags admin
// @Accept json
// @Produce json
// @Param scope path string true "Scope (modules, lessons, resources)"
// @Param request body models.MoveRequest true "Move request"
// @Success 200 {object} models.ReorderResult "New order"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} orderErrorResponse "Order could not be saved, committed order returned"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/order/{scope}/move-up [post]
func (h *AdminOrderHandler) MoveUp(w http.ResponseWriter, r *http.Request) {
	var req models.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !h.validScopeID(w, req.ScopeID) {
		return
	}

	result, err := h.ordering.MoveUp(r.Context(), scopeParam(r), req.ScopeID, req.Index)
	h.respondOrder(w, result, err)
}

// MoveDown handles POST /admin/order/{scope}/move-down
// @Summary Move an item one step down
// @Tags admin
// @Accept json
// @Produce json
// @Param scope path string true "Scope (modules, lessons, resources)"
// @Param request body models.MoveRequest true "Move request"
// @Success 200 {object} models.ReorderResult "New order"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} orderErrorResponse "Order could not be saved, committed order returned"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/order/{scope}/move-down [post]
func (h *AdminOrderHandler) MoveDown(w http.ResponseWriter, r *http.Request) {
	var req models.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !h.validScopeID(w, req.ScopeID) {
		return
	}

	result, err := h.ordering.MoveDown(r.Context(), scopeParam(r), req.ScopeID, req.Index)
	h.respondOrder(w, result, err)
}

// SetOrder handles PUT /admin/order/{scope}
// @Summary Replace the order of a scope
// @Description Replace the order of a scope with a full permutation of its item IDs
// @Tags admin
// @Accept json
// @Produce json
// @Param scope path string true "Scope (modules, lessons, resources)"
// @Param request body models.SetOrderRequest true "Set order request"
// @Success 200 {object} models.ReorderResult "New order"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} orderErrorResponse "Order could not be saved, committed order returned"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/order/{scope} [put]
func (h *AdminOrderHandler) SetOrder(w http.ResponseWriter, r *http.Request) {
	var req models.SetOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !h.validScopeID(w, req.ScopeID) {
		return
	}

	result, err := h.ordering.SetOrder(r.Context(), scopeParam(r), req.ScopeID, req.OrderedIDs)
	h.respondOrder(w, result, err)
}

// Renumber handles POST /admin/order/{scope}/renumber
// @Summary Renumber a scope
// @Description Rewrite the positions of a scope as 1..N keeping the current order
// @Tags admin
// @Produce json
// @Param scope path string true "Scope (modules, lessons, resources)"
// @Param scopeId query string false "Parent ID, required for lessons and resources"
// @Success 200 {object} models.ReorderResult "New order"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} orderErrorResponse "Order could not be saved, committed order returned"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/order/{scope}/renumber [post]
func (h *AdminOrderHandler) Renumber(w http.ResponseWriter, r *http.Request) {
	scopeID := r.URL.Query().Get("scopeId")
	if !h.validScopeID(w, scopeID) {
		return
	}

	result, err := h.ordering.Renumber(r.Context(), scopeParam(r), scopeID)
	h.respondOrder(w, result, err)
}

// RepairAll handles POST /admin/order/repair
// @Summary Repair every scope
// @Description Renumber every scope of the catalog so that positions are contiguous
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]int "Number of repaired items"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /admin/order/repair [post]
func (h *AdminOrderHandler) RepairAll(w http.ResponseWriter, r *http.Request) {
	repaired, err := h.ordering.RepairAll(r.Context())
	if err != nil {
		h.Logger.Error("failed to repair order", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to repair order")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]int{"repaired": repaired})
}

// respondOrder writes the result of an ordering operation, mapping its error to a status
func (h *AdminOrderHandler) respondOrder(w http.ResponseWriter, result *models.ReorderResult, err error) {
	if err == nil {
		h.RespondJSON(w, http.StatusOK, result)
		return
	}

	switch {
	case errors.Is(err, services.ErrOrderPersistFailure):
		h.Logger.Warn("order was not saved", zap.Error(err))
		h.RespondJSON(w, http.StatusConflict, orderErrorResponse{
			Error:  "order could not be saved, showing the last saved order",
			Result: result,
		})
	case errors.Is(err, ordering.ErrOutOfRange),
		errors.Is(err, ordering.ErrNotPermutation),
		errors.Is(err, services.ErrInvalidScope),
		errors.Is(err, services.ErrScopeIDRequired):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	default:
		h.Logger.Error("failed to reorder", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to reorder")
	}
}

// validScopeID rejects a malformed parent ID; an empty one is left to the service
func (h *AdminOrderHandler) validScopeID(w http.ResponseWriter, scopeID string) bool {
	if scopeID != "" && !validID(scopeID) {
		h.RespondError(w, http.StatusBadRequest, "invalid scope ID")
		return false
	}
	return true
}

func scopeParam(r *http.Request) models.ScopeType {
	return models.ScopeType(chi.URLParam(r, "scope"))
}
