package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/courseos/backend/internal/models"
	"github.com/courseos/backend/internal/ordering"
	"github.com/courseos/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lessonOrder(ids ...string) *models.ReorderResult {
	items := make([]models.OrderedItem, len(ids))
	for i, id := range ids {
		items[i] = models.OrderedItem{ID: id, OrderPosition: i + 1}
	}
	return &models.ReorderResult{Scope: models.ScopeLessons, ScopeID: testModuleID, Items: items, Changed: []models.OrderUpdate{}}
}

func TestAdminOrderHandler_Routes(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		expectedCall string
	}{
		{
			name:         "reorder",
			method:       http.MethodPost,
			target:       "/admin/order/lessons/reorder",
			body:         `{"scopeId":"7f1c0c8e-8a43-4a4c-9a55-0e4f3f7a2b10","fromIndex":0,"toIndex":2}`,
			expectedCall: "reorder lessons " + testModuleID + " [0 2]",
		},
		{
			name:         "move up",
			method:       http.MethodPost,
			target:       "/admin/order/modules/move-up",
			body:         `{"index":1}`,
			expectedCall: "move-up modules  [1]",
		},
		{
			name:         "move down",
			method:       http.MethodPost,
			target:       "/admin/order/resources/move-down",
			body:         `{"scopeId":"3b2d4c1a-5e6f-4a7b-8c9d-0e1f2a3b4c5d","index":0}`,
			expectedCall: "move-down resources " + testLessonID + " [0]",
		},
		{
			name:         "set order",
			method:       http.MethodPut,
			target:       "/admin/order/lessons",
			body:         `{"scopeId":"7f1c0c8e-8a43-4a4c-9a55-0e4f3f7a2b10","orderedIds":["b","a"]}`,
			expectedCall: "set lessons " + testModuleID + " [[b a]]",
		},
		{
			name:         "renumber",
			method:       http.MethodPost,
			target:       "/admin/order/lessons/renumber?scopeId=" + testModuleID,
			expectedCall: "renumber lessons " + testModuleID + " []",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockOrderingService{result: lessonOrder("a", "b")}
			h := NewAdminOrderHandler(svc, testLogger)

			w := serve(h, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusOK, w.Code)
			require.Len(t, svc.calls, 1)
			assert.Equal(t, tt.expectedCall, svc.calls[0])
		})
	}
}

func TestAdminOrderHandler_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		err            error
		expectedStatus int
	}{
		{
			name:           "invalid body",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed scope id",
			body:           `{"scopeId":"m1","fromIndex":0,"toIndex":1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "out of range",
			body:           `{"scopeId":"7f1c0c8e-8a43-4a4c-9a55-0e4f3f7a2b10","fromIndex":5,"toIndex":0}`,
			err:            fmt.Errorf("from index 5: %w", ordering.ErrOutOfRange),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown scope",
			body:           `{"fromIndex":0,"toIndex":1}`,
			err:            services.ErrInvalidScope,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing scope id",
			body:           `{"fromIndex":0,"toIndex":1}`,
			err:            services.ErrScopeIDRequired,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "storage error",
			body:           `{"scopeId":"7f1c0c8e-8a43-4a4c-9a55-0e4f3f7a2b10","fromIndex":0,"toIndex":1}`,
			err:            &services.StorageError{Op: "get lessons", Err: errors.New("db down")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockOrderingService{err: tt.err}
			h := NewAdminOrderHandler(svc, testLogger)

			w := serve(h, http.MethodPost, "/admin/order/lessons/reorder", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAdminOrderHandler_PersistFailureReturnsCommittedOrder(t *testing.T) {
	svc := &mockOrderingService{
		result: lessonOrder("a", "b", "c"),
		err: &services.OrderPersistError{
			Scope:   models.ScopeLessons,
			ScopeID: testModuleID,
			Err:     &services.StorageError{Op: "update order positions", Err: errors.New("deadlock")},
		},
	}
	h := NewAdminOrderHandler(svc, testLogger)

	w := serve(h, http.MethodPost, "/admin/order/lessons/reorder", `{"scopeId":"7f1c0c8e-8a43-4a4c-9a55-0e4f3f7a2b10","fromIndex":0,"toIndex":2}`)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp orderErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "a", resp.Result.Items[0].ID)
	assert.Empty(t, resp.Result.Changed)
}

func TestAdminOrderHandler_RepairAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := NewAdminOrderHandler(&mockOrderingService{repaired: 4}, testLogger)

		w := serve(h, http.MethodPost, "/admin/order/repair", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"repaired":4}`, w.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		h := NewAdminOrderHandler(&mockOrderingService{err: errors.New("db down")}, testLogger)

		w := serve(h, http.MethodPost, "/admin/order/repair", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
