package postgrest

import (
	"context"
	"fmt"

	"github.com/courseos/backend/internal/models"
)

type orderItem struct {
	ID            string `json:"id"`
	OrderPosition int    `json:"order_position"`
}

type orderRequest struct {
	Scope   string      `json:"p_scope"`
	ScopeID *string     `json:"p_scope_id"`
	Items   []orderItem `json:"p_items"`
}

// UpdateOrderPositions writes the given order positions through the update_order_positions function.
//
// The database function updates every item in one transaction. When an item is outside the scope
// it raises P0002, nothing is committed and the returned error wraps models.ErrNotFound.
// A successful response means every position was committed.
func (c *Client) UpdateOrderPositions(ctx context.Context, scope models.ScopeType, scopeID string, items []models.OrderUpdate) error {
	if len(items) == 0 {
		return nil
	}
	if !scope.Valid() {
		return fmt.Errorf("unknown scope %q", scope)
	}

	req := orderRequest{
		Scope: string(scope),
		Items: make([]orderItem, 0, len(items)),
	}
	if scope != models.ScopeModules {
		req.ScopeID = &scopeID
	}
	for _, item := range items {
		req.Items = append(req.Items, orderItem{ID: item.ID, OrderPosition: item.OrderPosition})
	}

	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetError(&apiErr).
		Post(orderRPC)
	if err != nil {
		return fmt.Errorf("failed to update order positions: %w", err)
	}
	if resp.IsError() {
		// P0002 is raised by the function when an item is outside the scope
		if apiErr.Code == "P0002" {
			return fmt.Errorf("%s order update: %s: %w", scope, apiErr.Message, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update order positions: %w", responseError(orderRPC, resp.StatusCode(), apiErr))
	}
	return nil
}
