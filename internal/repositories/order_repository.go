package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/courseos/backend/internal/models"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new repository persisting sibling order positions
func NewOrderRepository(db *sql.DB) *orderRepository {
	return &orderRepository{
		db: db,
	}
}

// orderUpdateQuery returns the update statement for a scope and whether it is guarded by a scope ID
func orderUpdateQuery(scope models.ScopeType) (string, bool, error) {
	switch scope {
	case models.ScopeModules:
		return `UPDATE modules SET order_position = ? WHERE id = ?`, false, nil
	case models.ScopeLessons:
		return `UPDATE lessons SET order_position = ? WHERE id = ? AND module_id = ?`, true, nil
	case models.ScopeResources:
		return `UPDATE resources SET order_position = ? WHERE id = ? AND lesson_id = ?`, true, nil
	}
	return "", false, fmt.Errorf("unknown scope %q", scope)
}

// UpdateOrderPositions writes the given order positions inside one transaction.
// Every item must belong to the scope; otherwise nothing is committed.
func (r *orderRepository) UpdateOrderPositions(ctx context.Context, scope models.ScopeType, scopeID string, items []models.OrderUpdate) error {
	if len(items) == 0 {
		return nil
	}

	query, scoped, err := orderUpdateQuery(scope)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare order update: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		args := []any{item.OrderPosition, item.ID}
		if scoped {
			args = append(args, scopeID)
		}

		result, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			return fmt.Errorf("failed to update order position of %s: %w", item.ID, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("%s item %s %w", scope, item.ID, ErrNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order update: %w", err)
	}

	return nil
}
