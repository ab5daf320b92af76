package services

import (
	"context"
	"fmt"

	"github.com/courseos/backend/internal/models"
	"github.com/courseos/backend/internal/ordering"
	"go.uber.org/zap"
)

// OrderCatalog is the interface that wraps the catalog reads and writes an ordering change needs
type OrderCatalog interface {
	// Method GetModuleSiblings retrieve every module sorted by order position.
	GetModuleSiblings(ctx context.Context) ([]models.Module, error)
	// Method GetAllLessonSiblings retrieve every lesson of the module "moduleID", active or not, sorted by order position.
	GetAllLessonSiblings(ctx context.Context, moduleID string) ([]models.Lesson, error)
	// Method GetResourceSiblings retrieve every resource of the lesson "lessonID" sorted by order position.
	GetResourceSiblings(ctx context.Context, lessonID string) ([]models.Resource, error)
	// Method PersistOrder atomically writes the changed order positions of a scope.
	//
	// If the write fails, nothing is committed and a *StorageError is returned.
	PersistOrder(ctx context.Context, scope models.ScopeType, scopeID string, changed []models.OrderUpdate) error
}

type orderingService struct {
	catalog OrderCatalog
	logger  *zap.Logger
}

// NewOrderingService creates a new ordering service
func NewOrderingService(catalog OrderCatalog, logger *zap.Logger) *orderingService {
	return &orderingService{
		catalog: catalog,
		logger:  logger,
	}
}

type orderFunc func(items []models.OrderedItem) ([]models.OrderedItem, error)

// Reorder moves the item at "from" to "to" inside the scope and persists the changed positions.
//
// Please reference apply method for more information about the returned values.
func (s *orderingService) Reorder(ctx context.Context, scope models.ScopeType, scopeID string, from, to int) (*models.ReorderResult, error) {
	return s.apply(ctx, scope, scopeID, func(items []models.OrderedItem) ([]models.OrderedItem, error) {
		return ordering.Reorder(items, from, to)
	})
}

// MoveUp moves the item at "index" one step up inside the scope
func (s *orderingService) MoveUp(ctx context.Context, scope models.ScopeType, scopeID string, index int) (*models.ReorderResult, error) {
	return s.apply(ctx, scope, scopeID, func(items []models.OrderedItem) ([]models.OrderedItem, error) {
		return ordering.MoveUp(items, index)
	})
}

// MoveDown moves the item at "index" one step down inside the scope
func (s *orderingService) MoveDown(ctx context.Context, scope models.ScopeType, scopeID string, index int) (*models.ReorderResult, error) {
	return s.apply(ctx, scope, scopeID, func(items []models.OrderedItem) ([]models.OrderedItem, error) {
		return ordering.MoveDown(items, index)
	})
}

// SetOrder replaces the whole order of the scope with "orderedIDs"
func (s *orderingService) SetOrder(ctx context.Context, scope models.ScopeType, scopeID string, orderedIDs []string) (*models.ReorderResult, error) {
	return s.apply(ctx, scope, scopeID, func(items []models.OrderedItem) ([]models.OrderedItem, error) {
		return ordering.SetOrder(items, orderedIDs)
	})
}

// Renumber rewrites the positions of the scope to 1..N keeping the current order
func (s *orderingService) Renumber(ctx context.Context, scope models.ScopeType, scopeID string) (*models.ReorderResult, error) {
	return s.apply(ctx, scope, scopeID, func(items []models.OrderedItem) ([]models.OrderedItem, error) {
		if ordering.IsContiguous(items) {
			return items, nil
		}
		return ordering.Renumber(items), nil
	})
}

// RepairAll renumbers every sibling scope whose positions are not contiguous.
//
// It walks the modules, the lessons of every module and the resources of every lesson.
// A scope that fails to load or persist is logged and skipped. The number of rewritten items is returned.
func (s *orderingService) RepairAll(ctx context.Context) (int, error) {
	modules, err := s.catalog.GetModuleSiblings(ctx)
	if err != nil {
		return 0, err
	}

	repaired := s.repairScope(ctx, models.ScopeModules, "")

	for _, module := range modules {
		if err := ctx.Err(); err != nil {
			return repaired, err
		}
		repaired += s.repairScope(ctx, models.ScopeLessons, module.ID)

		lessons, err := s.catalog.GetAllLessonSiblings(ctx, module.ID)
		if err != nil {
			s.logger.Error("failed to load lessons for repair", zap.String("module_id", module.ID), zap.Error(err))
			continue
		}
		for _, lesson := range lessons {
			repaired += s.repairScope(ctx, models.ScopeResources, lesson.ID)
		}
	}

	return repaired, nil
}

func (s *orderingService) repairScope(ctx context.Context, scope models.ScopeType, scopeID string) int {
	result, err := s.Renumber(ctx, scope, scopeID)
	if err != nil {
		s.logger.Error("failed to repair order",
			zap.String("scope", string(scope)),
			zap.String("scope_id", scopeID),
			zap.Error(err),
		)
		return 0
	}
	if len(result.Changed) > 0 {
		s.logger.Info("repaired order",
			zap.String("scope", string(scope)),
			zap.String("scope_id", scopeID),
			zap.Int("changed", len(result.Changed)),
		)
	}
	return len(result.Changed)
}

// apply loads the committed siblings of the scope, computes the new order with "op" and persists the diff.
//
// Only items whose position changed are written; nothing is written when the order is unchanged.
// If "op" rejects its arguments, its error (ordering.ErrOutOfRange or ordering.ErrNotPermutation) is returned
// together with "nil" value.
// If the write fails, the result holds the last committed order and the error is an *OrderPersistError.
func (s *orderingService) apply(ctx context.Context, scope models.ScopeType, scopeID string, op orderFunc) (*models.ReorderResult, error) {
	scopeID, err := normalizeScope(scope, scopeID)
	if err != nil {
		return nil, err
	}

	committed, err := s.loadScope(ctx, scope, scopeID)
	if err != nil {
		return nil, err
	}

	next, err := op(committed)
	if err != nil {
		return nil, err
	}

	changed := ordering.ChangedItems(committed, next)
	if err := s.catalog.PersistOrder(ctx, scope, scopeID, changed); err != nil {
		s.logger.Error("failed to persist order, keeping committed order",
			zap.String("scope", string(scope)),
			zap.String("scope_id", scopeID),
			zap.Int("changed", len(changed)),
			zap.Error(err),
		)
		return &models.ReorderResult{
			Scope:   scope,
			ScopeID: scopeID,
			Items:   committed,
			Changed: []models.OrderUpdate{},
		}, &OrderPersistError{Scope: scope, ScopeID: scopeID, Err: err}
	}

	return &models.ReorderResult{
		Scope:   scope,
		ScopeID: scopeID,
		Items:   next,
		Changed: changed,
	}, nil
}

// loadScope retrieves the committed siblings of a scope as ordered items
func (s *orderingService) loadScope(ctx context.Context, scope models.ScopeType, scopeID string) ([]models.OrderedItem, error) {
	switch scope {
	case models.ScopeModules:
		modules, err := s.catalog.GetModuleSiblings(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]models.OrderedItem, len(modules))
		for i, m := range modules {
			items[i] = models.OrderedItem{ID: m.ID, Title: m.Title, OrderPosition: m.OrderPosition}
		}
		return items, nil
	case models.ScopeLessons:
		lessons, err := s.catalog.GetAllLessonSiblings(ctx, scopeID)
		if err != nil {
			return nil, err
		}
		items := make([]models.OrderedItem, len(lessons))
		for i, l := range lessons {
			items[i] = models.OrderedItem{ID: l.ID, Title: l.Title, OrderPosition: l.OrderPosition}
		}
		return items, nil
	case models.ScopeResources:
		resources, err := s.catalog.GetResourceSiblings(ctx, scopeID)
		if err != nil {
			return nil, err
		}
		items := make([]models.OrderedItem, len(resources))
		for i, r := range resources {
			items[i] = models.OrderedItem{ID: r.ID, Title: r.Title, OrderPosition: r.OrderPosition}
		}
		return items, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidScope, scope)
}

// normalizeScope validates the scope and returns the scope ID to use for it
func normalizeScope(scope models.ScopeType, scopeID string) (string, error) {
	if !scope.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}
	if scope == models.ScopeModules {
		return "", nil
	}
	if scopeID == "" {
		return "", fmt.Errorf("%w for %s", ErrScopeIDRequired, scope)
	}
	return scopeID, nil
}
