package models

// ScopeType identifies a sibling scope whose items share one contiguous order
type ScopeType string

const (
	// ScopeModules is the catalog-wide module scope, it has no scope ID
	ScopeModules ScopeType = "modules"
	// ScopeLessons is the lessons of one module, the scope ID is the module ID
	ScopeLessons ScopeType = "lessons"
	// ScopeResources is the resources of one lesson, the scope ID is the lesson ID
	ScopeResources ScopeType = "resources"
)

// Valid reports whether the scope type is known
func (s ScopeType) Valid() bool {
	switch s {
	case ScopeModules, ScopeLessons, ScopeResources:
		return true
	}
	return false
}

// OrderUpdate is a single changed order position to persist
type OrderUpdate struct {
	ID            string `json:"id"`
	OrderPosition int    `json:"orderPosition"`
}

// ReorderRequest represents a request to move one item inside a scope
type ReorderRequest struct {
	ScopeID   string `json:"scopeId" example:"7f1c0c8e-8a43-4a4c-9a55-0e4f3f7a2b10"`
	FromIndex int    `json:"fromIndex" example:"0"`
	ToIndex   int    `json:"toIndex" example:"2"`
}

// MoveRequest represents a request to move one item a single step up or down
type MoveRequest struct {
	ScopeID string `json:"scopeId"`
	Index   int    `json:"index" example:"1"`
}

// SetOrderRequest represents a request to replace the whole order of a scope
type SetOrderRequest struct {
	ScopeID    string   `json:"scopeId"`
	OrderedIDs []string `json:"orderedIds"`
}

// OrderedItem is the scope-agnostic view of a sibling returned to admin clients
type OrderedItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	OrderPosition int    `json:"orderPosition"`
}

// ItemID returns the item identifier
func (i OrderedItem) ItemID() string { return i.ID }

// Position returns the item order position
func (i OrderedItem) Position() int { return i.OrderPosition }

// WithPosition returns a copy of the item with the given order position
func (i OrderedItem) WithPosition(p int) OrderedItem {
	i.OrderPosition = p
	return i
}

// ReorderResult holds the order to display after a reorder and the subset that was persisted
type ReorderResult struct {
	Scope   ScopeType     `json:"scope"`
	ScopeID string        `json:"scopeId,omitempty"`
	Items   []OrderedItem `json:"items"`
	Changed []OrderUpdate `json:"changed"`
}
