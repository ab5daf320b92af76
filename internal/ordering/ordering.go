// Package ordering keeps sibling items in a contiguous 1..N order under moves
package ordering

import (
	"errors"
	"fmt"

	"github.com/courseos/backend/internal/models"
)

var (
	// ErrOutOfRange is returned when a move index is outside the sibling list
	ErrOutOfRange = errors.New("index out of range")
	// ErrNotPermutation is returned when a requested order is not a permutation of the siblings
	ErrNotPermutation = errors.New("order is not a permutation of the siblings")
)

// Orderable is an item that lives in a sibling scope and carries an order position
type Orderable[T any] interface {
	// ItemID returns the stable identifier of the item
	ItemID() string
	// Position returns the current order position
	Position() int
	// WithPosition returns a copy of the item with the given order position
	WithPosition(p int) T
}

// Reorder removes the item at "from" and reinserts it at "to", then renumbers every item to index+1.
//
// "items" must be sorted by order position. The input slice is never modified.
// An empty list yields an empty list and a single-element list is always a no-op, whatever the indices.
// For longer lists, indices outside [0, len(items)) return ErrOutOfRange.
func Reorder[T Orderable[T]](items []T, from, to int) ([]T, error) {
	if len(items) <= 1 {
		return Renumber(items), nil
	}
	if err := checkIndex(len(items), from); err != nil {
		return nil, err
	}
	if err := checkIndex(len(items), to); err != nil {
		return nil, err
	}

	moved := make([]T, 0, len(items))
	moved = append(moved, items[:from]...)
	moved = append(moved, items[from+1:]...)
	moved = append(moved[:to], append([]T{items[from]}, moved[to:]...)...)

	return Renumber(moved), nil
}

// MoveUp moves the item at "index" one step towards the start; no-op for the first item.
// Like Reorder, an empty or single-item list accepts any index.
func MoveUp[T Orderable[T]](items []T, index int) ([]T, error) {
	if len(items) <= 1 {
		return Renumber(items), nil
	}
	if err := checkIndex(len(items), index); err != nil {
		return nil, err
	}
	if index == 0 {
		return Renumber(items), nil
	}
	return Reorder(items, index, index-1)
}

// MoveDown moves the item at "index" one step towards the end; no-op for the last item
func MoveDown[T Orderable[T]](items []T, index int) ([]T, error) {
	if len(items) <= 1 {
		return Renumber(items), nil
	}
	if err := checkIndex(len(items), index); err != nil {
		return nil, err
	}
	if index == len(items)-1 {
		return Renumber(items), nil
	}
	return Reorder(items, index, index+1)
}

// SetOrder arranges the items in the order given by "orderedIDs" and renumbers them.
// "orderedIDs" must contain every sibling ID exactly once.
func SetOrder[T Orderable[T]](items []T, orderedIDs []string) ([]T, error) {
	if len(orderedIDs) != len(items) {
		return nil, fmt.Errorf("%w: got %d ids for %d items", ErrNotPermutation, len(orderedIDs), len(items))
	}

	byID := make(map[string]T, len(items))
	for _, item := range items {
		byID[item.ItemID()] = item
	}

	arranged := make([]T, 0, len(items))
	for _, id := range orderedIDs {
		item, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown or repeated id %q", ErrNotPermutation, id)
		}
		delete(byID, id)
		arranged = append(arranged, item)
	}

	return Renumber(arranged), nil
}

// Renumber returns a copy of the items with order positions reassigned to index+1
func Renumber[T Orderable[T]](items []T) []T {
	renumbered := make([]T, len(items))
	for i, item := range items {
		renumbered[i] = item.WithPosition(i + 1)
	}
	return renumbered
}

// ChangedItems returns the items of "after" whose position differs from the same item in "before".
// Items missing from "before" are always reported.
func ChangedItems[T Orderable[T]](before, after []T) []models.OrderUpdate {
	committed := make(map[string]int, len(before))
	for _, item := range before {
		committed[item.ItemID()] = item.Position()
	}

	changed := make([]models.OrderUpdate, 0)
	for _, item := range after {
		pos, ok := committed[item.ItemID()]
		if ok && pos == item.Position() {
			continue
		}
		changed = append(changed, models.OrderUpdate{ID: item.ItemID(), OrderPosition: item.Position()})
	}
	return changed
}

// IsContiguous reports whether the positions of the sorted items are exactly 1..N
func IsContiguous[T Orderable[T]](items []T) bool {
	for i, item := range items {
		if item.Position() != i+1 {
			return false
		}
	}
	return true
}

func checkIndex(n, index int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("%w: index %d, list length %d", ErrOutOfRange, index, n)
	}
	return nil
}
