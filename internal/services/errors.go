package services

import (
	"errors"
	"fmt"

	"github.com/courseos/backend/internal/models"
)

var (
	// ErrOrderPersistFailure is matched by every OrderPersistError
	ErrOrderPersistFailure = errors.New("failed to persist order")
	// ErrInvalidScope is returned for an unknown ordering scope
	ErrInvalidScope = errors.New("invalid ordering scope")
	// ErrScopeIDRequired is returned when a lesson or resource scope has no parent ID
	ErrScopeIDRequired = errors.New("scope id is required")
)

// StorageError wraps any failure of the storage collaborator
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// OrderPersistError is returned when a computed order could not be saved.
// The accompanying result carries the last committed order.
type OrderPersistError struct {
	Scope   models.ScopeType
	ScopeID string
	Err     error
}

func (e *OrderPersistError) Error() string {
	if e.ScopeID == "" {
		return fmt.Sprintf("failed to persist %s order: %v", e.Scope, e.Err)
	}
	return fmt.Sprintf("failed to persist %s order of %s: %v", e.Scope, e.ScopeID, e.Err)
}

func (e *OrderPersistError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrOrderPersistFailure) hold for every OrderPersistError
func (e *OrderPersistError) Is(target error) bool {
	return target == ErrOrderPersistFailure
}

// storageError wraps "err" as a StorageError unless it is nil
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
