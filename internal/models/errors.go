package models

import "errors"

// ErrNotFound is wrapped by every storage error caused by a missing entity
var ErrNotFound = errors.New("not found")
