package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrEmptyOrderName = errors.New("order name is empty")
	ErrInvalidCatalog = errors.New("invalid catalog")
)
