package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the product domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductAlreadyExists indicates a product with the same SKU already exists.
	ErrProductAlreadyExists = errors.New("product already exists")
)

// NotFoundBy wraps ErrProductNotFound with the lookup that failed.
func NotFoundBy(field string, value any) error {
	return fmt.Errorf("%w with %s %v", ErrProductNotFound, field, value)
}

// AlreadyExistsBy wraps ErrProductAlreadyExists with the colliding field and value.
func AlreadyExistsBy(field string, value any) error {
	return fmt.Errorf("%w with %s %v", ErrProductAlreadyExists, field, value)
}
