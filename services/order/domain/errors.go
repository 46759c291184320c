package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderAlreadyExists indicates an order with the same order number already exists.
	ErrOrderAlreadyExists = errors.New("order already exists")

	// ErrInvalidOrderStatus indicates a status outside PENDING, CONFIRMED, SHIPPED, DELIVERED, CANCELLED.
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrAmountOutOfRange indicates a computed line or order total that does not fit NUMERIC(10,2).
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// NotFoundBy wraps ErrOrderNotFound with the lookup that failed.
func NotFoundBy(field string, value any) error {
	return fmt.Errorf("%w with %s %v", ErrOrderNotFound, field, value)
}

// AlreadyExistsBy wraps ErrOrderAlreadyExists with the colliding field and value.
func AlreadyExistsBy(field string, value any) error {
	return fmt.Errorf("%w with %s %v", ErrOrderAlreadyExists, field, value)
}
