package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the employee domain. Use errors.Is() to check these.
var (
	// ErrEmployeeNotFound indicates the requested employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmployeeAlreadyExists indicates an employee with the same email already exists.
	ErrEmployeeAlreadyExists = errors.New("employee already exists")
)

// NotFoundBy wraps ErrEmployeeNotFound with the lookup that failed.
func NotFoundBy(field string, value any) error {
	return fmt.Errorf("%w with %s %v", ErrEmployeeNotFound, field, value)
}

// AlreadyExistsBy wraps ErrEmployeeAlreadyExists with the colliding field and value.
func AlreadyExistsBy(field string, value any) error {
	return fmt.Errorf("%w with %s %v", ErrEmployeeAlreadyExists, field, value)
}
