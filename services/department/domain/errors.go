package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the department domain. Use errors.Is() to check these.
var (
	// ErrDepartmentNotFound indicates the requested department does not exist.
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrDepartmentAlreadyExists indicates a department with the same name or code already exists.
	ErrDepartmentAlreadyExists = errors.New("department already exists")
)

// NotFoundBy wraps ErrDepartmentNotFound with the lookup that failed.
func NotFoundBy(field string, value any) error {
	return fmt.Errorf("%w with %s %v", ErrDepartmentNotFound, field, value)
}

// AlreadyExistsBy wraps ErrDepartmentAlreadyExists with the colliding field and value.
func AlreadyExistsBy(field string, value any) error {
	return fmt.Errorf("%w with %s %v", ErrDepartmentAlreadyExists, field, value)
}
