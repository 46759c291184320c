package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrEmployeeNotFound.Error() != "employee not found" {
		t.Fatalf("unexpected message: %q", ErrEmployeeNotFound.Error())
	}
	if ErrEmployeeAlreadyExists.Error() != "employee already exists" {
		t.Fatalf("unexpected message: %q", ErrEmployeeAlreadyExists.Error())
	}
}

func TestNotFoundBy(t *testing.T) {
	err := NotFoundBy("id", int64(7))
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatal("errors.Is must match ErrEmployeeNotFound")
	}
	if err.Error() != "employee not found with id 7" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestAlreadyExistsBy_WrappedIdentity(t *testing.T) {
	err := fmt.Errorf("create employee: %w", AlreadyExistsBy("email", "ada@example.com"))
	if !errors.Is(err, ErrEmployeeAlreadyExists) {
		t.Fatal("errors.Is must match wrapped ErrEmployeeAlreadyExists")
	}
	if errors.Is(err, ErrEmployeeNotFound) {
		t.Fatal("AlreadyExistsBy must not match ErrEmployeeNotFound")
	}
}
