package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrProductNotFound.Error() != "product not found" {
		t.Fatalf("unexpected message: %q", ErrProductNotFound.Error())
	}
	if ErrProductAlreadyExists.Error() != "product already exists" {
		t.Fatalf("unexpected message: %q", ErrProductAlreadyExists.Error())
	}
}

func TestNotFoundBy(t *testing.T) {
	err := NotFoundBy("id", int64(7))
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatal("errors.Is must match ErrProductNotFound")
	}
	if err.Error() != "product not found with id 7" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestAlreadyExistsBy_WrappedIdentity(t *testing.T) {
	err := fmt.Errorf("create product: %w", AlreadyExistsBy("sku", "SKU-1A2B3C4D"))
	if !errors.Is(err, ErrProductAlreadyExists) {
		t.Fatal("errors.Is must match wrapped ErrProductAlreadyExists")
	}
	if errors.Is(err, ErrProductNotFound) {
		t.Fatal("AlreadyExistsBy must not match ErrProductNotFound")
	}
}
