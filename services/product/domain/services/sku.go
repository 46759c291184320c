// Package services holds stateless domain services for the product bounded context.
package services

import (
	"strings"

	"github.com/google/uuid"
)

// SKUPrefix starts every generated SKU.
const SKUPrefix = "SKU-"

// NewSKU returns "SKU-" followed by eight upper-case hex characters from a
// random UUID. The store's unique constraint rejects the rare collision.
func NewSKU() string {
	return SKUPrefix + strings.ToUpper(uuid.NewString()[:8])
}
