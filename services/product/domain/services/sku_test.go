package services

import (
	"regexp"
	"testing"
)

var skuPattern = regexp.MustCompile(`^SKU-[A-Z0-9]{8}$`)

func TestNewSKU(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		sku := NewSKU()
		if !skuPattern.MatchString(sku) {
			t.Fatalf("%q does not match %s", sku, skuPattern)
		}
		seen[sku] = true
	}
	if len(seen) < 2 {
		t.Fatal("expected generated SKUs to vary")
	}
}
