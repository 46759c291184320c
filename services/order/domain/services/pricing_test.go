package services

import (
	"errors"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghuser/bizservices/services/order/domain"
	"github.com/ghuser/bizservices/services/order/domain/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestApplyTotals_SumsItemTotals(t *testing.T) {
	o := &models.Order{
		TotalAmount: dec("999.00"),
		Items: []models.OrderItem{
			{Quantity: 2, UnitPrice: dec("10.00")},
			{Quantity: 1, UnitPrice: dec("5.00")},
		},
	}

	if err := ApplyTotals(o); err != nil {
		t.Fatal(err)
	}

	if !o.TotalAmount.Equal(dec("25.00")) {
		t.Fatalf("expected total 25.00, got %s", o.TotalAmount)
	}
	if !o.Items[0].TotalPrice.Equal(dec("20.00")) || !o.Items[1].TotalPrice.Equal(dec("5.00")) {
		t.Fatalf("unexpected item totals %s, %s", o.Items[0].TotalPrice, o.Items[1].TotalPrice)
	}
}

func TestApplyTotals_RecomputesCallerItemTotals(t *testing.T) {
	o := &models.Order{Items: []models.OrderItem{{Quantity: 3, UnitPrice: dec("1.10"), TotalPrice: dec("100")}}}

	if err := ApplyTotals(o); err != nil {
		t.Fatal(err)
	}

	if !o.Items[0].TotalPrice.Equal(dec("3.30")) {
		t.Fatalf("expected 3.30, got %s", o.Items[0].TotalPrice)
	}
	if !o.TotalAmount.Equal(dec("3.30")) {
		t.Fatalf("expected order total 3.30, got %s", o.TotalAmount)
	}
}

func TestApplyTotals_NoItemsKeepsCallerTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
	}{
		{"nil items", nil},
		{"empty items", []models.OrderItem{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &models.Order{TotalAmount: dec("42.50"), Items: tt.items}
			if err := ApplyTotals(o); err != nil {
				t.Fatal(err)
			}
			if !o.TotalAmount.Equal(dec("42.50")) {
				t.Fatalf("expected caller total 42.50, got %s", o.TotalAmount)
			}
		})
	}
}

func TestApplyTotals_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
	}{
		{"line total", []models.OrderItem{{Quantity: 2147483647, UnitPrice: dec("99999999.99")}}},
		{"order total", []models.OrderItem{
			{Quantity: 1, UnitPrice: dec("60000000.00")},
			{Quantity: 1, UnitPrice: dec("40000000.00")},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &models.Order{TotalAmount: dec("1.00"), Items: tt.items}
			err := ApplyTotals(o)
			if !errors.Is(err, domain.ErrAmountOutOfRange) {
				t.Fatalf("expected ErrAmountOutOfRange, got %v", err)
			}
			if !o.TotalAmount.Equal(dec("1.00")) {
				t.Fatalf("total changed to %s on failure", o.TotalAmount)
			}
		})
	}

	o := &models.Order{Items: []models.OrderItem{{Quantity: 1, UnitPrice: dec("99999999.99")}}}
	if err := ApplyTotals(o); err != nil {
		t.Fatalf("largest storable total rejected: %v", err)
	}
}

func TestNewOrderNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[A-Z0-9]{8}$`)
	seen := make(map[string]bool)
	for range 100 {
		n := NewOrderNumber()
		if !pattern.MatchString(n) {
			t.Fatalf("order number %q does not match %s", n, pattern)
		}
		seen[n] = true
	}
	if len(seen) < 99 {
		t.Fatalf("expected generated numbers to be effectively unique, got %d distinct of 100", len(seen))
	}
}
