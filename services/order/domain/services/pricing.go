// Package services holds stateless domain services for the order bounded
// context. They operate purely on domain types.
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizservices/services/order/domain"
	"github.com/ghuser/bizservices/services/order/domain/models"
)

// OrderNumberPrefix starts every generated order number.
const OrderNumberPrefix = "ORD-"

// amountLimit is the exclusive upper bound of a NUMERIC(10,2) amount.
var amountLimit = decimal.New(1, 8)

// PriceItems sets each item's TotalPrice to Quantity × UnitPrice.
func PriceItems(items []models.OrderItem) {
	for i := range items {
		items[i].TotalPrice = items[i].UnitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
	}
}

// ApplyTotals prices o's items and, when o has at least one item, replaces
// TotalAmount with their sum. An order without items keeps the caller's total.
// A line or order total that cannot be stored returns ErrAmountOutOfRange.
func ApplyTotals(o *models.Order) error {
	if len(o.Items) == 0 {
		return nil
	}
	PriceItems(o.Items)
	total := decimal.Zero
	for i, it := range o.Items {
		if it.TotalPrice.Abs().GreaterThanOrEqual(amountLimit) {
			return fmt.Errorf("%w: item %d total %s", domain.ErrAmountOutOfRange, i, it.TotalPrice)
		}
		total = total.Add(it.TotalPrice)
	}
	if total.Abs().GreaterThanOrEqual(amountLimit) {
		return fmt.Errorf("%w: order total %s", domain.ErrAmountOutOfRange, total)
	}
	o.TotalAmount = total
	return nil
}

// NewOrderNumber returns "ORD-" followed by eight upper-case hex characters
// taken from a random UUID. Collisions are not checked here; the store's
// unique constraint rejects them.
func NewOrderNumber() string {
	return OrderNumberPrefix + strings.ToUpper(uuid.NewString()[:8])
}
