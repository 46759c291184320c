package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the aggregate for this bounded context. It owns its Items; they
// are written and deleted together with the order.
type Order struct {
	ID              int64
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	ShippingAddress *string
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is one line of an Order. TotalPrice is derived from Quantity and UnitPrice.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName *string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// OrderInput carries the caller-controlled fields of an Order.
//
// An empty OrderNumber, a nil Status and a nil Items slice mean "not
// supplied"; the service decides what that implies for create and update.
// A non-nil empty Items slice clears the order's items.
type OrderInput struct {
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	TotalAmount     decimal.Decimal
	Status          *OrderStatus
	ShippingAddress *string
	Items           []OrderItemInput
}

// OrderItemInput carries the caller-controlled fields of an OrderItem.
type OrderItemInput struct {
	ProductID   int64
	ProductName *string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Statistics counts orders overall and per status. The counts are taken by
// independent queries and may be mutually inconsistent under concurrent writes.
type Statistics struct {
	TotalOrders     int64
	PendingOrders   int64
	ConfirmedOrders int64
	ShippedOrders   int64
	DeliveredOrders int64
	CancelledOrders int64
}

// NewItems builds unsaved OrderItems from in. TotalPrice is left for pricing.
func NewItems(in []OrderItemInput) []OrderItem {
	items := make([]OrderItem, len(in))
	for i, it := range in {
		items[i] = OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return items
}

// Set stores n as the count for st.
func (s *Statistics) Set(st OrderStatus, n int64) {
	switch st {
	case StatusPending:
		s.PendingOrders = n
	case StatusConfirmed:
		s.ConfirmedOrders = n
	case StatusShipped:
		s.ShippedOrders = n
	case StatusDelivered:
		s.DeliveredOrders = n
	case StatusCancelled:
		s.CancelledOrders = n
	}
}

// NewOrder builds an unsaved Order numbered orderNumber. A nil in.Status
// means PENDING. Both timestamps are set to now.
func NewOrder(in OrderInput, orderNumber string, now time.Time) *Order {
	o := &Order{
		OrderNumber: orderNumber,
		Status:      StatusPending,
		Items:       NewItems(in.Items),
		CreatedAt:   now,
	}
	o.replaceFields(in, now)
	return o
}

// Replace overwrites o with in. An empty OrderNumber, a nil Status and nil
// Items keep the stored values. It reports whether the items were replaced.
func (o *Order) Replace(in OrderInput, now time.Time) (itemsReplaced bool) {
	if in.OrderNumber != "" {
		o.OrderNumber = in.OrderNumber
	}
	if in.Items != nil {
		o.Items = NewItems(in.Items)
		itemsReplaced = true
	}
	o.replaceFields(in, now)
	return itemsReplaced
}

func (o *Order) replaceFields(in OrderInput, now time.Time) {
	o.CustomerName = in.CustomerName
	o.CustomerEmail = in.CustomerEmail
	o.TotalAmount = in.TotalAmount
	o.ShippingAddress = in.ShippingAddress
	if in.Status != nil {
		o.Status = *in.Status
	}
	o.UpdatedAt = now
}
