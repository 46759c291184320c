package models

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	orderdomain "github.com/ghuser/bizservices/services/order/domain"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    OrderStatus
		wantErr bool
	}{
		{"PENDING", StatusPending, false},
		{" DELIVERED ", StatusDelivered, false},
		{"shipped", "", true},
		{"Delivered", "", true},
		{"CANCELLED", StatusCancelled, false},
		{"SHIPPING", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOrderStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, orderdomain.ErrInvalidOrderStatus) {
					t.Fatalf("ParseOrderStatus(%q) error = %v, want ErrInvalidOrderStatus", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseOrderStatus(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestStatistics_Set(t *testing.T) {
	var s Statistics
	for i, st := range Statuses {
		s.Set(st, int64(i+1))
	}
	if s.PendingOrders != 1 || s.ConfirmedOrders != 2 || s.ShippedOrders != 3 || s.DeliveredOrders != 4 || s.CancelledOrders != 5 {
		t.Fatalf("unexpected statistics %+v", s)
	}
}

func TestNewItems_CopiesInputWithoutPricing(t *testing.T) {
	items := NewItems([]OrderItemInput{{ProductID: 9, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")}})
	if len(items) != 1 || items[0].ProductID != 9 || items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", items)
	}
	if !items[0].TotalPrice.IsZero() {
		t.Fatalf("expected TotalPrice to be left unset, got %s", items[0].TotalPrice)
	}
}

func TestNewOrder_Defaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	o := NewOrder(OrderInput{CustomerName: "Ada", TotalAmount: decimal.RequireFromString("10")}, "ORD-00000001", now)

	if o.Status != StatusPending {
		t.Fatalf("expected PENDING, got %s", o.Status)
	}
	if o.Items == nil || len(o.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %#v", o.Items)
	}
	if o.OrderNumber != "ORD-00000001" || !o.CreatedAt.Equal(now) || !o.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected order %+v", o)
	}
}

func TestReplace_KeepsUnsuppliedFields(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	shipped := StatusShipped
	o := NewOrder(OrderInput{
		Status: &shipped,
		Items:  []OrderItemInput{{ProductID: 1, Quantity: 1}},
	}, "ORD-00000001", created)

	later := created.Add(time.Hour)
	if o.Replace(OrderInput{CustomerName: "Grace"}, later) {
		t.Fatal("nil items must not count as replaced")
	}
	if o.OrderNumber != "ORD-00000001" || o.Status != StatusShipped || len(o.Items) != 1 {
		t.Fatalf("unsupplied fields changed: %+v", o)
	}
	if o.CustomerName != "Grace" || !o.UpdatedAt.Equal(later) || !o.CreatedAt.Equal(created) {
		t.Fatalf("unexpected order %+v", o)
	}

	if !o.Replace(OrderInput{OrderNumber: "ORD-00000002", Items: []OrderItemInput{}}, later) {
		t.Fatal("empty non-nil items replace the stored items")
	}
	if o.OrderNumber != "ORD-00000002" || len(o.Items) != 0 {
		t.Fatalf("unexpected order %+v", o)
	}
}
