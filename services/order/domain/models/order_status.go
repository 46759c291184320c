package models

import (
	"fmt"
	"strings"

	orderdomain "github.com/ghuser/bizservices/services/order/domain"
)

// OrderStatus is the lifecycle state of an order. The set is closed.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Statuses lists every OrderStatus in lifecycle order.
var Statuses = []OrderStatus{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled}

// ParseOrderStatus returns the OrderStatus named exactly by s. Names are
// upper-case, as in request bodies; anything else wraps ErrInvalidOrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(strings.TrimSpace(s))
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", orderdomain.ErrInvalidOrderStatus, s)
	}
	return st, nil
}

// Valid reports whether st is one of Statuses.
func (st OrderStatus) Valid() bool {
	switch st {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (st OrderStatus) String() string {
	return string(st)
}
