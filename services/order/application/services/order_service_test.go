package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/bizservices/pkg/logger"
	orderdomain "github.com/ghuser/bizservices/services/order/domain"
	"github.com/ghuser/bizservices/services/order/domain/models"
	"github.com/ghuser/bizservices/services/order/infrastructure/persistence/memory"
)

func newTestService() *OrderService {
	return NewOrderService(memory.NewOrderRepository(), nil, logger.Discard())
}

// fixedClock makes svc return t0, t0+1h, t0+2h, ... on successive calls.
func fixedClock(svc *OrderService, t0 time.Time) {
	next := t0
	svc.now = func() time.Time {
		t := next
		next = next.Add(time.Hour)
		return t
	}
}

func order(customer, email string, items ...models.OrderItemInput) models.OrderInput {
	return models.OrderInput{
		CustomerName:  customer,
		CustomerEmail: email,
		TotalAmount:   decimal.RequireFromString("1.00"),
		Items:         items,
	}
}

func item(productID int64, qty int, unit string) models.OrderItemInput {
	return models.OrderItemInput{ProductID: productID, Quantity: qty, UnitPrice: decimal.RequireFromString(unit)}
}

func withStatus(in models.OrderInput, st models.OrderStatus) models.OrderInput {
	in.Status = &st
	return in
}

func TestOrderService_CreateComputesTotals(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	o, err := svc.Create(ctx, order("Ada Lovelace", "ada@example.com", item(1, 2, "10.00"), item(2, 1, "5.00")))
	require.NoError(t, err)
	require.NotZero(t, o.ID)
	assert.Regexp(t, `^ORD-[A-Z0-9]{8}$`, o.OrderNumber)
	assert.Equal(t, models.StatusPending, o.Status)
	assert.True(t, decimal.RequireFromString("25.00").Equal(o.TotalAmount), o.TotalAmount.String())
	require.Len(t, o.Items, 2)
	assert.True(t, decimal.RequireFromString("20.00").Equal(o.Items[0].TotalPrice))

	got, err := svc.GetByOrderNumber(ctx, o.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	assert.Len(t, got.Items, 2)
}

func TestOrderService_CreateWithoutItemsKeepsTotal(t *testing.T) {
	svc := newTestService()
	o, err := svc.Create(context.Background(), order("Ada Lovelace", "ada@example.com"))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.00").Equal(o.TotalAmount))
	assert.Empty(t, o.Items)
}

func TestOrderService_DuplicateOrderNumber(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := order("Ada Lovelace", "ada@example.com")
	in.OrderNumber = "ORD-FIXED001"
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	_, err = svc.Create(ctx, in)
	require.ErrorIs(t, err, orderdomain.ErrOrderAlreadyExists)
	assert.EqualError(t, err, "order already exists with order number ORD-FIXED001")

	_, err = svc.GetByOrderNumber(ctx, "ORD-MISSING0")
	assert.EqualError(t, err, "order not found with order number ORD-MISSING0")
}

func TestOrderService_UpdateStatusAdvancesUpdatedAt(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	t0 := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	fixedClock(svc, t0)

	o, err := svc.Create(ctx, order("Ada Lovelace", "ada@example.com", item(1, 1, "3.00")))
	require.NoError(t, err)

	shipped, err := svc.UpdateStatus(ctx, o.ID, models.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, shipped.Status)
	assert.Equal(t, t0, shipped.CreatedAt)
	assert.True(t, shipped.UpdatedAt.After(shipped.CreatedAt))
	assert.Equal(t, o.OrderNumber, shipped.OrderNumber)
	assert.Len(t, shipped.Items, 1)

	_, err = svc.UpdateStatus(ctx, 999, models.StatusShipped)
	assert.EqualError(t, err, "order not found with id 999")

	_, err = svc.UpdateStatus(ctx, o.ID, models.OrderStatus("LOST"))
	assert.ErrorIs(t, err, orderdomain.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateKeepsOmittedFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, withStatus(order("Ada Lovelace", "ada@example.com", item(1, 2, "10.00")), models.StatusConfirmed))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, order("Ada King", "ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Ada King", updated.CustomerName)
	assert.Equal(t, created.OrderNumber, updated.OrderNumber)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	require.Len(t, updated.Items, 1)
	assert.True(t, decimal.RequireFromString("20.00").Equal(updated.TotalAmount))

	replaced, err := svc.Update(ctx, created.ID, order("Ada King", "ada@example.com", item(3, 3, "1.50")))
	require.NoError(t, err)
	require.Len(t, replaced.Items, 1)
	assert.Equal(t, int64(3), replaced.Items[0].ProductID)
	assert.True(t, decimal.RequireFromString("4.50").Equal(replaced.TotalAmount))

	_, err = svc.Update(ctx, 999, order("Nobody", "nobody@example.com"))
	assert.ErrorIs(t, err, orderdomain.ErrOrderNotFound)
}

func TestOrderService_UpdateOrderNumberCollision(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, order("Ada Lovelace", "ada@example.com"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, order("Grace Hopper", "grace@example.com"))
	require.NoError(t, err)

	in := order("Grace Hopper", "grace@example.com")
	in.OrderNumber = first.OrderNumber
	_, err = svc.Update(ctx, second.ID, in)
	require.ErrorIs(t, err, orderdomain.ErrOrderAlreadyExists)
}

func TestOrderService_Statistics(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for range 3 {
		_, err := svc.Create(ctx, order("Ada Lovelace", "ada@example.com"))
		require.NoError(t, err)
	}
	for range 2 {
		_, err := svc.Create(ctx, withStatus(order("Grace Hopper", "grace@example.com"), models.StatusShipped))
		require.NoError(t, err)
	}

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Statistics{TotalOrders: 5, PendingOrders: 3, ShippedOrders: 2}, *stats)
}

func TestOrderService_Queries(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	fixedClock(svc, t0)

	_, err := svc.Create(ctx, order("Ada Lovelace", "ada@example.com"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, withStatus(order("Ada Lovelace", "ada@example.com"), models.StatusDelivered))
	require.NoError(t, err)
	_, err = svc.Create(ctx, order("Grace Hopper", "grace@example.com"))
	require.NoError(t, err)

	byEmail, err := svc.ListByCustomerEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Len(t, byEmail, 2)

	delivered, err := svc.ListByCustomerEmailAndStatus(ctx, "ada@example.com", models.StatusDelivered)
	require.NoError(t, err)
	assert.Len(t, delivered, 1)

	pending, err := svc.ListByStatus(ctx, models.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	found, err := svc.SearchByCustomerName(ctx, "hopp")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Grace Hopper", found[0].CustomerName)

	inRange, err := svc.ListByDateRange(ctx, t0, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, inRange, 2)

	reversed, err := svc.ListByDateRange(ctx, t0.Add(time.Hour), t0)
	require.NoError(t, err)
	assert.Empty(t, reversed)
}

func TestOrderService_Delete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	o, err := svc.Create(ctx, order("Ada Lovelace", "ada@example.com", item(1, 1, "2.00")))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, o.ID))

	_, err = svc.GetByID(ctx, o.ID)
	assert.EqualError(t, err, "order not found with id 1")

	err = svc.Delete(ctx, o.ID)
	assert.ErrorIs(t, err, orderdomain.ErrOrderNotFound)
}
