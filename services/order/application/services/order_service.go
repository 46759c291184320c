package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	pkgcache "github.com/ghuser/bizservices/pkg/cache"
	"github.com/ghuser/bizservices/pkg/logger"
	orderdomain "github.com/ghuser/bizservices/services/order/domain"
	"github.com/ghuser/bizservices/services/order/domain/models"
	"github.com/ghuser/bizservices/services/order/domain/repositories"
	domainsvcs "github.com/ghuser/bizservices/services/order/domain/services"
)

var tracer = otel.Tracer("github.com/ghuser/bizservices/services/order")

// OrderService implements the order use cases. Every write is one
// repository transaction covering the order, its items and its event.
type OrderService struct {
	repo  repositories.OrderRepository
	cache *pkgcache.EntityCache[models.Order]
	log   logger.Logger
	now   func() time.Time
}

// NewOrderService returns an OrderService. cache may be nil.
func NewOrderService(repo repositories.OrderRepository, cache *pkgcache.EntityCache[models.Order], log logger.Logger) *OrderService {
	return &OrderService{
		repo:  repo,
		cache: cache,
		log:   log.With("context", "order"),
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Create inserts a new order. A missing order number is generated; a
// supplied one must be unused. Item prices and the order total are computed
// before the insert.
func (s *OrderService) Create(ctx context.Context, in models.OrderInput) (_ *models.Order, err error) {
	ctx, span := tracer.Start(ctx, "OrderService.Create")
	defer endSpan(span, &err)

	number := in.OrderNumber
	if number == "" {
		number = domainsvcs.NewOrderNumber()
	} else if err := s.ensureNumberFree(ctx, number); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("order.number", number))

	o := models.NewOrder(in, number, s.now())
	if err := domainsvcs.ApplyTotals(o); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.log.InfoContext(ctx, "order created",
		"order_id", o.ID,
		"order_number", o.OrderNumber,
		"items", len(o.Items),
		"total_amount", o.TotalAmount.StringFixed(2),
	)
	return o, nil
}

// GetByID returns the order with id, checking the cache first. A miss is not
// written back; the worker fills the cache from write events.
func (s *OrderService) GetByID(ctx context.Context, id int64) (_ *models.Order, err error) {
	ctx, span := tracer.Start(ctx, "OrderService.GetByID", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer endSpan(span, &err)

	if cached, err := s.cache.Get(ctx, id); err == nil {
		return cached, nil
	} else if !errors.Is(err, redis.Nil) {
		s.log.WarnContext(ctx, "order cache read failed", "order_id", id, "error", err)
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "id", id)
	}
	return o, nil
}

// GetByOrderNumber returns the order numbered orderNumber.
func (s *OrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	o, err := s.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, notFound(err, "order number", orderNumber)
	}
	return o, nil
}

// List returns every order.
func (s *OrderService) List(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	return listResult("list orders", orders, err)
}

// ListByCustomerEmail returns the orders placed by email.
func (s *OrderService) ListByCustomerEmail(ctx context.Context, email string) ([]*models.Order, error) {
	orders, err := s.repo.FindByCustomerEmail(ctx, email)
	return listResult("list orders by customer", orders, err)
}

// ListByStatus returns the orders in status.
func (s *OrderService) ListByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error) {
	orders, err := s.repo.FindByStatus(ctx, status)
	return listResult("list orders by status", orders, err)
}

// ListByCustomerEmailAndStatus returns the orders placed by email that are in status.
func (s *OrderService) ListByCustomerEmailAndStatus(ctx context.Context, email string, status models.OrderStatus) ([]*models.Order, error) {
	orders, err := s.repo.FindByCustomerEmailAndStatus(ctx, email, status)
	return listResult("list orders by customer and status", orders, err)
}

// ListByDateRange returns orders created between start and end inclusive.
// A start after end yields an empty list.
func (s *OrderService) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.Order, error) {
	orders, err := s.repo.FindByCreatedAtBetween(ctx, start, end)
	return listResult("list orders by date range", orders, err)
}

// SearchByCustomerName returns orders whose customer name contains fragment, ignoring case.
func (s *OrderService) SearchByCustomerName(ctx context.Context, fragment string) ([]*models.Order, error) {
	orders, err := s.repo.SearchByCustomerName(ctx, fragment)
	return listResult("search orders", orders, err)
}

// Update replaces the order with id. A changed order number is checked for
// uniqueness. Omitted order number, status and items keep their stored values.
func (s *OrderService) Update(ctx context.Context, id int64, in models.OrderInput) (_ *models.Order, err error) {
	ctx, span := tracer.Start(ctx, "OrderService.Update", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer endSpan(span, &err)

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "id", id)
	}
	if in.OrderNumber != "" && in.OrderNumber != o.OrderNumber {
		if err := s.ensureNumberFree(ctx, in.OrderNumber); err != nil {
			return nil, err
		}
	}

	replaced := o.Replace(in, s.now())
	if err := domainsvcs.ApplyTotals(o); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, o, replaced); err != nil {
		return nil, notFound(err, "id", id)
	}
	s.evict(ctx, id)

	s.log.InfoContext(ctx, "order updated", "order_id", id, "items_replaced", replaced)
	return o, nil
}

// UpdateStatus moves the order with id to status without touching any other field.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (_ *models.Order, err error) {
	ctx, span := tracer.Start(ctx, "OrderService.UpdateStatus", trace.WithAttributes(
		attribute.Int64("order.id", id),
		attribute.String("order.status", status.String()),
	))
	defer endSpan(span, &err)

	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", orderdomain.ErrInvalidOrderStatus, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status, s.now()); err != nil {
		return nil, notFound(err, "id", id)
	}
	s.evict(ctx, id)

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "id", id)
	}
	s.log.InfoContext(ctx, "order status changed", "order_id", id, "status", status)
	return o, nil
}

// Delete removes the order with id and its items.
func (s *OrderService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracer.Start(ctx, "OrderService.Delete", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer endSpan(span, &err)

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check order: %w", err)
	}
	if !exists {
		return orderdomain.NotFoundBy("id", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "id", id)
	}
	s.evict(ctx, id)

	s.log.InfoContext(ctx, "order deleted", "order_id", id)
	return nil
}

// Statistics counts all orders and the orders in each status.
func (s *OrderService) Statistics(ctx context.Context) (_ *models.Statistics, err error) {
	ctx, span := tracer.Start(ctx, "OrderService.Statistics")
	defer endSpan(span, &err)

	var stats models.Statistics
	if stats.TotalOrders, err = s.repo.Count(ctx); err != nil {
		return nil, fmt.Errorf("order statistics: %w", err)
	}
	for _, st := range models.Statuses {
		n, err := s.repo.CountByStatus(ctx, st)
		if err != nil {
			return nil, fmt.Errorf("order statistics: %w", err)
		}
		stats.Set(st, n)
	}
	return &stats, nil
}

// WarmCache loads id into the cache, or evicts it when the order is gone.
func (s *OrderService) WarmCache(ctx context.Context, id int64) error {
	o, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, orderdomain.ErrOrderNotFound) {
		return s.cache.Delete(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("load order %d: %w", id, err)
	}
	return s.cache.Set(ctx, id, o)
}

// EvictCache drops id from the cache.
func (s *OrderService) EvictCache(ctx context.Context, id int64) error {
	return s.cache.Delete(ctx, id)
}

func (s *OrderService) ensureNumberFree(ctx context.Context, number string) error {
	taken, err := s.repo.ExistsByOrderNumber(ctx, number)
	if err != nil {
		return fmt.Errorf("check order number: %w", err)
	}
	if taken {
		return orderdomain.AlreadyExistsBy("order number", number)
	}
	return nil
}

func (s *OrderService) evict(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "order cache evict failed", "order_id", id, "error", err)
	}
}

func listResult(op string, orders []*models.Order, err error) ([]*models.Order, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

func notFound(err error, field string, value any) error {
	if errors.Is(err, orderdomain.ErrOrderNotFound) {
		return orderdomain.NotFoundBy(field, value)
	}
	return err
}

func endSpan(span trace.Span, err *error) {
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
	}
	span.End()
}
