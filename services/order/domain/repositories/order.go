package repositories

import (
	"context"
	"time"

	"github.com/ghuser/bizservices/services/order/domain/models"
)

// OrderRepository is the persistence interface for the Order aggregate.
// Orders are always returned with their items. List methods return orders
// ordered by id and never return nil on success.
type OrderRepository interface {
	// Save inserts o and its items in one transaction and assigns their ids.
	// Returns ErrOrderAlreadyExists when the order number is taken.
	Save(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)

	FindAll(ctx context.Context) ([]*models.Order, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]*models.Order, error)
	FindByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error)
	FindByCustomerEmailAndStatus(ctx context.Context, email string, status models.OrderStatus) ([]*models.Order, error)
	// FindByCreatedAtBetween includes orders created exactly at start or end.
	FindByCreatedAtBetween(ctx context.Context, start, end time.Time) ([]*models.Order, error)
	// SearchByCustomerName matches customer names containing fragment, ignoring case.
	SearchByCustomerName(ctx context.Context, fragment string) ([]*models.Order, error)

	// Update replaces the order's columns. When replaceItems is set the stored
	// items are deleted and o.Items inserted in the same transaction.
	Update(ctx context.Context, o *models.Order, replaceItems bool) error
	// UpdateStatus changes only status and updated_at.
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus, updatedAt time.Time) error
	// Delete removes the order and its items.
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
}
