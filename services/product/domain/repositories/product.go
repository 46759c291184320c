package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/bizservices/services/product/domain/models"
)

// ProductRepository is the persistence interface for the Product aggregate.
// List methods return products ordered by id and never return nil on success.
type ProductRepository interface {
	// Save inserts p and assigns p.ID. Returns ErrProductAlreadyExists when
	// the SKU is taken.
	Save(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)

	FindAll(ctx context.Context) ([]*models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*models.Product, error)
	// SearchByName matches a case-insensitive substring of the name.
	SearchByName(ctx context.Context, fragment string) ([]*models.Product, error)
	FindInStock(ctx context.Context) ([]*models.Product, error)
	// FindByPriceBetween is inclusive on both ends.
	FindByPriceBetween(ctx context.Context, low, high decimal.Decimal) ([]*models.Product, error)

	Update(ctx context.Context, p *models.Product) error
	UpdateQuantity(ctx context.Context, id int64, quantity int, updatedAt time.Time) error
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}
