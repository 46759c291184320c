package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizservices/pkg/database"
	"github.com/ghuser/bizservices/pkg/events"
	productdomain "github.com/ghuser/bizservices/services/product/domain"
	domainevents "github.com/ghuser/bizservices/services/product/domain/events"
	"github.com/ghuser/bizservices/services/product/domain/models"
	"github.com/ghuser/bizservices/services/product/infrastructure/persistence/postgres/db"
)

const uniqueViolation = "23505"

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository. A nil bus disables event publishing.
func NewProductRepository(database *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: database, bus: bus}
}

// Save inserts p, assigns its id and publishes product.created in the same transaction.
func (r *ProductRepository) Save(ctx context.Context, p *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := db.New(tx).InsertProduct(ctx, db.InsertProductParams{
			Name:        p.Name,
			Description: nullString(p.Description),
			Price:       p.Price,
			Quantity:    int32(p.Quantity),
			Category:    nullString(p.Category),
			Sku:         p.SKU,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
		if err != nil {
			return mapWriteError("insert product", err)
		}
		p.ID = id
		return r.publishChanged(ctx, tx, domainevents.TopicProductCreated, p)
	})
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	row, err := db.New(r.db.DB()).GetProductByID(ctx, id)
	return rowOrNotFound(row, err)
}

func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*models.Product, error) {
	row, err := db.New(r.db.DB()).GetProductBySku(ctx, sku)
	return rowOrNotFound(row, err)
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*models.Product, error) {
	return rowsToProducts(db.New(r.db.DB()).ListProducts(ctx))
}

func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	return rowsToProducts(db.New(r.db.DB()).ListProductsByCategory(ctx, sql.NullString{String: category, Valid: true}))
}

func (r *ProductRepository) SearchByName(ctx context.Context, fragment string) ([]*models.Product, error) {
	return rowsToProducts(db.New(r.db.DB()).SearchProductsByName(ctx, database.ContainsPattern(fragment)))
}

func (r *ProductRepository) FindInStock(ctx context.Context) ([]*models.Product, error) {
	return rowsToProducts(db.New(r.db.DB()).ListProductsInStock(ctx))
}

func (r *ProductRepository) FindByPriceBetween(ctx context.Context, low, high decimal.Decimal) ([]*models.Product, error) {
	return rowsToProducts(db.New(r.db.DB()).ListProductsByPriceBetween(ctx, db.ListProductsByPriceBetweenParams{
		MinPrice: low,
		MaxPrice: high,
	}))
}

// Update replaces the row and publishes product.updated in the same transaction.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateProduct(ctx, db.UpdateProductParams{
			ID:          p.ID,
			Name:        p.Name,
			Description: nullString(p.Description),
			Price:       p.Price,
			Quantity:    int32(p.Quantity),
			Category:    nullString(p.Category),
			Sku:         p.SKU,
			UpdatedAt:   p.UpdatedAt,
		})
		if err != nil {
			return mapWriteError("update product", err)
		}
		if n == 0 {
			return productdomain.ErrProductNotFound
		}
		return r.publishChanged(ctx, tx, domainevents.TopicProductUpdated, p)
	})
}

// UpdateQuantity sets only quantity and updated_at, then publishes
// product.updated with the row as stored.
func (r *ProductRepository) UpdateQuantity(ctx context.Context, id int64, quantity int, updatedAt time.Time) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		n, err := q.UpdateProductQuantity(ctx, db.UpdateProductQuantityParams{
			ID:        id,
			Quantity:  int32(quantity),
			UpdatedAt: updatedAt,
		})
		if err != nil {
			return fmt.Errorf("update product quantity: %w", err)
		}
		if n == 0 {
			return productdomain.ErrProductNotFound
		}
		if r.bus == nil {
			return nil
		}
		row, err := q.GetProductByID(ctx, id)
		if err != nil {
			return fmt.Errorf("reload product: %w", err)
		}
		return r.publishChanged(ctx, tx, domainevents.TopicProductUpdated, rowToProduct(row))
	})
}

// Delete removes the row and publishes product.deleted in the same transaction.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		if n == 0 {
			return productdomain.ErrProductNotFound
		}
		if r.bus == nil {
			return nil
		}
		evt := domainevents.ProductDeletedEvent{
			EventID:    uuid.New(),
			Version:    domainevents.EventVersion,
			ProductID:  id,
			OccurredAt: time.Now().UTC(),
		}
		return r.bus.PublishTx(ctx, tx, domainevents.TopicProductDeleted, evt.EventID.String(), evt.Version, evt)
	})
}

func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := db.New(r.db.DB()).ProductExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return ok, nil
}

func (r *ProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	ok, err := db.New(r.db.DB()).ProductExistsBySku(ctx, sku)
	if err != nil {
		return false, fmt.Errorf("check product sku: %w", err)
	}
	return ok, nil
}

func (r *ProductRepository) publishChanged(ctx context.Context, tx *sql.Tx, topic string, p *models.Product) error {
	if r.bus == nil {
		return nil
	}
	evt := domainevents.ProductChangedEvent{
		EventID:    uuid.New(),
		Version:    domainevents.EventVersion,
		ProductID:  p.ID,
		SKU:        p.SKU,
		Price:      p.Price.StringFixed(2),
		Quantity:   p.Quantity,
		OccurredAt: p.UpdatedAt,
	}
	if err := r.bus.PublishTx(ctx, tx, topic, evt.EventID.String(), evt.Version, evt); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// mapWriteError turns a violation of products_sku_key into ErrProductAlreadyExists.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w with that sku", productdomain.ErrProductAlreadyExists)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func rowOrNotFound(row db.Product, err error) (*models.Product, error) {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, productdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return rowToProduct(row), nil
}

func rowsToProducts(rows []db.Product, err error) ([]*models.Product, error) {
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	out := make([]*models.Product, len(rows))
	for i, row := range rows {
		out[i] = rowToProduct(row)
	}
	return out, nil
}

func rowToProduct(row db.Product) *models.Product {
	return &models.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: stringPtr(row.Description),
		Price:       row.Price,
		Quantity:    int(row.Quantity),
		Category:    stringPtr(row.Category),
		SKU:         row.Sku,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
