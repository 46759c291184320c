package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizservices/pkg/database"
	"github.com/ghuser/bizservices/pkg/logger"
	productdomain "github.com/ghuser/bizservices/services/product/domain"
	"github.com/ghuser/bizservices/services/product/domain/models"
	"github.com/ghuser/bizservices/services/product/infrastructure/persistence/postgres/db"
)

func TestMapWriteError(t *testing.T) {
	err := mapWriteError("insert product", &pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"})
	if !errors.Is(err, productdomain.ErrProductAlreadyExists) {
		t.Fatalf("expected ErrProductAlreadyExists, got %v", err)
	}

	err = mapWriteError("insert product", &pgconn.PgError{Code: "23514"})
	if errors.Is(err, productdomain.ErrProductAlreadyExists) {
		t.Fatalf("only unique violations map to AlreadyExists, got %v", err)
	}
}

func TestRowToProduct_NullableColumns(t *testing.T) {
	p := rowToProduct(db.Product{
		ID:       4,
		Name:     "Widget",
		Price:    decimal.RequireFromString("9.99"),
		Quantity: 3,
		Category: sql.NullString{String: "tools", Valid: true},
		Sku:      "SKU-1A2B3C4D",
	})
	if p.Description != nil {
		t.Errorf("expected nil description, got %q", *p.Description)
	}
	if p.Category == nil || *p.Category != "tools" {
		t.Errorf("unexpected category %v", p.Category)
	}
	if p.Quantity != 3 || p.SKU != "SKU-1A2B3C4D" {
		t.Errorf("unexpected product %+v", p)
	}
}

// Integration test: skipped unless TEST_DATABASE_URL points at a migrated database.
func TestProductRepositoryIntegration(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, url, logger.Discard())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Close()
	if _, err := pool.DB().ExecContext(ctx, `TRUNCATE products RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	repo := NewProductRepository(pool, nil)
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := models.NewProduct(models.ProductInput{Name: "Widget", Price: decimal.RequireFromString("9.99"), Quantity: 100}, "SKU-INTEG001", now)

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	dup := *p
	if err := repo.Save(ctx, &dup); !errors.Is(err, productdomain.ErrProductAlreadyExists) {
		t.Fatalf("expected ErrProductAlreadyExists, got %v", err)
	}

	inRange, err := repo.FindByPriceBetween(ctx, decimal.RequireFromString("9.99"), decimal.RequireFromString("9.99"))
	if err != nil || len(inRange) != 1 {
		t.Fatalf("FindByPriceBetween: %v, %d rows", err, len(inRange))
	}
	found, err := repo.SearchByName(ctx, "IDG")
	if err != nil || len(found) != 1 {
		t.Fatalf("SearchByName: %v, %d rows", err, len(found))
	}

	if err := repo.UpdateQuantity(ctx, p.ID, 0, now.Add(time.Second)); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	inStock, err := repo.FindInStock(ctx)
	if err != nil || len(inStock) != 0 {
		t.Fatalf("FindInStock: %v, %d rows", err, len(inStock))
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetBySKU(ctx, "SKU-INTEG001"); !errors.Is(err, productdomain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
