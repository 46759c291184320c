package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/bizservices/pkg/logger"
	productdomain "github.com/ghuser/bizservices/services/product/domain"
	"github.com/ghuser/bizservices/services/product/domain/models"
	"github.com/ghuser/bizservices/services/product/infrastructure/persistence/memory"
)

func newTestService() *ProductService {
	return NewProductService(memory.NewProductRepository(), nil, logger.Discard())
}

func product(name, price string, quantity int) models.ProductInput {
	return models.ProductInput{Name: name, Price: decimal.RequireFromString(price), Quantity: quantity}
}

func TestProductService_CreateGeneratesSKU(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, product("Widget", "9.99", 100))
	require.NoError(t, err)
	require.NotZero(t, p.ID)
	assert.Regexp(t, `^SKU-[A-Z0-9]{8}$`, p.SKU)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	bySKU, err := svc.GetBySKU(ctx, p.SKU)
	require.NoError(t, err)
	assert.Equal(t, p.ID, bySKU.ID)

	_, err = svc.GetBySKU(ctx, "SKU-MISSING0")
	assert.EqualError(t, err, "product not found with sku SKU-MISSING0")
}

func TestProductService_DuplicateSKU(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := product("Widget", "9.99", 1)
	in.SKU = "SKU-FIXED001"
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	in.Name = "Other"
	_, err = svc.Create(ctx, in)
	require.ErrorIs(t, err, productdomain.ErrProductAlreadyExists)
	assert.EqualError(t, err, "product already exists with sku SKU-FIXED001")
}

func TestProductService_UpdateKeepsSKU(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	t0 := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }

	p, err := svc.Create(ctx, product("Widget", "9.99", 1))
	require.NoError(t, err)
	other, err := svc.Create(ctx, product("Gadget", "4.00", 1))
	require.NoError(t, err)

	svc.now = func() time.Time { return t0.Add(time.Hour) }
	updated, err := svc.Update(ctx, p.ID, product("Widget Pro", "19.99", 5))
	require.NoError(t, err)
	assert.Equal(t, p.SKU, updated.SKU)
	assert.Equal(t, "Widget Pro", updated.Name)
	assert.Equal(t, t0, updated.CreatedAt)
	assert.Equal(t, t0.Add(time.Hour), updated.UpdatedAt)

	clash := product("Widget Pro", "19.99", 5)
	clash.SKU = other.SKU
	_, err = svc.Update(ctx, p.ID, clash)
	require.ErrorIs(t, err, productdomain.ErrProductAlreadyExists)

	_, err = svc.Update(ctx, 999, product("Nothing", "1.00", 0))
	assert.EqualError(t, err, "product not found with id 999")
}

func TestProductService_UpdateQuantity(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, product("Widget", "9.99", 10))
	require.NoError(t, err)

	got, err := svc.UpdateQuantity(ctx, p.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
	assert.Equal(t, "Widget", got.Name)

	inStock, err := svc.ListInStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, inStock)

	_, err = svc.UpdateQuantity(ctx, 999, 1)
	assert.ErrorIs(t, err, productdomain.ErrProductNotFound)
}

func TestProductService_Queries(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	tools := "tools"

	cheap := product("Small Widget", "1.00", 0)
	cheap.Category = &tools
	_, err := svc.Create(ctx, cheap)
	require.NoError(t, err)
	_, err = svc.Create(ctx, product("Large Widget", "10.00", 3))
	require.NoError(t, err)
	_, err = svc.Create(ctx, product("Gadget", "25.50", 7))
	require.NoError(t, err)

	tests := []struct {
		name string
		run  func() ([]*models.Product, error)
		want []string
	}{
		{"category", func() ([]*models.Product, error) { return svc.ListByCategory(ctx, "tools") }, []string{"Small Widget"}},
		{"in stock", func() ([]*models.Product, error) { return svc.ListInStock(ctx) }, []string{"Large Widget", "Gadget"}},
		{"search", func() ([]*models.Product, error) { return svc.SearchByName(ctx, "WIDGET") }, []string{"Small Widget", "Large Widget"}},
		{"price inclusive", func() ([]*models.Product, error) {
			return svc.ListByPriceRange(ctx, decimal.RequireFromString("1.00"), decimal.RequireFromString("10.00"))
		}, []string{"Small Widget", "Large Widget"}},
		{"price reversed", func() ([]*models.Product, error) {
			return svc.ListByPriceRange(ctx, decimal.RequireFromString("10.00"), decimal.RequireFromString("1.00"))
		}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}

func TestProductService_Delete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, product("Widget", "9.99", 1))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, p.ID))

	err = svc.Delete(ctx, p.ID)
	assert.EqualError(t, err, "product not found with id 1")
}
