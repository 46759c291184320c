// Package memory holds an in-process ProductRepository with the same unique
// SKU constraint as the PostgreSQL schema.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	productdomain "github.com/ghuser/bizservices/services/product/domain"
	"github.com/ghuser/bizservices/services/product/domain/models"
)

// ProductRepository implements repositories.ProductRepository in memory.
type ProductRepository struct {
	mu     sync.RWMutex
	rows   map[int64]models.Product
	nextID int64
}

// NewProductRepository returns an empty repository whose first id is 1.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{rows: make(map[int64]models.Product)}
}

func (r *ProductRepository) Save(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.skuTaken(0, p.SKU) {
		return productdomain.ErrProductAlreadyExists
	}
	r.nextID++
	p.ID = r.nextID
	r.rows[p.ID] = *p
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id int64) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, productdomain.ErrProductNotFound
	}
	return &row, nil
}

func (r *ProductRepository) GetBySKU(_ context.Context, sku string) (*models.Product, error) {
	found := r.filter(func(p *models.Product) bool { return p.SKU == sku })
	if len(found) == 0 {
		return nil, productdomain.ErrProductNotFound
	}
	return found[0], nil
}

func (r *ProductRepository) FindAll(_ context.Context) ([]*models.Product, error) {
	return r.filter(func(*models.Product) bool { return true }), nil
}

func (r *ProductRepository) FindByCategory(_ context.Context, category string) ([]*models.Product, error) {
	return r.filter(func(p *models.Product) bool { return p.Category != nil && *p.Category == category }), nil
}

func (r *ProductRepository) SearchByName(_ context.Context, fragment string) ([]*models.Product, error) {
	needle := strings.ToLower(fragment)
	return r.filter(func(p *models.Product) bool { return strings.Contains(strings.ToLower(p.Name), needle) }), nil
}

func (r *ProductRepository) FindInStock(_ context.Context) ([]*models.Product, error) {
	return r.filter((*models.Product).InStock), nil
}

func (r *ProductRepository) FindByPriceBetween(_ context.Context, low, high decimal.Decimal) ([]*models.Product, error) {
	return r.filter(func(p *models.Product) bool {
		return p.Price.GreaterThanOrEqual(low) && p.Price.LessThanOrEqual(high)
	}), nil
}

func (r *ProductRepository) Update(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[p.ID]; !ok {
		return productdomain.ErrProductNotFound
	}
	if r.skuTaken(p.ID, p.SKU) {
		return productdomain.ErrProductAlreadyExists
	}
	r.rows[p.ID] = *p
	return nil
}

func (r *ProductRepository) UpdateQuantity(_ context.Context, id int64, quantity int, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return productdomain.ErrProductNotFound
	}
	row.SetQuantity(quantity, updatedAt)
	r.rows[id] = row
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return productdomain.ErrProductNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *ProductRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *ProductRepository) ExistsBySKU(_ context.Context, sku string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.skuTaken(0, sku), nil
}

// skuTaken reports whether a row other than selfID uses sku. Callers must hold mu.
func (r *ProductRepository) skuTaken(selfID int64, sku string) bool {
	for id, row := range r.rows {
		if id != selfID && row.SKU == sku {
			return true
		}
	}
	return false
}

// filter returns copies of matching rows ordered by id.
func (r *ProductRepository) filter(match func(*models.Product) bool) []*models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Product, 0, len(r.rows))
	for _, row := range r.rows {
		if match(&row) {
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
