// Package memory holds an in-process OrderRepository with the same unique
// order-number constraint as the PostgreSQL schema.
package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	orderdomain "github.com/ghuser/bizservices/services/order/domain"
	"github.com/ghuser/bizservices/services/order/domain/models"
)

// OrderRepository implements repositories.OrderRepository in memory.
type OrderRepository struct {
	mu         sync.RWMutex
	rows       map[int64]models.Order
	nextID     int64
	nextItemID int64
}

// NewOrderRepository returns an empty repository whose first id is 1.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{rows: make(map[int64]models.Order)}
}

func (r *OrderRepository) Save(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.numberTaken(0, o.OrderNumber) {
		return orderdomain.ErrOrderAlreadyExists
	}
	r.nextID++
	o.ID = r.nextID
	r.assignItemIDs(o)
	r.rows[o.ID] = clone(o)
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id int64) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, orderdomain.ErrOrderNotFound
	}
	o := clone(&row)
	return &o, nil
}

func (r *OrderRepository) GetByOrderNumber(_ context.Context, orderNumber string) (*models.Order, error) {
	found := r.filter(func(o *models.Order) bool { return o.OrderNumber == orderNumber })
	if len(found) == 0 {
		return nil, orderdomain.ErrOrderNotFound
	}
	return found[0], nil
}

func (r *OrderRepository) FindAll(_ context.Context) ([]*models.Order, error) {
	return r.filter(func(*models.Order) bool { return true }), nil
}

func (r *OrderRepository) FindByCustomerEmail(_ context.Context, email string) ([]*models.Order, error) {
	return r.filter(func(o *models.Order) bool { return o.CustomerEmail == email }), nil
}

func (r *OrderRepository) FindByStatus(_ context.Context, status models.OrderStatus) ([]*models.Order, error) {
	return r.filter(func(o *models.Order) bool { return o.Status == status }), nil
}

func (r *OrderRepository) FindByCustomerEmailAndStatus(_ context.Context, email string, status models.OrderStatus) ([]*models.Order, error) {
	return r.filter(func(o *models.Order) bool { return o.CustomerEmail == email && o.Status == status }), nil
}

func (r *OrderRepository) FindByCreatedAtBetween(_ context.Context, start, end time.Time) ([]*models.Order, error) {
	return r.filter(func(o *models.Order) bool {
		return !o.CreatedAt.Before(start) && !o.CreatedAt.After(end)
	}), nil
}

func (r *OrderRepository) SearchByCustomerName(_ context.Context, fragment string) ([]*models.Order, error) {
	needle := strings.ToLower(fragment)
	return r.filter(func(o *models.Order) bool { return strings.Contains(strings.ToLower(o.CustomerName), needle) }), nil
}

func (r *OrderRepository) Update(_ context.Context, o *models.Order, replaceItems bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.rows[o.ID]
	if !ok {
		return orderdomain.ErrOrderNotFound
	}
	if r.numberTaken(o.ID, o.OrderNumber) {
		return orderdomain.ErrOrderAlreadyExists
	}
	if replaceItems {
		r.assignItemIDs(o)
	} else {
		o.Items = slices.Clone(stored.Items)
	}
	r.rows[o.ID] = clone(o)
	return nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id int64, status models.OrderStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return orderdomain.ErrOrderNotFound
	}
	row.Status = status
	row.UpdatedAt = updatedAt
	r.rows[id] = row
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return orderdomain.ErrOrderNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *OrderRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *OrderRepository) ExistsByOrderNumber(_ context.Context, orderNumber string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.numberTaken(0, orderNumber), nil
}

func (r *OrderRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rows)), nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	found, _ := r.FindByStatus(ctx, status)
	return int64(len(found)), nil
}

// numberTaken reports whether a row other than selfID uses orderNumber. Callers must hold mu.
func (r *OrderRepository) numberTaken(selfID int64, orderNumber string) bool {
	for id, row := range r.rows {
		if id != selfID && row.OrderNumber == orderNumber {
			return true
		}
	}
	return false
}

// assignItemIDs numbers o's items and links them to o. Callers must hold mu.
func (r *OrderRepository) assignItemIDs(o *models.Order) {
	for i := range o.Items {
		r.nextItemID++
		o.Items[i].ID = r.nextItemID
		o.Items[i].OrderID = o.ID
	}
}

// filter returns copies of matching rows ordered by id.
func (r *OrderRepository) filter(match func(*models.Order) bool) []*models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Order, 0, len(r.rows))
	for _, row := range r.rows {
		if match(&row) {
			o := clone(&row)
			out = append(out, &o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// clone copies o so the stored row never shares an Items backing array with callers.
func clone(o *models.Order) models.Order {
	c := *o
	c.Items = slices.Clone(o.Items)
	if c.Items == nil {
		c.Items = []models.OrderItem{}
	}
	return c
}
