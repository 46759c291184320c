package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/bizservices/pkg/database"
	"github.com/ghuser/bizservices/pkg/events"
	orderdomain "github.com/ghuser/bizservices/services/order/domain"
	domainevents "github.com/ghuser/bizservices/services/order/domain/events"
	"github.com/ghuser/bizservices/services/order/domain/models"
	"github.com/ghuser/bizservices/services/order/infrastructure/persistence/postgres/db"
)

const uniqueViolation = "23505"

// OrderRepository implements repositories.OrderRepository against PostgreSQL.
type OrderRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewOrderRepository returns an OrderRepository. A nil bus disables event publishing.
func NewOrderRepository(database *database.Database, bus *events.EventBus) *OrderRepository {
	return &OrderRepository{db: database, bus: bus}
}

// Save inserts o and its items, then publishes order.created, all in one transaction.
func (r *OrderRepository) Save(ctx context.Context, o *models.Order) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		id, err := q.InsertOrder(ctx, db.InsertOrderParams{
			OrderNumber:     o.OrderNumber,
			CustomerName:    o.CustomerName,
			CustomerEmail:   o.CustomerEmail,
			TotalAmount:     o.TotalAmount,
			Status:          o.Status.String(),
			ShippingAddress: nullString(o.ShippingAddress),
			CreatedAt:       o.CreatedAt,
			UpdatedAt:       o.UpdatedAt,
		})
		if err != nil {
			return mapWriteError("insert order", err)
		}
		o.ID = id
		if err := insertItems(ctx, q, o); err != nil {
			return err
		}
		return r.publishChanged(ctx, tx, domainevents.TopicOrderCreated, o)
	})
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	row, err := db.New(r.db.DB()).GetOrderByID(ctx, id)
	return r.one(ctx, row, err)
}

func (r *OrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	row, err := db.New(r.db.DB()).GetOrderByOrderNumber(ctx, orderNumber)
	return r.one(ctx, row, err)
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*models.Order, error) {
	rows, err := db.New(r.db.DB()).ListOrders(ctx)
	return r.many(ctx, rows, err)
}

func (r *OrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]*models.Order, error) {
	rows, err := db.New(r.db.DB()).ListOrdersByCustomerEmail(ctx, email)
	return r.many(ctx, rows, err)
}

func (r *OrderRepository) FindByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error) {
	rows, err := db.New(r.db.DB()).ListOrdersByStatus(ctx, status.String())
	return r.many(ctx, rows, err)
}

func (r *OrderRepository) FindByCustomerEmailAndStatus(ctx context.Context, email string, status models.OrderStatus) ([]*models.Order, error) {
	rows, err := db.New(r.db.DB()).ListOrdersByCustomerEmailAndStatus(ctx, db.ListOrdersByCustomerEmailAndStatusParams{
		CustomerEmail: email,
		Status:        status.String(),
	})
	return r.many(ctx, rows, err)
}

func (r *OrderRepository) FindByCreatedAtBetween(ctx context.Context, start, end time.Time) ([]*models.Order, error) {
	rows, err := db.New(r.db.DB()).ListOrdersCreatedBetween(ctx, db.ListOrdersCreatedBetweenParams{
		StartDate: start,
		EndDate:   end,
	})
	return r.many(ctx, rows, err)
}

func (r *OrderRepository) SearchByCustomerName(ctx context.Context, fragment string) ([]*models.Order, error) {
	rows, err := db.New(r.db.DB()).SearchOrdersByCustomerName(ctx, database.ContainsPattern(fragment))
	return r.many(ctx, rows, err)
}

// Update rewrites the order row, optionally replaces its items, and
// publishes order.updated in the same transaction.
func (r *OrderRepository) Update(ctx context.Context, o *models.Order, replaceItems bool) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		n, err := q.UpdateOrder(ctx, db.UpdateOrderParams{
			ID:              o.ID,
			OrderNumber:     o.OrderNumber,
			CustomerName:    o.CustomerName,
			CustomerEmail:   o.CustomerEmail,
			TotalAmount:     o.TotalAmount,
			Status:          o.Status.String(),
			ShippingAddress: nullString(o.ShippingAddress),
			UpdatedAt:       o.UpdatedAt,
		})
		if err != nil {
			return mapWriteError("update order", err)
		}
		if n == 0 {
			return orderdomain.ErrOrderNotFound
		}
		if replaceItems {
			if err := q.DeleteOrderItemsByOrderID(ctx, o.ID); err != nil {
				return fmt.Errorf("delete order items: %w", err)
			}
			if err := insertItems(ctx, q, o); err != nil {
				return err
			}
		}
		return r.publishChanged(ctx, tx, domainevents.TopicOrderUpdated, o)
	})
}

// UpdateStatus changes the status column and publishes order.status_changed.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus, updatedAt time.Time) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
			ID:        id,
			Status:    status.String(),
			UpdatedAt: updatedAt,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		if n == 0 {
			return orderdomain.ErrOrderNotFound
		}
		if r.bus == nil {
			return nil
		}
		evt := domainevents.OrderStatusChangedEvent{
			EventID:    uuid.New(),
			Version:    domainevents.EventVersion,
			OrderID:    id,
			Status:     status.String(),
			OccurredAt: updatedAt,
		}
		return r.bus.PublishTx(ctx, tx, domainevents.TopicOrderStatusChanged, evt.EventID.String(), evt.Version, evt)
	})
}

// Delete removes the order (items cascade) and publishes order.deleted.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteOrder(ctx, id)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		if n == 0 {
			return orderdomain.ErrOrderNotFound
		}
		if r.bus == nil {
			return nil
		}
		evt := domainevents.OrderDeletedEvent{
			EventID:    uuid.New(),
			Version:    domainevents.EventVersion,
			OrderID:    id,
			OccurredAt: time.Now().UTC(),
		}
		return r.bus.PublishTx(ctx, tx, domainevents.TopicOrderDeleted, evt.EventID.String(), evt.Version, evt)
	})
}

func (r *OrderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := db.New(r.db.DB()).OrderExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check order exists: %w", err)
	}
	return ok, nil
}

func (r *OrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	ok, err := db.New(r.db.DB()).OrderExistsByOrderNumber(ctx, orderNumber)
	if err != nil {
		return false, fmt.Errorf("check order number: %w", err)
	}
	return ok, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	n, err := db.New(r.db.DB()).CountOrders(ctx)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	n, err := db.New(r.db.DB()).CountOrdersByStatus(ctx, status.String())
	if err != nil {
		return 0, fmt.Errorf("count %s orders: %w", status, err)
	}
	return n, nil
}

func insertItems(ctx context.Context, q *db.Queries, o *models.Order) error {
	for i := range o.Items {
		it := &o.Items[i]
		id, err := q.InsertOrderItem(ctx, db.InsertOrderItemParams{
			OrderID:     o.ID,
			ProductID:   it.ProductID,
			ProductName: nullString(it.ProductName),
			Quantity:    int32(it.Quantity),
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
		it.ID = id
		it.OrderID = o.ID
	}
	return nil
}

func (r *OrderRepository) publishChanged(ctx context.Context, tx *sql.Tx, topic string, o *models.Order) error {
	if r.bus == nil {
		return nil
	}
	evt := domainevents.OrderChangedEvent{
		EventID:       uuid.New(),
		Version:       domainevents.EventVersion,
		OrderID:       o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerEmail: o.CustomerEmail,
		Status:        o.Status.String(),
		TotalAmount:   o.TotalAmount.StringFixed(2),
		ItemCount:     len(o.Items),
		OccurredAt:    o.UpdatedAt,
	}
	if err := r.bus.PublishTx(ctx, tx, topic, evt.EventID.String(), evt.Version, evt); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// one loads the items of a single order row.
func (r *OrderRepository) one(ctx context.Context, row db.Order, err error) (*models.Order, error) {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orderdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}
	orders, err := r.many(ctx, []db.Order{row}, nil)
	if err != nil {
		return nil, err
	}
	return orders[0], nil
}

// many maps order rows and attaches their items with a single query.
func (r *OrderRepository) many(ctx context.Context, rows []db.Order, err error) ([]*models.Order, error) {
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	out := make([]*models.Order, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]int64, len(rows))
	byID := make(map[int64]*models.Order, len(rows))
	for i, row := range rows {
		out[i] = rowToOrder(row)
		ids[i] = row.ID
		byID[row.ID] = out[i]
	}

	items, err := db.New(r.db.DB()).ListOrderItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	for _, it := range items {
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, rowToItem(it))
		}
	}
	return out, nil
}

// mapWriteError turns a violation of orders_order_number_key into ErrOrderAlreadyExists.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w with that order number", orderdomain.ErrOrderAlreadyExists)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func rowToOrder(row db.Order) *models.Order {
	return &models.Order{
		ID:              row.ID,
		OrderNumber:     row.OrderNumber,
		CustomerName:    row.CustomerName,
		CustomerEmail:   row.CustomerEmail,
		TotalAmount:     row.TotalAmount,
		Status:          models.OrderStatus(row.Status),
		ShippingAddress: stringPtr(row.ShippingAddress),
		Items:           []models.OrderItem{},
		CreatedAt:       row.CreatedAt.UTC(),
		UpdatedAt:       row.UpdatedAt.UTC(),
	}
}

func rowToItem(row db.OrderItem) models.OrderItem {
	return models.OrderItem{
		ID:          row.ID,
		OrderID:     row.OrderID,
		ProductID:   row.ProductID,
		ProductName: stringPtr(row.ProductName),
		Quantity:    int(row.Quantity),
		UnitPrice:   row.UnitPrice,
		TotalPrice:  row.TotalPrice,
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
