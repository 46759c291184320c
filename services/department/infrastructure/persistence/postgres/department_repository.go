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
	deptdomain "github.com/ghuser/bizservices/services/department/domain"
	domainevents "github.com/ghuser/bizservices/services/department/domain/events"
	"github.com/ghuser/bizservices/services/department/domain/models"
	"github.com/ghuser/bizservices/services/department/infrastructure/persistence/postgres/db"
)

const uniqueViolation = "23505"

// DepartmentRepository implements repositories.DepartmentRepository against PostgreSQL.
type DepartmentRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewDepartmentRepository returns a DepartmentRepository backed by the given pool
// and event bus. A nil bus disables event publishing.
func NewDepartmentRepository(database *database.Database, bus *events.EventBus) *DepartmentRepository {
	return &DepartmentRepository{db: database, bus: bus}
}

// Save inserts d, assigns its id and publishes department.created in the same transaction.
func (r *DepartmentRepository) Save(ctx context.Context, d *models.Department) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := db.New(tx).InsertDepartment(ctx, db.InsertDepartmentParams{
			Name:         d.Name,
			Code:         d.Code,
			Description:  nullString(d.Description),
			ManagerName:  nullString(d.ManagerName),
			ManagerEmail: nullString(d.ManagerEmail),
			Location:     nullString(d.Location),
			Budget:       nullDecimal(d.Budget),
			IsActive:     d.IsActive,
			CreatedAt:    d.CreatedAt,
			UpdatedAt:    d.UpdatedAt,
		})
		if err != nil {
			return mapWriteError("insert department", err)
		}
		d.ID = id
		return r.publishChanged(ctx, tx, domainevents.TopicDepartmentCreated, d)
	})
}

// GetByID returns ErrDepartmentNotFound if no row has id.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	row, err := db.New(r.db.DB()).GetDepartmentByID(ctx, id)
	return rowOrNotFound(row, err)
}

// GetByCode returns ErrDepartmentNotFound if no row has code.
func (r *DepartmentRepository) GetByCode(ctx context.Context, code string) (*models.Department, error) {
	row, err := db.New(r.db.DB()).GetDepartmentByCode(ctx, code)
	return rowOrNotFound(row, err)
}

func (r *DepartmentRepository) FindAll(ctx context.Context) ([]*models.Department, error) {
	return rowsToDepartments(db.New(r.db.DB()).ListDepartments(ctx))
}

func (r *DepartmentRepository) FindByLocation(ctx context.Context, location string) ([]*models.Department, error) {
	return rowsToDepartments(db.New(r.db.DB()).ListDepartmentsByLocation(ctx, sql.NullString{String: location, Valid: true}))
}

func (r *DepartmentRepository) FindByActive(ctx context.Context, active bool) ([]*models.Department, error) {
	return rowsToDepartments(db.New(r.db.DB()).ListDepartmentsByActive(ctx, active))
}

func (r *DepartmentRepository) FindByManagerEmail(ctx context.Context, email string) ([]*models.Department, error) {
	return rowsToDepartments(db.New(r.db.DB()).ListDepartmentsByManagerEmail(ctx, sql.NullString{String: email, Valid: true}))
}

func (r *DepartmentRepository) SearchByName(ctx context.Context, fragment string) ([]*models.Department, error) {
	return rowsToDepartments(db.New(r.db.DB()).SearchDepartmentsByName(ctx, database.ContainsPattern(fragment)))
}

func (r *DepartmentRepository) CountActive(ctx context.Context) (int64, error) {
	n, err := db.New(r.db.DB()).CountActiveDepartments(ctx)
	if err != nil {
		return 0, fmt.Errorf("count active departments: %w", err)
	}
	return n, nil
}

// Update replaces the row and publishes department.updated in the same transaction.
func (r *DepartmentRepository) Update(ctx context.Context, d *models.Department) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateDepartment(ctx, db.UpdateDepartmentParams{
			ID:           d.ID,
			Name:         d.Name,
			Code:         d.Code,
			Description:  nullString(d.Description),
			ManagerName:  nullString(d.ManagerName),
			ManagerEmail: nullString(d.ManagerEmail),
			Location:     nullString(d.Location),
			Budget:       nullDecimal(d.Budget),
			IsActive:     d.IsActive,
			UpdatedAt:    d.UpdatedAt,
		})
		if err != nil {
			return mapWriteError("update department", err)
		}
		if n == 0 {
			return deptdomain.ErrDepartmentNotFound
		}
		return r.publishChanged(ctx, tx, domainevents.TopicDepartmentUpdated, d)
	})
}

// Delete removes the row and publishes department.deleted in the same transaction.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteDepartment(ctx, id)
		if err != nil {
			return fmt.Errorf("delete department: %w", err)
		}
		if n == 0 {
			return deptdomain.ErrDepartmentNotFound
		}
		if r.bus == nil {
			return nil
		}
		evt := domainevents.DepartmentDeletedEvent{
			EventID:      uuid.New(),
			Version:      domainevents.EventVersion,
			DepartmentID: id,
			OccurredAt:   time.Now().UTC(),
		}
		return r.bus.PublishTx(ctx, tx, domainevents.TopicDepartmentDeleted, evt.EventID.String(), evt.Version, evt)
	})
}

func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := db.New(r.db.DB()).DepartmentExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check department exists: %w", err)
	}
	return ok, nil
}

func (r *DepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ok, err := db.New(r.db.DB()).DepartmentExistsByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("check department name: %w", err)
	}
	return ok, nil
}

func (r *DepartmentRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	ok, err := db.New(r.db.DB()).DepartmentExistsByCode(ctx, code)
	if err != nil {
		return false, fmt.Errorf("check department code: %w", err)
	}
	return ok, nil
}

func (r *DepartmentRepository) publishChanged(ctx context.Context, tx *sql.Tx, topic string, d *models.Department) error {
	if r.bus == nil {
		return nil
	}
	evt := domainevents.DepartmentChangedEvent{
		EventID:      uuid.New(),
		Version:      domainevents.EventVersion,
		DepartmentID: d.ID,
		Name:         d.Name,
		Code:         d.Code,
		IsActive:     d.IsActive,
		OccurredAt:   d.UpdatedAt,
	}
	if err := r.bus.PublishTx(ctx, tx, topic, evt.EventID.String(), evt.Version, evt); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// mapWriteError turns a unique violation into ErrDepartmentAlreadyExists,
// naming the constraint that fired.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "departments_name_key":
			return fmt.Errorf("%w with that name", deptdomain.ErrDepartmentAlreadyExists)
		case "departments_code_key":
			return fmt.Errorf("%w with that code", deptdomain.ErrDepartmentAlreadyExists)
		}
		return deptdomain.ErrDepartmentAlreadyExists
	}
	return fmt.Errorf("%s: %w", op, err)
}

func rowOrNotFound(row db.Department, err error) (*models.Department, error) {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, deptdomain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("query department: %w", err)
	}
	return rowToDepartment(row), nil
}

func rowsToDepartments(rows []db.Department, err error) ([]*models.Department, error) {
	if err != nil {
		return nil, fmt.Errorf("query departments: %w", err)
	}
	out := make([]*models.Department, len(rows))
	for i, row := range rows {
		out[i] = rowToDepartment(row)
	}
	return out, nil
}

// rowToDepartment maps a db.Department to a domain models.Department.
func rowToDepartment(row db.Department) *models.Department {
	return &models.Department{
		ID:           row.ID,
		Name:         row.Name,
		Code:         row.Code,
		Description:  stringPtr(row.Description),
		ManagerName:  stringPtr(row.ManagerName),
		ManagerEmail: stringPtr(row.ManagerEmail),
		Location:     stringPtr(row.Location),
		Budget:       decimalPtr(row.Budget),
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
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

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return &d.Decimal
}
