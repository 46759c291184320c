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
	empdomain "github.com/ghuser/bizservices/services/employee/domain"
	domainevents "github.com/ghuser/bizservices/services/employee/domain/events"
	"github.com/ghuser/bizservices/services/employee/domain/models"
	"github.com/ghuser/bizservices/services/employee/infrastructure/persistence/postgres/db"
)

const uniqueViolation = "23505"

// EmployeeRepository implements repositories.EmployeeRepository against PostgreSQL.
type EmployeeRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewEmployeeRepository returns an EmployeeRepository. A nil bus disables event publishing.
func NewEmployeeRepository(database *database.Database, bus *events.EventBus) *EmployeeRepository {
	return &EmployeeRepository{db: database, bus: bus}
}

// Save inserts e, assigns its id and publishes employee.created in the same transaction.
func (r *EmployeeRepository) Save(ctx context.Context, e *models.Employee) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := db.New(tx).InsertEmployee(ctx, db.InsertEmployeeParams{
			FirstName:    e.FirstName,
			LastName:     e.LastName,
			Email:        e.Email,
			PhoneNumber:  e.PhoneNumber,
			DepartmentID: e.DepartmentID,
			Position:     e.Position,
			HireDate:     e.HireDate,
			Salary:       nullDecimal(e.Salary),
			IsActive:     e.IsActive,
			CreatedAt:    e.CreatedAt,
			UpdatedAt:    e.UpdatedAt,
		})
		if err != nil {
			return mapWriteError("insert employee", err)
		}
		e.ID = id
		return r.publishChanged(ctx, tx, domainevents.TopicEmployeeCreated, e)
	})
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	row, err := db.New(r.db.DB()).GetEmployeeByID(ctx, id)
	return rowOrNotFound(row, err)
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	row, err := db.New(r.db.DB()).GetEmployeeByEmail(ctx, email)
	return rowOrNotFound(row, err)
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*models.Employee, error) {
	return rowsToEmployees(db.New(r.db.DB()).ListEmployees(ctx))
}

func (r *EmployeeRepository) FindByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Employee, error) {
	return rowsToEmployees(db.New(r.db.DB()).ListEmployeesByDepartmentID(ctx, departmentID))
}

func (r *EmployeeRepository) FindByActive(ctx context.Context, active bool) ([]*models.Employee, error) {
	return rowsToEmployees(db.New(r.db.DB()).ListEmployeesByActive(ctx, active))
}

func (r *EmployeeRepository) FindByPosition(ctx context.Context, position string) ([]*models.Employee, error) {
	return rowsToEmployees(db.New(r.db.DB()).ListEmployeesByPosition(ctx, position))
}

func (r *EmployeeRepository) FindByName(ctx context.Context, firstName, lastName string) ([]*models.Employee, error) {
	return rowsToEmployees(db.New(r.db.DB()).ListEmployeesByName(ctx, db.ListEmployeesByNameParams{
		FirstName: firstName,
		LastName:  lastName,
	}))
}

func (r *EmployeeRepository) CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error) {
	n, err := db.New(r.db.DB()).CountEmployeesByDepartmentID(ctx, departmentID)
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

// Update replaces the row and publishes employee.updated in the same transaction.
func (r *EmployeeRepository) Update(ctx context.Context, e *models.Employee) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateEmployee(ctx, db.UpdateEmployeeParams{
			ID:           e.ID,
			FirstName:    e.FirstName,
			LastName:     e.LastName,
			Email:        e.Email,
			PhoneNumber:  e.PhoneNumber,
			DepartmentID: e.DepartmentID,
			Position:     e.Position,
			HireDate:     e.HireDate,
			Salary:       nullDecimal(e.Salary),
			IsActive:     e.IsActive,
			UpdatedAt:    e.UpdatedAt,
		})
		if err != nil {
			return mapWriteError("update employee", err)
		}
		if n == 0 {
			return empdomain.ErrEmployeeNotFound
		}
		return r.publishChanged(ctx, tx, domainevents.TopicEmployeeUpdated, e)
	})
}

// Delete removes the row and publishes employee.deleted in the same transaction.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteEmployee(ctx, id)
		if err != nil {
			return fmt.Errorf("delete employee: %w", err)
		}
		if n == 0 {
			return empdomain.ErrEmployeeNotFound
		}
		if r.bus == nil {
			return nil
		}
		evt := domainevents.EmployeeDeletedEvent{
			EventID:    uuid.New(),
			Version:    domainevents.EventVersion,
			EmployeeID: id,
			OccurredAt: time.Now().UTC(),
		}
		return r.bus.PublishTx(ctx, tx, domainevents.TopicEmployeeDeleted, evt.EventID.String(), evt.Version, evt)
	})
}

func (r *EmployeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := db.New(r.db.DB()).EmployeeExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check employee exists: %w", err)
	}
	return ok, nil
}

func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ok, err := db.New(r.db.DB()).EmployeeExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check employee email: %w", err)
	}
	return ok, nil
}

func (r *EmployeeRepository) publishChanged(ctx context.Context, tx *sql.Tx, topic string, e *models.Employee) error {
	if r.bus == nil {
		return nil
	}
	evt := domainevents.EmployeeChangedEvent{
		EventID:      uuid.New(),
		Version:      domainevents.EventVersion,
		EmployeeID:   e.ID,
		Email:        e.Email,
		DepartmentID: e.DepartmentID,
		IsActive:     e.IsActive,
		OccurredAt:   e.UpdatedAt,
	}
	if err := r.bus.PublishTx(ctx, tx, topic, evt.EventID.String(), evt.Version, evt); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// mapWriteError turns a violation of employees_email_key into ErrEmployeeAlreadyExists.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w with that email", empdomain.ErrEmployeeAlreadyExists)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func rowOrNotFound(row db.Employee, err error) (*models.Employee, error) {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, empdomain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("query employee: %w", err)
	}
	return rowToEmployee(row), nil
}

func rowsToEmployees(rows []db.Employee, err error) ([]*models.Employee, error) {
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	out := make([]*models.Employee, len(rows))
	for i, row := range rows {
		out[i] = rowToEmployee(row)
	}
	return out, nil
}

func rowToEmployee(row db.Employee) *models.Employee {
	var salary *decimal.Decimal
	if row.Salary.Valid {
		salary = &row.Salary.Decimal
	}
	return &models.Employee{
		ID:           row.ID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		PhoneNumber:  row.PhoneNumber,
		DepartmentID: row.DepartmentID,
		Position:     row.Position,
		HireDate:     row.HireDate.UTC(),
		Salary:       salary,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
