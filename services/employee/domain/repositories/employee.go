package repositories

import (
	"context"

	"github.com/ghuser/bizservices/services/employee/domain/models"
)

// EmployeeRepository is the persistence interface for the Employee aggregate.
// List methods return employees ordered by id and never return nil on success.
type EmployeeRepository interface {
	// Save inserts e and assigns e.ID. Returns ErrEmployeeAlreadyExists when
	// the email is taken.
	Save(ctx context.Context, e *models.Employee) error
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)

	FindAll(ctx context.Context) ([]*models.Employee, error)
	FindByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Employee, error)
	FindByActive(ctx context.Context, active bool) ([]*models.Employee, error)
	FindByPosition(ctx context.Context, position string) ([]*models.Employee, error)
	// FindByName matches first and last name exactly.
	FindByName(ctx context.Context, firstName, lastName string) ([]*models.Employee, error)
	CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error)

	Update(ctx context.Context, e *models.Employee) error
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
