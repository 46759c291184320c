package repositories

import (
	"context"

	"github.com/ghuser/bizservices/services/department/domain/models"
)

// DepartmentRepository is the persistence interface for the Department aggregate.
// The domain layer owns this interface; infrastructure implements it.
// List methods return departments ordered by id and never return nil on success.
type DepartmentRepository interface {
	// Save inserts d and assigns d.ID. Returns ErrDepartmentAlreadyExists when
	// the name or code is taken.
	Save(ctx context.Context, d *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByCode(ctx context.Context, code string) (*models.Department, error)

	FindAll(ctx context.Context) ([]*models.Department, error)
	FindByLocation(ctx context.Context, location string) ([]*models.Department, error)
	FindByActive(ctx context.Context, active bool) ([]*models.Department, error)
	FindByManagerEmail(ctx context.Context, email string) ([]*models.Department, error)
	// SearchByName matches departments whose name contains fragment, ignoring case.
	SearchByName(ctx context.Context, fragment string) ([]*models.Department, error)
	CountActive(ctx context.Context) (int64, error)

	// Update replaces every mutable column of the row identified by d.ID.
	Update(ctx context.Context, d *models.Department) error
	Delete(ctx context.Context, id int64) error

	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
