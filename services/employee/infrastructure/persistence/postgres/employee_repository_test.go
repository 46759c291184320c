package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/bizservices/pkg/database"
	"github.com/ghuser/bizservices/pkg/logger"
	empdomain "github.com/ghuser/bizservices/services/employee/domain"
	"github.com/ghuser/bizservices/services/employee/domain/models"
)

func TestMapWriteError(t *testing.T) {
	err := mapWriteError("insert employee", &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"})
	if !errors.Is(err, empdomain.ErrEmployeeAlreadyExists) {
		t.Fatalf("expected ErrEmployeeAlreadyExists, got %v", err)
	}

	err = mapWriteError("insert employee", &pgconn.PgError{Code: "22007"})
	if errors.Is(err, empdomain.ErrEmployeeAlreadyExists) {
		t.Fatalf("only unique violations map to AlreadyExists, got %v", err)
	}
}

// Integration test: skipped unless TEST_DATABASE_URL points at a migrated database.
func TestEmployeeRepositoryIntegration(t *testing.T) {
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
	if _, err := pool.DB().ExecContext(ctx, `TRUNCATE employees RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	repo := NewEmployeeRepository(pool, nil)
	now := time.Now().UTC().Truncate(time.Microsecond)
	hired := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	e := models.NewEmployee(models.EmployeeInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		PhoneNumber: "+44 20 7946 0000", DepartmentID: 3, Position: "Engineer", HireDate: hired,
	}, now)

	if err := repo.Save(ctx, e); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dup := *e
	if err := repo.Save(ctx, &dup); !errors.Is(err, empdomain.ErrEmployeeAlreadyExists) {
		t.Fatalf("expected ErrEmployeeAlreadyExists, got %v", err)
	}

	got, err := repo.GetByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if !got.HireDate.Equal(hired) {
		t.Fatalf("hire date %v, want %v", got.HireDate, hired)
	}

	byName, err := repo.FindByName(ctx, "Ada", "Lovelace")
	if err != nil || len(byName) != 1 {
		t.Fatalf("FindByName: %v, %d rows", err, len(byName))
	}
	n, err := repo.CountByDepartmentID(ctx, 3)
	if err != nil || n != 1 {
		t.Fatalf("CountByDepartmentID: %v, %d", err, n)
	}

	if err := repo.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, e.ID); !errors.Is(err, empdomain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
