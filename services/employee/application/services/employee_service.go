package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	pkgcache "github.com/ghuser/bizservices/pkg/cache"
	"github.com/ghuser/bizservices/pkg/logger"
	empdomain "github.com/ghuser/bizservices/services/employee/domain"
	"github.com/ghuser/bizservices/services/employee/domain/models"
	"github.com/ghuser/bizservices/services/employee/domain/repositories"
)

var tracer = otel.Tracer("github.com/ghuser/bizservices/services/employee")

// EmployeeService implements the employee use cases.
type EmployeeService struct {
	repo  repositories.EmployeeRepository
	cache *pkgcache.EntityCache[models.Employee]
	log   logger.Logger
	now   func() time.Time
}

// NewEmployeeService returns an EmployeeService. cache may be nil.
func NewEmployeeService(repo repositories.EmployeeRepository, cache *pkgcache.EntityCache[models.Employee], log logger.Logger) *EmployeeService {
	return &EmployeeService{
		repo:  repo,
		cache: cache,
		log:   log.With("context", "employee"),
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Create checks that the email is free, then inserts a new employee.
func (s *EmployeeService) Create(ctx context.Context, in models.EmployeeInput) (_ *models.Employee, err error) {
	ctx, span := tracer.Start(ctx, "EmployeeService.Create", trace.WithAttributes(attribute.Int64("employee.department_id", in.DepartmentID)))
	defer endSpan(span, &err)

	if err := s.ensureEmailFree(ctx, in.Email); err != nil {
		return nil, err
	}

	e := models.NewEmployee(in, s.now())
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("save employee: %w", err)
	}

	s.log.InfoContext(ctx, "employee created", "employee_id", e.ID, "department_id", e.DepartmentID)
	return e, nil
}

// GetByID returns the employee with id, checking the cache first. A miss is not
// written back; the worker fills the cache from write events.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (_ *models.Employee, err error) {
	ctx, span := tracer.Start(ctx, "EmployeeService.GetByID", trace.WithAttributes(attribute.Int64("employee.id", id)))
	defer endSpan(span, &err)

	cached, err := s.cache.Get(ctx, id)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, redis.Nil):
		s.log.WarnContext(ctx, "employee cache read failed", "employee_id", id, "error", err)
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "id", id)
	}
	return e, nil
}

// GetByEmail returns the employee with email.
func (s *EmployeeService) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	e, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, "email", email)
	}
	return e, nil
}

// List returns every employee.
func (s *EmployeeService) List(ctx context.Context) ([]*models.Employee, error) {
	return wrapList("list employees")(s.repo.FindAll(ctx))
}

// ListByDepartment returns the employees of departmentID.
func (s *EmployeeService) ListByDepartment(ctx context.Context, departmentID int64) ([]*models.Employee, error) {
	return wrapList("list employees by department")(s.repo.FindByDepartmentID(ctx, departmentID))
}

// ListActive returns employees whose active flag is set.
func (s *EmployeeService) ListActive(ctx context.Context) ([]*models.Employee, error) {
	return wrapList("list active employees")(s.repo.FindByActive(ctx, true))
}

// ListByPosition returns employees holding exactly position.
func (s *EmployeeService) ListByPosition(ctx context.Context, position string) ([]*models.Employee, error) {
	return wrapList("list employees by position")(s.repo.FindByPosition(ctx, position))
}

// SearchByName returns employees whose first and last name both match exactly.
func (s *EmployeeService) SearchByName(ctx context.Context, firstName, lastName string) ([]*models.Employee, error) {
	return wrapList("search employees")(s.repo.FindByName(ctx, firstName, lastName))
}

// CountByDepartment returns the number of employees in departmentID.
func (s *EmployeeService) CountByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	n, err := s.repo.CountByDepartmentID(ctx, departmentID)
	if err != nil {
		return 0, fmt.Errorf("count employees by department: %w", err)
	}
	return n, nil
}

// Update fully replaces the employee with id. The email is re-checked for
// uniqueness only when it changes.
func (s *EmployeeService) Update(ctx context.Context, id int64, in models.EmployeeInput) (_ *models.Employee, err error) {
	ctx, span := tracer.Start(ctx, "EmployeeService.Update", trace.WithAttributes(attribute.Int64("employee.id", id)))
	defer endSpan(span, &err)

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "id", id)
	}
	if e.Email != in.Email {
		if err := s.ensureEmailFree(ctx, in.Email); err != nil {
			return nil, err
		}
	}

	e.Replace(in, s.now())
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, notFound(err, "id", id)
	}
	s.evict(ctx, id)

	s.log.InfoContext(ctx, "employee updated", "employee_id", id)
	return e, nil
}

// Delete removes the employee with id.
func (s *EmployeeService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracer.Start(ctx, "EmployeeService.Delete", trace.WithAttributes(attribute.Int64("employee.id", id)))
	defer endSpan(span, &err)

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check employee: %w", err)
	}
	if !exists {
		return empdomain.NotFoundBy("id", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "id", id)
	}
	s.evict(ctx, id)

	s.log.InfoContext(ctx, "employee deleted", "employee_id", id)
	return nil
}

// WarmCache loads id into the cache, or evicts it when the row is gone.
func (s *EmployeeService) WarmCache(ctx context.Context, id int64) error {
	e, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, empdomain.ErrEmployeeNotFound) {
		return s.cache.Delete(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("load employee %d: %w", id, err)
	}
	return s.cache.Set(ctx, id, e)
}

// EvictCache drops id from the cache.
func (s *EmployeeService) EvictCache(ctx context.Context, id int64) error {
	return s.cache.Delete(ctx, id)
}

func (s *EmployeeService) ensureEmailFree(ctx context.Context, email string) error {
	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check employee email: %w", err)
	}
	if taken {
		return empdomain.AlreadyExistsBy("email", email)
	}
	return nil
}

func (s *EmployeeService) evict(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "employee cache evict failed", "employee_id", id, "error", err)
	}
}

// wrapList annotates a repository list error with op.
func wrapList(op string) func([]*models.Employee, error) ([]*models.Employee, error) {
	return func(es []*models.Employee, err error) ([]*models.Employee, error) {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return es, nil
	}
}

func notFound(err error, field string, value any) error {
	if errors.Is(err, empdomain.ErrEmployeeNotFound) {
		return empdomain.NotFoundBy(field, value)
	}
	return err
}

func endSpan(span trace.Span, err *error) {
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
	}
	span.End()
}
