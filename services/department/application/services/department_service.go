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
	deptdomain "github.com/ghuser/bizservices/services/department/domain"
	"github.com/ghuser/bizservices/services/department/domain/models"
	"github.com/ghuser/bizservices/services/department/domain/repositories"
)

var tracer = otel.Tracer("github.com/ghuser/bizservices/services/department")

// DepartmentService implements the department use cases. Events are published
// by the repository; GetByID is served from the Redis read model when possible.
type DepartmentService struct {
	repo  repositories.DepartmentRepository
	cache *pkgcache.EntityCache[models.Department]
	log   logger.Logger
	now   func() time.Time
}

// NewDepartmentService returns a DepartmentService. cache may be nil.
func NewDepartmentService(repo repositories.DepartmentRepository, cache *pkgcache.EntityCache[models.Department], log logger.Logger) *DepartmentService {
	return &DepartmentService{
		repo:  repo,
		cache: cache,
		log:   log.With("context", "department"),
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Create checks that name and code are free, then inserts a new department.
func (s *DepartmentService) Create(ctx context.Context, in models.DepartmentInput) (_ *models.Department, err error) {
	ctx, span := tracer.Start(ctx, "DepartmentService.Create", trace.WithAttributes(attribute.String("department.code", in.Code)))
	defer endSpan(span, &err)

	if err := s.ensureNameFree(ctx, in.Name); err != nil {
		return nil, err
	}
	if err := s.ensureCodeFree(ctx, in.Code); err != nil {
		return nil, err
	}

	d := models.NewDepartment(in, s.now())
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("save department: %w", err)
	}

	s.log.InfoContext(ctx, "department created", "department_id", d.ID, "code", d.Code)
	return d, nil
}

// GetByID returns the department with id, checking the cache first. A miss is not
// written back; the worker fills the cache from write events.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (_ *models.Department, err error) {
	ctx, span := tracer.Start(ctx, "DepartmentService.GetByID", trace.WithAttributes(attribute.Int64("department.id", id)))
	defer endSpan(span, &err)

	if cached, err := s.cache.Get(ctx, id); err == nil {
		return cached, nil
	} else if !errors.Is(err, redis.Nil) {
		s.log.WarnContext(ctx, "department cache read failed", "department_id", id, "error", err)
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "id", id)
	}

	return d, nil
}

// GetByCode returns the department with the given code.
func (s *DepartmentService) GetByCode(ctx context.Context, code string) (*models.Department, error) {
	s.log.DebugContext(ctx, "fetching department by code", "code", code)
	d, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, notFound(err, "code", code)
	}
	return d, nil
}

// List returns every department.
func (s *DepartmentService) List(ctx context.Context) ([]*models.Department, error) {
	return s.list(ctx, "list departments", s.repo.FindAll)
}

// ListByLocation returns departments at exactly location.
func (s *DepartmentService) ListByLocation(ctx context.Context, location string) ([]*models.Department, error) {
	return s.list(ctx, "list departments by location", func(ctx context.Context) ([]*models.Department, error) {
		return s.repo.FindByLocation(ctx, location)
	})
}

// ListActive returns departments whose active flag is set.
func (s *DepartmentService) ListActive(ctx context.Context) ([]*models.Department, error) {
	return s.list(ctx, "list active departments", func(ctx context.Context) ([]*models.Department, error) {
		return s.repo.FindByActive(ctx, true)
	})
}

// ListByManagerEmail returns departments managed by email.
func (s *DepartmentService) ListByManagerEmail(ctx context.Context, email string) ([]*models.Department, error) {
	return s.list(ctx, "list departments by manager", func(ctx context.Context) ([]*models.Department, error) {
		return s.repo.FindByManagerEmail(ctx, email)
	})
}

// SearchByName returns departments whose name contains fragment, ignoring case.
func (s *DepartmentService) SearchByName(ctx context.Context, fragment string) ([]*models.Department, error) {
	return s.list(ctx, "search departments", func(ctx context.Context) ([]*models.Department, error) {
		return s.repo.SearchByName(ctx, fragment)
	})
}

// CountActive returns the number of active departments.
func (s *DepartmentService) CountActive(ctx context.Context) (int64, error) {
	n, err := s.repo.CountActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("count active departments: %w", err)
	}
	return n, nil
}

// Update fully replaces the department with id. Name and code are
// re-checked for uniqueness only when they change.
func (s *DepartmentService) Update(ctx context.Context, id int64, in models.DepartmentInput) (_ *models.Department, err error) {
	ctx, span := tracer.Start(ctx, "DepartmentService.Update", trace.WithAttributes(attribute.Int64("department.id", id)))
	defer endSpan(span, &err)

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "id", id)
	}
	if d.Name != in.Name {
		if err := s.ensureNameFree(ctx, in.Name); err != nil {
			return nil, err
		}
	}
	if d.Code != in.Code {
		if err := s.ensureCodeFree(ctx, in.Code); err != nil {
			return nil, err
		}
	}

	d.Replace(in, s.now())
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, notFound(err, "id", id)
	}
	s.evict(ctx, id)

	s.log.InfoContext(ctx, "department updated", "department_id", id)
	return d, nil
}

// Delete removes the department with id.
func (s *DepartmentService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracer.Start(ctx, "DepartmentService.Delete", trace.WithAttributes(attribute.Int64("department.id", id)))
	defer endSpan(span, &err)

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check department: %w", err)
	}
	if !exists {
		return deptdomain.NotFoundBy("id", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "id", id)
	}
	s.evict(ctx, id)

	s.log.InfoContext(ctx, "department deleted", "department_id", id)
	return nil
}

// WarmCache loads id from the store into the cache. A department that no
// longer exists is evicted instead. Used by the event worker.
func (s *DepartmentService) WarmCache(ctx context.Context, id int64) error {
	d, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, deptdomain.ErrDepartmentNotFound) {
		return s.cache.Delete(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("load department %d: %w", id, err)
	}
	return s.cache.Set(ctx, id, d)
}

// EvictCache drops id from the cache. Used by the event worker.
func (s *DepartmentService) EvictCache(ctx context.Context, id int64) error {
	return s.cache.Delete(ctx, id)
}

func (s *DepartmentService) ensureNameFree(ctx context.Context, name string) error {
	taken, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return fmt.Errorf("check department name: %w", err)
	}
	if taken {
		return deptdomain.AlreadyExistsBy("name", name)
	}
	return nil
}

func (s *DepartmentService) ensureCodeFree(ctx context.Context, code string) error {
	taken, err := s.repo.ExistsByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("check department code: %w", err)
	}
	if taken {
		return deptdomain.AlreadyExistsBy("code", code)
	}
	return nil
}

func (s *DepartmentService) list(ctx context.Context, op string, find func(context.Context) ([]*models.Department, error)) ([]*models.Department, error) {
	s.log.DebugContext(ctx, op)
	ds, err := find(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ds, nil
}

func (s *DepartmentService) evict(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "department cache evict failed", "department_id", id, "error", err)
	}
}

// notFound replaces a bare ErrDepartmentNotFound with one naming the lookup.
func notFound(err error, field string, value any) error {
	if errors.Is(err, deptdomain.ErrDepartmentNotFound) {
		return deptdomain.NotFoundBy(field, value)
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
