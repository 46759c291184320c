// Package memory holds an in-process DepartmentRepository. It enforces the
// same unique constraints as the PostgreSQL schema and is used by tests and
// local runs without a database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	deptdomain "github.com/ghuser/bizservices/services/department/domain"
	"github.com/ghuser/bizservices/services/department/domain/models"
)

// DepartmentRepository implements repositories.DepartmentRepository in memory.
type DepartmentRepository struct {
	mu     sync.RWMutex
	rows   map[int64]models.Department
	nextID int64
}

// NewDepartmentRepository returns an empty repository whose first id is 1.
func NewDepartmentRepository() *DepartmentRepository {
	return &DepartmentRepository{rows: make(map[int64]models.Department)}
}

func (r *DepartmentRepository) Save(_ context.Context, d *models.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflicts(0, d) {
		return deptdomain.ErrDepartmentAlreadyExists
	}
	r.nextID++
	d.ID = r.nextID
	r.rows[d.ID] = *d
	return nil
}

func (r *DepartmentRepository) GetByID(_ context.Context, id int64) (*models.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, deptdomain.ErrDepartmentNotFound
	}
	return &row, nil
}

func (r *DepartmentRepository) GetByCode(ctx context.Context, code string) (*models.Department, error) {
	found := r.filter(func(d *models.Department) bool { return d.Code == code })
	if len(found) == 0 {
		return nil, deptdomain.ErrDepartmentNotFound
	}
	return found[0], nil
}

func (r *DepartmentRepository) FindAll(_ context.Context) ([]*models.Department, error) {
	return r.filter(func(*models.Department) bool { return true }), nil
}

func (r *DepartmentRepository) FindByLocation(_ context.Context, location string) ([]*models.Department, error) {
	return r.filter(func(d *models.Department) bool { return d.Location != nil && *d.Location == location }), nil
}

func (r *DepartmentRepository) FindByActive(_ context.Context, active bool) ([]*models.Department, error) {
	return r.filter(func(d *models.Department) bool { return d.IsActive == active }), nil
}

func (r *DepartmentRepository) FindByManagerEmail(_ context.Context, email string) ([]*models.Department, error) {
	return r.filter(func(d *models.Department) bool { return d.ManagerEmail != nil && *d.ManagerEmail == email }), nil
}

func (r *DepartmentRepository) SearchByName(_ context.Context, fragment string) ([]*models.Department, error) {
	needle := strings.ToLower(fragment)
	return r.filter(func(d *models.Department) bool { return strings.Contains(strings.ToLower(d.Name), needle) }), nil
}

func (r *DepartmentRepository) CountActive(ctx context.Context) (int64, error) {
	active, _ := r.FindByActive(ctx, true)
	return int64(len(active)), nil
}

func (r *DepartmentRepository) Update(_ context.Context, d *models.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[d.ID]; !ok {
		return deptdomain.ErrDepartmentNotFound
	}
	if r.conflicts(d.ID, d) {
		return deptdomain.ErrDepartmentAlreadyExists
	}
	r.rows[d.ID] = *d
	return nil
}

func (r *DepartmentRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return deptdomain.ErrDepartmentNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *DepartmentRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *DepartmentRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	return len(r.filter(func(d *models.Department) bool { return d.Name == name })) > 0, nil
}

func (r *DepartmentRepository) ExistsByCode(_ context.Context, code string) (bool, error) {
	return len(r.filter(func(d *models.Department) bool { return d.Code == code })) > 0, nil
}

// conflicts reports whether another row already uses d's name or code.
// Callers must hold mu.
func (r *DepartmentRepository) conflicts(selfID int64, d *models.Department) bool {
	for id, row := range r.rows {
		if id != selfID && (row.Name == d.Name || row.Code == d.Code) {
			return true
		}
	}
	return false
}

// filter returns copies of matching rows ordered by id.
func (r *DepartmentRepository) filter(match func(*models.Department) bool) []*models.Department {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Department, 0, len(r.rows))
	for _, row := range r.rows {
		if match(&row) {
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
