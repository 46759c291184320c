// Package memory holds an in-process EmployeeRepository with the same unique
// email constraint as the PostgreSQL schema.
package memory

import (
	"context"
	"sort"
	"sync"

	empdomain "github.com/ghuser/bizservices/services/employee/domain"
	"github.com/ghuser/bizservices/services/employee/domain/models"
)

// EmployeeRepository implements repositories.EmployeeRepository in memory.
type EmployeeRepository struct {
	mu     sync.RWMutex
	rows   map[int64]models.Employee
	nextID int64
}

// NewEmployeeRepository returns an empty repository whose first id is 1.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{rows: make(map[int64]models.Employee)}
}

func (r *EmployeeRepository) Save(_ context.Context, e *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(0, e.Email) {
		return empdomain.ErrEmployeeAlreadyExists
	}
	r.nextID++
	e.ID = r.nextID
	r.rows[e.ID] = *e
	return nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id int64) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, empdomain.ErrEmployeeNotFound
	}
	return &row, nil
}

func (r *EmployeeRepository) GetByEmail(_ context.Context, email string) (*models.Employee, error) {
	found := r.filter(func(e *models.Employee) bool { return e.Email == email })
	if len(found) == 0 {
		return nil, empdomain.ErrEmployeeNotFound
	}
	return found[0], nil
}

func (r *EmployeeRepository) FindAll(_ context.Context) ([]*models.Employee, error) {
	return r.filter(func(*models.Employee) bool { return true }), nil
}

func (r *EmployeeRepository) FindByDepartmentID(_ context.Context, departmentID int64) ([]*models.Employee, error) {
	return r.filter(func(e *models.Employee) bool { return e.DepartmentID == departmentID }), nil
}

func (r *EmployeeRepository) FindByActive(_ context.Context, active bool) ([]*models.Employee, error) {
	return r.filter(func(e *models.Employee) bool { return e.IsActive == active }), nil
}

func (r *EmployeeRepository) FindByPosition(_ context.Context, position string) ([]*models.Employee, error) {
	return r.filter(func(e *models.Employee) bool { return e.Position == position }), nil
}

func (r *EmployeeRepository) FindByName(_ context.Context, firstName, lastName string) ([]*models.Employee, error) {
	return r.filter(func(e *models.Employee) bool { return e.FirstName == firstName && e.LastName == lastName }), nil
}

func (r *EmployeeRepository) CountByDepartmentID(ctx context.Context, departmentID int64) (int64, error) {
	found, _ := r.FindByDepartmentID(ctx, departmentID)
	return int64(len(found)), nil
}

func (r *EmployeeRepository) Update(_ context.Context, e *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[e.ID]; !ok {
		return empdomain.ErrEmployeeNotFound
	}
	if r.emailTaken(e.ID, e.Email) {
		return empdomain.ErrEmployeeAlreadyExists
	}
	r.rows[e.ID] = *e
	return nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return empdomain.ErrEmployeeNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *EmployeeRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *EmployeeRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.emailTaken(0, email), nil
}

// emailTaken reports whether a row other than selfID uses email. Callers must hold mu.
func (r *EmployeeRepository) emailTaken(selfID int64, email string) bool {
	for id, row := range r.rows {
		if id != selfID && row.Email == email {
			return true
		}
	}
	return false
}

// filter returns copies of matching rows ordered by id.
func (r *EmployeeRepository) filter(match func(*models.Employee) bool) []*models.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Employee, 0, len(r.rows))
	for _, row := range r.rows {
		if match(&row) {
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
