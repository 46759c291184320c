package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department is the aggregate for this bounded context. Name and Code are
// unique across all departments.
type Department struct {
	ID           int64
	Name         string
	Code         string
	Description  *string
	ManagerName  *string
	ManagerEmail *string
	Location     *string
	Budget       *decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DepartmentInput carries every caller-controlled field of a Department.
// A nil IsActive means active.
type DepartmentInput struct {
	Name         string
	Code         string
	Description  *string
	ManagerName  *string
	ManagerEmail *string
	Location     *string
	Budget       *decimal.Decimal
	IsActive     *bool
}

// NewDepartment builds an unsaved Department from in. Both timestamps are set to now.
func NewDepartment(in DepartmentInput, now time.Time) *Department {
	d := &Department{CreatedAt: now}
	d.Replace(in, now)
	return d
}

// Replace overwrites every mutable field with in and stamps UpdatedAt.
// ID and CreatedAt are left untouched.
func (d *Department) Replace(in DepartmentInput, now time.Time) {
	d.Name = in.Name
	d.Code = in.Code
	d.Description = in.Description
	d.ManagerName = in.ManagerName
	d.ManagerEmail = in.ManagerEmail
	d.Location = in.Location
	d.Budget = in.Budget
	d.IsActive = in.IsActive == nil || *in.IsActive
	d.UpdatedAt = now
}
