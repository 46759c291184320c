package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the aggregate for this bounded context. Email is unique across
// all employees. DepartmentID refers to a department by value only.
type Employee struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	DepartmentID int64
	Position     string
	HireDate     time.Time
	Salary       *decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmployeeInput carries every caller-controlled field of an Employee.
// A nil IsActive means active.
type EmployeeInput struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	DepartmentID int64
	Position     string
	HireDate     time.Time
	Salary       *decimal.Decimal
	IsActive     *bool
}

// NewEmployee builds an unsaved Employee from in. Both timestamps are set to now.
func NewEmployee(in EmployeeInput, now time.Time) *Employee {
	e := &Employee{CreatedAt: now}
	e.Replace(in, now)
	return e
}

// Replace overwrites every mutable field with in and stamps UpdatedAt.
func (e *Employee) Replace(in EmployeeInput, now time.Time) {
	e.FirstName = in.FirstName
	e.LastName = in.LastName
	e.Email = in.Email
	e.PhoneNumber = in.PhoneNumber
	e.DepartmentID = in.DepartmentID
	e.Position = in.Position
	e.HireDate = in.HireDate
	e.Salary = in.Salary
	e.IsActive = in.IsActive == nil || *in.IsActive
	e.UpdatedAt = now
}

// FullName is "First Last".
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
