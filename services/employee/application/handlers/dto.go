package handlers

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	pkgvalidator "github.com/ghuser/bizservices/pkg/validator"
	"github.com/ghuser/bizservices/services/employee/domain/models"
)

// EmployeeRequest is the request body for POST and PUT /employees.
type EmployeeRequest struct {
	FirstName    string           `json:"firstName"    validate:"required,notblank,max=100"                 example:"Ada"`
	LastName     string           `json:"lastName"     validate:"required,notblank,max=100"                 example:"Lovelace"`
	Email        string           `json:"email"        validate:"required,max=255,email"                    example:"ada@example.com"`
	PhoneNumber  string           `json:"phoneNumber"  validate:"required,notblank,max=50"                  example:"+44 20 7946 0000"`
	DepartmentID *int64           `json:"departmentId" validate:"required"                                    example:"1"`
	Position     string           `json:"position"     validate:"required,notblank,max=100"                 example:"Engineer"`
	HireDate     string           `json:"hireDate"     validate:"required,datetime=2006-01-02,pastorpresent" example:"2021-06-01"`
	Salary       *decimal.Decimal `json:"salary"       validate:"omitempty,decimal=15 2" swaggertype:"number" example:"85000.00"`
	IsActive     *bool            `json:"isActive"     example:"true"`
} // @name EmployeeRequest

// EmployeeResponse is the JSON representation of an employee.
type EmployeeResponse struct {
	ID           int64            `json:"id"           example:"1"`
	FirstName    string           `json:"firstName"    example:"Ada"`
	LastName     string           `json:"lastName"     example:"Lovelace"`
	Email        string           `json:"email"        example:"ada@example.com"`
	PhoneNumber  string           `json:"phoneNumber"  example:"+44 20 7946 0000"`
	DepartmentID int64            `json:"departmentId" example:"1"`
	Position     string           `json:"position"     example:"Engineer"`
	HireDate     string           `json:"hireDate"     example:"2021-06-01"`
	Salary       *decimal.Decimal `json:"salary"       swaggertype:"number" example:"85000.00"`
	IsActive     bool             `json:"isActive"     example:"true"`
	CreatedAt    time.Time        `json:"createdAt"    example:"2024-01-15T10:30:00Z"`
	UpdatedAt    time.Time        `json:"updatedAt"    example:"2024-01-15T10:30:00Z"`
} // @name EmployeeResponse

// CountResponse carries a single count.
type CountResponse struct {
	Count int64 `json:"count" example:"12"`
} // @name EmployeeCountResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"employee not found with id 7"`
} // @name EmployeeErrorResponse

// ValidationErrorResponse is returned when the request body fails validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name EmployeeValidationErrorResponse

// input converts a validated request. HireDate has already passed the
// datetime tag, so a parse failure here is a programming error.
func (req *EmployeeRequest) input() (models.EmployeeInput, error) {
	hired, err := time.Parse(pkgvalidator.DateLayout, req.HireDate)
	if err != nil {
		return models.EmployeeInput{}, fmt.Errorf("parse hire date: %w", err)
	}
	return models.EmployeeInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		DepartmentID: *req.DepartmentID,
		Position:     req.Position,
		HireDate:     hired,
		Salary:       req.Salary,
		IsActive:     req.IsActive,
	}, nil
}

func toResponse(e *models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
		DepartmentID: e.DepartmentID,
		Position:     e.Position,
		HireDate:     e.HireDate.Format(pkgvalidator.DateLayout),
		Salary:       e.Salary,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toResponses(es []*models.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(es))
	for _, e := range es {
		out = append(out, toResponse(e))
	}
	return out
}
