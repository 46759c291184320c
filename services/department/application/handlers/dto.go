package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/bizservices/services/department/domain/models"
)

// DepartmentRequest is the request body for POST and PUT /departments.
type DepartmentRequest struct {
	Name         string           `json:"name"         validate:"required,notblank,max=100" example:"Engineering"`
	Code         string           `json:"code"         validate:"required,notblank,max=10"  example:"ENG"`
	Description  *string          `json:"description"  validate:"omitempty,max=500"          example:"Builds the product"`
	ManagerName  *string          `json:"managerName"  validate:"omitempty,max=100"          example:"Ada Lovelace"`
	ManagerEmail *string          `json:"managerEmail" validate:"omitempty,max=100"          example:"ada@example.com"`
	Location     *string          `json:"location"     validate:"omitempty,max=200"          example:"Berlin"`
	Budget       *decimal.Decimal `json:"budget"       validate:"omitempty,decimal=15 2" swaggertype:"number" example:"150000.00"`
	IsActive     *bool            `json:"isActive"     example:"true"`
} // @name DepartmentRequest

// DepartmentResponse is the JSON representation of a department.
type DepartmentResponse struct {
	ID           int64            `json:"id"           example:"1"`
	Name         string           `json:"name"         example:"Engineering"`
	Code         string           `json:"code"         example:"ENG"`
	Description  *string          `json:"description"  example:"Builds the product"`
	ManagerName  *string          `json:"managerName"  example:"Ada Lovelace"`
	ManagerEmail *string          `json:"managerEmail" example:"ada@example.com"`
	Location     *string          `json:"location"     example:"Berlin"`
	Budget       *decimal.Decimal `json:"budget"       swaggertype:"number" example:"150000.00"`
	IsActive     bool             `json:"isActive"     example:"true"`
	CreatedAt    time.Time        `json:"createdAt"    example:"2024-01-15T10:30:00Z"`
	UpdatedAt    time.Time        `json:"updatedAt"    example:"2024-01-15T10:30:00Z"`
} // @name DepartmentResponse

// CountResponse carries a single count.
type CountResponse struct {
	Count int64 `json:"count" example:"3"`
} // @name DepartmentCountResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"department not found with id 7"`
} // @name DepartmentErrorResponse

// ValidationErrorResponse is returned when the request body fails validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name DepartmentValidationErrorResponse

func (req *DepartmentRequest) input() models.DepartmentInput {
	return models.DepartmentInput{
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
		ManagerName:  req.ManagerName,
		ManagerEmail: req.ManagerEmail,
		Location:     req.Location,
		Budget:       req.Budget,
		IsActive:     req.IsActive,
	}
}

func toResponse(d *models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:           d.ID,
		Name:         d.Name,
		Code:         d.Code,
		Description:  d.Description,
		ManagerName:  d.ManagerName,
		ManagerEmail: d.ManagerEmail,
		Location:     d.Location,
		Budget:       d.Budget,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toResponses(ds []*models.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, toResponse(d))
	}
	return out
}
