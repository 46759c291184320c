package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/bizservices/services/product/domain/models"
)

// ProductRequest is the request body for POST and PUT /products.
type ProductRequest struct {
	Name        string           `json:"name"        validate:"required,notblank,max=100"                     example:"Widget"`
	Description *string          `json:"description" validate:"omitempty,max=500"                             example:"A very useful widget"`
	Price       *decimal.Decimal `json:"price"       validate:"required,gte=0.01,decimal=10 2"                swaggertype:"number" example:"9.99"`
	Quantity    *int             `json:"quantity"    validate:"required,gte=-2147483648,lte=2147483647"       example:"100"`
	Category    *string          `json:"category"    validate:"omitempty,max=255"                             example:"tools"`
	SKU         string           `json:"sku"         validate:"omitempty,max=50"                              example:"SKU-1A2B3C4D"`
} // @name ProductRequest

// ProductResponse is the JSON representation of a product.
type ProductResponse struct {
	ID          int64           `json:"id"          example:"1"`
	Name        string          `json:"name"        example:"Widget"`
	Description *string         `json:"description" example:"A very useful widget"`
	Price       decimal.Decimal `json:"price"       swaggertype:"number" example:"9.99"`
	Quantity    int             `json:"quantity"    example:"100"`
	Category    *string         `json:"category"    validate:"omitempty,max=255"                example:"tools"`
	SKU         string          `json:"sku"         example:"SKU-1A2B3C4D"`
	CreatedAt   time.Time       `json:"createdAt"   example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time       `json:"updatedAt"   example:"2024-01-15T10:30:00Z"`
} // @name ProductResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found with id 7"`
} // @name ProductErrorResponse

// ValidationErrorResponse is returned when the request body fails validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name ProductValidationErrorResponse

func (req *ProductRequest) input() models.ProductInput {
	return models.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
		Category:    req.Category,
		SKU:         req.SKU,
	}
}

func toResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		SKU:         p.SKU,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toResponses(products []*models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toResponse(p))
	}
	return out
}
