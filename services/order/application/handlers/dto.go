package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/bizservices/services/order/domain/models"
)

// OrderRequest is the request body for POST and PUT /orders.
type OrderRequest struct {
	OrderNumber     string             `json:"orderNumber"     validate:"omitempty,max=50"                                            example:"ORD-1A2B3C4D"`
	CustomerName    string             `json:"customerName"    validate:"required,notblank,max=100"                                   example:"Ada Lovelace"`
	CustomerEmail   string             `json:"customerEmail"   validate:"required,max=100,email"                                      example:"ada@example.com"`
	TotalAmount     *decimal.Decimal   `json:"totalAmount"     validate:"required,decimal=10 2"             swaggertype:"number"      example:"25.00"`
	Status          *string            `json:"status"          validate:"omitempty,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED" example:"PENDING"`
	ShippingAddress *string            `json:"shippingAddress" validate:"omitempty,max=500"                                           example:"1 Main St, Springfield"`
	OrderItems      []OrderItemRequest `json:"orderItems"      validate:"omitempty,dive"`
} // @name OrderRequest

// OrderItemRequest is one line of an OrderRequest. Line totals are computed
// by the server.
type OrderItemRequest struct {
	ProductID   int64            `json:"productId"   validate:"required"                          example:"7"`
	ProductName *string          `json:"productName" validate:"omitempty,max=100"                  example:"Widget"`
	Quantity    int              `json:"quantity"    validate:"required,gte=1,lte=2147483647"     example:"2"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"   validate:"required,gte=0,decimal=10 2"       swaggertype:"number" example:"10.00"`
} // @name OrderItemRequest

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID              int64               `json:"id"              example:"1"`
	OrderNumber     string              `json:"orderNumber"     example:"ORD-1A2B3C4D"`
	CustomerName    string              `json:"customerName"    example:"Ada Lovelace"`
	CustomerEmail   string              `json:"customerEmail"   example:"ada@example.com"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"     swaggertype:"number" example:"25.00"`
	Status          string              `json:"status"          example:"PENDING"`
	ShippingAddress *string             `json:"shippingAddress" example:"1 Main St, Springfield"`
	OrderItems      []OrderItemResponse `json:"orderItems"`
	CreatedAt       time.Time           `json:"createdAt"       example:"2024-01-15T10:30:00Z"`
	UpdatedAt       time.Time           `json:"updatedAt"       example:"2024-01-15T10:30:00Z"`
} // @name OrderResponse

// OrderItemResponse is one line of an OrderResponse.
type OrderItemResponse struct {
	ID          int64           `json:"id"          example:"1"`
	ProductID   int64           `json:"productId"   example:"7"`
	ProductName *string         `json:"productName" example:"Widget"`
	Quantity    int             `json:"quantity"    example:"2"`
	UnitPrice   decimal.Decimal `json:"unitPrice"   swaggertype:"number" example:"10.00"`
	TotalPrice  decimal.Decimal `json:"totalPrice"  swaggertype:"number" example:"20.00"`
} // @name OrderItemResponse

// StatisticsResponse counts orders overall and per status.
type StatisticsResponse struct {
	TotalOrders     int64 `json:"totalOrders"     example:"5"`
	PendingOrders   int64 `json:"pendingOrders"   example:"3"`
	ConfirmedOrders int64 `json:"confirmedOrders" example:"0"`
	ShippedOrders   int64 `json:"shippedOrders"   example:"2"`
	DeliveredOrders int64 `json:"deliveredOrders" example:"0"`
	CancelledOrders int64 `json:"cancelledOrders" example:"0"`
} // @name OrderStatisticsResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"order not found with id 7"`
} // @name OrderErrorResponse

// ValidationErrorResponse is returned when the request body fails validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name OrderValidationErrorResponse

func (req *OrderRequest) input() models.OrderInput {
	in := models.OrderInput{
		OrderNumber:     req.OrderNumber,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		TotalAmount:     *req.TotalAmount,
		ShippingAddress: req.ShippingAddress,
	}
	if req.Status != nil {
		st := models.OrderStatus(*req.Status)
		in.Status = &st
	}
	if req.OrderItems != nil {
		in.Items = make([]models.OrderItemInput, len(req.OrderItems))
		for i, it := range req.OrderItems {
			in.Items[i] = models.OrderItemInput{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   *it.UnitPrice,
			}
		}
	}
	return in
}

func toResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		}
	}
	return OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status.String(),
		ShippingAddress: o.ShippingAddress,
		OrderItems:      items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toResponses(orders []*models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toResponse(o))
	}
	return out
}

func toStatisticsResponse(s *models.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalOrders:     s.TotalOrders,
		PendingOrders:   s.PendingOrders,
		ConfirmedOrders: s.ConfirmedOrders,
		ShippedOrders:   s.ShippedOrders,
		DeliveredOrders: s.DeliveredOrders,
		CancelledOrders: s.CancelledOrders,
	}
}
