package handlers

import (
	"net/http"

	"github.com/ghuser/bizservices/pkg/errhttp"
	"github.com/ghuser/bizservices/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizservices/pkg/validator"
	appsvcs "github.com/ghuser/bizservices/services/order/application/services"
	"github.com/ghuser/bizservices/services/order/domain/models"
)

// WriteOrderHandler handles the endpoints that change orders.
type WriteOrderHandler struct {
	svc *appsvcs.Services
}

// NewWriteOrderHandler returns a WriteOrderHandler backed by the given services.
func NewWriteOrderHandler(svc *appsvcs.Services) *WriteOrderHandler {
	return &WriteOrderHandler{svc: svc}
}

// Create places an order.
//
//	@Summary		Create order
//	@Description	Creates an order with its items. orderNumber is generated when omitted;
//	@Description	status defaults to PENDING. With at least one item, totalAmount is the sum of item totals.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		OrderRequest	true	"Order to create"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/orders [post]
func (h *WriteOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[OrderRequest](w, r)
	if !ok {
		return
	}
	o, err := h.svc.Order.Create(r.Context(), req.input())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.Created(w, r, o.ID, toResponse(o))
}

// Replace overwrites an order.
//
//	@Summary		Update order
//	@Description	Full replace. Omitted orderNumber, status and orderItems keep their stored values.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Order ID"
//	@Param			request	body		OrderRequest	true	"Replacement order"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/orders/{id} [put]
func (h *WriteOrderHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[OrderRequest](w, r)
	if !ok {
		return
	}
	o, err := h.svc.Order.Update(r.Context(), id, req.input())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(o))
}

// UpdateStatus changes only the status of an order.
//
//	@Summary	Update order status
//	@Tags		orders
//	@Produce	json
//	@Param		id		path		int		true	"Order ID"
//	@Param		status	query		string	true	"New status"	Enums(PENDING, CONFIRMED, SHIPPED, DELIVERED, CANCELLED)
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/orders/{id}/status [patch]
func (h *WriteOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	raw, err := httpx.QueryString(r, "status")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	status, err := models.ParseOrderStatus(raw)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	o, err := h.svc.Order.UpdateStatus(r.Context(), id, status)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(o))
}

// Delete removes an order and its items.
//
//	@Summary	Delete order
//	@Tags		orders
//	@Param		id	path	int	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [delete]
func (h *WriteOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	if err := h.svc.Order.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
