package handlers

import (
	"net/http"

	"github.com/ghuser/bizservices/pkg/errhttp"
	"github.com/ghuser/bizservices/pkg/httpx"
	appsvcs "github.com/ghuser/bizservices/services/order/application/services"
	"github.com/ghuser/bizservices/services/order/domain/models"
)

// ReadOrderHandler handles the lookup, list and statistics endpoints.
type ReadOrderHandler struct {
	svc *appsvcs.Services
}

// NewReadOrderHandler returns a ReadOrderHandler backed by the given services.
func NewReadOrderHandler(svc *appsvcs.Services) *ReadOrderHandler {
	return &ReadOrderHandler{svc: svc}
}

// ByID returns one order with its items.
//
//	@Summary	Get order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order ID"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (h *ReadOrderHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	o, err := h.svc.Order.GetByID(r.Context(), id)
	h.one(w, r, o, err)
}

// ByOrderNumber returns the order with an order number.
//
//	@Summary	Get order by order number
//	@Tags		orders
//	@Produce	json
//	@Param		orderNumber	path		string	true	"Order number"
//	@Success	200			{object}	OrderResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/orders/order-number/{orderNumber} [get]
func (h *ReadOrderHandler) ByOrderNumber(w http.ResponseWriter, r *http.Request) {
	number, err := httpx.PathString(r, "orderNumber")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	o, err := h.svc.Order.GetByOrderNumber(r.Context(), number)
	h.one(w, r, o, err)
}

// All lists every order.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	OrderResponse
//	@Router		/orders [get]
func (h *ReadOrderHandler) All(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Order.List(r.Context())
	h.many(w, r, orders, err)
}

// ByCustomer lists the orders of a customer email.
//
//	@Summary	List orders by customer
//	@Tags		orders
//	@Produce	json
//	@Param		email	path	string	true	"Customer email"
//	@Success	200		{array}	OrderResponse
//	@Router		/orders/customer/{email} [get]
func (h *ReadOrderHandler) ByCustomer(w http.ResponseWriter, r *http.Request) {
	email, err := httpx.PathString(r, "email")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	orders, err := h.svc.Order.ListByCustomerEmail(r.Context(), email)
	h.many(w, r, orders, err)
}

// ByCustomerAndStatus lists the orders of a customer email in a status.
//
//	@Summary	List orders by customer and status
//	@Tags		orders
//	@Produce	json
//	@Param		email	path		string	true	"Customer email"
//	@Param		status	path		string	true	"Status"	Enums(PENDING, CONFIRMED, SHIPPED, DELIVERED, CANCELLED)
//	@Success	200		{array}		OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders/customer/{email}/status/{status} [get]
func (h *ReadOrderHandler) ByCustomerAndStatus(w http.ResponseWriter, r *http.Request) {
	email, err := httpx.PathString(r, "email")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	status, err := pathStatus(r)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	orders, err := h.svc.Order.ListByCustomerEmailAndStatus(r.Context(), email, status)
	h.many(w, r, orders, err)
}

// ByStatus lists the orders in a status.
//
//	@Summary	List orders by status
//	@Tags		orders
//	@Produce	json
//	@Param		status	path		string	true	"Status"	Enums(PENDING, CONFIRMED, SHIPPED, DELIVERED, CANCELLED)
//	@Success	200		{array}		OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders/status/{status} [get]
func (h *ReadOrderHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := pathStatus(r)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	orders, err := h.svc.Order.ListByStatus(r.Context(), status)
	h.many(w, r, orders, err)
}

// DateRange lists orders created between startDate and endDate inclusive.
//
//	@Summary	List orders by creation date range
//	@Tags		orders
//	@Produce	json
//	@Param		startDate	query		string	true	"ISO-8601 date-time"
//	@Param		endDate		query		string	true	"ISO-8601 date-time"
//	@Success	200			{array}		OrderResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/orders/date-range [get]
func (h *ReadOrderHandler) DateRange(w http.ResponseWriter, r *http.Request) {
	start, err := httpx.QueryDateTime(r, "startDate")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	end, err := httpx.QueryDateTime(r, "endDate")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	orders, err := h.svc.Order.ListByDateRange(r.Context(), start, end)
	h.many(w, r, orders, err)
}

// Search lists orders whose customer name contains customerName.
//
//	@Summary	Search orders by customer name
//	@Tags		orders
//	@Produce	json
//	@Param		customerName	query		string	true	"Name fragment, case-insensitive"
//	@Success	200				{array}		OrderResponse
//	@Failure	400				{object}	ErrorResponse
//	@Router		/orders/search [get]
func (h *ReadOrderHandler) Search(w http.ResponseWriter, r *http.Request) {
	name, err := httpx.QueryString(r, "customerName")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	orders, err := h.svc.Order.SearchByCustomerName(r.Context(), name)
	h.many(w, r, orders, err)
}

// Statistics counts orders overall and per status.
//
//	@Summary	Order statistics
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	StatisticsResponse
//	@Router		/orders/statistics [get]
func (h *ReadOrderHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Order.Statistics(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toStatisticsResponse(stats))
}

func pathStatus(r *http.Request) (models.OrderStatus, error) {
	raw, err := httpx.PathString(r, "status")
	if err != nil {
		return "", err
	}
	return models.ParseOrderStatus(raw)
}

func (h *ReadOrderHandler) one(w http.ResponseWriter, r *http.Request, o *models.Order, err error) {
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(o))
}

func (h *ReadOrderHandler) many(w http.ResponseWriter, r *http.Request, orders []*models.Order, err error) {
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponses(orders))
}
