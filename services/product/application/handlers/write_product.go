package handlers

import (
	"net/http"

	"github.com/ghuser/bizservices/pkg/errhttp"
	"github.com/ghuser/bizservices/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizservices/pkg/validator"
	appsvcs "github.com/ghuser/bizservices/services/product/application/services"
)

// WriteProductHandler handles the endpoints that change products.
type WriteProductHandler struct {
	svc *appsvcs.Services
}

// NewWriteProductHandler returns a WriteProductHandler backed by the given services.
func NewWriteProductHandler(svc *appsvcs.Services) *WriteProductHandler {
	return &WriteProductHandler{svc: svc}
}

// Create adds a product.
//
//	@Summary		Create product
//	@Description	Creates a product. sku is generated as SKU-XXXXXXXX when omitted.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ProductRequest	true	"Product to create"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/products [post]
func (h *WriteProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}
	p, err := h.svc.Product.Create(r.Context(), req.input())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.Created(w, r, p.ID, toResponse(p))
}

// Replace overwrites a product.
//
//	@Summary		Update product
//	@Description	Full replace. An omitted sku keeps the stored one.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Product ID"
//	@Param			request	body		ProductRequest	true	"Replacement product"
//	@Success		200		{object}	ProductResponse
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (h *WriteProductHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}
	p, err := h.svc.Product.Update(r.Context(), id, req.input())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(p))
}

// UpdateQuantity sets only the stock level.
//
//	@Summary	Update product quantity
//	@Tags		products
//	@Produce	json
//	@Param		id			path		int	true	"Product ID"
//	@Param		quantity	query		int	true	"New quantity"
//	@Success	200			{object}	ProductResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/{id}/quantity [patch]
func (h *WriteProductHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	quantity, err := httpx.QueryInt(r, "quantity")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	p, err := h.svc.Product.UpdateQuantity(r.Context(), id, quantity)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(p))
}

// Delete removes a product.
//
//	@Summary	Delete product
//	@Tags		products
//	@Param		id	path	int	true	"Product ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (h *WriteProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	if err := h.svc.Product.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
