package handlers

import (
	"net/http"

	"github.com/ghuser/bizservices/pkg/errhttp"
	"github.com/ghuser/bizservices/pkg/httpx"
	appsvcs "github.com/ghuser/bizservices/services/product/application/services"
	"github.com/ghuser/bizservices/services/product/domain/models"
)

// ReadProductHandler handles the lookup and list endpoints.
type ReadProductHandler struct {
	svc *appsvcs.Services
}

// NewReadProductHandler returns a ReadProductHandler backed by the given services.
func NewReadProductHandler(svc *appsvcs.Services) *ReadProductHandler {
	return &ReadProductHandler{svc: svc}
}

// ByID returns one product.
//
//	@Summary	Get product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (h *ReadProductHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	p, err := h.svc.Product.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(p))
}

// BySKU returns the product with a SKU.
//
//	@Summary	Get product by SKU
//	@Tags		products
//	@Produce	json
//	@Param		sku	path		string	true	"SKU"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/sku/{sku} [get]
func (h *ReadProductHandler) BySKU(w http.ResponseWriter, r *http.Request) {
	sku, err := httpx.PathString(r, "sku")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	p, err := h.svc.Product.GetBySKU(r.Context(), sku)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(p))
}

// All lists every product.
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/products [get]
func (h *ReadProductHandler) All(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Product.List(r.Context())
	writeList(w, r, products, err)
}

// ByCategory lists the products in a category.
//
//	@Summary	List products by category
//	@Tags		products
//	@Produce	json
//	@Param		category	path	string	true	"Category"
//	@Success	200			{array}	ProductResponse
//	@Router		/products/category/{category} [get]
func (h *ReadProductHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := httpx.PathString(r, "category")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	products, err := h.svc.Product.ListByCategory(r.Context(), category)
	writeList(w, r, products, err)
}

// InStock lists products with a positive quantity.
//
//	@Summary	List products in stock
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/products/in-stock [get]
func (h *ReadProductHandler) InStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Product.ListInStock(r.Context())
	writeList(w, r, products, err)
}

// Search lists products whose name contains the name query parameter.
//
//	@Summary	Search products by name
//	@Tags		products
//	@Produce	json
//	@Param		name	query		string	true	"Name fragment, case-insensitive"
//	@Success	200		{array}		ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/products/search [get]
func (h *ReadProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	name, err := httpx.QueryString(r, "name")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	products, err := h.svc.Product.SearchByName(r.Context(), name)
	writeList(w, r, products, err)
}

// PriceRange lists products priced between minPrice and maxPrice inclusive.
//
//	@Summary	List products by price range
//	@Tags		products
//	@Produce	json
//	@Param		minPrice	query		number	true	"Lower bound, inclusive"
//	@Param		maxPrice	query		number	true	"Upper bound, inclusive"
//	@Success	200			{array}		ProductResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/products/price-range [get]
func (h *ReadProductHandler) PriceRange(w http.ResponseWriter, r *http.Request) {
	low, err := httpx.QueryDecimal(r, "minPrice")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	high, err := httpx.QueryDecimal(r, "maxPrice")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	products, err := h.svc.Product.ListByPriceRange(r.Context(), low, high)
	writeList(w, r, products, err)
}

func writeList(w http.ResponseWriter, r *http.Request, products []*models.Product, err error) {
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponses(products))
}
