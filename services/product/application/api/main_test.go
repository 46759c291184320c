package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/bizservices/pkg/logger"
	"github.com/ghuser/bizservices/services/product/application/api"
	appsvcs "github.com/ghuser/bizservices/services/product/application/services"
	"github.com/ghuser/bizservices/services/product/infrastructure/persistence/memory"
)

func newRouter() http.Handler {
	svcs := &appsvcs.Services{
		Product: appsvcs.NewProductService(memory.NewProductRepository(), nil, logger.Discard()),
	}
	r := chi.NewRouter()
	api.RegisterRoutes(r, svcs)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

const widget = `{"name":"Widget","price":9.99,"quantity":100}`

func TestProductRoutes_CreateGeneratesSKU(t *testing.T) {
	h := newRouter()

	w := do(t, h, http.MethodPost, "/products", widget)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Widget", created["name"])
	assert.Equal(t, 9.99, created["price"])
	assert.Equal(t, float64(100), created["quantity"])
	assert.Regexp(t, `^SKU-[A-Z0-9]{8}$`, created["sku"])

	w = do(t, h, http.MethodGet, "/products/sku/"+created["sku"].(string), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode[map[string]any](t, w)["id"])
}

func TestProductRoutes_Queries(t *testing.T) {
	h := newRouter()
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/products", widget).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/products",
		`{"name":"Gadget","price":25.50,"quantity":0,"category":"tools"}`).Code)

	tests := []struct {
		target string
		want   int
	}{
		{"/products", 2},
		{"/products/in-stock", 1},
		{"/products/category/tools", 1},
		{"/products/search?name=WIDG", 1},
		{"/products/price-range?minPrice=9.99&maxPrice=25.50", 2},
		{"/products/price-range?minPrice=10&maxPrice=20", 0},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := do(t, h, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Len(t, decode[[]map[string]any](t, w), tt.want)
		})
	}

	w := do(t, h, http.MethodGet, "/products/price-range?minPrice=cheap&maxPrice=20", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductRoutes_PatchQuantity(t *testing.T) {
	h := newRouter()
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/products", widget).Code)

	w := do(t, h, http.MethodPatch, "/products/1/quantity?quantity=7", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(7), decode[map[string]any](t, w)["quantity"])

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPatch, "/products/1/quantity", "").Code)

	w = do(t, h, http.MethodPatch, "/products/1/quantity?quantity=4294967297", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, h, http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(7), decode[map[string]any](t, w)["quantity"])
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPatch, "/products/9/quantity?quantity=1", "").Code)
}

func TestProductRoutes_Validation(t *testing.T) {
	h := newRouter()

	w := do(t, h, http.MethodPost, "/products", `{"price":0.001}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "Validation failed", body["error"])
	fields := body["fields"].(map[string]any)
	assert.Equal(t, "This field is required", fields["name"])
	assert.Equal(t, "Must be greater than or equal to 0.01", fields["price"])
	assert.Equal(t, "This field is required", fields["quantity"])
}

func TestProductRoutes_ConflictReplaceDelete(t *testing.T) {
	h := newRouter()
	const fixed = `{"name":"Widget","price":9.99,"quantity":1,"sku":"SKU-FIXED001"}`
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/products", fixed).Code)

	w := do(t, h, http.MethodPost, "/products", fixed)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "product already exists with sku SKU-FIXED001", decode[map[string]string](t, w)["error"])

	w = do(t, h, http.MethodPut, "/products/1", `{"name":"Widget Pro","price":19.99,"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[map[string]any](t, w)
	assert.Equal(t, "SKU-FIXED001", updated["sku"])
	assert.Equal(t, 19.99, updated["price"])

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/products/1", "").Code)
	w = do(t, h, http.MethodGet, "/products/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "product not found with id 1", decode[map[string]string](t, w)["error"])
}

func TestProductRoutes_StorageBounds(t *testing.T) {
	h := newRouter()

	tests := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{"quantity above INTEGER", `{"name":"Huge","price":9.99,"quantity":4294967297}`, "quantity", "Must be less than or equal to 2147483647"},
		{"price with three places", `{"name":"Odd","price":9.999,"quantity":1}`, "price", "Must have at most 8 integer digits and 2 decimal places"},
		{"price overflow", `{"name":"Dear","price":123456789012.50,"quantity":1}`, "price", "Must have at most 8 integer digits and 2 decimal places"},
		{"blank name", `{"name":"  ","price":1,"quantity":1}`, "name", "Must not be blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/products", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			fields := decode[map[string]any](t, w)["fields"].(map[string]any)
			assert.Equal(t, tt.msg, fields[tt.field])
		})
	}

	w := do(t, h, http.MethodPost, "/products", `{"name":"Max","price":99999999.99,"quantity":2147483647}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Equal(t, float64(2147483647), created["quantity"])
	assert.Equal(t, 99999999.99, created["price"])
}
