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
	"github.com/ghuser/bizservices/services/order/application/api"
	appsvcs "github.com/ghuser/bizservices/services/order/application/services"
	"github.com/ghuser/bizservices/services/order/infrastructure/persistence/memory"
)

func newRouter() http.Handler {
	svcs := &appsvcs.Services{
		Order: appsvcs.NewOrderService(memory.NewOrderRepository(), nil, logger.Discard()),
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

const adaOrder = `{
	"customerName": "Ada Lovelace",
	"customerEmail": "ada@example.com",
	"totalAmount": 0,
	"shippingAddress": "12 St James's Square, London",
	"orderItems": [
		{"productId": 1, "productName": "Widget", "quantity": 2, "unitPrice": 10.00},
		{"productId": 2, "productName": "Gadget", "quantity": 1, "unitPrice": 5.00}
	]
}`

func TestOrderRoutes_CreateAndFetch(t *testing.T) {
	h := newRouter()

	w := do(t, h, http.MethodPost, "/orders", adaOrder)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "PENDING", created["status"])
	assert.Equal(t, float64(25), created["totalAmount"])
	assert.Regexp(t, `^ORD-[A-Z0-9]{8}$`, created["orderNumber"])
	items := created["orderItems"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, float64(20), items[0].(map[string]any)["totalPrice"])

	number := created["orderNumber"].(string)
	w = do(t, h, http.MethodGet, "/orders/order-number/"+number, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/orders/customer/ada@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, h, http.MethodGet, "/orders/customer/ada@example.com/status/PENDING", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, h, http.MethodGet, "/orders/search?customerName=LOVE", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, h, http.MethodGet, "/orders/date-range?startDate=2000-01-01T00:00:00&endDate=2999-01-01T00:00:00", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode[[]map[string]any](t, w), 1)
}

func TestOrderRoutes_PatchStatus(t *testing.T) {
	h := newRouter()
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/orders", adaOrder).Code)

	w := do(t, h, http.MethodPatch, "/orders/1/status?status=SHIPPED", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "SHIPPED", decode[map[string]any](t, w)["status"])

	w = do(t, h, http.MethodGet, "/orders/status/SHIPPED", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, h, http.MethodPatch, "/orders/1/status?status=LOST", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Status names are matched exactly, like the status field of a request body.
	w = do(t, h, http.MethodPatch, "/orders/1/status?status=shipped", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, h, http.MethodPost, "/orders", `{"customerName":"Ada","customerEmail":"ada@example.com","totalAmount":1,"status":"shipped"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = do(t, h, http.MethodGet, "/orders/status/shipped", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPatch, "/orders/42/status?status=SHIPPED", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "order not found with id 42", decode[map[string]string](t, w)["error"])
}

func TestOrderRoutes_Statistics(t *testing.T) {
	h := newRouter()
	for range 3 {
		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/orders", adaOrder).Code)
	}
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPatch, "/orders/1/status?status=SHIPPED", "").Code)

	w := do(t, h, http.MethodGet, "/orders/statistics", "")
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[map[string]float64](t, w)
	assert.Equal(t, float64(3), stats["totalOrders"])
	assert.Equal(t, float64(2), stats["pendingOrders"])
	assert.Equal(t, float64(1), stats["shippedOrders"])
	assert.Equal(t, float64(0), stats["cancelledOrders"])
}

func TestOrderRoutes_Validation(t *testing.T) {
	h := newRouter()

	w := do(t, h, http.MethodPost, "/orders", `{"customerEmail":"not-an-email","status":"LOST"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "Validation failed", body["error"])
	fields := body["fields"].(map[string]any)
	assert.Contains(t, fields, "customerName")
	assert.Contains(t, fields, "customerEmail")
	assert.Contains(t, fields, "totalAmount")
	assert.Contains(t, fields, "status")
}

func TestOrderRoutes_ReplaceAndDelete(t *testing.T) {
	h := newRouter()
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/orders", adaOrder).Code)

	w := do(t, h, http.MethodPut, "/orders/1", `{"customerName":"Ada King","customerEmail":"ada@example.com","totalAmount":99,"status":"CONFIRMED"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[map[string]any](t, w)
	assert.Equal(t, "Ada King", updated["customerName"])
	assert.Equal(t, "CONFIRMED", updated["status"])
	assert.Len(t, updated["orderItems"], 2)
	assert.Equal(t, float64(25), updated["totalAmount"])

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/orders/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/orders/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/orders/1", "").Code)
}

func TestOrderRoutes_ItemValidation(t *testing.T) {
	h := newRouter()

	w := do(t, h, http.MethodPost, "/orders", `{
		"customerName": "Ada Lovelace",
		"customerEmail": "ada@example.com",
		"totalAmount": 1,
		"orderItems": [{"productId": 1, "quantity": 0, "unitPrice": -1}]
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decode[map[string]any](t, w)["fields"].(map[string]any)
	assert.Contains(t, fields, "orderItems[0].quantity")
	assert.Contains(t, fields, "orderItems[0].unitPrice")
}

func TestOrderRoutes_AmountAndQuantityBounds(t *testing.T) {
	h := newRouter()

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"blank customer name", `{"customerName":"   ","customerEmail":"ada@example.com","totalAmount":1}`, "customerName"},
		{"total with three places", `{"customerName":"Ada","customerEmail":"ada@example.com","totalAmount":9.999}`, "totalAmount"},
		{"total overflow", `{"customerName":"Ada","customerEmail":"ada@example.com","totalAmount":123456789012.50}`, "totalAmount"},
		{"quantity above INTEGER", `{"customerName":"Ada","customerEmail":"ada@example.com","totalAmount":1,
			"orderItems":[{"productId":1,"quantity":4294967297,"unitPrice":1}]}`, "orderItems[0].quantity"},
		{"unit price with three places", `{"customerName":"Ada","customerEmail":"ada@example.com","totalAmount":1,
			"orderItems":[{"productId":1,"quantity":1,"unitPrice":0.125}]}`, "orderItems[0].unitPrice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/orders", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, decode[map[string]any](t, w)["fields"], tt.field)
		})
	}

	// Each line fits NUMERIC(10,2); their product does not.
	w := do(t, h, http.MethodPost, "/orders", `{"customerName":"Ada","customerEmail":"ada@example.com","totalAmount":1,
		"orderItems":[{"productId":1,"quantity":1000,"unitPrice":99999999.99}]}`)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, decode[map[string]string](t, w)["error"], "amount out of range")
}
