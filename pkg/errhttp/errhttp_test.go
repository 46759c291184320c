package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/bizservices/pkg/httpx"
	deptdomain "github.com/ghuser/bizservices/services/department/domain"
	empdomain "github.com/ghuser/bizservices/services/employee/domain"
	orderdomain "github.com/ghuser/bizservices/services/order/domain"
	productdomain "github.com/ghuser/bizservices/services/product/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"department not found", deptdomain.NotFoundBy("id", 1), http.StatusNotFound},
		{"employee not found", empdomain.ErrEmployeeNotFound, http.StatusNotFound},
		{"order not found", fmt.Errorf("get order: %w", orderdomain.ErrOrderNotFound), http.StatusNotFound},
		{"product not found", productdomain.NotFoundBy("sku", "SKU-X"), http.StatusNotFound},
		{"department exists", deptdomain.AlreadyExistsBy("code", "ENG"), http.StatusConflict},
		{"employee exists", empdomain.ErrEmployeeAlreadyExists, http.StatusConflict},
		{"order exists", orderdomain.ErrOrderAlreadyExists, http.StatusConflict},
		{"product exists", fmt.Errorf("save: %w", productdomain.ErrProductAlreadyExists), http.StatusConflict},
		{"invalid status", fmt.Errorf("%w: SHIPPING", orderdomain.ErrInvalidOrderStatus), http.StatusBadRequest},
		{"order total overflow", fmt.Errorf("%w: order total 100000000.00", orderdomain.ErrAmountOutOfRange), http.StatusBadRequest},
		{"bad path param", fmt.Errorf("%w: id", httpx.ErrBadParam), http.StatusBadRequest},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_ClientErrorKeepsMessage(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), deptdomain.AlreadyExistsBy("code", "ENG"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != "department already exists with code ENG" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestWriteError_InternalErrorIsGeneric(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), errors.New("pq: password authentication failed"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != InternalErrorMessage {
		t.Fatalf("internal details leaked: %q", body["error"])
	}
	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
