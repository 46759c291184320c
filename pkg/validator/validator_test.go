package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/bizservices/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizservices/pkg/validator"
)

type sampleStruct struct {
	Name  string `validate:"required,min=1,max=10"`
	Email string `validate:"omitempty,email"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{Name: "hello"}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input sampleStruct
		field string
		want  string
	}{
		{"required", sampleStruct{}, "Name", "This field is required"},
		{"max", sampleStruct{Name: "12345678901"}, "Name", "Maximum length is 10"},
		{"email", sampleStruct{Name: "ok", Email: "nope"}, "Email", "Must be a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&tt.input))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q", tt.field, m[tt.field], tt.want)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

type priced struct {
	Price *decimal.Decimal `json:"price" validate:"required,gte=0.01"`
}

func TestValidate_decimal(t *testing.T) {
	tests := []struct {
		name    string
		price   *decimal.Decimal
		wantMsg string
	}{
		{"valid", ptr(decimal.RequireFromString("9.99")), ""},
		{"boundary", ptr(decimal.RequireFromString("0.01")), ""},
		{"below minimum", ptr(decimal.RequireFromString("0.001")), "Must be greater than or equal to 0.01"},
		{"zero", ptr(decimal.Zero), "Must be greater than or equal to 0.01"},
		{"missing", nil, "This field is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&priced{Price: tt.price}))
			if m["price"] != tt.wantMsg {
				t.Errorf("price: got %q, want %q", m["price"], tt.wantMsg)
			}
		})
	}
}

type amounts struct {
	Price  *decimal.Decimal `json:"price"  validate:"required,gte=0.01,decimal=10 2"`
	Budget *decimal.Decimal `json:"budget" validate:"omitempty,decimal=15 2"`
}

func TestValidate_decimalPrecisionAndScale(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		budget    *decimal.Decimal
		wantPrice string
		wantBudg  string
	}{
		{"two places", "9.99", nil, "", ""},
		{"trailing zero", "9.990", nil, "", ""},
		{"largest price", "99999999.99", nil, "", ""},
		{"three places", "9.999", nil, "Must have at most 8 integer digits and 2 decimal places", ""},
		{"overflow", "123456789012.50", nil, "Must have at most 8 integer digits and 2 decimal places", ""},
		{"wide budget", "9.99", ptr(decimal.RequireFromString("1234567890123.45")), "", ""},
		{"budget overflow", "9.99", ptr(decimal.RequireFromString("12345678901234.5")), "", "Must have at most 13 integer digits and 2 decimal places"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := amounts{Price: ptr(decimal.RequireFromString(tt.price)), Budget: tt.budget}
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&in))
			if m["price"] != tt.wantPrice {
				t.Errorf("price: got %q, want %q", m["price"], tt.wantPrice)
			}
			if m["budget"] != tt.wantBudg {
				t.Errorf("budget: got %q, want %q", m["budget"], tt.wantBudg)
			}
		})
	}
}

type named struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

func TestValidate_notBlank(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{"text", "Ada", ""},
		{"empty", "", "This field is required"},
		{"spaces", "   ", "Must not be blank"},
		{"tab and newline", "\t\n", "Must not be blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&named{Name: tt.value}))
			if m["name"] != tt.wantMsg {
				t.Errorf("name: got %q, want %q", m["name"], tt.wantMsg)
			}
		})
	}
}

type hired struct {
	HireDate string `json:"hireDate" validate:"required,datetime=2006-01-02,pastorpresent"`
}

func TestValidate_pastOrPresent(t *testing.T) {
	today := time.Now().UTC().Format(pkgvalidator.DateLayout)
	future := time.Now().UTC().AddDate(0, 0, 2).Format(pkgvalidator.DateLayout)

	tests := []struct {
		name    string
		date    string
		wantMsg string
	}{
		{"past", "2020-01-15", ""},
		{"today", today, ""},
		{"future", future, "Must be a date in the past or present"},
		{"malformed", "15/01/2020", "Must be a date in YYYY-MM-DD format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&hired{HireDate: tt.date}))
			if m["hireDate"] != tt.wantMsg {
				t.Errorf("hireDate: got %q, want %q", m["hireDate"], tt.wantMsg)
			}
		})
	}
}

type line struct {
	Quantity *int `json:"quantity" validate:"required,gte=1"`
}

type basket struct {
	Lines []line `json:"orderItems" validate:"omitempty,dive"`
}

func TestFormatValidationErrors_nestedPath(t *testing.T) {
	zero := 0
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&basket{Lines: []line{{Quantity: &zero}}}))
	if m["orderItems[0].quantity"] != "Must be greater than or equal to 1" {
		t.Errorf("unexpected messages: %v", m)
	}
}

// --- ValidateRequest ---

type productReq struct {
	Name  string           `json:"name"  validate:"required,max=100"`
	Price *decimal.Decimal `json:"price" validate:"required,gte=0.01"`
}

func TestValidateRequest_valid(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Widget","price":9.99}`))
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[productReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Widget" || !req.Price.Equal(decimal.RequireFromString("9.99")) {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateRequest[productReq](w, r); ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_validationFailure(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"price":0}`))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateRequest[productReq](w, r); ok {
		t.Fatal("expected ok=false")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Validation failed" {
		t.Errorf("unexpected error %q", body.Error)
	}
	if body.Fields["name"] == "" || body.Fields["price"] == "" {
		t.Errorf("expected name and price field errors, got %v", body.Fields)
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	h := httpx.RequestBodyLimit(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkgvalidator.ValidateRequest[productReq](w, r)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a very long product name"}`)))

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}
}

func ptr[T any](v T) *T { return &v }
