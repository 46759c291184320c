package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/bizservices/pkg/logger"
	"github.com/ghuser/bizservices/services/employee/application/api"
	appsvcs "github.com/ghuser/bizservices/services/employee/application/services"
	"github.com/ghuser/bizservices/services/employee/infrastructure/persistence/memory"
)

func newRouter() http.Handler {
	svcs := &appsvcs.Services{
		Employee: appsvcs.NewEmployeeService(memory.NewEmployeeRepository(), nil, logger.Discard()),
	}
	r := chi.NewRouter()
	api.RegisterRoutes(r, svcs)
	return r
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

const ada = `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","phoneNumber":"555-0100",
"departmentId":3,"position":"Engineer","hireDate":"2021-06-01","salary":85000.5}`

func TestEmployeeRoutes_CreateAndQuery(t *testing.T) {
	h := newRouter()

	w := do(h, http.MethodPost, "/employees", ada)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "2021-06-01", created["hireDate"])
	assert.Equal(t, 85000.5, created["salary"])
	assert.Equal(t, float64(3), created["departmentId"])

	w = do(h, http.MethodGet, "/employees/department/3/count", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	w = do(h, http.MethodGet, "/employees/department/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/employees/email/ada@example.com", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/employees/search?firstName=Ada&lastName=Lovelace", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(h, http.MethodGet, "/employees/search?firstName=Ada", "").Code)
	assert.Equal(t, http.StatusConflict, do(h, http.MethodPost, "/employees", ada).Code)
}

func TestEmployeeRoutes_RejectsInvalidBodies(t *testing.T) {
	future := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing department", `{"firstName":"A","lastName":"B","email":"a@b.co","phoneNumber":"1","position":"P","hireDate":"2021-06-01"}`, "departmentId"},
		{"bad email", `{"firstName":"A","lastName":"B","email":"nope","phoneNumber":"1","departmentId":1,"position":"P","hireDate":"2021-06-01"}`, "email"},
		{"future hire date", `{"firstName":"A","lastName":"B","email":"a@b.co","phoneNumber":"1","departmentId":1,"position":"P","hireDate":"` + future + `"}`, "hireDate"},
		{"malformed hire date", `{"firstName":"A","lastName":"B","email":"a@b.co","phoneNumber":"1","departmentId":1,"position":"P","hireDate":"06/01/2021"}`, "hireDate"},
		{"blank first name", `{"firstName":"  ","lastName":"B","email":"a@b.co","phoneNumber":"1","departmentId":1,"position":"P","hireDate":"2021-06-01"}`, "firstName"},
		{"long last name", `{"firstName":"A","lastName":"` + strings.Repeat("b", 101) + `","email":"a@b.co","phoneNumber":"1","departmentId":1,"position":"P","hireDate":"2021-06-01"}`, "lastName"},
		{"long phone number", `{"firstName":"A","lastName":"B","email":"a@b.co","phoneNumber":"` + strings.Repeat("5", 51) + `","departmentId":1,"position":"P","hireDate":"2021-06-01"}`, "phoneNumber"},
		{"long email", `{"firstName":"A","lastName":"B","email":"` + strings.Repeat("a", 251) + `@b.co","phoneNumber":"1","departmentId":1,"position":"P","hireDate":"2021-06-01"}`, "email"},
		{"long position", `{"firstName":"A","lastName":"B","email":"a@b.co","phoneNumber":"1","departmentId":1,"position":"` + strings.Repeat("p", 101) + `","hireDate":"2021-06-01"}`, "position"},
		{"salary with three places", `{"firstName":"A","lastName":"B","email":"a@b.co","phoneNumber":"1","departmentId":1,"position":"P","hireDate":"2021-06-01","salary":1000.005}`, "salary"},
		{"salary overflow", `{"firstName":"A","lastName":"B","email":"a@b.co","phoneNumber":"1","departmentId":1,"position":"P","hireDate":"2021-06-01","salary":12345678901234.5}`, "salary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(), http.MethodPost, "/employees", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var body struct {
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body.Fields, tt.wantField)
		})
	}
}

func TestEmployeeRoutes_ReplaceAndDelete(t *testing.T) {
	h := newRouter()
	require.Equal(t, http.StatusCreated, do(h, http.MethodPost, "/employees", ada).Code)

	replaced := strings.Replace(ada, `,"salary":85000.5`, "", 1)
	w := do(h, http.MethodPut, "/employees/1", replaced)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body["salary"])

	assert.Equal(t, http.StatusNoContent, do(h, http.MethodDelete, "/employees/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/employees/1", "").Code)
}
