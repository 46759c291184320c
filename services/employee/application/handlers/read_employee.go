package handlers

import (
	"net/http"

	"github.com/ghuser/bizservices/pkg/errhttp"
	"github.com/ghuser/bizservices/pkg/httpx"
	appsvcs "github.com/ghuser/bizservices/services/employee/application/services"
	"github.com/ghuser/bizservices/services/employee/domain/models"
)

// ReadEmployeeHandler handles the lookup and list endpoints.
type ReadEmployeeHandler struct {
	svc *appsvcs.Services
}

// NewReadEmployeeHandler returns a ReadEmployeeHandler backed by the given services.
func NewReadEmployeeHandler(svc *appsvcs.Services) *ReadEmployeeHandler {
	return &ReadEmployeeHandler{svc: svc}
}

// ByID returns one employee.
//
//	@Summary	Get employee
//	@Tags		employees
//	@Produce	json
//	@Param		id	path		int	true	"Employee ID"
//	@Success	200	{object}	EmployeeResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/employees/{id} [get]
func (h *ReadEmployeeHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	e, err := h.svc.Employee.GetByID(r.Context(), id)
	h.one(w, r, e, err)
}

// ByEmail returns the employee with an email address.
//
//	@Summary	Get employee by email
//	@Tags		employees
//	@Produce	json
//	@Param		email	path		string	true	"Email"
//	@Success	200		{object}	EmployeeResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/employees/email/{email} [get]
func (h *ReadEmployeeHandler) ByEmail(w http.ResponseWriter, r *http.Request) {
	email, err := httpx.PathString(r, "email")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	e, err := h.svc.Employee.GetByEmail(r.Context(), email)
	h.one(w, r, e, err)
}

// All lists every employee.
//
//	@Summary	List employees
//	@Tags		employees
//	@Produce	json
//	@Success	200	{array}	EmployeeResponse
//	@Router		/employees [get]
func (h *ReadEmployeeHandler) All(w http.ResponseWriter, r *http.Request) {
	es, err := h.svc.Employee.List(r.Context())
	h.many(w, r, es, err)
}

// Active lists active employees.
//
//	@Summary	List active employees
//	@Tags		employees
//	@Produce	json
//	@Success	200	{array}	EmployeeResponse
//	@Router		/employees/active [get]
func (h *ReadEmployeeHandler) Active(w http.ResponseWriter, r *http.Request) {
	es, err := h.svc.Employee.ListActive(r.Context())
	h.many(w, r, es, err)
}

// ByDepartment lists the employees of a department.
//
//	@Summary	List employees by department
//	@Tags		employees
//	@Produce	json
//	@Param		departmentId	path	int	true	"Department ID"
//	@Success	200				{array}	EmployeeResponse
//	@Router		/employees/department/{departmentId} [get]
func (h *ReadEmployeeHandler) ByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID, err := httpx.PathInt64(r, "departmentId")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	es, err := h.svc.Employee.ListByDepartment(r.Context(), departmentID)
	h.many(w, r, es, err)
}

// CountByDepartment counts the employees of a department.
//
//	@Summary	Count employees by department
//	@Tags		employees
//	@Produce	json
//	@Param		departmentId	path		int	true	"Department ID"
//	@Success	200				{object}	CountResponse
//	@Router		/employees/department/{departmentId}/count [get]
func (h *ReadEmployeeHandler) CountByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID, err := httpx.PathInt64(r, "departmentId")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	n, err := h.svc.Employee.CountByDepartment(r.Context(), departmentID)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, CountResponse{Count: n})
}

// ByPosition lists employees holding a position.
//
//	@Summary	List employees by position
//	@Tags		employees
//	@Produce	json
//	@Param		position	path	string	true	"Position"
//	@Success	200			{array}	EmployeeResponse
//	@Router		/employees/position/{position} [get]
func (h *ReadEmployeeHandler) ByPosition(w http.ResponseWriter, r *http.Request) {
	position, err := httpx.PathString(r, "position")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	es, err := h.svc.Employee.ListByPosition(r.Context(), position)
	h.many(w, r, es, err)
}

// Search lists employees matching firstName and lastName exactly.
//
//	@Summary	Search employees by name
//	@Tags		employees
//	@Produce	json
//	@Param		firstName	query	string	true	"First name"
//	@Param		lastName	query	string	true	"Last name"
//	@Success	200			{array}	EmployeeResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/employees/search [get]
func (h *ReadEmployeeHandler) Search(w http.ResponseWriter, r *http.Request) {
	firstName, err := httpx.QueryString(r, "firstName")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	lastName, err := httpx.QueryString(r, "lastName")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	es, err := h.svc.Employee.SearchByName(r.Context(), firstName, lastName)
	h.many(w, r, es, err)
}

func (h *ReadEmployeeHandler) one(w http.ResponseWriter, r *http.Request, e *models.Employee, err error) {
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(e))
}

func (h *ReadEmployeeHandler) many(w http.ResponseWriter, r *http.Request, es []*models.Employee, err error) {
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponses(es))
}
