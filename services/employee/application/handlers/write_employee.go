package handlers

import (
	"net/http"

	"github.com/ghuser/bizservices/pkg/errhttp"
	"github.com/ghuser/bizservices/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizservices/pkg/validator"
	appsvcs "github.com/ghuser/bizservices/services/employee/application/services"
)

// WriteEmployeeHandler handles the create, replace and delete endpoints.
type WriteEmployeeHandler struct {
	svc *appsvcs.Services
}

// NewWriteEmployeeHandler returns a WriteEmployeeHandler backed by the given services.
func NewWriteEmployeeHandler(svc *appsvcs.Services) *WriteEmployeeHandler {
	return &WriteEmployeeHandler{svc: svc}
}

// Create adds an employee.
//
//	@Summary		Create employee
//	@Description	Creates an employee. The email must be unused.
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			request	body		EmployeeRequest	true	"Employee to create"
//	@Success		201		{object}	EmployeeResponse
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/employees [post]
func (h *WriteEmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[EmployeeRequest](w, r)
	if !ok {
		return
	}
	in, err := req.input()
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	e, err := h.svc.Employee.Create(r.Context(), in)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.Created(w, r, e.ID, toResponse(e))
}

// Replace overwrites every field of an employee.
//
//	@Summary	Update employee
//	@Tags		employees
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Employee ID"
//	@Param		request	body		EmployeeRequest	true	"Replacement employee"
//	@Success	200		{object}	EmployeeResponse
//	@Failure	400		{object}	ValidationErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/employees/{id} [put]
func (h *WriteEmployeeHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[EmployeeRequest](w, r)
	if !ok {
		return
	}
	in, err := req.input()
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	e, err := h.svc.Employee.Update(r.Context(), id, in)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(e))
}

// Delete removes an employee.
//
//	@Summary	Delete employee
//	@Tags		employees
//	@Param		id	path	int	true	"Employee ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/employees/{id} [delete]
func (h *WriteEmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	if err := h.svc.Employee.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
