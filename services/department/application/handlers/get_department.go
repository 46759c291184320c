package handlers

import (
	"net/http"

	"github.com/ghuser/bizservices/pkg/errhttp"
	"github.com/ghuser/bizservices/pkg/httpx"
	appsvcs "github.com/ghuser/bizservices/services/department/application/services"
)

// GetDepartmentHandler handles single-department lookups.
type GetDepartmentHandler struct {
	svc *appsvcs.Services
}

// NewGetDepartmentHandler returns a GetDepartmentHandler backed by the given services.
func NewGetDepartmentHandler(svc *appsvcs.Services) *GetDepartmentHandler {
	return &GetDepartmentHandler{svc: svc}
}

// ByID returns one department.
//
//	@Summary	Get department
//	@Tags		departments
//	@Produce	json
//	@Param		id	path		int	true	"Department ID"
//	@Success	200	{object}	DepartmentResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/departments/{id} [get]
func (h *GetDepartmentHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	d, err := h.svc.Department.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(d))
}

// ByCode returns the department with the given code.
//
//	@Summary	Get department by code
//	@Tags		departments
//	@Produce	json
//	@Param		code	path		string	true	"Department code"
//	@Success	200		{object}	DepartmentResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/departments/code/{code} [get]
func (h *GetDepartmentHandler) ByCode(w http.ResponseWriter, r *http.Request) {
	code, err := httpx.PathString(r, "code")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	d, err := h.svc.Department.GetByCode(r.Context(), code)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(d))
}
