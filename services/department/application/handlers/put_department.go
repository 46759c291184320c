package handlers

import (
	"net/http"

	"github.com/ghuser/bizservices/pkg/errhttp"
	"github.com/ghuser/bizservices/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizservices/pkg/validator"
	appsvcs "github.com/ghuser/bizservices/services/department/application/services"
)

// PutDepartmentHandler handles PUT /departments/{id} requests.
type PutDepartmentHandler struct {
	svc *appsvcs.Services
}

// NewPutDepartmentHandler returns a PutDepartmentHandler backed by the given services.
func NewPutDepartmentHandler(svc *appsvcs.Services) *PutDepartmentHandler {
	return &PutDepartmentHandler{svc: svc}
}

// Execute replaces every field of an existing department.
//
//	@Summary		Update department
//	@Description	Full replace. Omitted optional fields are cleared.
//	@Tags			departments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Department ID"
//	@Param			request	body		DepartmentRequest	true	"Replacement department"
//	@Success		200		{object}	DepartmentResponse
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/departments/{id} [put]
func (h *PutDepartmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[DepartmentRequest](w, r)
	if !ok {
		return
	}

	d, err := h.svc.Department.Update(r.Context(), id, req.input())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(d))
}
