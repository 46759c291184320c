package handlers

import (
	"net/http"

	"github.com/ghuser/bizservices/pkg/errhttp"
	"github.com/ghuser/bizservices/pkg/httpx"
	pkgvalidator "github.com/ghuser/bizservices/pkg/validator"
	appsvcs "github.com/ghuser/bizservices/services/department/application/services"
)

// PostDepartmentHandler handles POST /departments requests.
type PostDepartmentHandler struct {
	svc *appsvcs.Services
}

// NewPostDepartmentHandler returns a PostDepartmentHandler backed by the given services.
func NewPostDepartmentHandler(svc *appsvcs.Services) *PostDepartmentHandler {
	return &PostDepartmentHandler{svc: svc}
}

// Execute creates a new department.
//
//	@Summary		Create department
//	@Description	Creates a department. Name and code must be unused.
//	@Tags			departments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DepartmentRequest	true	"Department to create"
//	@Success		201		{object}	DepartmentResponse
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/departments [post]
func (h *PostDepartmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[DepartmentRequest](w, r)
	if !ok {
		return
	}

	d, err := h.svc.Department.Create(r.Context(), req.input())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.Created(w, r, d.ID, toResponse(d))
}
