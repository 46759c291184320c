package handlers

import (
	"net/http"

	"github.com/ghuser/bizservices/pkg/errhttp"
	"github.com/ghuser/bizservices/pkg/httpx"
	appsvcs "github.com/ghuser/bizservices/services/department/application/services"
)

// DeleteDepartmentHandler handles DELETE /departments/{id} requests.
type DeleteDepartmentHandler struct {
	svc *appsvcs.Services
}

// NewDeleteDepartmentHandler returns a DeleteDepartmentHandler backed by the given services.
func NewDeleteDepartmentHandler(svc *appsvcs.Services) *DeleteDepartmentHandler {
	return &DeleteDepartmentHandler{svc: svc}
}

// Execute deletes a department.
//
//	@Summary	Delete department
//	@Tags		departments
//	@Param		id	path	int	true	"Department ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/departments/{id} [delete]
func (h *DeleteDepartmentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	if err := h.svc.Department.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
