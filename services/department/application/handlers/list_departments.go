package handlers

import (
	"net/http"

	"github.com/ghuser/bizservices/pkg/errhttp"
	"github.com/ghuser/bizservices/pkg/httpx"
	appsvcs "github.com/ghuser/bizservices/services/department/application/services"
	"github.com/ghuser/bizservices/services/department/domain/models"
)

// ListDepartmentsHandler handles the collection and filtered-list endpoints.
type ListDepartmentsHandler struct {
	svc *appsvcs.Services
}

// NewListDepartmentsHandler returns a ListDepartmentsHandler backed by the given services.
func NewListDepartmentsHandler(svc *appsvcs.Services) *ListDepartmentsHandler {
	return &ListDepartmentsHandler{svc: svc}
}

// All lists every department.
//
//	@Summary	List departments
//	@Tags		departments
//	@Produce	json
//	@Success	200	{array}	DepartmentResponse
//	@Router		/departments [get]
func (h *ListDepartmentsHandler) All(w http.ResponseWriter, r *http.Request) {
	ds, err := h.svc.Department.List(r.Context())
	h.write(w, r, ds, err)
}

// Active lists active departments.
//
//	@Summary	List active departments
//	@Tags		departments
//	@Produce	json
//	@Success	200	{array}	DepartmentResponse
//	@Router		/departments/active [get]
func (h *ListDepartmentsHandler) Active(w http.ResponseWriter, r *http.Request) {
	ds, err := h.svc.Department.ListActive(r.Context())
	h.write(w, r, ds, err)
}

// ActiveCount counts active departments.
//
//	@Summary	Count active departments
//	@Tags		departments
//	@Produce	json
//	@Success	200	{object}	CountResponse
//	@Router		/departments/active/count [get]
func (h *ListDepartmentsHandler) ActiveCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Department.CountActive(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, CountResponse{Count: n})
}

// ByLocation lists departments at a location.
//
//	@Summary	List departments by location
//	@Tags		departments
//	@Produce	json
//	@Param		location	path	string	true	"Location"
//	@Success	200			{array}	DepartmentResponse
//	@Router		/departments/location/{location} [get]
func (h *ListDepartmentsHandler) ByLocation(w http.ResponseWriter, r *http.Request) {
	location, err := httpx.PathString(r, "location")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	ds, err := h.svc.Department.ListByLocation(r.Context(), location)
	h.write(w, r, ds, err)
}

// ByManager lists departments managed by an email address.
//
//	@Summary	List departments by manager email
//	@Tags		departments
//	@Produce	json
//	@Param		email	path	string	true	"Manager email"
//	@Success	200		{array}	DepartmentResponse
//	@Router		/departments/manager/{email} [get]
func (h *ListDepartmentsHandler) ByManager(w http.ResponseWriter, r *http.Request) {
	email, err := httpx.PathString(r, "email")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	ds, err := h.svc.Department.ListByManagerEmail(r.Context(), email)
	h.write(w, r, ds, err)
}

// Search lists departments whose name contains the name query parameter.
//
//	@Summary	Search departments by name
//	@Tags		departments
//	@Produce	json
//	@Param		name	query	string	true	"Name fragment, case-insensitive"
//	@Success	200		{array}	DepartmentResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/departments/search [get]
func (h *ListDepartmentsHandler) Search(w http.ResponseWriter, r *http.Request) {
	name, err := httpx.QueryString(r, "name")
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	ds, err := h.svc.Department.SearchByName(r.Context(), name)
	h.write(w, r, ds, err)
}

func (h *ListDepartmentsHandler) write(w http.ResponseWriter, r *http.Request, ds []*models.Department, err error) {
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponses(ds))
}
