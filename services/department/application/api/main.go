package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizservices/pkg/app"
	"github.com/ghuser/bizservices/services/department/application/handlers"
	appsvcs "github.com/ghuser/bizservices/services/department/application/services"
)

// DepartmentRoutes registers department endpoints on the provided chi router.
func DepartmentRoutes(r chi.Router, a *app.Application) {
	RegisterRoutes(r, appsvcs.New(a))
}

// RegisterRoutes mounts the department endpoints backed by svcs under /departments.
func RegisterRoutes(r chi.Router, svcs *appsvcs.Services) {
	get := handlers.NewGetDepartmentHandler(svcs)
	list := handlers.NewListDepartmentsHandler(svcs)

	r.Route("/departments", func(r chi.Router) {
		r.Post("/", handlers.NewPostDepartmentHandler(svcs).Execute)
		r.Get("/", list.All)
		r.Get("/active", list.Active)
		r.Get("/active/count", list.ActiveCount)
		r.Get("/search", list.Search)
		r.Get("/code/{code}", get.ByCode)
		r.Get("/location/{location}", list.ByLocation)
		r.Get("/manager/{email}", list.ByManager)
		r.Get("/{id}", get.ByID)
		r.Put("/{id}", handlers.NewPutDepartmentHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteDepartmentHandler(svcs).Execute)
	})
}
