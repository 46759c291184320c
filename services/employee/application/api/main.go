package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizservices/pkg/app"
	"github.com/ghuser/bizservices/services/employee/application/handlers"
	appsvcs "github.com/ghuser/bizservices/services/employee/application/services"
)

// EmployeeRoutes registers employee endpoints on the provided chi router.
func EmployeeRoutes(r chi.Router, a *app.Application) {
	RegisterRoutes(r, appsvcs.New(a))
}

// RegisterRoutes mounts the employee endpoints backed by svcs under /employees.
func RegisterRoutes(r chi.Router, svcs *appsvcs.Services) {
	read := handlers.NewReadEmployeeHandler(svcs)
	write := handlers.NewWriteEmployeeHandler(svcs)

	r.Route("/employees", func(r chi.Router) {
		r.Post("/", write.Create)
		r.Get("/", read.All)
		r.Get("/active", read.Active)
		r.Get("/search", read.Search)
		r.Get("/email/{email}", read.ByEmail)
		r.Get("/position/{position}", read.ByPosition)
		r.Route("/department/{departmentId}", func(r chi.Router) {
			r.Get("/", read.ByDepartment)
			r.Get("/count", read.CountByDepartment)
		})
		r.Get("/{id}", read.ByID)
		r.Put("/{id}", write.Replace)
		r.Delete("/{id}", write.Delete)
	})
}
