package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizservices/pkg/app"
	"github.com/ghuser/bizservices/services/order/application/handlers"
	appsvcs "github.com/ghuser/bizservices/services/order/application/services"
)

// OrderRoutes registers order endpoints on the provided chi router.
func OrderRoutes(r chi.Router, a *app.Application) {
	RegisterRoutes(r, appsvcs.New(a))
}

// RegisterRoutes mounts the order endpoints backed by svcs under /orders.
func RegisterRoutes(r chi.Router, svcs *appsvcs.Services) {
	read := handlers.NewReadOrderHandler(svcs)
	write := handlers.NewWriteOrderHandler(svcs)

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", write.Create)
		r.Get("/", read.All)
		r.Get("/statistics", read.Statistics)
		r.Get("/search", read.Search)
		r.Get("/date-range", read.DateRange)
		r.Get("/order-number/{orderNumber}", read.ByOrderNumber)
		r.Get("/status/{status}", read.ByStatus)
		r.Get("/customer/{email}", read.ByCustomer)
		r.Get("/customer/{email}/status/{status}", read.ByCustomerAndStatus)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", read.ByID)
			r.Put("/", write.Replace)
			r.Delete("/", write.Delete)
			r.Patch("/status", write.UpdateStatus)
		})
	})
}
