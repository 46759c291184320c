package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/bizservices/pkg/app"
	"github.com/ghuser/bizservices/services/product/application/handlers"
	appsvcs "github.com/ghuser/bizservices/services/product/application/services"
)

// ProductRoutes registers product endpoints on the provided chi router.
func ProductRoutes(r chi.Router, a *app.Application) {
	RegisterRoutes(r, appsvcs.New(a))
}

// RegisterRoutes mounts the product endpoints backed by svcs under /products.
func RegisterRoutes(r chi.Router, svcs *appsvcs.Services) {
	read := handlers.NewReadProductHandler(svcs)
	write := handlers.NewWriteProductHandler(svcs)

	r.Route("/products", func(r chi.Router) {
		r.Post("/", write.Create)
		r.Get("/", read.All)
		r.Get("/in-stock", read.InStock)
		r.Get("/search", read.Search)
		r.Get("/price-range", read.PriceRange)
		r.Get("/sku/{sku}", read.BySKU)
		r.Get("/category/{category}", read.ByCategory)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", read.ByID)
			r.Put("/", write.Replace)
			r.Delete("/", write.Delete)
			r.Patch("/quantity", write.UpdateQuantity)
		})
	})
}
