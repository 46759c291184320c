package services

import (
	"github.com/ghuser/bizservices/pkg/app"
	"github.com/ghuser/bizservices/pkg/cache"
	"github.com/ghuser/bizservices/services/product/domain/models"
	"github.com/ghuser/bizservices/services/product/infrastructure/persistence/postgres"
)

// CacheKeyPrefix namespaces product entries in Redis.
const CacheKeyPrefix = "product"

// Services is the application-layer service container for this bounded context.
type Services struct {
	Product *ProductService
}

// New wires the product services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewProductRepository(a.Db, a.EventBus)
	return &Services{
		Product: NewProductService(repo, cache.NewEntityCache[models.Product](a.Redis, CacheKeyPrefix, a.CacheTTL), a.Logger),
	}
}
