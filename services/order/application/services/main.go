package services

import (
	"github.com/ghuser/bizservices/pkg/app"
	"github.com/ghuser/bizservices/pkg/cache"
	"github.com/ghuser/bizservices/services/order/domain/models"
	"github.com/ghuser/bizservices/services/order/infrastructure/persistence/postgres"
)

// CacheKeyPrefix namespaces order entries in Redis.
const CacheKeyPrefix = "order"

// Services is the application-layer service container for this bounded context.
type Services struct {
	Order *OrderService
}

// New wires the order services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewOrderRepository(a.Db, a.EventBus)
	orderCache := cache.NewEntityCache[models.Order](a.Redis, CacheKeyPrefix, a.CacheTTL)
	return &Services{
		Order: NewOrderService(repo, orderCache, a.Logger),
	}
}
