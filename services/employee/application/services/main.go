package services

import (
	"github.com/ghuser/bizservices/pkg/app"
	"github.com/ghuser/bizservices/pkg/cache"
	"github.com/ghuser/bizservices/services/employee/domain/models"
	"github.com/ghuser/bizservices/services/employee/infrastructure/persistence/postgres"
)

// CacheKeyPrefix namespaces employee entries in Redis.
const CacheKeyPrefix = "employee"

// Services is the application-layer service container for this bounded context.
type Services struct {
	Employee *EmployeeService
}

// New wires the employee services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewEmployeeRepository(a.Db, a.EventBus)
	return &Services{
		Employee: NewEmployeeService(repo, cache.NewEntityCache[models.Employee](a.Redis, CacheKeyPrefix, a.CacheTTL), a.Logger),
	}
}
