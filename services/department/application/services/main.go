package services

import (
	"github.com/ghuser/bizservices/pkg/app"
	"github.com/ghuser/bizservices/pkg/cache"
	"github.com/ghuser/bizservices/services/department/domain/models"
	"github.com/ghuser/bizservices/services/department/infrastructure/persistence/postgres"
)

// CacheKeyPrefix namespaces department entries in Redis.
const CacheKeyPrefix = "department"

// Services is the application-layer service container for this bounded context.
type Services struct {
	Department *DepartmentService
}

// New wires the department services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewDepartmentRepository(a.Db, a.EventBus)
	deptCache := cache.NewEntityCache[models.Department](a.Redis, CacheKeyPrefix, a.CacheTTL)
	return &Services{
		Department: NewDepartmentService(repo, deptCache, a.Logger),
	}
}
