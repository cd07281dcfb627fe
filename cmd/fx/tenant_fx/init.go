package tenant_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopora/internal/api/controllers"
	"shopora/internal/repositories"
	"shopora/internal/services"
)

var Module = fx.Provide(
	provideTenantRepo, provideTenantService, provideTenantController)

func provideTenantRepo(db *gorm.DB) repositories.ITenantRepository {
	return repositories.NewTenantRepository(db)
}

func provideTenantService(
	tenantRepo repositories.ITenantRepository,
	userRepo repositories.IUserRepository,
) services.TenantServiceInterface {
	return services.NewTenantService(tenantRepo, userRepo)
}

func provideTenantController(tenantService services.TenantServiceInterface) *controllers.TenantController {
	return controllers.NewTenantController(tenantService)
}
