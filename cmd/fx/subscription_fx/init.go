package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopora/internal/api/controllers"
	"shopora/internal/repositories"
	"shopora/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo,
	provideAccessPolicy,
	provideLimitChecker,
	provideSubscriptionService,
	provideSubscriptionController,
)

func provideSubscriptionRepo(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideAccessPolicy() services.AccessPolicy {
	return services.NewAccessPolicy()
}

func provideLimitChecker(
	subscriptionRepo repositories.ISubscriptionRepository,
	productRepo repositories.IProductRepository,
	categoryRepo repositories.ICategoryRepository,
	policy services.AccessPolicy,
) services.ILimitChecker {
	return services.NewLimitChecker(subscriptionRepo, productRepo, categoryRepo, policy)
}

func provideSubscriptionService(
	subscriptionRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
	tenantRepo repositories.ITenantRepository,
	limits services.ILimitChecker,
	policy services.AccessPolicy,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo, planRepo, tenantRepo, limits, policy)
}

func provideSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService)
}
