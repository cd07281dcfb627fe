package storefront_fx

import (
	"go.uber.org/fx"

	"shopora/internal/api/controllers"
	"shopora/internal/repositories"
	"shopora/internal/services"
)

var Module = fx.Provide(
	provideStorefrontService, provideStorefrontController)

func provideStorefrontService(
	tenantRepo repositories.ITenantRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
	productRepo repositories.IProductRepository,
	orderRepo repositories.IOrderRepository,
	userRepo repositories.IUserRepository,
	notifications services.NotificationServiceInterface,
	policy services.AccessPolicy,
) services.StorefrontServiceInterface {
	return services.NewStorefrontService(
		tenantRepo, subscriptionRepo, productRepo, orderRepo, userRepo, notifications, policy)
}

func provideStorefrontController(storefrontService services.StorefrontServiceInterface) *controllers.StorefrontController {
	return controllers.NewStorefrontController(storefrontService)
}
