package order_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopora/internal/api/controllers"
	"shopora/internal/repositories"
	"shopora/internal/services"
)

var Module = fx.Provide(
	provideOrderRepo, provideOrderService, provideOrderController)

func provideOrderRepo(db *gorm.DB) repositories.IOrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideOrderService(
	orderRepo repositories.IOrderRepository,
	limits services.ILimitChecker,
) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, limits)
}

func provideOrderController(orderService services.OrderServiceInterface) *controllers.OrderController {
	return controllers.NewOrderController(orderService)
}
