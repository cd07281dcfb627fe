package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopora/internal/api/controllers"
	"shopora/internal/repositories"
	"shopora/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService, provideAccountController)

func provideUserRepo(db *gorm.DB) repositories.IUserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.IUserRepository) services.AccountServiceInterface {
	return services.NewAccountService(userRepo)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
