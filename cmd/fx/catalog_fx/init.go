package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopora/internal/api/controllers"
	"shopora/internal/repositories"
	"shopora/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo,
	provideProductRepo,
	provideCategoryService,
	provideProductService,
	provideCategoryController,
	provideProductController,
)

func provideCategoryRepo(db *gorm.DB) repositories.ICategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideProductRepo(db *gorm.DB) repositories.IProductRepository {
	return repositories.NewProductRepository(db)
}

func provideCategoryService(
	categoryRepo repositories.ICategoryRepository,
	limits services.ILimitChecker,
) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, limits)
}

func provideProductService(
	productRepo repositories.IProductRepository,
	categoryRepo repositories.ICategoryRepository,
	limits services.ILimitChecker,
) services.ProductServiceInterface {
	return services.NewProductService(productRepo, categoryRepo, limits)
}

func provideCategoryController(categoryService services.CategoryServiceInterface) *controllers.CategoryController {
	return controllers.NewCategoryController(categoryService)
}

func provideProductController(productService services.ProductServiceInterface) *controllers.ProductController {
	return controllers.NewProductController(productService)
}
