package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"shopora/cmd/fx/account_fx"
	"shopora/cmd/fx/catalog_fx"
	"shopora/cmd/fx/db_fx"
	"shopora/cmd/fx/notification_fx"
	"shopora/cmd/fx/order_fx"
	"shopora/cmd/fx/payment_fx"
	"shopora/cmd/fx/plan_fx"
	"shopora/cmd/fx/storefront_fx"
	"shopora/cmd/fx/subscription_fx"
	"shopora/cmd/fx/tenant_fx"
	"shopora/internal/api/controllers"
	"shopora/internal/models/db_models"
	"shopora/internal/services"
	"shopora/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		tenant_fx.Module,
		plan_fx.Module,
		subscription_fx.Module,
		catalog_fx.Module,
		order_fx.Module,
		payment_fx.Module,
		notification_fx.Module,
		storefront_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tenantController *controllers.TenantController,
	planController *controllers.PlanController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController,
	categoryController *controllers.CategoryController,
	productController *controllers.ProductController,
	orderController *controllers.OrderController,
	notificationController *controllers.NotificationController,
	storefrontController *controllers.StorefrontController,
	subscriptionService services.SubscriptionServiceInterface,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController, tenantController, planController,
		subscriptionController, paymentController, categoryController,
		productController, orderController, notificationController,
		storefrontController, subscriptionService)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tenantController *controllers.TenantController,
	planController *controllers.PlanController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController,
	categoryController *controllers.CategoryController,
	productController *controllers.ProductController,
	orderController *controllers.OrderController,
	notificationController *controllers.NotificationController,
	storefrontController *controllers.StorefrontController,
	subscriptionService services.SubscriptionServiceInterface) {

	superAdmin := string(db_models.RoleSuperAdmin)
	tenantAdmin := string(db_models.RoleTenantAdmin)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", accountController.Login)

	api.POST("/tenants/register", tenantController.Register)

	plans := api.Group("/plans")
	plans.GET("", planController.ListActive)
	plans.GET("/all", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(superAdmin), planController.ListAll)
	plans.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(superAdmin), planController.Create)
	plans.POST("/seed", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(superAdmin), planController.Seed)
	plans.GET("/:id", planController.GetByID)
	plans.PATCH("/:id", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(superAdmin), planController.Update)
	plans.DELETE("/:id", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(superAdmin), planController.Delete)

	// Subscription management is open to a tenant admin even when expired;
	// these endpoints are how an expired tenant buys their way back in.
	subscriptions := api.Group("/subscriptions",
		middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(tenantAdmin))
	subscriptions.GET("/current", subscriptionController.GetCurrent)
	subscriptions.GET("/usage", subscriptionController.GetUsage)
	subscriptions.GET("/access-status", subscriptionController.GetAccess)
	subscriptions.POST("/activate-trial", subscriptionController.ActivateTrial)
	subscriptions.POST("/select-plan", subscriptionController.SelectPlan)
	subscriptions.POST("/upgrade", subscriptionController.Upgrade)
	subscriptions.POST("/downgrade", subscriptionController.Downgrade)
	subscriptions.POST("/renew", subscriptionController.Renew)

	payments := api.Group("/payments")
	payments.POST("/initiate", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(tenantAdmin), paymentController.Initiate)
	payments.POST("/callback/success", paymentController.Success)
	payments.POST("/callback/fail", paymentController.Fail)
	payments.POST("/callback/cancel", paymentController.Cancel)
	payments.POST("/ipn", paymentController.IPN)
	payments.GET("/history", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(tenantAdmin), paymentController.History)
	payments.GET("/:id", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(tenantAdmin), paymentController.GetByID)
	payments.POST("/verify-manual/:tranId", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(tenantAdmin), paymentController.VerifyManually)

	// Catalog and order routes sit behind the subscription guard; per-action
	// gating (create vs update vs delete) happens in the services.
	guarded := api.Group("",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(tenantAdmin, superAdmin),
		middleware.SubscriptionGuard(subscriptionService))

	guarded.GET("/categories", categoryController.List)
	guarded.POST("/categories", categoryController.Create)
	guarded.PATCH("/categories/:id", categoryController.Update)
	guarded.DELETE("/categories/:id", categoryController.Delete)
	guarded.POST("/categories/:id/subcategories", categoryController.CreateSubCategory)
	guarded.DELETE("/subcategories/:subId", categoryController.DeleteSubCategory)

	guarded.GET("/products", productController.List)
	guarded.GET("/products/:id", productController.Get)
	guarded.POST("/products", productController.Create)
	guarded.PATCH("/products/:id", productController.Update)
	guarded.DELETE("/products/:id", productController.Delete)
	guarded.PATCH("/products/:id/inventory", productController.AdjustInventory)

	guarded.GET("/orders", orderController.List)
	guarded.GET("/orders/:id", orderController.Get)
	guarded.PATCH("/orders/:id/status", orderController.UpdateStatus)

	brand := api.Group("/brand",
		middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(tenantAdmin))
	brand.GET("", tenantController.GetBrand)
	brand.PATCH("", tenantController.UpdateBrand)

	notifications := api.Group("/notifications",
		middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(tenantAdmin))
	notifications.GET("", notificationController.List)
	notifications.GET("/unread", notificationController.ListUnread)
	notifications.GET("/unread/count", notificationController.UnreadCount)
	notifications.PATCH("/:id/read", notificationController.MarkRead)
	notifications.PATCH("/read-all", notificationController.MarkAllRead)
	notifications.DELETE("/:id", notificationController.Delete)

	customers := api.Group("/customers",
		middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(tenantAdmin))
	customers.GET("", accountController.ListCustomers)
	customers.PATCH("/:id/status", accountController.UpdateCustomerStatus)

	storefront := api.Group("/storefront")
	storefront.GET("/:domain", storefrontController.GetStore)
	storefront.GET("/:domain/products", storefrontController.ListProducts)
	storefront.POST("/:domain/auth/register", storefrontController.RegisterCustomer)
	storefront.POST("/:domain/auth/login", storefrontController.LoginCustomer)
	storefront.POST("/:domain/orders", storefrontController.PlaceOrder)

	// Customer-only order history and cancellation.
	shopper := storefront.Group("",
		middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(string(db_models.RoleCustomer)))
	shopper.GET("/:domain/orders", storefrontController.ListMyOrders)
	shopper.PATCH("/:domain/orders/:id/cancel", storefrontController.CancelOrder)
}
