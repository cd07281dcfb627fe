package payment_fx

import (
	"fmt"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopora/internal/api/controllers"
	"shopora/internal/repositories"
	"shopora/internal/services"
	"shopora/pkg/sslcommerz"
)

var Module = fx.Provide(
	providePaymentRepo,
	providePaymentProvider,
	providePaymentService,
	providePaymentController,
)

func providePaymentRepo(db *gorm.DB) repositories.IPaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentProvider() (services.PaymentProvider, error) {
	client, err := sslcommerz.NewClient(sslcommerz.Config{
		StoreID:       os.Getenv("SSLCOMMERZ_STORE_ID"),
		StorePassword: os.Getenv("SSLCOMMERZ_STORE_PASSWORD"),
		Live:          os.Getenv("SSLCOMMERZ_LIVE") == "true",
	})
	if err != nil {
		return nil, fmt.Errorf("payment gateway client: %w", err)
	}
	return client, nil
}

func providePaymentService(
	paymentRepo repositories.IPaymentRepository,
	planRepo repositories.IPlanRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
	tenantRepo repositories.ITenantRepository,
	userRepo repositories.IUserRepository,
	subscriptions services.SubscriptionServiceInterface,
	notifications services.NotificationServiceInterface,
	provider services.PaymentProvider,
) services.PaymentServiceInterface {
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:5000"
	}
	cfg := services.PaymentConfig{
		ProviderName: "sslcommerz",
		BackendURL:   backendURL,
	}
	return services.NewPaymentService(
		paymentRepo, planRepo, subscriptionRepo, tenantRepo, userRepo,
		subscriptions, notifications, provider, cfg)
}

func providePaymentController(paymentService services.PaymentServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService)
}
