package notification_fx

import (
	"context"
	"log"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopora/internal/api/controllers"
	"shopora/internal/repositories"
	"shopora/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideNotificationRepo, provideNotificationService, provideNotificationController),
	fx.Invoke(startExpirySweep),
)

func provideNotificationRepo(db *gorm.DB) repositories.INotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(
	notificationRepo repositories.INotificationRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
	productRepo repositories.IProductRepository,
	categoryRepo repositories.ICategoryRepository,
) services.NotificationServiceInterface {
	return services.NewNotificationService(notificationRepo, subscriptionRepo, productRepo, categoryRepo)
}

func provideNotificationController(notificationService services.NotificationServiceInterface) *controllers.NotificationController {
	return controllers.NewNotificationController(notificationService)
}

// startExpirySweep runs the expiry reminder check once on boot and then
// every 24 hours until shutdown. Reminder creation is idempotent per day,
// so an extra run after a restart is harmless.
func startExpirySweep(lc fx.Lifecycle, notifications services.NotificationServiceInterface) {
	var (
		ticker *time.Ticker
		done   = make(chan struct{})
	)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ticker = time.NewTicker(24 * time.Hour)
			go func() {
				if err := notifications.CheckExpiringSubscriptions(context.Background()); err != nil {
					log.Printf("Expiry sweep failed: %v", err)
				}
				for {
					select {
					case <-ticker.C:
						if err := notifications.CheckExpiringSubscriptions(context.Background()); err != nil {
							log.Printf("Expiry sweep failed: %v", err)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if ticker != nil {
				ticker.Stop()
			}
			close(done)
			return nil
		},
	})
}
