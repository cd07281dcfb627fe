package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopora/internal/models/db_models"
	"shopora/internal/repositories"
	"shopora/pkg/utils"
)

// Reminder thresholds (days before expiry) at which the daily sweep fires.
var reminderDays = map[int]bool{10: true, 5: true, 2: true, 1: true, 0: true}

type NotificationServiceInterface interface {
	Notify(ctx context.Context, tenantID uuid.UUID, title, message string, notifType db_models.NotificationType)
	List(ctx context.Context, tenantID uuid.UUID) ([]db_models.Notification, error)
	ListUnread(ctx context.Context, tenantID uuid.UUID) ([]db_models.Notification, error)
	UnreadCount(ctx context.Context, tenantID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, tenantID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, tenantID uuid.UUID) error
	Delete(ctx context.Context, tenantID, notificationID uuid.UUID) error
	CheckExpiringSubscriptions(ctx context.Context) error
	NotifyLimitExceeded(ctx context.Context, tenantID uuid.UUID) error
}

type NotificationService struct {
	notificationRepo repositories.INotificationRepository
	subscriptionRepo repositories.ISubscriptionRepository
	productRepo      repositories.IProductRepository
	categoryRepo     repositories.ICategoryRepository
	now              func() time.Time
}

func NewNotificationService(
	notificationRepo repositories.INotificationRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
	productRepo repositories.IProductRepository,
	categoryRepo repositories.ICategoryRepository,
) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		now:              time.Now,
	}
}

// Notify is fire-and-forget: a failed insert is logged, never propagated
// into the calling flow.
func (s *NotificationService) Notify(ctx context.Context, tenantID uuid.UUID, title, message string, notifType db_models.NotificationType) {
	notification := &db_models.Notification{
		TenantID: tenantID,
		Title:    title,
		Message:  message,
		Type:     notifType,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("Failed to create notification for tenant %s: %v", tenantID, err)
	}
}

func (s *NotificationService) List(ctx context.Context, tenantID uuid.UUID) ([]db_models.Notification, error) {
	notifications, err := s.notificationRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notifications, nil
}

func (s *NotificationService) ListUnread(ctx context.Context, tenantID uuid.UUID) ([]db_models.Notification, error) {
	notifications, err := s.notificationRepo.ListUnread(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notifications, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, tenantID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, tenantID, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindByIDForTenant(ctx, notificationID, tenantID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if notification == nil {
		return utils.NotFoundf("Notification not found")
	}
	return s.notificationRepo.MarkRead(ctx, notificationID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, tenantID uuid.UUID) error {
	return s.notificationRepo.MarkAllRead(ctx, tenantID)
}

func (s *NotificationService) Delete(ctx context.Context, tenantID, notificationID uuid.UUID) error {
	notification, err := s.notificationRepo.FindByIDForTenant(ctx, notificationID, tenantID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if notification == nil {
		return utils.NotFoundf("Notification not found")
	}
	return s.notificationRepo.Delete(ctx, notificationID)
}

// CheckExpiringSubscriptions is the daily sweep: it reminds TRIAL/ACTIVE
// tenants at fixed thresholds before expiry and persists the EXPIRED
// transition at day zero. Idempotent per tenant per day via the
// already-notified-today query, and resilient: one tenant's failure never
// aborts the rest of the sweep.
func (s *NotificationService) CheckExpiringSubscriptions(ctx context.Context) error {
	log.Println("[sweep] Checking expiring subscriptions...")

	subs, err := s.subscriptionRepo.ListByStatuses(ctx, []db_models.SubscriptionStatus{
		db_models.SubStatusTrial, db_models.SubStatusActive,
	})
	if err != nil {
		return err
	}

	now := s.now()
	todayStart := utils.StartOfDay(now).Unix()

	for i := range subs {
		sub := &subs[i]
		expiry := sub.ExpiryAnchor()
		if expiry == nil {
			continue
		}

		daysRemaining := utils.DaysUntil(*expiry, now)
		if !reminderDays[daysRemaining] {
			continue
		}

		notifType := db_models.NotifySubscriptionExpiry
		if daysRemaining == 0 {
			notifType = db_models.NotifySubscriptionExpired
		}

		alreadySent, err := s.notificationRepo.ExistsSince(ctx, sub.TenantID,
			[]db_models.NotificationType{notifType}, todayStart)
		if err != nil {
			log.Printf("[sweep] tenant %s: %v", sub.TenantID, err)
			continue
		}
		if alreadySent {
			continue
		}

		var title, message string
		switch {
		case daysRemaining == 0:
			title = "Subscription Expired"
			message = fmt.Sprintf(
				"Your %s subscription has expired. Renew now to continue using all features.",
				sub.Plan.Name)
			if err := s.subscriptionRepo.UpdateStatus(ctx, sub.ID, db_models.SubStatusExpired); err != nil {
				log.Printf("[sweep] tenant %s: mark expired: %v", sub.TenantID, err)
				continue
			}
		case daysRemaining == 1:
			title = "Subscription Expires Tomorrow"
			message = fmt.Sprintf(
				"Your %s subscription expires tomorrow. Renew now to avoid service interruption.",
				sub.Plan.Name)
		default:
			title = fmt.Sprintf("Subscription Expires in %d Days", daysRemaining)
			message = fmt.Sprintf(
				"Your %s subscription will expire in %d days. Renew early to avoid any interruption.",
				sub.Plan.Name, daysRemaining)
		}

		s.Notify(ctx, sub.TenantID, title, message, notifType)
		log.Printf("[sweep] Notification sent to tenant %s: %s", sub.TenantID, title)
	}

	log.Println("[sweep] Subscription check completed")
	return nil
}

// NotifyLimitExceeded warns a tenant whose usage exceeds their plan quotas,
// at most once per day.
func (s *NotificationService) NotifyLimitExceeded(ctx context.Context, tenantID uuid.UUID) error {
	sub, err := s.subscriptionRepo.FindByTenantID(ctx, tenantID)
	if err != nil || sub == nil {
		return err
	}

	products, err := s.productRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	categories, err := s.categoryRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		return err
	}

	var violations []string
	if products > int64(sub.Plan.MaxProducts) {
		violations = append(violations, fmt.Sprintf("Products: %d/%d", products, sub.Plan.MaxProducts))
	}
	if categories > int64(sub.Plan.MaxCategories) {
		violations = append(violations, fmt.Sprintf("Categories: %d/%d", categories, sub.Plan.MaxCategories))
	}
	if len(violations) == 0 {
		return nil
	}

	todayStart := utils.StartOfDay(s.now()).Unix()
	alreadySent, err := s.notificationRepo.ExistsSince(ctx, tenantID,
		[]db_models.NotificationType{db_models.NotifyLimitWarning}, todayStart)
	if err != nil || alreadySent {
		return err
	}

	s.Notify(ctx, tenantID,
		"Plan Limit Exceeded",
		fmt.Sprintf("You have exceeded your plan limits (%s). Please delete some items or upgrade your plan to restore full functionality.",
			strings.Join(violations, ", ")),
		db_models.NotifyLimitWarning)
	return nil
}
