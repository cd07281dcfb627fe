package db_models

import "github.com/google/uuid"

type NotificationType string

const (
	NotifySubscriptionExpiry  NotificationType = "SUBSCRIPTION_EXPIRY"
	NotifySubscriptionExpired NotificationType = "SUBSCRIPTION_EXPIRED"
	NotifyPaymentSuccess      NotificationType = "PAYMENT_SUCCESS"
	NotifyPaymentFailed       NotificationType = "PAYMENT_FAILED"
	NotifyLimitWarning        NotificationType = "LIMIT_WARNING"
	NotifyGeneral             NotificationType = "GENERAL"
)

type Notification struct {
	BaseModel
	TenantID uuid.UUID `gorm:"type:uuid;index"`
	Title    string
	Message  string
	Type     NotificationType `gorm:"index"`
	IsRead   bool             `gorm:"default:false"`
}
