package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Payment tracks one gateway attempt. Created PENDING, moves to PAID or
// FAILED exactly once; the unique TransactionID plus the PAID-status check
// make duplicate success callbacks a no-op.
type Payment struct {
	BaseModel
	TenantID       uuid.UUID `gorm:"type:uuid;index"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;index"`

	AmountMinor   int64
	Currency      string        `gorm:"size:3"`
	Provider      string        `gorm:"index"`
	TransactionID string        `gorm:"uniqueIndex"`
	Status        PaymentStatus `gorm:"index"`
	ValidationID  *string

	RawResponse datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Tenant       Tenant       `gorm:"foreignKey:TenantID"`
	Subscription Subscription `gorm:"foreignKey:SubscriptionID"`
}
