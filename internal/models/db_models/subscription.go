package db_models

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubStatusTrial   SubscriptionStatus = "TRIAL"
	SubStatusActive  SubscriptionStatus = "ACTIVE"
	SubStatusExpired SubscriptionStatus = "EXPIRED"
)

// Subscription is the single subscription row a tenant may hold. The stored
// status is not the source of truth for access decisions: access is derived
// from EndDate/TrialEndsAt against the wall clock on every request. The
// unique index on TenantID is the concurrency control against duplicate
// activation.
type Subscription struct {
	BaseModel
	TenantID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	PlanID   uuid.UUID `gorm:"type:uuid;index"`

	Status      SubscriptionStatus `gorm:"index"`
	StartDate   time.Time
	EndDate     *time.Time
	TrialEndsAt *time.Time

	Tenant Tenant `gorm:"foreignKey:TenantID"`
	Plan   Plan   `gorm:"foreignKey:PlanID"`
}

// ExpiryAnchor picks the date access derivation runs against: EndDate when
// set, otherwise TrialEndsAt, otherwise nil (unbounded legacy subscription).
func (s *Subscription) ExpiryAnchor() *time.Time {
	if s.EndDate != nil {
		return s.EndDate
	}
	return s.TrialEndsAt
}
