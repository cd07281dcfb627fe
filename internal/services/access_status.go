package services

import (
	"fmt"
	"time"

	"shopora/internal/models/db_models"
	"shopora/pkg/utils"
)

// GracePeriodDays is the window after expiry in which deletion stays open
// but creation and updates are blocked. Held here once and injected into
// every collaborator through AccessPolicy.
const GracePeriodDays = 7

// AccessStatus is derived, never persisted. It must be computed fresh on
// every gated request: grace-period boundaries move with the wall clock.
type AccessStatus struct {
	HasAccess                bool   `json:"has_access"`
	CanCreate                bool   `json:"can_create"`
	CanUpdate                bool   `json:"can_update"`
	CanDelete                bool   `json:"can_delete"`
	IsInGracePeriod          bool   `json:"is_in_grace_period"`
	GracePeriodDaysRemaining int    `json:"grace_period_days_remaining"`
	DaysRemaining            int    `json:"days_remaining"`
	Status                   string `json:"status"`
	Message                  string `json:"message"`
}

type AccessPolicy struct {
	GraceDays int
}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{GraceDays: GracePeriodDays}
}

// Evaluate derives the access flags for a subscription at the given instant.
//
// The expiry anchor is EndDate when set, else TrialEndsAt. No anchor means a
// legacy unbounded subscription with full access. Day arithmetic uses a
// calendar-day ceiling, so a subscription expiring in 30 minutes still
// reports one day remaining.
func (p AccessPolicy) Evaluate(sub *db_models.Subscription, now time.Time) AccessStatus {
	expiry := sub.ExpiryAnchor()
	if expiry == nil {
		return AccessStatus{
			HasAccess: true,
			CanCreate: true,
			CanUpdate: true,
			CanDelete: true,
			Status:    string(sub.Status),
			Message:   "Subscription active",
		}
	}

	daysRemaining := utils.DaysUntil(*expiry, now)

	if daysRemaining > 0 {
		return AccessStatus{
			HasAccess:     true,
			CanCreate:     true,
			CanUpdate:     true,
			CanDelete:     true,
			DaysRemaining: daysRemaining,
			Status:        string(sub.Status),
			Message:       "Subscription active",
		}
	}

	daysSinceExpiry := -daysRemaining
	if daysSinceExpiry <= p.GraceDays {
		graceDaysLeft := p.GraceDays - daysSinceExpiry
		return AccessStatus{
			HasAccess:                true,
			CanDelete:                true,
			IsInGracePeriod:          true,
			GracePeriodDaysRemaining: graceDaysLeft,
			Status:                   string(db_models.SubStatusExpired),
			Message: fmt.Sprintf(
				"Your subscription has expired. You have %d day(s) left in your grace period. Renew now to continue creating and updating.",
				graceDaysLeft),
		}
	}

	return AccessStatus{
		Status:  string(db_models.SubStatusExpired),
		Message: "Your subscription has expired and the grace period has ended. Please renew to regain access.",
	}
}

// FullAccess is the short-circuit status for roles that bypass subscription
// gating (SUPER_ADMIN, CUSTOMER).
func FullAccess() AccessStatus {
	return AccessStatus{
		HasAccess: true,
		CanCreate: true,
		CanUpdate: true,
		CanDelete: true,
		Message:   "Subscription active",
	}
}

// NoSubscriptionStatus is the derived status for tenants that never picked
// a plan: gated operations are closed, read-only listing stays open at the
// routing layer.
func NoSubscriptionStatus() AccessStatus {
	return AccessStatus{
		Message: "No subscription found. Please select a plan to continue.",
	}
}
