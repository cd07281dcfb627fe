package response_models

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionDetail struct {
	ID                       uuid.UUID    `json:"id"`
	TenantID                 uuid.UUID    `json:"tenant_id"`
	Plan                     PlanResponse `json:"plan"`
	Status                   string       `json:"status"`
	StartDate                time.Time    `json:"start_date"`
	EndDate                  *time.Time   `json:"end_date,omitempty"`
	TrialEndsAt              *time.Time   `json:"trial_ends_at,omitempty"`
	CurrentStatus            string       `json:"current_status"`
	DaysRemaining            int          `json:"days_remaining"`
	IsInGracePeriod          bool         `json:"is_in_grace_period"`
	GracePeriodDaysRemaining int          `json:"grace_period_days_remaining"`
}

type ResourceUsage struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

type SubcategoryUsage struct {
	MaxUsed int `json:"max_used"`
	Limit   int `json:"limit"`
}

type UsageResponse struct {
	Products                 ResourceUsage    `json:"products"`
	Categories               ResourceUsage    `json:"categories"`
	SubcategoriesPerCategory SubcategoryUsage `json:"subcategories_per_category"`
	Plan                     PlanResponse     `json:"plan"`
}

// PaymentRequired is a read-only quotation: the amount a tenant must pay to
// complete a plan transition. Nothing is persisted when it is returned.
type PaymentRequired struct {
	PlanID          uuid.UUID `json:"plan_id"`
	PlanName        string    `json:"plan_name"`
	CurrentPlan     string    `json:"current_plan,omitempty"`
	AmountMinor     int64     `json:"amount_minor"`
	Currency        string    `json:"currency"`
	RequiresPayment bool      `json:"requires_payment"`
	EffectiveFrom   string    `json:"effective_from,omitempty"`
}
