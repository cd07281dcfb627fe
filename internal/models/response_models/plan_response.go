package response_models

import (
	"github.com/google/uuid"

	"shopora/internal/models/db_models"
)

type PlanResponse struct {
	ID                          uuid.UUID `json:"id"`
	Name                        string    `json:"name"`
	PriceMinor                  int64     `json:"price_minor"`
	Currency                    string    `json:"currency"`
	Interval                    string    `json:"interval"`
	TrialDays                   int       `json:"trial_days"`
	MaxProducts                 int       `json:"max_products"`
	MaxCategories               int       `json:"max_categories"`
	MaxSubcategoriesPerCategory int       `json:"max_subcategories_per_category"`
	MaxOrders                   int       `json:"max_orders"`
	CustomDomain                bool      `json:"custom_domain"`
	IsActive                    bool      `json:"is_active"`
}

func NewPlanResponse(plan *db_models.Plan) PlanResponse {
	return PlanResponse{
		ID:                          plan.ID,
		Name:                        plan.Name,
		PriceMinor:                  plan.PriceMinor,
		Currency:                    plan.Currency,
		Interval:                    string(plan.Interval),
		TrialDays:                   plan.TrialDays,
		MaxProducts:                 plan.MaxProducts,
		MaxCategories:               plan.MaxCategories,
		MaxSubcategoriesPerCategory: plan.MaxSubcategoriesPerCategory,
		MaxOrders:                   plan.MaxOrders,
		CustomDomain:                plan.CustomDomain,
		IsActive:                    plan.IsActive,
	}
}

func NewPlanResponses(plans []db_models.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, NewPlanResponse(&plans[i]))
	}
	return out
}
