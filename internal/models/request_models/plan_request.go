package request_models

type CreatePlanRequest struct {
	Name                        string `json:"name" binding:"required"`
	PriceMinor                  int64  `json:"price_minor" binding:"min=0"`
	Currency                    string `json:"currency,omitempty"`
	Interval                    string `json:"interval" binding:"required,oneof=MONTHLY YEARLY"`
	TrialDays                   int    `json:"trial_days" binding:"min=0"`
	MaxProducts                 int    `json:"max_products" binding:"required,min=1"`
	MaxCategories               int    `json:"max_categories" binding:"required,min=1"`
	MaxSubcategoriesPerCategory int    `json:"max_subcategories_per_category" binding:"required,min=1"`
	MaxOrders                   int    `json:"max_orders" binding:"required,min=1"`
	CustomDomain                bool   `json:"custom_domain"`
}

type UpdatePlanRequest struct {
	Name                        *string `json:"name,omitempty"`
	PriceMinor                  *int64  `json:"price_minor,omitempty"`
	Currency                    *string `json:"currency,omitempty"`
	Interval                    *string `json:"interval,omitempty" binding:"omitempty,oneof=MONTHLY YEARLY"`
	TrialDays                   *int    `json:"trial_days,omitempty"`
	MaxProducts                 *int    `json:"max_products,omitempty"`
	MaxCategories               *int    `json:"max_categories,omitempty"`
	MaxSubcategoriesPerCategory *int    `json:"max_subcategories_per_category,omitempty"`
	MaxOrders                   *int    `json:"max_orders,omitempty"`
	CustomDomain                *bool   `json:"custom_domain,omitempty"`
	IsActive                    *bool   `json:"is_active,omitempty"`
}
