package db_models

type BillingInterval string

const (
	IntervalMonthly BillingInterval = "MONTHLY"
	IntervalYearly  BillingInterval = "YEARLY"
)

// Plan is a subscription tier. PriceMinor is in minor currency units
// (999 = 9.99). Deletion is soft: IsActive flips to false and the row stays
// referenced by existing subscriptions.
type Plan struct {
	BaseModel
	Name       string `gorm:"uniqueIndex"`
	PriceMinor int64
	Currency   string          `gorm:"size:3"`
	Interval   BillingInterval `gorm:"default:MONTHLY"`
	TrialDays  int             `gorm:"default:0"`

	MaxProducts                 int
	MaxCategories               int
	MaxSubcategoriesPerCategory int
	MaxOrders                   int

	CustomDomain bool `gorm:"default:false"`
	IsActive     bool `gorm:"default:true"`
}
