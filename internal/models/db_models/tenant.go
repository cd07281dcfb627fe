package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Tenant is a store owner's isolated data partition. Every catalog row,
// order, payment and the (at most one) subscription hang off a tenant.
type Tenant struct {
	BaseModel
	Name         string
	Domain       *string `gorm:"uniqueIndex"`
	IsActive     bool    `gorm:"default:true"`
	HasUsedTrial bool    `gorm:"default:false"` // irreversible once set

	Users        []User        `gorm:"foreignKey:TenantID"`
	Categories   []Category    `gorm:"foreignKey:TenantID"`
	Products     []Product     `gorm:"foreignKey:TenantID"`
	Subscription *Subscription `gorm:"foreignKey:TenantID"`
	Payments     []Payment     `gorm:"foreignKey:TenantID"`
}

// TenantBrand holds storefront branding for a tenant. One row per tenant,
// created lazily on first update.
type TenantBrand struct {
	BaseModel
	TenantID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	StoreName    string
	LogoURL      string
	PrimaryColor string
	AccentColor  string
	Settings     datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Tenant Tenant `gorm:"foreignKey:TenantID"`
}
