package db_models

import "github.com/google/uuid"

type Product struct {
	BaseModel
	TenantID      uuid.UUID  `gorm:"type:uuid;index"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index"`
	SubCategoryID *uuid.UUID `gorm:"type:uuid;index"`

	Name        string
	Description string
	PriceMinor  int64
	Currency    string `gorm:"size:3"`
	ImageURL    string
	StockQty    int  `gorm:"default:0"`
	IsPublished bool `gorm:"default:true"`

	Category    *Category    `gorm:"foreignKey:CategoryID"`
	SubCategory *SubCategory `gorm:"foreignKey:SubCategoryID"`
}
