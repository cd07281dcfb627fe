package db_models

import "github.com/google/uuid"

type Category struct {
	BaseModel
	TenantID    uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string

	SubCategories []SubCategory `gorm:"foreignKey:CategoryID"`
	Products      []Product     `gorm:"foreignKey:CategoryID"`
}

type SubCategory struct {
	BaseModel
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;index"`
	Name       string

	Category Category `gorm:"foreignKey:CategoryID"`
}
