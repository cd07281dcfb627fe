package db_models

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	BaseModel
	TenantID      uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID    *uuid.UUID `gorm:"type:uuid;index"` // nil for guest checkouts
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	Status        OrderStatus `gorm:"index;default:PENDING"`
	TotalMinor    int64
	Currency      string `gorm:"size:3"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem snapshots the product price at order time.
type OrderItem struct {
	BaseModel
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;index"`
	Quantity   int
	PriceMinor int64

	Product Product `gorm:"foreignKey:ProductID"`
}
