package request_models

import "github.com/google/uuid"

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
}

type StorefrontOrderItem struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

type StorefrontOrderRequest struct {
	CustomerName  string                `json:"customer_name" binding:"required"`
	CustomerEmail string                `json:"customer_email" binding:"required,email"`
	CustomerPhone string                `json:"customer_phone,omitempty"`
	Address       string                `json:"address" binding:"required"`
	Items         []StorefrontOrderItem `json:"items" binding:"required,min=1,dive"`
}
