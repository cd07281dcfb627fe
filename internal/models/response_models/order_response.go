package response_models

import (
	"github.com/google/uuid"

	"shopora/internal/models/db_models"
)

type OrderItemResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int       `json:"quantity"`
	PriceMinor  int64     `json:"price_minor"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	CustomerPhone string              `json:"customer_phone,omitempty"`
	Address       string              `json:"address"`
	Status        string              `json:"status"`
	TotalMinor    int64               `json:"total_minor"`
	Currency      string              `json:"currency"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     int64               `json:"created_at"`
}

func NewOrderResponse(order *db_models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			PriceMinor:  item.PriceMinor,
		})
	}
	return OrderResponse{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Address:       order.Address,
		Status:        string(order.Status),
		TotalMinor:    order.TotalMinor,
		Currency:      order.Currency,
		Items:         items,
		CreatedAt:     order.CreatedAt,
	}
}

func NewOrderResponses(orders []db_models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
