package services

import (
	"context"

	"github.com/google/uuid"

	"shopora/internal/models/db_models"
	"shopora/internal/models/request_models"
	"shopora/internal/models/response_models"
	"shopora/internal/repositories"
	"shopora/pkg/utils"
)

type OrderServiceInterface interface {
	List(ctx context.Context, tenantID uuid.UUID) ([]response_models.OrderResponse, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*response_models.OrderResponse, error)
	UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, req request_models.UpdateOrderStatusRequest) (*response_models.OrderResponse, error)
}

type OrderService struct {
	orderRepo repositories.IOrderRepository
	limits    ILimitChecker
}

func NewOrderService(orderRepo repositories.IOrderRepository, limits ILimitChecker) OrderServiceInterface {
	return &OrderService{orderRepo: orderRepo, limits: limits}
}

func (s *OrderService) List(ctx context.Context, tenantID uuid.UUID) ([]response_models.OrderResponse, error) {
	if err := s.limits.CanView(ctx, tenantID); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewOrderResponses(orders), nil
}

func (s *OrderService) Get(ctx context.Context, tenantID, id uuid.UUID) (*response_models.OrderResponse, error) {
	if err := s.limits.CanView(ctx, tenantID); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.FindByIDForTenant(ctx, id, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.NotFoundf("Order not found")
	}
	resp := response_models.NewOrderResponse(order)
	return &resp, nil
}

// UpdateStatus moves an order along its fulfilment flow. Terminal orders
// stay put; a cancelled or delivered order cannot change again.
func (s *OrderService) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, req request_models.UpdateOrderStatusRequest) (*response_models.OrderResponse, error) {
	if err := s.limits.CanUpdate(ctx, tenantID); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByIDForTenant(ctx, id, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.NotFoundf("Order not found")
	}
	if order.Status == db_models.OrderStatusDelivered || order.Status == db_models.OrderStatusCancelled {
		return nil, utils.Conflictf("Order is already %s and cannot be changed", order.Status)
	}

	status := db_models.OrderStatus(req.Status)
	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, utils.ErrDatabaseError
	}
	order.Status = status
	resp := response_models.NewOrderResponse(order)
	return &resp, nil
}
