package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopora/internal/models/db_models"
)

type IOrderRepository interface {
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]db_models.Order, error)
	ListByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]db_models.Order, error)
	FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*db_models.Order, error)
	FindByIDForCustomer(ctx context.Context, id, tenantID, customerID uuid.UUID) (*db_models.Order, error)
	CreateWithItems(ctx context.Context, order *db_models.Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.OrderStatus) error
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Order{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

func (r *OrderRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByIDForCustomer(ctx context.Context, id, tenantID, customerID uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ? AND tenant_id = ? AND customer_id = ?", id, tenantID, customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// CreateWithItems persists the order and its item rows in one transaction
// and decrements product stock.
func (r *OrderRepository) CreateWithItems(ctx context.Context, order *db_models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range order.Items {
			err := tx.Model(&db_models.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock_qty", gorm.Expr("stock_qty - ?", item.Quantity)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&db_models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
