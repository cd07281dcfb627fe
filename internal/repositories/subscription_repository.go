package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopora/internal/models/db_models"
)

type ISubscriptionRepository interface {
	FindByTenantID(ctx context.Context, tenantID uuid.UUID) (*db_models.Subscription, error)
	Create(ctx context.Context, sub *db_models.Subscription) error
	Save(ctx context.Context, sub *db_models.Subscription) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.SubscriptionStatus) error
	ListByStatuses(ctx context.Context, statuses []db_models.SubscriptionStatus) ([]db_models.Subscription, error)
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) FindByTenantID(ctx context.Context, tenantID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		First(&sub, "tenant_id = ?", tenantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// Create relies on the unique tenant_id index: the loser of a concurrent
// duplicate activation gets a constraint error instead of a second row.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *db_models.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubscriptionRepository) Save(ctx context.Context, sub *db_models.Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.SubscriptionStatus) error {
	return r.db.WithContext(ctx).Model(&db_models.Subscription{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *SubscriptionRepository) ListByStatuses(ctx context.Context, statuses []db_models.SubscriptionStatus) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Preload("Tenant").
		Where("status IN ?", statuses).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
