package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopora/internal/models/db_models"
)

type INotificationRepository interface {
	Create(ctx context.Context, notification *db_models.Notification) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]db_models.Notification, error)
	ListUnread(ctx context.Context, tenantID uuid.UUID) ([]db_models.Notification, error)
	CountUnread(ctx context.Context, tenantID uuid.UUID) (int64, error)
	FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*db_models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, tenantID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsSince(ctx context.Context, tenantID uuid.UUID, types []db_models.NotificationType, sinceUnix int64) (bool, error)
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) INotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *NotificationRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) ListUnread(ctx context.Context, tenantID uuid.UUID) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_read = FALSE", tenantID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Notification{}).
		Where("tenant_id = ? AND is_read = FALSE", tenantID).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepository) FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*db_models.Notification, error) {
	var notification db_models.Notification
	err := r.db.WithContext(ctx).
		First(&notification, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tenantID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.Notification{}).
		Where("tenant_id = ? AND is_read = FALSE", tenantID).
		Update("is_read", true).Error
}

func (r *NotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Notification{}, "id = ?", id).Error
}

// ExistsSince reports whether a notification of one of the given types was
// created at or after sinceUnix. The expiry sweep uses it as its
// once-per-tenant-per-day guard.
func (r *NotificationRepository) ExistsSince(ctx context.Context, tenantID uuid.UUID, types []db_models.NotificationType, sinceUnix int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Notification{}).
		Where("tenant_id = ? AND type IN ? AND created_at >= ?", tenantID, types, sinceUnix).
		Count(&count).Error
	return count > 0, err
}
