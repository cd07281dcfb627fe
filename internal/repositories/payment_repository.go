package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"shopora/internal/models/db_models"
)

type IPaymentRepository interface {
	Create(ctx context.Context, payment *db_models.Payment) error
	FindByTransactionID(ctx context.Context, transactionID string) (*db_models.Payment, error)
	FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*db_models.Payment, error)
	FindByTransactionIDForTenant(ctx context.Context, transactionID string, tenantID uuid.UUID) (*db_models.Payment, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]db_models.Payment, error)
	MarkFailed(ctx context.Context, id uuid.UUID, raw datatypes.JSON) error
	MarkPaid(ctx context.Context, id uuid.UUID, validationID string, raw datatypes.JSON) (bool, error)
	SetRawResponse(ctx context.Context, id uuid.UUID, raw datatypes.JSON) error
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) IPaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PaymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).
		Preload("Subscription").
		Preload("Subscription.Plan").
		First(&payment, "transaction_id = ?", transactionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).
		Preload("Subscription").
		Preload("Subscription.Plan").
		First(&payment, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) FindByTransactionIDForTenant(ctx context.Context, transactionID string, tenantID uuid.UUID) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).
		First(&payment, "transaction_id = ? AND tenant_id = ?", transactionID, tenantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := r.db.WithContext(ctx).
		Preload("Subscription").
		Preload("Subscription.Plan").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, id uuid.UUID, raw datatypes.JSON) error {
	return r.db.WithContext(ctx).Model(&db_models.Payment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       db_models.PaymentStatusFailed,
			"raw_response": raw,
		}).Error
}

// MarkPaid flips a PENDING payment to PAID. The status predicate in the
// WHERE clause serializes duplicate success callbacks: only one update can
// match, the rest see zero rows affected and report false.
func (r *PaymentRepository) MarkPaid(ctx context.Context, id uuid.UUID, validationID string, raw datatypes.JSON) (bool, error) {
	res := r.db.WithContext(ctx).Model(&db_models.Payment{}).
		Where("id = ? AND status <> ?", id, db_models.PaymentStatusPaid).
		Updates(map[string]interface{}{
			"status":        db_models.PaymentStatusPaid,
			"validation_id": validationID,
			"raw_response":  raw,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PaymentRepository) SetRawResponse(ctx context.Context, id uuid.UUID, raw datatypes.JSON) error {
	return r.db.WithContext(ctx).Model(&db_models.Payment{}).
		Where("id = ?", id).
		Update("raw_response", raw).Error
}
