package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopora/internal/models/db_models"
)

type ITenantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Tenant, error)
	FindByDomain(ctx context.Context, domain string) (*db_models.Tenant, error)
	CreateWithAdmin(ctx context.Context, tenant *db_models.Tenant, admin *db_models.User) error
	MarkTrialUsed(ctx context.Context, id uuid.UUID) error
	FindBrand(ctx context.Context, tenantID uuid.UUID) (*db_models.TenantBrand, error)
	SaveBrand(ctx context.Context, brand *db_models.TenantBrand) error
}

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) ITenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Tenant, error) {
	var tenant db_models.Tenant
	err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) FindByDomain(ctx context.Context, domain string) (*db_models.Tenant, error) {
	var tenant db_models.Tenant
	err := r.db.WithContext(ctx).First(&tenant, "domain = ? AND is_active = TRUE", domain).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

// CreateWithAdmin inserts the tenant and its first TENANT_ADMIN user in one
// transaction so a tenant never exists without an owner.
func (r *TenantRepository) CreateWithAdmin(ctx context.Context, tenant *db_models.Tenant, admin *db_models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return err
		}
		admin.TenantID = &tenant.ID
		return tx.Create(admin).Error
	})
}

func (r *TenantRepository) MarkTrialUsed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.Tenant{}).
		Where("id = ?", id).
		Update("has_used_trial", true).Error
}

func (r *TenantRepository) FindBrand(ctx context.Context, tenantID uuid.UUID) (*db_models.TenantBrand, error) {
	var brand db_models.TenantBrand
	err := r.db.WithContext(ctx).First(&brand, "tenant_id = ?", tenantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *TenantRepository) SaveBrand(ctx context.Context, brand *db_models.TenantBrand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}
