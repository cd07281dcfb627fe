package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopora/internal/models/db_models"
)

type ICategoryRepository interface {
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	MaxSubcategoryCount(ctx context.Context, tenantID uuid.UUID) (int64, error)
	CountSubcategories(ctx context.Context, categoryID uuid.UUID) (int64, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]db_models.Category, error)
	FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*db_models.Category, error)
	Create(ctx context.Context, category *db_models.Category) error
	Save(ctx context.Context, category *db_models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	CreateSubCategory(ctx context.Context, sub *db_models.SubCategory) error
	ListSubCategories(ctx context.Context, categoryID uuid.UUID) ([]db_models.SubCategory, error)
	FindSubCategoryForTenant(ctx context.Context, id, tenantID uuid.UUID) (*db_models.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id uuid.UUID) error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Category{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

// MaxSubcategoryCount returns the largest subcategory count any single
// category of the tenant holds, via a grouped count rather than walking
// every category row.
func (r *CategoryRepository) MaxSubcategoryCount(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).Model(&db_models.SubCategory{}).
		Select("COALESCE(MAX(cnt), 0)").
		Table("(?) AS per_category", r.db.Model(&db_models.SubCategory{}).
			Select("COUNT(*) AS cnt").
			Where("tenant_id = ? AND deleted_at IS NULL", tenantID).
			Group("category_id")).
		Scan(&max).Error
	return max, err
}

func (r *CategoryRepository) CountSubcategories(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.SubCategory{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (r *CategoryRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).
		Preload("SubCategories").
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByIDForTenant(ctx context.Context, id, tenantID uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).
		First(&category, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepository) Save(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Category{}, "id = ?", id).Error
}

func (r *CategoryRepository) CreateSubCategory(ctx context.Context, sub *db_models.SubCategory) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *CategoryRepository) ListSubCategories(ctx context.Context, categoryID uuid.UUID) ([]db_models.SubCategory, error) {
	var subs []db_models.SubCategory
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *CategoryRepository) FindSubCategoryForTenant(ctx context.Context, id, tenantID uuid.UUID) (*db_models.SubCategory, error) {
	var sub db_models.SubCategory
	err := r.db.WithContext(ctx).
		First(&sub, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *CategoryRepository) DeleteSubCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.SubCategory{}, "id = ?", id).Error
}
