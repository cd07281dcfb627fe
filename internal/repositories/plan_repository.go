package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopora/internal/models/db_models"
)

type IPlanRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error)
	FindByName(ctx context.Context, name string) (*db_models.Plan, error)
	FindTrialPlan(ctx context.Context) (*db_models.Plan, error)
	ListActive(ctx context.Context) ([]db_models.Plan, error)
	ListAll(ctx context.Context) ([]db_models.Plan, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, plan *db_models.Plan) error
	CreateBatch(ctx context.Context, plans []db_models.Plan) error
	Save(ctx context.Context, plan *db_models.Plan) error
	CountLiveSubscriptions(ctx context.Context, planID uuid.UUID) (int64, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) FindByName(ctx context.Context, name string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// FindTrialPlan returns the designated zero-price plan with positive trial
// days, if one is configured and active.
func (r *PlanRepository) FindTrialPlan(ctx context.Context) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).
		Where("price_minor = 0 AND trial_days > 0 AND is_active = TRUE").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) ListActive(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("price_minor ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) ListAll(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := r.db.WithContext(ctx).Order("price_minor ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Plan{}).Count(&count).Error
	return count, err
}

func (r *PlanRepository) Create(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *PlanRepository) CreateBatch(ctx context.Context, plans []db_models.Plan) error {
	return r.db.WithContext(ctx).Create(&plans).Error
}

func (r *PlanRepository) Save(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// CountLiveSubscriptions counts TRIAL and ACTIVE subscriptions referencing
// the plan. Plan deletion is blocked while this is nonzero.
func (r *PlanRepository) CountLiveSubscriptions(ctx context.Context, planID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Subscription{}).
		Where("plan_id = ? AND status IN ?", planID,
			[]db_models.SubscriptionStatus{db_models.SubStatusTrial, db_models.SubStatusActive}).
		Count(&count).Error
	return count, err
}
