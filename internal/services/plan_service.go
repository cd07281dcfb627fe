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

type PlanServiceInterface interface {
	ListActive(ctx context.Context) ([]response_models.PlanResponse, error)
	ListAll(ctx context.Context) ([]response_models.PlanResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response_models.PlanResponse, error)
	Create(ctx context.Context, req request_models.CreatePlanRequest) (*response_models.PlanResponse, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdatePlanRequest) (*response_models.PlanResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*response_models.PlanResponse, error)
	SeedDefaults(ctx context.Context) ([]response_models.PlanResponse, error)
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{planRepo: planRepo}
}

func (s *PlanService) ListActive(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := s.planRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewPlanResponses(plans), nil
}

func (s *PlanService) ListAll(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := s.planRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewPlanResponses(plans), nil
}

func (s *PlanService) GetByID(ctx context.Context, id uuid.UUID) (*response_models.PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.NotFoundf("Plan not found")
	}
	resp := response_models.NewPlanResponse(plan)
	return &resp, nil
}

func (s *PlanService) Create(ctx context.Context, req request_models.CreatePlanRequest) (*response_models.PlanResponse, error) {
	existing, err := s.planRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.Conflictf("Plan with this name already exists")
	}

	currency := req.Currency
	if currency == "" {
		currency = "BDT"
	}

	plan := &db_models.Plan{
		Name:                        req.Name,
		PriceMinor:                  req.PriceMinor,
		Currency:                    currency,
		Interval:                    db_models.BillingInterval(req.Interval),
		TrialDays:                   req.TrialDays,
		MaxProducts:                 req.MaxProducts,
		MaxCategories:               req.MaxCategories,
		MaxSubcategoriesPerCategory: req.MaxSubcategoriesPerCategory,
		MaxOrders:                   req.MaxOrders,
		CustomDomain:                req.CustomDomain,
		IsActive:                    true,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewPlanResponse(plan)
	return &resp, nil
}

func (s *PlanService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdatePlanRequest) (*response_models.PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.NotFoundf("Plan not found")
	}

	if req.Name != nil && *req.Name != plan.Name {
		duplicate, err := s.planRepo.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if duplicate != nil {
			return nil, utils.Conflictf("Plan with this name already exists")
		}
		plan.Name = *req.Name
	}
	if req.PriceMinor != nil {
		plan.PriceMinor = *req.PriceMinor
	}
	if req.Currency != nil {
		plan.Currency = *req.Currency
	}
	if req.Interval != nil {
		plan.Interval = db_models.BillingInterval(*req.Interval)
	}
	if req.TrialDays != nil {
		plan.TrialDays = *req.TrialDays
	}
	if req.MaxProducts != nil {
		plan.MaxProducts = *req.MaxProducts
	}
	if req.MaxCategories != nil {
		plan.MaxCategories = *req.MaxCategories
	}
	if req.MaxSubcategoriesPerCategory != nil {
		plan.MaxSubcategoriesPerCategory = *req.MaxSubcategoriesPerCategory
	}
	if req.MaxOrders != nil {
		plan.MaxOrders = *req.MaxOrders
	}
	if req.CustomDomain != nil {
		plan.CustomDomain = *req.CustomDomain
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewPlanResponse(plan)
	return &resp, nil
}

// Delete is soft: the plan is deactivated, never removed, and the operation
// is refused while live subscriptions still reference it.
func (s *PlanService) Delete(ctx context.Context, id uuid.UUID) (*response_models.PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.NotFoundf("Plan not found")
	}

	live, err := s.planRepo.CountLiveSubscriptions(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if live > 0 {
		return nil, utils.Conflictf("Cannot delete plan with %d active subscription(s)", live)
	}

	plan.IsActive = false
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := response_models.NewPlanResponse(plan)
	return &resp, nil
}

func (s *PlanService) SeedDefaults(ctx context.Context) ([]response_models.PlanResponse, error) {
	count, err := s.planRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, nil
	}

	plans := []db_models.Plan{
		{
			Name: "Free Trial", PriceMinor: 0, Currency: "BDT",
			Interval: db_models.IntervalMonthly, TrialDays: 14,
			MaxProducts: 20, MaxCategories: 5, MaxSubcategoriesPerCategory: 5,
			MaxOrders: 50, CustomDomain: false, IsActive: true,
		},
		{
			Name: "Starter", PriceMinor: 99900, Currency: "BDT",
			Interval: db_models.IntervalMonthly, TrialDays: 0,
			MaxProducts: 100, MaxCategories: 20, MaxSubcategoriesPerCategory: 10,
			MaxOrders: 500, CustomDomain: false, IsActive: true,
		},
		{
			Name: "Growth", PriceMinor: 249900, Currency: "BDT",
			Interval: db_models.IntervalMonthly, TrialDays: 0,
			MaxProducts: 200, MaxCategories: 50, MaxSubcategoriesPerCategory: 25,
			MaxOrders: 2000, CustomDomain: true, IsActive: true,
		},
	}
	if err := s.planRepo.CreateBatch(ctx, plans); err != nil {
		return nil, utils.ErrDatabaseError
	}

	seeded, err := s.planRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewPlanResponses(seeded), nil
}
