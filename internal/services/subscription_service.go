package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopora/internal/models/db_models"
	"shopora/internal/models/response_models"
	"shopora/internal/repositories"
	"shopora/pkg/utils"
)

type SubscriptionServiceInterface interface {
	GetCurrent(ctx context.Context, tenantID uuid.UUID) (*response_models.SubscriptionDetail, error)
	GetUsage(ctx context.Context, tenantID uuid.UUID) (*response_models.UsageResponse, error)
	ActivateTrial(ctx context.Context, tenantID uuid.UUID) (*response_models.SubscriptionDetail, string, error)
	SelectPlan(ctx context.Context, tenantID, planID uuid.UUID) (interface{}, string, error)
	ActivateSubscription(ctx context.Context, tenantID, planID uuid.UUID) (*response_models.SubscriptionDetail, error)
	UpgradePlan(ctx context.Context, tenantID, newPlanID uuid.UUID) (*response_models.PaymentRequired, error)
	DowngradePlan(ctx context.Context, tenantID, newPlanID uuid.UUID) (*response_models.PaymentRequired, error)
	RenewSubscription(ctx context.Context, tenantID uuid.UUID) (*response_models.PaymentRequired, error)
	CheckAccess(ctx context.Context, tenantID uuid.UUID) (AccessStatus, error)
}

type SubscriptionService struct {
	subscriptionRepo repositories.ISubscriptionRepository
	planRepo         repositories.IPlanRepository
	tenantRepo       repositories.ITenantRepository
	limits           ILimitChecker
	policy           AccessPolicy
	now              func() time.Time
}

func NewSubscriptionService(
	subscriptionRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
	tenantRepo repositories.ITenantRepository,
	limits ILimitChecker,
	policy AccessPolicy,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		tenantRepo:       tenantRepo,
		limits:           limits,
		policy:           policy,
		now:              time.Now,
	}
}

func (s *SubscriptionService) GetCurrent(ctx context.Context, tenantID uuid.UUID) (*response_models.SubscriptionDetail, error) {
	sub, err := s.subscriptionRepo.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, nil
	}
	detail := s.toDetail(sub)
	return &detail, nil
}

func (s *SubscriptionService) GetUsage(ctx context.Context, tenantID uuid.UUID) (*response_models.UsageResponse, error) {
	sub, err := s.subscriptionRepo.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.NotFoundf("No subscription found. Please select a plan.")
	}

	usage, err := s.limits.Usage(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UsageResponse{
		Products: response_models.ResourceUsage{
			Used:      int(usage.Products),
			Limit:     sub.Plan.MaxProducts,
			Remaining: sub.Plan.MaxProducts - int(usage.Products),
		},
		Categories: response_models.ResourceUsage{
			Used:      int(usage.Categories),
			Limit:     sub.Plan.MaxCategories,
			Remaining: sub.Plan.MaxCategories - int(usage.Categories),
		},
		SubcategoriesPerCategory: response_models.SubcategoryUsage{
			MaxUsed: int(usage.MaxSubcategoryCount),
			Limit:   sub.Plan.MaxSubcategoriesPerCategory,
		},
		Plan: response_models.NewPlanResponse(&sub.Plan),
	}, nil
}

// ActivateTrial moves a tenant with no subscription history onto the trial
// plan. The HasUsedTrial flag is permanent: once set the tenant can never
// re-enter TRIAL, even after the subscription expires.
func (s *SubscriptionService) ActivateTrial(ctx context.Context, tenantID uuid.UUID) (*response_models.SubscriptionDetail, string, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if tenant == nil {
		return nil, "", utils.NotFoundf("Tenant not found")
	}
	if tenant.HasUsedTrial {
		return nil, "", utils.BadRequestf(
			"You have already used your free trial. Please select a paid plan to continue.")
	}

	existing, err := s.subscriptionRepo.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, "", utils.BadRequestf(
			"You already have an active subscription. Use upgrade or renew instead.")
	}

	trialPlan, err := s.planRepo.FindTrialPlan(ctx)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if trialPlan == nil {
		return nil, "", utils.NotFoundf("Free trial plan not available. Please contact support.")
	}

	now := s.now()
	trialEndsAt := now.AddDate(0, 0, trialPlan.TrialDays)
	sub := &db_models.Subscription{
		TenantID:    tenantID,
		PlanID:      trialPlan.ID,
		Status:      db_models.SubStatusTrial,
		StartDate:   now,
		EndDate:     &trialEndsAt,
		TrialEndsAt: &trialEndsAt,
	}
	if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if err := s.tenantRepo.MarkTrialUsed(ctx, tenantID); err != nil {
		return nil, "", utils.ErrDatabaseError
	}

	sub.Plan = *trialPlan
	detail := s.toDetail(sub)
	message := fmt.Sprintf(
		"Free trial activated successfully! You have %d days to explore.",
		trialPlan.TrialDays)
	return &detail, message, nil
}

// SelectPlan routes the zero-price trial plan to trial activation. Paid
// plans only return a quotation; activation happens after payment.
func (s *SubscriptionService) SelectPlan(ctx context.Context, tenantID, planID uuid.UUID) (interface{}, string, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, "", utils.NotFoundf("Plan not found")
	}
	if !plan.IsActive {
		return nil, "", utils.BadRequestf("This plan is no longer available")
	}

	if plan.PriceMinor == 0 && plan.TrialDays > 0 {
		detail, message, err := s.ActivateTrial(ctx, tenantID)
		return detail, message, err
	}

	return &response_models.PaymentRequired{
		PlanID:          plan.ID,
		PlanName:        plan.Name,
		AmountMinor:     plan.PriceMinor,
		Currency:        plan.Currency,
		RequiresPayment: true,
	}, "Please complete payment to activate this plan", nil
}

// ActivateSubscription is invoked only by the payment orchestrator after
// gateway validation, never directly by a tenant. It upserts the one
// subscription row: status ACTIVE, fresh billing window per the plan's
// interval, trial anchor cleared for good.
func (s *SubscriptionService) ActivateSubscription(ctx context.Context, tenantID, planID uuid.UUID) (*response_models.SubscriptionDetail, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.NotFoundf("Plan not found")
	}

	now := s.now()
	endDate := now.AddDate(0, 1, 0)
	if plan.Interval == db_models.IntervalYearly {
		endDate = now.AddDate(1, 0, 0)
	}

	existing, err := s.subscriptionRepo.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var sub *db_models.Subscription
	if existing != nil {
		existing.PlanID = planID
		existing.Status = db_models.SubStatusActive
		existing.StartDate = now
		existing.EndDate = &endDate
		existing.TrialEndsAt = nil
		if err := s.subscriptionRepo.Save(ctx, existing); err != nil {
			return nil, utils.ErrDatabaseError
		}
		sub = existing
	} else {
		sub = &db_models.Subscription{
			TenantID:  tenantID,
			PlanID:    planID,
			Status:    db_models.SubStatusActive,
			StartDate: now,
			EndDate:   &endDate,
		}
		if err := s.subscriptionRepo.Create(ctx, sub); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	log.Printf("Subscription activated for tenant %s on plan %s", tenantID, plan.Name)

	sub.Plan = *plan
	detail := s.toDetail(sub)
	return &detail, nil
}

func (s *SubscriptionService) UpgradePlan(ctx context.Context, tenantID, newPlanID uuid.UUID) (*response_models.PaymentRequired, error) {
	sub, err := s.subscriptionRepo.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.NotFoundf("No subscription found. Please select a plan first.")
	}

	newPlan, err := s.planRepo.FindByID(ctx, newPlanID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if newPlan == nil {
		return nil, utils.NotFoundf("Plan not found")
	}
	if !newPlan.IsActive {
		return nil, utils.BadRequestf("This plan is no longer available")
	}
	if newPlan.PriceMinor <= sub.Plan.PriceMinor {
		return nil, utils.BadRequestf(
			"For upgrading, please select a plan with a higher price. Use downgrade for lower plans.")
	}

	return &response_models.PaymentRequired{
		PlanID:          newPlan.ID,
		PlanName:        newPlan.Name,
		CurrentPlan:     sub.Plan.Name,
		AmountMinor:     newPlan.PriceMinor,
		Currency:        newPlan.Currency,
		RequiresPayment: true,
	}, nil
}

// DowngradePlan validates that current usage fits under the new plan's
// quotas before quoting; nothing is persisted either way.
func (s *SubscriptionService) DowngradePlan(ctx context.Context, tenantID, newPlanID uuid.UUID) (*response_models.PaymentRequired, error) {
	sub, err := s.subscriptionRepo.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.NotFoundf("No subscription found. Please select a plan first.")
	}

	newPlan, err := s.planRepo.FindByID(ctx, newPlanID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if newPlan == nil {
		return nil, utils.NotFoundf("Plan not found")
	}
	if !newPlan.IsActive {
		return nil, utils.BadRequestf("This plan is no longer available")
	}
	if newPlan.PriceMinor >= sub.Plan.PriceMinor {
		return nil, utils.BadRequestf(
			"For downgrading, please select a plan with a lower price. Use upgrade for higher plans.")
	}

	violations, err := s.limits.PlanViolations(ctx, tenantID, newPlan)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(violations) > 0 {
		return nil, utils.Forbiddenf(
			"Cannot downgrade: You exceed the new plan limits. %s",
			strings.Join(violations, " "))
	}

	if newPlan.PriceMinor == 0 {
		return nil, utils.BadRequestf(
			"Cannot downgrade to the free trial. Please select a paid plan or contact support.")
	}

	return &response_models.PaymentRequired{
		PlanID:          newPlan.ID,
		PlanName:        newPlan.Name,
		CurrentPlan:     sub.Plan.Name,
		AmountMinor:     newPlan.PriceMinor,
		Currency:        newPlan.Currency,
		RequiresPayment: true,
		EffectiveFrom:   "Next billing cycle",
	}, nil
}

func (s *SubscriptionService) RenewSubscription(ctx context.Context, tenantID uuid.UUID) (*response_models.PaymentRequired, error) {
	sub, err := s.subscriptionRepo.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.NotFoundf("No subscription found. Please select a plan first.")
	}
	if sub.Plan.PriceMinor == 0 {
		return nil, utils.BadRequestf(
			"Free trial cannot be renewed. Please select a paid plan to continue.")
	}

	return &response_models.PaymentRequired{
		PlanID:          sub.Plan.ID,
		PlanName:        sub.Plan.Name,
		AmountMinor:     sub.Plan.PriceMinor,
		Currency:        sub.Plan.Currency,
		RequiresPayment: true,
	}, nil
}

func (s *SubscriptionService) CheckAccess(ctx context.Context, tenantID uuid.UUID) (AccessStatus, error) {
	sub, err := s.subscriptionRepo.FindByTenantID(ctx, tenantID)
	if err != nil {
		return AccessStatus{}, utils.ErrDatabaseError
	}
	if sub == nil {
		return NoSubscriptionStatus(), nil
	}
	return s.policy.Evaluate(sub, s.now()), nil
}

func (s *SubscriptionService) toDetail(sub *db_models.Subscription) response_models.SubscriptionDetail {
	access := s.policy.Evaluate(sub, s.now())
	return response_models.SubscriptionDetail{
		ID:                       sub.ID,
		TenantID:                 sub.TenantID,
		Plan:                     response_models.NewPlanResponse(&sub.Plan),
		Status:                   string(sub.Status),
		StartDate:                sub.StartDate,
		EndDate:                  sub.EndDate,
		TrialEndsAt:              sub.TrialEndsAt,
		CurrentStatus:            access.Status,
		DaysRemaining:            access.DaysRemaining,
		IsInGracePeriod:          access.IsInGracePeriod,
		GracePeriodDaysRemaining: access.GracePeriodDaysRemaining,
	}
}
