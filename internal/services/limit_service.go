package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopora/internal/models/db_models"
	"shopora/internal/repositories"
	"shopora/pkg/utils"
)

// CreateTarget names the resource a tenant is about to create. Each variant
// carries its own parent requirement, so a subcategory check cannot be
// issued without its category.
type CreateTarget interface {
	resourceName() string
}

type ProductTarget struct{}

type CategoryTarget struct{}

type SubCategoryTarget struct {
	CategoryID uuid.UUID
}

func (ProductTarget) resourceName() string     { return "products" }
func (CategoryTarget) resourceName() string    { return "categories" }
func (SubCategoryTarget) resourceName() string { return "subcategories" }

type UsageCounts struct {
	Products            int64
	Categories          int64
	MaxSubcategoryCount int64
}

type ILimitChecker interface {
	CanCreate(ctx context.Context, tenantID uuid.UUID, target CreateTarget) error
	CanUpdate(ctx context.Context, tenantID uuid.UUID) error
	CanDelete(ctx context.Context, tenantID uuid.UUID) error
	CanView(ctx context.Context, tenantID uuid.UUID) error
	Usage(ctx context.Context, tenantID uuid.UUID) (UsageCounts, error)
	PlanViolations(ctx context.Context, tenantID uuid.UUID, plan *db_models.Plan) ([]string, error)
}

type LimitChecker struct {
	subscriptionRepo repositories.ISubscriptionRepository
	productRepo      repositories.IProductRepository
	categoryRepo     repositories.ICategoryRepository
	policy           AccessPolicy
	now              func() time.Time
}

func NewLimitChecker(
	subscriptionRepo repositories.ISubscriptionRepository,
	productRepo repositories.IProductRepository,
	categoryRepo repositories.ICategoryRepository,
	policy AccessPolicy,
) ILimitChecker {
	return &LimitChecker{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		policy:           policy,
		now:              time.Now,
	}
}

// CanCreate allows creation only when the subscription grants it, current
// usage does not already exceed the plan (a downgraded tenant is blocked
// until counts fit again), and the specific resource is under its quota.
func (l *LimitChecker) CanCreate(ctx context.Context, tenantID uuid.UUID, target CreateTarget) error {
	sub, err := l.loadSubscription(ctx, tenantID)
	if err != nil {
		return err
	}

	access := l.policy.Evaluate(sub, l.now())
	if !access.CanCreate {
		return utils.Forbiddenf("%s", access.Message)
	}

	violations, err := l.PlanViolations(ctx, tenantID, &sub.Plan)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return utils.Forbiddenf(
			"You have exceeded your plan limits. %s Please delete some items or upgrade your plan.",
			strings.Join(violations, " "))
	}

	return l.checkResourceLimit(ctx, tenantID, target, &sub.Plan)
}

func (l *LimitChecker) CanUpdate(ctx context.Context, tenantID uuid.UUID) error {
	sub, err := l.loadSubscription(ctx, tenantID)
	if err != nil {
		return err
	}

	access := l.policy.Evaluate(sub, l.now())
	if !access.CanUpdate {
		return utils.Forbiddenf("%s", access.Message)
	}

	violations, err := l.PlanViolations(ctx, tenantID, &sub.Plan)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return utils.Forbiddenf(
			"You have exceeded your plan limits. %s Please delete some items or upgrade your plan to make updates.",
			strings.Join(violations, " "))
	}

	return nil
}

// CanDelete skips the over-limit check: deletion must remain possible even
// over quota, it is how a tenant sheds data to fit a smaller plan.
func (l *LimitChecker) CanDelete(ctx context.Context, tenantID uuid.UUID) error {
	sub, err := l.loadSubscription(ctx, tenantID)
	if err != nil {
		return err
	}

	access := l.policy.Evaluate(sub, l.now())
	if !access.CanDelete {
		return utils.Forbiddenf("%s", access.Message)
	}
	return nil
}

func (l *LimitChecker) CanView(ctx context.Context, tenantID uuid.UUID) error {
	sub, err := l.loadSubscription(ctx, tenantID)
	if err != nil {
		return err
	}

	access := l.policy.Evaluate(sub, l.now())
	if !access.HasAccess {
		return utils.Forbiddenf("%s", access.Message)
	}
	return nil
}

func (l *LimitChecker) Usage(ctx context.Context, tenantID uuid.UUID) (UsageCounts, error) {
	products, err := l.productRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		return UsageCounts{}, err
	}
	categories, err := l.categoryRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		return UsageCounts{}, err
	}
	maxSub, err := l.categoryRepo.MaxSubcategoryCount(ctx, tenantID)
	if err != nil {
		return UsageCounts{}, err
	}
	return UsageCounts{
		Products:            products,
		Categories:          categories,
		MaxSubcategoryCount: maxSub,
	}, nil
}

// PlanViolations lists, with delete-N remediation wording, every quota the
// tenant's current usage exceeds under the given plan. Used both for the
// over-limit gate and for downgrade validation.
func (l *LimitChecker) PlanViolations(ctx context.Context, tenantID uuid.UUID, plan *db_models.Plan) ([]string, error) {
	usage, err := l.Usage(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var violations []string
	if usage.Products > int64(plan.MaxProducts) {
		violations = append(violations, fmt.Sprintf(
			"Delete %d product(s) to meet your limit of %d.",
			usage.Products-int64(plan.MaxProducts), plan.MaxProducts))
	}
	if usage.Categories > int64(plan.MaxCategories) {
		violations = append(violations, fmt.Sprintf(
			"Delete %d category(ies) to meet your limit of %d.",
			usage.Categories-int64(plan.MaxCategories), plan.MaxCategories))
	}
	if usage.MaxSubcategoryCount > int64(plan.MaxSubcategoriesPerCategory) {
		violations = append(violations, fmt.Sprintf(
			"Reduce subcategories in some categories to meet limit of %d per category.",
			plan.MaxSubcategoriesPerCategory))
	}
	return violations, nil
}

func (l *LimitChecker) loadSubscription(ctx context.Context, tenantID uuid.UUID) (*db_models.Subscription, error) {
	sub, err := l.subscriptionRepo.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.Forbiddenf("No subscription found. Please select a plan to continue.")
	}
	return sub, nil
}

// checkResourceLimit blocks creation once count >= limit, so a plan quota
// of 5 products refuses the sixth.
func (l *LimitChecker) checkResourceLimit(ctx context.Context, tenantID uuid.UUID, target CreateTarget, plan *db_models.Plan) error {
	switch t := target.(type) {
	case ProductTarget:
		count, err := l.productRepo.CountByTenant(ctx, tenantID)
		if err != nil {
			return err
		}
		if count >= int64(plan.MaxProducts) {
			return utils.Forbiddenf(
				"You have reached the maximum number of products (%d) for your %s plan. Upgrade to add more.",
				plan.MaxProducts, plan.Name)
		}
	case CategoryTarget:
		count, err := l.categoryRepo.CountByTenant(ctx, tenantID)
		if err != nil {
			return err
		}
		if count >= int64(plan.MaxCategories) {
			return utils.Forbiddenf(
				"You have reached the maximum number of categories (%d) for your %s plan. Upgrade to add more.",
				plan.MaxCategories, plan.Name)
		}
	case SubCategoryTarget:
		if t.CategoryID == uuid.Nil {
			return utils.NotFoundf("Category ID is required for subcategory limit check")
		}
		count, err := l.categoryRepo.CountSubcategories(ctx, t.CategoryID)
		if err != nil {
			return err
		}
		if count >= int64(plan.MaxSubcategoriesPerCategory) {
			return utils.Forbiddenf(
				"You have reached the maximum subcategories (%d) for this category in your %s plan. Upgrade to add more.",
				plan.MaxSubcategoriesPerCategory, plan.Name)
		}
	default:
		return utils.BadRequestf("unknown resource type %q", target.resourceName())
	}
	return nil
}
