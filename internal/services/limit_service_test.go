package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopora/internal/models/db_models"
	"shopora/pkg/utils"
)

type limitFixture struct {
	tenantID   uuid.UUID
	plan       *db_models.Plan
	subs       *fakeSubscriptionRepo
	products   *fakeProductRepo
	categories *fakeCategoryRepo
	checker    *LimitChecker
	now        time.Time
}

func newLimitFixture(t *testing.T) *limitFixture {
	t.Helper()
	f := &limitFixture{
		tenantID:   uuid.New(),
		subs:       newFakeSubscriptionRepo(),
		products:   &fakeProductRepo{},
		categories: &fakeCategoryRepo{},
		now:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.plan = &db_models.Plan{
		Name:                        "Free Trial",
		MaxProducts:                 5,
		MaxCategories:               3,
		MaxSubcategoriesPerCategory: 2,
	}
	f.plan.ID = uuid.New()

	endDate := f.now.AddDate(0, 0, 10)
	sub := &db_models.Subscription{
		TenantID: f.tenantID,
		PlanID:   f.plan.ID,
		Status:   db_models.SubStatusActive,
		EndDate:  &endDate,
		Plan:     *f.plan,
	}
	require.NoError(t, f.subs.Create(context.Background(), sub))

	f.checker = NewLimitChecker(f.subs, f.products, f.categories, NewAccessPolicy()).(*LimitChecker)
	f.checker.now = func() time.Time { return f.now }
	return f
}

func (f *limitFixture) addProducts(n int) {
	for i := 0; i < n; i++ {
		f.products.add(&db_models.Product{TenantID: f.tenantID})
	}
}

func (f *limitFixture) addCategories(n int) {
	for i := 0; i < n; i++ {
		f.categories.addCategory(&db_models.Category{TenantID: f.tenantID})
	}
}

func TestCanCreateProductUnderLimit(t *testing.T) {
	f := newLimitFixture(t)
	f.addProducts(4)

	err := f.checker.CanCreate(context.Background(), f.tenantID, ProductTarget{})

	assert.NoError(t, err)
}

func TestCanCreateProductAtLimitBlocked(t *testing.T) {
	f := newLimitFixture(t)
	f.addProducts(5)

	err := f.checker.CanCreate(context.Background(), f.tenantID, ProductTarget{})

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Equal(t,
		"You have reached the maximum number of products (5) for your Free Trial plan. Upgrade to add more.",
		err.Error())
}

func TestCanCreateCategoryAtLimitBlocked(t *testing.T) {
	f := newLimitFixture(t)
	f.addCategories(3)

	err := f.checker.CanCreate(context.Background(), f.tenantID, CategoryTarget{})

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Equal(t,
		"You have reached the maximum number of categories (3) for your Free Trial plan. Upgrade to add more.",
		err.Error())
}

func TestCanCreateSubcategoryAtLimitBlocked(t *testing.T) {
	f := newLimitFixture(t)
	category := f.categories.addCategory(&db_models.Category{TenantID: f.tenantID})
	f.categories.addSub(&db_models.SubCategory{TenantID: f.tenantID, CategoryID: category.ID})
	f.categories.addSub(&db_models.SubCategory{TenantID: f.tenantID, CategoryID: category.ID})

	err := f.checker.CanCreate(context.Background(), f.tenantID, SubCategoryTarget{CategoryID: category.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Equal(t,
		"You have reached the maximum subcategories (2) for this category in your Free Trial plan. Upgrade to add more.",
		err.Error())
}

func TestCanCreateSubcategoryRequiresCategoryID(t *testing.T) {
	f := newLimitFixture(t)

	err := f.checker.CanCreate(context.Background(), f.tenantID, SubCategoryTarget{})

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Equal(t, "Category ID is required for subcategory limit check", err.Error())
}

func TestCanCreateBlockedWhenOverAnyLimit(t *testing.T) {
	// A tenant over the product quota after a downgrade cannot create
	// anything, a category included, until counts fit again.
	f := newLimitFixture(t)
	f.addProducts(8)

	err := f.checker.CanCreate(context.Background(), f.tenantID, CategoryTarget{})

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Equal(t,
		"You have exceeded your plan limits. Delete 3 product(s) to meet your limit of 5. Please delete some items or upgrade your plan.",
		err.Error())
}

func TestCanUpdateBlockedWhenOverLimit(t *testing.T) {
	f := newLimitFixture(t)
	f.addProducts(6)

	err := f.checker.CanUpdate(context.Background(), f.tenantID)

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Equal(t,
		"You have exceeded your plan limits. Delete 1 product(s) to meet your limit of 5. Please delete some items or upgrade your plan to make updates.",
		err.Error())
}

func TestCanDeleteAllowedWhenOverLimit(t *testing.T) {
	f := newLimitFixture(t)
	f.addProducts(10)

	err := f.checker.CanDelete(context.Background(), f.tenantID)

	assert.NoError(t, err)
}

func TestGracePeriodAllowsDeleteOnly(t *testing.T) {
	f := newLimitFixture(t)
	expired := f.now.AddDate(0, 0, -2)
	f.subs.subs[f.tenantID].EndDate = &expired

	assert.Error(t, f.checker.CanCreate(context.Background(), f.tenantID, ProductTarget{}))
	assert.Error(t, f.checker.CanUpdate(context.Background(), f.tenantID))
	assert.NoError(t, f.checker.CanDelete(context.Background(), f.tenantID))
	assert.NoError(t, f.checker.CanView(context.Background(), f.tenantID))
}

func TestExpiredPastGraceBlocksEverything(t *testing.T) {
	f := newLimitFixture(t)
	expired := f.now.AddDate(0, 0, -30)
	f.subs.subs[f.tenantID].EndDate = &expired

	assert.Error(t, f.checker.CanCreate(context.Background(), f.tenantID, ProductTarget{}))
	assert.Error(t, f.checker.CanUpdate(context.Background(), f.tenantID))
	assert.Error(t, f.checker.CanDelete(context.Background(), f.tenantID))
	assert.Error(t, f.checker.CanView(context.Background(), f.tenantID))
}

func TestNoSubscriptionIsForbidden(t *testing.T) {
	f := newLimitFixture(t)
	stranger := uuid.New()

	err := f.checker.CanCreate(context.Background(), stranger, ProductTarget{})

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Equal(t, "No subscription found. Please select a plan to continue.", err.Error())
}

func TestPlanViolationsListsEveryExceededQuota(t *testing.T) {
	f := newLimitFixture(t)
	f.addProducts(7)
	f.addCategories(5)

	smaller := &db_models.Plan{
		MaxProducts:                 5,
		MaxCategories:               3,
		MaxSubcategoriesPerCategory: 2,
	}

	violations, err := f.checker.PlanViolations(context.Background(), f.tenantID, smaller)

	require.NoError(t, err)
	require.Len(t, violations, 2)
	assert.Equal(t, "Delete 2 product(s) to meet your limit of 5.", violations[0])
	assert.Equal(t, "Delete 2 category(ies) to meet your limit of 3.", violations[1])
}

func TestPlanViolationsSubcategoryWording(t *testing.T) {
	f := newLimitFixture(t)
	category := f.categories.addCategory(&db_models.Category{TenantID: f.tenantID})
	for i := 0; i < 4; i++ {
		f.categories.addSub(&db_models.SubCategory{TenantID: f.tenantID, CategoryID: category.ID})
	}

	violations, err := f.checker.PlanViolations(context.Background(), f.tenantID, f.plan)

	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "Reduce subcategories in some categories to meet limit of 2 per category.", violations[0])
}

func TestUsageCountsPerTenant(t *testing.T) {
	f := newLimitFixture(t)
	f.addProducts(2)
	f.addCategories(1)
	f.products.add(&db_models.Product{TenantID: uuid.New()}) // other tenant

	usage, err := f.checker.Usage(context.Background(), f.tenantID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), usage.Products)
	assert.Equal(t, int64(1), usage.Categories)
	assert.Equal(t, int64(0), usage.MaxSubcategoryCount)
}
