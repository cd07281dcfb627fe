package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopora/internal/models/db_models"
	"shopora/internal/models/response_models"
	"shopora/pkg/utils"
)

type subscriptionFixture struct {
	subs       *fakeSubscriptionRepo
	plans      *fakePlanRepo
	tenants    *fakeTenantRepo
	products   *fakeProductRepo
	categories *fakeCategoryRepo
	service    *SubscriptionService
	now        time.Time

	tenant    *db_models.Tenant
	trialPlan *db_models.Plan
	starter   *db_models.Plan
	growth    *db_models.Plan
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	t.Helper()
	f := &subscriptionFixture{
		subs:       newFakeSubscriptionRepo(),
		plans:      &fakePlanRepo{},
		tenants:    newFakeTenantRepo(),
		products:   &fakeProductRepo{},
		categories: &fakeCategoryRepo{},
		now:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	f.tenant = f.tenants.add(&db_models.Tenant{Name: "Acme Outfitters", IsActive: true})
	f.trialPlan = f.plans.add(&db_models.Plan{
		Name: "Free Trial", PriceMinor: 0, Currency: "BDT", TrialDays: 14,
		MaxProducts: 20, MaxCategories: 5, MaxSubcategoriesPerCategory: 5, MaxOrders: 50,
		Interval: db_models.IntervalMonthly, IsActive: true,
	})
	f.starter = f.plans.add(&db_models.Plan{
		Name: "Starter", PriceMinor: 99900, Currency: "BDT",
		MaxProducts: 100, MaxCategories: 20, MaxSubcategoriesPerCategory: 10, MaxOrders: 500,
		Interval: db_models.IntervalMonthly, IsActive: true,
	})
	f.growth = f.plans.add(&db_models.Plan{
		Name: "Growth", PriceMinor: 249900, Currency: "BDT",
		MaxProducts: 200, MaxCategories: 50, MaxSubcategoriesPerCategory: 25, MaxOrders: 2000,
		Interval: db_models.IntervalMonthly, IsActive: true,
	})

	limits := NewLimitChecker(f.subs, f.products, f.categories, NewAccessPolicy()).(*LimitChecker)
	limits.now = func() time.Time { return f.now }

	f.service = NewSubscriptionService(f.subs, f.plans, f.tenants, limits, NewAccessPolicy()).(*SubscriptionService)
	f.service.now = func() time.Time { return f.now }
	return f
}

func (f *subscriptionFixture) subscribe(t *testing.T, plan *db_models.Plan) *db_models.Subscription {
	t.Helper()
	endDate := f.now.AddDate(0, 1, 0)
	sub := &db_models.Subscription{
		TenantID: f.tenant.ID,
		PlanID:   plan.ID,
		Status:   db_models.SubStatusActive,
		EndDate:  &endDate,
		Plan:     *plan,
	}
	require.NoError(t, f.subs.Create(context.Background(), sub))
	return sub
}

func TestActivateTrialSetsFourteenDayWindow(t *testing.T) {
	f := newSubscriptionFixture(t)

	detail, message, err := f.service.ActivateTrial(context.Background(), f.tenant.ID)

	require.NoError(t, err)
	assert.Equal(t, "Free trial activated successfully! You have 14 days to explore.", message)
	assert.Equal(t, "TRIAL", detail.Status)
	assert.Equal(t, 14, detail.DaysRemaining)

	sub := f.subs.subs[f.tenant.ID]
	require.NotNil(t, sub)
	assert.Equal(t, db_models.SubStatusTrial, sub.Status)
	require.NotNil(t, sub.TrialEndsAt)
	assert.Equal(t, f.now.AddDate(0, 0, 14), *sub.TrialEndsAt)
	assert.True(t, f.tenant.HasUsedTrial)
}

func TestActivateTrialRejectedAfterPreviousTrial(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.tenant.HasUsedTrial = true

	_, _, err := f.service.ActivateTrial(context.Background(), f.tenant.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrBadRequest)
	assert.Equal(t,
		"You have already used your free trial. Please select a paid plan to continue.",
		err.Error())
}

func TestActivateTrialRejectedWithExistingSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.subscribe(t, f.starter)

	_, _, err := f.service.ActivateTrial(context.Background(), f.tenant.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrBadRequest)
	assert.Equal(t,
		"You already have an active subscription. Use upgrade or renew instead.",
		err.Error())
}

func TestSelectPlanRoutesTrialToActivation(t *testing.T) {
	f := newSubscriptionFixture(t)

	result, message, err := f.service.SelectPlan(context.Background(), f.tenant.ID, f.trialPlan.ID)

	require.NoError(t, err)
	assert.Equal(t, "Free trial activated successfully! You have 14 days to explore.", message)
	detail, ok := result.(*response_models.SubscriptionDetail)
	require.True(t, ok)
	assert.Equal(t, "TRIAL", detail.Status)
}

func TestSelectPaidPlanReturnsQuotation(t *testing.T) {
	f := newSubscriptionFixture(t)

	result, message, err := f.service.SelectPlan(context.Background(), f.tenant.ID, f.starter.ID)

	require.NoError(t, err)
	assert.Equal(t, "Please complete payment to activate this plan", message)
	quote, ok := result.(*response_models.PaymentRequired)
	require.True(t, ok)
	assert.True(t, quote.RequiresPayment)
	assert.Equal(t, int64(99900), quote.AmountMinor)
	assert.Equal(t, "BDT", quote.Currency)

	// Nothing persisted until payment settles.
	assert.Nil(t, f.subs.subs[f.tenant.ID])
}

func TestSelectInactivePlanRejected(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.starter.IsActive = false

	_, _, err := f.service.SelectPlan(context.Background(), f.tenant.ID, f.starter.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrBadRequest)
	assert.Equal(t, "This plan is no longer available", err.Error())
}

func TestActivateSubscriptionCreatesMonthlyWindow(t *testing.T) {
	f := newSubscriptionFixture(t)

	detail, err := f.service.ActivateSubscription(context.Background(), f.tenant.ID, f.starter.ID)

	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", detail.Status)

	sub := f.subs.subs[f.tenant.ID]
	require.NotNil(t, sub)
	require.NotNil(t, sub.EndDate)
	assert.Equal(t, f.now.AddDate(0, 1, 0), *sub.EndDate)
}

func TestActivateSubscriptionHonorsYearlyInterval(t *testing.T) {
	f := newSubscriptionFixture(t)
	yearly := f.plans.add(&db_models.Plan{
		Name: "Growth Annual", PriceMinor: 2499000, Currency: "BDT",
		Interval: db_models.IntervalYearly, IsActive: true,
	})

	_, err := f.service.ActivateSubscription(context.Background(), f.tenant.ID, yearly.ID)

	require.NoError(t, err)
	sub := f.subs.subs[f.tenant.ID]
	require.NotNil(t, sub.EndDate)
	assert.Equal(t, f.now.AddDate(1, 0, 0), *sub.EndDate)
}

func TestActivateSubscriptionUpsertsAndClearsTrialAnchor(t *testing.T) {
	f := newSubscriptionFixture(t)
	trialEnd := f.now.AddDate(0, 0, 3)
	sub := &db_models.Subscription{
		TenantID:    f.tenant.ID,
		PlanID:      f.trialPlan.ID,
		Status:      db_models.SubStatusTrial,
		EndDate:     &trialEnd,
		TrialEndsAt: &trialEnd,
		Plan:        *f.trialPlan,
	}
	require.NoError(t, f.subs.Create(context.Background(), sub))
	originalID := sub.ID

	_, err := f.service.ActivateSubscription(context.Background(), f.tenant.ID, f.starter.ID)

	require.NoError(t, err)
	updated := f.subs.subs[f.tenant.ID]
	assert.Equal(t, originalID, updated.ID)
	assert.Equal(t, f.starter.ID, updated.PlanID)
	assert.Equal(t, db_models.SubStatusActive, updated.Status)
	assert.Nil(t, updated.TrialEndsAt)
}

func TestUpgradeRequiresHigherPrice(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.subscribe(t, f.growth)

	_, err := f.service.UpgradePlan(context.Background(), f.tenant.ID, f.starter.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrBadRequest)
	assert.Equal(t,
		"For upgrading, please select a plan with a higher price. Use downgrade for lower plans.",
		err.Error())
}

func TestUpgradeReturnsQuotation(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.subscribe(t, f.starter)

	quote, err := f.service.UpgradePlan(context.Background(), f.tenant.ID, f.growth.ID)

	require.NoError(t, err)
	assert.Equal(t, "Growth", quote.PlanName)
	assert.Equal(t, "Starter", quote.CurrentPlan)
	assert.Equal(t, int64(249900), quote.AmountMinor)
	assert.True(t, quote.RequiresPayment)
}

func TestDowngradeBlockedByUsageViolations(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.subscribe(t, f.growth)
	for i := 0; i < 105; i++ {
		f.products.add(&db_models.Product{TenantID: f.tenant.ID})
	}

	_, err := f.service.DowngradePlan(context.Background(), f.tenant.ID, f.starter.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Equal(t,
		"Cannot downgrade: You exceed the new plan limits. Delete 5 product(s) to meet your limit of 100.",
		err.Error())
}

func TestDowngradeToFreeTrialRejected(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.subscribe(t, f.starter)

	_, err := f.service.DowngradePlan(context.Background(), f.tenant.ID, f.trialPlan.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrBadRequest)
	assert.Equal(t,
		"Cannot downgrade to the free trial. Please select a paid plan or contact support.",
		err.Error())
}

func TestDowngradeQuotesNextBillingCycle(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.subscribe(t, f.growth)

	quote, err := f.service.DowngradePlan(context.Background(), f.tenant.ID, f.starter.ID)

	require.NoError(t, err)
	assert.Equal(t, "Starter", quote.PlanName)
	assert.Equal(t, "Growth", quote.CurrentPlan)
	assert.Equal(t, "Next billing cycle", quote.EffectiveFrom)
}

func TestRenewFreeTrialRejected(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.subscribe(t, f.trialPlan)

	_, err := f.service.RenewSubscription(context.Background(), f.tenant.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrBadRequest)
	assert.Equal(t,
		"Free trial cannot be renewed. Please select a paid plan to continue.",
		err.Error())
}

func TestRenewQuotesCurrentPlan(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.subscribe(t, f.starter)

	quote, err := f.service.RenewSubscription(context.Background(), f.tenant.ID)

	require.NoError(t, err)
	assert.Equal(t, "Starter", quote.PlanName)
	assert.Equal(t, int64(99900), quote.AmountMinor)
	assert.True(t, quote.RequiresPayment)
}

func TestCheckAccessWithoutSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)

	access, err := f.service.CheckAccess(context.Background(), f.tenant.ID)

	require.NoError(t, err)
	assert.False(t, access.HasAccess)
	assert.Equal(t, "No subscription found. Please select a plan to continue.", access.Message)
}

func TestCheckAccessDerivedFromClock(t *testing.T) {
	f := newSubscriptionFixture(t)
	sub := f.subscribe(t, f.starter)
	expired := f.now.AddDate(0, 0, -2)
	sub.EndDate = &expired

	access, err := f.service.CheckAccess(context.Background(), f.tenant.ID)

	require.NoError(t, err)
	assert.True(t, access.HasAccess)
	assert.True(t, access.IsInGracePeriod)
	assert.Equal(t, 5, access.GracePeriodDaysRemaining)
	// Stored status still reads ACTIVE; access is derived, not persisted.
	assert.Equal(t, db_models.SubStatusActive, sub.Status)
}

func TestGetUsageReportsRemaining(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.subscribe(t, f.starter)
	for i := 0; i < 7; i++ {
		f.products.add(&db_models.Product{TenantID: f.tenant.ID})
	}

	usage, err := f.service.GetUsage(context.Background(), f.tenant.ID)

	require.NoError(t, err)
	assert.Equal(t, 7, usage.Products.Used)
	assert.Equal(t, 100, usage.Products.Limit)
	assert.Equal(t, 93, usage.Products.Remaining)
}
