package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopora/internal/models/db_models"
	"shopora/pkg/utils"
)

type notificationFixture struct {
	notifications *fakeNotificationRepo
	subs          *fakeSubscriptionRepo
	products      *fakeProductRepo
	categories    *fakeCategoryRepo
	service       *NotificationService
	now           time.Time
}

func newNotificationFixture(t *testing.T) *notificationFixture {
	t.Helper()
	f := &notificationFixture{
		notifications: &fakeNotificationRepo{},
		subs:          newFakeSubscriptionRepo(),
		products:      &fakeProductRepo{},
		categories:    &fakeCategoryRepo{},
		now:           time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	f.notifications.nowUnix = f.now.Unix()
	f.service = NewNotificationService(f.notifications, f.subs, f.products, f.categories).(*NotificationService)
	f.service.now = func() time.Time { return f.now }
	return f
}

func (f *notificationFixture) addSubscription(t *testing.T, daysUntilExpiry int) *db_models.Subscription {
	t.Helper()
	endDate := f.now.AddDate(0, 0, daysUntilExpiry)
	sub := &db_models.Subscription{
		TenantID: uuid.New(),
		Status:   db_models.SubStatusActive,
		EndDate:  &endDate,
		Plan:     db_models.Plan{Name: "Starter", MaxProducts: 100, MaxCategories: 20},
	}
	require.NoError(t, f.subs.Create(context.Background(), sub))
	return sub
}

func (f *notificationFixture) tenantNotifications(tenantID uuid.UUID) []db_models.Notification {
	out, _ := f.notifications.ListByTenant(context.Background(), tenantID)
	return out
}

func TestSweepNotifiesAtReminderThresholds(t *testing.T) {
	f := newNotificationFixture(t)
	subs := map[int]*db_models.Subscription{}
	for _, days := range []int{10, 5, 2, 1} {
		subs[days] = f.addSubscription(t, days)
	}

	require.NoError(t, f.service.CheckExpiringSubscriptions(context.Background()))

	for days, sub := range subs {
		got := f.tenantNotifications(sub.TenantID)
		require.Len(t, got, 1, "expected one notification at %d days", days)
		assert.Equal(t, db_models.NotifySubscriptionExpiry, got[0].Type)
	}
	assert.Equal(t, "Subscription Expires in 10 Days", f.tenantNotifications(subs[10].TenantID)[0].Title)
	assert.Equal(t, "Subscription Expires Tomorrow", f.tenantNotifications(subs[1].TenantID)[0].Title)
	assert.Equal(t,
		"Your Starter subscription will expire in 5 days. Renew early to avoid any interruption.",
		f.tenantNotifications(subs[5].TenantID)[0].Message)
}

func TestSweepSkipsNonThresholdDays(t *testing.T) {
	f := newNotificationFixture(t)
	for _, days := range []int{30, 9, 4, 3} {
		f.addSubscription(t, days)
	}

	require.NoError(t, f.service.CheckExpiringSubscriptions(context.Background()))

	assert.Empty(t, f.notifications.notifications)
}

func TestSweepExpiryDayMarksSubscriptionExpired(t *testing.T) {
	f := newNotificationFixture(t)
	sub := f.addSubscription(t, 0)

	require.NoError(t, f.service.CheckExpiringSubscriptions(context.Background()))

	got := f.tenantNotifications(sub.TenantID)
	require.Len(t, got, 1)
	assert.Equal(t, "Subscription Expired", got[0].Title)
	assert.Equal(t, db_models.NotifySubscriptionExpired, got[0].Type)
	assert.Equal(t,
		"Your Starter subscription has expired. Renew now to continue using all features.",
		got[0].Message)
	assert.Equal(t, db_models.SubStatusExpired, sub.Status)
}

func TestSweepIdempotentWithinSameDay(t *testing.T) {
	f := newNotificationFixture(t)
	sub := f.addSubscription(t, 5)

	require.NoError(t, f.service.CheckExpiringSubscriptions(context.Background()))
	f.now = f.now.Add(2 * time.Hour)
	f.notifications.nowUnix = f.now.Unix()
	require.NoError(t, f.service.CheckExpiringSubscriptions(context.Background()))

	assert.Len(t, f.tenantNotifications(sub.TenantID), 1)
}

func TestSweepFiresAgainNextDay(t *testing.T) {
	f := newNotificationFixture(t)
	sub := f.addSubscription(t, 2)

	require.NoError(t, f.service.CheckExpiringSubscriptions(context.Background()))

	// Next morning the same subscription is one day from expiry.
	f.now = f.now.AddDate(0, 0, 1)
	f.notifications.nowUnix = f.now.Unix()
	require.NoError(t, f.service.CheckExpiringSubscriptions(context.Background()))

	got := f.tenantNotifications(sub.TenantID)
	require.Len(t, got, 2)
	assert.Equal(t, "Subscription Expires in 2 Days", got[0].Title)
	assert.Equal(t, "Subscription Expires Tomorrow", got[1].Title)
}

func TestSweepIgnoresSubscriptionsWithoutAnchor(t *testing.T) {
	f := newNotificationFixture(t)
	sub := &db_models.Subscription{
		TenantID: uuid.New(),
		Status:   db_models.SubStatusActive,
		Plan:     db_models.Plan{Name: "Starter"},
	}
	require.NoError(t, f.subs.Create(context.Background(), sub))

	require.NoError(t, f.service.CheckExpiringSubscriptions(context.Background()))

	assert.Empty(t, f.notifications.notifications)
}

func TestNotifyLimitExceededListsViolations(t *testing.T) {
	f := newNotificationFixture(t)
	sub := f.addSubscription(t, 20)
	sub.Plan.MaxProducts = 5
	sub.Plan.MaxCategories = 3
	for i := 0; i < 8; i++ {
		f.products.add(&db_models.Product{TenantID: sub.TenantID})
	}

	require.NoError(t, f.service.NotifyLimitExceeded(context.Background(), sub.TenantID))

	got := f.tenantNotifications(sub.TenantID)
	require.Len(t, got, 1)
	assert.Equal(t, "Plan Limit Exceeded", got[0].Title)
	assert.Equal(t, db_models.NotifyLimitWarning, got[0].Type)
	assert.Equal(t, fmt.Sprintf(
		"You have exceeded your plan limits (Products: %d/%d). Please delete some items or upgrade your plan to restore full functionality.",
		8, 5), got[0].Message)
}

func TestNotifyLimitExceededNoOpWithinLimits(t *testing.T) {
	f := newNotificationFixture(t)
	sub := f.addSubscription(t, 20)
	f.products.add(&db_models.Product{TenantID: sub.TenantID})

	require.NoError(t, f.service.NotifyLimitExceeded(context.Background(), sub.TenantID))

	assert.Empty(t, f.notifications.notifications)
}

func TestNotifyLimitExceededOncePerDay(t *testing.T) {
	f := newNotificationFixture(t)
	sub := f.addSubscription(t, 20)
	sub.Plan.MaxProducts = 1
	for i := 0; i < 3; i++ {
		f.products.add(&db_models.Product{TenantID: sub.TenantID})
	}

	require.NoError(t, f.service.NotifyLimitExceeded(context.Background(), sub.TenantID))
	require.NoError(t, f.service.NotifyLimitExceeded(context.Background(), sub.TenantID))

	assert.Len(t, f.tenantNotifications(sub.TenantID), 1)
}

func TestMarkReadScopedToTenant(t *testing.T) {
	f := newNotificationFixture(t)
	tenantID := uuid.New()
	f.service.Notify(context.Background(), tenantID, "Test", "Message", db_models.NotifyGeneral)
	notification := f.notifications.notifications[0]

	err := f.service.MarkRead(context.Background(), uuid.New(), notification.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	require.NoError(t, f.service.MarkRead(context.Background(), tenantID, notification.ID))
	assert.True(t, notification.IsRead)
}

func TestUnreadCount(t *testing.T) {
	f := newNotificationFixture(t)
	tenantID := uuid.New()
	f.service.Notify(context.Background(), tenantID, "A", "a", db_models.NotifyGeneral)
	f.service.Notify(context.Background(), tenantID, "B", "b", db_models.NotifyGeneral)
	require.NoError(t, f.service.MarkAllRead(context.Background(), tenantID))
	f.service.Notify(context.Background(), tenantID, "C", "c", db_models.NotifyGeneral)

	count, err := f.service.UnreadCount(context.Background(), tenantID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
