package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shopora/internal/models/db_models"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestEvaluateNoAnchorGrantsFullAccess(t *testing.T) {
	policy := NewAccessPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sub := &db_models.Subscription{Status: db_models.SubStatusActive}

	access := policy.Evaluate(sub, now)

	assert.True(t, access.HasAccess)
	assert.True(t, access.CanCreate)
	assert.True(t, access.CanUpdate)
	assert.True(t, access.CanDelete)
	assert.False(t, access.IsInGracePeriod)
	assert.Equal(t, "ACTIVE", access.Status)
	assert.Equal(t, "Subscription active", access.Message)
}

func TestEvaluateExpiryInThirtyMinutesCountsAsOneDay(t *testing.T) {
	policy := NewAccessPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sub := &db_models.Subscription{
		Status:  db_models.SubStatusActive,
		EndDate: timePtr(now.Add(30 * time.Minute)),
	}

	access := policy.Evaluate(sub, now)

	assert.True(t, access.HasAccess)
	assert.True(t, access.CanCreate)
	assert.Equal(t, 1, access.DaysRemaining)
}

func TestEvaluateExactDaysRemaining(t *testing.T) {
	policy := NewAccessPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sub := &db_models.Subscription{
		Status:  db_models.SubStatusActive,
		EndDate: timePtr(now.AddDate(0, 0, 3)),
	}

	access := policy.Evaluate(sub, now)

	assert.Equal(t, 3, access.DaysRemaining)
	assert.True(t, access.HasAccess)
}

func TestEvaluateTrialAnchorUsedWhenNoEndDate(t *testing.T) {
	policy := NewAccessPolicy()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sub := &db_models.Subscription{
		Status:      db_models.SubStatusTrial,
		TrialEndsAt: timePtr(now.AddDate(0, 0, 14)),
	}

	access := policy.Evaluate(sub, now)

	assert.Equal(t, 14, access.DaysRemaining)
	assert.Equal(t, "TRIAL", access.Status)
}

func TestEvaluateGracePeriodRestrictsWrites(t *testing.T) {
	policy := NewAccessPolicy()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	sub := &db_models.Subscription{
		Status:  db_models.SubStatusActive,
		EndDate: timePtr(now.AddDate(0, 0, -3)),
	}

	access := policy.Evaluate(sub, now)

	assert.True(t, access.HasAccess)
	assert.False(t, access.CanCreate)
	assert.False(t, access.CanUpdate)
	assert.True(t, access.CanDelete)
	assert.True(t, access.IsInGracePeriod)
	assert.Equal(t, 4, access.GracePeriodDaysRemaining)
	assert.Equal(t, "EXPIRED", access.Status)
	assert.Equal(t,
		"Your subscription has expired. You have 4 day(s) left in your grace period. Renew now to continue creating and updating.",
		access.Message)
}

func TestEvaluateLastGraceDayStillHasAccess(t *testing.T) {
	policy := NewAccessPolicy()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	sub := &db_models.Subscription{
		Status:  db_models.SubStatusActive,
		EndDate: timePtr(now.AddDate(0, 0, -7)),
	}

	access := policy.Evaluate(sub, now)

	assert.True(t, access.HasAccess)
	assert.True(t, access.IsInGracePeriod)
	assert.Equal(t, 0, access.GracePeriodDaysRemaining)
	assert.True(t, access.CanDelete)
}

func TestEvaluateAfterGracePeriodLocksOut(t *testing.T) {
	policy := NewAccessPolicy()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	sub := &db_models.Subscription{
		Status:  db_models.SubStatusActive,
		EndDate: timePtr(now.AddDate(0, 0, -8)),
	}

	access := policy.Evaluate(sub, now)

	assert.False(t, access.HasAccess)
	assert.False(t, access.CanCreate)
	assert.False(t, access.CanUpdate)
	assert.False(t, access.CanDelete)
	assert.False(t, access.IsInGracePeriod)
	assert.Equal(t, "EXPIRED", access.Status)
	assert.Equal(t,
		"Your subscription has expired and the grace period has ended. Please renew to regain access.",
		access.Message)
}

func TestFullAccessShortCircuit(t *testing.T) {
	access := FullAccess()

	assert.True(t, access.HasAccess)
	assert.True(t, access.CanCreate)
	assert.True(t, access.CanUpdate)
	assert.True(t, access.CanDelete)
}

func TestNoSubscriptionStatus(t *testing.T) {
	access := NoSubscriptionStatus()

	assert.False(t, access.HasAccess)
	assert.False(t, access.CanCreate)
	assert.Equal(t, "No subscription found. Please select a plan to continue.", access.Message)
}
