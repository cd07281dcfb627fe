package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilRoundsFractionsUp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntil(now.Add(30*time.Minute), now))
	assert.Equal(t, 1, DaysUntil(now.Add(24*time.Hour), now))
	assert.Equal(t, 2, DaysUntil(now.Add(25*time.Hour), now))
	assert.Equal(t, 14, DaysUntil(now.AddDate(0, 0, 14), now))
}

func TestDaysUntilPastInstants(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, -7, DaysUntil(now.AddDate(0, 0, -7), now))
	assert.Equal(t, -8, DaysUntil(now.AddDate(0, 0, -8), now))
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Dhaka")
	assert.NoError(t, err)

	in := time.Date(2025, 6, 1, 23, 45, 10, 500, loc)
	got := StartOfDay(in)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
