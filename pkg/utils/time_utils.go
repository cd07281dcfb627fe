package utils

import "time"

const dayDuration = 24 * time.Hour

// DaysUntil returns the number of calendar days from now until t, rounding
// fractions up toward more remaining days: an expiry 30 minutes away still
// counts as 1 day remaining. Past instants yield zero or negative values.
func DaysUntil(t time.Time, now time.Time) int {
	diff := t.Sub(now)
	days := diff / dayDuration
	if diff%dayDuration > 0 {
		days++
	}
	return int(days)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
