package utils

import "time"

// NormalizeToUTCMidnight collapses any time value to 00:00:00 UTC of the
// same calendar day. Day-scoped records key on this so that comparisons
// are exact regardless of the client's timezone or time-of-day.
func NormalizeToUTCMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange returns the half-open [midnight, midnight+24h) window for the
// calendar day containing t.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := NormalizeToUTCMidnight(t)
	return start, start.Add(24 * time.Hour)
}
