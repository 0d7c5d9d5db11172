package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToUTCMidnight(t *testing.T) {
	colombo := time.FixedZone("Asia/Colombo", 5*3600+1800)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"midday UTC",
			time.Date(2024, 3, 1, 12, 30, 45, 123, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"already midnight",
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"early local morning lands on the previous UTC day",
			time.Date(2024, 3, 1, 4, 0, 0, 0, colombo),
			time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeToUTCMidnight(tt.in))
		})
	}
}

func TestDayRange(t *testing.T) {
	from, to := DayRange(time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), to)
}
