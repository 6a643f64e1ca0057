package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := ParseTripDate(value)
	require.NoError(t, err)
	return parsed
}

func TestTripLengthInDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2025-06-01", "2025-06-01", 1},
		{"consecutive days", "2025-06-01", "2025-06-02", 2},
		{"five day trip", "2025-06-01", "2025-06-05", 5},
		{"across month boundary", "2025-06-28", "2025-07-02", 5},
		{"across year boundary", "2025-12-30", "2026-01-02", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TripLengthInDays(mustDate(t, tt.start), mustDate(t, tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTripLengthInDaysReversedDates(t *testing.T) {
	start := mustDate(t, "2025-06-05")
	end := mustDate(t, "2025-06-01")

	assert.Equal(t, 5, TripLengthInDays(start, end))
	assert.Equal(t, TripLengthInDays(end, start), TripLengthInDays(start, end))
}

func TestTripLengthInDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, 2, TripLengthInDays(start, end))
}

func TestParseTripDate(t *testing.T) {
	parsed, err := ParseTripDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 1, parsed.Day())

	_, err = ParseTripDate("06/01/2025")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = ParseTripDate("")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestFormatTripDate(t *testing.T) {
	assert.Equal(t, "2025-06-01", FormatTripDate(mustDate(t, "2025-06-01")))
	assert.Equal(t, "", FormatTripDate(time.Time{}))
}
