package utils

import "time"

// TripDateLayout is the wire format for trip dates.
const TripDateLayout = "2006-01-02"

// TripLengthInDays returns the number of calendar days a trip spans:
// the whole-day difference between the two dates plus one, so a trip
// starting and ending on the same date counts as 1 day.
//
// The difference is taken as an absolute value, so a reversed date pair
// yields the same count instead of a negative one. This mirrors the
// historical behavior callers depend on; rejecting reversed dates is
// the calling layer's job.
func TripLengthInDays(start, end time.Time) int {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	diff := endDay.Sub(startDay)
	if diff < 0 {
		diff = -diff
	}

	return int(diff.Hours()/24) + 1
}

// ParseTripDate parses a YYYY-MM-DD date string.
func ParseTripDate(value string) (time.Time, error) {
	t, err := time.Parse(TripDateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return t, nil
}

func FormatTripDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TripDateLayout)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
