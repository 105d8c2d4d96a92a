package dateutil

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("year and month do not form a valid calendar date")

// MonthBounds returns the first and last calendar day of the given month,
// inclusive. The last day is computed as the day before the first of the
// following month, so month lengths and leap years come from the calendar
// itself rather than a per-month table. December wraps into January of the
// next year.
func MonthBounds(year, month int) (Date, Date, error) {
	if month < 1 || month > 12 {
		return Date{}, Date{}, ErrInvalidDateRange
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return Date{t: first}, Date{t: last}, nil
}
