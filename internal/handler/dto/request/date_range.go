package request

import (
	"errors"
	"time"

	"casual-leasing/internal/domain/pricing"
)

var (
	ErrStartAfterEnd  = errors.New("start must not be after end")
	ErrRangeTooLong   = errors.New("date range exceeds the maximum booking length")
	ErrInvalidDateFmt = errors.New("dates must use the YYYY-MM-DD format")
)

// DateRangeQuery is the ?start=&end= pair shared by quote and seasonal rate listing.
type DateRangeQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

// Parse reads both dates as calendar dates in loc. maxDays <= 0 disables
// the length check.
func (q *DateRangeQuery) Parse(loc *time.Location, maxDays int) (time.Time, time.Time, error) {
	return parseDateRange(q.Start, q.End, loc, maxDays)
}

func parseDateRange(startStr, endStr string, loc *time.Location, maxDays int) (time.Time, time.Time, error) {
	start, err := pricing.ParseDate(startStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFmt
	}
	end, err := pricing.ParseDate(endStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFmt
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrStartAfterEnd
	}
	if maxDays > 0 && pricing.DaysInclusive(start, end) > maxDays {
		return time.Time{}, time.Time{}, ErrRangeTooLong
	}
	return start, end, nil
}
