package sqlc

import (
	"context"
)

// iteratorForInsertBookingDays implements pgx.CopyFromSource.
type iteratorForInsertBookingDays struct {
	rows                 []InsertBookingDaysParams
	skippedFirstNextCall bool
}

func (r *iteratorForInsertBookingDays) Next() bool {
	if len(r.rows) == 0 {
		return false
	}
	if !r.skippedFirstNextCall {
		r.skippedFirstNextCall = true
		return true
	}
	r.rows = r.rows[1:]
	return len(r.rows) > 0
}

func (r iteratorForInsertBookingDays) Values() ([]interface{}, error) {
	return []interface{}{
		r.rows[0].BookingID,
		r.rows[0].Day,
		r.rows[0].Rate,
		r.rows[0].Label,
		r.rows[0].IsSeasonal,
	}, nil
}

func (r iteratorForInsertBookingDays) Err() error {
	return nil
}

func (q *Queries) InsertBookingDays(ctx context.Context, db DBTX, arg []InsertBookingDaysParams) (int64, error) {
	return db.CopyFrom(ctx, []string{"booking_days"}, []string{"booking_id", "day", "rate", "label", "is_seasonal"}, &iteratorForInsertBookingDays{rows: arg})
}
