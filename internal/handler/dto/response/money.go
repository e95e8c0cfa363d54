package response

import (
	"time"

	"casual-leasing/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}

func date(t time.Time) string {
	return t.Format(pricing.DateLayout)
}
