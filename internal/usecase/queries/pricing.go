package queries

import (
	"context"
	"time"

	"casual-leasing/internal/domain/booking"
	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteView is a priced date range before GST is committed to a booking.
type QuoteView struct {
	SiteID       uuid.UUID
	SiteName     string
	StartDate    time.Time
	EndDate      time.Time
	Subtotal     decimal.Decimal
	GSTRate      decimal.Decimal
	GST          decimal.Decimal
	Total        decimal.Decimal
	WeekdayCount int
	WeekendCount int
	Days         []pricing.DayPrice
	Segments     []pricing.SegmentPrice
}

func NewQuoteView(siteID uuid.UUID, siteName string, start, end time.Time, result pricing.Result, amounts booking.Amounts) *QuoteView {
	return &QuoteView{
		SiteID:       siteID,
		SiteName:     siteName,
		StartDate:    pricing.NormalizeDate(start),
		EndDate:      pricing.NormalizeDate(end),
		Subtotal:     amounts.Subtotal(),
		GSTRate:      amounts.TaxRate(),
		GST:          amounts.Tax(),
		Total:        amounts.Total(),
		WeekdayCount: result.WeekdayCount,
		WeekendCount: result.WeekendCount,
		Days:         result.DayBreakdown,
		Segments:     result.Segments,
	}
}

type PricingQueries interface {
	Quote(ctx context.Context, siteID uuid.UUID, start, end time.Time) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	sites      shared.SiteReadStore
	calculator booking.CostCalculator
	taxRates   shared.TaxRateProvider
}

func NewPricingQueries(sites shared.SiteReadStore, calculator booking.CostCalculator, taxRates shared.TaxRateProvider) PricingQueries {
	return &pricingQueriesImpl{
		sites:      sites,
		calculator: calculator,
		taxRates:   taxRates,
	}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, siteID uuid.UUID, start, end time.Time) (*QuoteView, error) {
	s, err := findBookableSite(ctx, q.sites, siteID)
	if err != nil {
		return nil, err
	}

	result, err := q.calculator.CalculateCost(ctx, s.ID(), s.RateCard(), start, end)
	if err != nil {
		return nil, err
	}

	rate, err := q.taxRates.GSTRate(ctx)
	if err != nil {
		return nil, err
	}

	amounts, err := booking.NewAmounts(result.TotalAmount, rate)
	if err != nil {
		return nil, err
	}

	return NewQuoteView(s.ID(), s.Name(), start, end, result, amounts), nil
}
