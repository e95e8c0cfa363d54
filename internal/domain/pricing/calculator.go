package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeasonalRateSource returns every seasonal record for the site whose
// period intersects [start, end], in resolution order.
type SeasonalRateSource interface {
	FindSeasonalRatesForRange(ctx context.Context, siteID uuid.UUID, start, end time.Time) ([]SeasonalRate, error)
}

type Calculator struct {
	rates SeasonalRateSource
}

func NewCalculator(rates SeasonalRateSource) *Calculator {
	return &Calculator{rates: rates}
}

// CalculateCost performs a single seasonal-rate read and prices the range.
// Errors from the read are returned as is.
func (c *Calculator) CalculateCost(ctx context.Context, siteID uuid.UUID, card RateCard, start, end time.Time) (Result, error) {
	start, end = NormalizeDate(start), NormalizeDate(end)
	if start.After(end) {
		return emptyResult(), nil
	}

	seasonal, err := c.rates.FindSeasonalRatesForRange(ctx, siteID, start, end)
	if err != nil {
		return Result{}, err
	}

	return Calculate(card, seasonal, start, end), nil
}

// Calculate prices [start, end] for a rate card and the seasonal records
// intersecting that range. It is pure: no I/O and no shared state.
func Calculate(card RateCard, seasonal []SeasonalRate, start, end time.Time) Result {
	start, end = NormalizeDate(start), NormalizeDate(end)
	if start.After(end) {
		return emptyResult()
	}

	days := ResolveDays(start, end, seasonal)
	segments := SplitSegments(days)

	priced := make([]SegmentPrice, 0, len(segments))
	for _, seg := range segments {
		priced = append(priced, PriceSegment(card, seg))
	}

	return aggregate(days, priced)
}

func aggregate(days []DayAssignment, segments []SegmentPrice) Result {
	result := emptyResult()
	result.Segments = segments

	for _, day := range days {
		if IsWeekend(day.Date) {
			result.WeekendCount++
		} else {
			result.WeekdayCount++
		}
	}

	for _, seg := range segments {
		result.TotalAmount = result.TotalAmount.Add(seg.Amount)
		result.DayBreakdown = append(result.DayBreakdown, seg.Trail...)
	}

	return result
}

func emptyResult() Result {
	return Result{
		TotalAmount:  decimal.Zero,
		DayBreakdown: []DayPrice{},
		Segments:     []SegmentPrice{},
	}
}
