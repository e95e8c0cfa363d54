package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

var daysPerWeekDecimal = decimal.NewFromInt(DaysPerWeek)

// PriceSegment charges one segment. Complete 7-day blocks go at the
// segment's weekly rate when it has one; the remaining days are charged
// individually at weekday/weekend rates.
func PriceSegment(card RateCard, seg Segment) SegmentPrice {
	result := SegmentPrice{
		Source: seg.Source,
		Days:   seg.Len(),
		Amount: decimal.Zero,
		Trail:  make([]DayPrice, 0, seg.Len()),
	}
	if seg.Len() == 0 {
		return result
	}
	result.StartDate = seg.Days[0]
	result.EndDate = seg.Days[seg.Len()-1]

	remaining := seg.Days
	if weekly, ok := weeklyRateFor(card, seg.Source); ok {
		w := weekly
		result.WeeklyRate = &w

		weeks := seg.Len() / DaysPerWeek
		if weeks > 0 {
			perDay := weekly.Div(daysPerWeekDecimal)
			label := seg.Source.WeeklyLabel()
			blockDays := weeks * DaysPerWeek
			for _, day := range seg.Days[:blockDays] {
				result.Trail = append(result.Trail, DayPrice{
					Date:       day,
					Rate:       perDay,
					Label:      label,
					IsSeasonal: seg.Source.IsSeasonal(),
				})
			}
			result.Amount = result.Amount.Add(weekly.Mul(decimal.NewFromInt(int64(weeks))))
			result.WeeksCharged = weeks
			remaining = seg.Days[blockDays:]
		}
	}

	for _, day := range remaining {
		rate := dailyRateFor(card, seg.Source, day)
		result.Trail = append(result.Trail, DayPrice{
			Date:       day,
			Rate:       rate,
			Label:      seg.Source.Label(day),
			IsSeasonal: seg.Source.IsSeasonal(),
		})
		result.Amount = result.Amount.Add(rate)
	}

	return result
}

// weeklyRateFor treats a zero weekly rate as absent for both tiers.
func weeklyRateFor(card RateCard, source RateSource) (decimal.Decimal, bool) {
	if rec := source.Seasonal(); rec != nil {
		if rec.WeeklyRate == nil || !rec.WeeklyRate.IsPositive() {
			return decimal.Zero, false
		}
		return *rec.WeeklyRate, true
	}
	return card.WeeklyRate()
}

func dailyRateFor(card RateCard, source RateSource, day time.Time) decimal.Decimal {
	if rec := source.Seasonal(); rec != nil {
		if rate, ok := rec.dailyRate(day); ok {
			return rate
		}
	}
	return card.RateForDay(day)
}
