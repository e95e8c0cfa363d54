//go:build unit

package pricing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"casual-leasing/internal/domain/pricing"
	pricingmock "casual-leasing/tests/mock/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 2024-07-01 is a Monday.
func day(n int) time.Time {
	return time.Date(2024, time.July, n, 0, 0, 0, 0, time.UTC)
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func standardCard() pricing.RateCard {
	return pricing.RateCard{
		PricePerDay:        dec(100),
		PricePerWeek:       dec(600),
		WeekendPricePerDay: dec(150),
	}
}

func season(name string, from, to int, weekday, weekend, weekly *decimal.Decimal) pricing.SeasonalRate {
	return pricing.SeasonalRate{
		ID:          uuid.New(),
		Name:        name,
		StartDate:   day(from),
		EndDate:     day(to),
		WeekdayRate: weekday,
		WeekendRate: weekend,
		WeeklyRate:  weekly,
	}
}

var resultOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b pricing.RateSource) bool { return a.Equal(b) }),
}

func assertAmount(t *testing.T, expected int64, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(expected).Equal(actual), "expected total %d but got %s", expected, actual)
}

func TestCalculate(t *testing.T) {
	t.Run("scenario: full base week is one weekly charge", func(t *testing.T) {
		actual := pricing.Calculate(standardCard(), nil, day(1), day(7))

		assertAmount(t, 600, actual.TotalAmount)
		assert.Equal(t, 5, actual.WeekdayCount)
		assert.Equal(t, 2, actual.WeekendCount)
		require.Len(t, actual.DayBreakdown, 7)
		for _, d := range actual.DayBreakdown {
			assert.Equal(t, "Weekly Rate", d.Label)
			assert.False(t, d.IsSeasonal)
			assert.True(t, decimal.NewFromInt(600).Div(decimal.NewFromInt(7)).Equal(d.Rate))
		}
	})

	t.Run("scenario: weekend only", func(t *testing.T) {
		actual := pricing.Calculate(standardCard(), nil, day(6), day(7))

		assertAmount(t, 300, actual.TotalAmount)
		assert.Equal(t, 0, actual.WeekdayCount)
		assert.Equal(t, 2, actual.WeekendCount)
		for _, d := range actual.DayBreakdown {
			assert.Equal(t, "Weekend", d.Label)
		}
	})

	t.Run("scenario: seasonal week followed by base week", func(t *testing.T) {
		peak := season("Winter Peak", 1, 7, nil, nil, dec(800))

		actual := pricing.Calculate(standardCard(), []pricing.SeasonalRate{peak}, day(1), day(14))

		assertAmount(t, 1400, actual.TotalAmount)
		require.Len(t, actual.Segments, 2)
		assert.Equal(t, 1, actual.Segments[0].WeeksCharged)
		assert.Equal(t, 1, actual.Segments[1].WeeksCharged)
		assert.Equal(t, "Winter Peak (Weekly)", actual.DayBreakdown[0].Label)
		assert.True(t, actual.DayBreakdown[0].IsSeasonal)
		assert.Equal(t, "Weekly Rate", actual.DayBreakdown[7].Label)
		assert.False(t, actual.DayBreakdown[7].IsSeasonal)
	})

	t.Run("scenario: one week plus three weekdays", func(t *testing.T) {
		actual := pricing.Calculate(standardCard(), nil, day(1), day(10))

		assertAmount(t, 900, actual.TotalAmount)
		assert.Equal(t, 8, actual.WeekdayCount)
		assert.Equal(t, 2, actual.WeekendCount)
		assert.Equal(t, "Weekday", actual.DayBreakdown[9].Label)
	})

	t.Run("two base weeks ignore daily rates", func(t *testing.T) {
		card := pricing.RateCard{
			PricePerDay:        dec(999),
			PricePerWeek:       dec(600),
			WeekendPricePerDay: dec(1234),
		}

		actual := pricing.Calculate(card, nil, day(3), day(16))

		assertAmount(t, 1200, actual.TotalAmount)
	})

	t.Run("seasonal run splits base weeks", func(t *testing.T) {
		fair := season("Craft Fair", 8, 10, dec(200), nil, nil)

		actual := pricing.Calculate(standardCard(), []pricing.SeasonalRate{fair}, day(1), day(14))

		require.Len(t, actual.Segments, 3)
		assert.False(t, actual.Segments[0].Source.IsSeasonal())
		assert.Equal(t, 7, actual.Segments[0].Days)
		assert.Equal(t, 1, actual.Segments[0].WeeksCharged)
		assertAmount(t, 600, actual.Segments[0].Amount)

		assert.True(t, actual.Segments[1].Source.IsSeasonal())
		assert.Equal(t, 3, actual.Segments[1].Days)
		assert.Equal(t, 0, actual.Segments[1].WeeksCharged)
		assertAmount(t, 600, actual.Segments[1].Amount)

		// Thu, Fri, Sat, Sun: too short for a second weekly block.
		assert.Equal(t, 4, actual.Segments[2].Days)
		assert.Equal(t, 0, actual.Segments[2].WeeksCharged)
		assertAmount(t, 500, actual.Segments[2].Amount)

		assertAmount(t, 1700, actual.TotalAmount)
	})

	t.Run("weekend-only seasonal rate covers weekdays too", func(t *testing.T) {
		event := season("Night Market", 5, 7, nil, dec(300), nil)

		actual := pricing.Calculate(standardCard(), []pricing.SeasonalRate{event}, day(5), day(7))

		assertAmount(t, 900, actual.TotalAmount)
		for _, d := range actual.DayBreakdown {
			assert.Equal(t, "Night Market", d.Label)
			assert.True(t, d.IsSeasonal)
			assert.True(t, decimal.NewFromInt(300).Equal(d.Rate))
		}
	})

	t.Run("weekday-only seasonal rate covers weekends too", func(t *testing.T) {
		event := season("School Holidays", 6, 7, dec(80), nil, nil)

		actual := pricing.Calculate(standardCard(), []pricing.SeasonalRate{event}, day(6), day(7))

		assertAmount(t, 160, actual.TotalAmount)
	})

	t.Run("seasonal rate without daily rates falls back to base per day type", func(t *testing.T) {
		event := season("Long Stay Special", 5, 8, nil, nil, dec(500))

		actual := pricing.Calculate(standardCard(), []pricing.SeasonalRate{event}, day(5), day(8))

		// Fri 100 + Sat 150 + Sun 150 + Mon 100
		assertAmount(t, 500, actual.TotalAmount)
		for _, d := range actual.DayBreakdown {
			assert.Equal(t, "Long Stay Special", d.Label)
			assert.True(t, d.IsSeasonal)
		}
	})

	t.Run("overlapping seasons: first supplied wins", func(t *testing.T) {
		first := season("Early", 1, 5, dec(200), nil, nil)
		second := season("Late", 3, 7, dec(300), dec(300), nil)

		actual := pricing.Calculate(standardCard(), []pricing.SeasonalRate{first, second}, day(1), day(7))
		assertAmount(t, 5*200+2*300, actual.TotalAmount)

		reversed := pricing.Calculate(standardCard(), []pricing.SeasonalRate{second, first}, day(1), day(7))
		assertAmount(t, 2*200+5*300, reversed.TotalAmount)
	})

	t.Run("non-adjacent runs of one season stay separate", func(t *testing.T) {
		inner := season("Sale Weekend", 3, 4, dec(50), nil, nil)
		outer := season("Winter", 1, 14, dec(120), nil, dec(700))

		actual := pricing.Calculate(standardCard(), []pricing.SeasonalRate{inner, outer}, day(1), day(14))

		require.Len(t, actual.Segments, 3)
		assert.Equal(t, "Winter", actual.Segments[0].Source.Seasonal().Name)
		assert.Equal(t, "Sale Weekend", actual.Segments[1].Source.Seasonal().Name)
		assert.Equal(t, "Winter", actual.Segments[2].Source.Seasonal().Name)
		// 2x120 + 2x50 + (700 + 3x120)
		assertAmount(t, 240+100+700+360, actual.TotalAmount)
	})

	t.Run("zero weekly rate is no weekly rate", func(t *testing.T) {
		card := standardCard()
		card.PricePerWeek = dec(0)

		actual := pricing.Calculate(card, nil, day(1), day(7))

		assertAmount(t, 5*100+2*150, actual.TotalAmount)
		assert.Equal(t, 0, actual.Segments[0].WeeksCharged)
	})

	t.Run("absent rates fall back to defaults", func(t *testing.T) {
		actual := pricing.Calculate(pricing.RateCard{}, nil, day(1), day(7))
		assertAmount(t, 7*150, actual.TotalAmount)

		noWeekend := pricing.Calculate(pricing.RateCard{PricePerDay: dec(90)}, nil, day(6), day(7))
		assertAmount(t, 180, noWeekend.TotalAmount)
	})

	t.Run("start after end is the empty result", func(t *testing.T) {
		actual := pricing.Calculate(standardCard(), nil, day(10), day(1))

		assert.True(t, actual.TotalAmount.IsZero())
		assert.Equal(t, 0, actual.DayCount())
		assert.Empty(t, actual.DayBreakdown)
		assert.Empty(t, actual.Segments)
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		start := day(1).Add(15 * time.Hour)
		end := day(7).Add(2 * time.Hour)

		actual := pricing.Calculate(standardCard(), nil, start, end)

		assertAmount(t, 600, actual.TotalAmount)
		assert.Equal(t, 7, actual.DayCount())
	})

	t.Run("identical input gives identical output", func(t *testing.T) {
		seasons := []pricing.SeasonalRate{
			season("Early", 2, 9, dec(130), dec(170), dec(650)),
			season("Late", 12, 20, nil, dec(220), nil),
		}

		first := pricing.Calculate(standardCard(), seasons, day(1), day(25))
		second := pricing.Calculate(standardCard(), seasons, day(1), day(25))

		if diff := cmp.Diff(first, second, resultOpts...); diff != "" {
			t.Errorf("results differ (-first +second):\n%s", diff)
		}
	})
}

func TestCalculate_DayCoverage(t *testing.T) {
	seasons := []pricing.SeasonalRate{
		season("Early", 3, 11, dec(130), nil, dec(650)),
		season("Late", 9, 21, nil, dec(220), nil),
	}

	for startDay := 1; startDay <= 7; startDay++ {
		for length := 1; length <= 24; length++ {
			start := day(startDay)
			end := start.AddDate(0, 0, length-1)

			actual := pricing.Calculate(standardCard(), seasons, start, end)

			require.Equal(t, length, actual.WeekdayCount+actual.WeekendCount, "start=%d length=%d", startDay, length)
			require.Len(t, actual.DayBreakdown, length, "start=%d length=%d", startDay, length)

			total := decimal.Zero
			segmentDays := 0
			for i, seg := range actual.Segments {
				total = total.Add(seg.Amount)
				segmentDays += seg.Days
				if i > 0 {
					require.False(t, seg.Source.Equal(actual.Segments[i-1].Source), "adjacent segments share a source")
				}
			}
			require.Equal(t, length, segmentDays)
			require.True(t, total.Equal(actual.TotalAmount))

			for i, d := range actual.DayBreakdown {
				require.True(t, d.Date.Equal(start.AddDate(0, 0, i)), "breakdown out of calendar order")
			}
		}
	}
}

func TestCalculator_CalculateCost(t *testing.T) {
	ctx := context.Background()
	siteID := uuid.New()

	t.Run("success: reads seasonal rates once for the whole range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := pricingmock.NewMockSeasonalRateSource(ctrl)
		peak := season("Winter Peak", 1, 7, nil, nil, dec(800))

		source.EXPECT().
			FindSeasonalRatesForRange(ctx, siteID, day(1), day(14)).
			Return([]pricing.SeasonalRate{peak}, nil).
			Times(1)

		actual, err := pricing.NewCalculator(source).CalculateCost(ctx, siteID, standardCard(), day(1), day(14))

		require.NoError(t, err)
		assertAmount(t, 1400, actual.TotalAmount)
	})

	t.Run("error: read failure propagates unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := pricingmock.NewMockSeasonalRateSource(ctrl)
		readErr := errors.New("connection reset")

		source.EXPECT().
			FindSeasonalRatesForRange(gomock.Any(), siteID, gomock.Any(), gomock.Any()).
			Return(nil, readErr)

		_, err := pricing.NewCalculator(source).CalculateCost(ctx, siteID, standardCard(), day(1), day(14))

		require.ErrorIs(t, err, readErr)
		assert.Equal(t, readErr, err)
	})

	t.Run("start after end skips the read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := pricingmock.NewMockSeasonalRateSource(ctrl)

		actual, err := pricing.NewCalculator(source).CalculateCost(ctx, siteID, standardCard(), day(14), day(1))

		require.NoError(t, err)
		assert.True(t, actual.TotalAmount.IsZero())
		assert.Equal(t, 0, actual.DayCount())
	})
}
