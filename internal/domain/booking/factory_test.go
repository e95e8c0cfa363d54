//go:build unit

package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"casual-leasing/internal/domain/booking"
	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/domain/site"
	"casual-leasing/internal/pkg/clock"
	"casual-leasing/tests/common/builder"
	pricingmock "casual-leasing/tests/mock/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var gst = decimal.RequireFromString("0.10")

func date(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func TestFactory_CreateBooking(t *testing.T) {
	ctx := context.Background()
	tenant, err := booking.NewTenant("Pop-up Coffee Co", "hello@popup.example.com")
	require.NoError(t, err)

	newFactory := func(t *testing.T, now time.Time, rates []pricing.SeasonalRate) *booking.Factory {
		t.Helper()
		ctrl := gomock.NewController(t)
		source := pricingmock.NewMockSeasonalRateSource(ctrl)
		source.EXPECT().
			FindSeasonalRatesForRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rates, nil).
			AnyTimes()
		return booking.NewFactory(clock.NewFixed(now), pricing.NewCalculator(source))
	}

	t.Run("success: prices the period and applies GST", func(t *testing.T) {
		siteEntity, err := builder.NewSiteBuilder().BuildDomain()
		require.NoError(t, err)
		period, err := booking.NewPeriod(date(time.July, 1), date(time.July, 10), 366)
		require.NoError(t, err)

		actual, err := newFactory(t, date(time.June, 20), nil).
			CreateBooking(ctx, siteEntity, tenant, period, gst, booking.NewNote("  corner stall "))

		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, siteEntity.ID(), actual.SiteID())
		assert.True(t, decimal.NewFromInt(900).Equal(actual.Amounts().Subtotal()))
		assert.True(t, decimal.NewFromInt(90).Equal(actual.Amounts().Tax()))
		assert.True(t, decimal.NewFromInt(990).Equal(actual.Amounts().Total()))
		assert.Equal(t, 8, actual.WeekdayCount())
		assert.Equal(t, 2, actual.WeekendCount())
		assert.Len(t, actual.Days(), 10)
		assert.Equal(t, "corner stall", actual.Note().String())
	})

	t.Run("success: starting today is allowed", func(t *testing.T) {
		siteEntity, err := builder.NewSiteBuilder().BuildDomain()
		require.NoError(t, err)
		period, err := booking.NewPeriod(date(time.July, 1), date(time.July, 1), 366)
		require.NoError(t, err)

		_, err = newFactory(t, date(time.July, 1).Add(17*time.Hour), nil).
			CreateBooking(ctx, siteEntity, tenant, period, gst, booking.NewNote(""))

		require.NoError(t, err)
	})

	t.Run("error: start date in the past", func(t *testing.T) {
		siteEntity, err := builder.NewSiteBuilder().BuildDomain()
		require.NoError(t, err)
		period, err := booking.NewPeriod(date(time.July, 1), date(time.July, 3), 366)
		require.NoError(t, err)

		_, err = newFactory(t, date(time.July, 2), nil).
			CreateBooking(ctx, siteEntity, tenant, period, gst, booking.NewNote(""))

		require.ErrorIs(t, err, booking.ErrPeriodInPast)
	})

	t.Run("error: inactive site", func(t *testing.T) {
		siteEntity, err := builder.NewSiteBuilder().AsInactive().BuildDomain()
		require.NoError(t, err)
		period, err := booking.NewPeriod(date(time.July, 1), date(time.July, 3), 366)
		require.NoError(t, err)

		_, err = newFactory(t, date(time.June, 1), nil).
			CreateBooking(ctx, siteEntity, tenant, period, gst, booking.NewNote(""))

		require.ErrorIs(t, err, site.ErrSiteInactive)
	})

	t.Run("error: seasonal rate read fails", func(t *testing.T) {
		siteEntity, err := builder.NewSiteBuilder().BuildDomain()
		require.NoError(t, err)
		period, err := booking.NewPeriod(date(time.July, 1), date(time.July, 3), 366)
		require.NoError(t, err)
		readErr := errors.New("timeout")

		ctrl := gomock.NewController(t)
		source := pricingmock.NewMockSeasonalRateSource(ctrl)
		source.EXPECT().FindSeasonalRatesForRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, readErr)
		factory := booking.NewFactory(clock.NewFixed(date(time.June, 1)), pricing.NewCalculator(source))

		_, err = factory.CreateBooking(ctx, siteEntity, tenant, period, gst, booking.NewNote(""))

		require.ErrorIs(t, err, readErr)
	})
}

func TestNewPeriod(t *testing.T) {
	testCases := []struct {
		name    string
		start   time.Time
		end     time.Time
		maxDays int
		days    int
		errIs   error
	}{
		{name: "single day", start: date(time.July, 1), end: date(time.July, 1), maxDays: 366, days: 1},
		{name: "exactly max days", start: date(time.July, 1), end: date(time.July, 7), maxDays: 7, days: 7},
		{name: "over max days", start: date(time.July, 1), end: date(time.July, 8), maxDays: 7, errIs: booking.ErrPeriodTooLong},
		{name: "end before start", start: date(time.July, 2), end: date(time.July, 1), maxDays: 7, errIs: booking.ErrInvalidPeriod},
		{name: "no limit", start: date(time.January, 1), end: date(time.December, 31), maxDays: 0, days: 366},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := booking.NewPeriod(tc.start, tc.end, tc.maxDays)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.days, actual.Days())
		})
	}
}

func TestNewAmounts(t *testing.T) {
	t.Run("rounds GST to cents", func(t *testing.T) {
		actual, err := booking.NewAmounts(decimal.RequireFromString("123.456"), gst)

		require.NoError(t, err)
		assert.Equal(t, "12.35", actual.Tax().StringFixed(2))
		assert.Equal(t, "135.81", actual.Total().StringFixed(2))
		assert.Equal(t, "123.456", actual.Subtotal().String())
	})

	t.Run("rejects a rate above one", func(t *testing.T) {
		_, err := booking.NewAmounts(decimal.NewFromInt(10), decimal.NewFromInt(10))

		require.ErrorIs(t, err, booking.ErrInvalidTaxRate)
	})
}

func TestNewTenant(t *testing.T) {
	_, err := booking.NewTenant(" ", "a@b.co")
	require.ErrorIs(t, err, booking.ErrEmptyTenantName)

	_, err = booking.NewTenant("Stall", "not-an-email")
	require.ErrorIs(t, err, booking.ErrInvalidTenantEmail)

	actual, err := booking.NewTenant(" Stall ", " a@b.co ")
	require.NoError(t, err)
	assert.Equal(t, "Stall", actual.Name())
	assert.Equal(t, "a@b.co", actual.Email())
}
