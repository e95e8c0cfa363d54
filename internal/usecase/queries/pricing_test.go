//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/infra"
	"casual-leasing/internal/pkg/errs"
	"casual-leasing/internal/usecase/queries"
	"casual-leasing/tests/common/builder"
	bookingmock "casual-leasing/tests/mock/booking"
	sharedmock "casual-leasing/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	gstRate             = decimal.RequireFromString("0.10")
)

func date(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

type pricingMocks struct {
	sites      *sharedmock.MockSiteReadStore
	calculator *bookingmock.MockCostCalculator
	taxRates   *sharedmock.MockTaxRateProvider
}

func newPricingQueries(t *testing.T) (queries.PricingQueries, pricingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := pricingMocks{
		sites:      sharedmock.NewMockSiteReadStore(ctrl),
		calculator: bookingmock.NewMockCostCalculator(ctrl),
		taxRates:   sharedmock.NewMockTaxRateProvider(ctrl),
	}
	return queries.NewPricingQueries(m.sites, m.calculator, m.taxRates), m
}

func TestPricingQueries_Quote(t *testing.T) {
	ctx := context.Background()
	start, end := date(time.July, 1), date(time.July, 10)

	t.Run("success: quote carries GST on the calculated subtotal", func(t *testing.T) {
		q, m := newPricingQueries(t)
		s, err := builder.NewSiteBuilder().BuildDomain()
		require.NoError(t, err)

		result := pricing.Result{
			TotalAmount:  decimal.NewFromInt(1200),
			WeekdayCount: 8,
			WeekendCount: 2,
			DayBreakdown: make([]pricing.DayPrice, 10),
		}
		m.sites.EXPECT().FindByID(ctx, s.ID()).Return(s, nil)
		m.calculator.EXPECT().CalculateCost(ctx, s.ID(), s.RateCard(), start, end).Return(result, nil)
		m.taxRates.EXPECT().GSTRate(ctx).Return(gstRate, nil)

		view, err := q.Quote(ctx, s.ID(), start, end)

		require.NoError(t, err)
		assert.Equal(t, s.ID(), view.SiteID)
		assert.Equal(t, "Kiosk 12", view.SiteName)
		assert.Equal(t, "1200.00", view.Subtotal.StringFixed(2))
		assert.Equal(t, "120.00", view.GST.StringFixed(2))
		assert.Equal(t, "1320.00", view.Total.StringFixed(2))
		assert.Equal(t, 8, view.WeekdayCount)
		assert.Equal(t, 2, view.WeekendCount)
		assert.Len(t, view.Days, 10)
		assert.Equal(t, start, view.StartDate)
	})

	t.Run("error: unknown site is marked not found", func(t *testing.T) {
		q, m := newPricingQueries(t)
		id := uuid.New()
		m.sites.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("site not found", nil, infra.KindNotFound))

		view, err := q.Quote(ctx, id, start, end)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSiteNotFound))
		assert.Nil(t, view)
	})

	t.Run("error: inactive site is marked unavailable", func(t *testing.T) {
		q, m := newPricingQueries(t)
		s, err := builder.NewSiteBuilder().AsInactive().BuildDomain()
		require.NoError(t, err)
		m.sites.EXPECT().FindByID(ctx, s.ID()).Return(s, nil)

		view, err := q.Quote(ctx, s.ID(), start, end)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSiteUnavailable))
		assert.Nil(t, view)
	})

	t.Run("error: calculator failure is passed through", func(t *testing.T) {
		q, m := newPricingQueries(t)
		s, err := builder.NewSiteBuilder().BuildDomain()
		require.NoError(t, err)
		m.sites.EXPECT().FindByID(ctx, s.ID()).Return(s, nil)
		m.calculator.EXPECT().CalculateCost(ctx, s.ID(), gomock.Any(), start, end).Return(pricing.Result{}, errDBConnectionLost)

		view, err := q.Quote(ctx, s.ID(), start, end)

		require.ErrorIs(t, err, errDBConnectionLost)
		assert.Nil(t, view)
	})

	t.Run("error: tax rate lookup fails", func(t *testing.T) {
		q, m := newPricingQueries(t)
		s, err := builder.NewSiteBuilder().BuildDomain()
		require.NoError(t, err)
		m.sites.EXPECT().FindByID(ctx, s.ID()).Return(s, nil)
		m.calculator.EXPECT().CalculateCost(ctx, s.ID(), gomock.Any(), start, end).Return(pricing.Result{}, nil)
		m.taxRates.EXPECT().GSTRate(ctx).Return(decimal.Zero, errDBConnectionLost)

		view, err := q.Quote(ctx, s.ID(), start, end)

		require.ErrorIs(t, err, errDBConnectionLost)
		assert.Nil(t, view)
	})
}
