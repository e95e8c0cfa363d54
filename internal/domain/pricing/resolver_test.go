//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"casual-leasing/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDays(t *testing.T) {
	t.Run("no seasonal records resolves every day to base", func(t *testing.T) {
		days := pricing.ResolveDays(day(1), day(5), nil)

		require.Len(t, days, 5)
		for i, d := range days {
			assert.True(t, d.Date.Equal(day(1+i)))
			assert.False(t, d.Source.IsSeasonal())
		}
	})

	t.Run("record containing the whole request covers every day", func(t *testing.T) {
		rates := []pricing.SeasonalRate{season("Summer", 1, 31, dec(120), nil, nil)}

		days := pricing.ResolveDays(day(10), day(12), rates)

		require.Len(t, days, 3)
		for _, d := range days {
			require.True(t, d.Source.IsSeasonal())
			assert.Equal(t, "Summer", d.Source.Seasonal().Name)
		}
	})

	t.Run("record is clipped to the request", func(t *testing.T) {
		rates := []pricing.SeasonalRate{season("Sale", 4, 20, dec(120), nil, nil)}

		days := pricing.ResolveDays(day(1), day(6), rates)

		require.Len(t, days, 6)
		assert.False(t, days[2].Source.IsSeasonal())
		assert.True(t, days[3].Source.IsSeasonal())
		assert.True(t, days[5].Source.IsSeasonal())
	})

	t.Run("first applicable record keeps an overlapping day", func(t *testing.T) {
		rates := []pricing.SeasonalRate{
			season("A", 2, 3, dec(1), nil, nil),
			season("B", 3, 4, dec(2), nil, nil),
		}

		days := pricing.ResolveDays(day(1), day(5), rates)

		names := make([]string, len(days))
		for i, d := range days {
			names[i] = d.Source.Label(d.Date)
		}
		assert.Equal(t, []string{"Weekday", "A", "A", "B", "Weekday"}, names)
	})

	t.Run("records outside the request are ignored", func(t *testing.T) {
		rates := []pricing.SeasonalRate{season("Later", 20, 25, dec(1), nil, nil)}

		days := pricing.ResolveDays(day(1), day(3), rates)

		for _, d := range days {
			assert.False(t, d.Source.IsSeasonal())
		}
	})

	t.Run("record dates in another location resolve by calendar date", func(t *testing.T) {
		sydney, err := time.LoadLocation("Australia/Sydney")
		require.NoError(t, err)
		rec := season("Local", 2, 2, dec(1), nil, nil)

		start := time.Date(2024, time.July, 1, 0, 0, 0, 0, sydney)
		end := time.Date(2024, time.July, 3, 0, 0, 0, 0, sydney)
		days := pricing.ResolveDays(start, end, []pricing.SeasonalRate{rec})

		require.Len(t, days, 3)
		assert.False(t, days[0].Source.IsSeasonal())
		assert.True(t, days[1].Source.IsSeasonal())
		assert.False(t, days[2].Source.IsSeasonal())
	})

	t.Run("start after end resolves nothing", func(t *testing.T) {
		assert.Empty(t, pricing.ResolveDays(day(3), day(1), nil))
	})
}

func TestSplitSegments(t *testing.T) {
	t.Run("single day is a segment", func(t *testing.T) {
		segments := pricing.SplitSegments(pricing.ResolveDays(day(1), day(1), nil))

		require.Len(t, segments, 1)
		assert.Equal(t, 1, segments[0].Len())
	})

	t.Run("transitions into and out of base start new segments", func(t *testing.T) {
		rates := []pricing.SeasonalRate{season("Mid", 3, 4, dec(1), nil, nil)}

		segments := pricing.SplitSegments(pricing.ResolveDays(day(1), day(6), rates))

		require.Len(t, segments, 3)
		assert.Equal(t, []int{2, 2, 2}, []int{segments[0].Len(), segments[1].Len(), segments[2].Len()})
		assert.True(t, segments[1].Source.IsSeasonal())
	})

	t.Run("back-to-back records are separate segments", func(t *testing.T) {
		rates := []pricing.SeasonalRate{
			season("First", 1, 3, dec(1), nil, nil),
			season("Second", 4, 6, dec(1), nil, nil),
		}

		segments := pricing.SplitSegments(pricing.ResolveDays(day(1), day(6), rates))

		require.Len(t, segments, 2)
		assert.Equal(t, "First", segments[0].Source.Seasonal().Name)
		assert.Equal(t, "Second", segments[1].Source.Seasonal().Name)
	})

	t.Run("empty input gives no segments", func(t *testing.T) {
		assert.Empty(t, pricing.SplitSegments(nil))
	})
}

func TestRateSourceNames(t *testing.T) {
	rate := season("Christmas", 1, 7, dec(150), nil, dec(900))
	seasonal := pricing.SeasonalSource(&rate)
	base := pricing.BaseSource()

	assert.Equal(t, "Base", base.Name())
	assert.Equal(t, "Christmas", seasonal.Name())
	assert.Equal(t, "Weekly Rate", base.WeeklyLabel())
	assert.Equal(t, "Christmas (Weekly)", seasonal.WeeklyLabel())
	assert.Equal(t, "Christmas", seasonal.Label(day(6)))
}

func TestNewSeasonalRate(t *testing.T) {
	siteID := uuid.New()

	testCases := []struct {
		name    string
		label   string
		start   time.Time
		end     time.Time
		weekday *int64
		errIs   error
	}{
		{name: "valid single day", label: "Launch", start: day(1), end: day(1), weekday: ptrInt(100)},
		{name: "empty name", label: "  ", start: day(1), end: day(2), weekday: ptrInt(100), errIs: pricing.ErrEmptySeasonName},
		{name: "end before start", label: "Broken", start: day(5), end: day(2), weekday: ptrInt(100), errIs: pricing.ErrInvalidSeasonPeriod},
		{name: "negative rate", label: "Broken", start: day(1), end: day(2), weekday: ptrInt(-1), errIs: pricing.ErrNegativeRate},
		{name: "no rate at all", label: "Empty", start: day(1), end: day(2), errIs: pricing.ErrSeasonWithoutAnyRate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var weekday *decimal.Decimal
			if tc.weekday != nil {
				weekday = dec(*tc.weekday)
			}

			actual, err := pricing.NewSeasonalRate(uuid.Nil, siteID, tc.label, tc.start, tc.end, weekday, nil, nil)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, actual.ID)
			assert.Equal(t, siteID, actual.SiteID)
		})
	}
}

func ptrInt(v int64) *int64 {
	return &v
}
