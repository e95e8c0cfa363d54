//go:build e2e

package pricing_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"casual-leasing/internal/handler/dto/response"
	"casual-leasing/tests/common/builder"
	"casual-leasing/tests/common/dbtest"
	"casual-leasing/tests/common/httptest"
	"casual-leasing/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	quoteURL         = "/api/sites/%s/quote?start=%s&end=%s"
	seasonalRatesURL = "/api/sites/%s/seasonal-rates"
)

type PricingSuite struct {
	e2e.SharedSuite
}

func (s *PricingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPricingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PricingSuite))
}

func july(d int) time.Time {
	return time.Date(2024, time.July, d, 0, 0, 0, 0, time.UTC)
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func (s *PricingSuite) quote(siteID uuid.UUID, start, end string) (*response.QuoteResponse, int) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(quoteURL, siteID, start, end), nil)
	if w.Code != http.StatusOK {
		return nil, w.Code
	}
	var body response.QuoteResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	return &body, w.Code
}

func dayLabels(days []*response.DayPriceResponse) []string {
	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = d.Label
	}
	return labels
}

// =============================================================================
// TestQuote
// =============================================================================

func (s *PricingSuite) TestQuote() {
	s.Run("Normal case: two full weeks at the base weekly rate", func() {
		t := s.T()

		body, code := s.quote(dbtest.DefaultSiteID, "2024-07-01", "2024-07-14")

		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "1200.00", body.Subtotal)
		require.Equal(t, "120.00", body.GST)
		require.Equal(t, "1320.00", body.Total)
		require.Equal(t, 10, body.WeekdayCount)
		require.Equal(t, 4, body.WeekendCount)
		require.Len(t, body.Days, 14)
		require.Equal(t, "85.71", body.Days[0].Rate)
		require.Equal(t, "Weekly Rate", body.Days[0].Label)
	})

	s.Run("Normal case: seasonal weekend breaks the run into segments", func() {
		t := s.T()
		dbtest.CreateTestSeasonalRate(t, s.DB, builder.NewSeasonalRateBuilder(dbtest.DefaultSiteID).
			With(func(b *builder.SeasonalRateBuilder) { b.Name = "Winter Fest" }).
			Between(july(6), july(7)).
			Rates(nil, dec(300), nil))

		body, code := s.quote(dbtest.DefaultSiteID, "2024-07-01", "2024-07-07")

		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "1100.00", body.Subtotal)
		require.Len(t, body.Segments, 2)
		require.False(t, body.Segments[0].IsSeasonal)
		require.True(t, body.Segments[1].IsSeasonal)
		want := []string{"Weekday", "Weekday", "Weekday", "Weekday", "Weekday", "Winter Fest", "Winter Fest"}
		if diff := cmp.Diff(want, dayLabels(body.Days)); diff != "" {
			t.Errorf("day labels mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: overlapping records resolve to the first created", func() {
		t := s.T()
		dbtest.CreateTestSeasonalRate(t, s.DB, builder.NewSeasonalRateBuilder(dbtest.DefaultSiteID).
			With(func(b *builder.SeasonalRateBuilder) { b.Name = "A" }).
			Between(july(2), july(3)).
			Rates(dec(1), nil, nil))
		dbtest.CreateTestSeasonalRate(t, s.DB, builder.NewSeasonalRateBuilder(dbtest.DefaultSiteID).
			With(func(b *builder.SeasonalRateBuilder) { b.Name = "B" }).
			Between(july(3), july(4)).
			Rates(dec(2), nil, nil))

		body, code := s.quote(dbtest.DefaultSiteID, "2024-07-01", "2024-07-05")

		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "204.00", body.Subtotal)
		want := []string{"Weekday", "A", "A", "B", "Weekday"}
		if diff := cmp.Diff(want, dayLabels(body.Days)); diff != "" {
			t.Errorf("day labels mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: site without rates uses the default daily rate", func() {
		t := s.T()
		siteID := dbtest.CreateTestSite(t, s.DB, builder.NewSiteBuilder().WithoutRates())

		body, code := s.quote(siteID, "2024-07-06", "2024-07-06")

		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "150.00", body.Subtotal)
	})

	s.Run("Error cases", func() {
		t := s.T()
		inactiveID := dbtest.CreateTestSite(t, s.DB, builder.NewSiteBuilder().AsInactive())

		testCases := []struct {
			name   string
			siteID string
			start  string
			end    string
			code   int
		}{
			{name: "unknown site", siteID: uuid.NewString(), start: "2024-07-01", end: "2024-07-02", code: http.StatusNotFound},
			{name: "inactive site", siteID: inactiveID.String(), start: "2024-07-01", end: "2024-07-02", code: http.StatusNotFound},
			{name: "start after end", siteID: dbtest.DefaultSiteID.String(), start: "2024-07-05", end: "2024-07-01", code: http.StatusBadRequest},
			{name: "range too long", siteID: dbtest.DefaultSiteID.String(), start: "2024-01-01", end: "2025-01-01", code: http.StatusBadRequest},
			{name: "bad date", siteID: dbtest.DefaultSiteID.String(), start: "01-07-2024", end: "2024-07-02", code: http.StatusBadRequest},
			{name: "bad site id", siteID: "not-a-uuid", start: "2024-07-01", end: "2024-07-02", code: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(quoteURL, tc.siteID, tc.start, tc.end), nil)
			httptest.AssertErrorResponse(t, w, tc.code, "")
		}
	})
}

// =============================================================================
// TestSeasonalRates
// =============================================================================

func (s *PricingSuite) TestSeasonalRates() {
	url := fmt.Sprintf(seasonalRatesURL, dbtest.DefaultSiteID)

	s.Run("Normal case: created rates are listed in creation order", func() {
		t := s.T()

		for _, name := range []string{"Late", "Early"} {
			reqBody := map[string]any{
				"name":        name,
				"startDate":   "2024-12-01",
				"endDate":     "2024-12-31",
				"weekdayRate": "200",
				"weeklyRate":  "1000",
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqBody)
			var created response.SeasonalRateResponse
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
			require.Equal(t, name, created.Name)
			require.NotEmpty(t, created.ID)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?start=2024-12-10&end=2024-12-11", nil)
		var listed []response.SeasonalRateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 2)
		require.Equal(t, "Late", listed[0].Name)
		require.Equal(t, "Early", listed[1].Name)
		require.Equal(t, "200.00", *listed[0].WeekdayRate)
		require.Nil(t, listed[0].WeekendRate)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?start=2025-01-01&end=2025-01-31", nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Empty(t, listed)
	})

	s.Run("Error cases", func() {
		t := s.T()

		testCases := []struct {
			name string
			url  string
			body map[string]any
			code int
		}{
			{
				name: "no rate at all",
				url:  url,
				body: map[string]any{"name": "Empty", "startDate": "2024-12-01", "endDate": "2024-12-02"},
				code: http.StatusBadRequest,
			},
			{
				name: "end before start",
				url:  url,
				body: map[string]any{"name": "Broken", "startDate": "2024-12-05", "endDate": "2024-12-02", "weekdayRate": "1"},
				code: http.StatusBadRequest,
			},
			{
				name: "negative rate",
				url:  url,
				body: map[string]any{"name": "Broken", "startDate": "2024-12-01", "endDate": "2024-12-02", "weekdayRate": "-1"},
				code: http.StatusBadRequest,
			},
			{
				name: "unknown site",
				url:  fmt.Sprintf(seasonalRatesURL, uuid.New()),
				body: map[string]any{"name": "Orphan", "startDate": "2024-12-01", "endDate": "2024-12-02", "weekdayRate": "1"},
				code: http.StatusNotFound,
			},
		}

		for _, tc := range testCases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, tc.url, tc.body)
			httptest.AssertErrorResponse(t, w, tc.code, "")
		}
	})
}
