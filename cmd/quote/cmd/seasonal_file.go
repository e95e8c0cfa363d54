package cmd

import (
	"encoding/json"
	"os"
	"time"

	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// seasonalEntry is one record of the --seasonal file. File order is the
// resolution order.
type seasonalEntry struct {
	Name        string           `json:"name"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	WeekdayRate *decimal.Decimal `json:"weekdayRate"`
	WeekendRate *decimal.Decimal `json:"weekendRate"`
	WeeklyRate  *decimal.Decimal `json:"weeklyRate"`
}

func loadSeasonalFile(path string, siteID uuid.UUID) ([]pricing.SeasonalRate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read seasonal file")
	}
	return parseSeasonal(raw, siteID)
}

func parseSeasonal(raw []byte, siteID uuid.UUID) ([]pricing.SeasonalRate, error) {
	var entries []seasonalEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errs.Wrap(err, "failed to parse seasonal file")
	}

	rates := make([]pricing.SeasonalRate, 0, len(entries))
	for i, e := range entries {
		start, err := pricing.ParseDate(e.StartDate, time.UTC)
		if err != nil {
			return nil, errs.Wrapf(err, "seasonal entry %d: invalid startDate", i)
		}
		end, err := pricing.ParseDate(e.EndDate, time.UTC)
		if err != nil {
			return nil, errs.Wrapf(err, "seasonal entry %d: invalid endDate", i)
		}
		rate, err := pricing.NewSeasonalRate(uuid.Nil, siteID, e.Name, start, end, e.WeekdayRate, e.WeekendRate, e.WeeklyRate)
		if err != nil {
			return nil, errs.Wrapf(err, "seasonal entry %d", i)
		}
		rates = append(rates, *rate)
	}
	return rates, nil
}
