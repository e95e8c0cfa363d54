package cmd

import (
	"io"
	"time"

	"casual-leasing/internal/domain/booking"
	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/pkg/errs"
	"casual-leasing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type quoteOptions struct {
	pricePerDay        string
	pricePerWeek       string
	weekendPricePerDay string
	start              string
	end                string
	seasonalFile       string
	gst                string
	format             string
}

func runQuote(w io.Writer, opts *quoteOptions) error {
	if opts.format != formatTable && opts.format != formatJSON {
		return errs.Newf("unknown format %q (want %s or %s)", opts.format, formatTable, formatJSON)
	}

	card, err := opts.rateCard()
	if err != nil {
		return err
	}

	start, err := pricing.ParseDate(opts.start, time.UTC)
	if err != nil {
		return errs.Wrap(err, "invalid --start")
	}
	end, err := pricing.ParseDate(opts.end, time.UTC)
	if err != nil {
		return errs.Wrap(err, "invalid --end")
	}

	gst, err := decimal.NewFromString(opts.gst)
	if err != nil {
		return errs.Wrap(err, "invalid --gst")
	}

	// Offline quotes have no site record; the seasonal file is already scoped to one site.
	siteID := uuid.Nil
	var seasonal []pricing.SeasonalRate
	if opts.seasonalFile != "" {
		seasonal, err = loadSeasonalFile(opts.seasonalFile, siteID)
		if err != nil {
			return err
		}
	}

	result := pricing.Calculate(card, seasonal, start, end)
	amounts, err := booking.NewAmounts(result.TotalAmount, gst)
	if err != nil {
		return errs.Wrap(err, "invalid --gst")
	}

	view := queries.NewQuoteView(siteID, "", start, end, result, amounts)
	if opts.format == formatJSON {
		return printJSON(w, view)
	}
	printTable(w, view)
	return nil
}

func (o *quoteOptions) rateCard() (pricing.RateCard, error) {
	var card pricing.RateCard
	var err error
	if card.PricePerDay, err = optionalDecimal("--price-per-day", o.pricePerDay); err != nil {
		return card, err
	}
	if card.PricePerWeek, err = optionalDecimal("--price-per-week", o.pricePerWeek); err != nil {
		return card, err
	}
	if card.WeekendPricePerDay, err = optionalDecimal("--weekend-price-per-day", o.weekendPricePerDay); err != nil {
		return card, err
	}
	return card, nil
}

func optionalDecimal(flag, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid %s", flag)
	}
	if d.IsNegative() {
		return nil, errs.Newf("invalid %s: rate cannot be negative", flag)
	}
	return &d, nil
}
