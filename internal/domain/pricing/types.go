package pricing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptySeasonName      = errors.New("seasonal rate name cannot be empty")
	ErrSeasonNameTooLong    = errors.New("seasonal rate name is too long (max 100 characters)")
	ErrInvalidSeasonPeriod  = errors.New("seasonal rate start date must not be after end date")
	ErrNegativeRate         = errors.New("rate cannot be negative")
	ErrSeasonWithoutAnyRate = errors.New("seasonal rate must set at least one of weekday, weekend or weekly rate")
)

const (
	MaxSeasonNameLength = 100
	DaysPerWeek         = 7
)

// DefaultPricePerDay applies when a site has no daily rate configured.
var DefaultPricePerDay = decimal.NewFromInt(150)

// RateCard is a site's base pricing. Nil fields are absent.
type RateCard struct {
	PricePerDay        *decimal.Decimal
	PricePerWeek       *decimal.Decimal
	WeekendPricePerDay *decimal.Decimal
}

func (rc RateCard) DailyRate() decimal.Decimal {
	if rc.PricePerDay == nil {
		return DefaultPricePerDay
	}
	return *rc.PricePerDay
}

func (rc RateCard) WeekendRate() decimal.Decimal {
	if rc.WeekendPricePerDay == nil {
		return rc.DailyRate()
	}
	return *rc.WeekendPricePerDay
}

// WeeklyRate reports false when the weekly tier is absent or zero.
func (rc RateCard) WeeklyRate() (decimal.Decimal, bool) {
	if rc.PricePerWeek == nil || !rc.PricePerWeek.IsPositive() {
		return decimal.Zero, false
	}
	return *rc.PricePerWeek, true
}

// RateForDay returns the base daily rate for the calendar type of day.
func (rc RateCard) RateForDay(day time.Time) decimal.Decimal {
	if IsWeekend(day) {
		return rc.WeekendRate()
	}
	return rc.DailyRate()
}

// SeasonalRate is a named, date-bounded override of a site's rates.
// StartDate and EndDate are inclusive calendar dates.
type SeasonalRate struct {
	ID          uuid.UUID
	SiteID      uuid.UUID
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	WeekdayRate *decimal.Decimal
	WeekendRate *decimal.Decimal
	WeeklyRate  *decimal.Decimal
	CreatedAt   time.Time
}

// NewSeasonalRate validates a record before it is stored. The calculation
// path does not re-validate records it is given.
func NewSeasonalRate(
	id, siteID uuid.UUID,
	name string,
	startDate, endDate time.Time,
	weekdayRate, weekendRate, weeklyRate *decimal.Decimal,
) (*SeasonalRate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptySeasonName
	}
	if len(name) > MaxSeasonNameLength {
		return nil, ErrSeasonNameTooLong
	}

	start := NormalizeDate(startDate)
	end := NormalizeDate(endDate)
	if start.After(end) {
		return nil, ErrInvalidSeasonPeriod
	}

	if weekdayRate == nil && weekendRate == nil && weeklyRate == nil {
		return nil, ErrSeasonWithoutAnyRate
	}
	for _, r := range []*decimal.Decimal{weekdayRate, weekendRate, weeklyRate} {
		if r != nil && r.IsNegative() {
			return nil, ErrNegativeRate
		}
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &SeasonalRate{
		ID:          id,
		SiteID:      siteID,
		Name:        name,
		StartDate:   start,
		EndDate:     end,
		WeekdayRate: weekdayRate,
		WeekendRate: weekendRate,
		WeeklyRate:  weeklyRate,
	}, nil
}

// dailyRate picks the record's own rate for the day type, falling back to
// the opposite day type. ok is false when the record has no daily rate.
func (sr *SeasonalRate) dailyRate(day time.Time) (decimal.Decimal, bool) {
	primary, secondary := sr.WeekdayRate, sr.WeekendRate
	if IsWeekend(day) {
		primary, secondary = sr.WeekendRate, sr.WeekdayRate
	}
	switch {
	case primary != nil:
		return *primary, true
	case secondary != nil:
		return *secondary, true
	default:
		return decimal.Zero, false
	}
}

// RateSource is either the site's base rate or one seasonal record.
type RateSource struct {
	seasonal *SeasonalRate
}

func BaseSource() RateSource {
	return RateSource{}
}

func SeasonalSource(rate *SeasonalRate) RateSource {
	return RateSource{seasonal: rate}
}

func (s RateSource) IsSeasonal() bool {
	return s.seasonal != nil
}

func (s RateSource) Seasonal() *SeasonalRate {
	return s.seasonal
}

// Equal compares record identity, not record contents.
func (s RateSource) Equal(other RateSource) bool {
	return s.seasonal == other.seasonal
}

// Name identifies the source itself: the seasonal record's name or "Base".
func (s RateSource) Name() string {
	if s.seasonal != nil {
		return s.seasonal.Name
	}
	return "Base"
}

// Label is the customer-facing name for a day priced at a daily rate.
func (s RateSource) Label(day time.Time) string {
	if s.seasonal != nil {
		return s.seasonal.Name
	}
	if IsWeekend(day) {
		return "Weekend"
	}
	return "Weekday"
}

// WeeklyLabel is the customer-facing name for a day inside a weekly block.
func (s RateSource) WeeklyLabel() string {
	if s.seasonal != nil {
		return s.seasonal.Name + " (Weekly)"
	}
	return "Weekly Rate"
}

// DayAssignment binds one calendar day to the source that prices it.
type DayAssignment struct {
	Date   time.Time
	Source RateSource
}

// Segment is a maximal run of consecutive days sharing one source.
type Segment struct {
	Source RateSource
	Days   []time.Time
}

func (s Segment) Len() int {
	return len(s.Days)
}

type DayPrice struct {
	Date       time.Time
	Rate       decimal.Decimal
	Label      string
	IsSeasonal bool
}

type SegmentPrice struct {
	Source       RateSource
	StartDate    time.Time
	EndDate      time.Time
	Days         int
	WeeksCharged int
	WeeklyRate   *decimal.Decimal
	Amount       decimal.Decimal
	Trail        []DayPrice
}

type Result struct {
	TotalAmount  decimal.Decimal
	WeekdayCount int
	WeekendCount int
	DayBreakdown []DayPrice
	Segments     []SegmentPrice
}

func (r Result) DayCount() int {
	return r.WeekdayCount + r.WeekendCount
}
