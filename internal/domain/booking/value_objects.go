package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"casual-leasing/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod      = errors.New("start date must not be after end date")
	ErrPeriodTooLong      = errors.New("booking period exceeds the maximum length")
	ErrPeriodInPast       = errors.New("start date cannot be in the past")
	ErrEmptyTenantName    = errors.New("tenant name cannot be empty")
	ErrInvalidTenantEmail = errors.New("invalid tenant email format")
	ErrInvalidTaxRate     = errors.New("tax rate must be between 0 and 1")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Period is an inclusive range of calendar dates.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time, maxDays int) (Period, error) {
	start, end = pricing.NormalizeDate(start), pricing.NormalizeDate(end)
	if start.After(end) {
		return Period{}, ErrInvalidPeriod
	}
	if maxDays > 0 && pricing.DaysInclusive(start, end) > maxDays {
		return Period{}, ErrPeriodTooLong
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Days() int {
	return pricing.DaysInclusive(p.start, p.end)
}

// ValidateStartAt rejects periods starting before the calendar date of now
// in the period's location.
func (p Period) ValidateStartAt(now time.Time) error {
	today := pricing.NormalizeDate(now.In(p.start.Location()))
	if p.start.Before(today) {
		return ErrPeriodInPast
	}
	return nil
}

func (p Period) String() string {
	return p.start.Format(pricing.DateLayout) + ".." + p.end.Format(pricing.DateLayout)
}

type Tenant struct {
	name  string
	email string
}

func NewTenant(name, email string) (Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Tenant{}, ErrEmptyTenantName
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Tenant{}, ErrInvalidTenantEmail
	}
	return Tenant{name: name, email: email}, nil
}

func (t Tenant) Name() string  { return t.name }
func (t Tenant) Email() string { return t.email }

// Amounts holds the charge for a booking. Subtotal keeps full precision;
// GST and Total are rounded to cents.
type Amounts struct {
	subtotal decimal.Decimal
	taxRate  decimal.Decimal
	tax      decimal.Decimal
	total    decimal.Decimal
}

func NewAmounts(subtotal, taxRate decimal.Decimal) (Amounts, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return Amounts{}, ErrInvalidTaxRate
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return Amounts{
		subtotal: subtotal,
		taxRate:  taxRate,
		tax:      tax,
		total:    subtotal.Round(2).Add(tax),
	}, nil
}

func (a Amounts) Subtotal() decimal.Decimal { return a.subtotal }
func (a Amounts) TaxRate() decimal.Decimal  { return a.taxRate }
func (a Amounts) Tax() decimal.Decimal      { return a.tax }
func (a Amounts) Total() decimal.Decimal    { return a.total }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
