package site

import (
	"errors"
	"strings"

	"casual-leasing/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptySiteName   = errors.New("site name cannot be empty")
	ErrSiteNameTooLong = errors.New("site name is too long (max 255 characters)")
	ErrNegativeRate    = errors.New("site rate cannot be negative")
	ErrSiteInactive    = errors.New("site is not available for booking")
)

const (
	MaxSiteNameLength = 255
)

// Site is a leasable space inside a shopping centre.
type Site struct {
	id                 uuid.UUID
	name               string
	centreName         string
	pricePerDay        *decimal.Decimal
	pricePerWeek       *decimal.Decimal
	weekendPricePerDay *decimal.Decimal
	active             bool
}

func NewSite(
	id uuid.UUID,
	name, centreName string,
	pricePerDay, pricePerWeek, weekendPricePerDay *decimal.Decimal,
	active bool,
) (*Site, error) {
	if err := validateSiteName(name); err != nil {
		return nil, err
	}

	if err := validateRates(pricePerDay, pricePerWeek, weekendPricePerDay); err != nil {
		return nil, err
	}

	return &Site{
		id:                 id,
		name:               strings.TrimSpace(name),
		centreName:         strings.TrimSpace(centreName),
		pricePerDay:        pricePerDay,
		pricePerWeek:       pricePerWeek,
		weekendPricePerDay: weekendPricePerDay,
		active:             active,
	}, nil
}

// RateCard hands absent rates through untouched; defaults belong to pricing.
func (s *Site) RateCard() pricing.RateCard {
	return pricing.RateCard{
		PricePerDay:        s.pricePerDay,
		PricePerWeek:       s.pricePerWeek,
		WeekendPricePerDay: s.weekendPricePerDay,
	}
}

func (s *Site) EnsureBookable() error {
	if !s.active {
		return ErrSiteInactive
	}
	return nil
}

func validateSiteName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptySiteName
	}
	if len(name) > MaxSiteNameLength {
		return ErrSiteNameTooLong
	}
	return nil
}

func validateRates(rates ...*decimal.Decimal) error {
	for _, r := range rates {
		if r != nil && r.IsNegative() {
			return ErrNegativeRate
		}
	}
	return nil
}

func (s *Site) ID() uuid.UUID                        { return s.id }
func (s *Site) Name() string                         { return s.name }
func (s *Site) CentreName() string                   { return s.centreName }
func (s *Site) PricePerDay() *decimal.Decimal        { return s.pricePerDay }
func (s *Site) PricePerWeek() *decimal.Decimal       { return s.pricePerWeek }
func (s *Site) WeekendPricePerDay() *decimal.Decimal { return s.weekendPricePerDay }
func (s *Site) IsActive() bool                       { return s.active }
