package commands

import (
	"context"
	"errors"
	"time"

	"casual-leasing/internal/domain/booking"
	"casual-leasing/internal/domain/site"
	"casual-leasing/internal/pkg/config"
	"casual-leasing/internal/pkg/errs"
	"casual-leasing/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SiteID      uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	TenantName  string
	TenantEmail string
	Note        string
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	sites    shared.SiteReadStore
	factory  *booking.Factory
	taxRates shared.TaxRateProvider
	maxDays  int
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	sites shared.SiteReadStore,
	factory *booking.Factory,
	taxRates shared.TaxRateProvider,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		sites:    sites,
		factory:  factory,
		taxRates: taxRates,
		maxDays:  cfg.Pricing.MaxBookingDays,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	tenant, err := booking.NewTenant(req.TenantName, req.TenantEmail)
	if err != nil {
		return nil, markValidation(err)
	}
	period, err := booking.NewPeriod(req.StartDate, req.EndDate, uc.maxDays)
	if err != nil {
		return nil, markValidation(err)
	}

	s, err := loadSite(ctx, uc.sites, req.SiteID)
	if err != nil {
		return nil, err
	}

	rate, err := uc.taxRates.GSTRate(ctx)
	if err != nil {
		return nil, err
	}

	b, err := uc.factory.CreateBooking(ctx, s, tenant, period, rate, booking.NewNote(req.Note))
	if err != nil {
		switch {
		case errors.Is(err, site.ErrSiteInactive):
			return nil, errs.Mark(err, errs.ErrSiteUnavailable)
		case errors.Is(err, booking.ErrPeriodInPast):
			return nil, markValidation(err)
		}
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookingResult{BookingID: createdID}, nil
}
