package commands

import (
	"context"
	"time"

	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/infra"
	"casual-leasing/internal/pkg/errs"
	"casual-leasing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateSeasonalRateRequest struct {
	SiteID      uuid.UUID
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	WeekdayRate *decimal.Decimal
	WeekendRate *decimal.Decimal
	WeeklyRate  *decimal.Decimal
}

type CreateSeasonalRateResult struct {
	SeasonalRate pricing.SeasonalRate
}

type SeasonalRateCommands interface {
	Create(ctx context.Context, req CreateSeasonalRateRequest) (*CreateSeasonalRateResult, error)
}

type seasonalRateCommandsImpl struct {
	uow   shared.UnitOfWork
	sites shared.SiteReadStore
}

func NewSeasonalRateCommands(uow shared.UnitOfWork, sites shared.SiteReadStore) SeasonalRateCommands {
	return &seasonalRateCommandsImpl{uow: uow, sites: sites}
}

func (uc *seasonalRateCommandsImpl) Create(ctx context.Context, req CreateSeasonalRateRequest) (*CreateSeasonalRateResult, error) {
	rate, err := pricing.NewSeasonalRate(
		uuid.Nil, req.SiteID, req.Name, req.StartDate, req.EndDate,
		req.WeekdayRate, req.WeekendRate, req.WeeklyRate,
	)
	if err != nil {
		return nil, markValidation(err)
	}

	if _, err := loadSite(ctx, uc.sites, req.SiteID); err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.SeasonalRates().Create(ctx, tx.DB(), rate)
		if derr != nil {
			return derr
		}
		rate.ID = id
		return nil
	})
	if err != nil {
		// site removed between the lookup and the insert
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrSiteNotFound)
		}
		return nil, err
	}

	return &CreateSeasonalRateResult{SeasonalRate: *rate}, nil
}
