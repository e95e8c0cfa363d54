//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/infra"
	"casual-leasing/internal/pkg/errs"
	"casual-leasing/internal/usecase/commands"
	"casual-leasing/internal/usecase/shared"
	"casual-leasing/tests/common/builder"
	sharedmock "casual-leasing/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeasonalRateCommands_Create(t *testing.T) {
	ctx := context.Background()
	weekday := decimal.NewFromInt(200)

	type mocks struct {
		uow   *sharedmock.MockUnitOfWork
		tx    *sharedmock.MockTx
		repo  *sharedmock.MockSeasonalRateRepository
		sites *sharedmock.MockSiteReadStore
	}
	setup := func(t *testing.T) (commands.SeasonalRateCommands, mocks) {
		t.Helper()
		ctrl := gomock.NewController(t)
		m := mocks{
			uow:   sharedmock.NewMockUnitOfWork(ctrl),
			tx:    sharedmock.NewMockTx(ctrl),
			repo:  sharedmock.NewMockSeasonalRateRepository(ctrl),
			sites: sharedmock.NewMockSiteReadStore(ctrl),
		}
		return commands.NewSeasonalRateCommands(m.uow, m.sites), m
	}
	within := func(m mocks) {
		m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, m.tx)
			})
		m.tx.EXPECT().SeasonalRates().Return(m.repo).AnyTimes()
		m.tx.EXPECT().DB().Return(nil).AnyTimes()
	}
	request := func(siteID uuid.UUID) commands.CreateSeasonalRateRequest {
		return commands.CreateSeasonalRateRequest{
			SiteID:      siteID,
			Name:        " Christmas ",
			StartDate:   date(time.December, 1),
			EndDate:     date(time.December, 31),
			WeekdayRate: &weekday,
		}
	}

	t.Run("success: stored record is returned with its id", func(t *testing.T) {
		uc, m := setup(t)
		s, err := builder.NewSiteBuilder().BuildDomain()
		require.NoError(t, err)
		storedID := uuid.New()

		m.sites.EXPECT().FindByID(ctx, s.ID()).Return(s, nil)
		within(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, rate *pricing.SeasonalRate) (uuid.UUID, error) {
				assert.Equal(t, "Christmas", rate.Name)
				assert.Equal(t, s.ID(), rate.SiteID)
				return storedID, nil
			})

		result, err := uc.Create(ctx, request(s.ID()))

		require.NoError(t, err)
		assert.Equal(t, storedID, result.SeasonalRate.ID)
		assert.Equal(t, "Christmas", result.SeasonalRate.Name)
		assert.True(t, weekday.Equal(*result.SeasonalRate.WeekdayRate))
	})

	t.Run("success: inactive sites accept seasonal rates", func(t *testing.T) {
		uc, m := setup(t)
		s, err := builder.NewSiteBuilder().AsInactive().BuildDomain()
		require.NoError(t, err)

		m.sites.EXPECT().FindByID(ctx, s.ID()).Return(s, nil)
		within(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		_, err = uc.Create(ctx, request(s.ID()))

		require.NoError(t, err)
	})

	t.Run("error: record without rates is a validation error", func(t *testing.T) {
		uc, _ := setup(t)
		req := request(uuid.New())
		req.WeekdayRate = nil

		_, err := uc.Create(ctx, req)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.ErrorIs(t, err, pricing.ErrSeasonWithoutAnyRate)
	})

	t.Run("error: inverted period is a validation error", func(t *testing.T) {
		uc, _ := setup(t)
		req := request(uuid.New())
		req.StartDate, req.EndDate = req.EndDate, req.StartDate

		_, err := uc.Create(ctx, req)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("error: unknown site", func(t *testing.T) {
		uc, m := setup(t)
		id := uuid.New()
		m.sites.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("site not found", nil, infra.KindNotFound))

		_, err := uc.Create(ctx, request(id))

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSiteNotFound))
	})

	t.Run("error: site removed before insert", func(t *testing.T) {
		uc, m := setup(t)
		s, err := builder.NewSiteBuilder().BuildDomain()
		require.NoError(t, err)

		m.sites.EXPECT().FindByID(ctx, s.ID()).Return(s, nil)
		within(m)
		fkErr := infra.WrapRepoErr("failed to create seasonal rate", &pgconn.PgError{Code: "23503"})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, fkErr)

		_, err = uc.Create(ctx, request(s.ID()))

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSiteNotFound))
	})

	t.Run("error: storage failure is passed through", func(t *testing.T) {
		uc, m := setup(t)
		s, err := builder.NewSiteBuilder().BuildDomain()
		require.NoError(t, err)

		m.sites.EXPECT().FindByID(ctx, s.ID()).Return(s, nil)
		within(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, errDBConnectionLost)

		result, err := uc.Create(ctx, request(s.ID()))

		require.ErrorIs(t, err, errDBConnectionLost)
		assert.Nil(t, result)
	})
}
