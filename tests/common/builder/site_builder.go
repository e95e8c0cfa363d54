//go:build unit || e2e

package builder

import (
	"time"

	"casual-leasing/internal/domain/site"
	sqlc "casual-leasing/internal/infra/sqlc/generated"
	"casual-leasing/internal/pkg/pgconv"
	"casual-leasing/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type SiteBuilder struct {
	ID                 uuid.UUID
	Name               string
	CentreName         string
	PricePerDay        *decimal.Decimal
	PricePerWeek       *decimal.Decimal
	WeekendPricePerDay *decimal.Decimal
	Active             bool
	CreatedAt          time.Time
}

// NewSiteBuilder defaults to an active site at 100/day, 600/week and 150/weekend day.
func NewSiteBuilder() *SiteBuilder {
	return &SiteBuilder{
		ID:                 uuid.New(),
		Name:               "Kiosk 12",
		CentreName:         "Westfield Parramatta",
		PricePerDay:        dec(100),
		PricePerWeek:       dec(600),
		WeekendPricePerDay: dec(150),
		Active:             true,
		CreatedAt:          time.Now(),
	}
}

func (b *SiteBuilder) With(mutate func(*SiteBuilder)) *SiteBuilder {
	mutate(b)
	return b
}

func (b *SiteBuilder) AsInactive() *SiteBuilder {
	b.Active = false
	return b
}

func (b *SiteBuilder) WithoutRates() *SiteBuilder {
	b.PricePerDay = nil
	b.PricePerWeek = nil
	b.WeekendPricePerDay = nil
	return b
}

// Build methods
func (b *SiteBuilder) BuildDomain() (*site.Site, error) {
	return site.NewSite(b.ID, b.Name, b.CentreName, b.PricePerDay, b.PricePerWeek, b.WeekendPricePerDay, b.Active)
}

func (b *SiteBuilder) BuildInfra() sqlc.Sites {
	return sqlc.Sites{
		ID:                 b.ID,
		Name:               b.Name,
		CentreName:         b.CentreName,
		PricePerDay:        pgconv.DecimalPtrToNumeric(b.PricePerDay),
		PricePerWeek:       pgconv.DecimalPtrToNumeric(b.PricePerWeek),
		WeekendPricePerDay: pgconv.DecimalPtrToNumeric(b.WeekendPricePerDay),
		IsActive:           b.Active,
		CreatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func dec(v int64) *decimal.Decimal {
	return ptr.To(decimal.NewFromInt(v))
}
