package converter

import (
	"casual-leasing/internal/domain/site"
	sqlc "casual-leasing/internal/infra/sqlc/generated"
	"casual-leasing/internal/pkg/pgconv"
)

func SiteFromRow(row sqlc.Sites) (*site.Site, error) {
	pricePerDay, err := pgconv.DecimalPtrFromNumeric(row.PricePerDay)
	if err != nil {
		return nil, err
	}
	pricePerWeek, err := pgconv.DecimalPtrFromNumeric(row.PricePerWeek)
	if err != nil {
		return nil, err
	}
	weekendPricePerDay, err := pgconv.DecimalPtrFromNumeric(row.WeekendPricePerDay)
	if err != nil {
		return nil, err
	}

	return site.NewSite(row.ID, row.Name, row.CentreName, pricePerDay, pricePerWeek, weekendPricePerDay, row.IsActive)
}
