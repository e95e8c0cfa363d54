package queries

import (
	"context"

	"casual-leasing/internal/domain/site"
	"casual-leasing/internal/infra"
	"casual-leasing/internal/pkg/errs"
	"casual-leasing/internal/usecase/shared"

	"github.com/google/uuid"
)

func findSite(ctx context.Context, sites shared.SiteReadStore, id uuid.UUID) (*site.Site, error) {
	s, err := sites.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSiteNotFound)
		}
		return nil, err
	}
	return s, nil
}

func findBookableSite(ctx context.Context, sites shared.SiteReadStore, id uuid.UUID) (*site.Site, error) {
	s, err := findSite(ctx, sites, id)
	if err != nil {
		return nil, err
	}
	if err := s.EnsureBookable(); err != nil {
		return nil, errs.Mark(err, errs.ErrSiteUnavailable)
	}
	return s, nil
}
