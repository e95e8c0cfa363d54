package commands

import (
	"context"

	"casual-leasing/internal/domain/site"
	"casual-leasing/internal/infra"
	"casual-leasing/internal/pkg/errs"
	"casual-leasing/internal/usecase/shared"

	"github.com/google/uuid"
)

func markValidation(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}

// Write-side lookup kept apart from the query side (CQRS separation)
func loadSite(ctx context.Context, sites shared.SiteReadStore, id uuid.UUID) (*site.Site, error) {
	s, err := sites.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSiteNotFound)
		}
		return nil, err
	}
	return s, nil
}
