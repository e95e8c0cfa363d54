package readstore

import (
	"context"

	"casual-leasing/internal/domain/site"
	"casual-leasing/internal/infra"
	"casual-leasing/internal/infra/converter"
	sqlc "casual-leasing/internal/infra/sqlc/generated"
	"casual-leasing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SiteReadQueries interface {
	GetSiteByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Sites, error)
}

type SiteReadStore struct {
	queries SiteReadQueries
	db      sqlc.DBTX
}

func NewSiteReadStore(queries SiteReadQueries, db sqlc.DBTX) *SiteReadStore {
	return &SiteReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SiteReadStore) FindByID(ctx context.Context, id uuid.UUID) (*site.Site, error) {
	row, err := r.queries.GetSiteByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("site not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get site by id", err)
	}

	s, err := converter.SiteFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert site row", err, infra.KindDBFailure)
	}
	return s, nil
}
