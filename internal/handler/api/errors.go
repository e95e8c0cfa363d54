package api

import (
	"errors"

	reqdto "casual-leasing/internal/handler/dto/request"
	"casual-leasing/internal/handler/httperr"
	"casual-leasing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase sentinels to HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrSiteNotFound):
		httperr.Abort(c, err, httperr.SiteNotFound)
	case errs.Is(err, errs.ErrSiteUnavailable):
		httperr.Abort(c, err, httperr.SiteUnavailable)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.Abort(c, err, httperr.BookingNotFound)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.Abort(c, err, httperr.InvalidRequest.WithDetail(err.Error()))
	default:
		httperr.Abort(c, err, httperr.Internal)
	}
}

func abortWithDateError(c *gin.Context, err error) {
	resp := httperr.InvalidDateRange
	if errors.Is(err, reqdto.ErrInvalidDateFmt) {
		resp = httperr.InvalidDate
	}
	httperr.Abort(c, err, resp.WithDetail(err.Error()))
}
