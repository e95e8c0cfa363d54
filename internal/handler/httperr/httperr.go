package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Code is the stable, machine-readable half of an error body.
type Code string

const (
	CodeInvalidID        Code = "INVALID_ID"
	CodeInvalidRequest   Code = "INVALID_REQUEST"
	CodeInvalidDate      Code = "INVALID_DATE"
	CodeInvalidDateRange Code = "INVALID_DATE_RANGE"
	CodeSiteNotFound     Code = "SITE_NOT_FOUND"
	CodeSiteUnavailable  Code = "SITE_UNAVAILABLE"
	CodeBookingNotFound  Code = "BOOKING_NOT_FOUND"
	CodeInternal         Code = "INTERNAL"
)

type Body struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

var (
	InvalidID        = newResponse(http.StatusBadRequest, CodeInvalidID, "Invalid id")
	InvalidRequest   = newResponse(http.StatusBadRequest, CodeInvalidRequest, "Invalid request")
	InvalidDate      = newResponse(http.StatusBadRequest, CodeInvalidDate, "Invalid date")
	InvalidDateRange = newResponse(http.StatusBadRequest, CodeInvalidDateRange, "Invalid date range")
	SiteNotFound     = newResponse(http.StatusNotFound, CodeSiteNotFound, "Site not found")
	SiteUnavailable  = newResponse(http.StatusNotFound, CodeSiteUnavailable, "Site is not available for booking")
	BookingNotFound  = newResponse(http.StatusNotFound, CodeBookingNotFound, "Booking not found")
	Internal         = newResponse(http.StatusInternalServerError, CodeInternal, "Internal error")
)

func newResponse(status int, code Code, msg string) Response {
	return Response{Status: status, Error: Body{Code: code, Message: msg}}
}

func (r Response) WithDetail(detail any) Response {
	r.Detail = detail
	return r
}

// Abort writes resp and keeps err on the context so the access log can report it.
func Abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
