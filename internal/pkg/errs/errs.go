// Package errs wraps cockroachdb/errors and holds the sentinels that cross
// layer boundaries. Handlers map the sentinels to HTTP statuses, so lower
// layers attach them with Mark rather than returning them bare.
package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

var (
	ErrSiteNotFound     = errors.New("site not found")
	ErrSiteUnavailable  = errors.New("site not available for booking")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDomainValidation = errors.New("domain validation error")
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err with sentinel while keeping err's message and chain.
// A nil err yields the sentinel itself.
func Mark(err, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

// Is also matches marks attached with Mark, which the standard library does not see.
func Is(err, target error) bool {
	return cr.Is(err, target)
}
