package booking

import (
	"time"

	"casual-leasing/internal/domain/pricing"

	"github.com/google/uuid"
)

type Booking struct {
	id           uuid.UUID
	siteID       uuid.UUID
	tenant       Tenant
	period       Period
	status       Status
	amounts      Amounts
	weekdayCount int
	weekendCount int
	days         []pricing.DayPrice
	note         Note
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(
	siteID uuid.UUID,
	tenant Tenant,
	period Period,
	quote pricing.Result,
	amounts Amounts,
	note Note,
	now time.Time,
) *Booking {
	return &Booking{
		id:           uuid.New(),
		siteID:       siteID,
		tenant:       tenant,
		period:       period,
		status:       StatusConfirmed,
		amounts:      amounts,
		weekdayCount: quote.WeekdayCount,
		weekendCount: quote.WeekendCount,
		days:         quote.DayBreakdown,
		note:         note,
		createdAt:    now,
		updatedAt:    now,
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) SiteID() uuid.UUID        { return b.siteID }
func (b *Booking) Tenant() Tenant           { return b.tenant }
func (b *Booking) Period() Period           { return b.period }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Amounts() Amounts         { return b.amounts }
func (b *Booking) WeekdayCount() int        { return b.weekdayCount }
func (b *Booking) WeekendCount() int        { return b.weekendCount }
func (b *Booking) Days() []pricing.DayPrice { return b.days }
func (b *Booking) Note() Note               { return b.note }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
