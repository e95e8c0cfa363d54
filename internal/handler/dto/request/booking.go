package request

import (
	"time"

	"casual-leasing/internal/domain/pricing"
	"casual-leasing/internal/pkg/ptr"
	"casual-leasing/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SiteID      uuid.UUID `json:"siteId" binding:"required"`
	StartDate   string    `json:"startDate" binding:"required"`
	EndDate     string    `json:"endDate" binding:"required"`
	TenantName  string    `json:"tenantName" binding:"required,max=200"`
	TenantEmail string    `json:"tenantEmail" binding:"required,email,max=254"`
	Note        *string   `json:"note" binding:"omitempty,max=1000"`
}

func (r *CreateBookingRequest) ToCommand(loc *time.Location) (commands.CreateBookingRequest, error) {
	start, err := pricing.ParseDate(r.StartDate, loc)
	if err != nil {
		return commands.CreateBookingRequest{}, ErrInvalidDateFmt
	}
	end, err := pricing.ParseDate(r.EndDate, loc)
	if err != nil {
		return commands.CreateBookingRequest{}, ErrInvalidDateFmt
	}

	return commands.CreateBookingRequest{
		SiteID:      r.SiteID,
		StartDate:   start,
		EndDate:     end,
		TenantName:  r.TenantName,
		TenantEmail: r.TenantEmail,
		Note:        ptr.Deref(r.Note, ""),
	}, nil
}
