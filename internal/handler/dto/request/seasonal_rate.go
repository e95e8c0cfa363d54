package request

import (
	"time"

	"casual-leasing/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateSeasonalRateRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	StartDate   string           `json:"startDate" binding:"required"`
	EndDate     string           `json:"endDate" binding:"required"`
	WeekdayRate *decimal.Decimal `json:"weekdayRate" swaggertype:"string"`
	WeekendRate *decimal.Decimal `json:"weekendRate" swaggertype:"string"`
	WeeklyRate  *decimal.Decimal `json:"weeklyRate" swaggertype:"string"`
}

func (r *CreateSeasonalRateRequest) ToCommand(siteID uuid.UUID, loc *time.Location) (commands.CreateSeasonalRateRequest, error) {
	start, end, err := parseDateRange(r.StartDate, r.EndDate, loc, 0)
	if err != nil {
		return commands.CreateSeasonalRateRequest{}, err
	}

	return commands.CreateSeasonalRateRequest{
		SiteID:      siteID,
		Name:        r.Name,
		StartDate:   start,
		EndDate:     end,
		WeekdayRate: r.WeekdayRate,
		WeekendRate: r.WeekendRate,
		WeeklyRate:  r.WeeklyRate,
	}, nil
}
