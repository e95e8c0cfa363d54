package api

import (
	"net/http"

	reqdto "casual-leasing/internal/handler/dto/request"
	resdto "casual-leasing/internal/handler/dto/response"
	"casual-leasing/internal/handler/httperr"
	"casual-leasing/internal/pkg/config"
	"casual-leasing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingHandler struct {
	q   queries.PricingQueries
	cfg config.PricingConfig
}

func NewPricingHandler(q queries.PricingQueries, cfg config.Config) *PricingHandler {
	return &PricingHandler{q: q, cfg: cfg.Pricing}
}

// @Summary Quote site hire
// @Description Price an inclusive date range for a site, with the per-day breakdown and GST
// @Tags pricing
// @Produce json
// @Param id path string true "Site ID"
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sites/{id}/quote [get]
func (h *PricingHandler) Quote(c *gin.Context) {
	siteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, httperr.InvalidID)
		return
	}
	var query reqdto.DateRangeQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.Abort(c, bindErr, httperr.InvalidRequest)
		return
	}
	start, end, err := query.Parse(h.cfg.Location(), h.cfg.MaxBookingDays)
	if err != nil {
		abortWithDateError(c, err)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), siteID, start, end)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
