package api

import (
	"net/http"

	reqdto "casual-leasing/internal/handler/dto/request"
	resdto "casual-leasing/internal/handler/dto/response"
	"casual-leasing/internal/handler/httperr"
	"casual-leasing/internal/pkg/config"
	"casual-leasing/internal/usecase/commands"
	"casual-leasing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SeasonalRateHandler struct {
	cmds commands.SeasonalRateCommands
	q    queries.SeasonalRateQueries
	cfg  config.PricingConfig
}

func NewSeasonalRateHandler(cmds commands.SeasonalRateCommands, q queries.SeasonalRateQueries, cfg config.Config) *SeasonalRateHandler {
	return &SeasonalRateHandler{cmds: cmds, q: q, cfg: cfg.Pricing}
}

// @Summary Create seasonal rate
// @Description Add a seasonal rate override to a site
// @Tags seasonal-rates
// @Accept json
// @Produce json
// @Param id path string true "Site ID"
// @Param request body reqdto.CreateSeasonalRateRequest true "Create seasonal rate request"
// @Success 201 {object} resdto.SeasonalRateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sites/{id}/seasonal-rates [post]
func (h *SeasonalRateHandler) Create(c *gin.Context) {
	siteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, httperr.InvalidID)
		return
	}
	var req reqdto.CreateSeasonalRateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, bindErr, httperr.InvalidRequest)
		return
	}
	cmd, err := req.ToCommand(siteID, h.cfg.Location())
	if err != nil {
		abortWithDateError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSeasonalRate(&result.SeasonalRate))
}

// @Summary List seasonal rates
// @Description List a site's seasonal rates intersecting a date range, in the order pricing applies them
// @Tags seasonal-rates
// @Produce json
// @Param id path string true "Site ID"
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Last day (YYYY-MM-DD)"
// @Success 200 {array} resdto.SeasonalRateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sites/{id}/seasonal-rates [get]
func (h *SeasonalRateHandler) List(c *gin.Context) {
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
	start, end, err := query.Parse(h.cfg.Location(), 0)
	if err != nil {
		abortWithDateError(c, err)
		return
	}

	rates, err := h.q.ListForRange(c.Request.Context(), siteID, start, end)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeasonalRates(rates))
}
