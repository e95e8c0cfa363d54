package api

import (
	"net/http"
	"time"

	reqdto "casual-leasing/internal/handler/dto/request"
	resdto "casual-leasing/internal/handler/dto/response"
	"casual-leasing/internal/handler/httperr"
	"casual-leasing/internal/pkg/config"
	"casual-leasing/internal/usecase/commands"
	"casual-leasing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
	loc  *time.Location
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, cfg config.Config) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, loc: cfg.Pricing.Location()}
}

// @Summary Create booking
// @Description Book a site for an inclusive date range. The price is fixed at booking time.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, err, httperr.InvalidRequest)
		return
	}
	cmd, err := req.ToCommand(h.loc)
	if err != nil {
		abortWithDateError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), cmd)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.Header("Location", "/api/bookings/"+result.BookingID.String())
	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{ID: result.BookingID.String()})
}

// @Summary Get booking
// @Description Get a booking with its stored per-day price breakdown
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, httperr.InvalidID)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
