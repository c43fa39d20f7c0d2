package api

import (
	"net/http"

	"salon-storefront/internal/domain/booking"
	reqdto "salon-storefront/internal/handler/dto/request"
	resdto "salon-storefront/internal/handler/dto/response"
	"salon-storefront/internal/handler/httperr"
	"salon-storefront/internal/usecase/commands"
	"salon-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgBookingNotFound = "Booking not found"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Description Newest first, at most 100
// @Tags bookings
// @Produce json
// @Param status query string false "pending | confirmed | completed | cancelled"
// @Success 200 {array} resdto.BookingResponse
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidQuery, err.Error())
		return
	}
	bs, err := h.q.List(c.Request.Context(), queries.BookingFilter{Status: query.StatusFilter()})
	if err != nil {
		respondError(c, err, msgBookingNotFound)
		return
	}
	res, err := resdto.FromBookings(bs)
	if err != nil {
		respondError(c, err, msgBookingNotFound)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	b, err := h.cmds.Create(c.Request.Context(), req.ToAttributes())
	if err != nil {
		respondError(c, err, msgBookingNotFound)
		return
	}
	h.writeBooking(c, b)
}

// @Summary Update booking status
// @Description Changes only the status; other fields are kept
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.BookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	b, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, msgBookingNotFound)
		return
	}
	h.writeBooking(c, b)
}

func (h *BookingHandler) writeBooking(c *gin.Context, b *booking.Booking) {
	res, err := resdto.FromBooking(b)
	if err != nil {
		respondError(c, err, msgBookingNotFound)
		return
	}
	c.JSON(http.StatusOK, res)
}
