package api

import (
	"net/http"

	"salon-storefront/internal/domain/review"
	reqdto "salon-storefront/internal/handler/dto/request"
	resdto "salon-storefront/internal/handler/dto/response"
	"salon-storefront/internal/handler/httperr"
	"salon-storefront/internal/usecase/commands"
	"salon-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgReviewNotFound = "Review not found"

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary List reviews
// @Description Newest first, at most 100
// @Tags reviews
// @Produce json
// @Param approved query bool false "Approval flag"
// @Success 200 {array} resdto.ReviewResponse
// @Router /api/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	var query reqdto.ReviewListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidQuery, err.Error())
		return
	}
	rs, err := h.q.List(c.Request.Context(), queries.ReviewFilter{Approved: query.Approved})
	if err != nil {
		respondError(c, err, msgReviewNotFound)
		return
	}
	res, err := resdto.FromReviews(rs)
	if err != nil {
		respondError(c, err, msgReviewNotFound)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Submit review
// @Description New reviews are unapproved unless the body says otherwise
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body reqdto.ReviewRequest true "Review"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	r, err := h.cmds.Create(c.Request.Context(), req.ToAttributes())
	if err != nil {
		respondError(c, err, msgReviewNotFound)
		return
	}
	h.writeReview(c, r)
}

// @Summary Approve or hide review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body reqdto.ReviewApprovalRequest true "Approval"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reviews/{id} [put]
func (h *ReviewHandler) UpdateApproval(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.ReviewApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	r, err := h.cmds.SetApproval(c.Request.Context(), id, *req.Approved)
	if err != nil {
		respondError(c, err, msgReviewNotFound)
		return
	}
	h.writeReview(c, r)
}

func (h *ReviewHandler) writeReview(c *gin.Context, r *review.Review) {
	res, err := resdto.FromReview(r)
	if err != nil {
		respondError(c, err, msgReviewNotFound)
		return
	}
	c.JSON(http.StatusOK, res)
}
