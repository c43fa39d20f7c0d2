package api

import (
	"net/http"

	resdto "salon-storefront/internal/handler/dto/response"
	"salon-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	cmds commands.SeedCommands
}

func NewSeedHandler(cmds commands.SeedCommands) *SeedHandler {
	return &SeedHandler{cmds: cmds}
}

// @Summary Seed demo data
// @Description Loads the demo catalogue unless any product already exists
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Failure 500 {object} httperr.Response
// @Router /api/seed-data [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	res, err := h.cmds.Seed(c.Request.Context())
	if err != nil {
		respondError(c, err, msgInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: res.Message})
}
