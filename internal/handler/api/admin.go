package api

import (
	"net/http"

	reqdto "salon-storefront/internal/handler/dto/request"
	resdto "salon-storefront/internal/handler/dto/response"
	"salon-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const msgLoginSuccessful = "Login successful"

type AdminHandler struct {
	cmds commands.AdminCommands
}

func NewAdminHandler(cmds commands.AdminCommands) *AdminHandler {
	return &AdminHandler{cmds: cmds}
}

// @Summary Admin login
// @Description Checks the built-in admin credentials. The returned token is a fixed label, not a credential.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	res, err := h.cmds.Login(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		respondError(c, err, msgInvalidCredentials)
		return
	}
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Success: true,
		Message: msgLoginSuccessful,
		Token:   res.Token,
	})
}
