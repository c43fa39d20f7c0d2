package api

import (
	"net/http"

	"salon-storefront/internal/domain/service"
	reqdto "salon-storefront/internal/handler/dto/request"
	resdto "salon-storefront/internal/handler/dto/response"
	"salon-storefront/internal/usecase/commands"
	"salon-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgServiceNotFound = "Service not found"
	msgServiceDeleted  = "Service deleted successfully"
)

type ServiceHandler struct {
	cmds commands.ServiceCommands
	q    queries.ServiceQueries
}

func NewServiceHandler(cmds commands.ServiceCommands, q queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{cmds: cmds, q: q}
}

// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /api/services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	ss, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err, msgServiceNotFound)
		return
	}
	res, err := resdto.FromServices(ss)
	if err != nil {
		respondError(c, err, msgServiceNotFound)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	s, err := h.cmds.Create(c.Request.Context(), req.ToAttributes())
	if err != nil {
		respondError(c, err, msgServiceNotFound)
		return
	}
	h.writeService(c, s)
}

// @Summary Replace service
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	s, err := h.cmds.Replace(c.Request.Context(), id, req.ToAttributes())
	if err != nil {
		respondError(c, err, msgServiceNotFound)
		return
	}
	h.writeService(c, s)
}

// @Summary Delete service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, msgServiceNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msgServiceDeleted})
}

func (h *ServiceHandler) writeService(c *gin.Context, s *service.Service) {
	res, err := resdto.FromService(s)
	if err != nil {
		respondError(c, err, msgServiceNotFound)
		return
	}
	c.JSON(http.StatusOK, res)
}
