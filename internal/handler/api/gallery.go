package api

import (
	"net/http"

	reqdto "salon-storefront/internal/handler/dto/request"
	resdto "salon-storefront/internal/handler/dto/response"
	"salon-storefront/internal/usecase/commands"
	"salon-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgGalleryNotFound = "Gallery item not found"
	msgGalleryDeleted  = "Gallery item deleted successfully"
)

type GalleryHandler struct {
	cmds commands.GalleryCommands
	q    queries.GalleryQueries
}

func NewGalleryHandler(cmds commands.GalleryCommands, q queries.GalleryQueries) *GalleryHandler {
	return &GalleryHandler{cmds: cmds, q: q}
}

// @Summary List gallery
// @Description Newest first, at most 100
// @Tags gallery
// @Produce json
// @Success 200 {array} resdto.GalleryItemResponse
// @Router /api/gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err, msgGalleryNotFound)
		return
	}
	res, err := resdto.FromGalleryItems(items)
	if err != nil {
		respondError(c, err, msgGalleryNotFound)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body reqdto.GalleryItemRequest true "Gallery item"
// @Success 200 {object} resdto.GalleryItemResponse
// @Failure 400 {object} httperr.Response
// @Router /api/gallery [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var req reqdto.GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	item, err := h.cmds.Create(c.Request.Context(), req.ToAttributes())
	if err != nil {
		respondError(c, err, msgGalleryNotFound)
		return
	}
	res, err := resdto.FromGalleryItem(item)
	if err != nil {
		respondError(c, err, msgGalleryNotFound)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Delete gallery item
// @Tags gallery
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, msgGalleryNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msgGalleryDeleted})
}
