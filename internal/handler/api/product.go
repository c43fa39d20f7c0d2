package api

import (
	"net/http"

	"salon-storefront/internal/domain/product"
	reqdto "salon-storefront/internal/handler/dto/request"
	resdto "salon-storefront/internal/handler/dto/response"
	"salon-storefront/internal/handler/httperr"
	"salon-storefront/internal/usecase/commands"
	"salon-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgProductNotFound = "Product not found"
	msgProductDeleted  = "Product deleted successfully"
)

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary List products
// @Description List up to 100 products, optionally filtered
// @Tags products
// @Produce json
// @Param category query string false "Exact category"
// @Param featured query bool false "Featured flag"
// @Success 200 {array} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var query reqdto.ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidQuery, err.Error())
		return
	}
	ps, err := h.q.List(c.Request.Context(), queries.ProductFilter{Category: query.CategoryFilter(), Featured: query.Featured})
	if err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	res, err := resdto.FromProducts(ps)
	if err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	h.writeProduct(c, p)
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.ProductRequest true "Product"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.cmds.Create(c.Request.Context(), req.ToAttributes())
	if err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	h.writeProduct(c, p)
}

// @Summary Replace product
// @Description Overwrites every field; omitted optional fields take their defaults
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.ProductRequest true "Product"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.cmds.Replace(c.Request.Context(), id, req.ToAttributes())
	if err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	h.writeProduct(c, p)
}

// @Summary Delete product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msgProductDeleted})
}

func (h *ProductHandler) writeProduct(c *gin.Context, p *product.Product) {
	res, err := resdto.FromProduct(p)
	if err != nil {
		respondError(c, err, msgProductNotFound)
		return
	}
	c.JSON(http.StatusOK, res)
}
