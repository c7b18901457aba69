package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bilemo/internal/server/http/dto"
)

// ProductHandler serves /api/product endpoints.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler creates ProductHandler instance.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/product.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductList(paginate(c, products)))
}

// Detail handles GET /api/product/:id.
func (h *ProductHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		writeError(c, http.StatusNotFound, productNotFound)
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductDetail(product))
}
