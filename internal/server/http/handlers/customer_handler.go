package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bilemo/internal/server/http/dto"
)

// CustomerHandler serves /api/customer endpoints.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler creates CustomerHandler instance.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// List handles GET /api/customer. The list is not paginated.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err, customerNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerList(customers))
}

// Detail handles GET /api/customer/:id.
func (h *CustomerHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		writeError(c, http.StatusNotFound, customerNotFound)
		return
	}

	customer, err := h.facade.Customer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, customerNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewCustomerDetail(customer))
}

// Users handles GET /api/customer/:id/list. Unknown customers yield an empty page.
func (h *CustomerHandler) Users(c *gin.Context) {
	id, _ := parseID(c)

	users, err := h.facade.CustomerUsers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, customerNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(paginate(c, users)))
}

// Add handles POST /api/customer/add.
func (h *CustomerHandler) Add(c *gin.Context) {
	var req dto.CustomerCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.facade.RegisterCustomer(c.Request.Context(), req.Model())
	if err != nil {
		respondError(c, err, customerNotFound)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCustomerDetail(customer))
}
