package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bilemo/internal/server/http/dto"
)

// UserHandler serves /api/user endpoints. Every route requires a principal.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Detail handles GET /api/user/:id.
func (h *UserHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		writeError(c, http.StatusNotFound, userNotFound)
		return
	}

	user, err := h.facade.User(c.Request.Context(), CurrentCustomerID(c), id)
	if err != nil {
		respondError(c, err, userNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserInfo(user))
}

// Delete handles DELETE /api/user/delete/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		writeError(c, http.StatusNotFound, userNotFound)
		return
	}

	if err := h.facade.DeleteUser(c.Request.Context(), CurrentCustomerID(c), id); err != nil {
		respondError(c, err, userNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// Add handles POST /api/user/add. The owner is the authenticated customer.
func (h *UserHandler) Add(c *gin.Context) {
	var req dto.UserCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.facade.AddUser(c.Request.Context(), CurrentCustomerID(c), req.Model())
	if err != nil {
		respondError(c, err, userNotFound)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserCreated(user))
}
