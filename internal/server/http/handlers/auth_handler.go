package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	"github.com/polkiloo/bilemo/internal/server/http/dto"
)

const invalidCredentialsMessage = "Invalid credentials."

// AuthHandler processes login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/login_check.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			writeError(c, http.StatusUnauthorized, invalidCredentialsMessage)
		default:
			_ = c.Error(err)
			writeError(c, http.StatusInternalServerError, internalErrorMessage)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
