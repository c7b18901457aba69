package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bilemo/internal/authz"
	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	pkgAuth "github.com/polkiloo/bilemo/internal/pkg/auth"
	"github.com/polkiloo/bilemo/internal/server/http/dto"
)

const (
	// CustomerIDContextKey is a gin context key for the authenticated customer identifier.
	CustomerIDContextKey = "customerID"

	invalidTokenMessage  = "Invalid JWT Token"
	missingTokenMessage  = "JWT Token not found"
	accessDeniedMessage  = "Access denied."
	internalErrorMessage = "Internal server error"
)

// TokenParser resolves a bearer token into a customer identifier.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// Authenticate resolves an optional bearer token. Requests without one stay
// anonymous; a present but invalid token is rejected.
func Authenticate(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		customerID, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(http.StatusUnauthorized, invalidTokenMessage))
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewError(http.StatusInternalServerError, internalErrorMessage))
			return
		}

		c.Set(CustomerIDContextKey, customerID)
		c.Next()
	}
}

// Authorize checks the caller's capability for action on object.
func Authorize(authorizer authz.Authorizer, object, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := authorizer.Authorize(c.Request.Context(), CurrentCustomerID(c), object, action)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, domainErrors.ErrUnauthenticated):
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(http.StatusUnauthorized, missingTokenMessage))
		case errors.Is(err, domainErrors.ErrForbidden):
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewError(http.StatusForbidden, accessDeniedMessage))
		default:
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewError(http.StatusInternalServerError, internalErrorMessage))
		}
	}
}

// CurrentCustomerID extracts the authenticated customer identifier, zero when anonymous.
func CurrentCustomerID(c *gin.Context) int64 {
	val, ok := c.Get(CustomerIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
