package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
	"github.com/polkiloo/bilemo/internal/pagination"
	"github.com/polkiloo/bilemo/internal/server/http/dto"
	"github.com/polkiloo/bilemo/internal/server/http/middleware"
)

const (
	customerNotFound     = "Customer not found"
	productNotFound      = "Product not found"
	userNotFound         = "User not found"
	internalErrorMessage = "Internal server error"
	emptyBodyMessage     = "Syntax error"
)

// CurrentCustomerID extracts authenticated customer identifier from context.
func CurrentCustomerID(c *gin.Context) int64 {
	return middleware.CurrentCustomerID(c)
}

// parseID reads the :id path parameter; anything but a positive integer is reported as false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewError(status, message))
}

// bindJSON decodes the body into dst or answers 400 with the parse error.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		message := err.Error()
		if errors.Is(err, io.EOF) {
			message = emptyBodyMessage
		}
		writeError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// respondError maps domain errors onto HTTP responses. notFound is the
// message used for ErrNotFound.
func respondError(c *gin.Context, err error, notFound string) {
	var verr *domainErrors.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.NewValidationResponse(http.StatusBadRequest, verr))
	case errors.Is(err, domainErrors.ErrNotFound):
		writeError(c, http.StatusNotFound, notFound)
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, internalErrorMessage)
	}
}

// paginate slices items per the page and limit query parameters and sets
// the page headers.
func paginate[T any](c *gin.Context, items []T) []T {
	page := pagination.Paginate(items, pagination.ParsePage(c.Query("page")), pagination.ParseLimit(c.Query("limit")))
	c.Header("X-Total-Count", strconv.Itoa(page.Total))
	c.Header("X-Page", strconv.Itoa(page.Page))
	c.Header("X-Page-Size", strconv.Itoa(page.Limit))
	c.Header("X-Page-Count", strconv.Itoa(page.Pages))
	return page.Items
}
