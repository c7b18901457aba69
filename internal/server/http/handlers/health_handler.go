package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bilemo/internal/server/http/dto"
)

// HealthHandler reports readiness of the backing services.
type HealthHandler struct {
	checker HealthChecker
}

func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	checks, err := h.checker.Check(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Checks: checks})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Checks: checks})
}
