package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/swarmwrapped/wrapped-backend-go/internal/middleware"
	"github.com/swarmwrapped/wrapped-backend-go/internal/service"
	"github.com/swarmwrapped/wrapped-backend-go/pkg/response"
)

// WrappedHandler handles HTTP requests for the wrapped report
type WrappedHandler struct {
	wrappedService *service.WrappedService
}

// NewWrappedHandler creates a new wrapped handler
func NewWrappedHandler(wrappedService *service.WrappedService) *WrappedHandler {
	return &WrappedHandler{wrappedService: wrappedService}
}

// GetWrapped handles GET /api/v1/wrapped?exclude_sensitive=
func (h *WrappedHandler) GetWrapped(c *gin.Context) {
	token := c.GetString(middleware.TokenContextKey)
	excludeSensitive := c.Query("exclude_sensitive") == "true"

	stats, err := h.wrappedService.GenerateReport(c.Request.Context(), token, excludeSensitive)
	if errors.Is(err, service.ErrNoCheckins) {
		response.NotFound(c, "No check-ins found for "+strconv.Itoa(h.wrappedService.Year()))
		return
	}
	if err != nil {
		logrus.Errorf("[WrappedHandler] Report generation failed: %v", err)
		response.InternalError(c, "Failed to generate report")
		return
	}

	response.Success(c, stats)
}

// GetProfile handles GET /api/v1/profile
func (h *WrappedHandler) GetProfile(c *gin.Context) {
	token := c.GetString(middleware.TokenContextKey)

	profile, err := h.wrappedService.GetProfile(c.Request.Context(), token)
	if err != nil {
		logrus.Errorf("[WrappedHandler] Profile fetch failed: %v", err)
		response.InternalError(c, "Failed to fetch profile")
		return
	}

	response.Success(c, profile)
}
