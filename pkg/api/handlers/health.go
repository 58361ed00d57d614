package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledcor/ledcor/pkg/api/types"
	"github.com/ledcor/ledcor/pkg/controller"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	controller *controller.Controller
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(ctrl *controller.Controller) *HealthHandler {
	return &HealthHandler{controller: ctrl}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the health status of the API and the device count
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Failure      503  {object}  types.HealthResponse  "No devices attached"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	count := h.controller.DeviceCount()

	status := "healthy"
	httpStatus := http.StatusOK

	if count == 0 {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:    status,
		Devices:   count,
		Timestamp: time.Now(),
	})
}
