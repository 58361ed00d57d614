package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledcor/ledcor/pkg/api/types"
	"github.com/ledcor/ledcor/pkg/controller"
	"github.com/ledcor/ledcor/pkg/schema"
)

// ControlHandler handles device state control endpoints
type ControlHandler struct {
	controller *controller.Controller
	validator  *schema.Validator
}

// NewControlHandler creates a new control handler
func NewControlHandler(ctrl *controller.Controller, validator *schema.Validator) *ControlHandler {
	return &ControlHandler{controller: ctrl, validator: validator}
}

// GetState handles GET /devices/:id/state
// @Summary      Get device state
// @Description  Returns the current animation state of a device
// @Tags         devices
// @Produce      json
// @Param        id   path      int  true  "Device hardware index (1-based)"
// @Success      200  {object}  types.StateResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/state [get]
func (h *ControlHandler) GetState(c *gin.Context) {
	index, ok := deviceIndex(c)
	if !ok {
		return
	}

	s, err := h.controller.Device(index)
	if err != nil {
		if errors.Is(err, controller.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Device not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "controller_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.StateResponse{
		Device:    index,
		State:     deviceState(s.State),
		Timestamp: time.Now(),
	})
}

// SetState handles POST /devices/:id/state
// @Summary      Set device state
// @Description  Applies a free-form JSON state object, validated against the control schema, to one device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id       path      int     true  "Device hardware index (1-based)"
// @Param        request  body      object  true  "State to set"
// @Success      200      {object}  types.StateResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Failure      404      {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/state [post]
func (h *ControlHandler) SetState(c *gin.Context) {
	index, ok := deviceIndex(c)
	if !ok {
		return
	}

	var req map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
		return
	}

	// Verify device exists and get its current state: a routine change
	// without an explicit group keeps the one already selected.
	current, err := h.controller.Device(index)
	if err != nil {
		if errors.Is(err, controller.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Error:   "not_found",
				Message: "Device not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "controller_error",
			Message: err.Error(),
		})
		return
	}

	// Validate against control schema
	if err := h.validator.ValidateControl(req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	for _, cmd := range schema.Commands(index, req, current.State.Group) {
		h.controller.Dispatch(cmd)
	}

	s, err := h.controller.Device(index)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:   "controller_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.StateResponse{
		Device:    index,
		State:     deviceState(s.State),
		Timestamp: time.Now(),
	})
}

