package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ledcor/ledcor/pkg/api/types"
	"github.com/ledcor/ledcor/pkg/controller"
	"github.com/ledcor/ledcor/pkg/protocol"
)

// DevicesHandler handles device read endpoints
type DevicesHandler struct {
	controller *controller.Controller
}

// NewDevicesHandler creates a new devices handler
func NewDevicesHandler(ctrl *controller.Controller) *DevicesHandler {
	return &DevicesHandler{controller: ctrl}
}

// ListDevices handles GET /devices
// @Summary      List all devices
// @Description  Returns every attached LED device with its current state
// @Tags         devices
// @Produce      json
// @Success      200  {object}  types.ListDevicesResponse
// @Router       /devices [get]
func (h *DevicesHandler) ListDevices(c *gin.Context) {
	summaries := h.controller.Devices()

	result := make([]types.DeviceWithState, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, deviceWithState(s))
	}

	c.JSON(http.StatusOK, types.ListDevicesResponse{
		Devices: result,
		Count:   len(result),
	})
}

// GetDevice handles GET /devices/:id
// @Summary      Get device details
// @Description  Returns details for a specific device by hardware index
// @Tags         devices
// @Produce      json
// @Param        id   path      int  true  "Device hardware index (1-based)"
// @Success      200  {object}  types.DeviceResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id} [get]
func (h *DevicesHandler) GetDevice(c *gin.Context) {
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

	c.JSON(http.StatusOK, types.DeviceResponse{
		Device: deviceWithState(s),
	})
}

// GetFrame handles GET /devices/:id/frame
// @Summary      Get rendered frame
// @Description  Returns the device's current RGB buffer, one entry per LED
// @Tags         devices
// @Produce      json
// @Param        id   path      int  true  "Device hardware index (1-based)"
// @Success      200  {object}  types.FrameResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/frame [get]
func (h *DevicesHandler) GetFrame(c *gin.Context) {
	index, ok := deviceIndex(c)
	if !ok {
		return
	}

	frame, err := h.controller.Frame(index)
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

	leds := make([]types.RGB, len(frame))
	for i, px := range frame {
		leds[i] = types.RGB{R: int(px.R), G: int(px.G), B: int(px.B)}
	}

	c.JSON(http.StatusOK, types.FrameResponse{
		Device: index,
		LEDs:   leds,
	})
}

// GetCustomColors handles GET /devices/:id/custom-colors
// @Summary      Get custom color array
// @Description  Returns the active entries of the device's custom palette
// @Tags         devices
// @Produce      json
// @Param        id   path      int  true  "Device hardware index (1-based)"
// @Success      200  {object}  types.CustomColorsResponse
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/custom-colors [get]
func (h *DevicesHandler) GetCustomColors(c *gin.Context) {
	index, ok := deviceIndex(c)
	if !ok {
		return
	}

	arr, err := h.controller.CustomArray(index)
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

	colors := make([]types.RGB, len(arr.Colors))
	for i, px := range arr.Colors {
		colors[i] = types.RGB{R: int(px.R), G: int(px.G), B: int(px.B)}
	}

	c.JSON(http.StatusOK, types.CustomColorsResponse{
		Device: index,
		Count:  arr.Count,
		Colors: colors,
	})
}

// deviceIndex parses the :id path parameter. On failure it writes the
// error response and returns false.
func deviceIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("id"))
	if err != nil || index < 1 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_index",
			Message: "Device index must be a positive integer",
		})
		return 0, false
	}
	return index, true
}

func deviceWithState(s controller.Summary) types.DeviceWithState {
	return types.DeviceWithState{
		Index:       s.Index,
		Name:        s.Name,
		LightType:   s.LightType,
		ProductType: s.ProductType,
		LEDCount:    s.LEDCount,
		State:       deviceState(s.State),
	}
}

func deviceState(s protocol.DeviceState) types.DeviceState {
	return types.DeviceState{
		IsOn: s.IsOn,
		MainColor: types.RGB{
			R: int(s.MainColor.R),
			G: int(s.MainColor.G),
			B: int(s.MainColor.B),
		},
		Routine:             s.Routine.String(),
		Group:               s.Group.String(),
		Brightness:          s.Brightness,
		Speed:               s.Speed,
		IdleTimeoutMinutes:  s.IdleTimeoutMinutes,
		MinutesUntilTimeout: s.MinutesUntilTimeout,
	}
}
