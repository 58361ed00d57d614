package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledcor/ledcor/pkg/api/types"
	"github.com/ledcor/ledcor/pkg/controller"
)

// PacketsHandler injects raw protocol frames and serves the discovery
// packet. It exists for clients that already speak the wire format,
// such as apps that normally talk to the hardware over serial.
type PacketsHandler struct {
	controller *controller.Controller
}

// NewPacketsHandler creates a new packets handler
func NewPacketsHandler(ctrl *controller.Controller) *PacketsHandler {
	return &PacketsHandler{controller: ctrl}
}

// Process handles POST /packets
// @Summary      Process a raw protocol frame
// @Description  Parses and applies a raw ASCII frame exactly as if it arrived over serial. Invalid messages inside the frame are dropped silently; responses the hardware would emit are returned.
// @Tags         packets
// @Accept       json
// @Produce      json
// @Param        request  body      types.PacketRequest  true  "Raw frame"
// @Success      200      {object}  types.PacketResponse
// @Failure      400      {object}  types.ErrorResponse  "Invalid request"
// @Router       /packets [post]
func (h *PacketsHandler) Process(c *gin.Context) {
	var req types.PacketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "frame is required",
		})
		return
	}

	responses := h.controller.Process([]byte(req.Frame))
	if responses == nil {
		responses = []string{}
	}

	c.JSON(http.StatusOK, types.PacketResponse{
		Responses: responses,
	})
}

// Discovery handles GET /discovery
// @Summary      Get the discovery packet
// @Description  Returns the capability summary frame a discovery probe would receive
// @Tags         packets
// @Produce      json
// @Success      200  {object}  types.DiscoveryResponse
// @Router       /discovery [get]
func (h *PacketsHandler) Discovery(c *gin.Context) {
	c.JSON(http.StatusOK, types.DiscoveryResponse{
		Packet: h.controller.DiscoveryPacket(),
	})
}
