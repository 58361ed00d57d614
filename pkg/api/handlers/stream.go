package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/ledcor/ledcor/pkg/api/types"
	"github.com/ledcor/ledcor/pkg/controller"
)

const (
	defaultStreamInterval = 100 * time.Millisecond
	streamWriteWait       = 10 * time.Second
)

// StreamHandler pushes rendered frames over a websocket so UIs can
// mirror the strip without polling.
type StreamHandler struct {
	controller *controller.Controller
	upgrader   websocket.Upgrader
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(ctrl *controller.Controller) *StreamHandler {
	return &StreamHandler{
		controller: ctrl,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Stream handles GET /devices/:id/stream
// @Summary      Stream rendered frames
// @Description  Upgrades to a websocket and pushes the device's RGB buffer at a fixed interval. The poll query parameter overrides the interval.
// @Tags         devices
// @Param        id    path   int     true   "Device hardware index (1-based)"
// @Param        poll  query  string  false  "Push interval, e.g. 250ms"
// @Success      101  "Switching protocols"
// @Failure      404  {object}  types.ErrorResponse  "Device not found"
// @Router       /devices/{id}/stream [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	index, ok := deviceIndex(c)
	if !ok {
		return
	}

	if _, err := h.controller.Device(index); err != nil {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: "Device not found",
		})
		return
	}

	interval := defaultStreamInterval
	if v := c.Query("poll"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			interval = d
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	log.Debug().
		Int("device", index).
		Str("remote", conn.RemoteAddr().String()).
		Dur("interval", interval).
		Msg("frame stream subscribed")

	go h.push(conn, index, interval)
}

// push writes frames until the connection drops.
func (h *StreamHandler) push(conn *websocket.Conn, index int, interval time.Duration) {
	defer func() { _ = conn.Close() }()

	// The client sends nothing we use, but reading surfaces close
	// frames and errors. Closing the connection here unsticks a writer
	// blocked on a half-dead peer.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				_ = conn.Close()
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		frame, err := h.controller.Frame(index)
		if err != nil {
			return
		}

		leds := make([]types.RGB, len(frame))
		for i, px := range frame {
			leds[i] = types.RGB{R: int(px.R), G: int(px.G), B: int(px.B)}
		}

		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteJSON(types.FrameResponse{Device: index, LEDs: leds}); err != nil {
			log.Debug().
				Int("device", index).
				Str("remote", conn.RemoteAddr().String()).
				Msg("frame stream closed")
			return
		}

		<-ticker.C
	}
}
