package handlers

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ledcor/ledcor/pkg/api/types"
	"github.com/ledcor/ledcor/pkg/controller"
	"github.com/ledcor/ledcor/pkg/protocol"
)

func newStreamServer(t *testing.T) (*httptest.Server, *controller.Controller) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl, err := controller.New(
		[]controller.DeviceConfig{{Name: "strip", LEDCount: 4, Speed: 200}},
		controller.NewNullDriver(), protocol.Codec{}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("controller: %v", err)
	}

	r := gin.New()
	r.GET("/devices/:id/stream", NewStreamHandler(ctrl).Stream)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, ctrl
}

func TestStream_PushesFrames(t *testing.T) {
	srv, ctrl := newStreamServer(t)
	ctrl.Tick()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/devices/1/stream?poll=10ms"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var frame types.FrameResponse
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if frame.Device != 1 || len(frame.LEDs) != 4 {
		t.Errorf("frame = %+v, want device 1 with 4 LEDs", frame)
	}

	// pushes keep coming on the poll interval
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read second frame: %v", err)
	}
}

func TestStream_UnknownDeviceRejectsHandshake(t *testing.T) {
	srv, _ := newStreamServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/devices/9/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		_ = conn.Close()
		t.Fatal("handshake for unknown device succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("handshake response = %+v, want 404", resp)
	}
	_ = resp.Body.Close()
}
