package types

import "time"

// --- Request DTOs ---

// PacketRequest is the request body for POST /packets. Frame is a raw
// protocol frame, e.g. "2,1,1;" or "DISCOVERY_PACKET;".
type PacketRequest struct {
	Frame string `json:"frame" binding:"required"`
}

// --- Response DTOs ---

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned from GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Devices   int       `json:"devices"`
	Timestamp time.Time `json:"timestamp"`
}

// RGB is a JSON color triple.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// DeviceState is the animation state of one device.
type DeviceState struct {
	IsOn                bool   `json:"is_on"`
	MainColor           RGB    `json:"main_color"`
	Routine             string `json:"routine"`
	Group               string `json:"group"`
	Brightness          int    `json:"brightness"`
	Speed               int    `json:"speed"`
	IdleTimeoutMinutes  int    `json:"idle_timeout_minutes"`
	MinutesUntilTimeout int    `json:"minutes_until_timeout"`
}

// DeviceWithState combines device info with current state
type DeviceWithState struct {
	Index       int         `json:"index"`
	Name        string      `json:"name"`
	LightType   int         `json:"light_type"`
	ProductType int         `json:"product_type"`
	LEDCount    int         `json:"led_count"`
	State       DeviceState `json:"state"`
}

// ListDevicesResponse is returned from GET /devices
type ListDevicesResponse struct {
	Devices []DeviceWithState `json:"devices"`
	Count   int               `json:"count"`
}

// DeviceResponse is returned from GET /devices/:id
type DeviceResponse struct {
	Device DeviceWithState `json:"device"`
}

// StateResponse is returned from GET/POST /devices/:id/state
type StateResponse struct {
	Device    int         `json:"device"`
	State     DeviceState `json:"state"`
	Timestamp time.Time   `json:"timestamp"`
}

// CustomColorsResponse is returned from GET /devices/:id/custom-colors
type CustomColorsResponse struct {
	Device int   `json:"device"`
	Count  int   `json:"count"`
	Colors []RGB `json:"colors"`
}

// FrameResponse is returned from GET /devices/:id/frame and pushed on
// the websocket stream.
type FrameResponse struct {
	Device int   `json:"device"`
	LEDs   []RGB `json:"leds"`
}

// PacketResponse is returned from POST /packets
type PacketResponse struct {
	Responses []string `json:"responses"`
}

// DiscoveryResponse is returned from GET /discovery
type DiscoveryResponse struct {
	Packet string `json:"packet"`
}
