package mcp

import (
	"github.com/ledcor/ledcor/pkg/controller"
	"github.com/ledcor/ledcor/pkg/protocol"
)

// --- Health Tool ---

// GetHealthOutput is the output for the get_health tool
type GetHealthOutput struct {
	Status    string `json:"status" jsonschema:"description=Overall health status (healthy or degraded)"`
	Devices   int    `json:"devices" jsonschema:"description=Number of attached LED devices"`
	Timestamp string `json:"timestamp" jsonschema:"description=ISO8601 timestamp"`
}

// --- List Devices Tool ---

// ListDevicesOutput is the output for the list_devices tool
type ListDevicesOutput struct {
	Devices []DeviceInfo `json:"devices" jsonschema:"description=List of attached devices"`
	Count   int          `json:"count" jsonschema:"description=Total number of devices"`
}

// DeviceInfo represents a device in tool outputs
type DeviceInfo struct {
	Index       int         `json:"index" jsonschema:"description=Hardware index (1-based)"`
	Name        string      `json:"name" jsonschema:"description=Device name"`
	LightType   int         `json:"light_type" jsonschema:"description=Light hardware type code"`
	ProductType int         `json:"product_type" jsonschema:"description=Product type code"`
	LEDCount    int         `json:"led_count" jsonschema:"description=Number of LEDs"`
	State       DeviceState `json:"state" jsonschema:"description=Current animation state"`
}

// DeviceState is the animation state in tool outputs
type DeviceState struct {
	IsOn                bool   `json:"is_on" jsonschema:"description=Whether the device is lit"`
	MainColor           RGB    `json:"main_color" jsonschema:"description=Color used by single color routines"`
	Routine             string `json:"routine" jsonschema:"description=Active animation routine"`
	Group               string `json:"group" jsonschema:"description=Active color group for multi color routines"`
	Brightness          int    `json:"brightness" jsonschema:"description=Output brightness 0-100"`
	Speed               int    `json:"speed" jsonschema:"description=Update speed 0-200"`
	IdleTimeoutMinutes  int    `json:"idle_timeout_minutes" jsonschema:"description=Auto-off window in minutes; 0 disables it"`
	MinutesUntilTimeout int    `json:"minutes_until_timeout" jsonschema:"description=Minutes left before auto-off"`
}

// RGB is a color triple in tool outputs
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// --- Get Device Tool ---

// GetDeviceOutput is the output for the get_device tool
type GetDeviceOutput struct {
	Device DeviceInfo `json:"device" jsonschema:"description=Device information"`
}

// --- Get Device State Tool ---

// GetDeviceStateOutput is the output for the get_device_state tool
type GetDeviceStateOutput struct {
	Index int         `json:"index" jsonschema:"description=Device hardware index"`
	State DeviceState `json:"state" jsonschema:"description=Current animation state"`
}

// --- Set Device State Tool ---

// SetDeviceStateOutput is the output for the set_device_state tool
type SetDeviceStateOutput struct {
	Index int         `json:"index" jsonschema:"description=Device hardware index"`
	State DeviceState `json:"state" jsonschema:"description=New animation state after the change"`
}

// --- Turn On / Turn Off Tools ---

// TurnOnOutput is the output for the turn_on tool
type TurnOnOutput struct {
	Index int         `json:"index" jsonschema:"description=Device hardware index"`
	State DeviceState `json:"state" jsonschema:"description=New animation state"`
}

// TurnOffOutput is the output for the turn_off tool
type TurnOffOutput struct {
	Index int         `json:"index" jsonschema:"description=Device hardware index"`
	State DeviceState `json:"state" jsonschema:"description=New animation state"`
}

// --- Send Packet Tool ---

// SendPacketOutput is the output for the send_packet tool
type SendPacketOutput struct {
	Responses []string `json:"responses" jsonschema:"description=Response packets the hardware would emit"`
}

// --- Helper conversions ---

// SummaryToInfo converts a controller.Summary to DeviceInfo
func SummaryToInfo(s controller.Summary) DeviceInfo {
	return DeviceInfo{
		Index:       s.Index,
		Name:        s.Name,
		LightType:   s.LightType,
		ProductType: s.ProductType,
		LEDCount:    s.LEDCount,
		State:       stateToOutput(s.State),
	}
}

func stateToOutput(s protocol.DeviceState) DeviceState {
	return DeviceState{
		IsOn:                s.IsOn,
		MainColor:           RGB{R: int(s.MainColor.R), G: int(s.MainColor.G), B: int(s.MainColor.B)},
		Routine:             s.Routine.String(),
		Group:               s.Group.String(),
		Brightness:          s.Brightness,
		Speed:               s.Speed,
		IdleTimeoutMinutes:  s.IdleTimeoutMinutes,
		MinutesUntilTimeout: s.MinutesUntilTimeout,
	}
}
