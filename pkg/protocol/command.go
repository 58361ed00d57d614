package protocol

import (
	"github.com/ledcor/ledcor/pkg/color"
	"github.com/ledcor/ledcor/pkg/routine"
)

// Header identifies what a message asks the controller to do. The
// header is always the first integer of a message; the hardware index
// follows it.
type Header int

const (
	HeaderOnOff Header = iota
	HeaderModeChange
	HeaderMainColorChange
	HeaderCustomColorChange
	HeaderBrightnessChange
	HeaderSpeedChange
	HeaderIdleTimeoutChange
	HeaderCustomColorCountChange
	HeaderStateUpdateRequest
	HeaderCustomArrayUpdateRequest
	HeaderReset

	headerMax
)

// BroadcastIndex addresses every device on the controller.
const BroadcastIndex = 0

// The reset command requires this exact signature after the hardware
// index, so a corrupted message can never trigger a factory reset.
const (
	ResetKey1 = 42
	ResetKey2 = 71
)

// MaxFrameSize is the largest inbound frame, in bytes, that the codec
// and the transports will accept.
const MaxFrameSize = 512

// DiscoveryToken is sent as plain text by a controller looking for
// devices, ahead of any integer-framed traffic.
const DiscoveryToken = "DISCOVERY_PACKET"

// Command is one decoded, validated message. Each header has its own
// type carrying only the fields that header needs, so an illegal
// combination cannot be represented. Commands are ephemeral: produced
// per received frame, applied, and dropped.
type Command interface {
	Header() Header
	// Device returns the addressed hardware index; BroadcastIndex
	// addresses all devices.
	Device() int
}

// OnOff turns the addressed devices on or off.
type OnOff struct {
	Hardware int
	On       bool
}

// ModeChange selects a routine, and for multi color routines a color
// group. Param carries the routine-specific tunable (glimmer percent,
// bar size, fade or blink speed) when the sender included one.
type ModeChange struct {
	Hardware int
	Routine  routine.Routine
	Group    color.Group
	Param    int
	HasParam bool
}

// MainColorChange sets the color used by single color routines.
type MainColorChange struct {
	Hardware int
	Color    color.RGB
}

// CustomColorChange sets one slot of the custom color array.
type CustomColorChange struct {
	Hardware int
	Index    int
	Color    color.RGB
}

// BrightnessChange sets the output scale, 0 to 100.
type BrightnessChange struct {
	Hardware   int
	Brightness int
}

// SpeedChange sets the update speed, 0 to 200. Higher is faster; zero
// means the device only recomputes when a command forces it.
type SpeedChange struct {
	Hardware int
	Speed    int
}

// IdleTimeoutChange sets the idle timeout in minutes; zero disables it.
type IdleTimeoutChange struct {
	Hardware int
	Minutes  int
}

// CustomColorCountChange sets how many custom slots are active.
type CustomColorCountChange struct {
	Hardware int
	Count    int
}

// StateUpdateRequest asks for a state packet. It is a keep-alive: it
// refreshes the idle clock without changing any animation state.
type StateUpdateRequest struct {
	Hardware int
}

// CustomArrayUpdateRequest asks for a custom-array packet.
type CustomArrayUpdateRequest struct {
	Hardware int
}

// Reset restores the addressed devices to factory defaults.
type Reset struct {
	Hardware int
}

// Discovery is produced when a frame starts with DiscoveryToken.
type Discovery struct{}

func (c OnOff) Header() Header                    { return HeaderOnOff }
func (c ModeChange) Header() Header               { return HeaderModeChange }
func (c MainColorChange) Header() Header          { return HeaderMainColorChange }
func (c CustomColorChange) Header() Header        { return HeaderCustomColorChange }
func (c BrightnessChange) Header() Header         { return HeaderBrightnessChange }
func (c SpeedChange) Header() Header              { return HeaderSpeedChange }
func (c IdleTimeoutChange) Header() Header        { return HeaderIdleTimeoutChange }
func (c CustomColorCountChange) Header() Header   { return HeaderCustomColorCountChange }
func (c StateUpdateRequest) Header() Header       { return HeaderStateUpdateRequest }
func (c CustomArrayUpdateRequest) Header() Header { return HeaderCustomArrayUpdateRequest }
func (c Reset) Header() Header                    { return HeaderReset }
func (c Discovery) Header() Header                { return Header(-1) }

func (c OnOff) Device() int                    { return c.Hardware }
func (c ModeChange) Device() int               { return c.Hardware }
func (c MainColorChange) Device() int          { return c.Hardware }
func (c CustomColorChange) Device() int        { return c.Hardware }
func (c BrightnessChange) Device() int         { return c.Hardware }
func (c SpeedChange) Device() int              { return c.Hardware }
func (c IdleTimeoutChange) Device() int        { return c.Hardware }
func (c CustomColorCountChange) Device() int   { return c.Hardware }
func (c StateUpdateRequest) Device() int       { return c.Hardware }
func (c CustomArrayUpdateRequest) Device() int { return c.Hardware }
func (c Reset) Device() int                    { return c.Hardware }
func (c Discovery) Device() int                { return BroadcastIndex }
