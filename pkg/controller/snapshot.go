package controller

import (
	"time"

	"github.com/ledcor/ledcor/pkg/color"
	"github.com/ledcor/ledcor/pkg/protocol"
)

// Summary is a read-only view of one device for API consumers.
type Summary struct {
	Index       int
	Name        string
	LightType   int
	ProductType int
	LEDCount    int
	State       protocol.DeviceState
}

// Devices returns a summary of every attached device.
func (c *Controller) Devices() []Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	out := make([]Summary, 0, len(c.devices))
	for _, d := range c.devices {
		out = append(out, c.summary(d, now))
	}
	return out
}

// Device returns the summary for one hardware index.
func (c *Controller) Device(index int) (Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 1 || index > len(c.devices) {
		return Summary{}, ErrNotFound
	}
	return c.summary(c.devices[index-1], c.now()), nil
}

// Frame returns a copy of a device's current RGB buffer. Copying keeps
// the caller off the engine's own frame, which the tick loop rewrites.
func (c *Controller) Frame(index int) ([]color.RGB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 1 || index > len(c.devices) {
		return nil, ErrNotFound
	}
	buf := c.devices[index-1].engine.Buffer()
	frame := make([]color.RGB, len(buf))
	copy(frame, buf)
	return frame, nil
}

// CustomArray returns a device's custom palette snapshot.
func (c *Controller) CustomArray(index int) (protocol.CustomArrayState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 1 || index > len(c.devices) {
		return protocol.CustomArrayState{}, ErrNotFound
	}
	d := c.devices[index-1]
	count := d.engine.CustomColorCount()
	colors := make([]color.RGB, count)
	for i := range colors {
		colors[i] = d.engine.CustomColor(i)
	}
	return protocol.CustomArrayState{Index: d.index, Count: count, Colors: colors}, nil
}

// DeviceCount returns the number of attached devices.
func (c *Controller) DeviceCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.devices)
}

// DiscoveryPacket returns the capability summary frame.
func (c *Controller) DiscoveryPacket() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.discoveryPacket()
}

func (c *Controller) summary(d *device, now time.Time) Summary {
	return Summary{
		Index:       d.index,
		Name:        d.name,
		LightType:   d.lightType,
		ProductType: d.productType,
		LEDCount:    d.engine.LEDCount(),
		State:       c.deviceState(d, now),
	}
}
