package controller

import "github.com/ledcor/ledcor/pkg/color"

// Driver pushes a computed frame to LED hardware. The frame slice is
// owned by the engine that produced it and is only valid until that
// device's next recompute, so a driver must copy it if it keeps it.
type Driver interface {
	// Show displays a frame on the device at the given hardware index.
	Show(deviceIndex int, frame []color.RGB) error

	// Close releases the underlying hardware.
	Close() error
}

// NullDriver is a no-op driver used when no LED hardware is attached.
// It allows the controller to run in limited mode for development and
// for driving the API surface alone.
type NullDriver struct{}

// NewNullDriver creates a new NullDriver.
func NewNullDriver() *NullDriver {
	return &NullDriver{}
}

func (d *NullDriver) Show(deviceIndex int, frame []color.RGB) error {
	return nil
}

func (d *NullDriver) Close() error {
	return nil
}
