package controller

import "errors"

var (
	// ErrNotFound indicates no device exists at a hardware index.
	ErrNotFound = errors.New("device not found")

	// ErrNoDevices indicates a controller was constructed without any
	// devices.
	ErrNoDevices = errors.New("no devices configured")
)
