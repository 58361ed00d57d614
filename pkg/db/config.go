package db

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoActiveProfile = errors.New("no active profile found")

// Config represents the complete runtime configuration loaded from the database.
type Config struct {
	Profile   *Profile
	APIServer *APIServer
	Devices   []*LEDDevice
}

// APIAddress returns the API server listen address.
func (c *Config) APIAddress() string {
	if c.APIServer == nil {
		return "0.0.0.0:8080"
	}
	return c.APIServer.Address()
}

// SerialPort returns the configured serial device path, or empty if
// no serial transport is configured.
func (c *Config) SerialPort() string {
	if c.APIServer == nil {
		return ""
	}
	return c.APIServer.SerialPort
}

// UseChecksum reports whether inbound frames require CRC suffixes.
func (c *Config) UseChecksum() bool {
	if c.Profile == nil {
		return true
	}
	return c.Profile.UseChecksum
}

// ActiveConfig loads the complete configuration for the active profile.
func (db *DB) ActiveConfig(ctx context.Context) (*Config, error) {
	// Get active profile
	profile, err := db.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNoActiveProfile
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}

	config := &Config{
		Profile: profile,
	}

	// Get API server config
	apiServer, err := db.APIServers().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrAPIServerNotFound) {
		return nil, fmt.Errorf("failed to get API server config: %w", err)
	}
	config.APIServer = apiServer

	// Get LED device inventory
	devices, err := db.LEDDevices().List(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list led devices: %w", err)
	}
	config.Devices = devices

	return config, nil
}
