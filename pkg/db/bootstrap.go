package db

import (
	"context"
	"fmt"
)

// Bootstrap initializes the database with default data if it's empty.
// This is called after migrations and handles first-run setup.
func (db *DB) Bootstrap(ctx context.Context) error {
	// Check if any profiles exist
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check profiles: %w", err)
	}

	if count > 0 {
		return nil // Already bootstrapped
	}

	// First run - create defaults
	result, err := db.ExecContext(ctx, `
		INSERT INTO profiles (name, use_checksum, is_active)
		VALUES ('default', 1, 1)
	`)
	if err != nil {
		return fmt.Errorf("failed to create default profile: %w", err)
	}

	profileID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get profile ID: %w", err)
	}

	// Create default API server config, no serial transport attached
	_, err = db.ExecContext(ctx, `
		INSERT INTO api_servers (profile_id, host, port, serial_port)
		VALUES (?, '0.0.0.0', 8080, '')
	`, profileID)
	if err != nil {
		return fmt.Errorf("failed to create default API server: %w", err)
	}

	// Create a single default strip so the controller has something
	// to drive on first run
	_, err = db.ExecContext(ctx, `
		INSERT INTO led_devices (profile_id, name, led_count, light_type, product_type, speed, idle_timeout_minutes)
		VALUES (?, 'strip', 32, 0, 0, 100, 120)
	`, profileID)
	if err != nil {
		return fmt.Errorf("failed to create default led device: %w", err)
	}

	return nil
}

// NeedsBootstrap returns true if the database needs initial setup.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
