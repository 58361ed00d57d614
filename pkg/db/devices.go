package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrDeviceNotFound = errors.New("led device not found")

// LEDDevice represents a configured LED strip or ring. Speed is the
// animation rate in update-period units and IdleTimeoutMinutes is the
// auto-off window; zero disables the timeout.
type LEDDevice struct {
	ID                 int64
	ProfileID          int64
	Name               string
	LEDCount           int
	LightType          int
	ProductType        int
	Speed              int
	IdleTimeoutMinutes int
	CreatedAt          time.Time
}

// LEDDeviceStore provides LED device CRUD operations.
type LEDDeviceStore interface {
	Get(ctx context.Context, id int64) (*LEDDevice, error)
	List(ctx context.Context, profileID int64) ([]*LEDDevice, error)
	Create(ctx context.Context, d *LEDDevice) error
	Update(ctx context.Context, d *LEDDevice) error
	Delete(ctx context.Context, id int64) error
}

// LEDDevices returns an LEDDeviceStore for this database.
func (db *DB) LEDDevices() LEDDeviceStore {
	return &ledDeviceStore{db: db}
}

type ledDeviceStore struct {
	db *DB
}

func (s *ledDeviceStore) Get(ctx context.Context, id int64) (*LEDDevice, error) {
	d := &LEDDevice{}
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, profile_id, name, led_count, light_type, product_type, speed, idle_timeout_minutes, created_at
		FROM led_devices WHERE id = ?
	`, id).Scan(&d.ID, &d.ProfileID, &d.Name, &d.LEDCount, &d.LightType, &d.ProductType, &d.Speed, &d.IdleTimeoutMinutes, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}
	d.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
	return d, nil
}

func (s *ledDeviceStore) List(ctx context.Context, profileID int64) ([]*LEDDevice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile_id, name, led_count, light_type, product_type, speed, idle_timeout_minutes, created_at
		FROM led_devices WHERE profile_id = ? ORDER BY id
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var devices []*LEDDevice
	for rows.Next() {
		d := &LEDDevice{}
		var createdAt string
		if err := rows.Scan(&d.ID, &d.ProfileID, &d.Name, &d.LEDCount, &d.LightType, &d.ProductType, &d.Speed, &d.IdleTimeoutMinutes, &createdAt); err != nil {
			return nil, err
		}
		d.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

func (s *ledDeviceStore) Create(ctx context.Context, d *LEDDevice) error {
	if d.LEDCount <= 0 {
		return fmt.Errorf("led device %q: led_count must be positive", d.Name)
	}
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO led_devices (profile_id, name, led_count, light_type, product_type, speed, idle_timeout_minutes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, d.ProfileID, d.Name, d.LEDCount, d.LightType, d.ProductType, d.Speed, d.IdleTimeoutMinutes)
	if err != nil {
		return fmt.Errorf("failed to create led device: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}

func (s *ledDeviceStore) Update(ctx context.Context, d *LEDDevice) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE led_devices SET name = ?, led_count = ?, light_type = ?, product_type = ?, speed = ?, idle_timeout_minutes = ?
		WHERE id = ?
	`, d.Name, d.LEDCount, d.LightType, d.ProductType, d.Speed, d.IdleTimeoutMinutes, d.ID)
	return err
}

func (s *ledDeviceStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM led_devices WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrDeviceNotFound
	}
	return nil
}
