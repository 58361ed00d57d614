package controller

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ledcor/ledcor/pkg/color"
	"github.com/ledcor/ledcor/pkg/protocol"
	"github.com/ledcor/ledcor/pkg/routine"
)

// DeviceConfig describes one LED device attached to the controller.
type DeviceConfig struct {
	Name        string
	LEDCount    int
	LightType   int
	ProductType int
	// Speed is the update speed, 0 to 200. Higher means fewer ticks
	// between recomputes; 0 means recompute only when a command
	// forces it.
	Speed int
	// IdleTimeout forces the device off after this long without a
	// valid command. Zero disables the timeout.
	IdleTimeout time.Duration
}

// device pairs one engine with its scheduling and idle state.
type device struct {
	index       int
	name        string
	lightType   int
	productType int
	engine      *routine.Engine

	speed       int
	ticksPer    int
	sinceUpdate int
	forced      bool

	idleTimeout time.Duration
	lastValid   time.Time

	// construction-time values restored by a reset command
	defaultSpeed   int
	defaultTimeout time.Duration
}

// Controller owns every engine and routes decoded commands to the
// devices they address. All engine state lives behind the controller's
// lock: commands and ticks are serialized, so no engine is ever
// mutated concurrently.
type Controller struct {
	mu      sync.Mutex
	codec   protocol.Codec
	driver  Driver
	devices []*device
	now     func() time.Time
}

// New creates a controller with one engine per device config, indexed
// from 1 in config order. Hardware index 0 broadcasts.
func New(cfgs []DeviceConfig, driver Driver, codec protocol.Codec, rng *rand.Rand) (*Controller, error) {
	if len(cfgs) == 0 {
		return nil, ErrNoDevices
	}
	c := &Controller{
		codec:  codec,
		driver: driver,
		now:    time.Now,
	}
	for i, cfg := range cfgs {
		eng, err := routine.New(cfg.LEDCount, rng)
		if err != nil {
			return nil, fmt.Errorf("device %q: %w", cfg.Name, err)
		}
		c.devices = append(c.devices, &device{
			index:          i + 1,
			name:           cfg.Name,
			lightType:      cfg.LightType,
			productType:    cfg.ProductType,
			engine:         eng,
			speed:          cfg.Speed,
			ticksPer:       ticksForSpeed(cfg.Speed),
			idleTimeout:    cfg.IdleTimeout,
			lastValid:      time.Now(),
			defaultSpeed:   cfg.Speed,
			defaultTimeout: cfg.IdleTimeout,
		})
	}
	log.Info().Int("devices", len(c.devices)).Msg("Controller initialized")
	return c, nil
}

// ticksForSpeed derives the recompute cadence from the 0-200 speed
// value. Speed 200 recomputes every tick, speed 1 every 200 ticks,
// speed 0 only when forced by a state-changing command.
func ticksForSpeed(speed int) int {
	if speed <= 0 {
		return 0
	}
	if speed > 200 {
		speed = 200
	}
	return (200 + speed - 1) / speed
}

// Process decodes one inbound frame and applies every valid message in
// arrival order. It returns the outbound frames the exchange produced:
// echoes for applied commands, and state, custom-array or discovery
// packets for queries. A dropped message produces nothing; the sender
// reads the missing echo as "not applied".
func (c *Controller) Process(frame []byte) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []string
	for _, cmd := range c.codec.DecodeFrame(frame) {
		out = append(out, c.dispatch(cmd)...)
	}
	return out
}

// Dispatch applies one already-decoded command and returns the
// outbound frames it produced.
func (c *Controller) Dispatch(cmd protocol.Command) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatch(cmd)
}

func (c *Controller) dispatch(cmd protocol.Command) []string {
	if _, ok := cmd.(protocol.Discovery); ok {
		return []string{c.discoveryPacket()}
	}

	targets := c.targets(cmd.Device())
	if len(targets) == 0 {
		// well-formed command, no matching device: valid no-op
		log.Debug().Int("hardware", cmd.Device()).Msg("Command addressed no device")
		return nil
	}

	now := c.now()
	switch v := cmd.(type) {
	case protocol.StateUpdateRequest:
		for _, d := range targets {
			d.lastValid = now
		}
		return []string{c.statePacket(targets, now)}

	case protocol.CustomArrayUpdateRequest:
		out := make([]string, 0, len(targets))
		for _, d := range targets {
			d.lastValid = now
			out = append(out, c.customArrayPacket(d))
		}
		return out

	default:
		applied := false
		for _, d := range targets {
			if c.apply(d, v) {
				d.lastValid = now
				applied = true
			}
		}
		if !applied {
			return nil
		}
		return []string{c.codec.EncodeCommand(cmd)}
	}
}

// apply mutates one device's state for cmd. It reports whether the
// command was accepted; a state-changing acceptance also schedules an
// out-of-cadence recompute.
func (c *Controller) apply(d *device, cmd protocol.Command) bool {
	switch v := cmd.(type) {
	case protocol.OnOff:
		if v.On {
			d.engine.TurnOn()
			// restart the cadence so the device lights immediately
			d.sinceUpdate = 0
			d.forced = true
		} else {
			d.engine.TurnOff()
			d.forced = true
		}
		return true

	case protocol.ModeChange:
		group := v.Group
		if !v.Routine.IsMulti() {
			// single routines carry no group on the wire; keep the
			// active one so a later multi selection resumes it
			group = d.engine.Group()
		}
		res := d.engine.Select(v.Routine, group)
		if !res.Accepted() {
			return false
		}
		changed := res.Changed()
		if v.HasParam {
			if pr := c.applyParam(d, v.Routine, v.Param); pr.Changed() {
				changed = true
			}
		}
		if changed {
			d.forced = true
		}
		return true

	case protocol.MainColorChange:
		res := d.engine.SetMainColor(v.Color)
		if res.Changed() {
			d.forced = true
		}
		return res.Accepted()

	case protocol.CustomColorChange:
		return d.engine.SetCustomColor(v.Index, v.Color).Accepted()

	case protocol.BrightnessChange:
		res := d.engine.SetBrightness(v.Brightness)
		if res.Changed() {
			d.forced = true
		}
		return res.Accepted()

	case protocol.SpeedChange:
		d.speed = v.Speed
		d.ticksPer = ticksForSpeed(v.Speed)
		d.sinceUpdate = 0
		return true

	case protocol.IdleTimeoutChange:
		d.idleTimeout = time.Duration(v.Minutes) * time.Minute
		return true

	case protocol.CustomColorCountChange:
		return d.engine.SetCustomColorCount(v.Count).Accepted()

	case protocol.Reset:
		d.engine.ResetToDefaults()
		d.speed = d.defaultSpeed
		d.ticksPer = ticksForSpeed(d.speed)
		d.sinceUpdate = 0
		d.idleTimeout = d.defaultTimeout
		d.forced = true
		log.Info().Int("device", d.index).Msg("Device reset to defaults")
		return true
	}
	return false
}

// applyParam routes a mode change's optional tunable to the setting
// its routine reads.
func (c *Controller) applyParam(d *device, rt routine.Routine, v int) routine.Result {
	switch rt {
	case routine.SingleGlimmer, routine.MultiGlimmer:
		return d.engine.SetGlimmerPercent(v)
	case routine.SingleWave, routine.MultiBarsSolid, routine.MultiBarsMoving:
		return d.engine.SetBarSize(v)
	case routine.SingleBlink, routine.MultiRandomSolid:
		return d.engine.SetBlinkSpeed(v)
	default:
		return d.engine.SetFadeSpeed(v)
	}
}

// Tick advances the controller by one cooperative tick: idle timers
// are checked, every due engine recomputes its buffer, brightness is
// applied exactly once, and the frame is handed to the driver.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for _, d := range c.devices {
		if d.idleTimeout > 0 && now.Sub(d.lastValid) >= d.idleTimeout && d.engine.IsOn() {
			log.Info().Int("device", d.index).Msg("Idle timeout, forcing off")
			d.engine.TurnOff()
			d.forced = true
		}

		due := d.forced
		if d.ticksPer > 0 {
			d.sinceUpdate++
			if d.sinceUpdate >= d.ticksPer {
				due = true
			}
		}
		if !due {
			continue
		}
		d.sinceUpdate = 0
		d.forced = false

		d.engine.Tick()
		d.engine.ApplyBrightness()
		if err := c.driver.Show(d.index, d.engine.Buffer()); err != nil {
			log.Error().Err(err).Int("device", d.index).Msg("Driver write failed")
		}
	}
}

// targets resolves a hardware index to the devices it addresses.
func (c *Controller) targets(hw int) []*device {
	if hw == protocol.BroadcastIndex {
		return c.devices
	}
	if hw < 1 || hw > len(c.devices) {
		return nil
	}
	return c.devices[hw-1 : hw]
}

func (c *Controller) discoveryPacket() string {
	info := protocol.DiscoveryInfo{
		UseChecksum:  c.codec.UseChecksum,
		MaxFrameSize: protocol.MaxFrameSize,
	}
	for _, d := range c.devices {
		info.Devices = append(info.Devices, protocol.DeviceInfo{
			Name:        d.name,
			LightType:   d.lightType,
			ProductType: d.productType,
		})
	}
	return c.codec.BuildDiscoveryPacket(info)
}

func (c *Controller) statePacket(targets []*device, now time.Time) string {
	states := make([]protocol.DeviceState, 0, len(targets))
	for _, d := range targets {
		states = append(states, c.deviceState(d, now))
	}
	return c.codec.BuildStatePacket(states)
}

func (c *Controller) deviceState(d *device, now time.Time) protocol.DeviceState {
	return protocol.DeviceState{
		Index:               d.index,
		IsOn:                d.engine.IsOn(),
		Reachable:           true,
		MainColor:           d.engine.MainColor(),
		Routine:             d.engine.Routine(),
		Group:               d.engine.Group(),
		Brightness:          d.engine.Brightness(),
		Speed:               d.speed,
		IdleTimeoutMinutes:  int(d.idleTimeout / time.Minute),
		MinutesUntilTimeout: d.minutesUntilTimeout(now),
	}
}

func (d *device) minutesUntilTimeout(now time.Time) int {
	if d.idleTimeout == 0 {
		return 0
	}
	remaining := d.idleTimeout - now.Sub(d.lastValid)
	if remaining < 0 {
		return 0
	}
	// round up so a device about to time out still reports one minute
	return int((remaining + time.Minute - 1) / time.Minute)
}

func (c *Controller) customArrayPacket(d *device) string {
	count := d.engine.CustomColorCount()
	colors := make([]color.RGB, count)
	for i := range colors {
		colors[i] = d.engine.CustomColor(i)
	}
	return c.codec.BuildCustomArrayPacket(protocol.CustomArrayState{
		Index:  d.index,
		Count:  count,
		Colors: colors,
	})
}
