package controller

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/ledcor/ledcor/pkg/color"
	"github.com/ledcor/ledcor/pkg/protocol"
	"github.com/ledcor/ledcor/pkg/routine"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

// recordingDriver counts frames pushed per device.
type recordingDriver struct {
	shows []int
}

func (d *recordingDriver) Show(deviceIndex int, frame []color.RGB) error {
	d.shows = append(d.shows, deviceIndex)
	return nil
}

func (d *recordingDriver) Close() error { return nil }

func newTestController(t *testing.T, drv Driver, cfgs ...DeviceConfig) (*Controller, *fakeClock) {
	t.Helper()
	if drv == nil {
		drv = NewNullDriver()
	}
	c, err := New(cfgs, drv, protocol.Codec{}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	clk := &fakeClock{now: time.Now()}
	c.now = clk.Now
	return c, clk
}

func stripConfig() DeviceConfig {
	return DeviceConfig{Name: "strip", LEDCount: 8, Speed: 100}
}

func TestNew_RequiresDevices(t *testing.T) {
	_, err := New(nil, NewNullDriver(), protocol.Codec{}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoDevices) {
		t.Fatalf("err = %v, want ErrNoDevices", err)
	}
}

func TestTicksForSpeed(t *testing.T) {
	cases := []struct {
		speed, want int
	}{
		{0, 0},
		{-5, 0},
		{1, 200},
		{66, 4},
		{100, 2},
		{150, 2},
		{200, 1},
		{250, 1},
	}
	for _, tc := range cases {
		if got := ticksForSpeed(tc.speed); got != tc.want {
			t.Errorf("ticksForSpeed(%d) = %d, want %d", tc.speed, got, tc.want)
		}
	}
}

func TestProcess_EchoesAppliedCommand(t *testing.T) {
	c, _ := newTestController(t, nil, stripConfig())

	out := c.Process([]byte("4,1,80"))
	if len(out) != 1 || out[0] != "4,1,80;" {
		t.Fatalf("Process = %v, want single echo \"4,1,80;\"", out)
	}

	sum, err := c.Device(1)
	if err != nil {
		t.Fatal(err)
	}
	if sum.State.Brightness != 80 {
		t.Errorf("brightness = %d, want 80", sum.State.Brightness)
	}
}

func TestProcess_InvalidFrameProducesNothing(t *testing.T) {
	c, _ := newTestController(t, nil, stripConfig())
	if out := c.Process([]byte("hello")); len(out) != 0 {
		t.Errorf("Process = %v, want empty", out)
	}
}

func TestProcess_BroadcastReachesEveryDevice(t *testing.T) {
	c, _ := newTestController(t, nil, stripConfig(),
		DeviceConfig{Name: "lamp", LEDCount: 4, Speed: 100})

	out := c.Process([]byte("3,0,0,10,20,30"))
	if len(out) != 1 || out[0] != "3,0,0,10,20,30;" {
		t.Fatalf("Process = %v, want single echo", out)
	}

	want := color.RGB{R: 10, G: 20, B: 30}
	for _, d := range c.devices {
		if got := d.engine.CustomColor(0); got != want {
			t.Errorf("device %d custom[0] = %v, want %v", d.index, got, want)
		}
	}
}

func TestDispatch_UnknownDeviceIsSilentNoOp(t *testing.T) {
	c, _ := newTestController(t, nil, stripConfig())
	if out := c.Dispatch(protocol.OnOff{Hardware: 5, On: true}); out != nil {
		t.Errorf("Dispatch = %v, want nil", out)
	}
}

func TestDispatch_Discovery(t *testing.T) {
	c, _ := newTestController(t, nil, stripConfig())
	out := c.Process([]byte(protocol.DiscoveryToken))
	if len(out) != 1 {
		t.Fatalf("got %d frames, want 1", len(out))
	}
	want := "DISCOVERY_PACKET,3,0,0,0,512,1,strip,0,0;"
	if out[0] != want {
		t.Errorf("discovery packet = %q, want %q", out[0], want)
	}
}

func TestDispatch_StateUpdateRequest(t *testing.T) {
	c, _ := newTestController(t, nil, stripConfig())
	out := c.Dispatch(protocol.StateUpdateRequest{Hardware: 1})
	if len(out) != 1 {
		t.Fatalf("got %d frames, want 1", len(out))
	}
	want := "8,1,1,1,100,25,0,4,0,50,100,0,0;"
	if out[0] != want {
		t.Errorf("state packet = %q, want %q", out[0], want)
	}
}

func TestDispatch_CustomArrayUpdateRequest(t *testing.T) {
	c, _ := newTestController(t, nil, stripConfig())
	c.Dispatch(protocol.CustomColorChange{Hardware: 1, Index: 0, Color: color.RGB{R: 9}})

	out := c.Dispatch(protocol.CustomArrayUpdateRequest{Hardware: 1})
	if len(out) != 1 {
		t.Fatalf("got %d frames, want 1", len(out))
	}
	want := "9,1,2,9,0,0,125,0,255;"
	if out[0] != want {
		t.Errorf("custom array packet = %q, want %q", out[0], want)
	}
}

func TestTick_CadenceFollowsSpeed(t *testing.T) {
	drv := &recordingDriver{}
	// speed 100 recomputes every second tick
	c, _ := newTestController(t, drv, stripConfig())

	for i := 0; i < 6; i++ {
		c.Tick()
	}
	if len(drv.shows) != 3 {
		t.Errorf("driver saw %d frames over 6 ticks, want 3", len(drv.shows))
	}
}

func TestTick_SpeedZeroRecomputesOnlyWhenForced(t *testing.T) {
	drv := &recordingDriver{}
	c, _ := newTestController(t, drv, DeviceConfig{Name: "strip", LEDCount: 8, Speed: 0})

	for i := 0; i < 5; i++ {
		c.Tick()
	}
	if len(drv.shows) != 0 {
		t.Fatalf("driver saw %d frames with speed 0 and no commands", len(drv.shows))
	}

	c.Dispatch(protocol.OnOff{Hardware: 1, On: true})
	c.Tick()
	c.Tick()
	if len(drv.shows) != 1 {
		t.Errorf("driver saw %d frames after forced command, want 1", len(drv.shows))
	}
}

func TestTick_IdleTimeoutForcesOff(t *testing.T) {
	cfg := stripConfig()
	cfg.IdleTimeout = 2 * time.Minute
	c, clk := newTestController(t, nil, cfg)
	c.Dispatch(protocol.OnOff{Hardware: 1, On: true})

	clk.advance(time.Minute)
	c.Tick()
	if !c.devices[0].engine.IsOn() {
		t.Fatal("device turned off before the idle timeout elapsed")
	}

	clk.advance(time.Minute)
	c.Tick()
	if c.devices[0].engine.IsOn() {
		t.Fatal("device still on after the idle timeout elapsed")
	}
}

func TestTick_ZeroIdleTimeoutNeverFiresOff(t *testing.T) {
	c, clk := newTestController(t, nil, stripConfig())
	c.Dispatch(protocol.OnOff{Hardware: 1, On: true})

	clk.advance(240 * time.Hour)
	c.Tick()
	if !c.devices[0].engine.IsOn() {
		t.Fatal("device with timeout disabled turned off")
	}
}

func TestStateUpdateRequest_RefreshesIdleClock(t *testing.T) {
	cfg := stripConfig()
	cfg.IdleTimeout = 2 * time.Minute
	c, clk := newTestController(t, nil, cfg)
	c.Dispatch(protocol.OnOff{Hardware: 1, On: true})

	clk.advance(90 * time.Second)
	c.Dispatch(protocol.StateUpdateRequest{Hardware: 1})

	clk.advance(90 * time.Second)
	c.Tick()
	if !c.devices[0].engine.IsOn() {
		t.Fatal("keep-alive did not refresh the idle clock")
	}
}

func TestMinutesUntilTimeout_RoundsUp(t *testing.T) {
	cfg := stripConfig()
	cfg.IdleTimeout = 2 * time.Minute
	c, clk := newTestController(t, nil, cfg)
	c.Dispatch(protocol.StateUpdateRequest{Hardware: 1})

	clk.advance(90 * time.Second)
	sum, err := c.Device(1)
	if err != nil {
		t.Fatal(err)
	}
	if sum.State.MinutesUntilTimeout != 1 {
		t.Errorf("minutes until timeout = %d, want 1", sum.State.MinutesUntilTimeout)
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	cfg := stripConfig()
	cfg.IdleTimeout = 2 * time.Minute
	c, _ := newTestController(t, nil, cfg)

	c.Process([]byte("5,1,30&6,1,9&4,1,10"))
	d := c.devices[0]
	if d.speed != 30 || d.idleTimeout != 9*time.Minute || d.engine.Brightness() != 10 {
		t.Fatalf("setup commands not applied: speed=%d timeout=%v brightness=%d",
			d.speed, d.idleTimeout, d.engine.Brightness())
	}

	out := c.Process([]byte("10,1,42,71"))
	if len(out) != 1 || out[0] != "10,1,42,71;" {
		t.Fatalf("reset echo = %v", out)
	}
	if d.speed != cfg.Speed {
		t.Errorf("speed = %d, want default %d", d.speed, cfg.Speed)
	}
	if d.idleTimeout != cfg.IdleTimeout {
		t.Errorf("idle timeout = %v, want default %v", d.idleTimeout, cfg.IdleTimeout)
	}
	if d.engine.Brightness() != 50 {
		t.Errorf("brightness = %d, want factory 50", d.engine.Brightness())
	}
}

func TestDevice_IndexOutOfRange(t *testing.T) {
	c, _ := newTestController(t, nil, stripConfig())
	for _, idx := range []int{0, -1, 2} {
		if _, err := c.Device(idx); !errors.Is(err, ErrNotFound) {
			t.Errorf("Device(%d) err = %v, want ErrNotFound", idx, err)
		}
	}
}

func TestFrame_ReturnsACopy(t *testing.T) {
	c, _ := newTestController(t, nil, stripConfig())
	c.Tick()
	c.Tick()

	frame, err := c.Frame(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(frame) != 8 {
		t.Fatalf("frame length = %d, want 8", len(frame))
	}
	frame[0] = color.RGB{R: 1, G: 2, B: 3}
	if c.devices[0].engine.Buffer()[0] == frame[0] {
		t.Error("mutating the returned frame reached the engine buffer")
	}
}

func TestModeChange_SingleRoutineKeepsGroup(t *testing.T) {
	c, _ := newTestController(t, nil, stripConfig())

	c.Process([]byte("1,1,9,6"))
	if g := c.devices[0].engine.Group(); g != color.GroupFire {
		t.Fatalf("setup group = %s, want fire", g)
	}

	out := c.Process([]byte("1,1,1"))
	if len(out) != 1 {
		t.Fatalf("Process = %v, want one echo", out)
	}
	d := c.devices[0]
	if d.engine.Routine() != routine.SingleSolid {
		t.Errorf("routine = %s, want single_solid", d.engine.Routine())
	}
	if g := d.engine.Group(); g != color.GroupFire {
		t.Errorf("after single routine change group = %s, want fire preserved", g)
	}
}

func TestModeChange_ParamLandsOnRoutineSetting(t *testing.T) {
	c, _ := newTestController(t, nil, stripConfig())

	out := c.Process([]byte("1,1,9,13,45"))
	if len(out) != 1 {
		t.Fatalf("Process = %v, want one echo", out)
	}
	d := c.devices[0]
	if d.engine.Routine().String() != "multi_glimmer" {
		t.Errorf("routine = %s, want multi_glimmer", d.engine.Routine())
	}
	if d.engine.Group() != color.GroupRGB {
		t.Errorf("group = %s, want rgb", d.engine.Group())
	}
	if d.engine.GlimmerPercent() != 45 {
		t.Errorf("glimmer percent = %d, want 45", d.engine.GlimmerPercent())
	}
}
