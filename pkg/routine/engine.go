package routine

import (
	"errors"
	"math/rand"

	"github.com/ledcor/ledcor/pkg/color"
)

// Construction-time defaults, restored by ResetToDefaults.
const (
	DefaultBrightness  = 50
	DefaultFadeSpeed   = 25
	DefaultBlinkSpeed  = 3
	DefaultBarSize     = 2
	DefaultGlimmer     = 20
	DefaultCustomCount = 2
)

// DefaultMainColor is a dim orange, the factory main color.
var DefaultMainColor = color.RGB{R: 100, G: 25, B: 0}

// ErrLEDCount is returned when an engine is constructed for an empty
// strip. Unlike every runtime validation failure this is fatal: an
// engine without a buffer cannot run at all.
var ErrLEDCount = errors.New("led count must be positive")

// Engine owns the animation state of one LED device. It synthesizes a
// full RGB buffer on every Tick; the buffer is the engine's only
// externally observable output and is never partially stale.
//
// Engines are not safe for concurrent use. The controller serializes
// all access behind its tick loop.
type Engine struct {
	ledCount int
	resolver *color.Resolver
	rng      *rand.Rand

	mainColor color.RGB
	palette   color.Palette
	routine   Routine
	group     color.Group

	brightness int
	barSize    int
	fadeSpeed  int
	blinkSpeed int
	glimmer    int

	isOn       bool
	forceSetup bool

	// Frames are rendered into scratch and swapped in whole, so a
	// reader holding the previous Buffer never observes a partial
	// write.
	buf     []color.RGB
	scratch []color.RGB

	ph phase
}

// New creates an engine for a strip of ledCount LEDs using rng as its
// randomness source.
func New(ledCount int, rng *rand.Rand) (*Engine, error) {
	if ledCount <= 0 {
		return nil, ErrLEDCount
	}
	e := &Engine{
		ledCount: ledCount,
		resolver: color.NewResolver(rng),
		rng:      rng,
		buf:      make([]color.RGB, ledCount),
		scratch:  make([]color.RGB, ledCount),
	}
	e.ResetToDefaults()
	return e, nil
}

// ResetToDefaults restores every setting to its construction-time
// value, including the custom color array.
func (e *Engine) ResetToDefaults() {
	e.mainColor = DefaultMainColor
	e.routine = SingleGlimmer
	e.group = color.GroupCustom
	e.brightness = DefaultBrightness
	e.fadeSpeed = DefaultFadeSpeed
	e.blinkSpeed = DefaultBlinkSpeed
	e.barSize = DefaultBarSize
	e.glimmer = DefaultGlimmer
	e.resolver.Reset()
	e.palette = e.resolver.Resolve(e.group)
	e.isOn = true
	e.forceSetup = false
	e.ph = e.newPhase(e.routine)
}

// Select activates a routine and color group. Reselecting the active
// pair is a no-op for transient phase state; any change of routine or
// group, or a pending force-setup condition, resets the phase so the
// new routine starts cleanly.
func (e *Engine) Select(rt Routine, g color.Group) Result {
	if !Valid(rt) {
		return Rejected
	}
	g = color.ClampGroup(g)

	if rt == e.routine && g == e.group && !e.forceSetup {
		if rt != Off && !e.isOn {
			e.isOn = true
			return Applied
		}
		return Unchanged
	}

	e.routine = rt
	e.group = g
	e.forceSetup = false
	e.isOn = rt != Off
	e.palette = e.resolver.Resolve(g)
	e.ph = e.newPhase(rt)
	return Applied
}

// newPhase builds the fresh phase variant for rt.
func (e *Engine) newPhase(rt Routine) phase {
	switch rt {
	case SingleBlink:
		return &blinkPhase{lit: true}
	case SingleLinearFade, SingleSineFade, SingleSawtoothFadeIn:
		return &fadePhase{rising: true}
	case SingleSawtoothFadeOut:
		return &fadePhase{counter: e.fadeSpeed}
	case SingleWave:
		return &wavePhase{levels: e.waveLevels()}
	case MultiBarsMoving:
		return &barsPhase{pattern: e.barsPattern()}
	case MultiFade:
		return &multiFadePhase{
			current:   e.palette.At(0),
			goal:      e.palette.At(0),
			startNext: true,
		}
	case MultiRandomSolid:
		return &randomSolidPhase{}
	case MultiRandomIndividual:
		return &randomIndividualPhase{last: -1}
	default:
		return nil
	}
}

// waveLevels builds one repeat of the wave lookup: brightness levels
// rising from 1 to ledCount/(2*barSize), each held for barSize LEDs.
func (e *Engine) waveLevels() []int {
	steps := e.ledCount / (2 * e.barSize)
	if steps < 1 {
		steps = 1
	}
	span := e.barSize
	if span*steps > e.ledCount {
		span = 1
	}
	levels := make([]int, 0, span*steps)
	for l := 1; l <= steps; l++ {
		for i := 0; i < span; i++ {
			levels = append(levels, l)
		}
	}
	return levels
}

// barsPattern builds one repeat of the moving bars lookup: every
// palette color held for barSize LEDs.
func (e *Engine) barsPattern() []color.RGB {
	span := e.barSize
	if span*e.palette.Count > e.ledCount {
		span = 1
	}
	pattern := make([]color.RGB, 0, span*e.palette.Count)
	for i := 0; i < e.palette.Count; i++ {
		c := e.palette.At(i)
		for j := 0; j < span; j++ {
			pattern = append(pattern, c)
		}
	}
	return pattern
}

// Tick recomputes the RGB buffer from the current state. The buffer
// fully reflects the state once Tick returns.
func (e *Engine) Tick() {
	if !e.isOn || e.routine == Off {
		for i := range e.scratch {
			e.scratch[i] = color.RGB{}
		}
	} else {
		e.render()
	}
	e.buf, e.scratch = e.scratch, e.buf
}

func (e *Engine) render() {
	switch e.routine {
	case SingleSolid:
		e.fill(e.mainColor)
	case SingleBlink:
		e.renderBlink()
	case SingleWave:
		e.renderWave()
	case SingleGlimmer:
		e.renderGlimmer(e.mainColor, false)
	case SingleLinearFade:
		e.renderLinearFade()
	case SingleSineFade:
		e.renderSineFade()
	case SingleSawtoothFadeIn:
		e.renderSawtooth(true)
	case SingleSawtoothFadeOut:
		e.renderSawtooth(false)
	case MultiGlimmer:
		e.renderGlimmer(e.palette.At(0), true)
	case MultiFade:
		e.renderMultiFade()
	case MultiRandomSolid:
		e.renderRandomSolid()
	case MultiRandomIndividual:
		e.renderRandomIndividual()
	case MultiBarsSolid:
		e.renderBarsSolid()
	case MultiBarsMoving:
		e.renderBarsMoving()
	}
}

// ApplyBrightness scales every channel of the buffer by brightness/100
// using integer arithmetic. It must be called at most once per frame:
// repeated calls compound the scaling.
func (e *Engine) ApplyBrightness() {
	for i := range e.buf {
		e.buf[i] = e.buf[i].Scaled(e.brightness)
	}
}

func (e *Engine) fill(c color.RGB) {
	for i := range e.scratch {
		e.scratch[i] = c
	}
}

// roll returns a uniform value in [1, 100] for percent checks.
func (e *Engine) roll() int {
	return e.rng.Intn(100) + 1
}

// Buffer returns the current RGB frame. The slice is owned by the
// engine and valid until the next Tick.
func (e *Engine) Buffer() []color.RGB {
	return e.buf
}

// At returns the buffer color at index i, or black out of range.
func (e *Engine) At(i int) color.RGB {
	if i < 0 || i >= e.ledCount {
		return color.RGB{}
	}
	return e.buf[i]
}

// DrawColor writes one pixel directly into the buffer. It reports
// whether the index was in range. The write lasts until the next Tick.
func (e *Engine) DrawColor(i int, c color.RGB) bool {
	if i < 0 || i >= e.ledCount {
		return false
	}
	e.buf[i] = c
	return true
}

// TurnOn makes the device display its active routine again.
func (e *Engine) TurnOn() {
	e.isOn = true
}

// TurnOff blanks the device. Settings and the active routine survive.
func (e *Engine) TurnOff() {
	e.isOn = false
}

// IsOn reports whether the device is displaying anything.
func (e *Engine) IsOn() bool {
	return e.isOn
}

// SetMainColor sets the color used by single color routines.
func (e *Engine) SetMainColor(c color.RGB) Result {
	if c == e.mainColor {
		return Unchanged
	}
	e.mainColor = c
	return Applied
}

// SetCustomColor sets one slot of the custom color array. Indices
// outside the array are rejected.
func (e *Engine) SetCustomColor(i int, c color.RGB) Result {
	if !e.resolver.SetCustomColor(i, c) {
		return Rejected
	}
	return Applied
}

// SetCustomColorCount sets how many custom slots multi color routines
// use. Zero and over-capacity counts are rejected. Changing the count
// while the custom group is active forces a re-setup on the next
// selection so the routine picks up the new width.
func (e *Engine) SetCustomColorCount(n int) Result {
	if n == e.resolver.CustomCount() {
		return Unchanged
	}
	if !e.resolver.SetCustomCount(n) {
		return Rejected
	}
	if e.group == color.GroupCustom {
		e.forceSetup = true
	}
	return Applied
}

// SetBrightness sets the output scale, 0 to 100. Values above 100 are
// rejected.
func (e *Engine) SetBrightness(b int) Result {
	if b < 0 || b > 100 {
		return Rejected
	}
	if b == e.brightness {
		return Unchanged
	}
	e.brightness = b
	return Applied
}

// SetBarSize sets the width of bars in the bar and wave routines. The
// size must be positive and smaller than the strip.
func (e *Engine) SetBarSize(n int) Result {
	if n <= 0 || n >= e.ledCount {
		return Rejected
	}
	if n == e.barSize {
		return Unchanged
	}
	e.barSize = n
	return Applied
}

// SetFadeSpeed sets the per-tick fade step. Zero is rejected, keeping
// the previous speed.
func (e *Engine) SetFadeSpeed(n int) Result {
	if n <= 0 {
		return Rejected
	}
	if n == e.fadeSpeed {
		return Unchanged
	}
	e.fadeSpeed = n
	return Applied
}

// SetBlinkSpeed sets how many ticks pass between blink toggles. Zero is
// rejected, keeping the previous speed.
func (e *Engine) SetBlinkSpeed(n int) Result {
	if n <= 0 {
		return Rejected
	}
	if n == e.blinkSpeed {
		return Unchanged
	}
	e.blinkSpeed = n
	return Applied
}

// SetGlimmerPercent sets the chance, 0 to 100, that a given LED is
// altered by the glimmer routines.
func (e *Engine) SetGlimmerPercent(p int) Result {
	if p < 0 || p > 100 {
		return Rejected
	}
	if p == e.glimmer {
		return Unchanged
	}
	e.glimmer = p
	return Applied
}

// Getters.

func (e *Engine) LEDCount() int            { return e.ledCount }
func (e *Engine) MainColor() color.RGB     { return e.mainColor }
func (e *Engine) Routine() Routine         { return e.routine }
func (e *Engine) Group() color.Group       { return e.group }
func (e *Engine) Brightness() int          { return e.brightness }
func (e *Engine) BarSize() int             { return e.barSize }
func (e *Engine) FadeSpeed() int           { return e.fadeSpeed }
func (e *Engine) BlinkSpeed() int          { return e.blinkSpeed }
func (e *Engine) GlimmerPercent() int      { return e.glimmer }
func (e *Engine) CustomColorCount() int    { return e.resolver.CustomCount() }
func (e *Engine) CustomColor(i int) color.RGB {
	return e.resolver.CustomColor(i)
}
