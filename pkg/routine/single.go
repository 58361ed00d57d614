package routine

import (
	"math"

	"github.com/ledcor/ledcor/pkg/color"
)

func (e *Engine) renderBlink() {
	ph, ok := e.ph.(*blinkPhase)
	if !ok {
		ph = &blinkPhase{lit: true}
		e.ph = ph
	}
	if ph.counter > 0 && ph.counter%e.blinkSpeed == 0 {
		ph.lit = !ph.lit
	}
	ph.counter++
	if ph.lit {
		e.fill(e.mainColor)
	} else {
		e.fill(color.RGB{})
	}
}

func (e *Engine) renderWave() {
	ph, ok := e.ph.(*wavePhase)
	if !ok || len(ph.levels) == 0 {
		ph = &wavePhase{levels: e.waveLevels()}
		e.ph = ph
	}
	max := 0
	for _, l := range ph.levels {
		if l > max {
			max = l
		}
	}
	for x := range e.scratch {
		l := ph.levels[(x+ph.offset)%len(ph.levels)]
		e.scratch[x] = color.RGB{
			R: uint8(int(e.mainColor.R) * l / max),
			G: uint8(int(e.mainColor.G) * l / max),
			B: uint8(int(e.mainColor.B) * l / max),
		}
	}
	ph.offset = (ph.offset + 1) % len(ph.levels)
}

// renderGlimmer fills the strip with base and then rolls two
// independent chances per LED: one to swap in another palette color
// (multi variant only) and one to dim the LED by a random factor in
// [2,6). A percent of zero never alters any LED; a percent of 100
// alters every one.
func (e *Engine) renderGlimmer(base color.RGB, multi bool) {
	for x := range e.scratch {
		c := base
		if multi && e.roll() <= e.glimmer {
			c = e.palette.At(e.rng.Intn(e.palette.Count))
		}
		if e.roll() <= e.glimmer {
			c = c.Dimmed(e.rng.Intn(4) + 2)
		}
		e.scratch[x] = c
	}
}

func (e *Engine) renderLinearFade() {
	ph, ok := e.ph.(*fadePhase)
	if !ok {
		ph = &fadePhase{rising: true}
		e.ph = ph
	}
	if ph.rising {
		ph.counter++
	} else {
		ph.counter--
	}
	if ph.counter >= e.fadeSpeed {
		ph.counter = e.fadeSpeed
		ph.rising = false
	} else if ph.counter <= 0 {
		ph.counter = 0
		ph.rising = true
	}
	e.fillFaded(ph.counter)
}

func (e *Engine) renderSawtooth(fadeIn bool) {
	ph, ok := e.ph.(*fadePhase)
	if !ok {
		ph = &fadePhase{rising: fadeIn}
		if !fadeIn {
			ph.counter = e.fadeSpeed
		}
		e.ph = ph
	}
	if fadeIn {
		ph.counter++
		if ph.counter > e.fadeSpeed {
			ph.counter = 0
		}
	} else {
		ph.counter--
		if ph.counter < 0 {
			ph.counter = e.fadeSpeed
		}
	}
	e.fillFaded(ph.counter)
}

// renderSineFade moves the same 0..fadeSpeed ramp as the sawtooth fade
// through a shifted sine, so the output dwells near full brightness and
// darkness instead of sweeping through them.
func (e *Engine) renderSineFade() {
	ph, ok := e.ph.(*fadePhase)
	if !ok {
		ph = &fadePhase{rising: true}
		e.ph = ph
	}
	ratio := float64(ph.counter) / float64(e.fadeSpeed)
	level := (math.Sin(ratio*2*math.Pi-1.67) + 1) / 2

	ph.counter++
	if ph.counter > e.fadeSpeed {
		ph.counter = 0
	}

	e.fill(color.RGB{
		R: uint8(float64(e.mainColor.R) * level),
		G: uint8(float64(e.mainColor.G) * level),
		B: uint8(float64(e.mainColor.B) * level),
	})
}

// fillFaded fills the strip with the main color scaled to
// counter/fadeSpeed.
func (e *Engine) fillFaded(counter int) {
	e.fill(color.RGB{
		R: uint8(int(e.mainColor.R) * counter / e.fadeSpeed),
		G: uint8(int(e.mainColor.G) * counter / e.fadeSpeed),
		B: uint8(int(e.mainColor.B) * counter / e.fadeSpeed),
	})
}
