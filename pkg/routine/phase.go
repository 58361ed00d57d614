package routine

import "github.com/ledcor/ledcor/pkg/color"

// Transient animation state, one variant per routine family. Selecting
// a routine installs the variant it needs, so a routine can never read
// phase values left behind by an unrelated routine.
type phase interface {
	isPhase()
}

// blinkPhase drives routines that toggle on a tick cadence.
type blinkPhase struct {
	counter int
	lit     bool
}

// fadePhase drives the linear, sine and sawtooth fades. counter moves
// between 0 and the engine's fade speed.
type fadePhase struct {
	counter int
	rising  bool
}

// wavePhase drives the scrolling single color wave. levels holds one
// full repeat of the brightness ramp; each tick the read offset
// advances by one position, and the ramp is repeated
// ledCount/len(levels)+1 times to cover the strip.
type wavePhase struct {
	levels []int
	offset int
}

// barsPhase drives the scrolling multi color bars. pattern holds one
// full repeat of the palette bars, covered the same way as wavePhase.
type barsPhase struct {
	pattern []color.RGB
	offset  int
}

// multiFadePhase drives the palette crossfade. current is the color on
// display, goal the palette entry being faded toward.
type multiFadePhase struct {
	index     int
	current   color.RGB
	goal      color.RGB
	startNext bool
}

// randomSolidPhase holds the color shown between re-rolls.
type randomSolidPhase struct {
	counter int
	current color.RGB
}

// randomIndividualPhase remembers the last palette index chosen so the
// no-immediate-repeat rule can apply.
type randomIndividualPhase struct {
	last int
}

func (*blinkPhase) isPhase()            {}
func (*fadePhase) isPhase()             {}
func (*wavePhase) isPhase()             {}
func (*barsPhase) isPhase()             {}
func (*multiFadePhase) isPhase()        {}
func (*randomSolidPhase) isPhase()      {}
func (*randomIndividualPhase) isPhase() {}
