package routine

// Routine identifies one animation algorithm. Single color routines use
// the engine's main color; multi color routines draw from the active
// color group.
type Routine int

const (
	Off Routine = iota
	SingleSolid
	SingleBlink
	SingleWave
	SingleGlimmer
	SingleLinearFade
	SingleSineFade
	SingleSawtoothFadeIn
	SingleSawtoothFadeOut
	MultiGlimmer
	MultiFade
	MultiRandomSolid
	MultiRandomIndividual
	MultiBarsSolid
	MultiBarsMoving

	routineMax
)

// Valid reports whether r is a known routine identifier.
func Valid(r Routine) bool {
	return r >= Off && r < routineMax
}

// IsMulti reports whether r draws from a color group rather than the
// main color.
func (r Routine) IsMulti() bool {
	return r >= MultiGlimmer && r < routineMax
}

// Count returns the number of known routines.
func Count() int {
	return int(routineMax)
}

func (r Routine) String() string {
	names := [...]string{
		"off", "single_solid", "single_blink", "single_wave",
		"single_glimmer", "single_linear_fade", "single_sine_fade",
		"single_sawtooth_fade_in", "single_sawtooth_fade_out",
		"multi_glimmer", "multi_fade", "multi_random_solid",
		"multi_random_individual", "multi_bars_solid", "multi_bars_moving",
	}
	if r < 0 || int(r) >= len(names) {
		return "unknown"
	}
	return names[r]
}

// Parse maps a routine name back to its identifier.
func Parse(s string) (Routine, bool) {
	for r := Off; r < routineMax; r++ {
		if r.String() == s {
			return r, true
		}
	}
	return Off, false
}

// Result reports what a setter did with its input. Invalid input is
// never an error: the prior value is kept and the caller learns about
// it through the result instead of inferring it from unchanged state.
type Result int

const (
	Rejected  Result = iota // input out of range, prior value kept
	Unchanged               // input valid but equal to the current value
	Applied                 // input valid and different from the current value
)

// Accepted reports whether the input was valid.
func (r Result) Accepted() bool {
	return r != Rejected
}

// Changed reports whether the input was valid and actually changed state.
func (r Result) Changed() bool {
	return r == Applied
}
