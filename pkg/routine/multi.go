package routine

import "github.com/ledcor/ledcor/pkg/color"

func (e *Engine) renderMultiFade() {
	ph, ok := e.ph.(*multiFadePhase)
	if !ok {
		ph = &multiFadePhase{
			current:   e.palette.At(0),
			goal:      e.palette.At(0),
			startNext: true,
		}
		e.ph = ph
	}
	if ph.startNext {
		ph.startNext = false
		if e.palette.Count > 1 {
			ph.index = (ph.index + 1) % e.palette.Count
			ph.goal = e.palette.At(ph.index)
		}
	}

	reached := true
	ph.current.R = stepChannel(ph.current.R, ph.goal.R, e.fadeSpeed, &reached)
	ph.current.G = stepChannel(ph.current.G, ph.goal.G, e.fadeSpeed, &reached)
	ph.current.B = stepChannel(ph.current.B, ph.goal.B, e.fadeSpeed, &reached)
	ph.startNext = reached

	e.fill(ph.current)
}

// stepChannel moves cur toward goal by at most step, clamping at the
// target. reached is cleared when the channel is still in transit.
func stepChannel(cur, goal uint8, step int, reached *bool) uint8 {
	c, g := int(cur), int(goal)
	switch {
	case c < g:
		if g-c <= step {
			return goal
		}
		*reached = false
		return uint8(c + step)
	case c > g:
		if c-g <= step {
			return goal
		}
		*reached = false
		return uint8(c - step)
	default:
		return cur
	}
}

func (e *Engine) renderRandomSolid() {
	ph, ok := e.ph.(*randomSolidPhase)
	if !ok {
		ph = &randomSolidPhase{}
		e.ph = ph
	}
	if ph.counter%e.blinkSpeed == 0 {
		if e.group == color.GroupAll {
			ph.current = e.resolver.Random()
		} else {
			ph.current = e.palette.At(e.rng.Intn(e.palette.Count))
		}
	}
	ph.counter++
	e.fill(ph.current)
}

func (e *Engine) renderRandomIndividual() {
	ph, ok := e.ph.(*randomIndividualPhase)
	if !ok {
		ph = &randomIndividualPhase{last: -1}
		e.ph = ph
	}
	for x := range e.scratch {
		if e.group == color.GroupAll {
			e.scratch[x] = e.resolver.Random()
			continue
		}
		idx := e.rng.Intn(e.palette.Count)
		// avoid showing the same palette entry twice in a row when
		// the palette is wide enough to offer an alternative
		if e.palette.Count > 2 {
			for idx == ph.last {
				idx = e.rng.Intn(e.palette.Count)
			}
		}
		ph.last = idx
		e.scratch[x] = e.palette.At(idx)
	}
}

func (e *Engine) renderBarsSolid() {
	span := e.barSize
	if span*e.palette.Count > e.ledCount {
		span = 1
	}
	run, idx := 0, 0
	for x := range e.scratch {
		e.scratch[x] = e.palette.At(idx)
		run++
		if run == span {
			run = 0
			idx = (idx + 1) % e.palette.Count
		}
	}
}

func (e *Engine) renderBarsMoving() {
	ph, ok := e.ph.(*barsPhase)
	if !ok || len(ph.pattern) == 0 {
		ph = &barsPhase{pattern: e.barsPattern()}
		e.ph = ph
	}
	for x := range e.scratch {
		e.scratch[x] = ph.pattern[(x+ph.offset)%len(ph.pattern)]
	}
	ph.offset = (ph.offset + 1) % len(ph.pattern)
}
