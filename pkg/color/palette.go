package color

import "math/rand"

// PaletteSize is the fixed capacity of every palette.
const PaletteSize = 10

// Palette is an ordered, fixed-capacity list of colors. Only the first
// Count entries are meaningful. Palettes are copied by value when
// selected, so a resolved palette is a snapshot, not a live view.
type Palette struct {
	Colors [PaletteSize]RGB
	Count  int
}

// At returns the color at index i, or black if i is out of range.
func (p Palette) At(i int) RGB {
	if i < 0 || i >= p.Count {
		return RGB{}
	}
	return p.Colors[i]
}

// Preset color lists, one per group between GroupCustom and GroupAll.
var presets = map[Group][]RGB{
	GroupWater: {
		{0, 0, 255}, {0, 25, 225}, {0, 100, 255}, {10, 125, 200}, {60, 120, 220},
	},
	GroupFrozen: {
		{0, 140, 160}, {0, 200, 255}, {60, 180, 220}, {120, 220, 255}, {180, 230, 255}, {100, 110, 250},
	},
	GroupSnow: {
		{255, 255, 255}, {200, 200, 255}, {180, 212, 255}, {160, 235, 255}, {80, 200, 240}, {50, 90, 255},
	},
	GroupCool: {
		{0, 255, 0}, {125, 0, 255}, {0, 0, 255}, {40, 127, 40}, {60, 0, 160},
	},
	GroupWarm: {
		{255, 255, 0}, {255, 160, 0}, {255, 95, 0}, {255, 60, 0}, {255, 30, 0},
	},
	GroupFire: {
		{255, 70, 0}, {255, 20, 0}, {255, 80, 0}, {255, 30, 0}, {255, 115, 0}, {255, 10, 0},
	},
	GroupEvil: {
		{255, 0, 0}, {200, 0, 0}, {127, 0, 0}, {20, 0, 0}, {30, 0, 40},
	},
	GroupCorrosive: {
		{0, 255, 0}, {0, 200, 0}, {60, 180, 60}, {127, 135, 127}, {10, 90, 10},
	},
	GroupPoison: {
		{80, 0, 180}, {120, 0, 255}, {10, 0, 20}, {25, 0, 25}, {60, 40, 60},
	},
	GroupRose: {
		{216, 30, 100}, {156, 62, 72}, {255, 245, 251}, {127, 127, 127}, {194, 30, 86},
	},
	GroupPinkGreen: {
		{255, 20, 147}, {255, 105, 180}, {0, 255, 0}, {0, 200, 0},
	},
	GroupRedWhiteBlue: {
		{255, 0, 0}, {255, 255, 255}, {0, 0, 255}, {255, 255, 255},
	},
	GroupRGB: {
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
	},
	GroupCMY: {
		{0, 255, 255}, {255, 0, 255}, {255, 255, 0},
	},
	GroupSixColor: {
		{255, 0, 0}, {255, 255, 0}, {0, 255, 0}, {0, 255, 255}, {0, 0, 255}, {255, 0, 255},
	},
	GroupSevenColor: {
		{255, 0, 0}, {255, 255, 0}, {0, 255, 0}, {0, 255, 255}, {0, 0, 255}, {255, 0, 255}, {255, 255, 255},
	},
}

// DefaultCustomColors fills a custom palette with the factory pattern:
// green, teal, blue, light green, purple, repeating.
func DefaultCustomColors() [PaletteSize]RGB {
	base := []RGB{
		{0, 255, 0},
		{125, 0, 255},
		{0, 0, 255},
		{40, 127, 40},
		{60, 0, 160},
	}
	var out [PaletteSize]RGB
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out
}

// Resolver maps a group identifier to a palette snapshot. The custom
// group is backed by user-settable storage; the all group is drawn
// fresh from the random source on every Resolve call.
type Resolver struct {
	custom      [PaletteSize]RGB
	customCount int
	rng         *rand.Rand
}

// NewResolver creates a resolver with the factory custom colors and a
// custom count of two.
func NewResolver(rng *rand.Rand) *Resolver {
	r := &Resolver{rng: rng}
	r.Reset()
	return r
}

// Reset restores the factory custom colors and count.
func (r *Resolver) Reset() {
	r.custom = DefaultCustomColors()
	r.customCount = 2
}

// SetCustomColor sets one slot of the custom palette. Indices outside
// the palette capacity are rejected.
func (r *Resolver) SetCustomColor(i int, c RGB) bool {
	if i < 0 || i >= PaletteSize {
		return false
	}
	r.custom[i] = c
	return true
}

// SetCustomCount sets how many custom slots are active. Zero and
// out-of-capacity counts are rejected, keeping the previous count.
func (r *Resolver) SetCustomCount(n int) bool {
	if n <= 0 || n > PaletteSize {
		return false
	}
	r.customCount = n
	return true
}

// CustomColor returns the custom slot at i, or black out of range.
func (r *Resolver) CustomColor(i int) RGB {
	if i < 0 || i >= PaletteSize {
		return RGB{}
	}
	return r.custom[i]
}

// CustomCount returns the number of active custom slots.
func (r *Resolver) CustomCount() int {
	return r.customCount
}

// Random returns a uniformly random color.
func (r *Resolver) Random() RGB {
	return RGB{
		R: uint8(r.rng.Intn(256)),
		G: uint8(r.rng.Intn(256)),
		B: uint8(r.rng.Intn(256)),
	}
}

// Resolve returns a snapshot of the colors for the given group. Unknown
// group values are clamped to the nearest valid group.
func (r *Resolver) Resolve(g Group) Palette {
	g = ClampGroup(g)

	var p Palette
	switch g {
	case GroupCustom:
		p.Colors = r.custom
		p.Count = r.customCount
	case GroupAll:
		p.Count = PaletteSize
		for i := 0; i < PaletteSize; i++ {
			p.Colors[i] = r.Random()
		}
	default:
		colors := presets[g]
		p.Count = len(colors)
		copy(p.Colors[:], colors)
	}
	return p
}
