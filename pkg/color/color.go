package color

// RGB is a single LED color with 8-bit channels. It is a plain value;
// two colors with equal channels are the same color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Scaled returns the color with every channel scaled by percent/100
// using integer arithmetic. percent is expected to be in [0, 100].
func (c RGB) Scaled(percent int) RGB {
	return RGB{
		R: uint8(int(c.R) * percent / 100),
		G: uint8(int(c.G) * percent / 100),
		B: uint8(int(c.B) * percent / 100),
	}
}

// Dimmed returns the color with every channel divided by factor.
// A factor below 1 returns the color unchanged.
func (c RGB) Dimmed(factor int) RGB {
	if factor < 1 {
		return c
	}
	return RGB{
		R: uint8(int(c.R) / factor),
		G: uint8(int(c.G) / factor),
		B: uint8(int(c.B) / factor),
	}
}
