package protocol

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ledcor/ledcor/pkg/color"
	"github.com/ledcor/ledcor/pkg/routine"
)

// Frame delimiters. A frame carries one or more messages separated by
// '&', each message being comma-separated integers with an optional
// '#<crc>' suffix, and ends at ';'.
const (
	FrameDelimiter    = ';'
	MessageDelimiter  = '&'
	ValueDelimiter    = ','
	ChecksumDelimiter = '#'
)

// Codec validates and decodes inbound frames and builds outbound ones.
// A zero Codec speaks the protocol without checksums.
type Codec struct {
	UseChecksum bool
}

// IsDiscovery reports whether the frame is a plain-text discovery
// probe. Discovery is recognized before any integer parsing.
func IsDiscovery(frame []byte) bool {
	return strings.HasPrefix(strings.TrimSpace(string(frame)), DiscoveryToken)
}

// DecodeFrame decodes every valid message in one frame, in order. The
// frame must not include the trailing frame delimiter. Invalid
// messages are dropped silently; a frame never fails as a whole.
func (c Codec) DecodeFrame(frame []byte) []Command {
	if len(frame) == 0 || len(frame) > MaxFrameSize {
		return nil
	}
	if IsDiscovery(frame) {
		return []Command{Discovery{}}
	}

	var cmds []Command
	for _, msg := range strings.Split(strings.TrimSpace(string(frame)), string(MessageDelimiter)) {
		cmd, ok := c.decodeMessage(msg)
		if !ok {
			log.Debug().Str("message", msg).Msg("Dropping invalid message")
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (c Codec) decodeMessage(msg string) (Command, bool) {
	if msg == "" || !validCharset(msg) {
		return nil, false
	}

	payload := msg
	if c.UseChecksum {
		// exactly one checksum marker, covering the payload before it
		parts := strings.Split(msg, string(ChecksumDelimiter))
		if len(parts) != 2 {
			return nil, false
		}
		payload = parts[0]
		sum, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, false
		}
		if uint32(sum) != Checksum([]byte(payload)) {
			log.Debug().
				Uint32("received", uint32(sum)).
				Uint32("computed", Checksum([]byte(payload))).
				Msg("Checksum mismatch")
			return nil, false
		}
	}

	fields := strings.Split(payload, string(ValueDelimiter))
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}

	// every message carries at least a header and a hardware index
	if len(values) < 2 {
		return nil, false
	}
	header := Header(values[0])
	if header < 0 || header >= headerMax {
		return nil, false
	}
	hw := values[1]
	if hw < 0 {
		return nil, false
	}
	return buildCommand(header, hw, values[2:])
}

// validCharset accepts digits and the protocol's delimiters only.
func validCharset(msg string) bool {
	for i := 0; i < len(msg); i++ {
		b := msg[i]
		switch {
		case b >= '0' && b <= '9':
		case b == byte(ValueDelimiter), b == byte(ChecksumDelimiter), b == '-':
		default:
			return false
		}
	}
	return true
}

// buildCommand applies the per-header argument count and range checks.
// Only a fully valid message produces a command.
func buildCommand(h Header, hw int, args []int) (Command, bool) {
	switch h {
	case HeaderOnOff:
		if len(args) != 1 || (args[0] != 0 && args[0] != 1) {
			return nil, false
		}
		return OnOff{Hardware: hw, On: args[0] == 1}, true

	case HeaderModeChange:
		return buildModeChange(hw, args)

	case HeaderMainColorChange:
		if len(args) != 3 || !channelsValid(args) {
			return nil, false
		}
		return MainColorChange{Hardware: hw, Color: rgbFrom(args)}, true

	case HeaderCustomColorChange:
		if len(args) != 4 || args[0] < 0 || args[0] >= color.PaletteSize || !channelsValid(args[1:]) {
			return nil, false
		}
		return CustomColorChange{Hardware: hw, Index: args[0], Color: rgbFrom(args[1:])}, true

	case HeaderBrightnessChange:
		if len(args) != 1 || args[0] < 0 {
			return nil, false
		}
		b := args[0]
		if b > 100 {
			b = 100
		}
		return BrightnessChange{Hardware: hw, Brightness: b}, true

	case HeaderSpeedChange:
		if len(args) != 1 || args[0] < 0 || args[0] > 200 {
			return nil, false
		}
		return SpeedChange{Hardware: hw, Speed: args[0]}, true

	case HeaderIdleTimeoutChange:
		if len(args) != 1 || args[0] < 0 {
			return nil, false
		}
		return IdleTimeoutChange{Hardware: hw, Minutes: args[0]}, true

	case HeaderCustomColorCountChange:
		if len(args) != 1 || args[0] <= 1 || args[0] > color.PaletteSize {
			return nil, false
		}
		return CustomColorCountChange{Hardware: hw, Count: args[0]}, true

	case HeaderStateUpdateRequest:
		if len(args) != 0 {
			return nil, false
		}
		return StateUpdateRequest{Hardware: hw}, true

	case HeaderCustomArrayUpdateRequest:
		if len(args) != 0 {
			return nil, false
		}
		return CustomArrayUpdateRequest{Hardware: hw}, true

	case HeaderReset:
		if len(args) != 2 || args[0] != ResetKey1 || args[1] != ResetKey2 {
			return nil, false
		}
		return Reset{Hardware: hw}, true
	}
	return nil, false
}

func buildModeChange(hw int, args []int) (Command, bool) {
	if len(args) < 1 {
		return nil, false
	}
	rt := routine.Routine(args[0])
	if !routine.Valid(rt) {
		return nil, false
	}

	cmd := ModeChange{Hardware: hw, Routine: rt}
	rest := args[1:]

	if rt.IsMulti() {
		if len(rest) < 1 {
			return nil, false
		}
		g := rest[0]
		if g < 0 || g >= color.GroupCount() {
			return nil, false
		}
		cmd.Group = color.Group(g)
		rest = rest[1:]
	}

	switch len(rest) {
	case 0:
		return cmd, true
	case 1:
		if !paramValid(rt, rest[0]) {
			return nil, false
		}
		cmd.Param = rest[0]
		cmd.HasParam = true
		return cmd, true
	default:
		return nil, false
	}
}

// paramValid checks the optional routine tunable against the range of
// the setting it feeds.
func paramValid(rt routine.Routine, v int) bool {
	switch rt {
	case routine.SingleGlimmer, routine.MultiGlimmer:
		return v >= 0 && v <= 100
	case routine.SingleWave, routine.MultiBarsSolid, routine.MultiBarsMoving:
		return v > 0
	case routine.SingleBlink, routine.MultiRandomSolid:
		return v > 0
	case routine.SingleLinearFade, routine.SingleSineFade,
		routine.SingleSawtoothFadeIn, routine.SingleSawtoothFadeOut,
		routine.MultiFade:
		return v > 0
	default:
		// solid and random-individual routines take no tunable
		return false
	}
}

func channelsValid(vals []int) bool {
	for _, v := range vals {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

func rgbFrom(vals []int) color.RGB {
	return color.RGB{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2])}
}
