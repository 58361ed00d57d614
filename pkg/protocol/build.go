package protocol

import (
	"strconv"
	"strings"

	"github.com/ledcor/ledcor/pkg/color"
	"github.com/ledcor/ledcor/pkg/routine"
)

// Protocol version advertised in discovery packets.
const (
	VersionMajor = 3
	VersionMinor = 0
)

// DeviceInfo is the per-device portion of a discovery packet.
type DeviceInfo struct {
	Name        string
	LightType   int
	ProductType int
}

// DiscoveryInfo is the capability summary answered to a discovery probe.
type DiscoveryInfo struct {
	UseChecksum  bool
	Capabilities int
	MaxFrameSize int
	Devices      []DeviceInfo
}

// DeviceState is the per-device portion of a state packet.
type DeviceState struct {
	Index               int
	IsOn                bool
	Reachable           bool
	MainColor           color.RGB
	Routine             routine.Routine
	Group               color.Group
	Brightness          int
	Speed               int
	IdleTimeoutMinutes  int
	MinutesUntilTimeout int
}

// CustomArrayState is the payload of a custom-array packet.
type CustomArrayState struct {
	Index  int
	Count  int
	Colors []color.RGB
}

// BuildDiscoveryPacket builds the plain-text discovery answer: the
// token, protocol version, checksum flag, capabilities, max frame
// size, device count, then name/light-type/product-type per device.
func (c Codec) BuildDiscoveryPacket(info DiscoveryInfo) string {
	fields := []string{
		DiscoveryToken,
		strconv.Itoa(VersionMajor),
		strconv.Itoa(VersionMinor),
		boolField(info.UseChecksum),
		strconv.Itoa(info.Capabilities),
		strconv.Itoa(info.MaxFrameSize),
		strconv.Itoa(len(info.Devices)),
	}
	for _, d := range info.Devices {
		fields = append(fields, d.Name, strconv.Itoa(d.LightType), strconv.Itoa(d.ProductType))
	}
	return c.finish(strings.Join(fields, string(ValueDelimiter)))
}

// BuildStatePacket builds one state message per device, joined into a
// single frame.
func (c Codec) BuildStatePacket(states []DeviceState) string {
	msgs := make([]string, 0, len(states))
	for _, s := range states {
		msgs = append(msgs, c.sign(joinInts(
			int(HeaderStateUpdateRequest),
			s.Index,
			boolInt(s.IsOn),
			boolInt(s.Reachable),
			int(s.MainColor.R), int(s.MainColor.G), int(s.MainColor.B),
			int(s.Routine),
			int(s.Group),
			s.Brightness,
			s.Speed,
			s.IdleTimeoutMinutes,
			s.MinutesUntilTimeout,
		)))
	}
	return strings.Join(msgs, string(MessageDelimiter)) + string(FrameDelimiter)
}

// BuildCustomArrayPacket builds the custom-array message for one
// device: index, active count, then three channels per custom color.
func (c Codec) BuildCustomArrayPacket(s CustomArrayState) string {
	vals := []int{int(HeaderCustomArrayUpdateRequest), s.Index, s.Count}
	for _, col := range s.Colors {
		vals = append(vals, int(col.R), int(col.G), int(col.B))
	}
	return c.finish(joinInts(vals...))
}

// EncodeCommand renders a command back into its canonical message form
// with the checksum re-appended, for echoing to the sender.
func (c Codec) EncodeCommand(cmd Command) string {
	var vals []int
	switch v := cmd.(type) {
	case OnOff:
		vals = []int{int(HeaderOnOff), v.Hardware, boolInt(v.On)}
	case ModeChange:
		vals = []int{int(HeaderModeChange), v.Hardware, int(v.Routine)}
		if v.Routine.IsMulti() {
			vals = append(vals, int(v.Group))
		}
		if v.HasParam {
			vals = append(vals, v.Param)
		}
	case MainColorChange:
		vals = []int{int(HeaderMainColorChange), v.Hardware,
			int(v.Color.R), int(v.Color.G), int(v.Color.B)}
	case CustomColorChange:
		vals = []int{int(HeaderCustomColorChange), v.Hardware, v.Index,
			int(v.Color.R), int(v.Color.G), int(v.Color.B)}
	case BrightnessChange:
		vals = []int{int(HeaderBrightnessChange), v.Hardware, v.Brightness}
	case SpeedChange:
		vals = []int{int(HeaderSpeedChange), v.Hardware, v.Speed}
	case IdleTimeoutChange:
		vals = []int{int(HeaderIdleTimeoutChange), v.Hardware, v.Minutes}
	case CustomColorCountChange:
		vals = []int{int(HeaderCustomColorCountChange), v.Hardware, v.Count}
	case StateUpdateRequest:
		vals = []int{int(HeaderStateUpdateRequest), v.Hardware}
	case CustomArrayUpdateRequest:
		vals = []int{int(HeaderCustomArrayUpdateRequest), v.Hardware}
	case Reset:
		vals = []int{int(HeaderReset), v.Hardware, ResetKey1, ResetKey2}
	default:
		return ""
	}
	return c.finish(joinInts(vals...))
}

// sign appends the checksum suffix to one message when enabled.
func (c Codec) sign(payload string) string {
	if !c.UseChecksum {
		return payload
	}
	sum := Checksum([]byte(payload))
	return payload + string(ChecksumDelimiter) + strconv.FormatUint(uint64(sum), 10)
}

// finish signs a single-message payload and terminates the frame.
func (c Codec) finish(payload string) string {
	return c.sign(payload) + string(FrameDelimiter)
}

func joinInts(vals ...int) string {
	fields := make([]string, len(vals))
	for i, v := range vals {
		fields[i] = strconv.Itoa(v)
	}
	return strings.Join(fields, string(ValueDelimiter))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func boolField(b bool) string {
	return strconv.Itoa(boolInt(b))
}
