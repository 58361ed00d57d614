package schema

import (
	"github.com/ledcor/ledcor/pkg/color"
	"github.com/ledcor/ledcor/pkg/protocol"
	"github.com/ledcor/ledcor/pkg/routine"
)

// Commands translates a validated control payload into protocol
// commands for one device. Keys absent from the payload produce no
// command, so a partial payload only touches what it names. Order
// matters: colors and tunables land before the routine change that
// uses them. A routine change without an explicit group keeps
// currentGroup.
func Commands(index int, payload map[string]any, currentGroup color.Group) []protocol.Command {
	var cmds []protocol.Command

	if v, ok := payload["power"].(bool); ok {
		cmds = append(cmds, protocol.OnOff{Hardware: index, On: v})
	}
	if m, ok := payload["main_color"].(map[string]any); ok {
		cmds = append(cmds, protocol.MainColorChange{
			Hardware: index,
			Color:    rgbField(m),
		})
	}
	if list, ok := payload["custom_colors"].([]any); ok {
		for _, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			cmds = append(cmds, protocol.CustomColorChange{
				Hardware: index,
				Index:    intField(m, "index"),
				Color:    rgbField(m),
			})
		}
	}
	if _, ok := payload["custom_color_count"]; ok {
		cmds = append(cmds, protocol.CustomColorCountChange{
			Hardware: index,
			Count:    intField(payload, "custom_color_count"),
		})
	}
	if _, ok := payload["brightness"]; ok {
		cmds = append(cmds, protocol.BrightnessChange{
			Hardware:   index,
			Brightness: intField(payload, "brightness"),
		})
	}
	if _, ok := payload["speed"]; ok {
		cmds = append(cmds, protocol.SpeedChange{
			Hardware: index,
			Speed:    intField(payload, "speed"),
		})
	}
	if _, ok := payload["idle_timeout_minutes"]; ok {
		cmds = append(cmds, protocol.IdleTimeoutChange{
			Hardware: index,
			Minutes:  intField(payload, "idle_timeout_minutes"),
		})
	}
	if name, ok := payload["routine"].(string); ok {
		if rt, valid := routine.Parse(name); valid {
			mode := protocol.ModeChange{Hardware: index, Routine: rt, Group: currentGroup}
			if gname, ok := payload["group"].(string); ok {
				if g, valid := color.ParseGroup(gname); valid {
					mode.Group = g
				}
			}
			if _, ok := payload["param"]; ok {
				mode.Param = intField(payload, "param")
				mode.HasParam = true
			}
			cmds = append(cmds, mode)
		}
	}

	return cmds
}

// intField reads a JSON number as an int. JSON decoding into any
// yields float64 for every number.
func intField(m map[string]any, key string) int {
	if f, ok := m[key].(float64); ok {
		return int(f)
	}
	return 0
}

func rgbField(m map[string]any) color.RGB {
	return color.RGB{
		R: uint8(intField(m, "r")),
		G: uint8(intField(m, "g")),
		B: uint8(intField(m, "b")),
	}
}
