package schema

import (
	"testing"

	"github.com/ledcor/ledcor/pkg/color"
	"github.com/ledcor/ledcor/pkg/protocol"
	"github.com/ledcor/ledcor/pkg/routine"
)

func TestCommands_EmptyPayload(t *testing.T) {
	if cmds := Commands(1, map[string]any{}, color.GroupCustom); len(cmds) != 0 {
		t.Errorf("empty payload produced %d commands", len(cmds))
	}
}

func TestCommands_FullPayloadOrder(t *testing.T) {
	payload := decodePayload(t, `{
		"power": true,
		"main_color": {"r": 10, "g": 20, "b": 30},
		"custom_colors": [{"index": 0, "r": 255, "g": 0, "b": 0}],
		"custom_color_count": 3,
		"brightness": 80,
		"speed": 150,
		"idle_timeout_minutes": 60,
		"routine": "multi_glimmer",
		"group": "fire",
		"param": 30
	}`)

	cmds := Commands(2, payload, color.GroupCustom)
	want := []protocol.Command{
		protocol.OnOff{Hardware: 2, On: true},
		protocol.MainColorChange{Hardware: 2, Color: color.RGB{R: 10, G: 20, B: 30}},
		protocol.CustomColorChange{Hardware: 2, Index: 0, Color: color.RGB{R: 255}},
		protocol.CustomColorCountChange{Hardware: 2, Count: 3},
		protocol.BrightnessChange{Hardware: 2, Brightness: 80},
		protocol.SpeedChange{Hardware: 2, Speed: 150},
		protocol.IdleTimeoutChange{Hardware: 2, Minutes: 60},
		protocol.ModeChange{Hardware: 2, Routine: routine.MultiGlimmer, Group: color.GroupFire, Param: 30, HasParam: true},
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d: %v", len(cmds), len(want), cmds)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d = %+v, want %+v", i, cmds[i], want[i])
		}
	}
}

func TestCommands_PartialPayloadTouchesOnlyNamedKeys(t *testing.T) {
	payload := decodePayload(t, `{"brightness": 25}`)
	cmds := Commands(1, payload, color.GroupCustom)
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	if cmds[0] != (protocol.BrightnessChange{Hardware: 1, Brightness: 25}) {
		t.Errorf("command = %+v", cmds[0])
	}
}

func TestCommands_RoutineKeepsCurrentGroup(t *testing.T) {
	payload := decodePayload(t, `{"routine": "multi_fade"}`)
	cmds := Commands(1, payload, color.GroupCMY)
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	mode, ok := cmds[0].(protocol.ModeChange)
	if !ok {
		t.Fatalf("command is %T, want ModeChange", cmds[0])
	}
	if mode.Group != color.GroupCMY {
		t.Errorf("group = %s, want cmy", mode.Group)
	}
	if mode.HasParam {
		t.Error("mode change carries a param the payload never named")
	}
}

func TestCommands_UnknownRoutineNameProducesNoModeChange(t *testing.T) {
	payload := decodePayload(t, `{"routine": "disco", "brightness": 10}`)
	cmds := Commands(1, payload, color.GroupCustom)
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want only the brightness change", len(cmds))
	}
	if _, ok := cmds[0].(protocol.BrightnessChange); !ok {
		t.Errorf("command is %T, want BrightnessChange", cmds[0])
	}
}
