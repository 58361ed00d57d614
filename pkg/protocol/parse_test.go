package protocol

import (
	"strings"
	"testing"

	"github.com/ledcor/ledcor/pkg/color"
	"github.com/ledcor/ledcor/pkg/routine"
)

func decodeOne(t *testing.T, c Codec, msg string) Command {
	t.Helper()
	cmds := c.DecodeFrame([]byte(msg))
	if len(cmds) != 1 {
		t.Fatalf("DecodeFrame(%q) produced %d commands, want 1", msg, len(cmds))
	}
	return cmds[0]
}

func TestDecode_OnOff(t *testing.T) {
	cmd := decodeOne(t, Codec{}, "0,1,1")
	on, ok := cmd.(OnOff)
	if !ok {
		t.Fatalf("decoded %T, want OnOff", cmd)
	}
	if on.Hardware != 1 || !on.On {
		t.Errorf("OnOff = %+v, want device 1 on", on)
	}
}

func TestDecode_ModeChangeSingle(t *testing.T) {
	cmd := decodeOne(t, Codec{}, "1,2,4")
	mode, ok := cmd.(ModeChange)
	if !ok {
		t.Fatalf("decoded %T, want ModeChange", cmd)
	}
	if mode.Hardware != 2 || mode.Routine != routine.SingleGlimmer || mode.HasParam {
		t.Errorf("ModeChange = %+v", mode)
	}
}

func TestDecode_ModeChangeMultiWithGroup(t *testing.T) {
	cmd := decodeOne(t, Codec{}, "1,1,9,6")
	mode := cmd.(ModeChange)
	if mode.Routine != routine.MultiGlimmer || mode.Group != color.GroupFire {
		t.Errorf("ModeChange = %+v, want multi glimmer over fire", mode)
	}
}

func TestDecode_ModeChangeWithParam(t *testing.T) {
	cmd := decodeOne(t, Codec{}, "1,1,9,6,45")
	mode := cmd.(ModeChange)
	if !mode.HasParam || mode.Param != 45 {
		t.Errorf("ModeChange = %+v, want glimmer param 45", mode)
	}
}

func TestDecode_MainColorChange(t *testing.T) {
	cmd := decodeOne(t, Codec{}, "2,1,255,127,0")
	mc := cmd.(MainColorChange)
	want := color.RGB{R: 255, G: 127, B: 0}
	if mc.Color != want {
		t.Errorf("color = %v, want %v", mc.Color, want)
	}
}

func TestDecode_BrightnessClampsAbove100(t *testing.T) {
	cmd := decodeOne(t, Codec{}, "4,1,240")
	b := cmd.(BrightnessChange)
	if b.Brightness != 100 {
		t.Errorf("brightness = %d, want clamped 100", b.Brightness)
	}
}

func TestDecode_Reset(t *testing.T) {
	cmd := decodeOne(t, Codec{}, "10,0,42,71")
	if _, ok := cmd.(Reset); !ok {
		t.Fatalf("decoded %T, want Reset", cmd)
	}
}

func TestDecode_Discovery(t *testing.T) {
	cmds := Codec{UseChecksum: true}.DecodeFrame([]byte("DISCOVERY_PACKET"))
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	if _, ok := cmds[0].(Discovery); !ok {
		t.Fatalf("decoded %T, want Discovery", cmds[0])
	}
}

func TestDecode_MultiMessageFrameDropsOnlyInvalid(t *testing.T) {
	// middle message has a bad header
	cmds := Codec{}.DecodeFrame([]byte("0,1,1&99,1,1&4,2,80"))
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	if _, ok := cmds[0].(OnOff); !ok {
		t.Errorf("first command is %T, want OnOff", cmds[0])
	}
	if _, ok := cmds[1].(BrightnessChange); !ok {
		t.Errorf("second command is %T, want BrightnessChange", cmds[1])
	}
}

func TestDecode_InvalidMessages(t *testing.T) {
	c := Codec{}
	cases := []struct {
		name string
		msg  string
	}{
		{"empty", ""},
		{"letters", "on,1,1"},
		{"missing hardware index", "0"},
		{"negative hardware index", "0,-1,1"},
		{"unknown header", "11,1"},
		{"negative header", "-1,1"},
		{"on off bad flag", "0,1,2"},
		{"on off extra args", "0,1,1,1"},
		{"mode invalid routine", "1,1,15"},
		{"mode multi missing group", "1,1,9"},
		{"mode group out of range", "1,1,9,18"},
		{"mode solid with param", "1,1,1,5"},
		{"mode glimmer param above 100", "1,1,9,6,101"},
		{"main color channel above 255", "2,1,256,0,0"},
		{"main color negative channel", "2,1,-1,0,0"},
		{"main color wrong arity", "2,1,10,20"},
		{"custom color bad slot", "3,1,10,1,2,3"},
		{"negative brightness", "4,1,-1"},
		{"speed above 200", "5,1,201"},
		{"negative timeout", "6,1,-5"},
		{"custom count of one", "7,1,1"},
		{"custom count above capacity", "7,1,11"},
		{"state request with args", "8,1,3"},
		{"reset wrong keys", "10,1,42,70"},
	}
	for _, tc := range cases {
		if cmds := c.DecodeFrame([]byte(tc.msg)); len(cmds) != 0 {
			t.Errorf("%s: %q decoded to %d commands, want drop", tc.name, tc.msg, len(cmds))
		}
	}
}

func TestDecode_OversizeFrameDropped(t *testing.T) {
	frame := []byte("0,1,1&" + strings.Repeat("4,1,50&", 100) + "0,1,0")
	if len(frame) <= MaxFrameSize {
		t.Fatal("test frame not oversize")
	}
	if cmds := (Codec{}).DecodeFrame(frame); cmds != nil {
		t.Errorf("oversize frame decoded to %d commands, want none", len(cmds))
	}
}

func TestDecode_ChecksumRequiredWhenEnabled(t *testing.T) {
	c := Codec{UseChecksum: true}
	if cmds := c.DecodeFrame([]byte("0,1,1")); len(cmds) != 0 {
		t.Error("unsigned message accepted by checksum codec")
	}
}

func TestDecode_ChecksumRoundtrip(t *testing.T) {
	c := Codec{UseChecksum: true}
	commands := []Command{
		OnOff{Hardware: 1, On: true},
		ModeChange{Hardware: 2, Routine: routine.MultiBarsMoving, Group: color.GroupCMY},
		MainColorChange{Hardware: 0, Color: color.RGB{R: 10, G: 20, B: 30}},
		CustomColorChange{Hardware: 1, Index: 3, Color: color.RGB{R: 1, G: 2, B: 3}},
		BrightnessChange{Hardware: 1, Brightness: 85},
		SpeedChange{Hardware: 1, Speed: 150},
		IdleTimeoutChange{Hardware: 1, Minutes: 60},
		CustomColorCountChange{Hardware: 1, Count: 5},
		StateUpdateRequest{Hardware: 0},
		CustomArrayUpdateRequest{Hardware: 2},
		Reset{Hardware: 0},
	}
	for _, want := range commands {
		frame := strings.TrimSuffix(c.EncodeCommand(want), string(FrameDelimiter))
		got := decodeOne(t, c, frame)
		if got != want {
			t.Errorf("roundtrip of %+v produced %+v", want, got)
		}
	}
}

func TestDecode_CorruptedChecksumRejected(t *testing.T) {
	c := Codec{UseChecksum: true}
	frame := strings.TrimSuffix(c.EncodeCommand(BrightnessChange{Hardware: 1, Brightness: 85}), string(FrameDelimiter))

	// flip one digit in the payload, keeping the charset valid
	for i := 0; i < len(frame); i++ {
		if frame[i] < '0' || frame[i] > '9' {
			continue
		}
		mutated := []byte(frame)
		mutated[i] = '0' + (mutated[i]-'0'+1)%10
		if cmds := c.DecodeFrame(mutated); len(cmds) != 0 {
			// a flip inside the checksum digits can still parse as a
			// different number; it must then fail the comparison, so
			// any decoded command here is a defect
			t.Errorf("corrupted frame %q was accepted", mutated)
		}
	}
}

func TestDecode_DoubleChecksumMarkerRejected(t *testing.T) {
	c := Codec{UseChecksum: true}
	if cmds := c.DecodeFrame([]byte("0,1,1#123#123")); len(cmds) != 0 {
		t.Error("message with two checksum markers accepted")
	}
}
