package schema

import (
	"encoding/json"
	"testing"
)

func decodePayload(t *testing.T, body string) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return payload
}

func TestValidateControl_FullPayload(t *testing.T) {
	v := NewValidator()
	payload := decodePayload(t, `{
		"power": true,
		"routine": "multi_glimmer",
		"group": "fire",
		"brightness": 80,
		"speed": 150,
		"idle_timeout_minutes": 60,
		"param": 30,
		"custom_color_count": 3,
		"main_color": {"r": 255, "g": 127, "b": 0},
		"custom_colors": [
			{"index": 0, "r": 255, "g": 0, "b": 0},
			{"index": 1, "r": 0, "g": 255, "b": 0}
		]
	}`)
	if err := v.ValidateControl(payload); err != nil {
		t.Errorf("full payload rejected: %v", err)
	}
}

func TestValidateControl_EmptyPayload(t *testing.T) {
	v := NewValidator()
	if err := v.ValidateControl(decodePayload(t, `{}`)); err != nil {
		t.Errorf("empty payload rejected: %v", err)
	}
}

func TestValidateControl_UnknownRoutine(t *testing.T) {
	v := NewValidator()
	if err := v.ValidateControl(decodePayload(t, `{"routine": "disco"}`)); err == nil {
		t.Error("unknown routine accepted")
	}
}

func TestValidateControl_UnknownGroup(t *testing.T) {
	v := NewValidator()
	if err := v.ValidateControl(decodePayload(t, `{"group": "lava"}`)); err == nil {
		t.Error("unknown group accepted")
	}
}

func TestValidateControl_BrightnessOutOfRange(t *testing.T) {
	v := NewValidator()
	if err := v.ValidateControl(decodePayload(t, `{"brightness": 101}`)); err == nil {
		t.Error("brightness above 100 accepted")
	}
	if err := v.ValidateControl(decodePayload(t, `{"brightness": -1}`)); err == nil {
		t.Error("negative brightness accepted")
	}
}

func TestValidateControl_SpeedOutOfRange(t *testing.T) {
	v := NewValidator()
	if err := v.ValidateControl(decodePayload(t, `{"speed": 201}`)); err == nil {
		t.Error("speed above 200 accepted")
	}
}

func TestValidateControl_CustomColorCountOfOne(t *testing.T) {
	v := NewValidator()
	if err := v.ValidateControl(decodePayload(t, `{"custom_color_count": 1}`)); err == nil {
		t.Error("custom color count of one accepted")
	}
}

func TestValidateControl_ChannelOutOfRange(t *testing.T) {
	v := NewValidator()
	payload := decodePayload(t, `{"main_color": {"r": 256, "g": 0, "b": 0}}`)
	if err := v.ValidateControl(payload); err == nil {
		t.Error("channel above 255 accepted")
	}
}

func TestValidateControl_MissingChannel(t *testing.T) {
	v := NewValidator()
	payload := decodePayload(t, `{"main_color": {"r": 10, "g": 20}}`)
	if err := v.ValidateControl(payload); err == nil {
		t.Error("color without a blue channel accepted")
	}
}

func TestValidateControl_CustomColorWithoutIndex(t *testing.T) {
	v := NewValidator()
	payload := decodePayload(t, `{"custom_colors": [{"r": 1, "g": 2, "b": 3}]}`)
	if err := v.ValidateControl(payload); err == nil {
		t.Error("custom color without an index accepted")
	}
}

func TestValidateControl_UnknownKeyRejected(t *testing.T) {
	v := NewValidator()
	if err := v.ValidateControl(decodePayload(t, `{"color": "red"}`)); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestValidateControl_NonIntegerBrightness(t *testing.T) {
	v := NewValidator()
	if err := v.ValidateControl(decodePayload(t, `{"brightness": 50.5}`)); err == nil {
		t.Error("fractional brightness accepted")
	}
}
