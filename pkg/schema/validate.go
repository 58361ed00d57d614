package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// controlSchema describes the JSON body accepted by the state-set
// endpoint and the MCP set_state tool. Routine and group names follow
// the identifiers the engine reports.
const controlSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"power": {"type": "boolean"},
		"routine": {"type": "string", "enum": [
			"off", "single_solid", "single_blink", "single_wave",
			"single_glimmer", "single_linear_fade", "single_sine_fade",
			"single_sawtooth_fade_in", "single_sawtooth_fade_out",
			"multi_glimmer", "multi_fade", "multi_random_solid",
			"multi_random_individual", "multi_bars_solid", "multi_bars_moving"
		]},
		"group": {"type": "string", "enum": [
			"custom", "water", "frozen", "snow", "cool", "warm", "fire",
			"evil", "corrosive", "poison", "rose", "pink_green",
			"red_white_blue", "rgb", "cmy", "six_color", "seven_color", "all"
		]},
		"brightness": {"type": "integer", "minimum": 0, "maximum": 100},
		"speed": {"type": "integer", "minimum": 0, "maximum": 200},
		"idle_timeout_minutes": {"type": "integer", "minimum": 0},
		"param": {"type": "integer", "minimum": 0},
		"custom_color_count": {"type": "integer", "minimum": 2, "maximum": 10},
		"main_color": {"$ref": "#/$defs/rgb"},
		"custom_colors": {
			"type": "array",
			"maxItems": 10,
			"items": {
				"type": "object",
				"properties": {
					"index": {"type": "integer", "minimum": 0, "maximum": 9},
					"r": {"type": "integer", "minimum": 0, "maximum": 255},
					"g": {"type": "integer", "minimum": 0, "maximum": 255},
					"b": {"type": "integer", "minimum": 0, "maximum": 255}
				},
				"required": ["index", "r", "g", "b"],
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false,
	"$defs": {
		"rgb": {
			"type": "object",
			"properties": {
				"r": {"type": "integer", "minimum": 0, "maximum": 255},
				"g": {"type": "integer", "minimum": 0, "maximum": 255},
				"b": {"type": "integer", "minimum": 0, "maximum": 255}
			},
			"required": ["r", "g", "b"],
			"additionalProperties": false
		}
	}
}`

// Validator validates control payloads against the bundled schema,
// compiling it once on first use.
type Validator struct {
	mu       sync.Mutex
	compiled *jsonschema.Schema
}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateControl validates a state-set payload. It returns nil for a
// valid payload, or an error describing the failures.
func (v *Validator) ValidateControl(payload map[string]any) error {
	compiled, err := v.compile()
	if err != nil {
		return fmt.Errorf("failed to compile control schema: %w", err)
	}
	return compiled.Validate(payload)
}

func (v *Validator) compile() (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.compiled != nil {
		return v.compiled, nil
	}

	var schemaMap any
	if err := json.Unmarshal([]byte(controlSchema), &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("control.json", schemaMap); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}
	compiled, err := c.Compile("control.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile: %w", err)
	}

	v.compiled = compiled
	return compiled, nil
}
