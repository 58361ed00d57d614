package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ledcor/ledcor/pkg/protocol"
	"github.com/ledcor/ledcor/pkg/schema"
)

func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := s.controller.DeviceCount()

	status := "healthy"
	if count == 0 {
		status = "degraded"
	}

	out := GetHealthOutput{
		Status:    status,
		Devices:   count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleListDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries := s.controller.Devices()

	infos := make([]DeviceInfo, 0, len(summaries))
	for _, summary := range summaries {
		infos = append(infos, SummaryToInfo(summary))
	}

	out := ListDevicesOutput{
		Devices: infos,
		Count:   len(infos),
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDevice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := requiredIndex(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary, err := s.controller.Device(index)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", err)), nil
	}

	out := GetDeviceOutput{Device: SummaryToInfo(summary)}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleGetDeviceState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := requiredIndex(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary, err := s.controller.Device(index)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", err)), nil
	}

	out := GetDeviceStateOutput{
		Index: index,
		State: stateToOutput(summary.State),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSetDeviceState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := requiredIndex(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()

	// Extract state from args. It can be passed as a nested "state"
	// object or as flat args.
	stateMap := map[string]any{}
	if stateRaw, ok := args["state"]; ok {
		if sm, ok := stateRaw.(map[string]any); ok {
			stateMap = sm
		}
	} else {
		for k, v := range args {
			if k != "index" {
				stateMap[k] = v
			}
		}
	}

	summary, err := s.controller.Device(index)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", err)), nil
	}

	if err := s.validator.ValidateControl(stateMap); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation error: %s", err)), nil
	}

	for _, cmd := range schema.Commands(index, stateMap, summary.State.Group) {
		s.controller.Dispatch(cmd)
	}

	summary, err = s.controller.Device(index)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read back state: %s", err)), nil
	}

	out := SetDeviceStateOutput{
		Index: index,
		State: stateToOutput(summary.State),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleTurnOn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := requiredIndex(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := s.controller.Device(index); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", err)), nil
	}

	if b, ok := request.GetArguments()["brightness"]; ok {
		if bf, ok := b.(float64); ok {
			s.controller.Dispatch(protocol.BrightnessChange{Hardware: index, Brightness: int(bf)})
		}
	}
	s.controller.Dispatch(protocol.OnOff{Hardware: index, On: true})

	summary, err := s.controller.Device(index)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read back state: %s", err)), nil
	}

	out := TurnOnOutput{
		Index: index,
		State: stateToOutput(summary.State),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleTurnOff(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := requiredIndex(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := s.controller.Device(index); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("device not found: %s", err)), nil
	}

	s.controller.Dispatch(protocol.OnOff{Hardware: index, On: false})

	summary, err := s.controller.Device(index)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read back state: %s", err)), nil
	}

	out := TurnOffOutput{
		Index: index,
		State: stateToOutput(summary.State),
	}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

func (s *Server) handleSendPacket(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	frame, err := requiredString(request, "frame")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responses := s.controller.Process([]byte(frame))
	if responses == nil {
		responses = []string{}
	}

	out := SendPacketOutput{Responses: responses}
	return mcp.NewToolResultText(formatJSON(out)), nil
}

// --- helpers ---

func requiredIndex(request mcp.CallToolRequest) (int, error) {
	args := request.GetArguments()
	v, ok := args["index"]
	if !ok || v == nil {
		return 0, fmt.Errorf("required parameter %q is missing", "index")
	}
	f, ok := v.(float64)
	if !ok || f < 1 {
		return 0, fmt.Errorf("parameter %q must be a positive integer", "index")
	}
	return int(f), nil
}

func requiredString(request mcp.CallToolRequest, key string) (string, error) {
	args := request.GetArguments()
	v, ok := args[key]
	if !ok || v == nil {
		return "", fmt.Errorf("required parameter %q is missing", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal response: %s"}`, err)
	}
	return string(b)
}
