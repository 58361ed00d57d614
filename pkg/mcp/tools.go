package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Health check
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Check the health status of the LED controller service"),
		),
		s.handleGetHealth,
	)

	// List devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List all attached LED devices with their current animation state"),
		),
		s.handleListDevices,
	)

	// Get device
	s.mcpServer.AddTool(
		mcp.NewTool("get_device",
			mcp.WithDescription("Get detailed information about one LED device by hardware index"),
			mcp.WithNumber("index",
				mcp.Required(),
				mcp.Description("Device hardware index (1-based)"),
			),
		),
		s.handleGetDevice,
	)

	// Get device state
	s.mcpServer.AddTool(
		mcp.NewTool("get_device_state",
			mcp.WithDescription("Get the current animation state of a device (power, routine, colors, brightness)"),
			mcp.WithNumber("index",
				mcp.Required(),
				mcp.Description("Device hardware index (1-based)"),
			),
		),
		s.handleGetDeviceState,
	)

	// Set device state
	s.mcpServer.AddTool(
		mcp.NewTool("set_device_state",
			mcp.WithDescription("Set the animation state of a device. Pass properties like power, routine, group, brightness, speed, main_color or custom_colors; fields you omit keep their current value."),
			mcp.WithNumber("index",
				mcp.Required(),
				mcp.Description("Device hardware index (1-based)"),
			),
			mcp.WithObject("state",
				mcp.Required(),
				mcp.Description("State properties to set (e.g. {\"routine\": \"multi_glimmer\", \"group\": \"fire\", \"brightness\": 80})"),
			),
		),
		s.handleSetDeviceState,
	)

	// Turn on (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("turn_on",
			mcp.WithDescription("Turn on an LED device, optionally setting brightness"),
			mcp.WithNumber("index",
				mcp.Required(),
				mcp.Description("Device hardware index (1-based)"),
			),
			mcp.WithNumber("brightness",
				mcp.Description("Brightness level 0-100 (optional)"),
			),
		),
		s.handleTurnOn,
	)

	// Turn off (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("turn_off",
			mcp.WithDescription("Turn off an LED device"),
			mcp.WithNumber("index",
				mcp.Required(),
				mcp.Description("Device hardware index (1-based)"),
			),
		),
		s.handleTurnOff,
	)

	// Raw frame injection
	s.mcpServer.AddTool(
		mcp.NewTool("send_packet",
			mcp.WithDescription("Send a raw ASCII protocol frame to the controller, exactly as a serial client would. Returns any response packets."),
			mcp.WithString("frame",
				mcp.Required(),
				mcp.Description("Raw frame, e.g. \"0,1,1;\" or \"DISCOVERY_PACKET;\""),
			),
		),
		s.handleSendPacket,
	)
}
