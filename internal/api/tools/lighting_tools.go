package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"lumictl/internal/api"
	"lumictl/internal/lighting"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// LightingTools provides MCP tools for driving the rig
type LightingTools struct {
	lightingAPI api.LightingAPI
}

// NewLightingTools creates the tool set over a.
func NewLightingTools(a api.LightingAPI) *LightingTools {
	return &LightingTools{lightingAPI: a}
}

// GetTools returns all lighting tools
func (lt *LightingTools) GetTools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("list_modes",
			mcp.WithDescription("List the registered lighting modes and which one is active"),
		),
		mcp.NewTool("activate_mode",
			mcp.WithDescription("Open a lighting mode. Re-opening the active mode does nothing"),
			mcp.WithString("route",
				mcp.Required(),
				mcp.Description("Route key of the mode, e.g. rainbow or /mode/off"),
			),
		),
		mcp.NewTool("set_light_color",
			mcp.WithDescription("Set one light to an RGB color (channels in 0..1)"),
			mcp.WithString("light",
				mcp.Required(),
				mcp.Description("Light id, e.g. TOP"),
			),
			mcp.WithNumber("r", mcp.Required(), mcp.Description("Red channel, 0..1")),
			mcp.WithNumber("g", mcp.Required(), mcp.Description("Green channel, 0..1")),
			mcp.WithNumber("b", mcp.Required(), mcp.Description("Blue channel, 0..1")),
		),
		mcp.NewTool("get_light_color",
			mcp.WithDescription("Get the last committed color of a light"),
			mcp.WithString("light",
				mcp.Required(),
				mcp.Description("Light id, e.g. TOP"),
			),
		),
	}
}

// Register adds every tool with its handler to s.
func (lt *LightingTools) Register(s *server.MCPServer) {
	handlers := map[string]server.ToolHandlerFunc{
		"list_modes":      lt.HandleListModes,
		"activate_mode":   lt.HandleActivateMode,
		"set_light_color": lt.HandleSetLightColor,
		"get_light_color": lt.HandleGetLightColor,
	}
	for _, tool := range lt.GetTools() {
		s.AddTool(tool, handlers[tool.Name])
	}
}

// HandleListModes handles the list_modes tool call
func (lt *LightingTools) HandleListModes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	modes := lt.lightingAPI.ListModes(ctx)
	return jsonResult(map[string]interface{}{
		"modes": modes,
		"total": len(modes),
	})
}

// HandleActivateMode handles the activate_mode tool call
func (lt *LightingTools) HandleActivateMode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	route, err := req.RequireString("route")
	if err != nil {
		return mcp.NewToolResultError("route is required"), nil
	}

	status, err := lt.lightingAPI.ActivateMode(ctx, route)
	if err != nil {
		if errors.Is(err, lighting.ErrUnknownRoute) {
			return mcp.NewToolResultError(fmt.Sprintf("Unknown mode '%s'", route)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Failed to activate mode: %v", err)), nil
	}
	return jsonResult(status)
}

// HandleSetLightColor handles the set_light_color tool call
func (lt *LightingTools) HandleSetLightColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	light, err := req.RequireString("light")
	if err != nil {
		return mcp.NewToolResultError("light is required"), nil
	}
	var c lighting.Color
	for _, ch := range lighting.Channels() {
		name := strings.ToLower(ch.String())
		v, err := req.RequireFloat(name)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s is required", name)), nil
		}
		c = c.With(ch, v)
	}

	status, err := lt.lightingAPI.SetLightColor(ctx, light, c)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to set light color: %v", err)), nil
	}
	return jsonResult(status)
}

// HandleGetLightColor handles the get_light_color tool call
func (lt *LightingTools) HandleGetLightColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	light, err := req.RequireString("light")
	if err != nil {
		return mcp.NewToolResultError("light is required"), nil
	}
	status, err := lt.lightingAPI.GetLightColor(ctx, light)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get light color: %v", err)), nil
	}
	return jsonResult(status)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	resultJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}
