// Package tools describes the lighting controls as MCP tools and adapts
// tool calls onto api.LightingAPI.
package tools
