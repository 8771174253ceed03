// Package api exposes the dashboard's controllers to non-interactive
// callers such as the command line and the MCP tools.
//
// Every call goes through the same shell, registry and controllers as the
// TUI, so a mode activated from an agent follows the same once-per-entry
// rule as one opened from the drawer. Calls are serialized; each one waits
// for the remote writes it caused before returning their outcome.
package api
