package model

import (
	"time"

	"lumictl/internal/lighting"
	"lumictl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenForLogEntriesCmd waits for the next log entry. It is re-issued after
// every NewLogEntryMsg.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return ChannelClosedMsg{Name: "log"}
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ChannelReaderCmd waits for the next dispatch outcome. It is re-issued after
// every DispatchResultMsg.
func ChannelReaderCmd(ch <-chan lighting.Result) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return ChannelClosedMsg{Name: "results"}
		}
		return DispatchResultMsg{Result: res}
	}
}

// GestureIdleCmd schedules the idle completion check for light.
func GestureIdleCmd(idle time.Duration, light lighting.LightID, seq uint64) tea.Cmd {
	return tea.Tick(idle, func(time.Time) tea.Msg {
		return GestureIdleMsg{Light: light, Seq: seq}
	})
}

// NavigateCmd requests a route change through the update loop.
func NavigateCmd(route string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}
