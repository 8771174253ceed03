package controller

import (
	"fmt"
	"time"

	"lumictl/internal/lighting"
	"lumictl/internal/tui/model"
	"lumictl/internal/tui/view"
	"lumictl/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update is the entry point used by AppModel.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch routes every Bubble Tea message to its handler.
// It is the only place where controllers are driven from the dashboard, so
// all controller calls happen on the update goroutine.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg, model.GestureIdleMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.CurrentAppMode != model.ModeLogOverlay) {
			return quit(m)
		}
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.NavigateMsg:
		return navigateTo(m, msg.Route)

	case model.GestureIdleMsg:
		return handleGestureIdle(m, msg)

	case model.DispatchResultMsg:
		m, cmd = handleDispatchResult(m, msg.Result)
		cmds = append(cmds, cmd, model.ChannelReaderCmd(m.Results))

	case model.ChannelClosedMsg:
		LogDebug(m, controllerDispatchSubsystem, "%s channel closed", msg.Name)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
		return m, nil

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))
	}

	if m.ActivityLogDirty || m.LogViewportLastWidth != m.LogViewport.Width {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if m.CurrentAppMode != model.ModeLogOverlay || m.LogViewport.AtBottom() {
			m.LogViewport.GotoBottom()
		}
		m.LogViewportLastWidth = m.LogViewport.Width
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Leaving dashboard..."
	m.QuitApp = true
	if m.Shell != nil {
		m.Shell.Leave()
	}
	return m, tea.Quit
}

// handleDispatchResult feeds activation outcomes back to the mounted view and
// reports every outcome on the status bar. Nothing is retried.
func handleDispatchResult(m *model.Model, res lighting.Result) (*model.Model, tea.Cmd) {
	if m.Shell != nil {
		m.Shell.Resolve(res)
	}

	req := res.Request
	if res.Err != nil {
		var text string
		switch req.Op {
		case lighting.OpActivateMode:
			text = fmt.Sprintf("Failed to activate %s: %v", req.Mode, res.Err)
		case lighting.OpSetLightColor:
			text = fmt.Sprintf("Failed to set %s: %v", req.Light, res.Err)
		default:
			text = fmt.Sprintf("%s failed: %v", req, res.Err)
		}
		return m, m.SetStatusMessage(text, model.StatusBarError, 5*time.Second)
	}

	switch req.Op {
	case lighting.OpActivateMode:
		return m, m.SetStatusMessage(fmt.Sprintf("%s active", req.Mode), model.StatusBarSuccess, 3*time.Second)
	case lighting.OpSetLightColor:
		return m, m.SetStatusMessage(fmt.Sprintf("%s set to %s", req.Light, req.Color.Hex()), model.StatusBarInfo, 2*time.Second)
	}
	return m, nil
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	if entry.Level >= logging.LevelInfo || m.DebugMode {
		logLine := fmt.Sprintf("%s [%s] [%s] %s",
			entry.Timestamp.Format("15:04:05.000"),
			entry.Level.String(),
			entry.Subsystem,
			entry.Message)

		if entry.Err != nil {
			logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
		}
		model.AddRawLineToActivityLog(m, logLine)
	}
	return m
}
