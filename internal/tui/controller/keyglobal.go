package controller

import (
	"fmt"
	"strings"
	"time"

	"lumictl/internal/tui/model"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses outside of text input.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch keyMsg.String() {
		case "L", "esc":
			m.CurrentAppMode = model.ModeMainDashboard
			return m, nil
		case "y":
			if err := clipboardWrite(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(controllerSubsystem, err, "Failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, 3*time.Second)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, 3*time.Second)
		case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		default:
			return m, nil
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay && key.Matches(keyMsg, m.Keys.Esc) {
		m.CurrentAppMode = model.ModeMainDashboard
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		if m.CurrentAppMode == model.ModeHelpOverlay {
			m.CurrentAppMode = model.ModeMainDashboard
		} else {
			m.CurrentAppMode = model.ModeHelpOverlay
		}
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDark):
		currentIsDark := lipgloss.HasDarkBackground()
		lipgloss.SetHasDarkBackground(!currentIsDark)
		m.ColorMode = fmt.Sprintf("%s (Dark: %v)", lipgloss.ColorProfile().String(), !currentIsDark)
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(keyMsg, m.Keys.CopyColor):
		return copyFocusedColor(m)
	case key.Matches(keyMsg, m.Keys.Tab):
		return toggleFocus(m), nil
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		return m, nil
	}

	if m.Focus == model.FocusControls {
		return handleControlsKey(m, keyMsg)
	}
	return handleDrawerKey(m, keyMsg)
}

func handleDrawerKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Enter), key.Matches(keyMsg, m.Keys.Right):
		route, ok := model.SelectedDrawerKey(m.Drawer)
		if !ok {
			return m, nil
		}
		var cmd tea.Cmd
		m, cmd = navigateTo(m, route)
		if cur := m.Shell.Current(); cur != nil && cur.Entry.Manual() && m.UnknownRoute == "" {
			m.Focus = model.FocusControls
		}
		return m, cmd
	case key.Matches(keyMsg, m.Keys.Up), key.Matches(keyMsg, m.Keys.Down):
		var cmd tea.Cmd
		m.Drawer, cmd = m.Drawer.Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

func handleControlsKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		moveChannelFocus(m, -1)
	case key.Matches(keyMsg, m.Keys.Down):
		moveChannelFocus(m, 1)
	case key.Matches(keyMsg, m.Keys.CoarseLeft):
		return nudgeFocused(m, -m.Step*model.CoarseStepFactor)
	case key.Matches(keyMsg, m.Keys.CoarseRight):
		return nudgeFocused(m, m.Step*model.CoarseStepFactor)
	case key.Matches(keyMsg, m.Keys.Left):
		return nudgeFocused(m, -m.Step)
	case key.Matches(keyMsg, m.Keys.Right):
		return nudgeFocused(m, m.Step)
	case key.Matches(keyMsg, m.Keys.Enter):
		return commitFocused(m)
	case key.Matches(keyMsg, m.Keys.Esc):
		m.Focus = model.FocusDrawer
	}
	return m, nil
}

func toggleFocus(m *model.Model) *model.Model {
	if m.Focus == model.FocusDrawer {
		if len(m.Lights()) > 0 {
			m.Focus = model.FocusControls
		}
		return m
	}
	m.Focus = model.FocusDrawer
	return m
}

func copyFocusedColor(m *model.Model) (*model.Model, tea.Cmd) {
	g, ok := focusedGesture(m)
	if !ok {
		return m, nil
	}
	hex := g.Color().Hex()
	if err := clipboardWrite(hex); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy color")
		return m, m.SetStatusMessage("Copy color failed", model.StatusBarError, 3*time.Second)
	}
	return m, m.SetStatusMessage(fmt.Sprintf("%s %s copied", g.Light(), hex), model.StatusBarSuccess, 3*time.Second)
}
