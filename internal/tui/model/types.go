package model

import (
	"time"

	"lumictl/internal/lighting"
	"lumictl/internal/shell"
	"lumictl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMainDashboard AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMainDashboard:
		return "MainDashboard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// FocusArea is the pane receiving navigation keys.
type FocusArea int

const (
	FocusDrawer FocusArea = iota
	FocusControls
)

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	DefaultGestureIdle  = 250 * time.Millisecond
	DefaultStep         = 0.01
	CoarseStepFactor    = 10
	DrawerWidth         = 28
)

// TUIConfig carries everything the dashboard needs from the application.
type TUIConfig struct {
	DebugMode    bool
	ColorMode    string
	Shell        *shell.Shell
	Results      <-chan lighting.Result
	InitialRoute string
	GestureIdle  time.Duration
	Step         float64
	Endpoint     string
	Dialect      string
}

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	QuitApp         bool
	CurrentAppMode  AppMode
	DebugMode       bool
	ColorMode       string
	QuittingMessage string
	Endpoint        string
	Dialect         string

	// Dashboard
	Shell          *shell.Shell
	Results        <-chan lighting.Result
	Drawer         list.Model
	Focus          FocusArea
	FocusedLight   int
	FocusedChannel lighting.Channel
	UnknownRoute   string // Set when the last navigation named no mode

	// Gesture completion by idle timeout. PendingGestures maps a light to the
	// sequence number of its newest scheduled idle tick.
	GestureIdle     time.Duration
	Step            float64
	GestureSeq      uint64
	PendingGestures map[lighting.LightID]uint64

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewportLastWidth int
	LogViewport          viewport.Model
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// Lights returns the fixtures of the current view in display order.
func (m *Model) Lights() []lighting.LightID {
	if m.Shell == nil || m.Shell.Current() == nil {
		return nil
	}
	return m.Shell.Current().Entry.Lights
}

// FocusedLightID returns the light under the slider cursor, if the current
// view has manual controls.
func (m *Model) FocusedLightID() (lighting.LightID, bool) {
	lights := m.Lights()
	if len(lights) == 0 {
		return "", false
	}
	if m.FocusedLight < 0 || m.FocusedLight >= len(lights) {
		m.FocusedLight = 0
	}
	return lights[m.FocusedLight], true
}
