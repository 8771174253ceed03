package model

import (
	"fmt"

	"lumictl/internal/lighting"
	"lumictl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InitializeModel builds the dashboard model and mounts the initial route.
// An unknown initial route leaves the dashboard on the fallback panel.
func InitializeModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) (*Model, error) {
	if cfg.Shell == nil {
		return nil, fmt.Errorf("dashboard requires a shell")
	}

	idle := cfg.GestureIdle
	if idle <= 0 {
		idle = DefaultGestureIdle
	}
	step := cfg.Step
	if step <= 0 {
		step = DefaultStep
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &Model{
		CurrentAppMode:  ModeMainDashboard,
		DebugMode:       cfg.DebugMode,
		ColorMode:       cfg.ColorMode,
		Endpoint:        cfg.Endpoint,
		Dialect:         cfg.Dialect,
		Shell:           cfg.Shell,
		Results:         cfg.Results,
		Focus:           FocusDrawer,
		GestureIdle:     idle,
		Step:            step,
		PendingGestures: make(map[lighting.LightID]uint64),
		ActivityLog:     []string{},
		LogViewport:     viewport.New(0, 0),
		Spinner:         s,
		Keys:            DefaultKeyMap(),
		Help:            help.New(),
		LogChannel:      logChannel,
	}

	delegate := ModeItemDelegate{
		Current:  func() string { return m.Shell.CurrentKey() },
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true),
		Normal:   lipgloss.NewStyle(),
		Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
	m.Drawer = NewDrawer(cfg.Shell.Registry().Entries(), delegate, DrawerWidth, 10)

	if cfg.InitialRoute != "" {
		if _, err := m.Shell.Navigate(cfg.InitialRoute); err != nil {
			m.UnknownRoute = cfg.InitialRoute
			logging.Warn("TUI", "Initial route %q: %v", cfg.InitialRoute, err)
		} else {
			SelectDrawerKey(&m.Drawer, cfg.InitialRoute)
		}
	}
	return m, nil
}

// Init starts the spinner and the channel readers.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		ListenForLogEntriesCmd(m.LogChannel),
		ChannelReaderCmd(m.Results),
	)
}
