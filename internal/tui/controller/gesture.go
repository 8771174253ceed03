package controller

import (
	"fmt"
	"time"

	"lumictl/internal/gesture"
	"lumictl/internal/lighting"
	"lumictl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const gestureSubsystem = "TUIGesture"

func focusedGesture(m *model.Model) (*gesture.Controller, bool) {
	light, ok := m.FocusedLightID()
	if !ok {
		return nil, false
	}
	return m.Shell.Current().Gesture(light)
}

// nudgeFocused moves the focused channel by delta and (re)arms the idle
// timer of the light. The remote write happens only when the gesture ends.
func nudgeFocused(m *model.Model, delta float64) (*model.Model, tea.Cmd) {
	g, ok := focusedGesture(m)
	if !ok {
		return m, nil
	}
	if err := g.Nudge(m.FocusedChannel, delta); err != nil {
		LogWarn(gestureSubsystem, "Ignoring move on %s: %v", g.Light(), err)
		return m, m.SetStatusMessage(err.Error(), model.StatusBarWarning, 3*time.Second)
	}

	m.GestureSeq++
	m.PendingGestures[g.Light()] = m.GestureSeq
	return m, model.GestureIdleCmd(m.GestureIdle, g.Light(), m.GestureSeq)
}

// commitFocused ends the focused light's gesture immediately.
func commitFocused(m *model.Model) (*model.Model, tea.Cmd) {
	g, ok := focusedGesture(m)
	if !ok {
		return m, nil
	}
	return commit(m, g)
}

func commit(m *model.Model, g *gesture.Controller) (*model.Model, tea.Cmd) {
	delete(m.PendingGestures, g.Light())
	if !g.Dirty() {
		return m, nil
	}
	g.OnGestureComplete()
	return m, m.SetStatusMessage(fmt.Sprintf("Sending %s %s", g.Light(), g.Color().Hex()), model.StatusBarInfo, 2*time.Second)
}

// handleGestureIdle completes a gesture whose sliders stopped moving. Ticks
// superseded by a later move, or from a view that is no longer mounted, are
// dropped.
func handleGestureIdle(m *model.Model, msg model.GestureIdleMsg) (*model.Model, tea.Cmd) {
	if seq, ok := m.PendingGestures[msg.Light]; !ok || seq != msg.Seq {
		return m, nil
	}
	if m.Shell.Current() == nil {
		return m, nil
	}
	g, ok := m.Shell.Current().Gesture(msg.Light)
	if !ok {
		return m, nil
	}
	return commit(m, g)
}

// moveChannelFocus walks the slider cursor across channels and lights.
func moveChannelFocus(m *model.Model, delta int) {
	lights := m.Lights()
	if len(lights) == 0 {
		return
	}
	channels := lighting.Channels()
	total := len(lights) * len(channels)
	pos := m.FocusedLight*len(channels) + int(m.FocusedChannel)
	pos = (pos + delta + total) % total
	m.FocusedLight = pos / len(channels)
	m.FocusedChannel = channels[pos%len(channels)]
}
