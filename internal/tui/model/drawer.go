package model

import (
	"fmt"
	"io"

	"lumictl/internal/modes"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModeItem is one navigation drawer row.
type ModeItem struct {
	Key   string
	Title string
	Icon  string
}

func (i ModeItem) FilterValue() string { return i.Title }

// ModeItemDelegate renders drawer rows. Current marks the mounted route.
type ModeItemDelegate struct {
	Current  func() string
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Active   lipgloss.Style
}

func (d ModeItemDelegate) Height() int                             { return 1 }
func (d ModeItemDelegate) Spacing() int                            { return 0 }
func (d ModeItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d ModeItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(ModeItem)
	if !ok {
		return
	}

	label := item.Title
	if item.Icon != "" {
		label = item.Icon + " " + label
	}
	if d.Current != nil && d.Current() == item.Key {
		label = d.Active.Render(label + " ●")
	}

	if index == m.Index() {
		fmt.Fprint(w, d.Selected.Render("▶ "+label))
		return
	}
	fmt.Fprint(w, d.Normal.Render("  "+label))
}

// NewDrawer builds the navigation list in registry order.
func NewDrawer(entries []modes.Entry, delegate list.ItemDelegate, width, height int) list.Model {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, ModeItem{Key: e.Key, Title: e.Title, Icon: e.Icon})
	}

	l := list.New(items, delegate, width, height)
	l.Title = "Modes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	return l
}

// SelectDrawerKey moves the drawer cursor to route key, if listed.
func SelectDrawerKey(l *list.Model, routeKey string) {
	for i, it := range l.Items() {
		if mi, ok := it.(ModeItem); ok && mi.Key == routeKey {
			l.Select(i)
			return
		}
	}
}

// SelectedDrawerKey returns the route under the drawer cursor.
func SelectedDrawerKey(l list.Model) (string, bool) {
	mi, ok := l.SelectedItem().(ModeItem)
	if !ok {
		return "", false
	}
	return mi.Key, true
}
