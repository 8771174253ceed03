package controller

import (
	"testing"
	"time"

	"lumictl/internal/lighting"
	"lumictl/internal/modes"
	"lumictl/internal/shell"
	"lumictl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	reqs []lighting.Request
}

func (r *recorder) Dispatch(req lighting.Request) { r.reqs = append(r.reqs, req) }

func (r *recorder) ops(op lighting.Op) []lighting.Request {
	var out []lighting.Request
	for _, req := range r.reqs {
		if req.Op == op {
			out = append(out, req)
		}
	}
	return out
}

func newTestModel(t *testing.T, initialRoute string) (*model.Model, *recorder) {
	t.Helper()
	reg, err := modes.NewRegistry(modes.DefaultEntries(nil)...)
	require.NoError(t, err)

	rec := &recorder{}
	m, err := model.InitializeModel(model.TUIConfig{
		Shell:        shell.New(reg, rec, nil),
		InitialRoute: initialRoute,
		GestureIdle:  time.Millisecond,
		Step:         0.01,
	}, nil)
	require.NoError(t, err)
	m.Width, m.Height = 120, 40
	return m, rec
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *model.Model, msgs ...tea.Msg) *model.Model {
	for _, msg := range msgs {
		m, _ = Update(msg, m)
	}
	return m
}
