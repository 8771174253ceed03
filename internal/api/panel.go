package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"lumictl/internal/gesture"
	"lumictl/internal/lighting"
	"lumictl/internal/modes"
	"lumictl/internal/shell"
	"lumictl/pkg/logging"
)

const subsystem = "API"

// Settler is a dispatcher whose in-flight requests can be awaited.
type Settler interface {
	lighting.Dispatcher
	Wait()
	Results() <-chan lighting.Result
}

// Panel implements LightingAPI over a shell. The shell must have been built
// with the same dispatcher.
type Panel struct {
	mu         sync.Mutex
	shell      *shell.Shell
	dispatcher Settler
	seeds      modes.SeedSource
}

var _ LightingAPI = (*Panel)(nil)

// NewPanel creates a panel. seeds may be nil.
func NewPanel(sh *shell.Shell, d Settler, seeds modes.SeedSource) *Panel {
	return &Panel{shell: sh, dispatcher: d, seeds: seeds}
}

// ListModes returns the registry in navigation order.
func (p *Panel) ListModes(ctx context.Context) []ModeInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	current := p.shell.CurrentKey()
	entries := p.shell.Registry().Entries()
	out := make([]ModeInfo, 0, len(entries))
	for _, e := range entries {
		info := ModeInfo{
			Route:  e.Key,
			Title:  e.Title,
			Mode:   string(e.Mode),
			Icon:   e.Icon,
			Active: e.Key == current,
		}
		for _, l := range e.Lights {
			info.Lights = append(info.Lights, string(l))
		}
		out = append(out, info)
	}
	return out
}

// ActivateMode navigates to route and waits for the activation outcome.
// Re-selecting the mounted route dispatches nothing.
func (p *Panel) ActivateMode(ctx context.Context, route string) (*ModeStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := modes.KeyFromPath(route)
	already := p.shell.Current() != nil && p.shell.CurrentKey() == key

	view, err := p.shell.Navigate(key)
	if err != nil {
		return nil, err
	}
	if err := p.settle(ctx); err != nil {
		return nil, err
	}

	status := &ModeStatus{
		Route:      key,
		Mode:       string(view.Entry.Mode),
		State:      view.Activation.State().String(),
		Dispatched: !already,
	}
	if err := view.Activation.LastError(); err != nil {
		status.Error = err.Error()
		return status, err
	}
	return status, nil
}

// SetLightColor performs one complete gesture on light. The manual mode
// owning the light is opened first when it is not mounted.
func (p *Panel) SetLightColor(ctx context.Context, light string, c lighting.Color) (*LightStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, ok := p.resolveLight(light)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLight, light)
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: color %s for %s", lighting.ErrInvalidChannelValue, c, id)
	}
	g, err := p.gestureFor(id)
	if err != nil {
		return nil, err
	}

	for _, ch := range lighting.Channels() {
		if err := g.OnChannelMove(ch, c.Get(ch)); err != nil {
			return nil, err
		}
	}
	g.OnGestureComplete()

	var writeErr error
	for _, res := range p.drain(ctx) {
		if res.Err != nil && res.Request.Op == lighting.OpSetLightColor && res.Request.Light == id {
			writeErr = res.Err
		}
	}

	status := &LightStatus{
		Light: string(id),
		Color: g.Color(),
		Hex:   g.Color().Hex(),
		Known: true,
		Route: p.shell.CurrentKey(),
	}
	if writeErr != nil {
		status.Error = writeErr.Error()
		return status, writeErr
	}
	if ctx.Err() != nil {
		return status, ctx.Err()
	}
	return status, nil
}

// GetLightColor reports the mounted slider value when the light is on
// screen, or the last recorded color otherwise.
func (p *Panel) GetLightColor(ctx context.Context, light string) (*LightStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, ok := p.resolveLight(light)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLight, light)
	}

	status := &LightStatus{Light: string(id), Color: lighting.Black, Hex: lighting.Black.Hex()}
	if v := p.shell.Current(); v != nil {
		if g, ok := v.Gesture(id); ok {
			status.Color, status.Hex, status.Known = g.Color(), g.Color().Hex(), true
			status.Route = p.shell.CurrentKey()
			return status, nil
		}
	}
	if p.seeds != nil {
		if c, ok := p.seeds.Seed(id); ok {
			status.Color, status.Hex, status.Known = c, c.Hex(), true
		}
	}
	return status, nil
}

// Leave exits the mounted view.
func (p *Panel) Leave() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shell.Leave()
}

func (p *Panel) gestureFor(id lighting.LightID) (*gesture.Controller, error) {
	if v := p.shell.Current(); v != nil {
		if g, ok := v.Gesture(id); ok {
			return g, nil
		}
	}

	for _, e := range p.shell.Registry().Entries() {
		for _, l := range e.Lights {
			if l != id {
				continue
			}
			view, err := p.shell.Navigate(e.Key)
			if err != nil {
				return nil, err
			}
			logging.Debug(subsystem, "Opened %s to control %s", e.Key, id)
			g, _ := view.Gesture(id)
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoManualMode, id)
}

// resolveLight maps a caller-supplied name to a configured light id. An
// exact match wins; otherwise names match case-insensitively.
func (p *Panel) resolveLight(name string) (lighting.LightID, bool) {
	name = strings.TrimSpace(name)
	var folded lighting.LightID
	for _, e := range p.shell.Registry().Entries() {
		for _, l := range e.Lights {
			if string(l) == name {
				return l, true
			}
			if folded == "" && strings.EqualFold(string(l), name) {
				folded = l
			}
		}
	}
	return folded, folded != ""
}

// settle waits for in-flight requests and resolves their outcomes.
func (p *Panel) settle(ctx context.Context) error {
	p.drain(ctx)
	return ctx.Err()
}

// drain waits for the dispatcher to go idle, then feeds every buffered
// outcome back to the shell. It gives up early when ctx ends.
func (p *Panel) drain(ctx context.Context) []lighting.Result {
	done := make(chan struct{})
	go func() {
		p.dispatcher.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		logging.Warn(subsystem, "Stopped waiting for the rig: %v", ctx.Err())
	}

	var out []lighting.Result
	for {
		select {
		case res, ok := <-p.dispatcher.Results():
			if !ok {
				return out
			}
			p.shell.Resolve(res)
			if res.Err != nil && !errors.Is(res.Err, context.Canceled) {
				logging.Warn(subsystem, "%s failed: %v", res.Request, res.Err)
			}
			out = append(out, res)
		default:
			return out
		}
	}
}
