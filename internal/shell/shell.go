// Package shell is the route switch of the dashboard. It binds mode views
// to route changes: a view is entered when the route moves to it and exited
// when the route moves away. Re-selecting the current route does nothing.
package shell

import (
	"lumictl/internal/lighting"
	"lumictl/internal/modes"
	"lumictl/pkg/logging"
)

const subsystem = "Shell"

// Shell tracks the active route and its mounted view.
type Shell struct {
	registry   *modes.Registry
	dispatcher lighting.Dispatcher
	seeds      modes.SeedSource

	currentKey string
	current    *modes.View
}

// New creates a shell over registry. Views it mounts dispatch through d.
func New(registry *modes.Registry, d lighting.Dispatcher, seeds modes.SeedSource) *Shell {
	return &Shell{registry: registry, dispatcher: d, seeds: seeds}
}

// Registry returns the route table.
func (s *Shell) Registry() *modes.Registry { return s.registry }

// Current returns the mounted view, or nil before the first navigation.
func (s *Shell) Current() *modes.View { return s.current }

// CurrentKey returns the active route key.
func (s *Shell) CurrentKey() string { return s.currentKey }

// Navigate switches to routeKey. An unknown key leaves the current view in
// place and invokes no controller.
func (s *Shell) Navigate(routeKey string) (*modes.View, error) {
	if s.current != nil && routeKey == s.currentKey {
		return s.current, nil
	}

	entry, err := s.registry.Resolve(routeKey)
	if err != nil {
		logging.Warn(subsystem, "Cannot navigate to %q: %v", routeKey, err)
		return nil, err
	}

	if s.current != nil {
		logging.Debug(subsystem, "Leaving %s", s.currentKey)
		s.current.Exit()
	}

	view := entry.NewView(s.dispatcher, s.seeds)
	s.current = view
	s.currentKey = routeKey
	logging.Info(subsystem, "Entering %s (%s)", entry.Title, entry.Mode)
	view.Enter()
	return view, nil
}

// Leave exits the current view without entering another one.
func (s *Shell) Leave() {
	if s.current == nil {
		return
	}
	s.current.Exit()
	s.current = nil
	s.currentKey = ""
}

// Resolve forwards an activation outcome to the mounted view.
func (s *Shell) Resolve(res lighting.Result) {
	if res.Request.Op != lighting.OpActivateMode || s.current == nil {
		return
	}
	if s.current.Activation.Mode() != res.Request.Mode {
		return
	}
	s.current.Activation.Resolve(res.Request.Generation, res.Err)
}
