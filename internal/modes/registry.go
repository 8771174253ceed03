// Package modes holds the route table of the dashboard.
//
// Each route key maps to a display title, an icon and the mode it
// activates. The table is built once at startup and is read-only
// afterwards, so it needs no locking.
package modes

import (
	"fmt"
	"strings"

	"lumictl/internal/lighting"
)

// ErrNotFound is returned by Resolve for unregistered route keys.
var ErrNotFound = fmt.Errorf("mode not found: %w", lighting.ErrUnknownRoute)

// Entry is one registered mode.
type Entry struct {
	Key   string
	Title string
	Icon  string
	Mode  lighting.ModeName

	// Lights is non-empty for modes with manual color control; the view
	// gets one gesture controller per light.
	Lights []lighting.LightID
}

// Manual reports whether the mode shows color sliders.
func (e Entry) Manual() bool { return len(e.Lights) > 0 }

// Registry maps route keys to entries.
type Registry struct {
	entries []Entry
	byKey   map[string]int
}

// NewRegistry validates and indexes entries, keeping their order for navigation.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{byKey: make(map[string]int, len(entries))}
	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("mode %q has an empty route key", e.Title)
		}
		if strings.Contains(e.Key, "/") {
			return nil, fmt.Errorf("route key %q must be a single path segment", e.Key)
		}
		if e.Mode == "" {
			return nil, fmt.Errorf("route %q has no mode", e.Key)
		}
		if _, dup := r.byKey[e.Key]; dup {
			return nil, fmt.Errorf("duplicate route key %q", e.Key)
		}
		if e.Title == "" {
			e.Title = string(e.Mode)
		}
		r.byKey[e.Key] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// Resolve looks up a route key.
func (r *Registry) Resolve(routeKey string) (Entry, error) {
	idx, ok := r.byKey[routeKey]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, routeKey)
	}
	return r.entries[idx], nil
}

// Entries returns the registered modes in navigation order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Keys returns the registered route keys in navigation order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Len returns the number of registered modes.
func (r *Registry) Len() int { return len(r.entries) }

// KeyFromPath extracts the route key from a path such as "/mode/off".
func KeyFromPath(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
