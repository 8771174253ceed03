// Package store remembers the last color committed for each light so a
// freshly mounted manual view starts its sliders where the user left them.
package store

import (
	"context"
	"fmt"

	"lumictl/internal/lighting"
	"lumictl/pkg/logging"
)

const subsystem = "Store"

// Store is a last-color-per-light table.
type Store interface {
	// Seed satisfies modes.SeedSource.
	Seed(light lighting.LightID) (lighting.Color, bool)
	Record(light lighting.LightID, c lighting.Color) error
	All() (map[lighting.LightID]lighting.Color, error)
	Close() error
}

// Open returns a SQLite store at path, or an in-memory store when path is empty.
func Open(path string) (Store, error) {
	if path == "" {
		logging.Debug(subsystem, "Using in-memory color store")
		return NewMemory(), nil
	}
	s, err := OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open color store %s: %w", path, err)
	}
	logging.Debug(subsystem, "Using SQLite color store at %s", path)
	return s, nil
}

// Recording decorates a RemoteLightAPI so every color write is remembered
// before it is sent. Intents are kept whether or not the rig accepts them.
type Recording struct {
	lighting.RemoteLightAPI
	store Store
}

// NewRecording wraps api.
func NewRecording(api lighting.RemoteLightAPI, s Store) *Recording {
	return &Recording{RemoteLightAPI: api, store: s}
}

// SetLightColor records then forwards.
func (r *Recording) SetLightColor(ctx context.Context, light lighting.LightID, c lighting.Color) error {
	if c.Valid() {
		if err := r.store.Record(light, c); err != nil {
			logging.Warn(subsystem, "Failed to record color for %s: %v", light, err)
		}
	}
	return r.RemoteLightAPI.SetLightColor(ctx, light, c)
}
