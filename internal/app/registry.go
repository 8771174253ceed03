package app

import (
	"fmt"
	"strings"

	"lumictl/internal/config"
	"lumictl/internal/lighting"
	"lumictl/internal/modes"
	"lumictl/internal/rigclient"
)

// BuildRegistry merges the configured modes into the built-in table.
// A definition with a known route replaces that entry in place, a disabled
// one removes it, and new routes are appended in configuration order.
// The returned map holds the mutation field of every configured mode.
func BuildRegistry(cfg *config.LumictlConfig) (*modes.Registry, map[lighting.ModeName]string, error) {
	lights := configuredLights(cfg.Lights)
	entries := modes.DefaultEntries(lights)
	mutations := make(map[lighting.ModeName]string)

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Key] = i
	}
	removed := make(map[string]bool)

	for _, def := range cfg.Modes {
		key := modes.KeyFromPath(def.Route)
		if def.Disabled {
			removed[key] = true
			continue
		}
		if def.Mode == "" {
			return nil, nil, fmt.Errorf("mode %q: mode name is required", key)
		}

		entry := modes.Entry{
			Key:   key,
			Title: def.Title,
			Icon:  def.Icon,
			Mode:  lighting.ModeName(def.Mode),
		}
		if def.Manual {
			entry.Lights = lights
		}
		if def.Mutation != "" {
			if !rigclient.ValidFieldName(def.Mutation) {
				return nil, nil, fmt.Errorf("mode %q: mutation %q is not a GraphQL field name", key, def.Mutation)
			}
			mutations[entry.Mode] = def.Mutation
		}

		delete(removed, key)
		if i, ok := index[key]; ok {
			if entry.Title == "" {
				entry.Title = entries[i].Title
			}
			if entry.Icon == "" {
				entry.Icon = entries[i].Icon
			}
			entries[i] = entry
			continue
		}
		index[key] = len(entries)
		entries = append(entries, entry)
	}

	kept := make([]modes.Entry, 0, len(entries))
	for _, e := range entries {
		if !removed[e.Key] {
			kept = append(kept, e)
		}
	}

	reg, err := modes.NewRegistry(kept...)
	if err != nil {
		return nil, nil, err
	}
	return reg, mutations, nil
}

func configuredLights(ids []string) []lighting.LightID {
	if len(ids) == 0 {
		return lighting.DefaultLights()
	}
	out := make([]lighting.LightID, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, lighting.LightID(id))
		}
	}
	return out
}
