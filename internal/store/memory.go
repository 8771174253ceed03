package store

import (
	"lumictl/internal/lighting"

	"github.com/patrickmn/go-cache"
)

// Memory keeps colors for the lifetime of the process.
type Memory struct {
	c *cache.Cache
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{c: cache.New(cache.NoExpiration, 0)}
}

func (m *Memory) Seed(light lighting.LightID) (lighting.Color, bool) {
	v, ok := m.c.Get(string(light))
	if !ok {
		return lighting.Color{}, false
	}
	c, ok := v.(lighting.Color)
	return c, ok
}

func (m *Memory) Record(light lighting.LightID, c lighting.Color) error {
	m.c.Set(string(light), c, cache.NoExpiration)
	return nil
}

func (m *Memory) All() (map[lighting.LightID]lighting.Color, error) {
	out := make(map[lighting.LightID]lighting.Color, m.c.ItemCount())
	for k, item := range m.c.Items() {
		if c, ok := item.Object.(lighting.Color); ok {
			out[lighting.LightID(k)] = c
		}
	}
	return out, nil
}

func (m *Memory) Close() error {
	m.c.Flush()
	return nil
}
