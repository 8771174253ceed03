package app

import (
	"fmt"

	"lumictl/internal/api"
	"lumictl/internal/config"
	"lumictl/internal/dispatch"
	"lumictl/internal/modes"
	"lumictl/internal/rigclient"
	"lumictl/internal/shell"
	"lumictl/internal/store"
	"lumictl/pkg/logging"
)

// Services holds all the initialized services and APIs
type Services struct {
	Store       store.Store
	Rig         *rigclient.Client
	Dispatcher  *dispatch.Dispatcher
	Registry    *modes.Registry
	Shell       *shell.Shell
	LightingAPI *api.Panel
}

// InitializeServices wires the rig client, the color store and the
// controllers from cfg.
func InitializeServices(cfg *config.LumictlConfig) (*Services, error) {
	registry, mutations, err := BuildRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid mode table: %w", err)
	}

	rig, err := rigclient.New(rigclient.Options{
		Endpoint:  cfg.Rig.Endpoint,
		Timeout:   cfg.Rig.Timeout,
		Dialect:   rigclient.Dialect(cfg.Rig.Dialect),
		RateLimit: cfg.Rig.RateLimit,
		Burst:     cfg.Rig.Burst,
		Mutations: mutations,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rig client: %w", err)
	}

	st, err := store.Open(cfg.State.Path)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Rig.Timeout
	if timeout <= 0 {
		timeout = config.GetDefaultConfig().Rig.Timeout
	}
	d := dispatch.New(store.NewRecording(rig, st), dispatch.WithTimeout(timeout))
	sh := shell.New(registry, d, st)

	logging.Debug("Services", "Rig %s (%s dialect), %d modes", rig.Endpoint(), rig.Dialect(), registry.Len())

	return &Services{
		Store:       st,
		Rig:         rig,
		Dispatcher:  d,
		Registry:    registry,
		Shell:       sh,
		LightingAPI: api.NewPanel(sh, d, st),
	}, nil
}

// Close drains in-flight writes and releases resources.
func (s *Services) Close() error {
	s.Dispatcher.Close()
	s.Rig.Close()
	return s.Store.Close()
}
