// Package mcpserver exposes the lighting controls to agents over MCP.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"lumictl/internal/api"
	"lumictl/internal/api/tools"
	"lumictl/internal/config"
	"lumictl/internal/metrics"
	"lumictl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const subsystem = "MCPServer"

// Config selects the transport and optional metrics listener.
type Config struct {
	Transport   string
	Host        string
	Port        int
	MetricsAddr string
	Version     string
}

// Server serves the lighting tools on one transport.
type Server struct {
	config Config
	server *server.MCPServer

	mu            sync.Mutex
	sseServer     *server.SSEServer
	metricsServer *http.Server
}

// New builds the MCP server and registers the lighting tools backed by a.
func New(cfg Config, a api.LightingAPI) *Server {
	if cfg.Transport == "" {
		cfg.Transport = config.MCPTransportStdio
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 8090
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	mcpServer := server.NewMCPServer(
		"lumictl",
		cfg.Version,
		server.WithToolCapabilities(true),
	)
	tools.NewLightingTools(a).Register(mcpServer)

	return &Server{config: cfg, server: mcpServer}
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer { return s.server }

// Addr is the SSE listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Run serves until ctx ends or the transport fails.
func (s *Server) Run(ctx context.Context) error {
	s.startMetrics()
	defer s.stopMetrics()

	switch s.config.Transport {
	case config.MCPTransportStdio:
		logging.Info(subsystem, "Serving MCP on stdio")
		stdio := server.NewStdioServer(s.server)
		err := stdio.Listen(ctx, os.Stdin, os.Stdout)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio transport: %w", err)
		}
		return nil

	case config.MCPTransportSSE:
		return s.runSSE(ctx)

	default:
		return fmt.Errorf("unknown MCP transport %q", s.config.Transport)
	}
}

func (s *Server) runSSE(ctx context.Context) error {
	baseURL := fmt.Sprintf("http://%s", s.Addr())
	sseServer := server.NewSSEServer(
		s.server,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)
	s.mu.Lock()
	s.sseServer = sseServer
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		logging.Info(subsystem, "Serving MCP over SSE on %s", s.Addr())
		if err := sseServer.Start(s.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("SSE transport: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sseServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(subsystem, err, "Error shutting down SSE server")
	}
	return nil
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

func (s *Server) startMetrics() {
	if s.config.MetricsAddr == "" {
		return
	}
	srv := &http.Server{
		Addr:              s.config.MetricsAddr,
		Handler:           metricsMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.metricsServer = srv
	s.mu.Unlock()

	go func() {
		logging.Info(subsystem, "Serving metrics on %s/metrics", s.config.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(subsystem, err, "Metrics listener failed")
		}
	}()
}

func (s *Server) stopMetrics() {
	s.mu.Lock()
	srv := s.metricsServer
	s.metricsServer = nil
	s.mu.Unlock()
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn(subsystem, "Error shutting down metrics listener: %v", err)
	}
}
