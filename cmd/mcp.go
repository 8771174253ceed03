package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"lumictl/internal/mcpserver"

	"github.com/spf13/cobra"
)

var (
	mcpTransport   string
	mcpAddr        string
	mcpMetricsAddr string
	mcpDebug       bool
)

func newMCPCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the lighting controls to AI assistants over MCP",
		Long: `Starts an MCP server exposing the tools list_modes, activate_mode,
set_light_color and get_light_color.

The stdio transport (default) is meant to be launched by an MCP client such
as an editor. The sse transport listens on --addr. Flags override the mcp
section of the configuration file.`,
		Args: cobra.NoArgs,
		RunE: runMCP,
	}

	c.Flags().StringVar(&mcpTransport, "transport", "", "Transport: stdio or sse")
	c.Flags().StringVar(&mcpAddr, "addr", "", "SSE listen address as host:port")
	c.Flags().StringVar(&mcpMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	c.Flags().BoolVar(&mcpDebug, "debug", false, "Enable debug logging")
	return c
}

func runMCP(cmd *cobra.Command, args []string) error {
	application, err := openApplication(true, mcpDebug, "")
	if err != nil {
		return err
	}
	defer application.Close()

	mcpCfg := application.Config().LumictlConfig.MCP
	cfg := mcpserver.Config{
		Transport:   mcpCfg.Transport,
		Host:        mcpCfg.Host,
		Port:        mcpCfg.Port,
		MetricsAddr: mcpCfg.MetricsAddr,
		Version:     rootCmd.Version,
	}
	if mcpTransport != "" {
		cfg.Transport = mcpTransport
	}
	if mcpMetricsAddr != "" {
		cfg.MetricsAddr = mcpMetricsAddr
	}
	if mcpAddr != "" {
		host, port, err := splitAddr(mcpAddr)
		if err != nil {
			return err
		}
		cfg.Host, cfg.Port = host, port
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.New(cfg, application.Services().LightingAPI).Run(ctx)
}

func splitAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, fmt.Errorf("invalid port in address %q", addr)
	}
	return host, port, nil
}
