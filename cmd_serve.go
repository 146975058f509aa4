package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_publish/internal/engine"
	"github.com/anatolykoptev/go_publish/internal/publishserver"
)

// cmdServe runs the MCP server exposing the publishing tools over HTTP.
func cmdServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := initEngine("", true); err != nil {
		return err
	}

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL,
		engine.Cfg.CacheMaxEntries, engine.Cfg.CacheCleanupInterval)

	mcpPort := env.Str("MCP_PORT", "8893")
	slog.Info("starting go_publish",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_publish",
		Version: version,
	}, nil)

	publishserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 5))

	return mcpserver.Run(server, mcpserver.Config{
		Name:         "go_publish",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	})
}
