package main

import (
	"fmt"
	"os"

	"github.com/sonderhq/unifi-network-mcp/internal/config"
	. "github.com/sonderhq/unifi-network-mcp/internal/logging"
	"github.com/sonderhq/unifi-network-mcp/internal/server"
)

const version = "0.3.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("unifi-network-mcp %s\n", version)
		return
	}

	// Load config first so the log level can come from it. Logging goes to
	// stderr; stdout belongs to the MCP protocol.
	cfg, err := config.Load()
	if err != nil {
		Init(nil)
		L_fatal("failed to load config: %v", err)
	}

	Init(&Config{
		Level:      ParseLevel(cfg.Logging.Level),
		TimeFormat: "15:04:05",
		ShowCaller: cfg.Logging.ShowCaller,
	})

	L_info("unifi-network-mcp %s starting", version)

	if err := cfg.Validate(); err != nil {
		L_fatal("invalid config: %v", err)
	}

	srv, err := server.New(cfg, version)
	if err != nil {
		L_fatal("failed to create server: %v", err)
	}

	L_info("serving MCP over stdio", "api", cfg.UniFi.APIURL)
	if err := srv.Run(); err != nil {
		L_fatal("server exited: %v", err)
	}
}
