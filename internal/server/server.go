// Package server exposes the tool catalogue over MCP stdio and runs the
// invocation pipeline: lookup -> bind -> compile -> execute -> normalize.
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/sonderhq/unifi-network-mcp/internal/catalog"
	"github.com/sonderhq/unifi-network-mcp/internal/config"
	. "github.com/sonderhq/unifi-network-mcp/internal/logging"
	"github.com/sonderhq/unifi-network-mcp/internal/unifi"
)

// Server is the MCP server. It owns the API client and the registered tool
// set; both are immutable after New.
type Server struct {
	client *unifi.Client
	mcp    *mcpserver.MCPServer
}

// New creates the server and registers every catalogue operation as an MCP
// tool.
func New(cfg *config.Config, version string) (*Server, error) {
	client, err := unifi.NewClient(cfg.UniFi)
	if err != nil {
		return nil, err
	}

	s := &Server{
		client: client,
		mcp: mcpserver.NewMCPServer(
			"unifi-network",
			version,
			mcpserver.WithToolCapabilities(false),
		),
	}

	for _, op := range catalog.Operations() {
		schema, err := json.Marshal(op.InputSchema())
		if err != nil {
			return nil, fmt.Errorf("failed to build schema for %s: %w", op.Name, err)
		}
		s.mcp.AddTool(mcp.NewToolWithRawSchema(op.Name, op.Description, schema), s.handler(op))
	}

	L_info("server: tools registered", "count", catalog.Count())
	return s, nil
}

// Run serves MCP over stdio until the client disconnects.
func (s *Server) Run() error {
	return mcpserver.ServeStdio(s.mcp)
}

// handler adapts one catalogue operation to an MCP tool handler. Failures are
// reported through the result envelope, never as protocol errors: every
// invocation yields one text content block, with the error flag set and an
// "Error: " payload on failure.
func (s *Server) handler(op *catalog.Operation) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		payload, err := s.invoke(ctx, op, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(errorText(err)), nil
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}

// Execute runs a tool by name. It is the same pipeline the MCP handlers use,
// with the registry lookup in front.
func (s *Server) Execute(ctx context.Context, name string, args map[string]any) (json.RawMessage, error) {
	op, ok := catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
	return s.invoke(ctx, op, args)
}

// invoke runs one invocation through the pipeline. A validation failure stops
// the invocation before any request is compiled or sent.
func (s *Server) invoke(ctx context.Context, op *catalog.Operation, args map[string]any) (json.RawMessage, error) {
	id := uuid.NewString()[:8]
	L_debug("server: invoking", "id", id, "tool", op.Name)

	bound, err := op.Bind(args)
	if err != nil {
		L_debug("server: validation failed", "id", id, "tool", op.Name, "error", err)
		return nil, err
	}

	req := op.Compile(bound)
	payload, err := s.client.Do(ctx, req)
	if err != nil {
		L_debug("server: request failed", "id", id, "tool", op.Name, "error", err)
		return nil, err
	}

	L_debug("server: invocation complete", "id", id, "tool", op.Name, "bytes", len(payload))
	return payload, nil
}

// errorText formats a failure for the result envelope.
func errorText(err error) string {
	return "Error: " + err.Error()
}
