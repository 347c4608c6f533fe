package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/winlayout/internal/model"
	"github.com/mj1618/winlayout/internal/version"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the application state and cache.
type mcpServer struct {
	app   *app
	cache *mcpWindowCache
	// appMu serialises tool calls; a restore moves real windows and must
	// not interleave with another.
	appMu sync.Mutex
	mcp   *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all winlayout tools.
func newMCPServer(a *app, cfg MCPConfig) *mcpServer {
	s := &mcpServer{
		app:   a,
		cache: newMCPWindowCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"winlayout",
		version.Version,
	)

	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// list_arrangements
	s.mcp.AddTool(
		mcp.NewTool("list_arrangements",
			mcp.WithDescription("List the names of saved window arrangements"),
		),
		s.handleListArrangements,
	)

	// save_arrangement
	s.mcp.AddTool(
		mcp.NewTool("save_arrangement",
			mcp.WithDescription("Capture the position, size and state of every open window and save it under a name, replacing any arrangement of that name"),
			mcp.WithString("name", mcp.Description("Arrangement name (letters, digits, _ and -)"), mcp.Required()),
		),
		s.handleSaveArrangement,
	)

	// load_arrangement
	s.mcp.AddTool(
		mcp.NewTool("load_arrangement",
			mcp.WithDescription("Restore a saved arrangement: launch missing applications and move their windows into place. Blocks for up to retry_count * retry_interval_ms."),
			mcp.WithString("name", mcp.Description("Arrangement name"), mcp.Required()),
			mcp.WithBoolean("close-others", mcp.Description("Close windows that are not in the arrangement")),
			mcp.WithBoolean("minimize-others", mcp.Description("Minimize windows that are not in the arrangement")),
		),
		s.handleLoadArrangement,
	)

	// remove_arrangement
	s.mcp.AddTool(
		mcp.NewTool("remove_arrangement",
			mcp.WithDescription("Delete a saved arrangement"),
			mcp.WithString("name", mcp.Description("Arrangement name"), mcp.Required()),
		),
		s.handleRemoveArrangement,
	)

	// list_windows
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List open windows with executable path, display state and rectangle"),
		),
		s.handleListWindows,
	)
}

// toolText serializes v to YAML for an MCP response.
func toolText(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("yaml encode: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(formatError(err, false))
}

func (s *mcpServer) handleListArrangements(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.appMu.Lock()
	defer s.appMu.Unlock()

	listing, err := s.app.store.List()
	if err != nil {
		return toolError(withOp("error listing saved arrangements", err)), nil
	}
	entry := listEntry{Names: listing.Names}
	for _, p := range listing.Problems {
		entry.Problems = append(entry.Problems, p.Error())
	}
	return toolText(entry), nil
}

func (s *mcpServer) handleSaveArrangement(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name", "")

	s.appMu.Lock()
	defer s.appMu.Unlock()

	rec, err := s.app.saveArrangement(name)
	if err != nil {
		return toolError(withOp("error saving window arrangement", err)), nil
	}
	s.cache.invalidate()
	return toolText(rec), nil
}

func (s *mcpServer) handleLoadArrangement(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name", "")
	policy := foreignPolicy{
		Close:    boolParam(params, "close-others", false),
		Minimize: boolParam(params, "minimize-others", false),
	}

	s.appMu.Lock()
	defer s.appMu.Unlock()

	result, err := s.app.loadArrangement(name, policy)
	s.cache.invalidate()
	if err != nil {
		return toolError(withOp("error loading window arrangement", err)), nil
	}
	return toolText(result), nil
}

func (s *mcpServer) handleRemoveArrangement(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringParam(request.GetArguments(), "name", "")

	s.appMu.Lock()
	defer s.appMu.Unlock()

	removed, err := s.app.store.Remove(name)
	if err != nil {
		return toolError(withOp("error removing window arrangement", err)), nil
	}
	return toolText(removeResult{Name: name, Removed: removed}), nil
}

func (s *mcpServer) handleListWindows(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.appMu.Lock()
	defer s.appMu.Unlock()

	windows, err := s.cache.listWindows(s.app.listWindows)
	if err != nil {
		return toolError(withOp("error listing windows", err)), nil
	}
	if windows == nil {
		windows = []model.WindowInfo{}
	}
	return toolText(windows), nil
}

// Parameter extraction helpers for tool arguments

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
