// Package mcp exposes a running window over the Model Context Protocol so
// external tooling can inspect and drive it. Every tool call is marshalled
// onto the window's owning thread by the window package itself; handlers may
// run on any goroutine.
package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/sill/window"
)

const (
	ServerName    = "sill"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for remote window control.
type Server struct {
	mcpServer *mcpsdk.Server
	win       *window.Window
	log       *slog.Logger
}

// NewServer creates an MCP server driving win.
func NewServer(win *window.Window, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		win: win,
		log: log,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "window_state",
		Description: "Read the full current state of the window: title, size, size bounds, visibility flags, and style flags.",
	}, s.handleWindowState)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_title",
		Description: "Set the window title.",
	}, s.handleSetTitle)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_size",
		Description: "Set the window client size in pixels. Optionally set minimum and maximum size bounds; pass 0 for a bound to leave it platform-governed.",
	}, s.handleSetSize)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_visibility",
		Description: "Show, hide, or focus the window.",
	}, s.handleSetVisibility)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_flag",
		Description: "Toggle a boolean window flag: resizable, decorations, always_on_top, minimized, or maximized.",
	}, s.handleSetFlag)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "start_resize",
		Description: "Begin an interactive, pointer-driven resize from an edge or corner (e.g. \"bottom-right\"), or an interactive move when no edge is given. The window manager takes over the drag.",
	}, s.handleStartResize)
}
