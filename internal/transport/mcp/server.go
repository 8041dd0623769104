package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/csvrepl/internal/core"
	"github.com/sandevgo/csvrepl/internal/service/session"
	"github.com/sandevgo/csvrepl/pkg/log"
)

const argsParam = "args"

// Server exposes every command of a session as an MCP tool over stdio.
type Server struct {
	session *session.Session
	mcp     *server.MCPServer
}

func NewServer(s *session.Session) *Server {
	srv := &Server{
		session: s,
		mcp: server.NewMCPServer(
			core.AppName,
			core.AppVersion,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
		),
	}

	for _, name := range s.Commands() {
		tool := mcp.NewTool(name,
			mcp.WithDescription(fmt.Sprintf("Run the %s command. Call help to list usage of every command.", name)),
			mcp.WithString(argsParam,
				mcp.Description("Space separated command arguments"),
			),
		)
		srv.mcp.AddTool(tool, srv.toolHandler(name))
	}
	return srv
}

// ServeStdio blocks until stdin is closed.
func (s *Server) ServeStdio(ctx context.Context) error {
	log.FromCtx(ctx).Info().Int("tools", len(s.session.Commands())).Msg("serving mcp over stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		line := name
		if args, ok := req.GetArguments()[argsParam].(string); ok && strings.TrimSpace(args) != "" {
			line += " " + strings.TrimSpace(args)
		}

		entry := s.session.Submit(ctx, line)
		return mcp.NewToolResultText(entry.Plain(session.ModeBrief)), nil
	}
}
