package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sandevgo/csvrepl/internal/service/command"
	"github.com/sandevgo/csvrepl/internal/service/dataset"
	"github.com/sandevgo/csvrepl/internal/service/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	store := dataset.NewMockStore(dataset.DefaultDir)
	return NewServer(session.New("mcp", command.NewRouter(store)))
}

func call(t *testing.T, s *Server, name string, args map[string]any) string {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := s.toolHandler(name)(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestToolHandler(t *testing.T) {
	s := newTestServer()

	assert.Equal(t, "Please load a file first using load_file.", call(t, s, "view", nil))
	assert.Equal(t, `File "simple.csv" has been loaded.`, call(t, s, "load_file", map[string]any{"args": " simple.csv "}))

	view := call(t, s, "view", map[string]any{})
	assert.Contains(t, view, "one")
	assert.Contains(t, view, "five")

	assert.Contains(t, call(t, s, "search", map[string]any{"args": "0 one"}), "one")
	assert.Equal(t, "Search failed: value not found", call(t, s, "search", map[string]any{"args": "1 one"}))
	assert.Equal(t,
		"Invalid argument length, correct usage: search [header_id] [term]",
		call(t, s, "search", map[string]any{"args": "0"}),
	)

	assert.Equal(t, 6, s.session.Len())
}

func TestToolHandler_IgnoresNonStringArgs(t *testing.T) {
	s := newTestServer()

	assert.Equal(t,
		"Invalid argument length, correct usage: load_file [path to file]",
		call(t, s, "load_file", map[string]any{"args": 42}),
	)
}
