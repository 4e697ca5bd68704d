package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/ocmigrate/internal/claude"
	"github.com/thoreinstein/ocmigrate/internal/opencode"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".mcp.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRegistry(t *testing.T) {
	t.Run("http entry becomes remote", func(t *testing.T) {
		path := writeRegistry(t, `{"mcpServers": {"gh": {"type": "http", "url": "https://example.com/mcp"}}}`)
		out := Registry(path)

		require.Len(t, out, 1)
		assert.Equal(t, &opencode.MCPServer{
			Type:    opencode.TypeRemote,
			URL:     "https://example.com/mcp",
			Enabled: false,
		}, out["gh"])
	})

	t.Run("http entry without url is dropped", func(t *testing.T) {
		path := writeRegistry(t, `{"mcpServers": {"broken": {"type": "http"}}}`)
		assert.Empty(t, Registry(path))
	})

	t.Run("stdio entry becomes local with env placeholders", func(t *testing.T) {
		path := writeRegistry(t, `{"mcpServers": {"db": {
			"type": "stdio",
			"command": "dbmcp",
			"args": ["--port", "5432"],
			"env": {"DB_URL": "postgres://real-secret"}
		}}}`)
		out := Registry(path)

		require.Len(t, out, 1)
		srv := out["db"]
		assert.Equal(t, opencode.TypeLocal, srv.Type)
		assert.Equal(t, []string{"dbmcp", "--port", "5432"}, srv.Command)
		assert.False(t, srv.Enabled)
		assert.Equal(t, map[string]string{"DB_URL": "{env:DB_URL}"}, srv.Environment)
	})

	t.Run("untyped entries are classified by shape", func(t *testing.T) {
		path := writeRegistry(t, `{"mcpServers": {
			"remote": {"url": "https://example.com/mcp"},
			"local": {"command": "srv"}
		}}`)
		out := Registry(path)

		require.Len(t, out, 2)
		assert.Equal(t, opencode.TypeRemote, out["remote"].Type)
		assert.Equal(t, opencode.TypeLocal, out["local"].Type)
	})

	t.Run("unrecognized shapes are dropped silently", func(t *testing.T) {
		path := writeRegistry(t, `{"mcpServers": {
			"empty": {},
			"mismatched": {"type": "stdio", "url": "https://example.com"},
			"ok": {"command": "srv"}
		}}`)
		out := Registry(path)
		require.Len(t, out, 1)
		assert.Contains(t, out, "ok")
	})

	t.Run("absent registry yields empty result", func(t *testing.T) {
		out := Registry(filepath.Join(t.TempDir(), "absent.json"))
		assert.Empty(t, out)
	})

	t.Run("unparsable registry yields empty result", func(t *testing.T) {
		path := writeRegistry(t, "not json at all")
		assert.Empty(t, Registry(path))
	})
}

func TestConvertServer(t *testing.T) {
	t.Run("never enables a server", func(t *testing.T) {
		servers := []*claude.MCPServer{
			{Type: claude.TypeHTTP, URL: "https://a"},
			{Type: claude.TypeSSE, URL: "https://b"},
			{Type: claude.TypeStdio, Command: "c"},
			{Command: "d", Env: map[string]string{"K": "v"}},
		}
		for _, src := range servers {
			if conv := convertServer(src); conv != nil {
				assert.False(t, conv.Enabled)
			}
		}
	})
}
