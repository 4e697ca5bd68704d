package claude

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRegistry(t *testing.T) {
	t.Run("wrapped form", func(t *testing.T) {
		data := []byte(`{"mcpServers": {"github": {"type": "http", "url": "https://example.com/mcp"}}}`)
		cfg, err := ParseRegistry(data)
		if err != nil {
			t.Fatalf("ParseRegistry() error = %v", err)
		}
		srv := cfg.MCPServers["github"]
		if srv == nil || srv.URL != "https://example.com/mcp" {
			t.Errorf("ParseRegistry() github = %+v", srv)
		}
	})

	t.Run("bare servers map", func(t *testing.T) {
		data := []byte(`{"local": {"command": "npx", "args": ["-y", "server"]}}`)
		cfg, err := ParseRegistry(data)
		if err != nil {
			t.Fatalf("ParseRegistry() error = %v", err)
		}
		srv := cfg.MCPServers["local"]
		if srv == nil || srv.Command != "npx" || len(srv.Args) != 2 {
			t.Errorf("ParseRegistry() local = %+v", srv)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := ParseRegistry([]byte("not json")); err == nil {
			t.Error("ParseRegistry() error = nil, want error")
		}
	})

	t.Run("empty object", func(t *testing.T) {
		cfg, err := ParseRegistry([]byte("{}"))
		if err != nil {
			t.Fatalf("ParseRegistry() error = %v", err)
		}
		if len(cfg.MCPServers) != 0 {
			t.Errorf("ParseRegistry() servers = %v, want empty", cfg.MCPServers)
		}
	})
}

func TestLoadRegistry(t *testing.T) {
	t.Run("missing file yields empty registry", func(t *testing.T) {
		cfg, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))
		if err != nil {
			t.Fatalf("LoadRegistry() error = %v", err)
		}
		if len(cfg.MCPServers) != 0 {
			t.Errorf("LoadRegistry() servers = %v, want empty", cfg.MCPServers)
		}
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".mcp.json")
		content := `{"mcpServers": {"db": {"type": "stdio", "command": "dbmcp", "env": {"DB_URL": "postgres://x"}}}}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadRegistry(path)
		if err != nil {
			t.Fatalf("LoadRegistry() error = %v", err)
		}
		srv := cfg.MCPServers["db"]
		if srv == nil || srv.Type != TypeStdio || srv.Env["DB_URL"] == "" {
			t.Errorf("LoadRegistry() db = %+v", srv)
		}
	})
}
