// Package claude holds the source-side (Claude Code) registry document types.
package claude

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
)

// Transport type markers used in the source registry.
const (
	// TypeStdio marks a local process server.
	TypeStdio = "stdio"
	// TypeHTTP marks a remote HTTP server.
	TypeHTTP = "http"
	// TypeSSE marks a remote SSE server.
	TypeSSE = "sse"
)

// MCPServer represents one server descriptor in the .mcp.json registry.
// It supports both stdio-based (Command/Args) and HTTP-based (URL) transports.
type MCPServer struct {
	// Type specifies the server transport type: "stdio", "http", or "sse".
	Type string `json:"type,omitempty"`

	// Command is the executable to run for stdio transport.
	Command string `json:"command,omitempty"`

	// Args are command-line arguments passed to the command.
	Args []string `json:"args,omitempty"`

	// URL is the server endpoint for HTTP transport.
	URL string `json:"url,omitempty"`

	// Env contains environment variables passed to the server process.
	Env map[string]string `json:"env,omitempty"`

	// Headers contains HTTP headers for HTTP transport connections.
	Headers map[string]string `json:"headers,omitempty"`
}

// MCPConfig represents the root structure of the .mcp.json registry document.
type MCPConfig struct {
	// MCPServers maps server names to their descriptors.
	MCPServers map[string]*MCPServer `json:"mcpServers"`
}

// ParseRegistry decodes a registry document. It accepts both the wrapped
// form {"mcpServers": {...}} and a bare server map.
func ParseRegistry(data []byte) (*MCPConfig, error) {
	var cfg MCPConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parsing registry document")
	}

	// Fall back to a bare servers map
	if cfg.MCPServers == nil {
		var servers map[string]*MCPServer
		if err := json.Unmarshal(data, &servers); err != nil {
			return nil, errors.Wrap(err, "parsing registry servers map")
		}
		cfg.MCPServers = servers
	}

	if cfg.MCPServers == nil {
		cfg.MCPServers = make(map[string]*MCPServer)
	}

	return &cfg, nil
}

// LoadRegistry reads and decodes the registry document at path.
// A missing file yields an empty registry, not an error.
func LoadRegistry(path string) (*MCPConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &MCPConfig{MCPServers: make(map[string]*MCPServer)}, nil
		}
		return nil, errors.Wrap(err, "reading registry document")
	}
	return ParseRegistry(data)
}
