// Package opencode holds the target-side (OpenCode) document types.
package opencode

// Server type markers used in the generated settings document.
const (
	// TypeRemote marks an HTTP/SSE server reachable by URL.
	TypeRemote = "remote"
	// TypeLocal marks a server launched as a local process.
	TypeLocal = "local"
)

// MCPServer is one converted server entry under the settings "mcp" key.
// Converted servers start out disabled so the user opts in explicitly.
type MCPServer struct {
	// Type is "remote" or "local".
	Type string `json:"type"`

	// URL is the endpoint for remote servers.
	URL string `json:"url,omitempty"`

	// Command is the executable and its arguments as a single array.
	// Unlike the source format, which separates command and args,
	// OpenCode combines them.
	Command []string `json:"command,omitempty"`

	// Enabled is always emitted, even when false, so the generated
	// entry is explicit about its state.
	Enabled bool `json:"enabled"`

	// Environment maps variable names to "{env:NAME}" placeholders so
	// secrets stay out of the generated document.
	Environment map[string]string `json:"environment,omitempty"`
}

// Settings is the generated opencode.json document.
// Field order here is the serialization order.
type Settings struct {
	Schema       string                `json:"$schema"`
	Model        string                `json:"model"`
	SmallModel   string                `json:"small_model"`
	Instructions []string              `json:"instructions"`
	MCP          map[string]*MCPServer `json:"mcp,omitempty"`
}
