package convert

import (
	"log/slog"

	"github.com/thoreinstein/ocmigrate/internal/claude"
	"github.com/thoreinstein/ocmigrate/internal/opencode"
)

// Registry converts the server registry document at path into target
// server entries. An absent or unparsable registry yields an empty
// result, and descriptors of unrecognized shape are dropped silently.
func Registry(path string) map[string]*opencode.MCPServer {
	cfg, err := claude.LoadRegistry(path)
	if err != nil {
		slog.Debug("skipping unreadable registry", "path", path, "error", err)
		return map[string]*opencode.MCPServer{}
	}

	out := make(map[string]*opencode.MCPServer, len(cfg.MCPServers))
	for name, src := range cfg.MCPServers {
		if src == nil {
			continue
		}
		if conv := convertServer(src); conv != nil {
			out[name] = conv
		}
	}
	return out
}

// convertServer maps one source descriptor to its target shape, or nil
// when the descriptor matches neither the remote nor the local shape.
func convertServer(s *claude.MCPServer) *opencode.MCPServer {
	remoteType := s.Type == claude.TypeHTTP || s.Type == claude.TypeSSE
	localType := s.Type == claude.TypeStdio

	switch {
	case s.URL != "" && (remoteType || s.Type == ""):
		return &opencode.MCPServer{
			Type:    opencode.TypeRemote,
			URL:     s.URL,
			Enabled: false,
		}
	case s.Command != "" && (localType || s.Type == ""):
		srv := &opencode.MCPServer{
			Type:    opencode.TypeLocal,
			Command: append([]string{s.Command}, s.Args...),
			Enabled: false,
		}
		if len(s.Env) > 0 {
			env := make(map[string]string, len(s.Env))
			for name := range s.Env {
				env[name] = "{env:" + name + "}"
			}
			srv.Environment = env
		}
		return srv
	default:
		return nil
	}
}
