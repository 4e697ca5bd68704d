package translate

import (
	"strings"

	"github.com/thoreinstein/ocmigrate/pkg/header"
)

// HighImpactTools are the destination-side tools that must be explicitly
// denied unless the source document declared them. Order is fixed and
// reflected in the emitted permission block.
var HighImpactTools = []string{"write", "edit", "bash"}

// Tools converts a declared tool-name set into a destination permission
// block. Each high-impact tool absent from the declared set (compared
// case-insensitively) is denied with false; declared tools are omitted
// entirely, which means "use the destination default". The result never
// contains a true value.
func Tools(declared []string) *header.Map {
	have := make(map[string]struct{}, len(declared))
	for _, name := range declared {
		have[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}

	perms := header.NewMap()
	for _, name := range HighImpactTools {
		if _, ok := have[name]; !ok {
			perms.Set(name, header.Bool(false))
		}
	}
	return perms
}

// ToolList extracts the declared tool names from a header value.
// Claude documents declare tools either as a comma-separated scalar
// ("Read, Grep, Bash") or as a list. Unrecognized shapes yield nil.
func ToolList(v header.Value) []string {
	switch v.Kind {
	case header.KindString:
		if strings.TrimSpace(v.Str) == "" {
			return nil
		}
		parts := strings.Split(v.Str, ",")
		names := make([]string, 0, len(parts))
		for _, p := range parts {
			if name := strings.TrimSpace(p); name != "" {
				names = append(names, name)
			}
		}
		return names
	case header.KindList:
		names := make([]string, 0, len(v.List))
		for _, elem := range v.List {
			if elem.Kind != header.KindString {
				continue
			}
			if name := strings.TrimSpace(elem.Str); name != "" {
				names = append(names, name)
			}
		}
		return names
	default:
		return nil
	}
}
