package convert

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/ocmigrate/internal/paths"
	"github.com/thoreinstein/ocmigrate/pkg/header"
)

// commandAgents routes specific commands to the subagent that handles
// them. Commands without an entry run in the main session.
var commandAgents = map[string]string{
	"debug":    "debugger",
	"optimize": "performance",
	"harden":   "security",
	"release":  "ops",
}

// Commands converts every command document in srcDir into an OpenCode
// command in dstDir. The description comes from the source header, the
// first heading line of the body, or the command name, in that order.
// Commands with a subagent route gain agent and subtask fields.
func Commands(srcDir, dstDir string) (int, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "reading command directory")
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".md")

		data, err := os.ReadFile(filepath.Join(srcDir, entry.Name()))
		if err != nil {
			return count, errors.Wrapf(err, "reading command %q", name)
		}

		if count == 0 {
			if err := paths.EnsureDir(dstDir); err != nil {
				return count, errors.Wrap(err, "creating command output directory")
			}
		}

		doc := convertCommand(name, string(data))
		if err := os.WriteFile(filepath.Join(dstDir, entry.Name()), []byte(doc), 0o644); err != nil {
			return count, errors.Wrapf(err, "writing command %q", name)
		}
		count++
	}

	return count, nil
}

// convertCommand maps one command document into its OpenCode form.
func convertCommand(name, content string) string {
	meta, body := header.Parse(content)

	desc, _ := meta.GetString("description")
	if desc == "" {
		desc = describeBody(name, body)
	}

	out := header.NewMap()
	out.Set("description", header.String(desc))
	if agent, ok := commandAgents[name]; ok {
		out.Set("agent", header.String(agent))
		out.Set("subtask", header.Bool(true))
	}

	return header.Document(out, body)
}

// describeBody derives a description from the body's first non-blank
// line when it is a markdown heading; otherwise the command name is used.
func describeBody(name, body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if title := strings.TrimSpace(strings.TrimLeft(line, "#")); title != "" {
				return title
			}
		}
		break
	}
	return name
}
