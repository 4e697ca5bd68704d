package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/ocmigrate/internal/config"
	"github.com/thoreinstein/ocmigrate/internal/paths"
	"github.com/thoreinstein/ocmigrate/internal/translate"
	"github.com/thoreinstein/ocmigrate/pkg/header"
)

// agentMode is the operational mode assigned to every converted agent.
const agentMode = "subagent"

// Agents converts every agent document in srcDir into an OpenCode agent
// in dstDir. The output header carries description, mode, the rewritten
// model, and the tool permission block; the body passes through verbatim.
// A missing source directory contributes zero output.
func Agents(srcDir, dstDir string, cfg *config.Config) (int, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "reading agent directory")
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".md")

		data, err := os.ReadFile(filepath.Join(srcDir, entry.Name()))
		if err != nil {
			return count, errors.Wrapf(err, "reading agent %q", name)
		}

		if count == 0 {
			if err := paths.EnsureDir(dstDir); err != nil {
				return count, errors.Wrap(err, "creating agent output directory")
			}
		}

		doc := convertAgent(name, string(data), cfg)
		if err := os.WriteFile(filepath.Join(dstDir, entry.Name()), []byte(doc), 0o644); err != nil {
			return count, errors.Wrapf(err, "writing agent %q", name)
		}
		count++
	}

	return count, nil
}

// convertAgent maps one agent document into its OpenCode form.
func convertAgent(name, content string, cfg *config.Config) string {
	meta, body := header.Parse(content)

	desc, _ := meta.GetString("description")
	if desc == "" {
		desc = fmt.Sprintf("%s agent imported from Claude Code", name)
	}

	model, _ := meta.GetString("model")

	var declared []string
	if v, ok := meta.Get("tools"); ok {
		declared = translate.ToolList(v)
	}

	out := header.NewMap()
	out.Set("description", header.String(desc))
	out.Set("mode", header.String(agentMode))
	out.Set("model", header.String(translate.Model(model, cfg.Model, cfg.SmallModel)))
	out.Set("tools", header.MapValue(translate.Tools(declared)))

	return header.Document(out, body)
}
