package convert

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/ocmigrate/internal/config"
	"github.com/thoreinstein/ocmigrate/internal/opencode"
	"github.com/thoreinstein/ocmigrate/internal/paths"
	"github.com/thoreinstein/ocmigrate/pkg/fileutil"
)

// Report holds the per-category counts of one migration run.
type Report struct {
	// Agents and Commands count converted documents.
	Agents   int
	Commands int

	// Skills and Rules count mirrored bundles (immediate subdirectories).
	Skills int
	Rules  int

	// Servers counts converted registry entries.
	Servers int
}

// Run executes one full migration: it destroys and recreates the output
// root, runs every converter, and writes the settings and summary
// documents. The run is fully deterministic; running it twice on
// unchanged inputs produces byte-identical output trees.
func Run(project *paths.Project, cfg *config.Config) (*Report, error) {
	out := project.OutputRoot()
	if err := os.RemoveAll(out); err != nil {
		return nil, errors.Wrap(err, "removing output root")
	}
	if err := paths.EnsureDir(out); err != nil {
		return nil, errors.Wrap(err, "creating output root")
	}

	rep := &Report{}
	var err error

	if rep.Agents, err = Agents(project.AgentSourceDir(), project.AgentOutDir(), cfg); err != nil {
		return nil, err
	}
	slog.Debug("converted agents", "count", rep.Agents)

	if rep.Commands, err = Commands(project.CommandSourceDir(), project.CommandOutDir()); err != nil {
		return nil, err
	}
	slog.Debug("converted commands", "count", rep.Commands)

	if rep.Skills, err = Mirror(project.SkillSourceDir(), project.SkillOutDir()); err != nil {
		return nil, err
	}
	slog.Debug("mirrored skills", "bundles", rep.Skills)

	if rep.Rules, err = Mirror(project.RuleSourceDir(), project.RuleOutDir()); err != nil {
		return nil, err
	}
	slog.Debug("mirrored rules", "bundles", rep.Rules)

	servers := Registry(project.RegistryPath())
	rep.Servers = len(servers)
	slog.Debug("converted registry", "servers", rep.Servers)

	settings := &opencode.Settings{
		Schema:       cfg.Schema,
		Model:        cfg.Model,
		SmallModel:   cfg.SmallModel,
		Instructions: cfg.Instructions,
	}
	// The mcp key is omitted entirely when no server converted.
	if len(servers) > 0 {
		settings.MCP = servers
	}
	if err := fileutil.AtomicWriteJSON(project.SettingsPath(), settings); err != nil {
		return nil, errors.Wrap(err, "writing settings document")
	}

	if err := writeSummary(project); err != nil {
		return nil, err
	}

	return rep, nil
}

// summaryContent is the generated top-level summary document. The two
// environment variables are documentation for consumers only; the
// migration itself neither reads nor writes them.
const summaryContent = `# Generated OpenCode configuration

This directory was generated from the Claude Code configuration in this
project. Do not edit it by hand: rerun ` + "`ocmigrate`" + ` from the project
root to regenerate it from scratch.

## Sources

| Source | Output |
|---|---|
| ` + "`.claude/agents/`" + ` | ` + "`agent/`" + ` |
| ` + "`.claude/commands/`" + ` | ` + "`command/`" + ` |
| ` + "`.claude/skills/`" + ` | ` + "`skill/`" + ` |
| ` + "`.claude/rules/`" + ` | ` + "`rules/`" + ` |
| ` + "`.mcp.json`" + ` | ` + "`mcp`" + ` block in ` + "`opencode.json`" + ` |

## Consuming

Point tooling at this directory with ` + "`OPENCODE_CONFIG_DIR=.opencode`" + `
and at the settings document with ` + "`OPENCODE_CONFIG=.opencode/opencode.json`" + `.
`

// writeSummary writes the top-level summary document.
func writeSummary(project *paths.Project) error {
	err := fileutil.AtomicWriteFile(project.SummaryPath(), []byte(summaryContent), 0o644)
	return errors.Wrap(err, "writing summary document")
}
