package paths

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	ocerrors "github.com/thoreinstein/ocmigrate/internal/errors"
)

// MarkerFile confirms a directory is the project root.
const MarkerFile = "CLAUDE.md"

// Source-side layout (Claude Code convention).
const (
	SourceDirName  = ".claude"
	RegistryName   = ".mcp.json"
	agentSourceDir = "agents"
	cmdSourceDir   = "commands"
	skillSourceDir = "skills"
	ruleSourceDir  = "rules"
)

// Target-side layout (OpenCode convention).
const (
	OutputDirName = ".opencode"
	agentOutDir   = "agent"
	cmdOutDir     = "command"
	skillOutDir   = "skill"
	ruleOutDir    = "rules"
	SettingsName  = "opencode.json"
	SummaryName   = "AGENTS.md"
)

// DefaultDirPerm is the permission for newly created output directories.
const DefaultDirPerm = 0o755

// FindProjectRoot walks up from start looking for the marker file.
// Returns ErrNoProjectRoot when no ancestor directory contains it.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrap(err, "resolving start directory")
	}

	for {
		marker := filepath.Join(dir, MarkerFile)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Wrapf(ocerrors.ErrNoProjectRoot, "no %s found above %s", MarkerFile, start)
		}
		dir = parent
	}
}

// Project resolves source and output locations relative to a project root.
type Project struct {
	Root string
}

// NewProject returns a Project anchored at root.
func NewProject(root string) *Project {
	return &Project{Root: root}
}

// AgentSourceDir returns the Claude agent document directory.
func (p *Project) AgentSourceDir() string {
	return filepath.Join(p.Root, SourceDirName, agentSourceDir)
}

// CommandSourceDir returns the Claude command document directory.
func (p *Project) CommandSourceDir() string {
	return filepath.Join(p.Root, SourceDirName, cmdSourceDir)
}

// SkillSourceDir returns the Claude skill bundle directory.
func (p *Project) SkillSourceDir() string {
	return filepath.Join(p.Root, SourceDirName, skillSourceDir)
}

// RuleSourceDir returns the Claude rule document directory.
func (p *Project) RuleSourceDir() string {
	return filepath.Join(p.Root, SourceDirName, ruleSourceDir)
}

// RegistryPath returns the MCP server registry document.
func (p *Project) RegistryPath() string {
	return filepath.Join(p.Root, RegistryName)
}

// OutputRoot returns the directory tree fully owned by the migration.
// It is destroyed and rebuilt on every run.
func (p *Project) OutputRoot() string {
	return filepath.Join(p.Root, OutputDirName)
}

// AgentOutDir returns the OpenCode agent output directory.
func (p *Project) AgentOutDir() string {
	return filepath.Join(p.OutputRoot(), agentOutDir)
}

// CommandOutDir returns the OpenCode command output directory.
func (p *Project) CommandOutDir() string {
	return filepath.Join(p.OutputRoot(), cmdOutDir)
}

// SkillOutDir returns the OpenCode skill output directory.
func (p *Project) SkillOutDir() string {
	return filepath.Join(p.OutputRoot(), skillOutDir)
}

// RuleOutDir returns the OpenCode rules output directory.
func (p *Project) RuleOutDir() string {
	return filepath.Join(p.OutputRoot(), ruleOutDir)
}

// SettingsPath returns the generated OpenCode settings document.
func (p *Project) SettingsPath() string {
	return filepath.Join(p.OutputRoot(), SettingsName)
}

// SummaryPath returns the generated summary document.
func (p *Project) SummaryPath() string {
	return filepath.Join(p.OutputRoot(), SummaryName)
}

// EnsureDir creates the directory and any necessary parents.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DefaultDirPerm)
}
