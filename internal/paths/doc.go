// Package paths resolves the source and output directory layout of a
// migration relative to a detected project root.
//
// The project root is the nearest ancestor directory containing the
// CLAUDE.md marker file. Source documents live under .claude/ plus the
// .mcp.json registry at the root; all generated output lives under
// .opencode/, which the orchestrator owns outright.
package paths
