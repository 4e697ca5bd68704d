// Package convert implements the per-category document converters and
// the orchestrator that drives a full migration run.
//
// Each converter reads one category of source documents (agents,
// commands, skills, rules, or the server registry), applies the header
// and field transformations, and writes its own disjoint output subtree.
// Converters are independent of each other; the orchestrator runs them
// sequentially, rebuilds the output root from scratch on every run, and
// finishes by writing the merged settings document and a summary.
//
// Failure policy: a missing source directory or registry contributes
// zero output without error, malformed header lines and unrecognized
// registry entries are skipped silently, and unexpected I/O errors
// propagate and abort the run.
package convert
