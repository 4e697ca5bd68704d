package translate

import "strings"

// Model identifier markers.
const (
	// targetPrefix qualifies identifiers already in the destination namespace.
	targetPrefix = "opencode/"

	// sourcePrefix qualifies identifiers in the source ecosystem namespace.
	sourcePrefix = "anthropic/"

	// familyMarker recognizes source-ecosystem model families by substring.
	familyMarker = "claude"

	// qualifierSep separates a namespace qualifier from a model name.
	qualifierSep = "/"
)

// Shorthand tier names. High tiers map to the main default,
// the low tier to the fast default.
const (
	tierHigh = "opus"
	tierMid  = "sonnet"
	tierLow  = "haiku"
)

// Model rewrites a source-side model identifier into its target-side
// equivalent. The function is total: every input maps to some output.
//
// Resolution order:
//  1. Already target-qualified identifiers pass through unchanged.
//  2. Source-qualified identifiers and anything naming a source-ecosystem
//     family map to the main default.
//  3. High-tier shorthand maps to the main default.
//  4. Low-tier shorthand maps to the fast default.
//  5. Identifiers qualified under any other namespace pass through unchanged.
//  6. Everything else maps to the main default.
func Model(input, mainDefault, fastDefault string) string {
	id := strings.TrimSpace(input)
	lower := strings.ToLower(id)

	switch {
	case strings.HasPrefix(lower, targetPrefix):
		return id
	case strings.HasPrefix(lower, sourcePrefix), strings.Contains(lower, familyMarker):
		return mainDefault
	case lower == tierHigh, lower == tierMid:
		return mainDefault
	case lower == tierLow:
		return fastDefault
	case strings.Contains(lower, qualifierSep):
		return id
	default:
		return mainDefault
	}
}
