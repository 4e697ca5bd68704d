// Package header parses and renders the delimited metadata block at the
// top of agent and command documents.
//
// A header block is delimited by lines containing only "---". Between the
// delimiters each "key: value" line contributes one entry to an ordered
// mapping. Values are plain scalars by default; one layer of matching
// quotes is stripped, bare true/false decode as booleans, and values
// bracketed with [] or {} are decoded as strict JSON literals (falling
// back to the raw string when decoding fails). Blank lines, '#' comments,
// and lines without a colon are skipped silently.
//
// # Basic Usage
//
//	meta, body := header.Parse(content)
//	if desc, ok := meta.GetString("description"); ok {
//		fmt.Println(desc)
//	}
//
// Rendering is the inverse operation with minimal quoting:
//
//	out := header.NewMap()
//	out.Set("description", header.String("Review code"))
//	out.Set("subtask", header.Bool(true))
//	doc := header.Document(out, body)
//
// Parse never returns an error: a document without a header block yields
// an empty mapping and the full content as body, and malformed lines are
// ignored. Duplicate keys keep their first position with the last value
// winning.
package header
