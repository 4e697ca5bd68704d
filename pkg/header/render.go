package header

import (
	"fmt"
	"strconv"
	"strings"
)

// Render serializes a mapping back into a header block.
//
// Top-level entries render as "key: value". Nested mappings render as an
// indented block of "  subkey: value" lines in mapping order; an empty
// nested mapping renders inline as "key: {}". Booleans render bare.
// Scalars are quoted only when empty or containing a colon, newline,
// carriage return, or tab. The block is wrapped in delimiter lines and
// followed by a single blank line so body content can be appended directly.
func Render(m *Map) string {
	var b strings.Builder
	b.WriteString(Delimiter)
	b.WriteByte('\n')

	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		if v.Kind == KindMap {
			if v.Map.Len() == 0 {
				fmt.Fprintf(&b, "%s: {}\n", key)
				continue
			}
			fmt.Fprintf(&b, "%s:\n", key)
			for _, sub := range v.Map.Keys() {
				sv, _ := v.Map.Get(sub)
				fmt.Fprintf(&b, "  %s: %s\n", sub, renderScalar(sv))
			}
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", key, renderScalar(v))
	}

	b.WriteString(Delimiter)
	b.WriteString("\n\n")
	return b.String()
}

// Document renders a header block followed by the body.
// The body is emitted verbatim; a trailing newline is appended when missing.
func Document(m *Map, body string) string {
	out := Render(m) + body
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

func renderScalar(v Value) string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindList:
		elems := make([]string, len(v.List))
		for i, e := range v.List {
			if e.Kind == KindBool {
				elems[i] = strconv.FormatBool(e.Bool)
				continue
			}
			elems[i] = strconv.Quote(e.Str)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	default:
		s := v.Str
		if s == "" || strings.ContainsAny(s, ":\n\r\t") {
			return strconv.Quote(s)
		}
		return s
	}
}
