package header

import (
	"encoding/json"
	"errors"
	"strings"
)

// Delimiter is the line that opens and closes a header block.
const Delimiter = "---"

// Parse splits a document into its header mapping and body.
//
// A header block is present when the first line is exactly the delimiter
// and a second delimiter line follows. Within the block each line of the
// form "key: value" contributes one entry; blank lines, comment lines
// starting with '#', and lines without a colon are skipped silently.
// When no header block is found the whole document is returned as body
// with an empty mapping.
//
// Parse never fails: malformed lines and undecodable structured values
// degrade to raw strings, never to errors.
func Parse(content string) (*Map, string) {
	m := NewMap()

	lines := splitLines(content)
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != Delimiter {
		return m, content
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == Delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		// No closing delimiter; treat the whole document as body.
		return m, content
	}

	for i := 1; i < end; {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			i++
			continue
		}
		key, rest, ok := strings.Cut(trimmed, ":")
		if !ok {
			i++
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			i++
			continue
		}
		rest = strings.TrimSpace(rest)

		// A bare "key:" line may open a one-level nested block of
		// indented "subkey: value" lines.
		if rest == "" && !indented(line) {
			nested, next := parseNested(lines, i+1, end)
			if nested.Len() > 0 {
				m.Set(key, MapValue(nested))
				i = next
				continue
			}
			m.Set(key, String(""))
			i++
			continue
		}

		m.Set(key, decodeScalar(rest))
		i++
	}

	body := strings.Join(lines[end+1:], "\n")
	return m, strings.TrimLeft(body, "\r\n")
}

// parseNested collects consecutive indented "subkey: value" lines starting
// at lines[start], stopping at the first non-indented line. It returns the
// nested mapping and the index of the first line it did not consume.
func parseNested(lines []string, start, end int) (*Map, int) {
	nested := NewMap()
	i := start
	for i < end {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			i++
			continue
		}
		if !indented(line) {
			break
		}
		key, rest, ok := strings.Cut(trimmed, ":")
		if !ok {
			break
		}
		key = strings.TrimSpace(key)
		if key == "" {
			break
		}
		nested.Set(key, decodeScalar(strings.TrimSpace(rest)))
		i++
	}
	return nested, i
}

// indented reports whether the raw line begins with whitespace.
func indented(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// splitLines splits on '\n' without discarding a trailing empty segment
// only when the content ends mid-line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// decodeScalar decodes a single header value.
//
// One layer of matching single or double quotes is stripped. Bare true
// and false become booleans. Values bracketed with [] or {} are decoded
// as strict JSON; if decoding fails the raw string is kept.
func decodeScalar(raw string) Value {
	if len(raw) >= 2 {
		if (raw[0] == '"' && raw[len(raw)-1] == '"') ||
			(raw[0] == '\'' && raw[len(raw)-1] == '\'') {
			return String(raw[1 : len(raw)-1])
		}
	}

	switch raw {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	if bracketed(raw, '[', ']') || bracketed(raw, '{', '}') {
		if v, ok := decodeJSON(raw); ok {
			return v
		}
	}

	return String(raw)
}

func bracketed(s string, open, close byte) bool {
	return len(s) >= 2 && s[0] == open && s[len(s)-1] == close
}

// decodeJSON decodes a JSON array or object literal into a Value,
// preserving object key order. Returns false on any decode error or
// trailing garbage.
func decodeJSON(raw string) (Value, bool) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return Value{}, false
	}
	// Reject trailing content after the literal.
	if dec.More() {
		return Value{}, false
	}
	return v, true
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			var list []Value
			for dec.More() {
				elem, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				list = append(list, elem)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return Value{Kind: KindList, List: list}, nil
		case '{':
			m := NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, errNotAKey
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return MapValue(m), nil
		}
		return Value{}, errUnexpectedDelim
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return String(t.String()), nil
	case nil:
		return String(""), nil
	}
	return Value{}, errUnexpectedToken
}

// Decode errors are internal only; Parse converts them to raw strings.
var (
	errNotAKey         = errors.New("object key is not a string")
	errUnexpectedDelim = errors.New("unexpected delimiter")
	errUnexpectedToken = errors.New("unexpected token")
)
