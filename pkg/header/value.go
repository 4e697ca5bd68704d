package header

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindString is a plain scalar value.
	KindString Kind = iota
	// KindBool is a boolean value, rendered as bare true/false.
	KindBool
	// KindList is an ordered list of values.
	KindList
	// KindMap is a one-level-deep nested mapping.
	KindMap
)

// Value is a tagged variant holding one header value: a scalar string,
// a boolean, a list, or a nested mapping. Exactly one field matching
// Kind is meaningful.
type Value struct {
	Kind Kind
	Str  string
	Bool bool
	List []Value
	Map  *Map
}

// String returns a scalar string Value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// ListOf returns a list Value holding the given elements.
func ListOf(elems ...Value) Value {
	return Value{Kind: KindList, List: elems}
}

// MapValue returns a Value wrapping a nested mapping.
func MapValue(m *Map) Value {
	return Value{Kind: KindMap, Map: m}
}

// Equal reports whether two values are structurally equal.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str == other.Str
	case KindBool:
		return v.Bool == other.Bool
	case KindList:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(other.List[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.Map.Equal(other.Map)
	}
	return false
}

// Map is an insertion-ordered string-keyed mapping of header values.
// Setting an existing key replaces its value but keeps its original
// position (last occurrence wins on value, first occurrence on order).
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap returns an empty ordered mapping.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Set stores v under key, preserving insertion order for new keys.
func (m *Map) Set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// GetString returns the scalar string stored under key.
// It returns false when the key is absent or holds a non-string value.
func (m *Map) GetString(key string) (string, bool) {
	v, ok := m.values[key]
	if !ok || v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return m.keys
}

// Len returns the number of entries. A nil map has zero entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Equal reports whether two mappings hold equal entries in the same order.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m.Len() == 0 && other.Len() == 0
	}
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i, k := range m.keys {
		if other.keys[i] != k {
			return false
		}
		if !m.values[k].Equal(other.values[k]) {
			return false
		}
	}
	return true
}
