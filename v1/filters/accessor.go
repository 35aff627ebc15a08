package filters

import (
	"encoding/json"
	"strconv"
)

// Accessor looks up the value at path inside a dataset metadata document.
// It reports false when any element of the path is missing.
type Accessor interface {
	Lookup(doc any, path []string) (any, bool)
}

// AccessorFunc adapts a function to the Accessor interface.
type AccessorFunc func(doc any, path []string) (any, bool)

// Lookup calls f(doc, path).
func (f AccessorFunc) Lookup(doc any, path []string) (any, bool) {
	return f(doc, path)
}

// MapAccessor walks documents decoded from JSON into nested map[string]any values.
type MapAccessor struct{}

// Lookup implements Accessor. A JSON null counts as missing.
func (MapAccessor) Lookup(doc any, path []string) (any, bool) {
	cur := doc
	for _, key := range path {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		next, ok := m[key]
		if !ok || next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case interface{ Map() map[string]any }:
		return m.Map(), true
	default:
		return nil, false
	}
}

// Text converts a metadata value into the text the relational store's `#>>`
// extraction would produce for it.
func Text(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case json.Number:
		return t.String(), true
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(data), true
	}
}
